package mod

type ResponseValue struct {
	Code int    `json:"code"`
	Msg  string `json:"msg"`
}

type ResponseData struct {
	ResponseValue
	Data interface{} `json:"data"`
}

const (
	//success
	ResponseCodeSuccess = 1001
	//failure
	ResponseCodeFailure = 1002
	//missing parameters
	ResponseCodeMissingParams = 1003
	//invalid parameters
	ResponseCodeInvalidParams = 1004
	//no data
	ResponseCodeNotFound = 1010
)
