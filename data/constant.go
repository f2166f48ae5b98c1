package data

const (
	DateTimePattern = "2006-01-02 15:04:05"

	RunModeDev     = "dev"
	RunModeTest    = "test"
	RunModeRelease = "release"

	// RequestIDHeader carries the id stamped on every request.
	RequestIDHeader = "X-Request-Id"
)
