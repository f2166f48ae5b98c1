package middleware

import (
	"net/http"
	"runtime/debug"

	"git.thinkinpower.net/cardkit/mod"
	"github.com/gin-gonic/gin"
	logger "github.com/sirupsen/logrus"
)

// Recovery turns a panic in a handler into a failure response and logs the
// stack.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				logger.WithField("requestId", c.GetString(requestIDKey)).
					Errorf("panic: %v\n%s", err, string(debug.Stack()))
				c.AbortWithStatusJSON(http.StatusInternalServerError,
					mod.ResponseValue{Code: mod.ResponseCodeFailure, Msg: "internal error"})
			}
		}()
		c.Next()
	}
}
