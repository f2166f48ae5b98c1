package middleware

import (
	"math"
	"time"

	"github.com/gin-gonic/gin"
	logger "github.com/sirupsen/logrus"
)

// Log writes one access log entry per request. Paths may carry a BIN
// prefix but never a full card number, the routes refuse those.
func Log() gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		start := time.Now()
		c.Next()
		stop := time.Since(start)
		latency := int(math.Ceil(float64(stop.Nanoseconds()) / 1000.0))
		statusCode := c.Writer.Status()
		dataLength := c.Writer.Size()
		if dataLength < 0 {
			dataLength = 0
		}

		entry := logger.WithFields(logger.Fields{
			"hostname":   c.Request.Host,
			"statusCode": statusCode,
			"latency":    latency, // microseconds
			"clientIp":   c.ClientIP(),
			"method":     c.Request.Method,
			"path":       path,
			"referer":    c.Request.Referer(),
			"dataLength": dataLength,
			"userAgent":  c.Request.UserAgent(),
			"requestId":  c.GetString(requestIDKey),
		})

		if len(c.Errors) > 0 {
			entry.Error(c.Errors.ByType(gin.ErrorTypePrivate).String())
		} else if statusCode > 499 {
			entry.Error()
		} else if statusCode > 399 {
			entry.Warn()
		} else {
			entry.Info()
		}
	}
}
