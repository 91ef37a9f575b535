package middlewares

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Logger пишет в лог каждый запрос. Приватные ошибки gin попадают в лог, но не в ответ.
func Logger(l *logrus.Logger) gin.HandlerFunc {
	entry := l.WithField("component", "http")
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		fields := logrus.Fields{
			"method":  c.Request.Method,
			"path":    path,
			"status":  c.Writer.Status(),
			"latency": time.Since(start).String(),
			"ip":      c.ClientIP(),
		}
		if actor := CurrentActor(c); actor.OwnerID != 0 {
			fields["owner_id"] = actor.OwnerID
		}
		le := entry.WithFields(fields)

		if errs := c.Errors.ByType(gin.ErrorTypePrivate); len(errs) > 0 {
			le = le.WithField("errors", errs.String())
		}

		switch status := c.Writer.Status(); {
		case status >= 500:
			le.Error("request")
		case status >= 400:
			le.Warn("request")
		default:
			le.Info("request")
		}
	}
}
