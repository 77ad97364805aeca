package middleware

import (
	"time"

	"fyyur/internal/metrics"

	"github.com/gin-gonic/gin"
)

// Metrics records request count and latency by matched route template, so
// /venues/1 and /venues/2 share one series.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		metrics.RecordRequest(c.FullPath(), c.Request.Method, c.Writer.Status(), time.Since(start))
	}
}
