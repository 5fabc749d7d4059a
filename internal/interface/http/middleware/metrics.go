package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Vitalii-Kazymyrovych/book-store/pkg/metrics"
)

// Metrics Prometheus HTTP指标
// path使用路由模板（/api/v1/orders/:orderId），避免ID导致标签基数爆炸
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		done := metrics.TrackInFlightRequest()
		defer done()

		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		metrics.ObserveHTTPRequest(c.Request.Method, path, strconv.Itoa(c.Writer.Status()), time.Since(start))
	}
}
