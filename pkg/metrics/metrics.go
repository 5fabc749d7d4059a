// Package metrics 定义Prometheus业务与HTTP指标
//
// 指标类型：
// - Counter: 只增不减（请求总数、下单总数）
// - Gauge: 可增可减（进行中的请求数、熔断器状态）
// - Histogram: 分布统计（耗时）
package metrics

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	once sync.Once

	// HTTP指标
	HTTPRequestsTotal      *prometheus.CounterVec
	HTTPRequestDuration    *prometheus.HistogramVec
	HTTPRequestsInProgress prometheus.Gauge

	// 下单指标
	CheckoutsTotal     *prometheus.CounterVec // result: success/failure/conflict
	CheckoutDuration   prometheus.Histogram
	CheckoutsInFlight  prometheus.Gauge
	OrderItemsPerOrder prometheus.Histogram

	// 订单状态变更
	OrderStatusChangesTotal *prometheus.CounterVec // status: 目标状态

	// 购物车操作
	CartOperationsTotal *prometheus.CounterVec // op: add/update/remove

	// 熔断器
	CircuitBreakerState    *prometheus.GaugeVec
	CircuitBreakerRequests *prometheus.CounterVec

	// 消息
	MessagesPublishedTotal    *prometheus.CounterVec
	MessagesConsumedTotal     *prometheus.CounterVec
	MessageProcessingDuration prometheus.Histogram
)

// InitMetrics 注册全部指标（幂等）
func InitMetrics() {
	once.Do(func() {
		HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "HTTP请求总数",
		}, []string{"method", "path", "status"})

		HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP请求耗时（秒）",
			Buckets: []float64{0.001, 0.01, 0.1, 0.5, 1, 5, 10},
		}, []string{"method", "path"})

		HTTPRequestsInProgress = promauto.NewGauge(prometheus.GaugeOpts{
			Name: "http_requests_in_progress",
			Help: "正在处理的HTTP请求数",
		})

		CheckoutsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "checkouts_total",
			Help: "结算（购物车转订单）总数",
		}, []string{"result"})

		CheckoutDuration = promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "checkout_duration_seconds",
			Help:    "结算耗时（秒）",
			Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1, 5},
		})

		CheckoutsInFlight = promauto.NewGauge(prometheus.GaugeOpts{
			Name: "checkouts_in_flight",
			Help: "正在进行的结算数",
		})

		OrderItemsPerOrder = promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "order_items_per_order",
			Help:    "每个订单的明细行数",
			Buckets: []float64{0, 1, 2, 5, 10, 20, 50},
		})

		OrderStatusChangesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "order_status_changes_total",
			Help: "订单状态变更总数",
		}, []string{"status"})

		CartOperationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "cart_operations_total",
			Help: "购物车操作总数",
		}, []string{"op"})

		CircuitBreakerState = promauto.NewGaugeVec(prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "熔断器状态（0=CLOSED, 1=OPEN, 2=HALF_OPEN）",
		}, []string{"name"})

		CircuitBreakerRequests = promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "circuit_breaker_requests_total",
			Help: "熔断器请求总数",
		}, []string{"name", "result"})

		MessagesPublishedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "messages_published_total",
			Help: "消息发布总数",
		}, []string{"topic", "result"})

		MessagesConsumedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "messages_consumed_total",
			Help: "消息消费总数",
		}, []string{"source", "result"})

		MessageProcessingDuration = promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "message_processing_duration_seconds",
			Help:    "消息处理耗时（秒）",
			Buckets: []float64{0.001, 0.01, 0.1, 0.5, 1, 5},
		})
	})
}

// =========================================
// 业务埋点辅助函数（调用前自动初始化）
// =========================================

// ObserveHTTPRequest 记录一次HTTP请求
func ObserveHTTPRequest(method, path, status string, d time.Duration) {
	InitMetrics()
	HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	HTTPRequestDuration.WithLabelValues(method, path).Observe(d.Seconds())
}

// TrackInFlightRequest 请求开始时+1，返回的函数在结束时-1
func TrackInFlightRequest() func() {
	InitMetrics()
	HTTPRequestsInProgress.Inc()
	return HTTPRequestsInProgress.Dec
}

// TrackCheckout 结算开始时调用，返回的函数记录结果与耗时
func TrackCheckout() func(result string, items int) {
	InitMetrics()
	start := time.Now()
	CheckoutsInFlight.Inc()
	return func(result string, items int) {
		CheckoutsInFlight.Dec()
		CheckoutsTotal.WithLabelValues(result).Inc()
		CheckoutDuration.Observe(time.Since(start).Seconds())
		if result == "success" {
			OrderItemsPerOrder.Observe(float64(items))
		}
	}
}

// IncOrderStatusChange 订单状态变更计数
func IncOrderStatusChange(status string) {
	InitMetrics()
	OrderStatusChangesTotal.WithLabelValues(status).Inc()
}

// IncCartOperation 购物车操作计数
func IncCartOperation(op string) {
	InitMetrics()
	CartOperationsTotal.WithLabelValues(op).Inc()
}

// SetCircuitBreakerState 记录熔断器状态
func SetCircuitBreakerState(name string, state int) {
	InitMetrics()
	CircuitBreakerState.WithLabelValues(name).Set(float64(state))
}

// IncCircuitBreakerRequest 熔断器请求计数（success/failure/rejected）
func IncCircuitBreakerRequest(name, result string) {
	InitMetrics()
	CircuitBreakerRequests.WithLabelValues(name, result).Inc()
}

// IncMessagePublished 消息发布计数
func IncMessagePublished(topic, result string) {
	InitMetrics()
	MessagesPublishedTotal.WithLabelValues(topic, result).Inc()
}

// ObserveMessageConsumed 记录一次消息消费
func ObserveMessageConsumed(source, result string, d time.Duration) {
	InitMetrics()
	MessagesConsumedTotal.WithLabelValues(source, result).Inc()
	MessageProcessingDuration.Observe(d.Seconds())
}
