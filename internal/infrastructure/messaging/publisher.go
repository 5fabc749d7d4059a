package messaging

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Vitalii-Kazymyrovych/book-store/internal/domain/order"
	"github.com/Vitalii-Kazymyrovych/book-store/internal/infrastructure/config"
	"github.com/Vitalii-Kazymyrovych/book-store/pkg/circuitbreaker"
	"github.com/Vitalii-Kazymyrovych/book-store/pkg/metrics"
)

// NewEventPublisher 按events.driver选择事件通道
// none: 只记日志；rabbitmq: pkg/mq；kafka: kafka-go Writer
// 消息队列实现都包在熔断器里，Broker不可用时快速失败，不拖慢下单
func NewEventPublisher(cfg *config.Config, log *zap.Logger) (order.EventPublisher, error) {
	var (
		s   sink
		err error
	)
	switch cfg.Events.Driver {
	case config.EventsDriverNone, "":
		return NewNoopPublisher(log), nil
	case config.EventsDriverRabbitMQ:
		s, err = newRabbitMQSink(cfg.Events, log)
	case config.EventsDriverKafka:
		s = newKafkaSink(cfg.Events)
	default:
		return nil, fmt.Errorf("不支持的事件通道: %s", cfg.Events.Driver)
	}
	if err != nil {
		return nil, err
	}
	return newBreakerPublisher(cfg.Events.Driver, s, log), nil
}

// sink 底层消息通道
type sink interface {
	send(ctx context.Context, routingKey string, event order.Event) error
	Close() error
}

// breakerPublisher 熔断器保护的发布者
type breakerPublisher struct {
	sink    sink
	breaker *circuitbreaker.CircuitBreaker
	log     *zap.Logger
}

func newBreakerPublisher(name string, s sink, log *zap.Logger) *breakerPublisher {
	cb := circuitbreaker.NewCircuitBreaker("events-"+name, circuitbreaker.Config{
		MaxRequests: 1,
		Interval:    time.Minute,
		Timeout:     30 * time.Second,
	})
	cb.SetStateChangeCallback(func(name string, from, to circuitbreaker.State) {
		log.Warn("事件发布熔断器状态变化",
			zap.String("breaker", name),
			zap.String("from", from.String()),
			zap.String("to", to.String()))
	})
	return &breakerPublisher{sink: s, breaker: cb, log: log}
}

// Publish 发布事件
func (p *breakerPublisher) Publish(ctx context.Context, event order.Event) error {
	key := event.RoutingKey()
	err := p.breaker.Execute(func() error {
		return p.sink.send(ctx, key, event)
	})
	if err != nil {
		metrics.IncMessagePublished(key, "error")
		if errors.Is(err, circuitbreaker.ErrOpenState) {
			return fmt.Errorf("发布事件%s: %w", key, err)
		}
		return fmt.Errorf("发布事件%s失败: %w", key, err)
	}
	metrics.IncMessagePublished(key, "success")
	return nil
}

// Close 关闭底层连接
func (p *breakerPublisher) Close() error {
	return p.sink.Close()
}

// NoopPublisher 未配置消息队列时使用，只记录日志
type NoopPublisher struct {
	log *zap.Logger
}

// NewNoopPublisher 创建空发布者
func NewNoopPublisher(log *zap.Logger) *NoopPublisher {
	return &NoopPublisher{log: log}
}

// Publish 记录事件后返回
func (p *NoopPublisher) Publish(_ context.Context, event order.Event) error {
	p.log.Debug("事件未发布(events.driver=none)", zap.String("routing_key", event.RoutingKey()))
	metrics.IncMessagePublished(event.RoutingKey(), "skipped")
	return nil
}

// Close 无资源需要释放
func (p *NoopPublisher) Close() error { return nil }
