package messaging

import (
	"context"

	"go.uber.org/zap"

	"github.com/Vitalii-Kazymyrovych/book-store/internal/domain/order"
	"github.com/Vitalii-Kazymyrovych/book-store/internal/infrastructure/config"
	"github.com/Vitalii-Kazymyrovych/book-store/pkg/mq"
)

// rabbitMQSink 通过topic交换机发布，路由键即事件名(order.placed/order.status_changed)
type rabbitMQSink struct {
	publisher *mq.Publisher
}

func newRabbitMQSink(cfg config.EventsConfig, log *zap.Logger) (*rabbitMQSink, error) {
	p, err := mq.NewPublisher(cfg.URL, cfg.Exchange, cfg.ExchangeType, log)
	if err != nil {
		return nil, err
	}
	return &rabbitMQSink{publisher: p}, nil
}

func (s *rabbitMQSink) send(ctx context.Context, routingKey string, event order.Event) error {
	return s.publisher.Publish(ctx, routingKey, event)
}

func (s *rabbitMQSink) Close() error {
	return s.publisher.Close()
}
