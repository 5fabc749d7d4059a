package messaging

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/Vitalii-Kazymyrovych/book-store/internal/domain/order"
	"github.com/Vitalii-Kazymyrovych/book-store/internal/infrastructure/config"
	"github.com/Vitalii-Kazymyrovych/book-store/pkg/metrics"
	"github.com/Vitalii-Kazymyrovych/book-store/pkg/mq"
)

// EventConsumer 订单事件消费者(cmd/notifier使用)
type EventConsumer interface {
	// Run 阻塞消费直到ctx取消
	Run(ctx context.Context, handler mq.Handler) error
	Close() error
}

// NewEventConsumer 按events.driver创建消费者
func NewEventConsumer(cfg *config.Config, log *zap.Logger) (EventConsumer, error) {
	switch cfg.Events.Driver {
	case config.EventsDriverRabbitMQ:
		c, err := mq.NewConsumer(cfg.Events.URL, cfg.Events.Exchange, cfg.Events.ExchangeType, cfg.Events.Queue,
			[]string{order.EventOrderPlaced, order.EventOrderStatusChanged}, log)
		if err != nil {
			return nil, err
		}
		return &rabbitMQConsumer{consumer: c}, nil
	case config.EventsDriverKafka:
		return newKafkaConsumer(cfg.Events, log), nil
	default:
		return nil, fmt.Errorf("事件通道%q不支持消费", cfg.Events.Driver)
	}
}

type rabbitMQConsumer struct {
	consumer *mq.Consumer
}

func (c *rabbitMQConsumer) Run(ctx context.Context, handler mq.Handler) error {
	return c.consumer.Consume(ctx, instrument("rabbitmq", handler))
}

func (c *rabbitMQConsumer) Close() error {
	return c.consumer.Close()
}

// messageReader kafka.Reader的最小接口
type messageReader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// kafkaConsumer 消费组模式，处理完成后手动提交offset
type kafkaConsumer struct {
	reader messageReader
	log    *zap.Logger
}

func newKafkaConsumer(cfg config.EventsConfig, log *zap.Logger) *kafkaConsumer {
	return &kafkaConsumer{
		reader: kafka.NewReader(kafka.ReaderConfig{
			Brokers:  cfg.Brokers,
			Topic:    cfg.Topic,
			GroupID:  cfg.GroupID,
			MinBytes: 1,
			MaxBytes: 10e6,
		}),
		log: log,
	}
}

func (c *kafkaConsumer) Run(ctx context.Context, handler mq.Handler) error {
	handle := instrument("kafka", handler)
	for {
		msg, err := c.reader.FetchMessage(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(ctx.Err(), context.Canceled) {
				return nil
			}
			return fmt.Errorf("读取Kafka消息失败: %w", err)
		}

		// 处理失败只记录日志，offset照常提交，避免一条坏消息阻塞整个分区
		if err := handle(ctx, eventType(msg), msg.Value); err != nil {
			c.log.Error("处理Kafka消息失败", zap.Error(err), zap.Int64("offset", msg.Offset))
		}
		if err := c.reader.CommitMessages(ctx, msg); err != nil {
			return fmt.Errorf("提交Kafka offset失败: %w", err)
		}
	}
}

func (c *kafkaConsumer) Close() error {
	return c.reader.Close()
}

// eventType 优先取header，兼容只带Key的消息
func eventType(msg kafka.Message) string {
	for _, h := range msg.Headers {
		if h.Key == "event_type" {
			return string(h.Value)
		}
	}
	return string(msg.Key)
}

// instrument 记录消费耗时与结果
func instrument(source string, handler mq.Handler) mq.Handler {
	return func(ctx context.Context, routingKey string, body []byte) error {
		start := time.Now()
		err := handler(ctx, routingKey, body)
		result := "success"
		if err != nil {
			result = "error"
		}
		metrics.ObserveMessageConsumed(source, result, time.Since(start))
		return err
	}
}
