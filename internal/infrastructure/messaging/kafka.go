package messaging

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/Vitalii-Kazymyrovych/book-store/internal/domain/order"
	"github.com/Vitalii-Kazymyrovych/book-store/internal/infrastructure/config"
)

// messageWriter kafka.Writer的最小接口，测试中替换
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// kafkaSink 所有订单事件写入同一个topic，消息Key为路由键，
// header中的event_type供消费者分发
type kafkaSink struct {
	writer messageWriter
}

func newKafkaSink(cfg config.EventsConfig) *kafkaSink {
	return &kafkaSink{writer: &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        cfg.Topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireAll,
		BatchTimeout: 10 * time.Millisecond,
	}}
}

func (s *kafkaSink) send(ctx context.Context, routingKey string, event order.Event) error {
	msg, err := encodeKafkaMessage(routingKey, event)
	if err != nil {
		return err
	}
	return s.writer.WriteMessages(ctx, msg)
}

func (s *kafkaSink) Close() error {
	return s.writer.Close()
}

func encodeKafkaMessage(routingKey string, event order.Event) (kafka.Message, error) {
	body, err := json.Marshal(event)
	if err != nil {
		return kafka.Message{}, fmt.Errorf("序列化事件失败: %w", err)
	}
	return kafka.Message{
		Key:   []byte(routingKey),
		Value: body,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(routingKey)},
		},
		Time: time.Now(),
	}, nil
}
