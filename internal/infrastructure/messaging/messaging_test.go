package messaging

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Vitalii-Kazymyrovych/book-store/internal/domain/order"
	"github.com/Vitalii-Kazymyrovych/book-store/internal/infrastructure/config"
	"github.com/Vitalii-Kazymyrovych/book-store/pkg/circuitbreaker"
)

type fakeSink struct {
	err  error
	sent []string
}

func (s *fakeSink) send(_ context.Context, routingKey string, _ order.Event) error {
	if s.err != nil {
		return s.err
	}
	s.sent = append(s.sent, routingKey)
	return nil
}

func (s *fakeSink) Close() error { return nil }

func placed() order.OrderPlaced {
	return order.OrderPlaced{OrderID: 1, OrderNo: "ORD1", UserID: 2, Total: "69.97", ItemCount: 2, OccurredAt: time.Now()}
}

func TestBreakerPublisher_Publishes(t *testing.T) {
	s := &fakeSink{}
	p := newBreakerPublisher("test", s, zap.NewNop())

	require.NoError(t, p.Publish(context.Background(), placed()))
	assert.Equal(t, []string{order.EventOrderPlaced}, s.sent)
}

func TestBreakerPublisher_OpensAfterConsecutiveFailures(t *testing.T) {
	s := &fakeSink{err: errors.New("broker down")}
	p := newBreakerPublisher("test-open", s, zap.NewNop())

	for i := 0; i < 5; i++ {
		err := p.Publish(context.Background(), placed())
		require.Error(t, err)
		assert.False(t, errors.Is(err, circuitbreaker.ErrOpenState))
	}

	err := p.Publish(context.Background(), placed())
	assert.ErrorIs(t, err, circuitbreaker.ErrOpenState)
	assert.Equal(t, circuitbreaker.StateOpen, p.breaker.State())
}

func TestNewEventPublisher(t *testing.T) {
	cfg := &config.Config{Events: config.EventsConfig{Driver: config.EventsDriverNone}}
	p, err := NewEventPublisher(cfg, zap.NewNop())
	require.NoError(t, err)
	assert.IsType(t, &NoopPublisher{}, p)
	assert.NoError(t, p.Publish(context.Background(), placed()))

	cfg.Events = config.EventsConfig{Driver: config.EventsDriverKafka, Brokers: []string{"127.0.0.1:9092"}, Topic: "orders"}
	p, err = NewEventPublisher(cfg, zap.NewNop())
	require.NoError(t, err)
	assert.IsType(t, &breakerPublisher{}, p)
	assert.NoError(t, p.Close())

	cfg.Events.Driver = "carrier-pigeon"
	_, err = NewEventPublisher(cfg, zap.NewNop())
	assert.Error(t, err)
}

type fakeWriter struct {
	msgs []kafka.Message
}

func (w *fakeWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	w.msgs = append(w.msgs, msgs...)
	return nil
}

func (w *fakeWriter) Close() error { return nil }

func TestKafkaSink_EncodesEvent(t *testing.T) {
	w := &fakeWriter{}
	s := &kafkaSink{writer: w}

	event := order.OrderStatusChanged{OrderID: 7, OrderNo: "ORD7", From: order.StatusNew, To: order.StatusPaid}
	require.NoError(t, s.send(context.Background(), event.RoutingKey(), event))

	require.Len(t, w.msgs, 1)
	msg := w.msgs[0]
	assert.Equal(t, order.EventOrderStatusChanged, string(msg.Key))
	assert.Equal(t, order.EventOrderStatusChanged, eventType(msg))

	var decoded order.OrderStatusChanged
	require.NoError(t, json.Unmarshal(msg.Value, &decoded))
	assert.Equal(t, order.StatusPaid, decoded.To)
	assert.Equal(t, uint(7), decoded.OrderID)
}

type fakeReader struct {
	msgs      []kafka.Message
	committed []int64
	cancel    context.CancelFunc
}

func (r *fakeReader) FetchMessage(ctx context.Context) (kafka.Message, error) {
	if len(r.msgs) == 0 {
		r.cancel()
		<-ctx.Done()
		return kafka.Message{}, ctx.Err()
	}
	msg := r.msgs[0]
	r.msgs = r.msgs[1:]
	return msg, nil
}

func (r *fakeReader) CommitMessages(_ context.Context, msgs ...kafka.Message) error {
	for _, m := range msgs {
		r.committed = append(r.committed, m.Offset)
	}
	return nil
}

func (r *fakeReader) Close() error { return nil }

func TestKafkaConsumer_DispatchesAndCommits(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	reader := &fakeReader{
		cancel: cancel,
		msgs: []kafka.Message{
			{Offset: 1, Key: []byte(order.EventOrderPlaced), Value: []byte(`{"order_id":1}`)},
			{Offset: 2, Headers: []kafka.Header{{Key: "event_type", Value: []byte(order.EventOrderStatusChanged)}}, Value: []byte(`{}`)},
		},
	}
	c := &kafkaConsumer{reader: reader, log: zap.NewNop()}

	var keys []string
	err := c.Run(ctx, func(_ context.Context, routingKey string, _ []byte) error {
		keys = append(keys, routingKey)
		if routingKey == order.EventOrderStatusChanged {
			return errors.New("handler failed")
		}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{order.EventOrderPlaced, order.EventOrderStatusChanged}, keys)
	assert.Equal(t, []int64{1, 2}, reader.committed)
}
