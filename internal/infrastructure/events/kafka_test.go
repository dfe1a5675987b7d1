package events

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/foodhub-storefront/internal/config"
	"github.com/your-org/foodhub-storefront/internal/domain/order"
)

type fakeWriter struct {
	msgs   []kafka.Message
	err    error
	closed int
}

func (f *fakeWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if f.err != nil {
		return f.err
	}
	f.msgs = append(f.msgs, msgs...)
	return nil
}

func (f *fakeWriter) Close() error {
	f.closed++
	return nil
}

func sampleEvent() OrderCompleted {
	o := order.Order{
		ID:       "A1B2C3D4E5F6",
		Subtotal: decimal.NewFromInt(5000),
		Tax:      decimal.NewFromInt(500),
		Total:    decimal.NewFromInt(5500),
	}
	return NewOrderCompleted(o, "ada@example.com", 5, time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC))
}

func TestPublishKeysByOrderID(t *testing.T) {
	log, _ := test.NewNullLogger()
	w := &fakeWriter{}
	p := newKafkaPublisher(w, "foodhub.orders", log)

	require.NoError(t, p.Publish(context.Background(), sampleEvent()))

	require.Len(t, w.msgs, 1)
	msg := w.msgs[0]
	assert.Equal(t, "A1B2C3D4E5F6", string(msg.Key))

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(msg.Value, &decoded))
	assert.Equal(t, TypeOrderCompleted, decoded["type"])
	assert.Equal(t, "ada@example.com", decoded["customer"])
	assert.EqualValues(t, 5500, decoded["order"].(map[string]any)["total"])
}

func TestPublishWrapsWriterError(t *testing.T) {
	log, _ := test.NewNullLogger()
	boom := errors.New("broker down")
	p := newKafkaPublisher(&fakeWriter{err: boom}, "foodhub.orders", log)

	err := p.Publish(context.Background(), sampleEvent())
	assert.ErrorIs(t, err, boom)
}

func TestPublishAfterClose(t *testing.T) {
	log, _ := test.NewNullLogger()
	w := &fakeWriter{}
	p := newKafkaPublisher(w, "foodhub.orders", log)

	require.NoError(t, p.Close())
	require.NoError(t, p.Close())
	assert.Equal(t, 1, w.closed)
	assert.ErrorIs(t, p.Publish(context.Background(), sampleEvent()), ErrPublisherClosed)
}

func TestNewKafkaPublisherRequiresBrokers(t *testing.T) {
	log, _ := test.NewNullLogger()
	_, err := NewKafkaPublisher(config.EventsConfig{Topic: "foodhub.orders"}, log)
	assert.Error(t, err)
}
