package events

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-api-hub/internal/config"
	"github.com/MKhiriev/go-api-hub/internal/logger"
)

type fakeChannel struct {
	exchange string
	key      string
	msg      amqp.Publishing
	err      error
	closed   int
}

func (f *fakeChannel) PublishWithContext(_ context.Context, exchange, key string, _, _ bool, msg amqp.Publishing) error {
	f.exchange, f.key, f.msg = exchange, key, msg
	return f.err
}

func (f *fakeChannel) Close() error {
	f.closed++
	return nil
}

func TestNewPublisher_NoURLReturnsNop(t *testing.T) {
	p, err := NewPublisher(config.Events{}, logger.Nop())
	require.NoError(t, err)
	assert.IsType(t, nopPublisher{}, p)
	assert.NoError(t, p.Publish(context.Background(), Event{Type: TokenIssued}))
	assert.NoError(t, p.Close())
}

func TestAMQPPublisher_Publish(t *testing.T) {
	ch := &fakeChannel{}
	p := &amqpPublisher{channel: ch, exchange: "auth.events", logger: logger.Nop()}

	err := p.Publish(context.Background(), Event{Type: TokenRevokedAll, UserID: 7, Email: "a@x.com", Count: 3})
	require.NoError(t, err)

	assert.Equal(t, "auth.events", ch.exchange)
	assert.Equal(t, TokenRevokedAll, ch.key)
	assert.Equal(t, "application/json", ch.msg.ContentType)
	assert.Equal(t, amqp.Persistent, ch.msg.DeliveryMode)
	assert.NotEmpty(t, ch.msg.MessageId)

	var got Event
	require.NoError(t, json.Unmarshal(ch.msg.Body, &got))
	assert.Equal(t, int64(3), got.Count)
	assert.Equal(t, "a@x.com", got.Email)
	assert.False(t, got.OccurredAt.IsZero())
}

func TestAMQPPublisher_PublishError(t *testing.T) {
	ch := &fakeChannel{err: errors.New("channel closed")}
	p := &amqpPublisher{channel: ch, exchange: "auth.events", logger: logger.Nop()}

	err := p.Publish(context.Background(), Event{Type: TokenIssued})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "channel closed")
}

func TestAMQPPublisher_Close(t *testing.T) {
	ch := &fakeChannel{}
	p := &amqpPublisher{channel: ch, exchange: "auth.events", logger: logger.Nop()}

	require.NoError(t, p.Close())
	require.NoError(t, p.Close())
	assert.Equal(t, 1, ch.closed)

	assert.ErrorIs(t, p.Publish(context.Background(), Event{Type: TokenIssued}), ErrPublisherClosed)
}
