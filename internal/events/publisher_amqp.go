package events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/MKhiriev/go-api-hub/internal/config"
	"github.com/MKhiriev/go-api-hub/internal/logger"
)

// ErrPublisherClosed is returned by Publish after Close.
var ErrPublisherClosed = errors.New("publisher is closed")

// channel is the subset of *amqp.Channel used by amqpPublisher.
type channel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

// amqpPublisher publishes persistent JSON messages to a durable topic
// exchange. The routing key is the event type.
type amqpPublisher struct {
	conn     *amqp.Connection
	channel  channel
	exchange string

	// amqp channels are not safe for concurrent publishing
	mu     sync.Mutex
	closed bool

	logger *logger.Logger
}

// NewPublisher returns an AMQP publisher when cfg.AMQPURL is set and a
// no-op publisher otherwise.
func NewPublisher(cfg config.Events, logger *logger.Logger) (Publisher, error) {
	if cfg.AMQPURL == "" {
		logger.Info().Msg("events broker is not configured, lifecycle events are discarded")
		return NewNopPublisher(), nil
	}

	return NewAMQPPublisher(cfg.AMQPURL, cfg.Exchange, logger)
}

// NewAMQPPublisher dials the broker and declares the exchange.
func NewAMQPPublisher(url, exchange string, logger *logger.Logger) (Publisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		logger.Err(err).Str("func", "NewAMQPPublisher").Msg("rabbitmq dial failed")
		return nil, fmt.Errorf("rabbitmq dial failed: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("rabbitmq channel open failed: %w", err)
	}

	if err = ch.ExchangeDeclare(
		exchange, // name
		"topic",  // kind
		true,     // durable
		false,    // autoDelete
		false,    // internal
		false,    // noWait
		nil,      // args
	); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("rabbitmq exchange declare failed: %w", err)
	}
	logger.Info().Str("exchange", exchange).Msg("connected to events broker")

	return &amqpPublisher{
		conn:     conn,
		channel:  ch,
		exchange: exchange,
		logger:   logger,
	}, nil
}

func (p *amqpPublisher) Publish(ctx context.Context, event Event) error {
	if event.OccurredAt.IsZero() {
		event.OccurredAt = time.Now().UTC()
	}

	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event failed: %w", err)
	}

	msg := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    uuid.NewString(),
		Timestamp:    event.OccurredAt,
		Type:         event.Type,
		Body:         body,
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return ErrPublisherClosed
	}

	if err = p.channel.PublishWithContext(ctx, p.exchange, event.Type, false, false, msg); err != nil {
		return fmt.Errorf("rabbitmq publish failed: %w", err)
	}

	return nil
}

func (p *amqpPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return nil
	}
	p.closed = true

	err := p.channel.Close()
	if p.conn != nil {
		err = errors.Join(err, p.conn.Close())
	}
	return err
}

type nopPublisher struct{}

// NewNopPublisher returns a Publisher that drops every event.
func NewNopPublisher() Publisher {
	return nopPublisher{}
}

func (nopPublisher) Publish(context.Context, Event) error { return nil }

func (nopPublisher) Close() error { return nil }
