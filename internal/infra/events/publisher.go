// Package events publishes booking lifecycle events to RabbitMQ.
package events

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"dormstay/internal/pkg/errs"
	"dormstay/internal/usecase/commands"
)

// AMQPPublisher pushes events onto a durable queue through the default
// exchange. Messages are persistent so they survive a broker restart.
type AMQPPublisher struct {
	conn  *amqp.Connection
	queue string
}

func NewAMQPPublisher(url, queue string) (*AMQPPublisher, func(), error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, nil, errs.Wrap(err, "failed to connect to amqp broker")
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, nil, errs.Wrap(err, "failed to open amqp channel")
	}
	defer func() { _ = ch.Close() }()

	if _, err := ch.QueueDeclare(queue, true, false, false, false, nil); err != nil {
		_ = conn.Close()
		return nil, nil, errs.Wrap(err, "failed to declare event queue")
	}

	cleanup := func() {
		if err := conn.Close(); err != nil {
			slog.Error("failed to close amqp connection", "error", err)
		}
	}
	return &AMQPPublisher{conn: conn, queue: queue}, cleanup, nil
}

func (p *AMQPPublisher) Publish(ctx context.Context, event commands.BookingEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return errs.Wrap(err, "failed to encode booking event")
	}

	ch, err := p.conn.Channel()
	if err != nil {
		return errs.Wrap(err, "failed to open amqp channel")
	}
	defer func() { _ = ch.Close() }()

	msg := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Body:         body,
	}
	if err := ch.PublishWithContext(ctx, "", p.queue, false, false, msg); err != nil {
		return errs.Wrap(err, "failed to publish booking event")
	}
	return nil
}

// NoopPublisher drops events. Used by the memory profile and in tests.
type NoopPublisher struct{}

func NewNoopPublisher() *NoopPublisher { return &NoopPublisher{} }

func (NoopPublisher) Publish(context.Context, commands.BookingEvent) error { return nil }
