package rabbitmq

import (
	"context"
	"fmt"
	"sync"

	"github.com/goccy/go-json"
	amqp "github.com/rabbitmq/amqp091-go"

	"versenotes/internal/model"
)

// EventPublisher sends domain events to a durable queue on the default
// exchange. The queue is declared on publish until a declare succeeds.
type EventPublisher struct {
	conn      *amqp.Connection
	queueName string

	mu       sync.Mutex
	declared bool
}

func NewEventPublisher(conn *amqp.Connection, queueName string) *EventPublisher {
	return &EventPublisher{
		conn:      conn,
		queueName: queueName,
	}
}

func (p *EventPublisher) Publish(ctx context.Context, evt model.Event) error {
	if p.conn == nil || p.conn.IsClosed() {
		return fmt.Errorf("rabbitmq connection closed")
	}

	ch, err := p.conn.Channel()
	if err != nil {
		return fmt.Errorf("open rabbitmq channel failed: %w", err)
	}
	defer ch.Close()

	if err := p.ensureQueue(func() error {
		_, err := ch.QueueDeclare(
			p.queueName,
			true,
			false,
			false,
			false,
			nil,
		)
		return err
	}); err != nil {
		return fmt.Errorf("declare queue failed: %w", err)
	}

	msg, err := encodeEvent(evt)
	if err != nil {
		return err
	}

	if err := ch.PublishWithContext(ctx, "", p.queueName, false, false, msg); err != nil {
		return fmt.Errorf("publish event failed: %w", err)
	}
	return nil
}

// ensureQueue runs declare unless an earlier call already succeeded. A failed
// declare is retried on the next publish.
func (p *EventPublisher) ensureQueue(declare func() error) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.declared {
		return nil
	}
	if err := declare(); err != nil {
		return err
	}
	p.declared = true
	return nil
}

func encodeEvent(evt model.Event) (amqp.Publishing, error) {
	payload, err := json.Marshal(evt)
	if err != nil {
		return amqp.Publishing{}, fmt.Errorf("marshal event payload failed: %w", err)
	}
	return amqp.Publishing{
		ContentType:  "application/json",
		Type:         evt.Type,
		Timestamp:    evt.OccurredAt,
		Body:         payload,
		DeliveryMode: amqp.Persistent,
	}, nil
}
