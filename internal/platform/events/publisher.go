package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

// Routing keys for order lifecycle events.
const (
	OrderPaid   = "order.paid"
	OrderFailed = "order.failed"
)

// OrderEvent is the payload published when an order leaves PENDING.
type OrderEvent struct {
	OrderID    int64     `json:"order_id"`
	Status     string    `json:"status"`
	OccurredAt time.Time `json:"occurred_at"`
}

// Publisher emits domain events. Publishing is best effort: callers log
// failures and move on, the order row is the source of truth.
type Publisher interface {
	Publish(ctx context.Context, routingKey string, event OrderEvent) error
}

// AMQPPublisher publishes to a RabbitMQ queue named after the routing key.
// It dials per publish, so a broker restart needs no reconnect handling here.
type AMQPPublisher struct {
	url string
}

func NewAMQPPublisher(url string) *AMQPPublisher {
	return &AMQPPublisher{url: url}
}

var _ Publisher = (*AMQPPublisher)(nil)

func (p *AMQPPublisher) Publish(ctx context.Context, routingKey string, event OrderEvent) error {
	conn, err := amqp.Dial(p.url)
	if err != nil {
		return fmt.Errorf("failed to connect to broker: %w", err)
	}
	defer conn.Close()

	ch, err := conn.Channel()
	if err != nil {
		return fmt.Errorf("failed to open channel: %w", err)
	}
	defer ch.Close()

	if _, err := ch.QueueDeclare(routingKey, true, false, false, false, nil); err != nil {
		return fmt.Errorf("failed to declare queue %s: %w", routingKey, err)
	}

	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	err = ch.PublishWithContext(ctx, "", routingKey, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Body:         body,
	})
	if err != nil {
		return fmt.Errorf("failed to publish to %s: %w", routingKey, err)
	}
	return nil
}

// NoopPublisher is used when no broker is configured.
type NoopPublisher struct{}

var _ Publisher = (*NoopPublisher)(nil)

func (NoopPublisher) Publish(context.Context, string, OrderEvent) error {
	return nil
}
