package notifications

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"product-catalog/internal/catalog"
	"product-catalog/internal/catalog/messaging"

	amqp "github.com/rabbitmq/amqp091-go"
)

const consumerTag = "notifications-service"

type Consumer struct {
	channel  *amqp.Channel
	queue    string
	logger   *slog.Logger
	lowStock int
}

// NewConsumer declares the events queue and prepares to consume it. Products
// created or updated with at most lowStock units raise a stock alert.
func NewConsumer(conn *amqp.Connection, queue string, lowStock int, logger *slog.Logger) (*Consumer, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, fmt.Errorf("open channel: %w", err)
	}

	if err := messaging.DeclareQueue(ch, queue); err != nil {
		_ = ch.Close()
		return nil, err
	}

	return &Consumer{
		channel:  ch,
		queue:    queue,
		logger:   logger,
		lowStock: lowStock,
	}, nil
}

func (c *Consumer) Listen(ctx context.Context) error {
	msgs, err := c.channel.Consume(
		c.queue,
		consumerTag,
		false, // manual ack
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		return fmt.Errorf("consume queue %q: %w", c.queue, err)
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case msg, ok := <-msgs:
			if !ok {
				return nil
			}

			if err := c.handle(msg.Body); err != nil {
				c.logger.Error("handle message failed", "error", err)
				// A body that does not decode will never decode; requeueing
				// it would loop forever.
				_ = msg.Nack(false, false)
				continue
			}

			_ = msg.Ack(false)
		}
	}
}

func (c *Consumer) handle(body []byte) error {
	var event catalog.ProductEvent
	if err := json.Unmarshal(body, &event); err != nil {
		return fmt.Errorf("unmarshal event: %w", err)
	}

	switch event.EventType {
	case catalog.EventStockReconciled:
		c.logger.Info("stock sold",
			"product_id", event.ProductID,
			"name", event.Name,
			"quantity", event.Quantity,
			"timestamp", event.Timestamp,
		)
	case catalog.EventStockRestored:
		c.logger.Info("stock returned after failed checkout",
			"product_id", event.ProductID,
			"name", event.Name,
			"quantity", event.Quantity,
			"timestamp", event.Timestamp,
		)
	case catalog.EventCreated, catalog.EventUpdated:
		c.logger.Info("notification event",
			"event_type", event.EventType,
			"product_id", event.ProductID,
			"name", event.Name,
			"timestamp", event.Timestamp,
		)
		if event.Quantity <= c.lowStock {
			c.logger.Warn("low stock",
				"product_id", event.ProductID,
				"name", event.Name,
				"quantity", event.Quantity,
				"threshold", c.lowStock,
			)
		}
	default:
		c.logger.Info("notification event",
			"event_type", event.EventType,
			"product_id", event.ProductID,
			"timestamp", event.Timestamp,
		)
	}

	return nil
}

func (c *Consumer) Close() error {
	return c.channel.Close()
}
