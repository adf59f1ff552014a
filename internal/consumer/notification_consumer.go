package consumer

import (
	"encoding/json"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/sirupsen/logrus"
)

// NotificationConsumer drains the notifications queue and hands each event
// to a delivery function. The default delivery is structured logging; a
// real channel (mail, chat, webhook) plugs in through Deliver.
type NotificationConsumer struct {
	log     *logrus.Logger
	Deliver func(routingKey string, payload map[string]any) error
}

func NewNotificationConsumer(log *logrus.Logger) *NotificationConsumer {
	if log == nil {
		log = logrus.StandardLogger()
	}
	c := &NotificationConsumer{log: log}
	c.Deliver = func(routingKey string, payload map[string]any) error {
		c.log.WithField("routing_key", routingKey).WithField("event", payload).
			Info("notification delivered")
		return nil
	}
	return c
}

func (c *NotificationConsumer) Start(msgs <-chan amqp.Delivery) {
	go func() {
		for msg := range msgs {
			c.handle(msg)
		}
	}()
}

func (c *NotificationConsumer) handle(msg amqp.Delivery) {
	var payload map[string]any
	if err := json.Unmarshal(msg.Body, &payload); err != nil {
		c.log.WithError(err).Warn("dropping malformed notification")
		_ = msg.Nack(false, false)
		return
	}
	if err := c.Deliver(msg.RoutingKey, payload); err != nil {
		c.log.WithError(err).WithField("routing_key", msg.RoutingKey).
			Warn("notification delivery failed, requeueing")
		_ = msg.Nack(false, true)
		return
	}
	_ = msg.Ack(false)
}
