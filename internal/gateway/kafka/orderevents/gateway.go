package orderevents

import (
	"context"
	"encoding/json"
	"time"

	"github.com/IBM/sarama"

	"gasline/internal/entities"
	"gasline/pkg/logger"
)

// Gateway pushes order lifecycle events into Kafka. Publishing is best
// effort: a transition that already committed is never rolled back because
// the broker was unreachable, failures are logged and counted instead.
type Gateway struct {
	producer producer
	topic    string
	log      logger.Logger
}

func New(producer producer, topic string, log logger.Logger) *Gateway {
	return &Gateway{
		producer: producer,
		topic:    topic,
		log:      log,
	}
}

func (g *Gateway) Publish(ctx context.Context, event entities.OrderEvent) {
	eventType := string(event.Type)

	payload, err := json.Marshal(event)
	if err != nil {
		PublishTotal.WithLabelValues(eventType, "error").Inc()
		g.log.Error("marshal order event",
			logger.NewField("error", err),
			logger.NewField("event_type", eventType),
			logger.NewField("order_ref", event.OrderRef),
		)
		return
	}

	msg := &sarama.ProducerMessage{
		Topic: g.topic,
		// Keyed by order: events of one order land in one partition, in order.
		Key:   sarama.StringEncoder(event.OrderRef),
		Value: sarama.ByteEncoder(payload),
	}

	start := time.Now()
	_, _, err = g.producer.SendMessage(msg)
	PublishDuration.WithLabelValues(eventType).Observe(time.Since(start).Seconds())
	if err != nil {
		PublishTotal.WithLabelValues(eventType, "error").Inc()
		g.log.Error("publish order event",
			logger.NewField("error", err),
			logger.NewField("event_type", eventType),
			logger.NewField("order_ref", event.OrderRef),
		)
		return
	}

	PublishTotal.WithLabelValues(eventType, "ok").Inc()
}
