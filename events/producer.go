package events

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/segmentio/kafka-go"

	"github.com/raushankrgupta/stylefinder/models"
)

const clickTopic = "style.clicks"

// ClickProducer streams purchase-click events to Kafka for attribution.
// A producer built without a broker is a no-op, click recording never
// blocks on messaging being configured.
type ClickProducer struct {
	writer *kafka.Writer
}

func NewClickProducer(broker string) *ClickProducer {
	if broker == "" {
		fmt.Println("[Events] KAFKA_BROKER not set, click events will not be streamed")
		return &ClickProducer{}
	}
	return &ClickProducer{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(broker),
			Topic:        clickTopic,
			Balancer:     &kafka.LeastBytes{},
			RequiredAcks: kafka.RequireOne,
			Async:        true,
		},
	}
}

// PublishClick keys messages by user so one user's clicks stay ordered.
func (p *ClickProducer) PublishClick(ctx context.Context, event models.ClickEvent) {
	if p == nil || p.writer == nil {
		return
	}
	value, err := json.Marshal(event)
	if err != nil {
		fmt.Printf("[Events] failed to marshal click event: %v\n", err)
		return
	}
	msg := kafka.Message{
		Key:   []byte(event.UserID),
		Value: value,
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		fmt.Printf("[Events] failed to publish click event: %v\n", err)
	}
}

func (p *ClickProducer) Close() error {
	if p == nil || p.writer == nil {
		return nil
	}
	return p.writer.Close()
}
