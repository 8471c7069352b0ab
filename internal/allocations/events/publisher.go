package events

import (
	"context"

	"aula/pkg/kafka"
)

// Publisher abstracts event delivery so the service can be tested with a
// recording stub.
type Publisher interface {
	PublishResolved(ctx context.Context, event *AllocationResolved, correlationID string) error
}

type kafkaPublisher struct {
	producer *kafka.Producer
	source   string
}

func NewKafkaPublisher(producer *kafka.Producer, source string) Publisher {
	return &kafkaPublisher{
		producer: producer,
		source:   source,
	}
}

func (p *kafkaPublisher) PublishResolved(ctx context.Context, event *AllocationResolved, correlationID string) error {
	msg := kafka.NewMessage().
		WithKey(event.AllocationID).
		WithValue(event).
		WithEventType(TypeAllocationResolved).
		WithCorrelationID(correlationID).
		WithSource(p.source).
		Build()

	return p.producer.Publish(ctx, msg)
}
