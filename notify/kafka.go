package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/twmb/franz-go/pkg/kgo"
)

// Kafka publishes events to a topic as JSON records. Produces are
// fire-and-forget: delivery is handed to the client's internal buffer and
// Notify returns immediately.
type Kafka struct {
	client *kgo.Client
	topic  string
}

func NewKafka(bootstrapServers []string, topic string) (*Kafka, error) {
	client, err := kgo.NewClient(
		kgo.SeedBrokers(bootstrapServers...),
		kgo.AllowAutoTopicCreation(),
	)
	if err != nil {
		return nil, fmt.Errorf("kafka notifier: %w", err)
	}
	return &Kafka{client: client, topic: topic}, nil
}

type kafkaEvent struct {
	Kind      Kind      `json:"kind"`
	Priority  Priority  `json:"priority"`
	Subject   string    `json:"subject"`
	Body      string    `json:"body"`
	Timestamp time.Time `json:"timestamp"`
}

func (k *Kafka) Notify(ctx context.Context, ev Event) error {
	value, err := json.Marshal(kafkaEvent{
		Kind:      ev.Kind,
		Priority:  ev.Priority,
		Subject:   ev.Subject,
		Body:      ev.Body,
		Timestamp: time.Now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("kafka notifier: marshal event: %w", err)
	}

	record := &kgo.Record{
		Topic: k.topic,
		Key:   []byte(ev.Kind),
		Value: value,
	}
	// A nil promise discards the produce result.
	k.client.Produce(ctx, record, nil)
	return nil
}

// Flush blocks until buffered records are delivered. Used in tests and on
// shutdown.
func (k *Kafka) Flush(ctx context.Context) error {
	return k.client.Flush(ctx)
}

func (k *Kafka) Close() {
	k.client.Close()
}
