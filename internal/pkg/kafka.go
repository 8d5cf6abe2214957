package pkg

import (
	"context"
	"strconv"

	"github.com/segmentio/kafka-go"
)

// KafkaProducer publishes donation events. Messages are keyed by donor so one
// donor's events land on one partition in order.
type KafkaProducer struct {
	writer *kafka.Writer
	topic  string
}

type KafkaConfig struct {
	Brokers []string
	Topic   string
}

func NewKafkaProducer(cfg KafkaConfig) (*KafkaProducer, error) {
	w := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        cfg.Topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireAll,
		Async:        false,
	}
	return &KafkaProducer{writer: w, topic: cfg.Topic}, nil
}

func (p *KafkaProducer) Close() error {
	if p == nil || p.writer == nil {
		return nil
	}
	return p.writer.Close()
}

// Send publishes one event; eventType (donation / featured_donation /
// pool_join) travels as a header so consumers can route without parsing the
// payload.
func (p *KafkaProducer) Send(ctx context.Context, donorID uint64, eventType string, payload []byte) error {
	msg := kafka.Message{
		Key:   []byte(DonorKey(donorID)),
		Value: payload,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(eventType)},
		},
	}
	return p.writer.WriteMessages(ctx, msg)
}

// DonorKey is the partition key for a donor's event stream.
func DonorKey(donorID uint64) string {
	return strconv.FormatUint(donorID, 10)
}
