package service

import (
	"context"
	"log"
	"time"

	"EquiLearn/internal/model"
	"EquiLearn/internal/pkg"
	"EquiLearn/internal/repository/mysql"
)

type outboxStore interface {
	List(ctx context.Context, batchSize int) ([]model.DonationOutbox, error)
	SuccessUpdate(ctx context.Context, id uint64) error
	RetryUpdate(ctx context.Context, id uint64) error
}

type Sender func(ctx context.Context, ob *model.DonationOutbox) error

// OutboxRelayer drains pending donation events to the configured sender.
type OutboxRelayer struct {
	repo      outboxStore
	batchSize int
	interval  time.Duration
	sender    Sender
}

func NewOutboxRelayer(sender Sender) *OutboxRelayer {
	return &OutboxRelayer{
		repo:      mysql.NewOutboxRepository(),
		batchSize: 200,
		interval:  time.Second,
		sender:    sender,
	}
}

func (r *OutboxRelayer) Run(ctx context.Context) {
	t := time.NewTicker(r.interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			r.drainOnce(ctx)
		}
	}
}

func (r *OutboxRelayer) drainOnce(ctx context.Context) {
	rows, err := r.repo.List(ctx, r.batchSize)
	if err != nil {
		log.Printf("outbox query err: %v", err)
		return
	}
	for i := range rows {
		ob := rows[i]
		if err = r.sender(ctx, &ob); err != nil {
			_ = r.repo.RetryUpdate(ctx, ob.ID)
			continue
		}
		_ = r.repo.SuccessUpdate(ctx, ob.ID)
	}
}

// LogSender is the fallback when no Kafka brokers are configured.
func LogSender(ctx context.Context, ob *model.DonationOutbox) error {
	log.Printf("OUTBOX SEND type=%s donor=%d payload=%s", ob.EventType, ob.DonorID, ob.Payload)
	return nil
}

// KafkaSender publishes events keyed by donor so a donor's events stay ordered
// within a partition.
func KafkaSender(producer *pkg.KafkaProducer) Sender {
	return func(ctx context.Context, ob *model.DonationOutbox) error {
		return producer.Send(ctx, ob.DonorID, ob.EventType, []byte(ob.Payload))
	}
}
