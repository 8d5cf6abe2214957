package mysql

import (
	"context"
	"encoding/json"
	"time"

	"EquiLearn/internal/model"

	"gorm.io/gorm"
)

type OutboxRepository struct {
	DB *gorm.DB
}

func NewOutboxRepository() *OutboxRepository {
	return &OutboxRepository{DB: DB}
}

// insertOutbox appends a funding event inside the caller's transaction so the
// event row commits or aborts together with the mutation it describes.
func insertOutbox(tx *gorm.DB, event string, donorID uint64, fields map[string]any) error {
	fields["event_time"] = time.Now().UTC().Format(time.RFC3339Nano)
	payload, _ := json.Marshal(fields)
	ob := &model.DonationOutbox{
		EventType: event,
		DonorID:   donorID,
		Payload:   string(payload),
		Status:    0,
	}
	return tx.Create(ob).Error
}

func (r *OutboxRepository) List(ctx context.Context, batchSize int) ([]model.DonationOutbox, error) {
	var list []model.DonationOutbox
	if err := r.DB.WithContext(ctx).
		Where("status = 0").
		Order("id ASC").
		Limit(batchSize).
		Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *OutboxRepository) SuccessUpdate(ctx context.Context, id uint64) error {
	return r.DB.WithContext(ctx).Model(&model.DonationOutbox{}).Where("id = ?", id).
		Update("status", 1).Error
}

func (r *OutboxRepository) RetryUpdate(ctx context.Context, id uint64) error {
	return r.DB.WithContext(ctx).Model(&model.DonationOutbox{}).Where("id = ?", id).
		Updates(map[string]any{"status": 2, "retry": gorm.Expr("retry + 1")}).Error
}
