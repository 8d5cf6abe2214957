package mysql

import (
	"context"

	"EquiLearn/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PoolRepository struct {
	DB *gorm.DB
}

func NewPoolRepository() *PoolRepository {
	return &PoolRepository{DB: DB}
}

func (r *PoolRepository) List(ctx context.Context) ([]model.MicroDonationPool, error) {
	var list []model.MicroDonationPool
	err := r.DB.WithContext(ctx).Order("end_date ASC").Find(&list).Error
	return list, err
}

func (r *PoolRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.DB.WithContext(ctx).Model(&model.MicroDonationPool{}).Count(&count).Error
	return count, err
}

// Join locks the pool row, bumps amount and participant count, and records the
// per-user join. Repeat joins by the same user count again on purpose.
func (r *PoolRepository) Join(ctx context.Context, poolID, userID uint64, amount float64) (*model.MicroDonationPool, error) {
	var pool model.MicroDonationPool
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&pool, poolID).Error; err != nil {
			return err
		}

		pool.ApplyJoin(amount)
		if err := tx.Model(&model.MicroDonationPool{}).
			Where("id = ?", pool.ID).
			UpdateColumns(map[string]any{
				"current_amount": pool.CurrentAmount,
				"participants":   pool.Participants,
			}).Error; err != nil {
			return err
		}

		join := &model.MicroDonationPoolJoin{
			UserID: userID,
			PoolID: pool.ID,
			Amount: amount,
		}
		if err := tx.Create(join).Error; err != nil {
			return err
		}

		return insertOutbox(tx, "pool_join", userID, map[string]any{
			"pool_id": pool.ID,
			"amount":  amount,
		})
	})
	if err != nil {
		return nil, err
	}
	return &pool, nil
}
