package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"EquiLearn/internal/model"
	"EquiLearn/internal/pkg"
	"EquiLearn/internal/repository/mysql"
)

type poolStore interface {
	List(ctx context.Context) ([]model.MicroDonationPool, error)
	Join(ctx context.Context, poolID, userID uint64, amount float64) (*model.MicroDonationPool, error)
}

type PoolService struct {
	repo poolStore
}

func NewPoolService() *PoolService {
	return &PoolService{repo: mysql.NewPoolRepository()}
}

func (s *PoolService) List(ctx context.Context) ([]model.MicroDonationPool, error) {
	return s.repo.List(ctx)
}

// Join requires an authenticated user; the route guard guarantees userID.
func (s *PoolService) Join(ctx context.Context, poolID, userID uint64, amount float64) (*model.MicroDonationPool, error) {
	if amount <= 0 {
		return nil, fmt.Errorf("amount must be positive: %w", pkg.ErrValidation)
	}

	pool, err := s.repo.Join(ctx, poolID, userID, amount)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("pool %d: %w", poolID, pkg.ErrNotFound)
	}
	return pool, err
}
