package service

import (
	"context"
	"log"

	"EquiLearn/internal/model"
	"EquiLearn/internal/repository/mysql"
	"EquiLearn/internal/repository/redis"
)

type donationSummer interface {
	SumAmount(ctx context.Context) (float64, error)
}

type schoolCounter interface {
	CountVerified(ctx context.Context) (int64, error)
}

type needCounter interface {
	CountByStatus(ctx context.Context, status model.NeedStatus) (int64, error)
}

type statsCache interface {
	Get(ctx context.Context, dst any) (bool, error)
	Set(ctx context.Context, stats any) error
}

// ImpactStats are derived display metrics; students_impacted is a heuristic
// (one student per $100 donated), not a measured quantity.
type ImpactStats struct {
	TotalDonations   float64 `json:"total_donations"`
	SchoolsHelped    int64   `json:"schools_helped"`
	NeedsFunded      int64   `json:"needs_funded"`
	StudentsImpacted int64   `json:"students_impacted"`
}

type ImpactService struct {
	donations donationSummer
	schools   schoolCounter
	needs     needCounter
	cache     statsCache
}

func NewImpactService() *ImpactService {
	return &ImpactService{
		donations: mysql.NewDonationRepository(),
		schools:   mysql.NewSchoolRepository(),
		needs:     mysql.NewNeedRepository(),
		cache:     redis.NewStatsCacheRepository(),
	}
}

// Stats is read-only and tolerates an empty store: every aggregate is 0.
func (s *ImpactService) Stats(ctx context.Context) (*ImpactStats, error) {
	var cached ImpactStats
	if hit, err := s.cache.Get(ctx, &cached); err == nil && hit {
		return &cached, nil
	}

	total, err := s.donations.SumAmount(ctx)
	if err != nil {
		return nil, err
	}
	schools, err := s.schools.CountVerified(ctx)
	if err != nil {
		return nil, err
	}
	needs, err := s.needs.CountByStatus(ctx, model.NeedApproved)
	if err != nil {
		return nil, err
	}

	stats := &ImpactStats{
		TotalDonations:   total,
		SchoolsHelped:    schools,
		NeedsFunded:      needs,
		StudentsImpacted: int64(total / 100),
	}
	if err := s.cache.Set(ctx, stats); err != nil {
		log.Printf("stats cache set err: %v", err)
	}
	return stats, nil
}
