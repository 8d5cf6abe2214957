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

type featuredStore interface {
	ListByCity(ctx context.Context, city string) ([]model.FeaturedSchool, error)
	CreateBatch(ctx context.Context, schools []model.FeaturedSchool) error
	Donate(ctx context.Context, schoolID uint64, userID *uint64, amount float64) (*model.FeaturedSchool, error)
	SumUserDonations(ctx context.Context, userID uint64) (float64, error)
}

type FeaturedService struct {
	repo featuredStore
}

type FeaturedDonateResult struct {
	School         *model.FeaturedSchool
	UserTotalGiven float64
}

func NewFeaturedService() *FeaturedService {
	return &FeaturedService{repo: mysql.NewFeaturedSchoolRepository()}
}

// ListByCity returns the city's featured schools, seeding the template set on
// the first lookup for a city with no rows.
func (s *FeaturedService) ListByCity(ctx context.Context, city string) ([]model.FeaturedSchool, error) {
	if city == "" {
		return nil, fmt.Errorf("city is required: %w", pkg.ErrValidation)
	}

	list, err := s.repo.ListByCity(ctx, city)
	if err != nil {
		return nil, err
	}
	if len(list) > 0 {
		return list, nil
	}

	seeded := defaultFeaturedSchools(city)
	if err := s.repo.CreateBatch(ctx, seeded); err != nil {
		return nil, err
	}
	return seeded, nil
}

// Donate accrues uncapped funding and, for authenticated callers, reports
// their featured-school giving total across all schools.
func (s *FeaturedService) Donate(ctx context.Context, schoolID uint64, userID *uint64, amount float64) (*FeaturedDonateResult, error) {
	if amount <= 0 {
		return nil, fmt.Errorf("amount must be positive: %w", pkg.ErrValidation)
	}

	school, err := s.repo.Donate(ctx, schoolID, userID, amount)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("featured school %d: %w", schoolID, pkg.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}

	result := &FeaturedDonateResult{School: school}
	if userID != nil {
		total, err := s.repo.SumUserDonations(ctx, *userID)
		if err != nil {
			return nil, err
		}
		result.UserTotalGiven = total
	}
	return result, nil
}

func defaultFeaturedSchools(city string) []model.FeaturedSchool {
	return []model.FeaturedSchool{
		{
			City:        city,
			Name:        fmt.Sprintf("%s Community Elementary", city),
			Location:    city,
			Description: "A neighborhood elementary school raising funds for classroom essentials.",
			Needs:       `["School supplies","Classroom library","Field trips"]`,
			FundingGoal: 10000,
		},
		{
			City:        city,
			Name:        fmt.Sprintf("%s STEM Academy", city),
			Location:    city,
			Description: "A magnet school expanding its science and technology programs.",
			Needs:       `["Lab equipment","Robotics kits","Tutoring hours"]`,
			FundingGoal: 15000,
		},
		{
			City:        city,
			Name:        fmt.Sprintf("%s Arts High School", city),
			Location:    city,
			Description: "A public high school rebuilding its arts and music departments.",
			Needs:       `["Instruments","Art supplies","Stage upgrades"]`,
			FundingGoal: 8000,
		},
	}
}
