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

type SchoolService struct {
	repo     *mysql.SchoolRepository
	needRepo *mysql.NeedRepository
}

// VerifiedSchool is a verified school together with its approved needs.
type VerifiedSchool struct {
	School model.School
	Needs  []model.Need
}

// SchoolSummary is the admin management view.
type SchoolSummary struct {
	School     model.School
	NeedsCount int64
}

func NewSchoolService() *SchoolService {
	return &SchoolService{
		repo:     mysql.NewSchoolRepository(),
		needRepo: mysql.NewNeedRepository(),
	}
}

func (s *SchoolService) CreateSchool(ctx context.Context, name, location, city, state, description string) (*model.School, error) {
	if name == "" || location == "" || city == "" || state == "" {
		return nil, fmt.Errorf("missing required fields: %w", pkg.ErrValidation)
	}

	school := &model.School{
		Name:        name,
		Location:    location,
		City:        city,
		State:       state,
		Description: description,
	}
	if err := s.repo.Create(ctx, school); err != nil {
		return nil, err
	}
	return school, nil
}

// ListVerified returns verified schools with their approved needs; schools
// without any approved need are omitted from the public listing.
func (s *SchoolService) ListVerified(ctx context.Context) ([]VerifiedSchool, error) {
	schools, err := s.repo.ListVerified(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]VerifiedSchool, 0, len(schools))
	for _, school := range schools {
		needs, err := s.needRepo.ListApprovedBySchool(ctx, school.ID)
		if err != nil {
			return nil, err
		}
		if len(needs) == 0 {
			continue
		}
		result = append(result, VerifiedSchool{School: school, Needs: needs})
	}
	return result, nil
}

func (s *SchoolService) AdminListSchools(ctx context.Context) ([]SchoolSummary, error) {
	schools, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]SchoolSummary, 0, len(schools))
	for _, school := range schools {
		count, err := s.needRepo.CountBySchool(ctx, school.ID)
		if err != nil {
			return nil, err
		}
		result = append(result, SchoolSummary{School: school, NeedsCount: count})
	}
	return result, nil
}

func (s *SchoolService) VerifySchool(ctx context.Context, id uint64) error {
	err := s.repo.Verify(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("school %d: %w", id, pkg.ErrNotFound)
	}
	return err
}
