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

type needStore interface {
	Create(ctx context.Context, need *model.Need) error
	ListByStatus(ctx context.Context, status model.NeedStatus) ([]model.Need, error)
	UpdateStatus(ctx context.Context, id uint64, status model.NeedStatus) error
}

type schoolFinder interface {
	FindByID(ctx context.Context, id uint64) (*model.School, error)
}

type NeedService struct {
	needs   needStore
	schools schoolFinder
}

// PendingNeed is the admin approval-queue view.
type PendingNeed struct {
	ID            uint64  `json:"id"`
	SchoolName    string  `json:"school_name"`
	Title         string  `json:"title"`
	Description   string  `json:"description"`
	Category      string  `json:"category"`
	Urgency       string  `json:"urgency"`
	TotalCost     float64 `json:"total_cost"`
	SubmittedDate string  `json:"submitted_date"`
}

func NewNeedService() *NeedService {
	return &NeedService{
		needs:   mysql.NewNeedRepository(),
		schools: mysql.NewSchoolRepository(),
	}
}

func (s *NeedService) CreateNeed(ctx context.Context, need *model.Need) (*model.Need, error) {
	if need.SchoolID == 0 || need.Title == "" || need.Description == "" ||
		need.Category == "" || need.Urgency == "" {
		return nil, fmt.Errorf("missing required fields: %w", pkg.ErrValidation)
	}
	if need.TotalNeeded <= 0 || need.CostPerItem <= 0 {
		return nil, fmt.Errorf("total_needed and cost_per_item must be positive: %w", pkg.ErrValidation)
	}

	need.CurrentDonations = 0
	need.Status = model.NeedPending
	if err := s.needs.Create(ctx, need); err != nil {
		return nil, err
	}
	return need, nil
}

func (s *NeedService) ListPending(ctx context.Context) ([]PendingNeed, error) {
	needs, err := s.needs.ListByStatus(ctx, model.NeedPending)
	if err != nil {
		return nil, err
	}

	result := make([]PendingNeed, 0, len(needs))
	for _, need := range needs {
		schoolName := ""
		if school, err := s.schools.FindByID(ctx, need.SchoolID); err == nil {
			schoolName = school.Name
		}
		result = append(result, PendingNeed{
			ID:            need.ID,
			SchoolName:    schoolName,
			Title:         need.Title,
			Description:   need.Description,
			Category:      need.Category,
			Urgency:       need.Urgency,
			TotalCost:     need.TotalCost(),
			SubmittedDate: need.CreatedAt.Format("2006-01-02"),
		})
	}
	return result, nil
}

// Approve and Reject are terminal: nothing in this service ever writes a need
// back to pending. Re-approving an approved need rewrites the same status.
func (s *NeedService) Approve(ctx context.Context, id uint64) error {
	return s.transition(ctx, id, model.NeedApproved)
}

func (s *NeedService) Reject(ctx context.Context, id uint64) error {
	return s.transition(ctx, id, model.NeedRejected)
}

func (s *NeedService) transition(ctx context.Context, id uint64, status model.NeedStatus) error {
	err := s.needs.UpdateStatus(ctx, id, status)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("need %d: %w", id, pkg.ErrNotFound)
	}
	return err
}
