package service

import (
	"context"
	"errors"
	"fmt"
	"log"

	"gorm.io/gorm"

	"EquiLearn/internal/model"
	"EquiLearn/internal/pkg"
	"EquiLearn/internal/repository/mysql"
	"EquiLearn/internal/repository/redis"
)

type donationStore interface {
	Create(ctx context.Context, donation *model.Donation) error
	CreateDirect(ctx context.Context, donation *model.Donation) (int64, error)
	ListByDonor(ctx context.Context, donorID uint64) ([]model.Donation, error)
}

type needFinder interface {
	FindByID(ctx context.Context, id uint64) (*model.Need, error)
}

type donorResolver interface {
	ResolveDonor(ctx context.Context, userID *uint64, donorName string) (*model.User, error)
}

type statsInvalidator interface {
	Invalidate(ctx context.Context) error
}

type DonationService struct {
	donations donationStore
	needs     needFinder
	schools   schoolFinder
	resolver  donorResolver
	stats     statsInvalidator
	smtp      pkg.SMTPConfig
}

type DonateRequest struct {
	NeedID       *uint64
	Amount       float64
	DonationType string
	Message      string
	DonorName    string
}

type DonateResult struct {
	Donation    *model.Donation
	ItemsFunded int64
}

// DonationView is a history row enriched with need and school names.
type DonationView struct {
	ID         uint64  `json:"id"`
	Amount     float64 `json:"amount"`
	Type       string  `json:"type"`
	Message    string  `json:"message"`
	Date       string  `json:"date"`
	NeedTitle  string  `json:"need_title,omitempty"`
	SchoolName string  `json:"school_name,omitempty"`
}

func NewDonationService(users *UserService, smtp pkg.SMTPConfig) *DonationService {
	return &DonationService{
		donations: mysql.NewDonationRepository(),
		needs:     mysql.NewNeedRepository(),
		schools:   mysql.NewSchoolRepository(),
		resolver:  users,
		stats:     redis.NewStatsCacheRepository(),
		smtp:      smtp,
	}
}

// Donate resolves the donor identity (synthesizing an anonymous one when the
// request carries no session), persists the donation, and for direct
// donations credits the referenced need.
func (s *DonationService) Donate(ctx context.Context, userID *uint64, req DonateRequest) (*DonateResult, error) {
	if req.Amount <= 0 {
		return nil, fmt.Errorf("amount must be positive: %w", pkg.ErrValidation)
	}
	if req.DonationType != model.DonationDirect && req.DonationType != model.DonationPool {
		return nil, fmt.Errorf("donation_type must be direct or pool: %w", pkg.ErrValidation)
	}

	donor, err := s.resolver.ResolveDonor(ctx, userID, req.DonorName)
	if err != nil {
		return nil, err
	}

	donation := &model.Donation{
		DonorID:      donor.ID,
		NeedID:       req.NeedID,
		Amount:       req.Amount,
		DonationType: req.DonationType,
		Message:      req.Message,
	}

	var items int64
	if req.DonationType == model.DonationDirect && req.NeedID != nil {
		items, err = s.donations.CreateDirect(ctx, donation)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("need %d: %w", *req.NeedID, pkg.ErrNotFound)
		}
	} else {
		err = s.donations.Create(ctx, donation)
	}
	if err != nil {
		return nil, err
	}

	if err := s.stats.Invalidate(ctx); err != nil {
		log.Printf("stats invalidate err: %v", err)
	}

	// Receipts go only to callers who donated under their own account.
	if userID != nil {
		s.sendReceipt(ctx, donor, donation)
	}

	return &DonateResult{Donation: donation, ItemsFunded: items}, nil
}

func (s *DonationService) History(ctx context.Context, userID uint64) ([]DonationView, error) {
	donations, err := s.donations.ListByDonor(ctx, userID)
	if err != nil {
		return nil, err
	}

	result := make([]DonationView, 0, len(donations))
	for _, d := range donations {
		view := DonationView{
			ID:      d.ID,
			Amount:  d.Amount,
			Type:    d.DonationType,
			Message: d.Message,
			Date:    d.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		}
		if d.NeedID != nil {
			if need, err := s.needs.FindByID(ctx, *d.NeedID); err == nil {
				view.NeedTitle = need.Title
				if school, err := s.schools.FindByID(ctx, need.SchoolID); err == nil {
					view.SchoolName = school.Name
				}
			}
		}
		result = append(result, view)
	}
	return result, nil
}

func (s *DonationService) sendReceipt(ctx context.Context, donor *model.User, donation *model.Donation) {
	if !s.smtp.Enabled() {
		return
	}
	target := "EquiLearn schools"
	if donation.NeedID != nil {
		if need, err := s.needs.FindByID(ctx, *donation.NeedID); err == nil {
			target = need.Title
		}
	}
	html := pkg.DonationReceiptHTML(donor.Name, donation.Amount, target)
	go func() {
		if err := pkg.SendEmail(s.smtp, donor.Email, "Your EquiLearn donation receipt", html); err != nil {
			log.Printf("receipt mail err: %v", err)
		}
	}()
}
