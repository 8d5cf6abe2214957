package mysql

import (
	"context"
	"fmt"

	"EquiLearn/internal/model"
	"EquiLearn/internal/pkg"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type DonationRepository struct {
	DB *gorm.DB
}

func NewDonationRepository() *DonationRepository {
	return &DonationRepository{DB: DB}
}

// Create persists a donation that moves no counters (pool-typed records from
// the public donation endpoint) together with its outbox row.
func (r *DonationRepository) Create(ctx context.Context, donation *model.Donation) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(donation).Error; err != nil {
			return err
		}
		return insertOutbox(tx, "donation", donation.DonorID, map[string]any{
			"donation_id": donation.ID,
			"amount":      donation.Amount,
			"type":        donation.DonationType,
		})
	})
}

// CreateDirect persists the donation and credits the referenced need in one
// transaction. The need row is locked for the read-modify-write so concurrent
// donations to the same need serialize. Returns the items actually credited.
func (r *DonationRepository) CreateDirect(ctx context.Context, donation *model.Donation) (int64, error) {
	var items int64
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var need model.Need
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&need, *donation.NeedID).Error; err != nil {
			return err
		}
		if need.Status != model.NeedApproved {
			return fmt.Errorf("need %d is not approved: %w", need.ID, pkg.ErrValidation)
		}

		if err := tx.Create(donation).Error; err != nil {
			return err
		}

		items = need.ApplyFunding(donation.Amount)
		if err := tx.Model(&model.Need{}).
			Where("id = ?", need.ID).
			UpdateColumn("current_donations", need.CurrentDonations).Error; err != nil {
			return err
		}

		return insertOutbox(tx, "donation", donation.DonorID, map[string]any{
			"donation_id":  donation.ID,
			"need_id":      need.ID,
			"amount":       donation.Amount,
			"items_funded": items,
			"type":         donation.DonationType,
		})
	})
	return items, err
}

func (r *DonationRepository) ListByDonor(ctx context.Context, donorID uint64) ([]model.Donation, error) {
	var list []model.Donation
	err := r.DB.WithContext(ctx).
		Where("donor_id = ?", donorID).
		Order("created_at DESC").
		Find(&list).Error
	return list, err
}

// SumAmount is the platform-wide donation total; no rows means 0.
func (r *DonationRepository) SumAmount(ctx context.Context) (float64, error) {
	var total float64
	err := r.DB.WithContext(ctx).Model(&model.Donation{}).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&total).Error
	return total, err
}
