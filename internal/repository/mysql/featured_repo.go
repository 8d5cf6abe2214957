package mysql

import (
	"context"

	"EquiLearn/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type FeaturedSchoolRepository struct {
	DB *gorm.DB
}

func NewFeaturedSchoolRepository() *FeaturedSchoolRepository {
	return &FeaturedSchoolRepository{DB: DB}
}

func (r *FeaturedSchoolRepository) ListByCity(ctx context.Context, city string) ([]model.FeaturedSchool, error) {
	var list []model.FeaturedSchool
	err := r.DB.WithContext(ctx).Where("city = ?", city).Order("id ASC").Find(&list).Error
	return list, err
}

func (r *FeaturedSchoolRepository) CreateBatch(ctx context.Context, schools []model.FeaturedSchool) error {
	if len(schools) == 0 {
		return nil
	}
	return r.DB.WithContext(ctx).Create(&schools).Error
}

// Donate accrues funding on the locked row with no cap against the goal and,
// for attributable contributions, appends the per-user donation event.
func (r *FeaturedSchoolRepository) Donate(ctx context.Context, schoolID uint64, userID *uint64, amount float64) (*model.FeaturedSchool, error) {
	var school model.FeaturedSchool
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&school, schoolID).Error; err != nil {
			return err
		}

		school.ApplyDonation(amount)
		if err := tx.Model(&model.FeaturedSchool{}).
			Where("id = ?", school.ID).
			UpdateColumn("current_funding", school.CurrentFunding).Error; err != nil {
			return err
		}

		var donorID uint64
		if userID != nil {
			donorID = *userID
			event := &model.FeaturedSchoolDonation{
				UserID:   donorID,
				SchoolID: school.ID,
				Amount:   amount,
			}
			if err := tx.Create(event).Error; err != nil {
				return err
			}
		}

		return insertOutbox(tx, "featured_donation", donorID, map[string]any{
			"school_id": school.ID,
			"city":      school.City,
			"amount":    amount,
		})
	})
	if err != nil {
		return nil, err
	}
	return &school, nil
}

// SumUserDonations totals a user's featured-school giving across all schools.
func (r *FeaturedSchoolRepository) SumUserDonations(ctx context.Context, userID uint64) (float64, error) {
	var total float64
	err := r.DB.WithContext(ctx).Model(&model.FeaturedSchoolDonation{}).
		Select("COALESCE(SUM(amount), 0)").
		Where("user_id = ?", userID).
		Scan(&total).Error
	return total, err
}
