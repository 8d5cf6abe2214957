package mysql

import (
	"context"

	"EquiLearn/internal/model"

	"gorm.io/gorm"
)

type SchoolRepository struct {
	DB *gorm.DB
}

func NewSchoolRepository() *SchoolRepository {
	return &SchoolRepository{DB: DB}
}

func (r *SchoolRepository) Create(ctx context.Context, school *model.School) error {
	return r.DB.WithContext(ctx).Create(school).Error
}

func (r *SchoolRepository) FindByID(ctx context.Context, id uint64) (*model.School, error) {
	var school model.School
	err := r.DB.WithContext(ctx).First(&school, id).Error
	return &school, err
}

func (r *SchoolRepository) ListVerified(ctx context.Context) ([]model.School, error) {
	var list []model.School
	err := r.DB.WithContext(ctx).Where("verified = ?", true).Order("id ASC").Find(&list).Error
	return list, err
}

func (r *SchoolRepository) ListAll(ctx context.Context) ([]model.School, error) {
	var list []model.School
	err := r.DB.WithContext(ctx).Order("id ASC").Find(&list).Error
	return list, err
}

// Verify flips the flag unconditionally; re-verifying is a no-op rewrite.
func (r *SchoolRepository) Verify(ctx context.Context, id uint64) error {
	res := r.DB.WithContext(ctx).Model(&model.School{}).Where("id = ?", id).Update("verified", true)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		// distinguish absent from already-verified
		var count int64
		if err := r.DB.WithContext(ctx).Model(&model.School{}).Where("id = ?", id).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return gorm.ErrRecordNotFound
		}
	}
	return nil
}

func (r *SchoolRepository) CountVerified(ctx context.Context) (int64, error) {
	var count int64
	err := r.DB.WithContext(ctx).Model(&model.School{}).Where("verified = ?", true).Count(&count).Error
	return count, err
}
