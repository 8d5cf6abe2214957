package mysql

import (
	"context"

	"EquiLearn/internal/model"

	"gorm.io/gorm"
)

type NeedRepository struct {
	DB *gorm.DB
}

func NewNeedRepository() *NeedRepository {
	return &NeedRepository{DB: DB}
}

func (r *NeedRepository) Create(ctx context.Context, need *model.Need) error {
	return r.DB.WithContext(ctx).Create(need).Error
}

func (r *NeedRepository) FindByID(ctx context.Context, id uint64) (*model.Need, error) {
	var need model.Need
	err := r.DB.WithContext(ctx).First(&need, id).Error
	return &need, err
}

func (r *NeedRepository) ListByStatus(ctx context.Context, status model.NeedStatus) ([]model.Need, error) {
	var list []model.Need
	err := r.DB.WithContext(ctx).Where("status = ?", status).Order("id ASC").Find(&list).Error
	return list, err
}

func (r *NeedRepository) ListApprovedBySchool(ctx context.Context, schoolID uint64) ([]model.Need, error) {
	var list []model.Need
	err := r.DB.WithContext(ctx).
		Where("school_id = ? AND status = ?", schoolID, model.NeedApproved).
		Order("id ASC").
		Find(&list).Error
	return list, err
}

func (r *NeedRepository) CountBySchool(ctx context.Context, schoolID uint64) (int64, error) {
	var count int64
	err := r.DB.WithContext(ctx).Model(&model.Need{}).Where("school_id = ?", schoolID).Count(&count).Error
	return count, err
}

// UpdateStatus rewrites the status regardless of the current value; the
// one-way lifecycle holds because nothing ever writes "pending" here.
func (r *NeedRepository) UpdateStatus(ctx context.Context, id uint64, status model.NeedStatus) error {
	res := r.DB.WithContext(ctx).Model(&model.Need{}).Where("id = ?", id).Update("status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		var count int64
		if err := r.DB.WithContext(ctx).Model(&model.Need{}).Where("id = ?", id).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return gorm.ErrRecordNotFound
		}
	}
	return nil
}

func (r *NeedRepository) CountByStatus(ctx context.Context, status model.NeedStatus) (int64, error) {
	var count int64
	err := r.DB.WithContext(ctx).Model(&model.Need{}).Where("status = ?", status).Count(&count).Error
	return count, err
}
