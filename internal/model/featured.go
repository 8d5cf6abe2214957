package model

import "time"

// FeaturedSchool is a city-scoped promotional funding target, separate from
// the verified-school/Need model. Rows are created lazily per city.
type FeaturedSchool struct {
	ID             uint64  `gorm:"primaryKey"`
	UserID         *uint64 `gorm:"index"`
	City           string  `gorm:"size:100;not null;index"`
	Name           string  `gorm:"size:200;not null"`
	Location       string  `gorm:"size:100"`
	Description    string  `gorm:"type:text"`
	Needs          string  `gorm:"type:json"` // display-only JSON list
	FundingGoal    float64
	CurrentFunding float64
}

// ApplyDonation accrues funding with no cap against FundingGoal; overfunding
// is permitted and displayed as-is.
func (f *FeaturedSchool) ApplyDonation(amount float64) {
	f.CurrentFunding += amount
}

type FeaturedSchoolDonation struct {
	ID        uint64  `gorm:"primaryKey"`
	UserID    uint64  `gorm:"not null;index"`
	SchoolID  uint64  `gorm:"not null;index"`
	Amount    float64 `gorm:"not null"`
	CreatedAt time.Time
}
