package model

import "time"

type School struct {
	ID          uint64 `gorm:"primaryKey"`
	Name        string `gorm:"size:200;not null"`
	Location    string `gorm:"size:50;not null"` // urban, rural, suburban
	City        string `gorm:"size:100;not null;index"`
	State       string `gorm:"size:50;not null"`
	Description string `gorm:"type:text"`
	Verified    bool   `gorm:"not null;default:false;index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
