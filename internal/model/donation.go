package model

import "time"

const (
	DonationDirect = "direct"
	DonationPool   = "pool"
)

// Donation is append-only; rows are never updated or deleted.
type Donation struct {
	ID           uint64  `gorm:"primaryKey"`
	DonorID      uint64  `gorm:"not null;index"`
	NeedID       *uint64 `gorm:"index"`
	Amount       float64 `gorm:"not null"`
	DonationType string  `gorm:"size:20;not null"` // direct, pool
	Message      string  `gorm:"type:text"`
	CreatedAt    time.Time
}

// DonationOutbox buffers funding events for asynchronous delivery to Kafka.
type DonationOutbox struct {
	ID        uint64 `gorm:"primaryKey"`
	EventType string `gorm:"size:32;not null"` // donation / featured_donation / pool_join
	DonorID   uint64 `gorm:"not null"`
	Payload   string `gorm:"type:json;not null"`
	Status    int8   `gorm:"not null;default:0"` // 0=pending,1=sent,2=failed
	Retry     int    `gorm:"not null;default:0"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (DonationOutbox) TableName() string { return "donation_outbox" }
