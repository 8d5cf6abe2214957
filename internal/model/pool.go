package model

import "time"

type MicroDonationPool struct {
	ID            uint64  `gorm:"primaryKey"`
	Name          string  `gorm:"size:200;not null"`
	Description   string  `gorm:"type:text;not null"`
	TargetAmount  float64 `gorm:"not null"`
	CurrentAmount float64 `gorm:"not null;default:0"`
	Participants  int64   `gorm:"not null;default:0"`
	EndDate       time.Time
}

// ApplyJoin counts joins, not unique users: the same user joining twice
// increments Participants twice. No cap against TargetAmount.
func (p *MicroDonationPool) ApplyJoin(amount float64) {
	p.CurrentAmount += amount
	p.Participants++
}

type MicroDonationPoolJoin struct {
	ID       uint64  `gorm:"primaryKey"`
	UserID   uint64  `gorm:"not null;index"`
	PoolID   uint64  `gorm:"not null;index"`
	Amount   float64 `gorm:"not null"`
	JoinedAt time.Time `gorm:"autoCreateTime"`
}
