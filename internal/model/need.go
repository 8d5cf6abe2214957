package model

import "time"

type NeedStatus string

const (
	NeedPending  NeedStatus = "pending"
	NeedApproved NeedStatus = "approved"
	NeedRejected NeedStatus = "rejected"
)

func (s NeedStatus) Valid() bool {
	switch s {
	case NeedPending, NeedApproved, NeedRejected:
		return true
	default:
		return false
	}
}

type Need struct {
	ID               uint64     `gorm:"primaryKey"`
	SchoolID         uint64     `gorm:"not null;index"`
	Title            string     `gorm:"size:200;not null"`
	Description      string     `gorm:"type:text;not null"`
	Category         string     `gorm:"size:50;not null"`
	Urgency          string     `gorm:"size:20;not null"` // high, medium, low
	TotalNeeded      int64      `gorm:"not null"`
	CurrentDonations int64      `gorm:"not null;default:0"`
	CostPerItem      float64    `gorm:"not null"`
	Status           NeedStatus `gorm:"size:20;not null;default:'pending';index"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func (n *Need) TotalCost() float64 {
	return float64(n.TotalNeeded) * n.CostPerItem
}

// ApplyFunding converts a monetary amount into whole funded items and credits
// them against the remaining requirement. Progress never exceeds TotalNeeded;
// surplus money past the cap is accepted but not tracked. Returns the number
// of items actually credited.
func (n *Need) ApplyFunding(amount float64) int64 {
	if n.CostPerItem <= 0 {
		return 0
	}
	items := int64(amount / n.CostPerItem)
	if items <= 0 {
		return 0
	}
	if remaining := n.TotalNeeded - n.CurrentDonations; items > remaining {
		items = remaining
	}
	if items < 0 {
		items = 0
	}
	n.CurrentDonations += items
	return items
}
