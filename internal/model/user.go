package model

import (
	"fmt"
	"time"
)

// Role is a closed set; every authorization checkpoint switches over it
// exhaustively instead of comparing strings.
type Role int8

const (
	RoleDonor Role = iota
	RoleAdmin
	RoleSchool
)

func ParseRole(s string) (Role, error) {
	switch s {
	case "", "donor":
		return RoleDonor, nil
	case "admin":
		return RoleAdmin, nil
	case "school":
		return RoleSchool, nil
	default:
		return RoleDonor, fmt.Errorf("unknown role %q", s)
	}
}

func (r Role) String() string {
	switch r {
	case RoleDonor:
		return "donor"
	case RoleAdmin:
		return "admin"
	case RoleSchool:
		return "school"
	default:
		return "donor"
	}
}

type User struct {
	ID        uint64 `gorm:"primaryKey"`
	Email     string `gorm:"uniqueIndex;size:120;not null"`
	Password  string `gorm:"size:255;not null"`
	Name      string `gorm:"size:100;not null"`
	Role      Role   `gorm:"not null;default:0"` // 0=donor, 1=admin, 2=school
	CreatedAt time.Time
	UpdatedAt time.Time
}
