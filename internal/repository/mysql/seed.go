package mysql

import (
	"errors"
	"time"

	"EquiLearn/internal/model"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Seed bootstraps the admin account and, on an empty database, the sample
// schools, needs and pools used for local development.
func Seed(db *gorm.DB) error {
	var admin model.User
	err := db.Where("email = ?", "admin@equilearn.org").First(&admin).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		admin = model.User{
			Email:    "admin@equilearn.org",
			Password: string(hash),
			Name:     "Admin User",
			Role:     model.RoleAdmin,
		}
		if err := db.Create(&admin).Error; err != nil {
			return err
		}
	} else if err != nil {
		return err
	}

	var schoolCount int64
	if err := db.Model(&model.School{}).Count(&schoolCount).Error; err != nil {
		return err
	}
	if schoolCount == 0 {
		schools := []model.School{
			{Name: "Oakwood Middle School", Location: "urban", City: "Springfield", State: "IL", Verified: true},
			{Name: "Riverside Elementary", Location: "rural", City: "Farmville", State: "NC", Verified: true},
			{Name: "Lincoln High School", Location: "suburban", City: "Fairview", State: "CA", Verified: true},
		}
		if err := db.Create(&schools).Error; err != nil {
			return err
		}

		needs := []model.Need{
			{SchoolID: schools[0].ID, Title: "Chromebooks for Grade 6", Description: "Need 5 Chromebooks for our 6th grade computer lab",
				Category: "Technology", Urgency: "high", TotalNeeded: 5, CurrentDonations: 2, CostPerItem: 300, Status: model.NeedApproved},
			{SchoolID: schools[0].ID, Title: "Science Lab Equipment", Description: "Microscopes and lab supplies for biology class",
				Category: "STEM", Urgency: "medium", TotalNeeded: 10, CurrentDonations: 3, CostPerItem: 150, Status: model.NeedApproved},
			{SchoolID: schools[1].ID, Title: "Art Supplies", Description: "Paint, brushes, and canvas for art class",
				Category: "Art", Urgency: "low", TotalNeeded: 50, CurrentDonations: 15, CostPerItem: 5, Status: model.NeedApproved},
			{SchoolID: schools[2].ID, Title: "Sports Equipment", Description: "Basketballs, soccer balls, and gym equipment",
				Category: "Sports", Urgency: "medium", TotalNeeded: 20, CurrentDonations: 8, CostPerItem: 25, Status: model.NeedApproved},
			{SchoolID: schools[2].ID, Title: "Library Books", Description: "New fiction and non-fiction books for library",
				Category: "Books", Urgency: "low", TotalNeeded: 100, CurrentDonations: 30, CostPerItem: 15, Status: model.NeedApproved},
		}
		if err := db.Create(&needs).Error; err != nil {
			return err
		}
	}

	var poolCount int64
	if err := db.Model(&model.MicroDonationPool{}).Count(&poolCount).Error; err != nil {
		return err
	}
	if poolCount == 0 {
		pools := []model.MicroDonationPool{
			{Name: "Back to School Fund", Description: "Micro-donations pooled across supply drives for the fall term",
				TargetAmount: 5000, EndDate: time.Now().AddDate(0, 3, 0)},
			{Name: "STEM Starter Pool", Description: "Shared funding for science and technology classroom kits",
				TargetAmount: 10000, EndDate: time.Now().AddDate(0, 6, 0)},
		}
		if err := db.Create(&pools).Error; err != nil {
			return err
		}
	}

	return nil
}
