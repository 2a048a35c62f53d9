package models

import (
	"time"

	"gorm.io/gorm"
)

// WeightLog holds one body-weight reading per user per UTC calendar day.
type WeightLog struct {
	gorm.Model
	UserID   uint      `gorm:"uniqueIndex:idx_weight_user_date;not null" json:"userId"`
	Date     time.Time `gorm:"uniqueIndex:idx_weight_user_date;not null" json:"date"`
	WeightKg float64   `gorm:"not null" json:"weightKg"`
}
