package models

import (
	"time"

	"gorm.io/gorm"
)

// WaterLog holds one intake amount per user per UTC calendar day.
type WaterLog struct {
	gorm.Model
	UserID   uint      `gorm:"uniqueIndex:idx_water_user_date;not null" json:"userId"`
	Date     time.Time `gorm:"uniqueIndex:idx_water_user_date;not null" json:"date"`
	AmountMl float64   `gorm:"not null" json:"amountMl"`
}
