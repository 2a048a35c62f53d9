package models

import (
	"time"

	"gorm.io/gorm"
)

// StepsLog holds one step count per user per UTC calendar day. Date is always
// a UTC midnight; the composite unique index is what guarantees at most one
// row per (user, day) even under concurrent writes.
type StepsLog struct {
	gorm.Model
	UserID uint      `gorm:"uniqueIndex:idx_steps_user_date;not null" json:"userId"`
	Date   time.Time `gorm:"uniqueIndex:idx_steps_user_date;not null" json:"date"`
	Steps  int       `gorm:"not null" json:"steps"`
}
