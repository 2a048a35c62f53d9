package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Name     string `gorm:"not null" json:"name"`
	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	Password string `gorm:"not null" json:"-"`
	Role     string `gorm:"default:user" json:"role"` // "user" | "admin"

	ProfilePicture string  `json:"profilePicture"`
	Age            int     `json:"age"`
	HeightCm       float64 `json:"heightCm"`
	WeightKg       float64 `json:"weightKg"`
	FitnessGoal    string  `json:"fitnessGoal"`

	RefreshToken         string    `json:"-"`
	ResetPasswordToken   string    `json:"-"` // sha256 of the emailed token
	ResetPasswordExpires time.Time `json:"-"`
}
