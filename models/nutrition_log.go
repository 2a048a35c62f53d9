package models

import (
	"time"

	"gorm.io/gorm"
)

// NutritionLog is one logged meal or snack. Unlike the daily metric logs,
// multiple entries per day are expected; totals are summed at read time.
type NutritionLog struct {
	gorm.Model
	UserID   uint      `gorm:"index:idx_nutrition_user_date;not null" json:"userId"`
	Date     time.Time `gorm:"index:idx_nutrition_user_date;not null" json:"date"`
	MealType string    `gorm:"default:meal" json:"mealType"` // breakfast|lunch|dinner|snack|meal
	Calories float64   `gorm:"not null" json:"calories"`
	Protein  float64   `json:"protein"`
	Carbs    float64   `json:"carbs"`
	Fat      float64   `json:"fat"`
}
