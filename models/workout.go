package models

import (
	"time"

	"gorm.io/gorm"
)

// Workout is a logged session. TotalCalories is derived: it is recomputed
// from the exercise list whenever that list is set or replaced, and is never
// editable on its own.
type Workout struct {
	gorm.Model
	UserID        uint       `gorm:"index;not null" json:"userId"`
	Date          time.Time  `gorm:"index" json:"date"`
	Exercises     []Exercise `gorm:"constraint:OnDelete:CASCADE" json:"exercises"`
	Notes         string     `json:"notes"`
	TotalCalories float64    `json:"totalCalories"`
}

type Exercise struct {
	gorm.Model
	WorkoutID   uint    `gorm:"index;not null" json:"-"`
	Name        string  `gorm:"not null" json:"name"`
	Sets        int     `json:"sets"`
	Reps        int     `json:"reps"`
	Weight      float64 `json:"weight"`
	DurationMin float64 `json:"durationMin"`
	Calories    float64 `json:"calories"`
}
