package services

import (
	"errors"
	"time"

	"github.com/Rohit220707/FitTrack-pro/models"
	"github.com/Rohit220707/FitTrack-pro/utils"

	"gorm.io/gorm"
)

// WorkoutService owns workout CRUD and the weekly/monthly calorie summaries.
// Every query is scoped to the owning user; a workout that exists but belongs
// to someone else is indistinguishable from one that doesn't exist.
type WorkoutService struct{ db *gorm.DB }

func NewWorkoutService(db *gorm.DB) *WorkoutService { return &WorkoutService{db: db} }

func totalCalories(exercises []models.Exercise) float64 {
	var sum float64
	for _, ex := range exercises {
		sum += ex.Calories
	}
	return sum
}

// Create stores a workout with its exercises. TotalCalories is derived from
// the exercise list here and on every replace, never taken from the caller.
func (s *WorkoutService) Create(userID uint, date time.Time, exercises []models.Exercise, notes string) (*models.Workout, error) {
	workout := models.Workout{
		UserID:        userID,
		Date:          date.UTC(),
		Exercises:     exercises,
		Notes:         notes,
		TotalCalories: totalCalories(exercises),
	}
	if err := s.db.Create(&workout).Error; err != nil {
		return nil, err
	}
	return &workout, nil
}

// List returns the user's workouts, newest first.
func (s *WorkoutService) List(userID uint, limit int) ([]models.Workout, error) {
	if limit <= 0 {
		limit = 20
	}

	var workouts []models.Workout
	err := s.db.
		Preload("Exercises").
		Where("user_id = ?", userID).
		Order("date DESC").
		Limit(limit).
		Find(&workouts).Error
	if err != nil {
		return nil, err
	}
	if workouts == nil {
		workouts = []models.Workout{}
	}
	return workouts, nil
}

func (s *WorkoutService) Get(userID, id uint) (*models.Workout, error) {
	var workout models.Workout
	err := s.db.
		Preload("Exercises").
		Where("id = ? AND user_id = ?", id, userID).
		First(&workout).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &workout, nil
}

// WorkoutUpdate carries the optional fields of an update. A nil Exercises
// leaves the list and TotalCalories untouched; a non-nil one replaces the
// list wholesale and recomputes the total. There is no per-exercise patching.
type WorkoutUpdate struct {
	Date      *time.Time
	Exercises *[]models.Exercise
	Notes     *string
}

func (s *WorkoutService) Update(userID, id uint, input WorkoutUpdate) (*models.Workout, error) {
	workout, err := s.Get(userID, id)
	if err != nil {
		return nil, err
	}

	if input.Date != nil {
		workout.Date = input.Date.UTC()
	}
	if input.Notes != nil {
		workout.Notes = *input.Notes
	}
	err = s.db.Transaction(func(tx *gorm.DB) error {
		if input.Exercises != nil {
			if err := tx.Unscoped().Where("workout_id = ?", workout.ID).Delete(&models.Exercise{}).Error; err != nil {
				return err
			}
			workout.Exercises = *input.Exercises
			workout.TotalCalories = totalCalories(*input.Exercises)
		}
		return tx.Save(workout).Error
	})
	if err != nil {
		return nil, err
	}
	return workout, nil
}

// Delete removes a workout and its exercises for good. Deleting an id that is
// absent or not owned reports ErrNotFound; it never silently succeeds.
func (s *WorkoutService) Delete(userID, id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Unscoped().Where("id = ? AND user_id = ?", id, userID).Delete(&models.Workout{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrNotFound
		}
		return tx.Unscoped().Where("workout_id = ?", id).Delete(&models.Exercise{}).Error
	})
}

type CaloriesPoint struct {
	Date     string  `json:"date"`
	Calories float64 `json:"calories"`
}

// WeeklySummary returns calories burned per day over the 7-day window ending
// at end, zero-filled and oldest first.
func (s *WorkoutService) WeeklySummary(userID uint, end utils.Day) ([]CaloriesPoint, error) {
	return s.calorieSeries(userID, end, 7)
}

// MonthlySummary is the 30-day variant of WeeklySummary.
func (s *WorkoutService) MonthlySummary(userID uint, end utils.Day) ([]CaloriesPoint, error) {
	return s.calorieSeries(userID, end, 30)
}

// calorieSeries groups the window's workouts by UTC calendar day and sums
// TotalCalories per day. Same dense zero-filled shape as the tracker series.
func (s *WorkoutService) calorieSeries(userID uint, end utils.Day, windowDays int) ([]CaloriesPoint, error) {
	start := end.AddDays(-(windowDays - 1))

	var workouts []models.Workout
	if err := s.db.
		Where("user_id = ? AND date >= ? AND date < ?", userID, start.Time, end.Next()).
		Find(&workouts).Error; err != nil {
		return nil, err
	}

	perDay := map[string]float64{}
	for _, w := range workouts {
		perDay[utils.DayOf(w.Date).Key()] += w.TotalCalories
	}

	out := make([]CaloriesPoint, 0, windowDays)
	for i := 0; i < windowDays; i++ {
		key := start.AddDays(i).Key()
		out = append(out, CaloriesPoint{Date: key, Calories: perDay[key]})
	}
	return out, nil
}
