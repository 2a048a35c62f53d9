package services

import (
	"github.com/Rohit220707/FitTrack-pro/models"
	"github.com/Rohit220707/FitTrack-pro/utils"

	"gorm.io/gorm"
)

// Achievement thresholds, evaluated over a trailing 7-day window.
const (
	achievementWindowDays = 7
	activeWeekWorkouts    = 3
	calorieBurnerKcal     = 3500
	stepHeroDailySteps    = 10000
	stepHeroDays          = 3
	hydrationProDailyMl   = 2000
	hydrationProDays      = 3
)

// AchievementService derives badges from the last week of workouts, steps and
// water logs. Badges are computed on every read and never stored.
type AchievementService struct{ db *gorm.DB }

func NewAchievementService(db *gorm.DB) *AchievementService {
	return &AchievementService{db: db}
}

// ComputeBadges evaluates every badge rule over the 7 calendar days ending at
// asOf (inclusive). Rules are independent; a user can earn all four at once.
func (s *AchievementService) ComputeBadges(userID uint, asOf utils.Day) ([]models.Badge, error) {
	start := asOf.AddDays(-(achievementWindowDays - 1))

	var workouts []models.Workout
	if err := s.db.
		Where("user_id = ? AND date >= ? AND date < ?", userID, start.Time, asOf.Next()).
		Find(&workouts).Error; err != nil {
		return nil, err
	}

	var totalCalories float64
	for _, w := range workouts {
		totalCalories += w.TotalCalories
	}

	var stepsLogs []models.StepsLog
	if err := s.db.
		Where("user_id = ? AND date >= ? AND date < ?", userID, start.Time, asOf.Next()).
		Find(&stepsLogs).Error; err != nil {
		return nil, err
	}

	// Count distinct days, not rows. The unique index should make them the
	// same thing for steps and water, but the badge must stay correct even
	// if duplicate rows ever slip in.
	stepDays := map[string]bool{}
	for _, l := range stepsLogs {
		if l.Steps >= stepHeroDailySteps {
			stepDays[utils.DayOf(l.Date).Key()] = true
		}
	}

	var waterLogs []models.WaterLog
	if err := s.db.
		Where("user_id = ? AND date >= ? AND date < ?", userID, start.Time, asOf.Next()).
		Find(&waterLogs).Error; err != nil {
		return nil, err
	}

	waterDays := map[string]bool{}
	for _, l := range waterLogs {
		if l.AmountMl >= hydrationProDailyMl {
			waterDays[utils.DayOf(l.Date).Key()] = true
		}
	}

	badges := []models.Badge{}

	if len(workouts) >= activeWeekWorkouts {
		badges = append(badges, models.Badge{
			ID:          "active-week",
			Label:       "Active Week",
			Description: "Completed 3+ workouts in the last 7 days",
		})
	}

	if totalCalories >= calorieBurnerKcal {
		badges = append(badges, models.Badge{
			ID:          "calorie-burner",
			Label:       "Calorie Burner",
			Description: "Burned 3500+ kcal in the last 7 days",
		})
	}

	if len(stepDays) >= stepHeroDays {
		badges = append(badges, models.Badge{
			ID:          "step-hero",
			Label:       "Step Hero",
			Description: "Hit 10,000+ steps on 3+ days this week",
		})
	}

	if len(waterDays) >= hydrationProDays {
		badges = append(badges, models.Badge{
			ID:          "hydration-pro",
			Label:       "Hydration Pro",
			Description: "Drank 2L+ water on 3+ days this week",
		})
	}

	return badges, nil
}
