package services

import (
	"fmt"
	"time"

	"github.com/Rohit220707/FitTrack-pro/models"
	"github.com/Rohit220707/FitTrack-pro/utils"

	"gorm.io/gorm"
)

// TrackerService owns the daily metric logs (steps, water, weight) and
// nutrition entries. Steps/water/weight are bucketed by UTC calendar day:
// writing twice for the same day overwrites the value, it never accumulates.
type TrackerService struct{ db *gorm.DB }

func NewTrackerService(db *gorm.DB) *TrackerService { return &TrackerService{db: db} }

// ---------- Daily upserts ----------

// UpsertSteps records the step count for a day, replacing any existing value.
// The unique index on (user_id, date) backstops concurrent writes: a race
// between the lookup and the insert surfaces as a store error rather than a
// duplicate row.
func (s *TrackerService) UpsertSteps(userID uint, day utils.Day, steps int) (*models.StepsLog, error) {
	if steps <= 0 {
		return nil, fmt.Errorf("%w: steps required", ErrValidation)
	}

	log := models.StepsLog{UserID: userID, Date: day.Time, Steps: steps}
	err := s.db.
		Where("user_id = ? AND date = ?", userID, day.Time).
		Assign(models.StepsLog{Steps: steps}).
		FirstOrCreate(&log).Error
	if err != nil {
		return nil, err
	}
	return &log, nil
}

// UpsertWater records the water intake (ml) for a day, replacing any existing value.
func (s *TrackerService) UpsertWater(userID uint, day utils.Day, amountMl float64) (*models.WaterLog, error) {
	if amountMl <= 0 {
		return nil, fmt.Errorf("%w: amount required", ErrValidation)
	}

	log := models.WaterLog{UserID: userID, Date: day.Time, AmountMl: amountMl}
	err := s.db.
		Where("user_id = ? AND date = ?", userID, day.Time).
		Assign(models.WaterLog{AmountMl: amountMl}).
		FirstOrCreate(&log).Error
	if err != nil {
		return nil, err
	}
	return &log, nil
}

// UpsertWeight records the body weight (kg) for a day, replacing any existing value.
func (s *TrackerService) UpsertWeight(userID uint, day utils.Day, weightKg float64) (*models.WeightLog, error) {
	if weightKg <= 0 {
		return nil, fmt.Errorf("%w: weight required", ErrValidation)
	}

	log := models.WeightLog{UserID: userID, Date: day.Time, WeightKg: weightKg}
	err := s.db.
		Where("user_id = ? AND date = ?", userID, day.Time).
		Assign(models.WeightLog{WeightKg: weightKg}).
		FirstOrCreate(&log).Error
	if err != nil {
		return nil, err
	}
	return &log, nil
}

// ---------- Rolling windows ----------

type StepsPoint struct {
	Date  string `json:"date"`
	Steps int    `json:"steps"`
}

// StepsLast30 returns one point per calendar day for the 30-day window ending
// at end, oldest first. Days without a log are filled with zero: the charts
// need a dense series, and the store only holds sparse rows.
func (s *TrackerService) StepsLast30(userID uint, end utils.Day) ([]StepsPoint, error) {
	const window = 30
	start := end.AddDays(-(window - 1))

	var logs []models.StepsLog
	if err := s.db.
		Where("user_id = ? AND date BETWEEN ? AND ?", userID, start.Time, end.Time).
		Order("date ASC").
		Find(&logs).Error; err != nil {
		return nil, err
	}

	values := map[string]int{}
	for _, l := range logs {
		values[utils.DayOf(l.Date).Key()] = l.Steps
	}

	out := make([]StepsPoint, 0, window)
	for i := 0; i < window; i++ {
		key := start.AddDays(i).Key()
		out = append(out, StepsPoint{Date: key, Steps: values[key]})
	}
	return out, nil
}

type WaterPoint struct {
	Date     string  `json:"date"`
	AmountMl float64 `json:"amountMl"`
}

// WaterLast7 returns a dense zero-filled 7-day series ending at end, oldest first.
func (s *TrackerService) WaterLast7(userID uint, end utils.Day) ([]WaterPoint, error) {
	const window = 7
	start := end.AddDays(-(window - 1))

	var logs []models.WaterLog
	if err := s.db.
		Where("user_id = ? AND date BETWEEN ? AND ?", userID, start.Time, end.Time).
		Order("date ASC").
		Find(&logs).Error; err != nil {
		return nil, err
	}

	values := map[string]float64{}
	for _, l := range logs {
		values[utils.DayOf(l.Date).Key()] = l.AmountMl
	}

	out := make([]WaterPoint, 0, window)
	for i := 0; i < window; i++ {
		key := start.AddDays(i).Key()
		out = append(out, WaterPoint{Date: key, AmountMl: values[key]})
	}
	return out, nil
}

type WeightPoint struct {
	Date     string  `json:"date"`
	WeightKg float64 `json:"weightKg"`
}

// WeightLast30 returns the logged weights in the 30-day window ending at end,
// oldest first. Weight charts plot a trend line through the readings that
// exist, so missing days are omitted rather than zero-filled.
func (s *TrackerService) WeightLast30(userID uint, end utils.Day) ([]WeightPoint, error) {
	start := end.AddDays(-29)

	var logs []models.WeightLog
	if err := s.db.
		Where("user_id = ? AND date BETWEEN ? AND ?", userID, start.Time, end.Time).
		Order("date ASC").
		Find(&logs).Error; err != nil {
		return nil, err
	}

	out := make([]WeightPoint, 0, len(logs))
	for _, l := range logs {
		out = append(out, WeightPoint{Date: utils.DayOf(l.Date).Key(), WeightKg: l.WeightKg})
	}
	return out, nil
}

// ---------- Nutrition ----------

var mealTypes = map[string]bool{
	"breakfast": true, "lunch": true, "dinner": true, "snack": true, "meal": true,
}

// AddNutrition logs one meal entry. Entries accumulate: same-day entries are
// summed at read time, there is no per-day uniqueness here.
func (s *TrackerService) AddNutrition(userID uint, date time.Time, mealType string, calories, protein, carbs, fat float64) (*models.NutritionLog, error) {
	if calories <= 0 {
		return nil, fmt.Errorf("%w: calories required", ErrValidation)
	}
	if mealType == "" {
		mealType = "meal"
	}
	if !mealTypes[mealType] {
		return nil, fmt.Errorf("%w: invalid meal type %q", ErrValidation, mealType)
	}

	entry := models.NutritionLog{
		UserID:   userID,
		Date:     date.UTC(),
		MealType: mealType,
		Calories: calories,
		Protein:  protein,
		Carbs:    carbs,
		Fat:      fat,
	}
	if err := s.db.Create(&entry).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

type NutritionTotals struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

// NutritionSummary sums all entries logged on the given day. A day with no
// entries yields all-zero totals, never an absent body.
func (s *TrackerService) NutritionSummary(userID uint, day utils.Day) (NutritionTotals, error) {
	var entries []models.NutritionLog
	if err := s.db.
		Where("user_id = ? AND date >= ? AND date < ?", userID, day.Time, day.Next()).
		Find(&entries).Error; err != nil {
		return NutritionTotals{}, err
	}

	totals := NutritionTotals{}
	for _, e := range entries {
		totals.Calories += e.Calories
		totals.Protein += e.Protein
		totals.Carbs += e.Carbs
		totals.Fat += e.Fat
	}
	return totals, nil
}
