package services

import (
	"testing"
	"time"

	"github.com/Rohit220707/FitTrack-pro/models"
	"github.com/Rohit220707/FitTrack-pro/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpsertStepsOverwrites(t *testing.T) {
	svc := NewTrackerService(testDB(t))
	day := utils.Today()

	_, err := svc.UpsertSteps(1, day, 12000)
	require.NoError(t, err)

	log, err := svc.UpsertSteps(1, day, 5000)
	require.NoError(t, err)
	assert.Equal(t, 5000, log.Steps)

	// Exactly one row for the (user, day) pair, holding the last write.
	var logs []models.StepsLog
	require.NoError(t, svc.db.Where("user_id = ?", 1).Find(&logs).Error)
	require.Len(t, logs, 1)
	assert.Equal(t, 5000, logs[0].Steps)
}

func TestUpsertStepsSeparateDaysAndUsers(t *testing.T) {
	svc := NewTrackerService(testDB(t))
	day := utils.Today()

	_, err := svc.UpsertSteps(1, day, 8000)
	require.NoError(t, err)
	_, err = svc.UpsertSteps(1, day.AddDays(-1), 6000)
	require.NoError(t, err)
	_, err = svc.UpsertSteps(2, day, 4000)
	require.NoError(t, err)

	var count int64
	require.NoError(t, svc.db.Model(&models.StepsLog{}).Count(&count).Error)
	assert.EqualValues(t, 3, count)
}

func TestUpsertValidation(t *testing.T) {
	svc := NewTrackerService(testDB(t))
	day := utils.Today()

	_, err := svc.UpsertSteps(1, day, 0)
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.UpsertWater(1, day, 0)
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.UpsertWeight(1, day, -70)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestStepsLast30EmptyStore(t *testing.T) {
	svc := NewTrackerService(testDB(t))
	end := utils.Today()

	series, err := svc.StepsLast30(1, end)
	require.NoError(t, err)
	require.Len(t, series, 30)

	for i, p := range series {
		assert.Zero(t, p.Steps)
		assert.Equal(t, end.AddDays(i-29).Key(), p.Date)
	}
	assert.Equal(t, end.Key(), series[29].Date)
}

func TestStepsLast30FillsGaps(t *testing.T) {
	svc := NewTrackerService(testDB(t))
	end := utils.Today()

	_, err := svc.UpsertSteps(1, end, 5000)
	require.NoError(t, err)
	_, err = svc.UpsertSteps(1, end.AddDays(-10), 7500)
	require.NoError(t, err)
	// Out of window, must not appear.
	_, err = svc.UpsertSteps(1, end.AddDays(-30), 9999)
	require.NoError(t, err)

	series, err := svc.StepsLast30(1, end)
	require.NoError(t, err)
	require.Len(t, series, 30)

	assert.Equal(t, 5000, series[29].Steps)
	assert.Equal(t, 7500, series[19].Steps)
	assert.Zero(t, series[0].Steps)
}

func TestWaterLast7ZeroFilled(t *testing.T) {
	svc := NewTrackerService(testDB(t))
	end := utils.Today()

	_, err := svc.UpsertWater(1, end.AddDays(-2), 1500)
	require.NoError(t, err)

	series, err := svc.WaterLast7(1, end)
	require.NoError(t, err)
	require.Len(t, series, 7)

	assert.Equal(t, 1500.0, series[4].AmountMl)
	assert.Zero(t, series[0].AmountMl)
	assert.Equal(t, end.AddDays(-6).Key(), series[0].Date)
	assert.Equal(t, end.Key(), series[6].Date)
}

func TestWeightLast30IsSparse(t *testing.T) {
	svc := NewTrackerService(testDB(t))
	end := utils.Today()

	_, err := svc.UpsertWeight(1, end.AddDays(-3), 81.5)
	require.NoError(t, err)
	_, err = svc.UpsertWeight(1, end, 80.9)
	require.NoError(t, err)

	series, err := svc.WeightLast30(1, end)
	require.NoError(t, err)

	// No zero-fill for weight: only logged days, oldest first.
	require.Len(t, series, 2)
	assert.Equal(t, end.AddDays(-3).Key(), series[0].Date)
	assert.Equal(t, 81.5, series[0].WeightKg)
	assert.Equal(t, end.Key(), series[1].Date)
	assert.Equal(t, 80.9, series[1].WeightKg)
}

func TestNutritionEntriesAccumulate(t *testing.T) {
	svc := NewTrackerService(testDB(t))
	now := time.Now().UTC()

	_, err := svc.AddNutrition(1, now, "breakfast", 400, 20, 50, 10)
	require.NoError(t, err)
	_, err = svc.AddNutrition(1, now, "lunch", 600, 30, 70, 15)
	require.NoError(t, err)
	// Another user's entry must not leak into the totals.
	_, err = svc.AddNutrition(2, now, "dinner", 900, 0, 0, 0)
	require.NoError(t, err)

	totals, err := svc.NutritionSummary(1, utils.DayOf(now))
	require.NoError(t, err)
	assert.Equal(t, NutritionTotals{Calories: 1000, Protein: 50, Carbs: 120, Fat: 25}, totals)
}

func TestNutritionSummaryEmptyDayIsZeros(t *testing.T) {
	svc := NewTrackerService(testDB(t))

	totals, err := svc.NutritionSummary(1, utils.Today())
	require.NoError(t, err)
	assert.Equal(t, NutritionTotals{}, totals)
}

func TestNutritionValidation(t *testing.T) {
	svc := NewTrackerService(testDB(t))
	now := time.Now()

	_, err := svc.AddNutrition(1, now, "meal", 0, 0, 0, 0)
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.AddNutrition(1, now, "brunch", 500, 0, 0, 0)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestNutritionDefaultMealType(t *testing.T) {
	svc := NewTrackerService(testDB(t))

	entry, err := svc.AddNutrition(1, time.Now(), "", 500, 0, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, "meal", entry.MealType)
}
