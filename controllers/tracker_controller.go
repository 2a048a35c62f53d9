package controllers

import (
	"net/http"

	"github.com/Rohit220707/FitTrack-pro/services"
	"github.com/Rohit220707/FitTrack-pro/utils"

	"github.com/gin-gonic/gin"
)

type TrackerController struct {
	Tracker      *services.TrackerService
	Achievements *services.AchievementService
}

func NewTrackerController(tracker *services.TrackerService, achievements *services.AchievementService) *TrackerController {
	return &TrackerController{Tracker: tracker, Achievements: achievements}
}

func (h *TrackerController) AddSteps(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
		return
	}

	var body struct {
		Date  string `json:"date"`
		Steps int    `json:"steps"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	date, err := parseDate(body.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid date, expected YYYY-MM-DD"})
		return
	}

	log, err := h.Tracker.UpsertSteps(userID, utils.DayOf(date), body.Steps)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Steps updated", "log": log})
}

func (h *TrackerController) StepsLast30(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
		return
	}

	series, err := h.Tracker.StepsLast30(userID, utils.Today())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, series)
}

func (h *TrackerController) AddWater(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
		return
	}

	var body struct {
		Date     string  `json:"date"`
		AmountMl float64 `json:"amountMl"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	date, err := parseDate(body.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid date, expected YYYY-MM-DD"})
		return
	}

	log, err := h.Tracker.UpsertWater(userID, utils.DayOf(date), body.AmountMl)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Water updated", "log": log})
}

func (h *TrackerController) WaterLast7(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
		return
	}

	series, err := h.Tracker.WaterLast7(userID, utils.Today())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, series)
}

func (h *TrackerController) AddWeight(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
		return
	}

	var body struct {
		Date     string  `json:"date"`
		WeightKg float64 `json:"weightKg"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	date, err := parseDate(body.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid date, expected YYYY-MM-DD"})
		return
	}

	log, err := h.Tracker.UpsertWeight(userID, utils.DayOf(date), body.WeightKg)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Weight updated", "log": log})
}

func (h *TrackerController) WeightLast30(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
		return
	}

	series, err := h.Tracker.WeightLast30(userID, utils.Today())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, series)
}

func (h *TrackerController) AddNutrition(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
		return
	}

	var body struct {
		Date     string  `json:"date"`
		MealType string  `json:"mealType"`
		Calories float64 `json:"calories"`
		Protein  float64 `json:"protein"`
		Carbs    float64 `json:"carbs"`
		Fat      float64 `json:"fat"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	date, err := parseDate(body.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid date, expected YYYY-MM-DD"})
		return
	}

	entry, err := h.Tracker.AddNutrition(userID, date, body.MealType, body.Calories, body.Protein, body.Carbs, body.Fat)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Nutrition entry added", "entry": entry})
}

func (h *TrackerController) NutritionToday(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
		return
	}

	totals, err := h.Tracker.NutritionSummary(userID, utils.Today())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, totals)
}

func (h *TrackerController) GetAchievements(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
		return
	}

	badges, err := h.Achievements.ComputeBadges(userID, utils.Today())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, badges)
}
