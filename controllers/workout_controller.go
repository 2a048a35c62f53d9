package controllers

import (
	"net/http"
	"strconv"

	"github.com/Rohit220707/FitTrack-pro/models"
	"github.com/Rohit220707/FitTrack-pro/services"
	"github.com/Rohit220707/FitTrack-pro/utils"

	"github.com/gin-gonic/gin"
)

type WorkoutController struct {
	Workouts *services.WorkoutService
}

func NewWorkoutController(workouts *services.WorkoutService) *WorkoutController {
	return &WorkoutController{Workouts: workouts}
}

type ExerciseInput struct {
	Name        string  `json:"name" binding:"required"`
	Sets        int     `json:"sets"`
	Reps        int     `json:"reps"`
	Weight      float64 `json:"weight"`
	DurationMin float64 `json:"durationMin"`
	Calories    float64 `json:"calories"`
}

func toExercises(in []ExerciseInput) []models.Exercise {
	out := make([]models.Exercise, 0, len(in))
	for _, e := range in {
		out = append(out, models.Exercise{
			Name:        e.Name,
			Sets:        e.Sets,
			Reps:        e.Reps,
			Weight:      e.Weight,
			DurationMin: e.DurationMin,
			Calories:    e.Calories,
		})
	}
	return out
}

func workoutID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid workout id"})
		return 0, false
	}
	return uint(id), true
}

func (h *WorkoutController) Create(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
		return
	}

	var body struct {
		Date      string          `json:"date"`
		Exercises []ExerciseInput `json:"exercises" binding:"dive"`
		Notes     string          `json:"notes"`
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

	workout, err := h.Workouts.Create(userID, date, toExercises(body.Exercises), body.Notes)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Workout created", "workout": workout})
}

func (h *WorkoutController) List(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	workouts, err := h.Workouts.List(userID, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, workouts)
}

func (h *WorkoutController) Get(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
		return
	}

	id, ok := workoutID(c)
	if !ok {
		return
	}

	workout, err := h.Workouts.Get(userID, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, workout)
}

func (h *WorkoutController) Update(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
		return
	}

	id, ok := workoutID(c)
	if !ok {
		return
	}

	var body struct {
		Date      *string          `json:"date"`
		Exercises *[]ExerciseInput `json:"exercises"`
		Notes     *string          `json:"notes"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	update := services.WorkoutUpdate{Notes: body.Notes}
	if body.Date != nil {
		date, err := parseDate(*body.Date)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid date, expected YYYY-MM-DD"})
			return
		}
		update.Date = &date
	}
	if body.Exercises != nil {
		exercises := toExercises(*body.Exercises)
		update.Exercises = &exercises
	}

	workout, err := h.Workouts.Update(userID, id, update)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Workout updated", "workout": workout})
}

func (h *WorkoutController) Delete(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
		return
	}

	id, ok := workoutID(c)
	if !ok {
		return
	}

	if err := h.Workouts.Delete(userID, id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Workout deleted"})
}

func (h *WorkoutController) WeeklySummary(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
		return
	}

	summary, err := h.Workouts.WeeklySummary(userID, utils.Today())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

func (h *WorkoutController) MonthlySummary(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
		return
	}

	summary, err := h.Workouts.MonthlySummary(userID, utils.Today())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}
