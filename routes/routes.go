package routes

import (
	"net/http"

	"github.com/Rohit220707/FitTrack-pro/controllers"
	"github.com/Rohit220707/FitTrack-pro/middlewares"
	"github.com/Rohit220707/FitTrack-pro/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRouter wires services and controllers onto a gin engine. The store
// handle comes in from main; nothing below holds package-level state.
func SetupRouter(db *gorm.DB) *gin.Engine {
	r := gin.Default()

	authSvc := services.NewAuthService(db)
	userSvc := services.NewUserService(db)
	trackerSvc := services.NewTrackerService(db)
	achievementSvc := services.NewAchievementService(db)
	workoutSvc := services.NewWorkoutService(db)

	authCtrl := controllers.NewAuthController(authSvc, userSvc)
	adminCtrl := controllers.NewAdminController(userSvc)
	trackerCtrl := controllers.NewTrackerController(trackerSvc, achievementSvc)
	workoutCtrl := controllers.NewWorkoutController(workoutSvc)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	auth := r.Group("/auth")
	{
		auth.POST("/register", authCtrl.Register)
		auth.POST("/login", authCtrl.Login)
		auth.POST("/refresh", authCtrl.Refresh)
		auth.POST("/forgot-password", authCtrl.ForgotPassword)
		auth.POST("/reset-password", authCtrl.ResetPassword)

		protected := auth.Group("")
		protected.Use(middlewares.AuthMiddleware())
		{
			protected.GET("/me", authCtrl.Me)
			protected.PUT("/update-profile", authCtrl.UpdateProfile)
			protected.POST("/upload-avatar", authCtrl.UploadAvatar)
		}
	}

	tracker := r.Group("/tracker")
	tracker.Use(middlewares.AuthMiddleware())
	{
		tracker.POST("/steps", trackerCtrl.AddSteps)
		tracker.GET("/steps/last-30", trackerCtrl.StepsLast30)

		tracker.POST("/water", trackerCtrl.AddWater)
		tracker.GET("/water/last-7", trackerCtrl.WaterLast7)

		tracker.POST("/weight", trackerCtrl.AddWeight)
		tracker.GET("/weight/last-30", trackerCtrl.WeightLast30)

		tracker.POST("/nutrition", trackerCtrl.AddNutrition)
		tracker.GET("/nutrition/today", trackerCtrl.NutritionToday)

		tracker.GET("/achievements", trackerCtrl.GetAchievements)
	}

	workouts := r.Group("/workouts")
	workouts.Use(middlewares.AuthMiddleware())
	{
		workouts.POST("", workoutCtrl.Create)
		workouts.GET("", workoutCtrl.List)
		workouts.GET("/weekly-summary", workoutCtrl.WeeklySummary)
		workouts.GET("/monthly-summary", workoutCtrl.MonthlySummary)
		workouts.GET("/:id", workoutCtrl.Get)
		workouts.PUT("/:id", workoutCtrl.Update)
		workouts.DELETE("/:id", workoutCtrl.Delete)
	}

	admin := r.Group("/admin")
	admin.Use(middlewares.AuthMiddleware(), middlewares.RequireRole("admin"))
	{
		admin.GET("/users", adminCtrl.ListUsers)
	}

	return r
}
