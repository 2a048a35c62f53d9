package config

import (
	"fmt"
	"log"
	"os"

	"github.com/Rohit220707/FitTrack-pro/models"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// LoadEnv reads .env into the process environment. A missing file is fine in
// deployed environments where config comes from the platform.
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}
}

// InitDB opens the Postgres connection and migrates the schema. The returned
// handle is the single process-wide store connection; main passes it into the
// router, which injects it into every service. An unreachable store at boot
// is fatal.
func InitDB() *gorm.DB {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.StepsLog{},
		&models.WaterLog{},
		&models.WeightLog{},
		&models.NutritionLog{},
		&models.Workout{},
		&models.Exercise{},
	); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	return db
}
