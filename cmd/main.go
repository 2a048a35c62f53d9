package main

import (
	"log"
	"os"

	"github.com/Rohit220707/FitTrack-pro/config"
	"github.com/Rohit220707/FitTrack-pro/routes"
	"github.com/Rohit220707/FitTrack-pro/utils"
)

func main() {
	config.LoadEnv()

	db := config.InitDB()
	utils.InitS3()
	utils.InitMailer()

	r := routes.SetupRouter(db)

	port := os.Getenv("PORT")
	if port == "" {
		port = "5001"
	}
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
