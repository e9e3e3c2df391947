package main

import (
	stdlog "log"
	"time"

	"billing-dashboard-backend/internal/config"
	"billing-dashboard-backend/internal/models"
	"billing-dashboard-backend/internal/routes"
	"billing-dashboard-backend/pkg/logger"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env
	if err := godotenv.Load(); err != nil {
		stdlog.Println("No .env file found, relying on system env")
	}

	log := logger.New(logger.Config{
		Env:   config.Env(),
		Level: config.LogLevel(),
	})

	db, err := config.InitDB()
	if err != nil {
		log.Fatal().Err(err).Msg("database connection")
	}

	if err := db.AutoMigrate(
		&models.Customer{},
		&models.Invoice{},
	); err != nil {
		log.Fatal().Err(err).Msg("schema migration")
	}

	r := gin.Default()
	// CORS config
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.RegisterRoutes(r, db, log)

	if err := r.Run(":" + config.Port()); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
