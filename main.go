package main

import (
	"context"
	"os"

	"ecommerce/config"
	"ecommerce/controllers"
	"ecommerce/db"
	"ecommerce/middleware"
	"ecommerce/routes"
	"ecommerce/store"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/rs/zerolog"
)

func main() {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load config")
	}

	if level, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		logger = logger.Level(level)
	}

	database, err := db.Connect(context.Background(), cfg.DatabaseURL, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer database.Close()

	if err := database.EnsureSchema(context.Background()); err != nil {
		logger.Fatal().Err(err).Msg("failed to ensure schema")
	}

	app := fiber.New()

	app.Use(middleware.RequestLogger(logger))
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.AllowOrigins, // คั่นด้วย comma
		AllowMethods: "GET,POST,PUT,PATCH,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	h := controllers.New(store.New(database.Pool), logger)
	routes.RegisterRoutes(app, h)

	if err := app.Listen(":" + cfg.Port); err != nil {
		logger.Fatal().Err(err).Msg("server stopped")
	}
}
