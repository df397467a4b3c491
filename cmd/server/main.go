package main

import (
	"context"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/example/authsrv/internal/config"
	"github.com/example/authsrv/internal/database"
	"github.com/example/authsrv/internal/routes"
	"github.com/example/authsrv/internal/services"
	"github.com/example/authsrv/internal/store"
)

func main() {
	cfg := config.Load()

	client := database.Connect(cfg.MongoURI)
	defer database.Disconnect(client)

	users := store.NewMongoUserStore(client.Database(cfg.MongoDB))
	if err := users.EnsureIndexes(context.Background()); err != nil {
		log.Fatalf("failed to ensure indexes: %v", err)
	}

	mailer := services.NewMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword, cfg.SenderEmail)

	app := fiber.New(fiber.Config{
		AppName: "Auth Backend",
	})

	app.Use(recover.New())
	app.Use(logger.New())

	routes.Register(app, users, mailer, cfg)

	log.Printf("Starting server on :%s", cfg.AppPort)
	if err := app.Listen(":" + cfg.AppPort); err != nil {
		log.Fatalf("fiber.Listen error: %v", err)
	}
}
