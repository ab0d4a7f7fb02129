package app

import (
	"log"

	"radioapp/internal/config"
	"radioapp/internal/database"
	"radioapp/internal/mailer"
	"radioapp/internal/repository"
	"radioapp/internal/service"
	"radioapp/internal/storage"
)

func App(cfg *config.Config) (*database.DB, *repository.Repository, *service.Service) {
	db, err := database.ConnectDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	minioClient, err := storage.NewMinIOClient(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize MinIO: %v", err)
	}

	repo := repository.NewRepository(db.DB)

	services := service.NewService(repo, cfg, minioClient, mailer.NewMailer(cfg))

	return db, repo, services
}
