package main

import (
	"os"
	"path/filepath"

	"parrillas-backend/config"
	"parrillas-backend/controllers"
	"parrillas-backend/mailer"
	"parrillas-backend/models"
	"parrillas-backend/routes"
	"parrillas-backend/storage"

	"github.com/rs/zerolog"
)

func main() {
	cfg := config.Load()

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	if err := os.MkdirAll(cfg.UploadDir, 0755); err != nil {
		logger.Fatal().Err(err).Str("dir", cfg.UploadDir).Msg("no se pudo crear el directorio de imágenes")
	}

	statsStore := storage.NewStore(filepath.Join(cfg.DataDir, "stats.json"), models.DefaultStats, logger)
	productsStore := storage.NewStore(filepath.Join(cfg.DataDir, "products.json"), models.DefaultProducts, logger)
	configStore := storage.NewStore(filepath.Join(cfg.DataDir, "config.json"), models.DefaultConfig, logger)

	// stats.json y config.json se crean en el primer arranque; el catálogo
	// recién aparece con la primera alta.
	if err := statsStore.Init(); err != nil {
		logger.Fatal().Err(err).Msg("no se pudo inicializar stats.json")
	}
	if err := configStore.Init(); err != nil {
		logger.Fatal().Err(err).Msg("no se pudo inicializar config.json")
	}

	ctrl := &controllers.Controller{
		Stats:           statsStore,
		Products:        productsStore,
		Config:          configStore,
		Mailer:          mailer.NewSMTPMailer(cfg.SMTPHost, cfg.SMTPPort),
		UploadDir:       cfg.UploadDir,
		PasetoSecretKey: cfg.PasetoSecretKey,
		Log:             logger,
	}

	r := routes.Setup(ctrl, cfg.Env)

	logger.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("servidor iniciado")
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Fatal().Err(err).Msg("el servidor terminó con error")
	}
}
