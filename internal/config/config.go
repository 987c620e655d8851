package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

type Config struct {
	DBDSN      string
	ServerPort string
	JWTSecret  string
	UploadDir  string

	AdminEmail    string
	AdminPassword string

	// Announcement create/delete has historically been open to all staff;
	// admin-only enforcement is opt-in (off by default).
	EnforceAnnouncementAdmin bool

	// Requests per second allowed on the anonymous submission endpoints.
	PublicRateRPS int
}

func Load() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		DBDSN:                    os.Getenv("DB_DSN"),
		ServerPort:               os.Getenv("SERVER_PORT"),
		JWTSecret:                os.Getenv("JWT_SECRET"),
		UploadDir:                os.Getenv("UPLOAD_DIR"),
		AdminEmail:               os.Getenv("ADMIN_EMAIL"),
		AdminPassword:            os.Getenv("ADMIN_PASSWORD"),
		EnforceAnnouncementAdmin: os.Getenv("ENFORCE_ANNOUNCEMENT_ADMIN") == "true",
	}

	if cfg.DBDSN == "" {
		log.Fatal().Msg("DB_DSN is not set")
	}
	if cfg.JWTSecret == "" {
		log.Fatal().Msg("JWT_SECRET is not set")
	}
	if cfg.ServerPort == "" {
		cfg.ServerPort = "8080"
	}
	if cfg.UploadDir == "" {
		cfg.UploadDir = "uploads"
	}

	cfg.PublicRateRPS = 5
	if v := os.Getenv("PUBLIC_RATE_RPS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.PublicRateRPS = n
		}
	}

	return cfg
}
