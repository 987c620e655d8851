package main

import (
	"fmt"
	"os"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/austintylerallen/civicstack/internal/analytics"
	"github.com/austintylerallen/civicstack/internal/config"
	"github.com/austintylerallen/civicstack/internal/database"
	"github.com/austintylerallen/civicstack/internal/server"
)

func main() {
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	cfg := config.Load()
	database.Init(cfg.DBDSN, cfg.AdminEmail, cfg.AdminPassword)

	// The archival sweep also runs lazily on read paths; the daily entry just
	// keeps a quiet instance from accumulating stale issues.
	sched := cron.New()
	_, err := sched.AddFunc("@daily", func() {
		n, err := analytics.SweepArchive(database.DB)
		if err != nil {
			log.Error().Err(err).Msg("scheduled archive sweep failed")
			return
		}
		if n > 0 {
			log.Info().Int64("archived", n).Msg("archive sweep")
		}
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to schedule archive sweep")
	}
	sched.Start()
	defer sched.Stop()

	r := server.NewRouter(cfg)

	addr := fmt.Sprintf(":%s", cfg.ServerPort)
	log.Info().Str("addr", addr).Msg("starting server")
	if err := r.Run(addr); err != nil {
		log.Fatal().Err(err).Msg("server error")
	}
}
