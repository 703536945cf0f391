package main

import (
	"os"
	"path/filepath"
	"time"

	"modlog-bot/bot"
	"modlog-bot/config"
	"modlog-bot/handlers"
	casedb "modlog-bot/utils/database/cases"

	"github.com/rs/zerolog"
)

func main() {
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		With().Timestamp().Logger()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("error loading configuration")
	}

	if err := os.MkdirAll(filepath.Dir(cfg.DBPath), os.ModePerm); err != nil {
		log.Fatal().Err(err).Msg("failed to create data directory")
	}
	db, err := casedb.Init(cfg.DBPath)
	if err != nil {
		log.Fatal().Err(err).Msg("error initializing case database")
	}

	b, err := bot.New(cfg, db, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating bot")
	}

	handlers.Register(b)

	b.Run()

	defer b.Close()
}
