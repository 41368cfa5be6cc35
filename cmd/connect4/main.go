package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/ZuraLog/connect4/internal/config"
)

func main() {
	if err := godotenv.Load(); err != nil {
		if err := godotenv.Load("../.env"); err != nil {
			log.Debug().Msg("no .env file found")
		}
	}

	cfg := config.LoadConfig()

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	logFile, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.LogFile).Msg("cannot open log file")
	}
	defer logFile.Close()

	if cfg.LogPretty {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: logFile, NoColor: true})
	} else {
		log.Logger = log.Output(logFile)
	}

	log.Info().Str("difficulty", cfg.Difficulty).Msg("starting connect4")

	if err := RunUI(cfg); err != nil {
		log.Fatal().Err(err).Msg("ui error")
	}
}
