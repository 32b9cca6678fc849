package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/varunvasudeva1/wordplay/internal/cli"
	"github.com/varunvasudeva1/wordplay/internal/config"
)

func main() {
	_ = godotenv.Load(getEnv("ENV_FILE", config.DefaultEnvFile))
	cfg := config.Load()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, NoColor: cfg.NoColor})
	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	os.Exit(cli.Execute(cfg))
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
