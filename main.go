package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/guessing-game/internal/console"
	"github.com/robalobadob/guessing-game/internal/game"
	"github.com/robalobadob/guessing-game/internal/secret"
)

func main() {
	_ = godotenv.Load()
	// stdout belongs to the game; logs go to stderr.
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	if lvl, err := zerolog.ParseLevel(getEnv("LOG_LEVEL", "warn")); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	g, err := game.NewRandom(secret.NewCryptoSource())
	if err != nil {
		log.Fatal().Err(err).Msg("failed to pick target")
	}

	if err := console.New(os.Stdin, os.Stdout, g, log.Logger).Run(); err != nil {
		log.Fatal().Err(err).Msg("game aborted")
	}
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
