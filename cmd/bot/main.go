package main

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"aplodbot/internal/app"

	"github.com/rs/zerolog"
)

func main() {
	configPath := "./config/config.toml"
	logger := zerolog.
		New(os.Stdout).
		With().
		Timestamp().
		Logger().
		Output(zerolog.ConsoleWriter{
			Out:        os.Stdout,
			TimeFormat: time.TimeOnly,
		}).
		Level(zerolog.InfoLevel)

	bot, err := app.StartBot(configPath, &logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("Startup failed")
	}

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM, syscall.SIGINT, syscall.SIGABRT)
	<-c

	if err := bot.Shutdown(); err != nil {
		logger.Error().Err(err).Msg("Shutdown error")
	}
}
