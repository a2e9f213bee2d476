package app

import (
	"time"

	"aplodbot/internal/config"
	"aplodbot/internal/database"
	"aplodbot/internal/handler"
	"aplodbot/internal/telegram"
	"aplodbot/internal/texts"

	_ "aplodbot/internal/app/commands"

	"github.com/rs/zerolog"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type Bot struct {
	Handler *handler.UpdateHandler
	DB      *database.DBInstance
}

// StartBot wires config, database, texts and the Telegram client together and
// begins polling. The database is fully migrated before the handler accepts
// its first update.
func StartBot(configPath string, logger *zerolog.Logger) (*Bot, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, err
	}

	db, err := database.NewDB(postgres.Open(cfg.DatabaseURL), &gorm.Config{}, database.Options{
		BootstrapAdminID: cfg.AdminID,
		QueryTimeout:     time.Duration(cfg.QueryTimeout) * time.Second,
	})
	if err != nil {
		return nil, err
	}

	store, err := texts.NewStore(db, cfg.LocalesPath)
	if err != nil {
		return nil, err
	}

	client := telegram.NewClient(cfg.BotToken, logger)

	h := handler.NewUpdateHandler(handler.UpdateHandlerOptions{
		Config: cfg,
		Client: client,
		DB:     db,
		Texts:  store,
		Logger: logger,
	})
	go h.Run()

	logger.Info().Str("Bot", cfg.BotUsername).Msg("Bot started")
	return &Bot{Handler: h, DB: db}, nil
}

func (b *Bot) Shutdown() error {
	b.Handler.Stop()
	return b.DB.Close()
}
