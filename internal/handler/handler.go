package handler

import (
	"sync"
	"time"

	"github.com/rs/zerolog"

	"aplodbot/internal/command"
	"aplodbot/internal/config"
	"aplodbot/internal/database"
	"aplodbot/internal/telegram"
	"aplodbot/internal/texts"
)

type UpdateHandler struct {
	Config *config.ConfigScheme
	Client *telegram.Client
	DB     *database.DBInstance
	Texts  *texts.Store
	Log    *zerolog.Logger

	cmd    *command.CommandList
	offset int64
	quit   chan struct{}
	wg     sync.WaitGroup

	pendingAlbums map[string]*pendingAlbum
	albumMu       sync.Mutex
}

type UpdateHandlerOptions struct {
	Config *config.ConfigScheme
	Client *telegram.Client
	DB     *database.DBInstance
	Texts  *texts.Store
	Logger *zerolog.Logger
}

func NewUpdateHandler(opts UpdateHandlerOptions) *UpdateHandler {
	return &UpdateHandler{
		Config: opts.Config,
		Client: opts.Client,
		DB:     opts.DB,
		Texts:  opts.Texts,
		Log:    opts.Logger,

		cmd:           command.Default,
		quit:          make(chan struct{}),
		pendingAlbums: make(map[string]*pendingAlbum),
	}
}

// Run long-polls getUpdates and dispatches each message on its own goroutine
// until Stop is called.
func (h *UpdateHandler) Run() {
	for {
		select {
		case <-h.quit:
			return
		default:
		}

		updates, err := h.Client.GetUpdates(h.offset, h.Config.PollTimeout)
		if err != nil {
			h.Log.Error().Err(err).Msg("Failed to fetch updates")
			time.Sleep(3 * time.Second)
			continue
		}

		for _, update := range updates {
			if update.UpdateID >= h.offset {
				h.offset = update.UpdateID + 1
			}
			if update.Message == nil {
				continue
			}
			h.wg.Add(1)
			go func(m *telegram.Message) {
				defer h.wg.Done()
				h.handleMessage(m)
			}(update.Message)
		}
	}
}

func (h *UpdateHandler) Stop() {
	close(h.quit)
	h.wg.Wait()
}

func (h *UpdateHandler) sendText(chatID int64, key, lang string) {
	text, err := h.Texts.Get(key, lang)
	if err != nil {
		h.Log.Error().Err(err).Str("Key", key).Msg("Error resolving text")
		return
	}
	if _, err := h.Client.SendMessage(chatID, text); err != nil {
		h.Log.Error().Err(err).Int64("Chat", chatID).Msg("Error sending message")
	}
}
