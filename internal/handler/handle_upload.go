package handler

import (
	"errors"
	"fmt"
	"time"

	"aplodbot/internal/database"
	"aplodbot/internal/telegram"
	"aplodbot/internal/util"
)

// albumFlushDelay is how long to wait for further parts of a media group
// before the album row is written.
const albumFlushDelay = 2 * time.Second

const saveAttempts = 3

type pendingAlbum struct {
	chatID     int64
	userID     int64
	messageIDs []int64
}

func (h *UpdateHandler) handleUpload(m *telegram.Message, lang string, isAdmin bool) {
	settings, err := h.DB.GetOrCreateSettings(m.Chat.ID)
	if err != nil {
		h.Log.Error().Err(err).Int64("Chat", m.Chat.ID).Msg("Error loading settings")
		return
	}
	if !settings.AllowUploads && !isAdmin {
		h.sendText(m.Chat.ID, "upload_disabled", lang)
		return
	}

	if m.MediaGroupID != "" {
		h.queueAlbumPart(m)
		return
	}

	fileType, originalName := mediaInfo(m)
	for attempt := 0; attempt < saveAttempts; attempt++ {
		id := util.GenerateUniqueID(util.DefaultIDLength)
		file := &database.File{
			FileID:           id,
			UserID:           m.From.ID,
			FileType:         fileType,
			MessageID:        m.MessageID,
			ChatID:           m.Chat.ID,
			Caption:          optional(m.Caption),
			OriginalFilename: optional(originalName),
		}
		err = h.DB.SaveFileInfo(file)
		if errors.Is(err, database.ErrDuplicateID) {
			continue
		}
		if err != nil {
			h.Log.Error().Err(err).Msg("Error saving file")
			return
		}
		h.replyShareLink(m.Chat.ID, id)
		return
	}
	h.Log.Error().Int("Attempts", saveAttempts).Msg("Could not find a free file id")
}

func (h *UpdateHandler) queueAlbumPart(m *telegram.Message) {
	h.albumMu.Lock()
	defer h.albumMu.Unlock()

	pending, ok := h.pendingAlbums[m.MediaGroupID]
	if !ok {
		pending = &pendingAlbum{chatID: m.Chat.ID, userID: m.From.ID}
		h.pendingAlbums[m.MediaGroupID] = pending
		groupID := m.MediaGroupID
		time.AfterFunc(albumFlushDelay, func() { h.flushAlbum(groupID) })
	}
	pending.messageIDs = append(pending.messageIDs, m.MessageID)
}

func (h *UpdateHandler) flushAlbum(groupID string) {
	h.albumMu.Lock()
	pending, ok := h.pendingAlbums[groupID]
	delete(h.pendingAlbums, groupID)
	h.albumMu.Unlock()
	if !ok || len(pending.messageIDs) == 0 {
		return
	}

	for attempt := 0; attempt < saveAttempts; attempt++ {
		id := util.GenerateUniqueID(util.DefaultIDLength)
		err := h.DB.SaveAlbumInfo(id, pending.userID, pending.messageIDs, pending.chatID)
		if errors.Is(err, database.ErrDuplicateID) {
			continue
		}
		if err != nil {
			h.Log.Error().Err(err).Msg("Error saving album")
			return
		}
		h.replyShareLink(pending.chatID, id)
		return
	}
	h.Log.Error().Int("Attempts", saveAttempts).Msg("Could not find a free album id")
}

func (h *UpdateHandler) replyShareLink(chatID int64, id string) {
	link := fmt.Sprintf("https://t.me/%s?start=%s", h.Config.BotUsername, id)
	if _, err := h.Client.SendMessage(chatID, link); err != nil {
		h.Log.Error().Err(err).Int64("Chat", chatID).Msg("Error sending share link")
	}
}

func mediaInfo(m *telegram.Message) (fileType, originalName string) {
	switch {
	case m.Document != nil:
		return "document", m.Document.FileName
	case m.Video != nil:
		return "video", m.Video.FileName
	case m.Audio != nil:
		return "audio", m.Audio.FileName
	case len(m.Photo) > 0:
		return "photo", ""
	}
	return "", ""
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
