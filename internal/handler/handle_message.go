package handler

import (
	"strings"

	"aplodbot/internal/command"
	"aplodbot/internal/database"
	"aplodbot/internal/telegram"
)

func (h *UpdateHandler) handleMessage(m *telegram.Message) {
	if m.From == nil {
		return
	}
	userID := m.From.ID

	if err := h.DB.AddUser(userID); err != nil {
		if database.IsConnectionRefused(err) {
			h.Log.Error().Err(err).Msg("Database not accepting connections")
		} else {
			h.Log.Error().Err(err).Int64("User", userID).Msg("Error registering user")
		}
		return
	}

	banned, err := h.DB.IsUserBanned(userID)
	if err != nil {
		h.Log.Error().Err(err).Int64("User", userID).Msg("Error checking ban state")
		return
	}

	lang, err := h.DB.GetUserLanguage(userID)
	if err != nil {
		lang = database.DefaultLanguage
	}

	if banned {
		h.sendText(m.Chat.ID, "banned", lang)
		return
	}

	isAdmin, err := h.DB.IsAdmin(userID)
	if err != nil {
		h.Log.Error().Err(err).Int64("User", userID).Msg("Error checking admin state")
		return
	}

	if strings.HasPrefix(m.Text, "/") {
		h.dispatchCommand(m, lang, isAdmin)
		return
	}

	if hasMedia(m) {
		h.handleUpload(m, lang, isAdmin)
	}
}

func (h *UpdateHandler) dispatchCommand(m *telegram.Message, lang string, isAdmin bool) {
	name, args := splitCommand(m.Text, h.Config.BotUsername)
	cmd, ok := h.cmd.Commands[name]
	if !ok {
		return
	}
	if cmd.Only.Owner && m.From.ID != h.Config.AdminID {
		return
	}
	if cmd.Only.Admin && !isAdmin {
		return
	}

	ctx := &command.CommandContext{
		Client:  h.Client,
		Config:  h.Config,
		Msg:     m,
		DB:      h.DB,
		Texts:   h.Texts,
		Args:    args,
		Command: name,
		Lang:    lang,
		IsAdmin: isAdmin,
	}
	if err := cmd.Run(ctx); err != nil {
		h.Log.Error().Err(err).Str("Command", name).Msg("Command failed")
	}
}

// splitCommand parses "/cmd@botname args" into the bare command name and its
// argument string.
func splitCommand(text, botUsername string) (string, string) {
	body := strings.TrimPrefix(text, "/")
	name, args, _ := strings.Cut(body, " ")
	name = strings.ToLower(name)
	if at := strings.Index(name, "@"); at != -1 {
		if !strings.EqualFold(name[at+1:], botUsername) {
			return "", ""
		}
		name = name[:at]
	}
	return name, strings.TrimSpace(args)
}

func hasMedia(m *telegram.Message) bool {
	return m.Document != nil || m.Video != nil || m.Audio != nil || len(m.Photo) > 0
}
