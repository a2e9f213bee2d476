package commands

import (
	"strings"
	"time"

	"aplodbot/internal/command"
	"aplodbot/internal/database"
)

func init() {
	cmd := command.Default

	cmd.Register(&command.Command{
		Aliases: []string{"start"},
		Run:     runStart,
	})

	cmd.Register(&command.Command{
		Aliases: []string{"help"},
		Run: func(ctx *command.CommandContext) error {
			return ctx.ReplyText("help")
		},
	})

	cmd.Register(&command.Command{
		Aliases: []string{"lang", "language"},
		Run: func(ctx *command.CommandContext) error {
			code := strings.ToLower(strings.TrimSpace(ctx.Args))
			if code == "" {
				return ctx.ReplyText("language_usage")
			}
			if err := ctx.DB.SetUserLanguage(ctx.Msg.From.ID, code); err != nil {
				return err
			}
			ctx.Lang = code
			return ctx.ReplyText("language_set")
		},
	})
}

func runStart(ctx *command.CommandContext) error {
	settings, err := ctx.DB.GetOrCreateSettings(ctx.Msg.Chat.ID)
	if err != nil {
		return err
	}

	if settings.ForceJoinEnabled && !ctx.IsAdmin {
		channel := settings.ForceJoinChannelID
		if channel != "" && !ctx.Client.IsMember(ctx.Msg.From.ID, channel) {
			if err := ctx.ReplyText("force_join"); err != nil {
				return err
			}
			if settings.ForceJoinLink != "" {
				return ctx.Reply(settings.ForceJoinLink)
			}
			return nil
		}
	}

	if ctx.Args == "" {
		welcome := strings.ReplaceAll(settings.WelcomeMessage, "{user}", ctx.Msg.From.FirstName)
		return ctx.Reply(welcome)
	}

	return deliverPayload(ctx, settings, ctx.Args)
}

// deliverPayload serves a deep-linked file or album by copying the stored
// messages into the requesting chat.
func deliverPayload(ctx *command.CommandContext, settings *database.Settings, id string) error {
	file, err := ctx.DB.GetFileInfo(id)
	if err != nil {
		return err
	}
	if file != nil {
		sent, err := ctx.Client.CopyMessage(ctx.Msg.Chat.ID, file.ChatID, file.MessageID)
		if err != nil {
			return err
		}
		if err := ctx.DB.IncrementFileDownloads(id); err != nil {
			return err
		}
		scheduleAutoDelete(ctx, settings, []int64{sent})
		return nil
	}

	album, err := ctx.DB.GetAlbumInfo(id)
	if err != nil {
		return err
	}
	if album == nil {
		return ctx.ReplyText("file_not_found")
	}

	messageIDs, err := album.MessageIDList()
	if err != nil {
		return err
	}
	sent := make([]int64, 0, len(messageIDs))
	for _, messageID := range messageIDs {
		copied, err := ctx.Client.CopyMessage(ctx.Msg.Chat.ID, album.ChatID, messageID)
		if err != nil {
			return err
		}
		sent = append(sent, copied)
	}
	if err := ctx.DB.IncrementAlbumDownloads(id); err != nil {
		return err
	}
	scheduleAutoDelete(ctx, settings, sent)
	return nil
}

func scheduleAutoDelete(ctx *command.CommandContext, settings *database.Settings, messageIDs []int64) {
	if settings.AutoDeleteTime <= 0 {
		return
	}
	chatID := ctx.Msg.Chat.ID
	client := ctx.Client
	time.AfterFunc(time.Duration(settings.AutoDeleteTime)*time.Second, func() {
		for _, messageID := range messageIDs {
			_ = client.DeleteMessage(chatID, messageID)
		}
	})
}
