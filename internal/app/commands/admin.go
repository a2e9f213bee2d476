package commands

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"aplodbot/internal/command"
	"aplodbot/internal/database"
	"aplodbot/internal/telegram"
)

func init() {
	cmd := command.Default

	cmd.Register(&command.Command{
		Aliases: []string{"stats"},
		Only:    command.Only{Admin: true},
		Run:     runStats,
	})

	cmd.Register(&command.Command{
		Aliases: []string{"ban"},
		Only:    command.Only{Admin: true},
		Run: func(ctx *command.CommandContext) error {
			return runBanState(ctx, ctx.DB.BanUser)
		},
	})

	cmd.Register(&command.Command{
		Aliases: []string{"unban"},
		Only:    command.Only{Admin: true},
		Run: func(ctx *command.CommandContext) error {
			return runBanState(ctx, ctx.DB.UnbanUser)
		},
	})

	cmd.Register(&command.Command{
		Aliases: []string{"addadmin"},
		Only:    command.Only{Owner: true},
		Run: func(ctx *command.CommandContext) error {
			userID, err := strconv.ParseInt(strings.TrimSpace(ctx.Args), 10, 64)
			if err != nil {
				return ctx.ReplyText("invalid_user_id")
			}
			if err := ctx.DB.AddAdmin(userID); err != nil {
				return err
			}
			return ctx.ReplyText("admin_added")
		},
	})

	cmd.Register(&command.Command{
		Aliases: []string{"deladmin", "removeadmin"},
		Only:    command.Only{Owner: true},
		Run: func(ctx *command.CommandContext) error {
			userID, err := strconv.ParseInt(strings.TrimSpace(ctx.Args), 10, 64)
			if err != nil {
				return ctx.ReplyText("invalid_user_id")
			}
			if err := ctx.DB.RemoveAdmin(userID); err != nil {
				return err
			}
			return ctx.ReplyText("admin_removed")
		},
	})

	cmd.Register(&command.Command{
		Aliases: []string{"set"},
		Only:    command.Only{Admin: true},
		Run:     runSet,
	})

	cmd.Register(&command.Command{
		Aliases: []string{"settext"},
		Only:    command.Only{Admin: true},
		Run: func(ctx *command.CommandContext) error {
			key, text, found := strings.Cut(ctx.Args, " ")
			if !found || key == "" || text == "" {
				return ctx.ReplyText("settext_usage")
			}
			if err := ctx.Texts.Set(key, strings.TrimSpace(text)); err != nil {
				return err
			}
			return ctx.ReplyText("text_updated")
		},
	})

	cmd.Register(&command.Command{
		Aliases: []string{"search"},
		Only:    command.Only{Admin: true},
		Run:     runSearch,
	})

	cmd.Register(&command.Command{
		Aliases: []string{"del", "delete"},
		Only:    command.Only{Admin: true},
		Run:     runDelete,
	})
}

func runStats(ctx *command.CommandContext) error {
	users, err := ctx.DB.CountUsers()
	if err != nil {
		return err
	}
	activeToday, err := ctx.DB.CountActiveUsersToday()
	if err != nil {
		return err
	}
	newThisWeek, err := ctx.DB.CountNewUsers(7)
	if err != nil {
		return err
	}
	files, err := ctx.DB.CountFiles()
	if err != nil {
		return err
	}
	albums, err := ctx.DB.CountAlbums()
	if err != nil {
		return err
	}
	admins, err := ctx.DB.CountAdmins()
	if err != nil {
		return err
	}

	return ctx.Reply(fmt.Sprintf(
		"Users: %d\nActive today: %d\nNew this week: %d\nFiles: %d\nAlbums: %d\nAdmins: %d",
		users, activeToday, newThisWeek, files, albums, admins,
	))
}

func runBanState(ctx *command.CommandContext, apply func(int64) error) error {
	userID, err := strconv.ParseInt(strings.TrimSpace(ctx.Args), 10, 64)
	if err != nil {
		return ctx.ReplyText("invalid_user_id")
	}
	if err := apply(userID); err != nil {
		return err
	}
	return ctx.ReplyText("done")
}

// runSet updates one settings column: /set <field> <value>. Field names go
// through the closed SettingField set, so a typo is rejected before any
// statement runs.
func runSet(ctx *command.CommandContext) error {
	fieldName, rawValue, found := strings.Cut(ctx.Args, " ")
	if !found || fieldName == "" {
		return ctx.ReplyText("set_usage")
	}
	rawValue = strings.TrimSpace(rawValue)

	field := database.SettingField(strings.ToLower(fieldName))
	err := ctx.DB.UpdateSetting(ctx.Msg.Chat.ID, field, coerceSettingValue(rawValue))
	if err != nil {
		if errors.Is(err, database.ErrUnknownSettingField) {
			return ctx.ReplyText("unknown_setting")
		}
		return err
	}

	// Channel links also resolve to a channel identifier for membership checks.
	if field == database.SettingForceJoinLink {
		if channel, ok := telegram.ParseChannelIdentifier(rawValue); ok {
			if err := ctx.DB.UpdateSetting(ctx.Msg.Chat.ID, database.SettingForceJoinChannelID, channel); err != nil {
				return err
			}
		}
	}
	if field == database.SettingViewReactionLink {
		if channel, ok := telegram.ParseChannelIdentifier(rawValue); ok {
			if err := ctx.DB.UpdateSetting(ctx.Msg.Chat.ID, database.SettingViewReactionChannelID, channel); err != nil {
				return err
			}
		}
	}

	return ctx.ReplyText("setting_updated")
}

func coerceSettingValue(raw string) any {
	switch strings.ToLower(raw) {
	case "true", "on":
		return true
	case "false", "off":
		return false
	}
	if n, err := strconv.Atoi(raw); err == nil {
		return n
	}
	return raw
}

func runSearch(ctx *command.CommandContext) error {
	query := strings.TrimSpace(ctx.Args)
	if query == "" {
		return ctx.ReplyText("search_usage")
	}
	files, err := ctx.DB.SearchFiles(query)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return ctx.ReplyText("search_no_results")
	}

	var b strings.Builder
	for _, file := range files {
		b.WriteString(file.FileID)
		if file.OriginalFilename != nil {
			b.WriteString(" — ")
			b.WriteString(*file.OriginalFilename)
		}
		b.WriteString("\n")
	}
	return ctx.Reply(b.String())
}

// runDelete removes a stored file or album by its shared id.
func runDelete(ctx *command.CommandContext) error {
	id := strings.TrimSpace(ctx.Args)
	if id == "" {
		return ctx.ReplyText("delete_usage")
	}

	file, err := ctx.DB.GetFileInfo(id)
	if err != nil {
		return err
	}
	if file != nil {
		if err := ctx.DB.DeleteFileInfo(id); err != nil {
			return err
		}
		return ctx.ReplyText("deleted")
	}

	album, err := ctx.DB.GetAlbumInfo(id)
	if err != nil {
		return err
	}
	if album != nil {
		if err := ctx.DB.DeleteAlbumInfo(id); err != nil {
			return err
		}
		return ctx.ReplyText("deleted")
	}
	return ctx.ReplyText("file_not_found")
}
