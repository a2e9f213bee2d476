package command

import (
	"fmt"

	"aplodbot/internal/config"
	"aplodbot/internal/database"
	"aplodbot/internal/telegram"
	"aplodbot/internal/texts"
)

var Default = &CommandList{Commands: make(map[string]*Command), Aliases: make([]string, 0)}

type CommandContext struct {
	Client  *telegram.Client
	Config  *config.ConfigScheme
	Msg     *telegram.Message
	DB      *database.DBInstance
	Texts   *texts.Store
	Args    string
	Command string
	Lang    string
	IsAdmin bool
}

type Only struct {
	Owner bool
	Admin bool
}

type Command struct {
	Aliases []string
	Run     func(ctx *CommandContext) error
	Only    Only
}

type CommandList struct {
	Commands map[string]*Command
	Aliases  []string
}

func (r *CommandList) Register(cmd *Command) {
	for _, a := range cmd.Aliases {
		if _, ok := r.Commands[a]; ok {
			panic(fmt.Sprintf("Duplicate command %s", a))
		}
		r.Commands[a] = cmd
	}
	r.Aliases = append(r.Aliases, cmd.Aliases...)
}

// Reply sends text back to the chat the command came from.
func (ctx *CommandContext) Reply(text string) error {
	_, err := ctx.Client.SendMessage(ctx.Msg.Chat.ID, text)
	return err
}

// ReplyText resolves a text key through the store and sends it.
func (ctx *CommandContext) ReplyText(key string) error {
	text, err := ctx.Texts.Get(key, ctx.Lang)
	if err != nil {
		return err
	}
	return ctx.Reply(text)
}
