package handlers

import (
	"strings"

	"modlog-bot/bot"
	"modlog-bot/handlers/modlog"

	"github.com/bwmarrin/discordgo"
)

func handleInteractionCreate(s *discordgo.Session, i *discordgo.InteractionCreate, b *bot.Bot) {
	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		if h, ok := b.CommandHandlers[i.ApplicationCommandData().Name]; ok {
			h(s, i)
		}
	case discordgo.InteractionMessageComponent:
		customID := i.MessageComponentData().CustomID
		if strings.HasPrefix(customID, "modlog_kind:") || strings.HasPrefix(customID, "modlog_page:") {
			modlog.HandleComponent(s, i, b, b.ModlogSessions)
		}
	}
}
