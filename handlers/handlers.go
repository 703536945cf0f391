package handlers

import (
	"modlog-bot/bot"
	"modlog-bot/handlers/cases"
	"modlog-bot/handlers/modlog"
	"modlog-bot/model"
	"modlog-bot/utils"

	"github.com/bwmarrin/discordgo"
)

// Register wires the command handler map and the gateway event handlers
// into the bot.
func Register(b *bot.Bot) {
	b.CommandHandlers = commandHandlers(b)
	addHandlers(b)
}

// withModeration gates a handler behind the guild's moderator roles and
// the fixed per-command cooldown.
func withModeration(b *bot.Bot, name string, h func(s *discordgo.Session, i *discordgo.InteractionCreate, b model.Bot)) func(s *discordgo.Session, i *discordgo.InteractionCreate) {
	return func(s *discordgo.Session, i *discordgo.InteractionCreate) {
		if i.Member == nil {
			utils.SendEphemeralResponse(s, i, "This command can only be used in a server.")
			return
		}
		guildCfg, ok := b.GetConfig().GuildConfigs[i.GuildID]
		if !ok || !utils.IsModerator(i.Member.Roles, guildCfg.ModeratorRoleIDs) {
			utils.SendEphemeralResponse(s, i, "You do not have permission to use this command.")
			return
		}
		if !utils.CheckAndSetCooldown(name, i.Member.User.ID) {
			utils.SendEphemeralResponse(s, i, "You are using this command too quickly. Please wait a moment.")
			return
		}
		h(s, i, b)
	}
}

func commandHandlers(b *bot.Bot) map[string]func(s *discordgo.Session, i *discordgo.InteractionCreate) {
	return map[string]func(s *discordgo.Session, i *discordgo.InteractionCreate){
		"ban":      withModeration(b, "ban", cases.HandleBanCommand),
		"kick":     withModeration(b, "kick", cases.HandleKickCommand),
		"mute":     withModeration(b, "mute", cases.HandleMuteCommand),
		"warn":     withModeration(b, "warn", cases.HandleWarnCommand),
		"pressban": withModeration(b, "pressban", cases.HandlePressBanCommand),
		"remove":   withModeration(b, "remove", cases.HandleRemoveCommand),
		"modlog": withModeration(b, "modlog", func(s *discordgo.Session, i *discordgo.InteractionCreate, bb model.Bot) {
			modlog.HandleModlogCommand(s, i, bb, b.ModlogSessions)
		}),
		"botstatus": withModeration(b, "botstatus", HandleStatusCommand),
	}
}

func addHandlers(b *bot.Bot) {
	b.Session.AddHandler(func(s *discordgo.Session, r *discordgo.Ready) {
		logger := b.Logger()
		logger.Info().
			Str("username", s.State.User.Username).
			Str("discriminator", s.State.User.Discriminator).
			Msg("logged in")
		for _, guildCfg := range b.GetConfig().GuildConfigs {
			if err := utils.SendAuditNotice(s, guildCfg.AuditChannelID, "Moderation bot is online."); err != nil {
				logger := b.Logger()
				logger.Warn().Err(err).Str("guild_id", guildCfg.GuildID).Msg("failed to send startup notice")
			}
		}
	})
	b.Session.AddHandler(func(s *discordgo.Session, i *discordgo.InteractionCreate) {
		handleInteractionCreate(s, i, b)
	})
}
