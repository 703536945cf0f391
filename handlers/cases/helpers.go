package cases

import (
	"fmt"
	"time"

	"modlog-bot/model"
	"modlog-bot/utils"

	"github.com/bwmarrin/discordgo"
)

// optionMap indexes an interaction's options by name.
func optionMap(i *discordgo.InteractionCreate) map[string]*discordgo.ApplicationCommandInteractionDataOption {
	options := i.ApplicationCommandData().Options
	m := make(map[string]*discordgo.ApplicationCommandInteractionDataOption, len(options))
	for _, opt := range options {
		m[opt.Name] = opt
	}
	return m
}

// guildConfigOrFail looks up the invoking guild's configuration and
// reports the failure to the invoker when none exists.
func guildConfigOrFail(s *discordgo.Session, i *discordgo.InteractionCreate, b model.Bot) (model.GuildConfig, bool) {
	guildCfg, ok := b.GetConfig().GuildConfigs[i.GuildID]
	if !ok {
		if err := utils.SendEphemeralResponse(s, i, "No configuration found for this server."); err != nil {
			logger := b.Logger()
			logger.Error().Err(err).Str("guild_id", i.GuildID).Msg("failed to send config error response")
		}
	}
	return guildCfg, ok
}

// buildAppealEmbed creates the DM sent to the sanctioned user before
// enforcement.
func buildAppealEmbed(title, description string, target *discordgo.User) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       title,
		Description: description,
		Thumbnail: &discordgo.MessageEmbedThumbnail{
			URL: target.AvatarURL("128"),
		},
		Timestamp: time.Now().Format(time.RFC3339),
	}
}

// buildAuditEmbed creates the audit-channel post for a new case. The
// token field is the correlator staff later hand to /remove.
func buildAuditEmbed(title string, target *discordgo.User, moderator *discordgo.User, reason, token string, extraFields ...*discordgo.MessageEmbedField) *discordgo.MessageEmbed {
	fields := []*discordgo.MessageEmbedField{
		{Name: "User", Value: fmt.Sprintf("%s (%s)", target.Username, target.ID), Inline: true},
		{Name: "Moderator", Value: fmt.Sprintf("%s (%s)", moderator.Username, moderator.ID), Inline: true},
		{Name: "Reason", Value: reason, Inline: true},
		{Name: "Token", Value: token, Inline: true},
	}
	fields = append(fields, extraFields...)

	return &discordgo.MessageEmbed{
		Title: title,
		Thumbnail: &discordgo.MessageEmbedThumbnail{
			URL: target.AvatarURL("128"),
		},
		Fields:    fields,
		Color:     0x4461b8,
		Timestamp: time.Now().Format(time.RFC3339),
	}
}

// sendDM delivers a DM embed. A variable so the DM-failure policy can
// be exercised without a gateway connection.
var sendDM = utils.SendPrivateEmbedMessage

// sendAppealDM delivers the pre-enforcement DM. Delivery failure is
// expected (DMs disabled) and never blocks enforcement.
func sendAppealDM(s *discordgo.Session, b model.Bot, target *discordgo.User, embed *discordgo.MessageEmbed) {
	if err := sendDM(s, target.ID, embed); err != nil {
		logger := b.Logger()
		logger.Warn().
			Str("user_id", target.ID).
			Err(err).
			Msg("could not send DM, the user may have DMs disabled")
	}
}

// persistCase writes the ledger entry after enforcement. A failed write
// is logged and dropped: the enforcement already happened and is not
// rolled back.
func persistCase(b model.Bot, w *Writer, kind model.CaseKind, target *discordgo.User, moderator *discordgo.User, reason, token string, durationMs *int64) {
	if _, err := w.Record(kind, target.ID, target.Username, moderator.ID, moderator.Username, reason, token, durationMs); err != nil {
		logger := b.Logger()
		logger.Error().
			Err(err).
			Str("kind", kind.Label()).
			Str("user_id", target.ID).
			Msg("failed to save case record")
	}
}

// postAudit sends the audit embed, logging delivery failures.
func postAudit(s *discordgo.Session, b model.Bot, guildCfg model.GuildConfig, embed *discordgo.MessageEmbed) {
	if err := utils.SendAuditEmbed(s, guildCfg.AuditChannelID, embed); err != nil {
		logger := b.Logger()
		logger.Error().Err(err).Msg("failed to post audit message")
	}
}
