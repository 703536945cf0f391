package cases

import (
	"fmt"

	"modlog-bot/model"
	"modlog-bot/utils"

	"github.com/bwmarrin/discordgo"
)

// HandlePressBanCommand applies the press-ban role to a member and
// writes a PressBan case record. The duration is optional; a press ban
// without one stays until reversed by token.
func HandlePressBanCommand(s *discordgo.Session, i *discordgo.InteractionCreate, b model.Bot) {
	guildCfg, ok := guildConfigOrFail(s, i, b)
	if !ok {
		return
	}
	if guildCfg.PressBanRoleID == "" {
		utils.SendEphemeralResponse(s, i, "No press-ban role is configured for this server.")
		return
	}

	opts := optionMap(i)
	targetUser := opts["user"].UserValue(s)
	reason := opts["reason"].StringValue()
	if targetUser == nil {
		utils.SendEphemeralResponse(s, i, "User not found.")
		return
	}

	var durationMs *int64
	durationText := "N/A"
	if durationOpt, hasDuration := opts["duration"]; hasDuration {
		minutes := durationOpt.IntValue()
		if minutes <= 0 {
			utils.SendEphemeralResponse(s, i, "Duration must be a positive number of minutes.")
			return
		}
		ms := minutes * 60 * 1000
		durationMs = &ms
		durationText = fmt.Sprintf("%d minutes", minutes)
	}

	writer := NewWriter(b.GetDB(), b.Logger())
	token := writer.NewToken()

	notice := buildAppealEmbed(
		"You have been press banned",
		fmt.Sprintf("You have been press banned in the server for the following reason:\n**%s**\n\nIf you believe this was a mistake, you can appeal by contacting the server moderators.", reason),
		targetUser,
	)
	sendAppealDM(s, b, targetUser, notice)

	if err := s.GuildMemberRoleAdd(i.GuildID, targetUser.ID, guildCfg.PressBanRoleID); err != nil {
		logger := b.Logger()
		logger.Error().Err(err).Str("user_id", targetUser.ID).Msg("failed to apply press-ban role")
		utils.SendEphemeralResponse(s, i, "Failed to press ban the user.")
		return
	}
	utils.SendEphemeralResponse(s, i, fmt.Sprintf("%s has been press banned for: %s", targetUser.Username, reason))

	audit := buildAuditEmbed("User Press Banned", targetUser, i.Member.User, reason, token,
		&discordgo.MessageEmbedField{Name: "Duration", Value: durationText, Inline: true})
	postAudit(s, b, guildCfg, audit)

	persistCase(b, writer, model.KindPressBan, targetUser, i.Member.User, reason, token, durationMs)
}
