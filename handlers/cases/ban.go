package cases

import (
	"fmt"

	"modlog-bot/model"
	"modlog-bot/utils"

	"github.com/bwmarrin/discordgo"
)

// HandleBanCommand bans a user and writes a Ban case record. The DM,
// the ban, the audit post and the ledger write are independent effects:
// a failed DM or a failed write never undoes the ban.
func HandleBanCommand(s *discordgo.Session, i *discordgo.InteractionCreate, b model.Bot) {
	guildCfg, ok := guildConfigOrFail(s, i, b)
	if !ok {
		return
	}

	opts := optionMap(i)
	targetUser := opts["user"].UserValue(s)
	reason := opts["reason"].StringValue()
	if targetUser == nil {
		utils.SendEphemeralResponse(s, i, "User not found.")
		return
	}

	writer := NewWriter(b.GetDB(), b.Logger())
	token := writer.NewToken()

	appeal := buildAppealEmbed(
		"You have been banned",
		fmt.Sprintf("You have been banned from the server for the following reason:\n**%s**\n\nIf you believe this was a mistake, you can appeal the ban by contacting the server moderators.", reason),
		targetUser,
	)
	sendAppealDM(s, b, targetUser, appeal)

	if err := s.GuildBanCreateWithReason(i.GuildID, targetUser.ID, reason, 0); err != nil {
		logger := b.Logger()
		logger.Error().Err(err).Str("user_id", targetUser.ID).Msg("failed to ban user")
		utils.SendEphemeralResponse(s, i, "Failed to ban the user.")
		return
	}
	utils.SendEphemeralResponse(s, i, fmt.Sprintf("%s has been banned for: %s", targetUser.Username, reason))

	audit := buildAuditEmbed("User Banned", targetUser, i.Member.User, reason, token)
	postAudit(s, b, guildCfg, audit)

	persistCase(b, writer, model.KindBan, targetUser, i.Member.User, reason, token, nil)
}
