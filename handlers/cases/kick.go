package cases

import (
	"fmt"

	"modlog-bot/model"
	"modlog-bot/utils"

	"github.com/bwmarrin/discordgo"
)

// HandleKickCommand kicks a user and writes a Kick case record. A kick
// has no persistent platform effect, so its reversal is ledger-only.
func HandleKickCommand(s *discordgo.Session, i *discordgo.InteractionCreate, b model.Bot) {
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
		"You have been kicked",
		fmt.Sprintf("You have been kicked from the server for the following reason:\n**%s**\n\nIf you believe this was a mistake, you can appeal the kick by contacting the server moderators.", reason),
		targetUser,
	)
	sendAppealDM(s, b, targetUser, appeal)

	if err := s.GuildMemberDeleteWithReason(i.GuildID, targetUser.ID, reason); err != nil {
		logger := b.Logger()
		logger.Error().Err(err).Str("user_id", targetUser.ID).Msg("failed to kick user")
		utils.SendEphemeralResponse(s, i, "Failed to kick the user.")
		return
	}
	utils.SendEphemeralResponse(s, i, fmt.Sprintf("%s has been kicked for: %s", targetUser.Username, reason))

	audit := buildAuditEmbed("User Kicked", targetUser, i.Member.User, reason, token)
	postAudit(s, b, guildCfg, audit)

	persistCase(b, writer, model.KindKick, targetUser, i.Member.User, reason, token, nil)
}
