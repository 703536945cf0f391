package cases

import (
	"fmt"

	"modlog-bot/model"
	"modlog-bot/utils"

	"github.com/bwmarrin/discordgo"
)

// HandleWarnCommand records a warning. The only platform effect is the
// notification DM; the ledger entry is the warning.
func HandleWarnCommand(s *discordgo.Session, i *discordgo.InteractionCreate, b model.Bot) {
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

	notice := buildAppealEmbed(
		"You have been warned",
		fmt.Sprintf("You have received a warning in the server for the following reason:\n**%s**\n\nRepeated warnings may lead to further moderation action.", reason),
		targetUser,
	)
	sendAppealDM(s, b, targetUser, notice)

	utils.SendEphemeralResponse(s, i, fmt.Sprintf("%s has been warned for: %s", targetUser.Username, reason))

	audit := buildAuditEmbed("User Warned", targetUser, i.Member.User, reason, token)
	postAudit(s, b, guildCfg, audit)

	persistCase(b, writer, model.KindWarning, targetUser, i.Member.User, reason, token, nil)
}
