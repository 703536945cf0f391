package cases

import (
	"errors"
	"fmt"
	"time"

	"modlog-bot/model"
	"modlog-bot/utils"

	"github.com/bwmarrin/discordgo"
)

// HandleRemoveCommand reverses a case by its token: the ledger entry is
// deleted first, then the kind's live effect is cleared. The audit post
// goes out whenever the record was deleted, even if the live reversal
// failed afterwards.
func HandleRemoveCommand(s *discordgo.Session, i *discordgo.InteractionCreate, b model.Bot) {
	guildCfg, ok := guildConfigOrFail(s, i, b)
	if !ok {
		return
	}

	opts := optionMap(i)
	targetUser := opts["user"].UserValue(s)
	token := opts["unique_token"].StringValue()
	choice := opts["type"].StringValue()
	if targetUser == nil {
		utils.SendEphemeralResponse(s, i, "User not found.")
		return
	}

	kind, ok := model.KindFromChoice(choice)
	if !ok {
		utils.SendEphemeralResponse(s, i, "Invalid action type specified.")
		return
	}

	reverser := NewReverser(b.GetDB(), &DiscordPlatform{Session: b.GetSession()}, b.Logger())
	err := reverser.Reverse(i.GuildID, kind, targetUser.ID, token, guildCfg.PressBanRoleID)

	var platformErr *PlatformError
	switch {
	case errors.Is(err, ErrNotFound):
		utils.SendEphemeralResponse(s, i, "No matching action found.")
		return
	case errors.As(err, &platformErr):
		utils.SendEphemeralResponse(s, i, fmt.Sprintf(
			"The %s record was removed, but clearing the live effect failed: %v", kind.Label(), platformErr.Err))
	case err != nil:
		logger := b.Logger()
		logger.Error().Err(err).Str("token", token).Msg("failed to remove case")
		utils.SendEphemeralResponse(s, i, "An error occurred while trying to remove the action.")
		return
	default:
		confirmation := &discordgo.MessageEmbed{
			Description: fmt.Sprintf("## %s removed\n%s has been removed from %s", kind.Label(), kind.Label(), targetUser.Mention()),
			Color:       0x4461b8,
		}
		utils.SendEphemeralEmbed(s, i, confirmation)
	}

	// The record is gone in both remaining branches; the reversal is
	// auditable regardless of the live-platform outcome.
	audit := &discordgo.MessageEmbed{
		Description: fmt.Sprintf("## %s removed from %s\nUser: %s (%s)\nModerator: %s (%s)\nToken: %s",
			kind.Label(), targetUser.Mention(), targetUser.Mention(), targetUser.ID,
			i.Member.User.Mention(), i.Member.User.ID, token),
		Color:     0x4461b8,
		Timestamp: time.Now().Format(time.RFC3339),
	}
	postAudit(s, b, guildCfg, audit)
}
