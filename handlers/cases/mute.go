package cases

import (
	"fmt"
	"time"

	"modlog-bot/model"
	"modlog-bot/utils"

	"github.com/bwmarrin/discordgo"
)

// HandleMuteCommand times out a guild member for a number of minutes
// and writes a Mute case record carrying the duration in milliseconds.
func HandleMuteCommand(s *discordgo.Session, i *discordgo.InteractionCreate, b model.Bot) {
	guildCfg, ok := guildConfigOrFail(s, i, b)
	if !ok {
		return
	}

	opts := optionMap(i)
	targetUser := opts["user"].UserValue(s)
	durationMinutes := opts["duration"].IntValue()
	reason := opts["reason"].StringValue()
	if targetUser == nil {
		utils.SendEphemeralResponse(s, i, "User not found.")
		return
	}
	if durationMinutes <= 0 {
		utils.SendEphemeralResponse(s, i, "Duration must be a positive number of minutes.")
		return
	}

	writer := NewWriter(b.GetDB(), b.Logger())
	token := writer.NewToken()
	timeoutDuration := time.Duration(durationMinutes) * time.Minute

	appeal := buildAppealEmbed(
		"You have been muted",
		fmt.Sprintf("You have been muted in the server for the following reason:\n**%s**\n\nDuration: %d minutes\n\nIf you believe this was a mistake, you can appeal the mute by contacting the server moderators.", reason, durationMinutes),
		targetUser,
	)
	sendAppealDM(s, b, targetUser, appeal)

	until := time.Now().Add(timeoutDuration)
	if err := s.GuildMemberTimeout(i.GuildID, targetUser.ID, &until); err != nil {
		logger := b.Logger()
		logger.Error().Err(err).Str("user_id", targetUser.ID).Msg("failed to mute user")
		utils.SendEphemeralResponse(s, i, "Failed to mute the user.")
		return
	}
	utils.SendEphemeralResponse(s, i, fmt.Sprintf("%s has been muted for %d minutes for: %s", targetUser.Username, durationMinutes, reason))

	audit := buildAuditEmbed("User Muted", targetUser, i.Member.User, reason, token,
		&discordgo.MessageEmbedField{Name: "Duration", Value: fmt.Sprintf("%d minutes", durationMinutes), Inline: true})
	postAudit(s, b, guildCfg, audit)

	durationMs := timeoutDuration.Milliseconds()
	persistCase(b, writer, model.KindMute, targetUser, i.Member.User, reason, token, &durationMs)
}
