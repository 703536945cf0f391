package modlog

import (
	"strconv"
	"strings"

	"modlog-bot/model"
	"modlog-bot/utils"
	casedb "modlog-bot/utils/database/cases"

	"github.com/bwmarrin/discordgo"
)

// HandleModlogCommand opens a paginated log session for the target
// user, replies with the kind selector, and registers the session under
// the reply message.
func HandleModlogCommand(s *discordgo.Session, i *discordgo.InteractionCreate, b model.Bot, m *Manager) {
	options := i.ApplicationCommandData().Options
	var targetUser *discordgo.User
	for _, opt := range options {
		if opt.Name == "user" {
			targetUser = opt.UserValue(s)
		}
	}
	if targetUser == nil {
		utils.SendEphemeralResponse(s, i, "User not found.")
		return
	}

	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds:     []*discordgo.MessageEmbed{buildInitialEmbed(targetUser.Username)},
			Components: buildKindButtons(),
		},
	})
	if err != nil {
		logger := b.Logger()
		logger.Error().Err(err).Msg("failed to send modlog selector")
		return
	}

	msg, err := s.InteractionResponse(i.Interaction)
	if err != nil {
		logger := b.Logger()
		logger.Error().Err(err).Msg("failed to fetch modlog selector message")
		return
	}

	m.Put(NewSession(msg.ID, i.ChannelID, i.Member.User.ID, targetUser.ID, targetUser.Username))
}

// HandleComponent routes a button click into the session attached to
// the clicked message. Clicks from non-owners and unknown controls are
// rejected without a state change.
func HandleComponent(s *discordgo.Session, i *discordgo.InteractionCreate, b model.Bot, m *Manager) {
	sess, ok := m.Get(i.Message.ID)
	if !ok {
		utils.SendEphemeralResponse(s, i, "This log session has expired.")
		return
	}
	if !sess.Owns(i.Member.User.ID) {
		utils.SendEphemeralResponse(s, i, "You can't use this button.")
		return
	}

	customID := i.MessageComponentData().CustomID
	parts := strings.Split(customID, ":")

	switch {
	case parts[0] == kindButtonPrefix && len(parts) == 2:
		kind, ok := model.KindFromTable(parts[1])
		if !ok {
			return
		}
		totalPages, ok := countPages(s, i, b, sess, kind)
		if !ok {
			return
		}
		if !sess.SelectKind(kind) {
			return
		}
		renderPage(s, i, b, sess, kind, 1, totalPages)

	case parts[0] == pageButtonPrefix && len(parts) == 3:
		requestedPage, err := strconv.Atoi(parts[1])
		if err != nil {
			return
		}
		kind, ok := model.KindFromTable(parts[2])
		if !ok {
			return
		}
		totalPages, ok := countPages(s, i, b, sess, kind)
		if !ok {
			return
		}
		page, ok := sess.GoToPage(requestedPage, totalPages)
		if !ok {
			return
		}
		renderPage(s, i, b, sess, kind, page, totalPages)
	}
}

// countPages counts the subject's records for a kind and reports the
// failure to the invoker when the count fails.
func countPages(s *discordgo.Session, i *discordgo.InteractionCreate, b model.Bot, sess *Session, kind model.CaseKind) (int, bool) {
	count, err := casedb.CountCaseRecords(b.GetDB(), kind, sess.TargetID)
	if err != nil {
		logger := b.Logger()
		logger.Error().Err(err).Msg("failed to count case records")
		utils.SendEphemeralResponse(s, i, "There was an error processing your request.")
		return 0, false
	}
	return TotalPages(count), true
}

// renderPage fetches one window of records and updates the session
// message in place. The page is already clamped by the session.
func renderPage(s *discordgo.Session, i *discordgo.InteractionCreate, b model.Bot, sess *Session, kind model.CaseKind, page, totalPages int) {
	records, err := casedb.GetCaseRecordsPage(b.GetDB(), kind, sess.TargetID, page, PageSize)
	if err != nil {
		logger := b.Logger()
		logger.Error().Err(err).Msg("failed to fetch case records")
		utils.SendEphemeralResponse(s, i, "There was an error processing your request.")
		return
	}

	err = s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseUpdateMessage,
		Data: &discordgo.InteractionResponseData{
			Embeds:     []*discordgo.MessageEmbed{buildLogEmbed(sess, kind, records, page, totalPages)},
			Components: buildPageComponents(kind, page, totalPages),
		},
	})
	if err != nil {
		logger := b.Logger()
		logger.Error().Err(err).Msg("failed to update modlog page")
	}
}

// StripComponents removes the interactive controls from an ended
// session's message. Called by the sweep ticker on expiry.
func StripComponents(s *discordgo.Session, sess *Session) error {
	empty := []discordgo.MessageComponent{}
	_, err := s.ChannelMessageEditComplex(&discordgo.MessageEdit{
		Channel:    sess.ChannelID,
		ID:         sess.MessageID,
		Components: &empty,
	})
	return err
}
