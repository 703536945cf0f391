package utils

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
)

// SendAuditEmbed posts an embed to the guild's audit channel. Every
// ledger write and every reversal produces one post, carrying the case
// token so staff can correlate it with the record.
func SendAuditEmbed(s *discordgo.Session, channelID string, embed *discordgo.MessageEmbed) error {
	if channelID == "" {
		return nil
	}
	if _, err := s.ChannelMessageSendEmbed(channelID, embed); err != nil {
		return fmt.Errorf("failed to send audit message to channel %s: %w", channelID, err)
	}
	return nil
}

// SendAuditNotice posts a plain notice (e.g. startup) to the audit channel.
func SendAuditNotice(s *discordgo.Session, channelID, message string) error {
	if channelID == "" {
		return nil
	}
	if _, err := s.ChannelMessageSend(channelID, message); err != nil {
		return fmt.Errorf("failed to send audit notice to channel %s: %w", channelID, err)
	}
	return nil
}
