package modlog

import (
	"fmt"
	"time"

	"modlog-bot/model"
	"modlog-bot/utils"

	"github.com/bwmarrin/discordgo"
)

const (
	kindButtonPrefix = "modlog_kind"
	pageButtonPrefix = "modlog_page"
)

// buildInitialEmbed is the kind-selector view shown when a session opens.
func buildInitialEmbed(targetName string) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("Moderation Log for %s", targetName),
		Description: "Select the type of moderation log you want to view.",
		Color:       0x3446eb,
		Timestamp:   time.Now().Format(time.RFC3339),
	}
}

// buildKindButtons renders one button per case kind.
func buildKindButtons() []discordgo.MessageComponent {
	buttons := make([]discordgo.MessageComponent, 0, len(model.AllKinds))
	for _, kind := range model.AllKinds {
		buttons = append(buttons, discordgo.Button{
			Label:    kind.Label() + "s",
			Style:    discordgo.PrimaryButton,
			CustomID: fmt.Sprintf("%s:%s", kindButtonPrefix, kind.Table()),
		})
	}
	return []discordgo.MessageComponent{
		discordgo.ActionsRow{Components: buttons},
	}
}

// buildLogEmbed renders one page of records. An empty page 1 renders a
// distinct "no records" view rather than an empty list.
func buildLogEmbed(sess *Session, kind model.CaseKind, records []model.CaseRecord, page, totalPages int) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title: fmt.Sprintf("%s Logs for %s", kind.Label(), sess.TargetName),
		Color: 0x3446eb,
		Footer: &discordgo.MessageEmbedFooter{
			Text: fmt.Sprintf("Page %d of %d", page, totalPages),
		},
		Timestamp: time.Now().Format(time.RFC3339),
	}

	if len(records) == 0 {
		embed.Description = fmt.Sprintf("No %s logs found for this user.", kind.Label())
		return embed
	}

	for _, record := range records {
		value := fmt.Sprintf("**Reason:** %s\n**Moderator:** %s\n**Token:** %s",
			record.Reason, record.ModeratorName, record.Token)
		if kind.HasDuration() {
			value += fmt.Sprintf("\n**Duration:** %s", utils.FormatDurationMs(record.DurationMs))
		}
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  fmt.Sprintf("Date: %s", time.Unix(record.CreatedAt, 0).Format(time.RFC1123)),
			Value: value,
		})
	}
	return embed
}

// buildPageComponents renders the prev/next row for the current page.
func buildPageComponents(kind model.CaseKind, page, totalPages int) []discordgo.MessageComponent {
	return utils.CreatePaginationComponents(page, totalPages, pageButtonPrefix, kind.Table())
}
