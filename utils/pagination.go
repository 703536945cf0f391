package utils

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
)

// CreatePaginationComponents creates a previous/next button row. The
// custom IDs carry the target page so a click maps directly to a fetch;
// boundary buttons are rendered disabled rather than omitted, so a
// double-click at page 1 or the last page is a no-op re-render.
func CreatePaginationComponents(currentPage, totalPages int, customIDPrefix string, args ...string) []discordgo.MessageComponent {
	buttonArgs := ""
	for _, arg := range args {
		buttonArgs += ":" + arg
	}

	// Targets are left unclamped so the two custom IDs stay distinct on a
	// single-page result; boundary clicks are disabled and the receiving
	// handler clamps whatever page it is asked for.
	prevPage := currentPage - 1
	nextPage := currentPage + 1

	return []discordgo.MessageComponent{
		discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.Button{
					Label:    "Previous Page",
					Style:    discordgo.DangerButton,
					Disabled: currentPage <= 1,
					CustomID: fmt.Sprintf("%s:%d%s", customIDPrefix, prevPage, buttonArgs),
				},
				discordgo.Button{
					Label:    "Next Page",
					Style:    discordgo.SuccessButton,
					Disabled: currentPage >= totalPages,
					CustomID: fmt.Sprintf("%s:%d%s", customIDPrefix, nextPage, buttonArgs),
				},
			},
		},
	}
}
