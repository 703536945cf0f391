package cases

import (
	"github.com/bwmarrin/discordgo"
)

// Platform is the slice of guild state the reversal engine touches.
// The engine never talks to discordgo directly so its delete-then-revert
// ordering can be exercised without a gateway connection.
type Platform interface {
	Unban(guildID, userID string) error
	ClearTimeout(guildID, userID string) error
	RemoveRole(guildID, userID, roleID string) error
}

// DiscordPlatform adapts a discordgo session to the Platform interface.
type DiscordPlatform struct {
	Session *discordgo.Session
}

var _ Platform = (*DiscordPlatform)(nil)

func (p *DiscordPlatform) Unban(guildID, userID string) error {
	return p.Session.GuildBanDelete(guildID, userID)
}

func (p *DiscordPlatform) ClearTimeout(guildID, userID string) error {
	return p.Session.GuildMemberTimeout(guildID, userID, nil)
}

func (p *DiscordPlatform) RemoveRole(guildID, userID, roleID string) error {
	return p.Session.GuildMemberRoleRemove(guildID, userID, roleID)
}
