package model

// Config holds the process-wide configuration loaded at startup.
type Config struct {
	BotToken     string
	AppID        string
	DBPath       string
	GuildConfigs map[string]GuildConfig
}

// GuildConfig holds the per-guild settings read from data/guilds.yaml.
type GuildConfig struct {
	GuildID          string   `mapstructure:"guild_id"`
	AuditChannelID   string   `mapstructure:"audit_channel_id"`
	PressBanRoleID   string   `mapstructure:"press_ban_role_id"`
	ModeratorRoleIDs []string `mapstructure:"moderator_role_ids"`
}
