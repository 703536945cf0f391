package defs

import "github.com/bwmarrin/discordgo"

var Ban = &discordgo.ApplicationCommand{
	Name:        "ban",
	Description: "Ban a user from the server",
	Options: []*discordgo.ApplicationCommandOption{
		{
			Type:        discordgo.ApplicationCommandOptionUser,
			Name:        "user",
			Description: "The user to ban",
			Required:    true,
		},
		{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "reason",
			Description: "Reason for banning the user",
			Required:    true,
		},
	},
}

var Kick = &discordgo.ApplicationCommand{
	Name:        "kick",
	Description: "Kick a user from the server",
	Options: []*discordgo.ApplicationCommandOption{
		{
			Type:        discordgo.ApplicationCommandOptionUser,
			Name:        "user",
			Description: "The user to kick",
			Required:    true,
		},
		{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "reason",
			Description: "Reason for kicking the user",
			Required:    true,
		},
	},
}

var Mute = &discordgo.ApplicationCommand{
	Name:        "mute",
	Description: "Timeout a user in the server",
	Options: []*discordgo.ApplicationCommandOption{
		{
			Type:        discordgo.ApplicationCommandOptionUser,
			Name:        "user",
			Description: "The user to mute",
			Required:    true,
		},
		{
			Type:        discordgo.ApplicationCommandOptionInteger,
			Name:        "duration",
			Description: "Duration of the mute in minutes",
			Required:    true,
		},
		{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "reason",
			Description: "Reason for the mute",
			Required:    true,
		},
	},
}

var Warn = &discordgo.ApplicationCommand{
	Name:        "warn",
	Description: "Warn a user",
	Options: []*discordgo.ApplicationCommandOption{
		{
			Type:        discordgo.ApplicationCommandOptionUser,
			Name:        "user",
			Description: "The user to warn",
			Required:    true,
		},
		{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "reason",
			Description: "Reason for the warning",
			Required:    true,
		},
	},
}

var PressBan = &discordgo.ApplicationCommand{
	Name:        "pressban",
	Description: "Apply the press-ban role to a user",
	Options: []*discordgo.ApplicationCommandOption{
		{
			Type:        discordgo.ApplicationCommandOptionUser,
			Name:        "user",
			Description: "The user to press ban",
			Required:    true,
		},
		{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "reason",
			Description: "Reason for the press ban",
			Required:    true,
		},
		{
			Type:        discordgo.ApplicationCommandOptionInteger,
			Name:        "duration",
			Description: "Duration of the press ban in minutes",
			Required:    false,
		},
	},
}

var Remove = &discordgo.ApplicationCommand{
	Name:        "remove",
	Description: "Remove a moderation action from a user's account",
	Options: []*discordgo.ApplicationCommandOption{
		{
			Type:        discordgo.ApplicationCommandOptionUser,
			Name:        "user",
			Description: "The user whose action you want to remove",
			Required:    true,
		},
		{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "unique_token",
			Description: "The unique token of the action to remove",
			Required:    true,
		},
		{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "type",
			Description: "The type of moderation action",
			Required:    true,
			Choices: []*discordgo.ApplicationCommandOptionChoice{
				{Name: "Ban", Value: "Ban"},
				{Name: "Kick", Value: "Kick"},
				{Name: "Mute", Value: "Mute"},
				{Name: "Press Ban", Value: "PressBan"},
				{Name: "Warning", Value: "Warning"},
			},
		},
	},
}

var Modlog = &discordgo.ApplicationCommand{
	Name:        "modlog",
	Description: "See a user's moderation log",
	Options: []*discordgo.ApplicationCommandOption{
		{
			Type:        discordgo.ApplicationCommandOptionUser,
			Name:        "user",
			Description: "The user whose moderation log you want to see",
			Required:    true,
		},
	},
}

var BotStatus = &discordgo.ApplicationCommand{
	Name:        "botstatus",
	Description: "Show bot and host health",
}
