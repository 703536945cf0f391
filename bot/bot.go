package bot

import (
	"sync/atomic"
	"time"

	"modlog-bot/commands"
	"modlog-bot/handlers/modlog"
	"modlog-bot/model"

	"github.com/bwmarrin/discordgo"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog"
)

type Bot struct {
	Session            *discordgo.Session
	RegisteredCommands []*discordgo.ApplicationCommand
	CommandHandlers    map[string]func(s *discordgo.Session, i *discordgo.InteractionCreate)
	ModlogSessions     *modlog.Manager
	MaintenanceTicker  *time.Ticker

	config atomic.Value // *model.Config
	db     *sqlx.DB
	log    zerolog.Logger
	done   chan struct{}
}

func (b *Bot) GetConfig() *model.Config {
	return b.config.Load().(*model.Config)
}

func (b *Bot) GetDB() *sqlx.DB {
	return b.db
}

func (b *Bot) GetSession() *discordgo.Session {
	return b.Session
}

func (b *Bot) Logger() zerolog.Logger {
	return b.log
}

func New(cfg *model.Config, db *sqlx.DB, log zerolog.Logger) (*Bot, error) {
	dg, err := discordgo.New("Bot " + cfg.BotToken)
	if err != nil {
		return nil, err
	}
	dg.Identify.Intents = discordgo.IntentsGuilds | discordgo.IntentsGuildMembers

	b := &Bot{
		Session:        dg,
		ModlogSessions: modlog.NewManager(log),
		db:             db,
		log:            log.With().Str("component", "bot").Logger(),
		done:           make(chan struct{}),
	}
	b.config.Store(cfg)
	return b, nil
}

func (b *Bot) Close() {
	b.log.Info().Msg("gracefully shutting down")
	close(b.done)

	if b.MaintenanceTicker != nil {
		b.MaintenanceTicker.Stop()
	}
	b.Session.Close()
}

// RefreshCommands overwrites the slash-command set for one guild.
func (b *Bot) RefreshCommands(guildID string) {
	cmds := commands.GenerateCommands()
	b.log.Info().Str("guild_id", guildID).Int("count", len(cmds)).Msg("registering commands")
	registeredCmds, err := b.Session.ApplicationCommandBulkOverwrite(b.GetConfig().AppID, guildID, cmds)
	if err != nil {
		b.log.Error().Err(err).Str("guild_id", guildID).Msg("cannot update commands")
		return
	}
	b.RegisteredCommands = append(b.RegisteredCommands, registeredCmds...)
}
