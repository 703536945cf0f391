package bot

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"modlog-bot/handlers/modlog"
	"modlog-bot/utils"
)

// maintenanceInterval drives session expiry sweeps and cooldown cleanup.
const maintenanceInterval = 30 * time.Second

func (b *Bot) Run() {
	if err := b.Session.Open(); err != nil {
		b.log.Fatal().Err(err).Msg("error opening connection")
	}

	b.RegisteredCommands = nil
	for guildID := range b.GetConfig().GuildConfigs {
		b.RefreshCommands(guildID)
	}

	b.MaintenanceTicker = time.NewTicker(maintenanceInterval)
	go b.maintenanceLoop()

	b.log.Info().Msg("bot is now running, press CTRL-C to exit")
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc
}

// maintenanceLoop tears down expired modlog sessions and prunes stale
// cooldown entries until shutdown.
func (b *Bot) maintenanceLoop() {
	for {
		select {
		case <-b.done:
			return
		case now := <-b.MaintenanceTicker.C:
			for _, sess := range b.ModlogSessions.SweepExpired(now) {
				if err := modlog.StripComponents(b.Session, sess); err != nil {
					b.log.Warn().Err(err).Str("message_id", sess.MessageID).Msg("failed to strip session controls")
				}
			}
			utils.CleanupCooldowns()
		}
	}
}
