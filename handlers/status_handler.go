package handlers

import (
	"fmt"
	"os"
	"runtime"
	"time"

	"modlog-bot/model"
	"modlog-bot/utils"

	"github.com/bwmarrin/discordgo"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/mem"
)

// HandleStatusCommand reports host and ledger health. CPU usage is
// sampled over a second, so the response is deferred.
func HandleStatusCommand(s *discordgo.Session, i *discordgo.InteractionCreate, b model.Bot) {
	if err := utils.DeferResponse(s, i, true); err != nil {
		logger := b.Logger()
		logger.Error().Err(err).Msg("failed to defer status response")
		return
	}

	cpuCount, _ := cpu.Counts(true)
	cpuPercent, _ := cpu.Percent(time.Second, false)
	hostInfo, _ := host.Info()

	vm, err := mem.VirtualMemory()
	if err != nil {
		logger := b.Logger()
		logger.Error().Err(err).Msg("failed to read memory stats")
		utils.SendFollowUpError(s, i.Interaction, "Could not gather host statistics.")
		return
	}

	var dbSizeMB int64
	if info, err := os.Stat(b.GetConfig().DBPath); err == nil {
		dbSizeMB = info.Size() / 1024 / 1024
	}

	cpuUsage := 0.0
	if len(cpuPercent) > 0 {
		cpuUsage = cpuPercent[0]
	}

	var uptime string
	if hostInfo != nil {
		uptime = (time.Duration(hostInfo.Uptime) * time.Second).String()
	}

	embed := &discordgo.MessageEmbed{
		Title: "Bot Status",
		Color: 3066993, // Green
		Fields: []*discordgo.MessageEmbedField{
			{Name: "CPU", Value: fmt.Sprintf("%d cores, %.1f%% used", cpuCount, cpuUsage), Inline: true},
			{Name: "Memory", Value: fmt.Sprintf("%.1f%% used", vm.UsedPercent), Inline: true},
			{Name: "Host Uptime", Value: uptime, Inline: true},
			{Name: "Goroutines", Value: fmt.Sprintf("%d", runtime.NumGoroutine()), Inline: true},
			{Name: "Guilds", Value: fmt.Sprintf("%d", len(s.State.Guilds)), Inline: true},
			{Name: "Ledger DB Size", Value: fmt.Sprintf("%d MB", dbSizeMB), Inline: true},
		},
		Timestamp: time.Now().Format(time.RFC3339),
	}

	if err := utils.SendFollowUpEmbed(s, i.Interaction, embed); err != nil {
		logger := b.Logger()
		logger.Error().Err(err).Msg("failed to send status response")
	}
}
