package utils

import (
	"sync"
	"time"
)

var (
	commandCooldowns = make(map[string]time.Time)
	cooldownMutex    = &sync.Mutex{}
)

// CommandCooldown is the fixed per-invocation cooldown for every
// moderation and review command.
const CommandCooldown = 5 * time.Second

// CheckAndSetCooldown checks whether a user may invoke a command. If
// the cooldown has elapsed it records a fresh invocation and returns
// true; otherwise it returns false.
func CheckAndSetCooldown(command, userID string) bool {
	cooldownMutex.Lock()
	defer cooldownMutex.Unlock()

	key := command + ":" + userID
	if last, ok := commandCooldowns[key]; ok {
		if time.Since(last) < CommandCooldown {
			return false
		}
	}

	commandCooldowns[key] = time.Now()
	return true
}

// CleanupCooldowns drops stale cooldown entries. Called periodically
// from the bot's maintenance ticker.
func CleanupCooldowns() {
	cooldownMutex.Lock()
	defer cooldownMutex.Unlock()

	for key, t := range commandCooldowns {
		if time.Since(t) > time.Hour {
			delete(commandCooldowns, key)
		}
	}
}
