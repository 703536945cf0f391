package config

import (
	"fmt"
	"log"
	"os"

	"modlog-bot/model"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Load loads the configuration from environment variables and the guild
// settings file.
func Load() (*model.Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("Info: .env file not found, relying on environment variables")
	}

	token := os.Getenv("BOT_TOKEN")
	if token == "" {
		return nil, fmt.Errorf("BOT_TOKEN environment variable not set")
	}

	appID := os.Getenv("APP_ID")
	if appID == "" {
		return nil, fmt.Errorf("APP_ID environment variable not set")
	}

	dbPath := os.Getenv("DB_PATH")
	if dbPath == "" {
		dbPath = "data/cases.db"
	}

	cfg := &model.Config{
		BotToken:     token,
		AppID:        appID,
		DBPath:       dbPath,
		GuildConfigs: make(map[string]model.GuildConfig),
	}

	if err := loadGuildConfigs(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// loadGuildConfigs reads data/guilds.yaml into the per-guild config map.
func loadGuildConfigs(cfg *model.Config) error {
	v := viper.New()
	v.SetConfigName("guilds")
	v.SetConfigType("yaml")
	v.AddConfigPath("data")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Println("Warning: data/guilds.yaml not found, no guilds configured")
			return nil
		}
		return fmt.Errorf("failed to read guild config: %w", err)
	}

	var guilds []model.GuildConfig
	if err := v.UnmarshalKey("guilds", &guilds); err != nil {
		return fmt.Errorf("failed to parse guild config: %w", err)
	}

	for _, g := range guilds {
		if g.GuildID == "" {
			log.Printf("Warning: skipping guild config entry with empty guild_id")
			continue
		}
		cfg.GuildConfigs[g.GuildID] = g
	}

	return nil
}
