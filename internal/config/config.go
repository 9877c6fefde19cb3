// Package config loads the bot configuration from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// defaultPort is the HTTP listen port when PORT is unset.
const defaultPort = 10000

// Config holds the runtime configuration. Everything comes from the
// environment; a .env file is honored when present.
type Config struct {
	// BotToken authenticates against the Telegram Bot API.
	BotToken string

	// AdminID is the user who may run privileged commands and who
	// receives reset notifications and forwarded messages. Zero
	// disables both.
	AdminID int64

	// SourceChannelID is the channel carrying round announcements.
	SourceChannelID int64

	// PredictionChannelID is the channel predictions are published to.
	// Zero disables publishing; predictions are still tracked locally.
	PredictionChannelID int64

	// Port is the HTTP health server listen port.
	Port int
}

// Load reads configuration from the environment and validates it.
// Validation failures here are the only fatal errors in the process.
func Load() (*Config, error) {
	// Best effort: absence of a .env file is the normal case in prod.
	_ = godotenv.Load()

	cfg := &Config{
		BotToken:            strings.TrimSpace(os.Getenv("BOT_TOKEN")),
		AdminID:             parseInt64(os.Getenv("ADMIN_ID")),
		SourceChannelID:     ParseChannelID(os.Getenv("SOURCE_CHANNEL_ID")),
		PredictionChannelID: ParseChannelID(os.Getenv("PREDICTION_CHANNEL_ID")),
		Port:                defaultPort,
	}

	if p := os.Getenv("PORT"); p != "" {
		port, err := strconv.Atoi(p)
		if err != nil || port <= 0 {
			return nil, fmt.Errorf("invalid PORT %q", p)
		}
		cfg.Port = port
	}

	if cfg.BotToken == "" {
		return nil, fmt.Errorf("BOT_TOKEN is required")
	}
	if cfg.SourceChannelID == 0 {
		return nil, fmt.Errorf("SOURCE_CHANNEL_ID is required")
	}

	return cfg, nil
}

// ParseChannelID converts a channel identifier from the environment
// into the form the Bot API expects. Broadcast channels use a -100
// prefix; a bare positive ID of at least ten digits is assumed to be a
// broadcast channel and gets the prefix added. Anything unparseable
// yields zero.
func ParseChannelID(value string) int64 {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0
	}

	if strings.HasPrefix(value, "-100") {
		id, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return 0
		}
		return id
	}

	id, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0
	}
	if id > 0 && len(value) >= 10 {
		prefixed, err := strconv.ParseInt("-100"+value, 10, 64)
		if err != nil {
			return 0
		}
		return prefixed
	}
	return id
}

func parseInt64(value string) int64 {
	id, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64)
	if err != nil {
		return 0
	}
	return id
}
