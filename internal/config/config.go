package config

import (
	"log/slog"
	"os"
	"strings"
)

type Config struct {
	Environment    string
	LogLevel       slog.Level
	QuestsPath     string
	RedisURL       string
	HiscoresURL    string
	RuneMetricsURL string
}

func Load() *Config {
	return &Config{
		Environment: getEnv("ENVIRONMENT", "development"),
		LogLevel:    parseLogLevel(getEnv("LOG_LEVEL", "info")),
		QuestsPath:  getEnv("QUESTS_PATH", "data/quests.yaml"),
		RedisURL:    getEnv("REDIS_URL", ""),
		HiscoresURL: getEnv("HISCORES_URL",
			"https://secure.runescape.com/m=hiscore/index_lite.ws"),
		RuneMetricsURL: getEnv("RUNEMETRICS_URL",
			"https://apps.runescape.com/runemetrics/quests"),
	}
}

func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
