// Load envs from .env
// Load YAML config
// Validate config
// Provide default values

package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"go-hh-hunter/internal/search"
)

const defaultPath = "configs/config.yaml"

type Config struct {
	TelegramToken  string `yaml:"telegram_token" env:"TELEGRAM_BOT_TOKEN"`
	TelegramChatID int64  `yaml:"telegram_chat_id" env:"TELEGRAM_CHAT_ID"`
	DatabaseURL    string `yaml:"database_url" env:"DATABASE_URL"`
	//Search criteria
	SearchText   string   `yaml:"search_text"`
	ExcludedText string   `yaml:"excluded_text"`
	Regions      []string `yaml:"regions"`
	Experience   string   `yaml:"experience"` // human form: "0", "2", "1-3", "6+"
	//Matching and scheduling
	MinSimilarity   int    `yaml:"min_similarity"`
	IntervalMinutes int    `yaml:"interval_minutes"`
	DailyStats      bool   `yaml:"daily_stats"`
	StatsTime       string `yaml:"stats_time"` // "HH:MM" in UTC+3

	//Resolved at load time, not read from the file
	AreaIDs          []int  `yaml:"-"`
	ExperienceBucket string `yaml:"-"`
}

// Load reads configs/config.yaml, applies env overrides and defaults, and
// resolves the region and experience inputs. Missing Telegram credentials
// are fatal: without them the process has nowhere to deliver anything.
func Load() *Config {
	cfg, err := LoadFrom(defaultPath)
	if err != nil {
		log.Fatalf("❌ Invalid configuration: %v", err)
	}

	//Validate required fields
	if cfg.TelegramToken == "" {
		log.Fatal("TELEGRAM_BOT_TOKEN is required")
	}
	if cfg.TelegramChatID == 0 {
		log.Fatal("TELEGRAM_CHAT_ID is required")
	}

	return cfg
}

// LoadFrom does the non-fatal part of Load: read, override, default,
// resolve. A missing file is not an error, the config then comes from env
// vars and defaults alone.
func LoadFrom(path string) (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil {
		log.Printf("Warning: Could not read %s: %v", path, err)
	} else {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
	}

	//Override with env vars
	if token := os.Getenv("TELEGRAM_BOT_TOKEN"); token != "" {
		cfg.TelegramToken = token
	}
	if chatID := os.Getenv("TELEGRAM_CHAT_ID"); chatID != "" {
		id, err := strconv.ParseInt(chatID, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid TELEGRAM_CHAT_ID: %w", err)
		}
		cfg.TelegramChatID = id
	}
	if dbURL := os.Getenv("DATABASE_URL"); dbURL != "" {
		cfg.DatabaseURL = dbURL
	}

	cfg.applyDefaults()

	cfg.AreaIDs, err = search.ResolveRegions(cfg.Regions)
	if err != nil {
		return nil, err
	}

	cfg.ExperienceBucket, err = search.ParseExperience(cfg.Experience)
	if err != nil {
		return nil, err
	}

	cfg.ExcludedText = search.NormalizeExcluded(cfg.ExcludedText)

	if _, _, err := ParseStatsTime(cfg.StatsTime); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (cfg *Config) applyDefaults() {
	if cfg.SearchText == "" {
		cfg.SearchText = "Middle Python Backend Developer"
	}
	if cfg.MinSimilarity <= 0 {
		cfg.MinSimilarity = 70
	}
	if cfg.IntervalMinutes <= 0 {
		cfg.IntervalMinutes = 10
	}
	if cfg.StatsTime == "" {
		cfg.StatsTime = "00:00"
	}
}

// ParseStatsTime validates and splits an "HH:MM" time of day.
func ParseStatsTime(value string) (int, int, error) {
	parts := strings.SplitN(value, ":", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("stats_time must be HH:MM, got %q", value)
	}
	hour, err1 := strconv.Atoi(parts[0])
	minute, err2 := strconv.Atoi(parts[1])
	if err1 != nil || err2 != nil || hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, 0, fmt.Errorf("stats_time must be HH:MM, got %q", value)
	}
	return hour, minute, nil
}
