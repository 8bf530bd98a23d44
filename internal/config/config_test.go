package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnvOverrides(t *testing.T) {
	t.Setenv("TELEGRAM_BOT_TOKEN", "")
	t.Setenv("TELEGRAM_CHAT_ID", "")
	t.Setenv("DATABASE_URL", "")
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadFromFile(t *testing.T) {
	clearEnvOverrides(t)
	path := writeConfig(t, `
telegram_token: test-token
telegram_chat_id: 123
database_url: postgres://localhost/hh
search_text: Go Developer
excluded_text: "java, php"
regions: [беларусь, россия]
experience: "1-3"
min_similarity: 80
interval_minutes: 15
daily_stats: true
stats_time: "09:30"
`)

	cfg, err := LoadFrom(path)
	require.NoError(t, err)

	assert.Equal(t, "test-token", cfg.TelegramToken)
	assert.Equal(t, int64(123), cfg.TelegramChatID)
	assert.Equal(t, "Go Developer", cfg.SearchText)
	assert.Equal(t, "java+php", cfg.ExcludedText)
	assert.Equal(t, []int{16, 113}, cfg.AreaIDs)
	assert.Equal(t, "between1And3", cfg.ExperienceBucket)
	assert.Equal(t, 80, cfg.MinSimilarity)
	assert.Equal(t, 15, cfg.IntervalMinutes)
	assert.True(t, cfg.DailyStats)
	assert.Equal(t, "09:30", cfg.StatsTime)
}

func TestLoadFromMissingFileUsesDefaults(t *testing.T) {
	clearEnvOverrides(t)

	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "nonexistent.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "Middle Python Backend Developer", cfg.SearchText)
	assert.Equal(t, 70, cfg.MinSimilarity)
	assert.Equal(t, 10, cfg.IntervalMinutes)
	assert.Equal(t, "00:00", cfg.StatsTime)
	assert.False(t, cfg.DailyStats)
	assert.Empty(t, cfg.AreaIDs)
}

func TestLoadFromEnvOverride(t *testing.T) {
	clearEnvOverrides(t)
	t.Setenv("TELEGRAM_BOT_TOKEN", "env-token")
	t.Setenv("TELEGRAM_CHAT_ID", "456")

	path := writeConfig(t, `
telegram_token: file-token
telegram_chat_id: 123
`)

	cfg, err := LoadFrom(path)
	require.NoError(t, err)

	assert.Equal(t, "env-token", cfg.TelegramToken)
	assert.Equal(t, int64(456), cfg.TelegramChatID)
}

func TestLoadFromRejectsUnknownRegion(t *testing.T) {
	clearEnvOverrides(t)
	path := writeConfig(t, `regions: [атлантида]`)

	_, err := LoadFrom(path)
	assert.ErrorContains(t, err, "атлантида")
}

func TestLoadFromRejectsBadExperience(t *testing.T) {
	clearEnvOverrides(t)
	path := writeConfig(t, `experience: "тридцать"`)

	_, err := LoadFrom(path)
	assert.Error(t, err)
}

func TestLoadFromRejectsBadStatsTime(t *testing.T) {
	clearEnvOverrides(t)
	path := writeConfig(t, `stats_time: "25:70"`)

	_, err := LoadFrom(path)
	assert.Error(t, err)
}

func TestParseStatsTime(t *testing.T) {
	tests := []struct {
		in      string
		hour    int
		minute  int
		wantErr bool
	}{
		{"00:00", 0, 0, false},
		{"9:30", 9, 30, false},
		{"23:59", 23, 59, false},
		{"24:00", 0, 0, true},
		{"12:60", 0, 0, true},
		{"12", 0, 0, true},
		{"ab:cd", 0, 0, true},
	}

	for _, tt := range tests {
		h, m, err := ParseStatsTime(tt.in)
		if tt.wantErr {
			assert.Error(t, err, "input %q", tt.in)
			continue
		}
		assert.NoError(t, err, "input %q", tt.in)
		assert.Equal(t, tt.hour, h)
		assert.Equal(t, tt.minute, m)
	}
}
