// Package config manages the JSON configuration file for attention.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/avdx/attention/internal/domain"
)

// Documented defaults. Invalid or missing fields fall back to these.
const (
	DefaultMessage      = "No task"
	DefaultFontFamily   = "Segoe UI"
	DefaultFontSize     = 24
	DefaultTextColor    = "#ffffff"
	DefaultOutlineColor = "#000000"
	DefaultTransparency = 0.85
	DefaultLanguage     = "en"

	MinFontSize = 8
	MaxFontSize = 96

	MinTransparency = 0.2
	MaxTransparency = 1.0
)

// SupportedLanguages are the language codes the config accepts.
var SupportedLanguages = []string{"en", "zh"}

// ScheduleEntry is the on-disk shape of one break window.
type ScheduleEntry struct {
	Start string `mapstructure:"start" json:"start"`
	End   string `mapstructure:"end" json:"end"`
	Label string `mapstructure:"label" json:"label"`
}

// Config holds all persisted settings. X and Y are window coordinates
// kept for the desktop renderer; nil means "let the renderer decide".
type Config struct {
	Message      string          `mapstructure:"message"`
	X            *int            `mapstructure:"x"`
	Y            *int            `mapstructure:"y"`
	FontFamily   string          `mapstructure:"font_family"`
	FontSize     int             `mapstructure:"font_size"`
	TextColor    string          `mapstructure:"text_color"`
	OutlineColor string          `mapstructure:"outline_color"`
	Transparency float64         `mapstructure:"transparency"`
	Language     string          `mapstructure:"language"`
	Schedule     []ScheduleEntry `mapstructure:"schedule"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Message:      DefaultMessage,
		FontFamily:   DefaultFontFamily,
		FontSize:     DefaultFontSize,
		TextColor:    DefaultTextColor,
		OutlineColor: DefaultOutlineColor,
		Transparency: DefaultTransparency,
		Language:     DefaultLanguage,
		Schedule:     []ScheduleEntry{},
	}
}

// DefaultConfigPath returns ~/.attention/config.json.
func DefaultConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".attention", "config.json"), nil
}

// HistoryPathFor returns the history file living next to the config file.
func HistoryPathFor(configPath string) string {
	return filepath.Join(filepath.Dir(configPath), "history.json")
}

// Load reads the config file at path. A missing or corrupt file yields
// the defaults; invalid fields are normalized, never surfaced as errors.
func Load(path string) *Config {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return DefaultConfig()
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("json")
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return DefaultConfig()
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return DefaultConfig()
	}

	cfg.Normalize()
	return &cfg
}

// Save normalizes and writes the config. Only persistence failures are
// errors; validation never is.
func Save(cfg *Config, path string) error {
	cfg.Normalize()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("json")

	v.Set("message", cfg.Message)
	if cfg.X != nil {
		v.Set("x", *cfg.X)
	}
	if cfg.Y != nil {
		v.Set("y", *cfg.Y)
	}
	v.Set("font_family", cfg.FontFamily)
	v.Set("font_size", cfg.FontSize)
	v.Set("text_color", cfg.TextColor)
	v.Set("outline_color", cfg.OutlineColor)
	v.Set("transparency", cfg.Transparency)
	v.Set("language", cfg.Language)

	schedule := make([]map[string]string, 0, len(cfg.Schedule))
	for _, entry := range cfg.Schedule {
		schedule = append(schedule, map[string]string{
			"start": entry.Start,
			"end":   entry.End,
			"label": entry.Label,
		})
	}
	v.Set("schedule", schedule)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// Normalize applies the documented fallbacks in place. Normalization is
// idempotent: a normalized config round-trips unchanged.
func (c *Config) Normalize() {
	c.Message = strings.TrimSpace(c.Message)
	if c.Message == "" {
		c.Message = DefaultMessage
	}
	c.FontFamily = strings.TrimSpace(c.FontFamily)
	if c.FontFamily == "" {
		c.FontFamily = DefaultFontFamily
	}
	c.FontSize = EnsureFontSize(c.FontSize)
	c.TextColor = EnsureColor(c.TextColor, DefaultTextColor)
	c.OutlineColor = EnsureColor(c.OutlineColor, DefaultOutlineColor)
	c.Transparency = EnsureTransparency(c.Transparency)
	c.Language = EnsureLanguage(c.Language)
	c.Schedule = NormalizeSchedule(c.Schedule)
}

// DomainSchedule converts the persisted schedule to domain entries.
// Invalid entries were already dropped by Normalize.
func (c *Config) DomainSchedule() domain.Schedule {
	entries := make([]domain.Entry, 0, len(c.Schedule))
	for _, item := range c.Schedule {
		entry, err := domain.NewEntry(item.Start, item.End, item.Label)
		if err != nil {
			continue
		}
		entries = append(entries, entry)
	}
	return domain.NewSchedule(entries)
}

// IsValidColor reports whether value is a #RRGGBB color.
func IsValidColor(value string) bool {
	value = strings.TrimSpace(value)
	if len(value) != 7 || !strings.HasPrefix(value, "#") {
		return false
	}
	for _, r := range value[1:] {
		switch {
		case r >= '0' && r <= '9':
		case r >= 'a' && r <= 'f':
		case r >= 'A' && r <= 'F':
		default:
			return false
		}
	}
	return true
}

// EnsureColor lowercases a valid color or returns the fallback.
func EnsureColor(value, fallback string) string {
	if IsValidColor(value) {
		return strings.ToLower(strings.TrimSpace(value))
	}
	return fallback
}

// EnsureTransparency clamps into [MinTransparency, MaxTransparency];
// zero means unset and falls back to the default.
func EnsureTransparency(value float64) float64 {
	if value == 0 {
		return DefaultTransparency
	}
	if value < MinTransparency {
		return MinTransparency
	}
	if value > MaxTransparency {
		return MaxTransparency
	}
	return value
}

// EnsureFontSize clamps into [MinFontSize, MaxFontSize]; zero means
// unset and falls back to the default.
func EnsureFontSize(value int) int {
	if value == 0 {
		return DefaultFontSize
	}
	if value < MinFontSize {
		return MinFontSize
	}
	if value > MaxFontSize {
		return MaxFontSize
	}
	return value
}

// EnsureLanguage returns a supported language code or the default.
func EnsureLanguage(value string) string {
	code := strings.ToLower(strings.TrimSpace(value))
	for _, supported := range SupportedLanguages {
		if code == supported {
			return code
		}
	}
	return DefaultLanguage
}

// NormalizeSchedule drops entries that fail validation (bad HH:MM times,
// start >= end), fills empty labels, re-renders times in canonical form
// and sorts by start. Overlapping entries are kept: evaluation resolves
// overlap by first match in order.
func NormalizeSchedule(entries []ScheduleEntry) []ScheduleEntry {
	valid := make([]domain.Entry, 0, len(entries))
	for _, item := range entries {
		entry, err := domain.NewEntry(item.Start, item.End, item.Label)
		if err != nil {
			continue
		}
		valid = append(valid, entry)
	}
	sorted := domain.NewSchedule(valid)

	out := make([]ScheduleEntry, 0, len(sorted))
	for _, entry := range sorted {
		out = append(out, ScheduleEntry{
			Start: entry.Start.String(),
			End:   entry.End.String(),
			Label: entry.Label,
		})
	}
	return out
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("message", DefaultMessage)
	v.SetDefault("font_family", DefaultFontFamily)
	v.SetDefault("font_size", DefaultFontSize)
	v.SetDefault("text_color", DefaultTextColor)
	v.SetDefault("outline_color", DefaultOutlineColor)
	v.SetDefault("transparency", DefaultTransparency)
	v.SetDefault("language", DefaultLanguage)
}
