package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")

	cfg := Load(path)

	assert.Equal(t, DefaultMessage, cfg.Message)
	assert.Equal(t, DefaultFontSize, cfg.FontSize)
	assert.Equal(t, DefaultTextColor, cfg.TextColor)
	assert.Equal(t, DefaultTransparency, cfg.Transparency)
	assert.Equal(t, DefaultLanguage, cfg.Language)
	assert.Empty(t, cfg.Schedule)
}

func TestLoadCorruptFileReturnsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	cfg := Load(path)

	assert.Equal(t, DefaultMessage, cfg.Message)
	assert.Empty(t, cfg.Schedule)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.json")

	x, y := 120, 48
	cfg := &Config{
		Message:      "deep work",
		X:            &x,
		Y:            &y,
		FontFamily:   "Iosevka",
		FontSize:     18,
		TextColor:    "#ABCDEF",
		OutlineColor: "#112233",
		Transparency: 0.5,
		Language:     "zh",
		Schedule: []ScheduleEntry{
			{Start: "12:00", End: "12:30", Label: "Lunch"},
			{Start: "9:05", End: "09:15", Label: ""},
		},
	}
	require.NoError(t, Save(cfg, path))

	loaded := Load(path)

	assert.Equal(t, "deep work", loaded.Message)
	require.NotNil(t, loaded.X)
	require.NotNil(t, loaded.Y)
	assert.Equal(t, 120, *loaded.X)
	assert.Equal(t, 48, *loaded.Y)
	assert.Equal(t, "Iosevka", loaded.FontFamily)
	assert.Equal(t, 18, loaded.FontSize)
	assert.Equal(t, "#abcdef", loaded.TextColor)
	assert.Equal(t, "#112233", loaded.OutlineColor)
	assert.Equal(t, 0.5, loaded.Transparency)
	assert.Equal(t, "zh", loaded.Language)

	require.Len(t, loaded.Schedule, 2)
	assert.Equal(t, ScheduleEntry{Start: "09:05", End: "09:15", Label: "Break"}, loaded.Schedule[0])
	assert.Equal(t, ScheduleEntry{Start: "12:00", End: "12:30", Label: "Lunch"}, loaded.Schedule[1])
}

func TestNormalizeClampsAndDefaults(t *testing.T) {
	cfg := &Config{
		Message:      "   ",
		FontSize:     500,
		TextColor:    "red",
		OutlineColor: "#00FF00",
		Transparency: 0.05,
		Language:     "fr",
	}
	cfg.Normalize()

	assert.Equal(t, DefaultMessage, cfg.Message)
	assert.Equal(t, MaxFontSize, cfg.FontSize)
	assert.Equal(t, DefaultTextColor, cfg.TextColor)
	assert.Equal(t, "#00ff00", cfg.OutlineColor)
	assert.Equal(t, MinTransparency, cfg.Transparency)
	assert.Equal(t, DefaultLanguage, cfg.Language)
}

func TestIsValidColor(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{"#ffffff", true},
		{"#ABC123", true},
		{" #ffffff ", true},
		{"#fff", false},
		{"ffffff", false},
		{"#gggggg", false},
		{"", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, IsValidColor(tt.value), "value %q", tt.value)
	}
}

func TestEnsureTransparency(t *testing.T) {
	assert.Equal(t, DefaultTransparency, EnsureTransparency(0))
	assert.Equal(t, MinTransparency, EnsureTransparency(0.1))
	assert.Equal(t, 0.6, EnsureTransparency(0.6))
	assert.Equal(t, MaxTransparency, EnsureTransparency(1.5))
}

func TestEnsureFontSize(t *testing.T) {
	assert.Equal(t, DefaultFontSize, EnsureFontSize(0))
	assert.Equal(t, MinFontSize, EnsureFontSize(3))
	assert.Equal(t, 40, EnsureFontSize(40))
	assert.Equal(t, MaxFontSize, EnsureFontSize(200))
}

func TestNormalizeScheduleDropsInvalidAndSorts(t *testing.T) {
	entries := []ScheduleEntry{
		{Start: "15:00", End: "15:10", Label: "Stretch"},
		{Start: "10:30", End: "10:00", Label: "Backwards"},
		{Start: "nope", End: "11:00", Label: "Bad time"},
		{Start: "09:00", End: "09:10", Label: ""},
	}

	got := NormalizeSchedule(entries)

	require.Len(t, got, 2)
	assert.Equal(t, ScheduleEntry{Start: "09:00", End: "09:10", Label: "Break"}, got[0])
	assert.Equal(t, ScheduleEntry{Start: "15:00", End: "15:10", Label: "Stretch"}, got[1])
}

func TestHistoryPathFor(t *testing.T) {
	assert.Equal(t, filepath.Join("/home/u/.attention", "history.json"),
		HistoryPathFor("/home/u/.attention/config.json"))
}

func TestDomainSchedule(t *testing.T) {
	cfg := &Config{Schedule: []ScheduleEntry{
		{Start: "09:00", End: "09:10", Label: "Break"},
		{Start: "12:00", End: "12:45", Label: "Lunch"},
	}}

	schedule := cfg.DomainSchedule()

	require.Len(t, schedule, 2)
	assert.Equal(t, "09:00 - 09:10  Break", schedule[0].String())
	assert.Equal(t, "12:00 - 12:45  Lunch", schedule[1].String())
}
