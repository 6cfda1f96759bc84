package config

import (
	"fyne.io/fyne/v2"
)

// Settings keys for Fyne preferences
const (
	KeyWindowWidth  = "window_width"
	KeyWindowHeight = "window_height"
	KeyTextSize     = "text_size"
	KeyLogLevel     = "log_level"
)

// Default values
const (
	DefaultWindowWidth  = 500
	DefaultWindowHeight = 300
	DefaultTextSize     = 13
	DefaultLogLevel     = "info"
)

// Bounds applied to preference values
const (
	MinWindowWidth  = 200
	MinWindowHeight = 150
	MinTextSize     = 10
	MaxTextSize     = 24
)

// Settings exposes application configuration. Values come from the Fyne
// preferences store when one is available and are never written back: the
// app keeps no state between runs.
type Settings struct {
	prefs fyne.Preferences
}

// NewSettings creates a settings reader. A nil store yields the defaults.
func NewSettings(prefs fyne.Preferences) *Settings {
	return &Settings{prefs: prefs}
}

// NewSettingsFromApp reads settings from the app's preferences
func NewSettingsFromApp(app fyne.App) *Settings {
	if app == nil {
		return NewSettings(nil)
	}
	return NewSettings(app.Preferences())
}

// GetWindowSize returns the initial main window size
func (s *Settings) GetWindowSize() fyne.Size {
	width := s.intWithFallback(KeyWindowWidth, DefaultWindowWidth)
	if width < MinWindowWidth {
		width = MinWindowWidth
	}
	height := s.intWithFallback(KeyWindowHeight, DefaultWindowHeight)
	if height < MinWindowHeight {
		height = MinWindowHeight
	}
	return fyne.NewSize(float32(width), float32(height))
}

// GetTextSize returns the theme text size
func (s *Settings) GetTextSize() float32 {
	size := s.floatWithFallback(KeyTextSize, DefaultTextSize)
	if size < MinTextSize {
		size = MinTextSize
	}
	if size > MaxTextSize {
		size = MaxTextSize
	}
	return float32(size)
}

// GetLogLevel returns the configured log level name
func (s *Settings) GetLogLevel() string {
	if s.prefs == nil {
		return DefaultLogLevel
	}
	return s.prefs.StringWithFallback(KeyLogLevel, DefaultLogLevel)
}

func (s *Settings) intWithFallback(key string, fallback int) int {
	if s.prefs == nil {
		return fallback
	}
	return s.prefs.IntWithFallback(key, fallback)
}

func (s *Settings) floatWithFallback(key string, fallback float64) float64 {
	if s.prefs == nil {
		return fallback
	}
	return s.prefs.FloatWithFallback(key, fallback)
}
