package config

import (
	"strings"
	"time"

	"fyne.io/fyne/v2"

	"github.com/ytget/zip-lookup/internal/lookup"
	"github.com/ytget/zip-lookup/internal/platform"
)

// Settings keys for Fyne preferences
const (
	KeyAPIBaseURL     = "api_base_url"
	KeyAssetDir       = "state_asset_directory"
	KeyRequestTimeout = "request_timeout_seconds"
	KeyLanguage       = "app_language"
)

// Default values
const (
	DefaultAPIBaseURL     = lookup.DefaultBaseURL
	DefaultRequestTimeout = 0 // seconds; zero disables the timeout
	DefaultLanguage       = "system"
	MaxRequestTimeout     = 300
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetAPIBaseURL returns the configured postal service endpoint
func (s *Settings) GetAPIBaseURL() string {
	baseURL := s.app.Preferences().String(KeyAPIBaseURL)
	if baseURL == "" {
		s.SetAPIBaseURL(DefaultAPIBaseURL)
		return DefaultAPIBaseURL
	}
	return baseURL
}

// SetAPIBaseURL sets the postal service endpoint; empty restores the default
func (s *Settings) SetAPIBaseURL(baseURL string) {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		baseURL = DefaultAPIBaseURL
	}
	s.app.Preferences().SetString(KeyAPIBaseURL, baseURL)
}

// GetAssetDirectory returns the directory containing states/
func (s *Settings) GetAssetDirectory() string {
	dir := s.app.Preferences().String(KeyAssetDir)
	if dir == "" {
		defaultDir := platform.DefaultAssetDir()
		s.SetAssetDirectory(defaultDir)
		return defaultDir
	}
	return dir
}

// SetAssetDirectory sets the asset directory
func (s *Settings) SetAssetDirectory(dir string) {
	s.app.Preferences().SetString(KeyAssetDir, strings.TrimSpace(dir))
}

// GetRequestTimeoutSeconds returns the request timeout in seconds (0 = none)
func (s *Settings) GetRequestTimeoutSeconds() int {
	return s.app.Preferences().IntWithFallback(KeyRequestTimeout, DefaultRequestTimeout)
}

// SetRequestTimeoutSeconds sets the request timeout, clamped to [0, MaxRequestTimeout]
func (s *Settings) SetRequestTimeoutSeconds(seconds int) {
	if seconds < 0 {
		seconds = 0
	}
	if seconds > MaxRequestTimeout {
		seconds = MaxRequestTimeout
	}
	s.app.Preferences().SetInt(KeyRequestTimeout, seconds)
}

// GetRequestTimeout returns the request timeout as a duration
func (s *Settings) GetRequestTimeout() time.Duration {
	return time.Duration(s.GetRequestTimeoutSeconds()) * time.Second
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
		"pt":     "Português",
	}
}
