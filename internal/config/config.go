package config

import (
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config is the full agent configuration, loaded once at startup
type Config struct {
	Env string `yaml:"env" env:"APP_ENV" env-default:"local"`

	Log struct {
		Level  string `yaml:"level" env:"LOG_LEVEL" env-default:"info"`
		Format string `yaml:"format" env:"LOG_FORMAT" env-default:"console"`
	} `yaml:"log"`

	Server struct {
		Enabled bool `yaml:"enabled" env:"SERVER_ENABLED" env-default:"true"`
		Port    int  `yaml:"port" env:"SERVER_PORT" env-default:"8754"`
	} `yaml:"server"`

	Tracking      TrackingConfig     `yaml:"tracking"`
	Notifications NotificationConfig `yaml:"notifications"`

	// Categories is matched in declaration order; the first category whose
	// any member is a case-insensitive substring of the app name wins.
	Categories []CategoryDefinition `yaml:"categories"`

	// DisplayNames maps executable names to friendly labels
	DisplayNames map[string]string `yaml:"display_names"`
}

// TrackingConfig controls the sampling loop
type TrackingConfig struct {
	SessionDuration int  `yaml:"session_duration" env:"SESSION_DURATION" env-default:"60"` // seconds
	PollInterval    int  `yaml:"poll_interval" env:"POLL_INTERVAL" env-default:"1"`        // seconds
	Continuous      bool `yaml:"continuous" env:"TRACKING_CONTINUOUS" env-default:"false"`

	// CountMode decides how same-name process rows within one tick are
	// counted: "rows" increments once per row, "distinct" at most once per
	// application name per tick.
	CountMode string `yaml:"count_mode" env:"COUNT_MODE" env-default:"rows"`

	TrackedApps []string `yaml:"tracked_apps"`
	IgnoredApps []string `yaml:"ignored_apps"`
}

// NotificationConfig controls the desktop notification side effects
type NotificationConfig struct {
	Enabled          bool `yaml:"enabled" env:"NOTIFICATIONS_ENABLED" env-default:"true"`
	ThresholdSeconds int  `yaml:"threshold_seconds" env:"NOTIFY_THRESHOLD" env-default:"1800"`
	CooldownSeconds  int  `yaml:"cooldown_seconds" env:"NOTIFY_COOLDOWN" env-default:"10"`
	TimeoutSeconds   int  `yaml:"timeout_seconds" env:"NOTIFY_TIMEOUT" env-default:"10"`

	// Evening window for blue light filter suggestions, [start, end) in local hours
	EveningStartHour int `yaml:"evening_start_hour" env:"EVENING_START_HOUR" env-default:"18"`
	EveningEndHour   int `yaml:"evening_end_hour" env:"EVENING_END_HOUR" env-default:"22"`

	// BlueLightThreshold is the total screen-time in minutes after which the
	// blue light filter recommendation is included in reports
	BlueLightThreshold float64 `yaml:"blue_light_threshold" env:"BLUE_LIGHT_THRESHOLD" env-default:"30"`
}

// CategoryDefinition is one usage category with its member applications
type CategoryDefinition struct {
	Name  string   `yaml:"name"`
	Apps  []string `yaml:"apps"`
	Emoji string   `yaml:"emoji"`
	Color string   `yaml:"color"`
}

// Tick count modes
const (
	CountModeRows     = "rows"
	CountModeDistinct = "distinct"
)

// LoadConfig loads configuration from a YAML file, overlaying it on the
// built-in defaults. Environment variables override file values.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("config file not found: %s", path)
		}
		if err := cleanenv.ReadConfig(path, cfg); err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	} else {
		if err := cleanenv.ReadEnv(cfg); err != nil {
			return nil, fmt.Errorf("failed to read environment: %w", err)
		}
	}

	if cfg.Tracking.CountMode != CountModeRows && cfg.Tracking.CountMode != CountModeDistinct {
		return nil, fmt.Errorf("invalid count_mode %q", cfg.Tracking.CountMode)
	}
	if cfg.Tracking.SessionDuration <= 0 {
		return nil, fmt.Errorf("session_duration must be positive, got %d", cfg.Tracking.SessionDuration)
	}

	// An empty category table is not an error: everything degrades to Other
	if len(cfg.TrackedApps()) == 0 {
		return nil, fmt.Errorf("tracked_apps must not be empty")
	}

	return cfg, nil
}

// TrackedApps returns the allow-list, defaulting to the display-name table
// keys when no explicit list is configured.
func (c *Config) TrackedApps() []string {
	if len(c.Tracking.TrackedApps) > 0 {
		return c.Tracking.TrackedApps
	}
	apps := make([]string, 0, len(c.DisplayNames))
	for app := range c.DisplayNames {
		apps = append(apps, app)
	}
	return apps
}

// DefaultConfig returns the built-in configuration mirroring the stock
// category table and app lists.
func DefaultConfig() *Config {
	cfg := &Config{}
	cfg.Env = "local"
	cfg.Log.Level = "info"
	cfg.Log.Format = "console"
	cfg.Server.Enabled = true
	cfg.Server.Port = 8754
	cfg.Tracking = TrackingConfig{
		SessionDuration: 60,
		PollInterval:    1,
		CountMode:       CountModeRows,
		IgnoredApps: []string{
			"svchost.exe", "System Idle Process", "explorer.exe", "Registry",
			"csrss.exe", "wininit.exe", "Conhost.exe", "RuntimeBroker.exe",
		},
	}
	cfg.Notifications = NotificationConfig{
		Enabled:            true,
		ThresholdSeconds:   1800,
		CooldownSeconds:    10,
		TimeoutSeconds:     10,
		EveningStartHour:   18,
		EveningEndHour:     22,
		BlueLightThreshold: 30,
	}
	cfg.Categories = DefaultCategories()
	cfg.DisplayNames = DefaultDisplayNames()
	return cfg
}

// DefaultCategories returns the stock category table. Order matters: the
// first matching category wins during classification.
func DefaultCategories() []CategoryDefinition {
	return []CategoryDefinition{
		{
			Name:  "Productivity",
			Apps:  []string{"excel.exe", "word.exe", "powerpoint.exe", "code.exe", "notepad.exe"},
			Emoji: "💼",
			Color: "#2ecc71",
		},
		{
			Name:  "Communication",
			Apps:  []string{"teams.exe", "slack.exe", "outlook.exe", "discord.exe", "skype.exe", "telegram.exe", "whatsapp.exe"},
			Emoji: "💬",
			Color: "#3498db",
		},
		{
			Name:  "Browsers",
			Apps:  []string{"chrome.exe", "firefox.exe", "msedge.exe", "opera.exe", "safari.exe"},
			Emoji: "🌐",
			Color: "#9b59b6",
		},
		{
			Name:  "Entertainment",
			Apps:  []string{"spotify.exe", "netflix.exe", "steam.exe", "vlc.exe", "stremio.exe"},
			Emoji: "🎮",
			Color: "#e74c3c",
		},
		{
			Name:  "Creative",
			Apps:  []string{"photoshop.exe", "illustrator.exe", "obs64.exe"},
			Emoji: "🎨",
			Color: "#f1c40f",
		},
	}
}

// DefaultDisplayNames returns the stock executable-to-label table
func DefaultDisplayNames() map[string]string {
	return map[string]string{
		"chrome.exe":        "🌐 Google Chrome",
		"firefox.exe":       "🦊 Firefox",
		"msedge.exe":        "🌐 Microsoft Edge",
		"spotify.exe":       "🎵 Spotify",
		"postgres.exe":      "🐘 Postgres",
		"discord.exe":       "💬 Discord",
		"slack.exe":         "💼 Slack",
		"teams.exe":         "👥 Microsoft Teams",
		"code.exe":          "💻 VS Code",
		"notepad.exe":       "📝 Notepad",
		"excel.exe":         "📊 Excel",
		"word.exe":          "📄 Word",
		"powerpoint.exe":    "📺 PowerPoint",
		"outlook.exe":       "📧 Outlook",
		"steam.exe":         "🎮 Steam",
		"vlc.exe":           "🎥 VLC Media Player",
		"photoshop.exe":     "🎨 Photoshop",
		"illustrator.exe":   "✒️ Illustrator",
		"zoom.exe":          "🎥 Zoom",
		"skype.exe":         "💬 Skype",
		"obs64.exe":         "🎥 OBS Studio",
		"winrar.exe":        "📦 WinRAR",
		"7zg.exe":           "📦 7-Zip",
		"telegram.exe":      "✈️ Telegram",
		"whatsapp.exe":      "💬 WhatsApp",
		"netflix.exe":       "🎬 Netflix",
		"GitHubDesktop.exe": "🐈‍⬛ Github",
		"stremio.exe":       "🍿 Stremio",
	}
}
