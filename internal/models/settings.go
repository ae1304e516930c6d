// Package models defines the data types shared across bgm-tray packages.
package models

import "time"

// DefaultPollInterval is how often the tray re-reads the controller's files.
const DefaultPollInterval = 2 * time.Second

// Settings holds the tray configuration.
// This corresponds to ~/.bg-music-tray/config.yaml. Command-line flags
// override every field.
type Settings struct {
	Version       int           `yaml:"version"`
	Script        string        `yaml:"script"`     // controller script, invoked as <script> <verb>
	Icon          string        `yaml:"icon"`       // play-state image
	IconPause     string        `yaml:"icon_pause"` // pause-state image
	NowPlayingLog string        `yaml:"now_playing_log"`
	StateFile     string        `yaml:"state_file"`
	PollInterval  time.Duration `yaml:"poll_interval"`
	Watch         bool          `yaml:"watch"` // refresh on file change in addition to polling
	LogLevel      string        `yaml:"log_level"`
}

// NewSettings creates settings with default values. Paths that depend on the
// environment are filled in by the config package.
func NewSettings() *Settings {
	return &Settings{
		Version:      1,
		PollInterval: DefaultPollInterval,
		Watch:        true,
		LogLevel:     "info",
	}
}
