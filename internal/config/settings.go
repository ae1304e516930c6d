package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/bg-music/bgm-tray/internal/models"
)

// ErrNoScript is returned when no controller script was configured.
var ErrNoScript = errors.New("controller script is required (--script or script: in config)")

// LoadSettings loads settings from path, or from ~/.bg-music-tray/config.yaml
// when path is empty. A missing file yields defaults. Empty path fields are
// filled with the controller's default file locations.
func LoadSettings(path string) (*models.Settings, error) {
	if path == "" {
		var err error
		path, err = GlobalConfigFile()
		if err != nil {
			return nil, err
		}
	} else if !FileExists(path) {
		return nil, fmt.Errorf("config file %s does not exist", path)
	}

	settings, err := LoadYAMLOrDefault(path, models.NewSettings)
	if err != nil {
		return nil, err
	}
	if err := applyDefaults(settings); err != nil {
		return nil, err
	}
	return settings, nil
}

func applyDefaults(s *models.Settings) error {
	if s.NowPlayingLog == "" {
		p, err := DefaultNowPlayingLog()
		if err != nil {
			return fmt.Errorf("failed to resolve now-playing log: %w", err)
		}
		s.NowPlayingLog = p
	}
	if s.StateFile == "" {
		s.StateFile = DefaultStateFile()
	}
	if s.PollInterval <= 0 {
		s.PollInterval = models.DefaultPollInterval
	}
	if s.LogLevel == "" {
		s.LogLevel = "info"
	}
	return nil
}

// Validate checks that settings are usable for running the tray.
func Validate(s *models.Settings) error {
	if s.Script == "" {
		return ErrNoScript
	}
	if s.PollInterval < 100*time.Millisecond {
		return fmt.Errorf("poll interval %s is too short (minimum 100ms)", s.PollInterval)
	}
	return nil
}
