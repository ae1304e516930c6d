package tray

import (
	_ "embed"
	"os"

	"github.com/rs/zerolog"

	"github.com/bg-music/bgm-tray/internal/config"
)

// fallbackIcon is shown when no play image was configured.
//
//go:embed icons/fallback.png
var fallbackIcon []byte

// Icons holds the optional state images. A nil image means "not configured".
type Icons struct {
	Play  []byte
	Pause []byte
}

// LoadIcons resolves the configured images once. A path that is not a
// regular file, or cannot be read, is treated as absent and never retried.
func LoadIcons(playPath, pausePath string, logger zerolog.Logger) Icons {
	return Icons{
		Play:  loadIcon(playPath, logger),
		Pause: loadIcon(pausePath, logger),
	}
}

func loadIcon(path string, logger zerolog.Logger) []byte {
	if path == "" {
		return nil
	}
	if !config.IsRegularFile(path) {
		logger.Warn().Str("path", path).Msg("icon is not a regular file, ignoring")
		return nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		logger.Warn().Err(err).Str("path", path).Msg("failed to read icon, ignoring")
		return nil
	}
	return data
}
