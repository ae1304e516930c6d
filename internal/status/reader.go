// Package status reads the controller's now-playing log and state file.
package status

import (
	"bytes"
	"os"
	"strings"

	"github.com/rs/zerolog"

	"github.com/bg-music/bgm-tray/internal/models"
)

// NowPlayingPrefix marks track-change lines in the now-playing log.
const NowPlayingPrefix = "Now playing: "

// State file markers.
const (
	statePausedMarker  = "state=paused"
	statePlayingMarker = "state=playing"
)

// ReadTrack returns the track named by the last "Now playing: " line in the
// log at path. It returns "" with a nil error when no such line exists.
func ReadTrack(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return lastTrack(data), nil
}

func lastTrack(data []byte) string {
	lines := bytes.Split(data, []byte("\n"))
	for i := len(lines) - 1; i >= 0; i-- {
		line := strings.TrimSpace(strings.ToValidUTF8(string(lines[i]), ""))
		if strings.HasPrefix(line, NowPlayingPrefix) {
			return line[len(NowPlayingPrefix):]
		}
	}
	return ""
}

// ReadPlayState returns the play state recorded in the state file at path.
// Markers are matched as substrings, so surrounding text is allowed.
func ReadPlayState(path string) (models.PlayState, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return models.PlayStateUnknown, err
	}
	return parsePlayState(string(data)), nil
}

func parsePlayState(content string) models.PlayState {
	content = strings.TrimSpace(content)
	switch {
	case strings.Contains(content, statePausedMarker):
		return models.PlayStatePaused
	case strings.Contains(content, statePlayingMarker):
		return models.PlayStatePlaying
	default:
		return models.PlayStateUnknown
	}
}

// Reader projects the two controller files into a PlaybackStatus.
type Reader struct {
	LogPath   string
	StatePath string
	Logger    zerolog.Logger
}

// NewReader creates a Reader for the given files.
func NewReader(logPath, statePath string, logger zerolog.Logger) *Reader {
	return &Reader{
		LogPath:   logPath,
		StatePath: statePath,
		Logger:    logger,
	}
}

// Read returns the current status. Read errors count as "no information":
// they are logged at debug level and the affected field is left empty.
func (r *Reader) Read() models.PlaybackStatus {
	var st models.PlaybackStatus

	track, err := ReadTrack(r.LogPath)
	if err != nil {
		r.Logger.Debug().Err(err).Str("path", r.LogPath).Msg("now-playing log unreadable")
	}
	st.Track = track

	state, err := ReadPlayState(r.StatePath)
	if err != nil {
		r.Logger.Debug().Err(err).Str("path", r.StatePath).Msg("state file unreadable")
	}
	st.State = state

	return st
}
