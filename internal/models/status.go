package models

import (
	"path/filepath"
	"strings"
)

// PlayState is the playback state reported by the controller's state file.
type PlayState int

// Playback states.
const (
	PlayStateUnknown PlayState = iota
	PlayStatePlaying
	PlayStatePaused
)

// String returns the state name as used in the state file.
func (s PlayState) String() string {
	switch s {
	case PlayStatePlaying:
		return "playing"
	case PlayStatePaused:
		return "paused"
	default:
		return "unknown"
	}
}

// PlaybackStatus is a projection of the now-playing log and state file at
// read time. It is never persisted.
type PlaybackStatus struct {
	Track string // empty when no track is known
	State PlayState
}

// HasTrack reports whether a track name is known.
func (s PlaybackStatus) HasTrack() bool {
	return s.Track != ""
}

// DisplayName returns the track name without its file extension. A name that
// is only an extension, such as ".mp3", is returned as is.
func (s PlaybackStatus) DisplayName() string {
	name := strings.TrimSuffix(s.Track, filepath.Ext(s.Track))
	if name == "" {
		return s.Track
	}
	return name
}
