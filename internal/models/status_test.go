package models

import "testing"

func TestDisplayName(t *testing.T) {
	tests := []struct {
		track    string
		expected string
	}{
		{"foo.mp3", "foo"},
		{"bar.flac", "bar"},
		{"no extension", "no extension"},
		{"my.song.name.ogg", "my.song.name"},
		{".mp3", ".mp3"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.track, func(t *testing.T) {
			s := PlaybackStatus{Track: tt.track}
			if got := s.DisplayName(); got != tt.expected {
				t.Errorf("DisplayName() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestPlayStateString(t *testing.T) {
	if PlayStatePaused.String() != "paused" {
		t.Errorf("PlayStatePaused = %q", PlayStatePaused.String())
	}
	if PlayStatePlaying.String() != "playing" {
		t.Errorf("PlayStatePlaying = %q", PlayStatePlaying.String())
	}
	if PlayState(42).String() != "unknown" {
		t.Errorf("PlayState(42) = %q", PlayState(42).String())
	}
}

func TestHasTrack(t *testing.T) {
	if (PlaybackStatus{}).HasTrack() {
		t.Error("empty status should have no track")
	}
	if !(PlaybackStatus{Track: "a.mp3"}).HasTrack() {
		t.Error("status with track should report HasTrack")
	}
}
