// Package tray implements the system tray icon, menu and refresh loop.
package tray

import (
	"errors"

	"github.com/bg-music/bgm-tray/internal/controller"
	"github.com/bg-music/bgm-tray/internal/models"
)

// ErrUnavailable is returned when the binary was built without a GUI toolkit.
var ErrUnavailable = errors.New("system tray is not available in this build")

// Systray is the subset of the tray toolkit the application uses.
type Systray interface {
	Run(onReady, onExit func())
	Quit()
	SetIcon(icon []byte)
	SetTooltip(tooltip string)
	AddMenuItem(title, tooltip string) MenuItem
	AddSeparator()
}

// MenuItem is a clickable tray menu entry.
type MenuItem interface {
	Clicked() <-chan struct{}
}

// StatusReader provides the current playback status.
type StatusReader interface {
	Read() models.PlaybackStatus
}

// Dispatcher sends a verb to the controller without waiting for it.
type Dispatcher interface {
	Dispatch(verb controller.Verb) error
}
