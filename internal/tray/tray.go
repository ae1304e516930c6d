package tray

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/bg-music/bgm-tray/internal/models"
	"github.com/bg-music/bgm-tray/internal/watcher"
)

// Options configures a Tray.
type Options struct {
	Reader     StatusReader
	Dispatcher Dispatcher
	Icons      Icons
	Interval   time.Duration        // poll period, models.DefaultPollInterval when zero
	Changes    <-chan watcher.Event // optional file-change notifications
	Logger     zerolog.Logger
}

// menu holds the static tray entries.
type menu struct {
	pause  MenuItem
	resume MenuItem
	next   MenuItem
	quit   MenuItem
}

// Tray wires the presenter, the menu and the refresh loop to a Systray.
type Tray struct {
	sys       Systray
	opts      Options
	presenter *Presenter
	logger    zerolog.Logger
}

// New creates a Tray drawing on sys.
func New(sys Systray, opts Options) *Tray {
	if opts.Interval <= 0 {
		opts.Interval = models.DefaultPollInterval
	}
	return &Tray{
		sys:    sys,
		opts:   opts,
		logger: opts.Logger,
	}
}

// Run shows the tray and blocks until it quits, either from the Quit menu
// entry or because ctx was cancelled. It must be called from the main
// goroutine (Cocoa requirement on macOS).
func (t *Tray) Run(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var started atomic.Bool
	done := make(chan struct{})

	onReady := func() {
		t.presenter = NewPresenter(t.sys, t.opts.Icons)
		m := t.buildMenu()
		started.Store(true)
		go func() {
			defer close(done)
			t.loop(ctx, m)
		}()
	}
	onExit := func() {
		cancel()
		t.logger.Info().Msg("tray stopped")
	}

	t.sys.Run(onReady, onExit)

	cancel()
	if started.Load() {
		<-done
	}
}

func (t *Tray) buildMenu() menu {
	m := menu{
		pause:  t.sys.AddMenuItem("Pause", "Pause playback"),
		resume: t.sys.AddMenuItem("Resume", "Resume playback"),
		next:   t.sys.AddMenuItem("Next song", "Skip to the next song"),
	}
	t.sys.AddSeparator()
	m.quit = t.sys.AddMenuItem("Quit tray", "Close the tray icon")
	return m
}
