package tray

import (
	"context"
	"time"

	"github.com/bg-music/bgm-tray/internal/controller"
)

// loop serializes every tray event on one goroutine: poll ticks, file-change
// notifications and menu clicks. The poll timer is re-armed only after a
// refresh returns, so a slow read delays that tick and nothing else.
func (t *Tray) loop(ctx context.Context, m menu) {
	t.refresh()

	timer := time.NewTimer(t.opts.Interval)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			t.sys.Quit()
			return

		case <-timer.C:
			t.refresh()
			timer.Reset(t.opts.Interval)

		case ev := <-t.opts.Changes:
			t.logger.Debug().Str("path", ev.Path).Msg("file changed")
			t.refresh()

		case <-m.pause.Clicked():
			t.dispatch(controller.VerbPause)
		case <-m.resume.Clicked():
			t.dispatch(controller.VerbResume)
		case <-m.next.Clicked():
			t.dispatch(controller.VerbNext)

		case <-m.quit.Clicked():
			t.logger.Info().Msg("quit requested from menu")
			t.sys.Quit()
			return
		}
	}
}

// refresh reads the controller's files and renders the result.
func (t *Tray) refresh() {
	t.presenter.Render(t.opts.Reader.Read())
}

// dispatch sends verb to the controller. Launch failures are logged and
// otherwise discarded so the menu stays usable with a broken controller.
func (t *Tray) dispatch(verb controller.Verb) {
	if err := t.opts.Dispatcher.Dispatch(verb); err != nil {
		t.logger.Warn().Err(err).Str("verb", string(verb)).Msg("controller launch failed")
		return
	}
	t.logger.Info().Str("verb", string(verb)).Msg("controller command sent")
}
