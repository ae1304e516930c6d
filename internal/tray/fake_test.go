package tray

import (
	"bytes"
	"sync"

	"github.com/bg-music/bgm-tray/internal/controller"
	"github.com/bg-music/bgm-tray/internal/models"
)

type fakeItem struct {
	ch chan struct{}
}

func (i *fakeItem) Clicked() <-chan struct{} { return i.ch }

// fakeSystray records every call and blocks Run until Quit.
type fakeSystray struct {
	mu       sync.Mutex
	icons    [][]byte
	tooltips []string
	items    map[string]*fakeItem
	order    []string
	quit     chan struct{}
	quitOnce sync.Once
	ready    chan struct{}
}

func newFakeSystray() *fakeSystray {
	return &fakeSystray{
		items: make(map[string]*fakeItem),
		quit:  make(chan struct{}),
		ready: make(chan struct{}),
	}
}

func (f *fakeSystray) Run(onReady, onExit func()) {
	onReady()
	close(f.ready)
	<-f.quit
	onExit()
}

func (f *fakeSystray) Quit() {
	f.quitOnce.Do(func() { close(f.quit) })
}

func (f *fakeSystray) SetIcon(icon []byte) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.icons = append(f.icons, icon)
}

func (f *fakeSystray) SetTooltip(tooltip string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.tooltips = append(f.tooltips, tooltip)
}

func (f *fakeSystray) AddMenuItem(title, _ string) MenuItem {
	f.mu.Lock()
	defer f.mu.Unlock()
	item := &fakeItem{ch: make(chan struct{})}
	f.items[title] = item
	f.order = append(f.order, title)
	return item
}

func (f *fakeSystray) AddSeparator() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.order = append(f.order, "-")
}

func (f *fakeSystray) click(title string) {
	f.mu.Lock()
	item := f.items[title]
	f.mu.Unlock()
	item.ch <- struct{}{}
}

func (f *fakeSystray) lastIcon() []byte {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.icons) == 0 {
		return nil
	}
	return f.icons[len(f.icons)-1]
}

func (f *fakeSystray) lastTooltip() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.tooltips) == 0 {
		return ""
	}
	return f.tooltips[len(f.tooltips)-1]
}

func (f *fakeSystray) iconIs(want []byte) bool {
	return bytes.Equal(f.lastIcon(), want)
}

// fakeReader returns a status that tests can swap at any time.
type fakeReader struct {
	mu     sync.Mutex
	status models.PlaybackStatus
	reads  int
}

func (r *fakeReader) Read() models.PlaybackStatus {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.reads++
	return r.status
}

func (r *fakeReader) set(s models.PlaybackStatus) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.status = s
}

func (r *fakeReader) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.reads
}

// fakeDispatcher records verbs and optionally fails every launch.
type fakeDispatcher struct {
	mu    sync.Mutex
	verbs []controller.Verb
	err   error
}

func (d *fakeDispatcher) Dispatch(verb controller.Verb) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.verbs = append(d.verbs, verb)
	return d.err
}

func (d *fakeDispatcher) sent() []controller.Verb {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]controller.Verb(nil), d.verbs...)
}
