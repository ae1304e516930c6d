//go:build cgo || windows

package tray

import "github.com/getlantern/systray"

type lanternItem struct {
	item *systray.MenuItem
}

func (i lanternItem) Clicked() <-chan struct{} { return i.item.ClickedCh }

// lanternSystray adapts the package-level getlantern/systray API.
type lanternSystray struct{}

func (lanternSystray) Run(onReady, onExit func()) { systray.Run(onReady, onExit) }
func (lanternSystray) Quit()                      { systray.Quit() }
func (lanternSystray) SetIcon(icon []byte)        { systray.SetIcon(icon) }
func (lanternSystray) SetTooltip(tooltip string)  { systray.SetTooltip(tooltip) }
func (lanternSystray) AddSeparator()              { systray.AddSeparator() }

func (lanternSystray) AddMenuItem(title, tooltip string) MenuItem {
	return lanternItem{item: systray.AddMenuItem(title, tooltip)}
}

// NewSystray returns the platform tray. Run must be called from the main goroutine.
func NewSystray() (Systray, error) {
	return lanternSystray{}, nil
}
