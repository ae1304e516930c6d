package tray

import (
	"fmt"

	"github.com/bg-music/bgm-tray/internal/models"
)

// TooltipTitle is the first tooltip line, shown alone when no track is known.
const TooltipTitle = "Background Music"

type iconKind int

const (
	iconFallback iconKind = iota
	iconPlay
	iconPause
)

// iconSink is the part of Systray the presenter draws on.
type iconSink interface {
	SetIcon(icon []byte)
	SetTooltip(tooltip string)
}

// Presenter owns the tray icon and tooltip.
type Presenter struct {
	sink    iconSink
	icons   Icons
	current iconKind
	tooltip string
}

// NewPresenter shows the initial icon (the play image, or the embedded
// fallback) and the bare title tooltip.
func NewPresenter(sink iconSink, icons Icons) *Presenter {
	p := &Presenter{sink: sink, icons: icons}
	if icons.Play != nil {
		p.current = iconPlay
		sink.SetIcon(icons.Play)
	} else {
		p.current = iconFallback
		sink.SetIcon(fallbackIcon)
	}
	p.tooltip = TooltipTitle
	sink.SetTooltip(p.tooltip)
	return p
}

// Render updates icon and tooltip from status. The icon only changes when an
// image for the reported state is configured; otherwise it stays as it was.
func (p *Presenter) Render(status models.PlaybackStatus) {
	switch {
	case status.State == models.PlayStatePaused && p.icons.Pause != nil:
		p.setIcon(iconPause, p.icons.Pause)
	case status.State == models.PlayStatePlaying && p.icons.Play != nil:
		p.setIcon(iconPlay, p.icons.Play)
	}

	if tip := Tooltip(status); tip != p.tooltip {
		p.tooltip = tip
		p.sink.SetTooltip(tip)
	}
}

func (p *Presenter) setIcon(kind iconKind, data []byte) {
	if kind == p.current {
		return
	}
	p.current = kind
	p.sink.SetIcon(data)
}

// Tooltip formats the tooltip text for status.
func Tooltip(status models.PlaybackStatus) string {
	if !status.HasTrack() {
		return TooltipTitle
	}
	return fmt.Sprintf("%s\nNow Playing: %s", TooltipTitle, status.DisplayName())
}
