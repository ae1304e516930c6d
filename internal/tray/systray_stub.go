//go:build !cgo && !windows

package tray

// NewSystray reports that no tray toolkit was compiled in (CGO disabled).
func NewSystray() (Systray, error) {
	return nil, ErrUnavailable
}
