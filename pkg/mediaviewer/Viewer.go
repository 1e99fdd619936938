package mediaviewer

import (
	"fmt"
)

const (
	ZoomMin     = 0.5
	ZoomMax     = 3.0
	ZoomStep    = 0.25
	ZoomNeutral = 1.0
)

var (
	ErrNoAssets = fmt.Errorf("viewer requires at least one asset")
)

/*
DismissTrigger identifies which affordance closed the fullscreen view.
All triggers produce the same transition.
*/
type DismissTrigger string

const (
	DismissEscape       DismissTrigger = "escape"
	DismissOverlayClick DismissTrigger = "overlay"
	DismissCloseControl DismissTrigger = "close"
)

/*
ScrollLocker suspends and restores page scrolling while the fullscreen
view is open. The HTTP layer supplies one that toggles a body class;
tests supply a fake.
*/
type ScrollLocker interface {
	Lock()
	Unlock()
}

type noopScrollLocker struct{}

func (noopScrollLocker) Lock()   {}
func (noopScrollLocker) Unlock() {}

type ViewerConfig struct {
	Name         string
	Assets       []string
	ScrollLocker ScrollLocker

	/*
	 * Optional initial state, for callers that rebuild a viewer from a
	 * serialized prior state. Out of range values are clamped.
	 */
	Index      int
	Zoom       float64
	Fullscreen bool
}

/*
Viewer presents an ordered, immutable list of assets with sequential
browsing, an inline and a fullscreen mode, and bounded zoom. Navigation
wraps around both ends of the list. Zoom returns to neutral whenever the
current asset changes or fullscreen closes.
*/
type Viewer struct {
	name       string
	assets     []string
	index      int
	fullscreen bool
	zoom       float64
	scroll     ScrollLocker
}

func NewViewer(config ViewerConfig) (*Viewer, error) {
	if len(config.Assets) == 0 {
		return nil, ErrNoAssets
	}

	scroll := config.ScrollLocker

	if scroll == nil {
		scroll = noopScrollLocker{}
	}

	assets := make([]string, len(config.Assets))
	copy(assets, config.Assets)

	viewer := &Viewer{
		name:   config.Name,
		assets: assets,
		zoom:   ZoomNeutral,
		scroll: scroll,
	}

	if config.Index != 0 {
		viewer.GoTo(config.Index)
	}

	if config.Zoom != 0 {
		viewer.zoom = clampZoom(config.Zoom)
	}

	if config.Fullscreen {
		viewer.OpenFullscreen()
	}

	return viewer, nil
}

func (v *Viewer) Name() string {
	return v.name
}

func (v *Viewer) Count() int {
	return len(v.assets)
}

func (v *Viewer) Index() int {
	return v.index
}

func (v *Viewer) Asset() string {
	return v.assets[v.index]
}

func (v *Viewer) Assets() []string {
	result := make([]string, len(v.assets))
	copy(result, v.assets)
	return result
}

func (v *Viewer) IsFullscreen() bool {
	return v.fullscreen
}

func (v *Viewer) Zoom() float64 {
	return v.zoom
}

/*
Next advances to the following asset, wrapping from the last asset back
to the first. Zoom resets to neutral.
*/
func (v *Viewer) Next() {
	v.index = (v.index + 1) % len(v.assets)
	v.zoom = ZoomNeutral
}

/*
Previous retreats to the prior asset, wrapping from the first asset to
the last. Zoom resets to neutral.
*/
func (v *Viewer) Previous() {
	v.index = (v.index - 1 + len(v.assets)) % len(v.assets)
	v.zoom = ZoomNeutral
}

/*
GoTo jumps directly to an index. Out of range targets are clamped to the
nearest end of the list. Zoom resets to neutral.
*/
func (v *Viewer) GoTo(index int) {
	if index < 0 {
		index = 0
	}

	if index > len(v.assets)-1 {
		index = len(v.assets) - 1
	}

	v.index = index
	v.zoom = ZoomNeutral
}

/*
OpenFullscreen enters fullscreen mode and suspends page scrolling for
the duration.
*/
func (v *Viewer) OpenFullscreen() {
	if v.fullscreen {
		return
	}

	v.fullscreen = true
	v.scroll.Lock()
}

/*
CloseFullscreen leaves fullscreen mode. Page scrolling is restored
unconditionally, even if the viewer was never in fullscreen, so an
abnormal dismissal can never leave the page stuck. Zoom resets to
neutral.
*/
func (v *Viewer) CloseFullscreen() {
	v.fullscreen = false
	v.zoom = ZoomNeutral
	v.scroll.Unlock()
}

/*
Dismiss routes any of the three dismissal affordances to the same close
transition.
*/
func (v *Viewer) Dismiss(trigger DismissTrigger) {
	switch trigger {
	case DismissEscape, DismissOverlayClick, DismissCloseControl:
		v.CloseFullscreen()
	}
}

func (v *Viewer) CanZoomIn() bool {
	return v.zoom < ZoomMax
}

func (v *Viewer) CanZoomOut() bool {
	return v.zoom > ZoomMin
}

func (v *Viewer) ZoomIn() {
	v.zoom = clampZoom(v.zoom + ZoomStep)
}

func (v *Viewer) ZoomOut() {
	v.zoom = clampZoom(v.zoom - ZoomStep)
}

func (v *Viewer) ResetZoom() {
	v.zoom = ZoomNeutral
}

func clampZoom(zoom float64) float64 {
	if zoom < ZoomMin {
		return ZoomMin
	}

	if zoom > ZoomMax {
		return ZoomMax
	}

	return zoom
}
