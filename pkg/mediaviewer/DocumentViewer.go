package mediaviewer

import (
	"context"
	"fmt"
)

type LoadPhase string

const (
	PhaseLoading LoadPhase = "loading"
	PhaseReady   LoadPhase = "ready"
	PhaseFailed  LoadPhase = "failed"
)

var (
	ErrNoLoader = fmt.Errorf("document viewer requires a loader")
)

/*
DocumentLoader resolves the page count of a multi-page document. It is
called once per load attempt.
*/
type DocumentLoader func(ctx context.Context) (int, error)

type DocumentViewerConfig struct {
	Name         string
	Loader       DocumentLoader
	ScrollLocker ScrollLocker

	/*
	 * Optional state to restore after a successful load, for callers
	 * that rebuild a viewer from a serialized prior state.
	 */
	Page       int
	Zoom       float64
	Fullscreen bool
}

/*
DocumentViewer applies the viewer interaction contract to the discrete,
numbered pages of a document that must load before it can be browsed.
Until the load phase is ready, navigation and zoom are inert; closing
fullscreen always works. Pages are numbered from 1 and navigation stops
at either end rather than wrapping, matching the paging controls it
drives.
*/
type DocumentViewer struct {
	name       string
	loader     DocumentLoader
	scroll     ScrollLocker
	phase      LoadPhase
	loadErr    string
	pageCount  int
	page       int
	fullscreen bool
	zoom       float64

	restorePage int
	restoreZoom float64
	restoreFs   bool
}

func NewDocumentViewer(config DocumentViewerConfig) (*DocumentViewer, error) {
	if config.Loader == nil {
		return nil, ErrNoLoader
	}

	scroll := config.ScrollLocker

	if scroll == nil {
		scroll = noopScrollLocker{}
	}

	return &DocumentViewer{
		name:        config.Name,
		loader:      config.Loader,
		scroll:      scroll,
		phase:       PhaseLoading,
		zoom:        ZoomNeutral,
		restorePage: config.Page,
		restoreZoom: config.Zoom,
		restoreFs:   config.Fullscreen,
	}, nil
}

/*
Load runs the document loader and settles the viewer into the ready or
failed phase. A failed load is terminal for that attempt; it is never
retried automatically. Call Load again for a manual retry.
*/
func (v *DocumentViewer) Load(ctx context.Context) error {
	v.phase = PhaseLoading
	v.loadErr = ""
	v.pageCount = 0
	v.page = 0

	pageCount, err := v.loader(ctx)

	if err != nil {
		v.phase = PhaseFailed
		v.loadErr = "Failed to load document. Please try again."
		return fmt.Errorf("error loading document '%s': %w", v.name, err)
	}

	if pageCount < 1 {
		v.phase = PhaseFailed
		v.loadErr = "Failed to load document. Please try again."
		return fmt.Errorf("document '%s' reported %d pages", v.name, pageCount)
	}

	v.phase = PhaseReady
	v.pageCount = pageCount
	v.page = 1
	v.zoom = ZoomNeutral

	if v.restorePage != 0 {
		v.GoToPage(v.restorePage)
	}

	if v.restoreZoom != 0 {
		v.zoom = clampZoom(v.restoreZoom)
	}

	if v.restoreFs && !v.fullscreen {
		v.OpenFullscreen()
	}

	return nil
}

func (v *DocumentViewer) Name() string {
	return v.name
}

func (v *DocumentViewer) Phase() LoadPhase {
	return v.phase
}

func (v *DocumentViewer) LoadError() string {
	return v.loadErr
}

func (v *DocumentViewer) PageCount() int {
	return v.pageCount
}

/*
Page is the current page number, starting at 1. It is 0 until a load
succeeds.
*/
func (v *DocumentViewer) Page() int {
	return v.page
}

func (v *DocumentViewer) IsFullscreen() bool {
	return v.fullscreen
}

func (v *DocumentViewer) Zoom() float64 {
	return v.zoom
}

func (v *DocumentViewer) CanPrevious() bool {
	return v.phase == PhaseReady && v.page > 1
}

func (v *DocumentViewer) CanNext() bool {
	return v.phase == PhaseReady && v.page < v.pageCount
}

func (v *DocumentViewer) Next() {
	if !v.CanNext() {
		return
	}

	v.page++
	v.zoom = ZoomNeutral
}

func (v *DocumentViewer) Previous() {
	if !v.CanPrevious() {
		return
	}

	v.page--
	v.zoom = ZoomNeutral
}

/*
GoToPage jumps to a page number, clamped to [1, PageCount]. Inert unless
the document is ready.
*/
func (v *DocumentViewer) GoToPage(page int) {
	if v.phase != PhaseReady {
		return
	}

	if page < 1 {
		page = 1
	}

	if page > v.pageCount {
		page = v.pageCount
	}

	v.page = page
	v.zoom = ZoomNeutral
}

func (v *DocumentViewer) OpenFullscreen() {
	if v.fullscreen {
		return
	}

	v.fullscreen = true
	v.scroll.Lock()
}

func (v *DocumentViewer) CloseFullscreen() {
	v.fullscreen = false
	v.zoom = ZoomNeutral
	v.scroll.Unlock()
}

func (v *DocumentViewer) Dismiss(trigger DismissTrigger) {
	switch trigger {
	case DismissEscape, DismissOverlayClick, DismissCloseControl:
		v.CloseFullscreen()
	}
}

func (v *DocumentViewer) CanZoomIn() bool {
	return v.phase == PhaseReady && v.zoom < ZoomMax
}

func (v *DocumentViewer) CanZoomOut() bool {
	return v.phase == PhaseReady && v.zoom > ZoomMin
}

func (v *DocumentViewer) ZoomIn() {
	if v.phase != PhaseReady {
		return
	}

	v.zoom = clampZoom(v.zoom + ZoomStep)
}

func (v *DocumentViewer) ZoomOut() {
	if v.phase != PhaseReady {
		return
	}

	v.zoom = clampZoom(v.zoom - ZoomStep)
}

func (v *DocumentViewer) ResetZoom() {
	if v.phase != PhaseReady {
		return
	}

	v.zoom = ZoomNeutral
}
