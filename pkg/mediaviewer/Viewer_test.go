package mediaviewer_test

import (
	"testing"

	"github.com/domenikresidence/website/pkg/mediaviewer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeScrollLocker struct {
	locked      bool
	lockCount   int
	unlockCount int
}

func (f *fakeScrollLocker) Lock() {
	f.locked = true
	f.lockCount++
}

func (f *fakeScrollLocker) Unlock() {
	f.locked = false
	f.unlockCount++
}

func newTestViewer(t *testing.T, assets []string) *mediaviewer.Viewer {
	t.Helper()

	viewer, err := mediaviewer.NewViewer(mediaviewer.ViewerConfig{
		Name:   "Penthouse Suite",
		Assets: assets,
	})

	require.NoError(t, err)
	return viewer
}

func TestNewViewerRequiresAssets(t *testing.T) {
	_, err := mediaviewer.NewViewer(mediaviewer.ViewerConfig{Name: "Empty"})
	assert.ErrorIs(t, err, mediaviewer.ErrNoAssets)
}

func TestNewViewerInitialState(t *testing.T) {
	viewer := newTestViewer(t, []string{"a.jpg", "b.jpg"})

	assert.Equal(t, 0, viewer.Index())
	assert.False(t, viewer.IsFullscreen())
	assert.Equal(t, mediaviewer.ZoomNeutral, viewer.Zoom())
	assert.Equal(t, "a.jpg", viewer.Asset())
}

func TestNextWrapsAroundFullCycle(t *testing.T) {
	assets := []string{"a.jpg", "b.jpg", "c.jpg", "d.jpg", "e.jpg"}
	viewer := newTestViewer(t, assets)

	for range assets {
		viewer.Next()
	}

	assert.Equal(t, 0, viewer.Index(), "N calls to Next from index 0 should land back on index 0")
}

func TestPreviousFromZeroWrapsToLast(t *testing.T) {
	viewer := newTestViewer(t, []string{"a.jpg", "b.jpg", "c.jpg"})

	viewer.Previous()

	assert.Equal(t, 2, viewer.Index())
	assert.Equal(t, "c.jpg", viewer.Asset())
}

func TestGoToClampsOutOfRange(t *testing.T) {
	viewer := newTestViewer(t, []string{"a.jpg", "b.jpg", "c.jpg"})

	viewer.GoTo(10)
	assert.Equal(t, 2, viewer.Index())

	viewer.GoTo(-4)
	assert.Equal(t, 0, viewer.Index())

	viewer.GoTo(1)
	assert.Equal(t, 1, viewer.Index())
}

func TestNavigationResetsZoom(t *testing.T) {
	viewer := newTestViewer(t, []string{"a.jpg", "b.jpg", "c.jpg"})

	navigations := []func(){
		viewer.Next,
		viewer.Previous,
		func() { viewer.GoTo(2) },
	}

	for _, navigate := range navigations {
		viewer.ZoomIn()
		viewer.ZoomIn()
		require.NotEqual(t, mediaviewer.ZoomNeutral, viewer.Zoom())

		navigate()
		assert.Equal(t, mediaviewer.ZoomNeutral, viewer.Zoom())
	}
}

func TestZoomInClampsAtMax(t *testing.T) {
	viewer := newTestViewer(t, []string{"a.jpg"})

	for i := 0; i < 20; i++ {
		viewer.ZoomIn()
	}

	assert.Equal(t, mediaviewer.ZoomMax, viewer.Zoom())
	assert.False(t, viewer.CanZoomIn())
	assert.True(t, viewer.CanZoomOut())
}

func TestZoomOutClampsAtMin(t *testing.T) {
	viewer := newTestViewer(t, []string{"a.jpg"})

	for i := 0; i < 20; i++ {
		viewer.ZoomOut()
	}

	assert.Equal(t, mediaviewer.ZoomMin, viewer.Zoom())
	assert.False(t, viewer.CanZoomOut())
	assert.True(t, viewer.CanZoomIn())
}

func TestResetZoom(t *testing.T) {
	viewer := newTestViewer(t, []string{"a.jpg"})

	viewer.ZoomIn()
	viewer.ZoomIn()
	viewer.ResetZoom()

	assert.Equal(t, mediaviewer.ZoomNeutral, viewer.Zoom())
}

func TestFullscreenSuspendsAndRestoresScroll(t *testing.T) {
	triggers := []mediaviewer.DismissTrigger{
		mediaviewer.DismissEscape,
		mediaviewer.DismissOverlayClick,
		mediaviewer.DismissCloseControl,
	}

	for _, trigger := range triggers {
		t.Run(string(trigger), func(t *testing.T) {
			locker := &fakeScrollLocker{}

			viewer, err := mediaviewer.NewViewer(mediaviewer.ViewerConfig{
				Name:         "Penthouse Suite",
				Assets:       []string{"a.jpg"},
				ScrollLocker: locker,
			})

			require.NoError(t, err)

			viewer.OpenFullscreen()
			require.True(t, viewer.IsFullscreen())
			require.True(t, locker.locked)

			viewer.Dismiss(trigger)

			assert.False(t, viewer.IsFullscreen())
			assert.False(t, locker.locked, "scroll must be restored no matter how fullscreen was dismissed")
			assert.Equal(t, 1, locker.unlockCount)
		})
	}
}

func TestCloseFullscreenResetsZoom(t *testing.T) {
	viewer := newTestViewer(t, []string{"a.jpg"})

	viewer.OpenFullscreen()
	viewer.ZoomIn()
	viewer.ZoomIn()
	viewer.CloseFullscreen()

	assert.Equal(t, mediaviewer.ZoomNeutral, viewer.Zoom())
}

func TestOpenFullscreenTwiceLocksOnce(t *testing.T) {
	locker := &fakeScrollLocker{}

	viewer, err := mediaviewer.NewViewer(mediaviewer.ViewerConfig{
		Name:         "Penthouse Suite",
		Assets:       []string{"a.jpg"},
		ScrollLocker: locker,
	})

	require.NoError(t, err)

	viewer.OpenFullscreen()
	viewer.OpenFullscreen()

	assert.Equal(t, 1, locker.lockCount)
}

func TestRestoredStateIsClamped(t *testing.T) {
	viewer, err := mediaviewer.NewViewer(mediaviewer.ViewerConfig{
		Name:   "Penthouse Suite",
		Assets: []string{"a.jpg", "b.jpg"},
		Index:  9,
		Zoom:   12.0,
	})

	require.NoError(t, err)

	assert.Equal(t, 1, viewer.Index())
	assert.Equal(t, mediaviewer.ZoomMax, viewer.Zoom())
}

func TestAssetListIsImmutable(t *testing.T) {
	assets := []string{"a.jpg", "b.jpg"}
	viewer := newTestViewer(t, assets)

	assets[0] = "mutated.jpg"
	assert.Equal(t, "a.jpg", viewer.Asset())

	copied := viewer.Assets()
	copied[1] = "mutated.jpg"
	viewer.GoTo(1)
	assert.Equal(t, "b.jpg", viewer.Asset())
}
