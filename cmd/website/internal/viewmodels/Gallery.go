package viewmodels

import (
	"math"

	"github.com/domenikresidence/website/pkg/mediaviewer"
)

/*
Gallery is the render state for the image carousel widget, inline or
fullscreen. It is rebuilt from a mediaviewer.Viewer on every partial
request.
*/
type Gallery struct {
	BaseViewModel

	ApartmentSlug string
	Name          string
	Assets        []string
	Thumbnails    []string
	Asset         string
	Index         int
	DisplayIndex  int
	Count         int
	IsFullscreen  bool
	Zoom          float64
	ZoomPercent   int
	CanZoomIn     bool
	CanZoomOut    bool
}

func GalleryFromViewer(slug string, viewer *mediaviewer.Viewer) Gallery {
	return Gallery{
		ApartmentSlug: slug,
		Name:          viewer.Name(),
		Assets:        viewer.Assets(),
		Asset:         viewer.Asset(),
		Index:         viewer.Index(),
		DisplayIndex:  viewer.Index() + 1,
		Count:         viewer.Count(),
		IsFullscreen:  viewer.IsFullscreen(),
		Zoom:          viewer.Zoom(),
		ZoomPercent:   int(math.Round(viewer.Zoom() * 100)),
		CanZoomIn:     viewer.CanZoomIn(),
		CanZoomOut:    viewer.CanZoomOut(),
	}
}

/*
FloorPlan is the render state for the paged floor-plan widget.
*/
type FloorPlan struct {
	BaseViewModel

	ApartmentSlug string
	Name          string
	IsLoading     bool
	IsFailed      bool
	LoadError     string
	Page          int
	PageImageURL  string
	PageCount     int
	Pages         []int
	IsFullscreen  bool
	Zoom          float64
	ZoomPercent   int
	CanPrevious   bool
	CanNext       bool
	CanZoomIn     bool
	CanZoomOut    bool
	DownloadURL   string
}

func FloorPlanFromViewer(slug string, viewer *mediaviewer.DocumentViewer) FloorPlan {
	pages := make([]int, 0, viewer.PageCount())

	for page := 1; page <= viewer.PageCount(); page++ {
		pages = append(pages, page)
	}

	return FloorPlan{
		ApartmentSlug: slug,
		Name:          viewer.Name(),
		IsLoading:     viewer.Phase() == mediaviewer.PhaseLoading,
		IsFailed:      viewer.Phase() == mediaviewer.PhaseFailed,
		LoadError:     viewer.LoadError(),
		Page:          viewer.Page(),
		PageCount:     viewer.PageCount(),
		Pages:         pages,
		IsFullscreen:  viewer.IsFullscreen(),
		Zoom:          viewer.Zoom(),
		ZoomPercent:   int(math.Round(viewer.Zoom() * 100)),
		CanPrevious:   viewer.CanPrevious(),
		CanNext:       viewer.CanNext(),
		CanZoomIn:     viewer.CanZoomIn(),
		CanZoomOut:    viewer.CanZoomOut(),
		DownloadURL:   "/apartments/" + slug + "/floor-plan/download",
	}
}
