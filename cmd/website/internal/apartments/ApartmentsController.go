package apartments

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"path/filepath"

	"github.com/adampresley/adamgokit/httphelpers"
	"github.com/adampresley/adamgokit/rendering"
	"github.com/adampresley/adamgokit/s3"
	"github.com/adampresley/adamgokit/s3/getoptions"
	"github.com/adampresley/adamgokit/s3/listoptions"
	internalmodels "github.com/domenikresidence/website/cmd/website/internal/models"
	"github.com/domenikresidence/website/cmd/website/internal/viewmodels"
	"github.com/domenikresidence/website/pkg/mediaviewer"
	"github.com/domenikresidence/website/pkg/models"
	"github.com/domenikresidence/website/pkg/services"
)

type ApartmentHandlers interface {
	ListPage(w http.ResponseWriter, r *http.Request)
	DetailPage(w http.ResponseWriter, r *http.Request)
	GalleryPartial(w http.ResponseWriter, r *http.Request)
	FloorPlanPartial(w http.ResponseWriter, r *http.Request)
	DownloadFloorPlan(w http.ResponseWriter, r *http.Request)
}

type ApartmentsControllerConfig struct {
	ApartmentService services.ApartmentServicer
	Bucket           string
	MediaFolder      string
	Renderer         rendering.TemplateRenderer
	S3Client         s3.S3Client
}

type ApartmentsController struct {
	apartmentService services.ApartmentServicer
	bucket           string
	mediaFolder      string
	renderer         rendering.TemplateRenderer
	s3Client         s3.S3Client
}

func NewApartmentsController(config ApartmentsControllerConfig) ApartmentsController {
	return ApartmentsController{
		apartmentService: config.ApartmentService,
		bucket:           config.Bucket,
		mediaFolder:      config.MediaFolder,
		renderer:         config.Renderer,
		s3Client:         config.S3Client,
	}
}

/*
GET /apartments
*/
func (c ApartmentsController) ListPage(w http.ResponseWriter, r *http.Request) {
	var (
		err        error
		apartments []models.Apartment
	)

	viewData := viewmodels.ApartmentList{
		BaseViewModel: viewmodels.BaseViewModel{
			IsHtmx: httphelpers.IsHtmx(r),
		},
		Apartments: []internalmodels.Apartment{},
	}

	if apartments, err = c.apartmentService.GetAll(); err != nil {
		slog.Error("error getting apartment list", "error", err)
		viewData.IsError = true
		viewData.Message = "An unexpected error occurred. Please reach out for assistance."

		c.renderer.Render("pages/apartments/list", viewData, w)
		return
	}

	for _, apartment := range apartments {
		converted := c.convertApartmentToViewModel(&apartment, false)
		viewData.Apartments = append(viewData.Apartments, converted)
	}

	c.renderer.Render("pages/apartments/list", viewData, w)
}

/*
GET /apartments/{slug}
*/
func (c ApartmentsController) DetailPage(w http.ResponseWriter, r *http.Request) {
	var (
		err       error
		apartment *models.Apartment
	)

	slug := httphelpers.GetFromRequest[string](r, "slug")

	viewData := viewmodels.ApartmentDetail{
		BaseViewModel: viewmodels.BaseViewModel{
			IsHtmx: httphelpers.IsHtmx(r),
			JavascriptIncludes: []rendering.JavascriptInclude{
				{Type: "module", Src: "/static/js/pages/apartment-detail.js"},
			},
		},
	}

	if apartment, err = c.apartmentService.GetBySlug(slug); err != nil {
		slog.Error("error querying apartment in DetailPage", "error", err, "slug", slug)
		viewData.IsError = true
		viewData.Message = "An unexpected error occurred. Please reach out for assistance."

		c.renderer.Render("pages/apartments/detail", viewData, w)
		return
	}

	viewData.Apartment = c.convertApartmentToViewModel(apartment, true)
	viewData.Gallery = c.buildGallery(r, apartment)
	viewData.FloorPlan = c.buildFloorPlan(r, apartment)

	c.renderer.Render("pages/apartments/detail", viewData, w)
}

/*
GET /apartments/{slug}/gallery

Applies one viewer action to the carousel state carried in the query
string and renders the updated widget. The escape, overlay, and close
actions all converge on the same close transition.
*/
func (c ApartmentsController) GalleryPartial(w http.ResponseWriter, r *http.Request) {
	var (
		err       error
		apartment *models.Apartment
	)

	slug := httphelpers.GetFromRequest[string](r, "slug")

	if apartment, err = c.apartmentService.GetBySlug(slug); err != nil {
		slog.Error("error querying apartment in GalleryPartial", "error", err, "slug", slug)
		httphelpers.WriteText(w, http.StatusNotFound, "apartment not found")
		return
	}

	viewData := c.buildGallery(r, apartment)
	viewData.IsHtmx = httphelpers.IsHtmx(r)

	c.renderer.Render("pages/apartments/gallery", viewData, w)
}

/*
GET /apartments/{slug}/floor-plan
*/
func (c ApartmentsController) FloorPlanPartial(w http.ResponseWriter, r *http.Request) {
	var (
		err       error
		apartment *models.Apartment
	)

	slug := httphelpers.GetFromRequest[string](r, "slug")

	if apartment, err = c.apartmentService.GetBySlug(slug); err != nil {
		slog.Error("error querying apartment in FloorPlanPartial", "error", err, "slug", slug)
		httphelpers.WriteText(w, http.StatusNotFound, "apartment not found")
		return
	}

	viewData := c.buildFloorPlan(r, apartment)
	viewData.IsHtmx = httphelpers.IsHtmx(r)

	c.renderer.Render("pages/apartments/floor-plan", viewData, w)
}

/*
GET /apartments/{slug}/floor-plan/download
*/
func (c ApartmentsController) DownloadFloorPlan(w http.ResponseWriter, r *http.Request) {
	var (
		err       error
		apartment *models.Apartment
		object    s3.GetObjectResponse
	)

	slug := httphelpers.GetFromRequest[string](r, "slug")

	if apartment, err = c.apartmentService.GetBySlug(slug); err != nil {
		httphelpers.WriteText(w, http.StatusNotFound, "apartment not found")
		return
	}

	key := filepath.Join(c.mediaFolder, apartment.MediaFolder, apartment.FloorPlanKey)

	object, err = c.s3Client.Get(
		c.bucket,
		key,
		getoptions.WithContext(r.Context()),
	)

	if err != nil {
		slog.Error("error getting floor plan from S3", "error", err, "bucket", c.bucket, "key", key)
		httphelpers.WriteText(w, http.StatusNotFound, "Floor plan not found")
		return
	}

	defer object.Body.Close()
	fileName := fmt.Sprintf("%s-floor-plans.pdf", apartment.Slug)

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", fileName))
	w.Header().Set("Content-Length", fmt.Sprintf("%d", object.Size))

	_, _ = io.Copy(w, object.Body)
}

func (c ApartmentsController) buildGallery(r *http.Request, apartment *models.Apartment) viewmodels.Gallery {
	var (
		err    error
		viewer *mediaviewer.Viewer
	)

	originals, thumbnails := c.getGalleryImages(apartment)

	if len(originals) == 0 {
		return viewmodels.Gallery{
			BaseViewModel: viewmodels.BaseViewModel{
				IsError: true,
				Message: "There was a problem getting photos for this apartment.",
			},
			ApartmentSlug: apartment.Slug,
			Name:          apartment.Name,
		}
	}

	viewer, err = mediaviewer.NewViewer(mediaviewer.ViewerConfig{
		Name:       apartment.Name,
		Assets:     originals,
		Index:      httphelpers.GetFromRequest[int](r, "idx"),
		Zoom:       httphelpers.GetFromRequest[float64](r, "zoom"),
		Fullscreen: httphelpers.GetFromRequest[bool](r, "fs"),
	})

	if err != nil {
		slog.Error("error building gallery viewer", "error", err, "slug", apartment.Slug)
		return viewmodels.Gallery{
			BaseViewModel: viewmodels.BaseViewModel{
				IsError: true,
				Message: "There was a problem getting photos for this apartment.",
			},
			ApartmentSlug: apartment.Slug,
			Name:          apartment.Name,
		}
	}

	applyGalleryAction(viewer, r.URL.Query().Get("action"), httphelpers.GetFromRequest[int](r, "target"))

	viewData := viewmodels.GalleryFromViewer(apartment.Slug, viewer)
	viewData.Thumbnails = thumbnails
	return viewData
}

func applyGalleryAction(viewer *mediaviewer.Viewer, action string, target int) {
	switch action {
	case "next":
		viewer.Next()
	case "previous":
		viewer.Previous()
	case "goto":
		viewer.GoTo(target)
	case "zoom-in":
		viewer.ZoomIn()
	case "zoom-out":
		viewer.ZoomOut()
	case "zoom-reset":
		viewer.ResetZoom()
	case "open":
		viewer.OpenFullscreen()
	case "close":
		viewer.Dismiss(mediaviewer.DismissCloseControl)
	case "escape":
		viewer.Dismiss(mediaviewer.DismissEscape)
	case "overlay":
		viewer.Dismiss(mediaviewer.DismissOverlayClick)
	}
}

func (c ApartmentsController) buildFloorPlan(r *http.Request, apartment *models.Apartment) viewmodels.FloorPlan {
	var (
		err    error
		viewer *mediaviewer.DocumentViewer
	)

	viewer, err = mediaviewer.NewDocumentViewer(mediaviewer.DocumentViewerConfig{
		Name:       apartment.Name,
		Loader:     c.floorPlanLoader(apartment),
		Page:       httphelpers.GetFromRequest[int](r, "page"),
		Zoom:       httphelpers.GetFromRequest[float64](r, "zoom"),
		Fullscreen: httphelpers.GetFromRequest[bool](r, "fs"),
	})

	if err != nil {
		slog.Error("error building floor plan viewer", "error", err, "slug", apartment.Slug)
		return viewmodels.FloorPlan{
			BaseViewModel: viewmodels.BaseViewModel{
				IsError: true,
				Message: "There was a problem loading the floor plans.",
			},
			ApartmentSlug: apartment.Slug,
			Name:          apartment.Name,
		}
	}

	if err = viewer.Load(r.Context()); err != nil {
		slog.Error("error loading floor plan document", "error", err, "slug", apartment.Slug)
	}

	applyFloorPlanAction(viewer, r.URL.Query().Get("action"), httphelpers.GetFromRequest[int](r, "target"))

	viewData := viewmodels.FloorPlanFromViewer(apartment.Slug, viewer)

	if viewer.Phase() == mediaviewer.PhaseReady {
		pageKey := filepath.Join(c.mediaFolder, apartment.MediaFolder, "floor-plans", fmt.Sprintf("page-%d.jpg", viewer.Page()))

		if u, err := c.s3Client.GetUrl(c.bucket, pageKey); err == nil {
			viewData.PageImageURL = u
		} else {
			slog.Error("error getting floor plan page URL", "error", err, "key", pageKey)
		}
	}

	return viewData
}

func applyFloorPlanAction(viewer *mediaviewer.DocumentViewer, action string, target int) {
	switch action {
	case "next":
		viewer.Next()
	case "previous":
		viewer.Previous()
	case "goto":
		viewer.GoToPage(target)
	case "zoom-in":
		viewer.ZoomIn()
	case "zoom-out":
		viewer.ZoomOut()
	case "zoom-reset":
		viewer.ResetZoom()
	case "open":
		viewer.OpenFullscreen()
	case "close":
		viewer.Dismiss(mediaviewer.DismissCloseControl)
	case "escape":
		viewer.Dismiss(mediaviewer.DismissEscape)
	case "overlay":
		viewer.Dismiss(mediaviewer.DismissOverlayClick)
	}
}

/*
floorPlanLoader verifies the floor plan object exists before reporting
the page count recorded for the apartment.
*/
func (c ApartmentsController) floorPlanLoader(apartment *models.Apartment) mediaviewer.DocumentLoader {
	return func(ctx context.Context) (int, error) {
		key := filepath.Join(c.mediaFolder, apartment.MediaFolder, apartment.FloorPlanKey)

		stat, err := c.s3Client.StatObject(c.bucket, key)

		if err != nil {
			return 0, fmt.Errorf("error checking floor plan '%s': %w", key, err)
		}

		if stat == nil {
			return 0, fmt.Errorf("floor plan '%s' does not exist", key)
		}

		return apartment.FloorPlanPages, nil
	}
}

func (c ApartmentsController) convertApartmentToViewModel(apartment *models.Apartment, getImages bool) internalmodels.Apartment {
	result := internalmodels.Apartment{
		ID:             apartment.ID,
		Slug:           apartment.Slug,
		Name:           apartment.Name,
		Summary:        apartment.Summary,
		Bedrooms:       apartment.Bedrooms,
		Bathrooms:      apartment.Bathrooms,
		InteriorSqm:    apartment.InteriorSqm,
		VerandaSqm:     apartment.VerandaSqm,
		Floor:          apartment.Floor,
		Price:          apartment.Price,
		Available:      apartment.Available,
		Images:         []internalmodels.Image{},
		FloorPlanPages: apartment.FloorPlanPages,
	}

	posterKey := filepath.Join(c.mediaFolder, apartment.MediaFolder, "thumbnails", "poster.jpg")

	if u, err := c.s3Client.GetUrl(c.bucket, posterKey); err == nil {
		result.PosterImageURL = u
	} else {
		slog.Error("error getting poster image URL", "error", err, "slug", apartment.Slug)
	}

	if getImages {
		originals, thumbnails := c.getGalleryImages(apartment)

		for index, original := range originals {
			newImage := internalmodels.Image{
				OriginalURL: original,
			}

			if index < len(thumbnails) {
				newImage.ThumbnailURL = thumbnails[index]
			}

			result.Images = append(result.Images, newImage)
		}
	}

	return result
}

func (c ApartmentsController) getGalleryImages(apartment *models.Apartment) ([]string, []string) {
	var (
		originals  []string
		thumbnails []string
	)

	originalsResponse, err := c.s3Client.List(
		c.bucket,
		fmt.Sprintf("%s/%s/originals/", c.mediaFolder, apartment.MediaFolder),
		listoptions.WithGetUrls(),
	)

	if err != nil {
		slog.Error("error getting gallery image URLs", "error", err, "slug", apartment.Slug)
		return nil, nil
	}

	thumbnailsResponse, err := c.s3Client.List(
		c.bucket,
		fmt.Sprintf("%s/%s/thumbnails/", c.mediaFolder, apartment.MediaFolder),
		listoptions.WithGetUrls(),
	)

	if err != nil {
		slog.Error("error getting thumbnail image URLs", "error", err, "slug", apartment.Slug)
	}

	for _, obj := range originalsResponse.Objects {
		originals = append(originals, obj.Url)
	}

	for _, obj := range thumbnailsResponse.Objects {
		thumbnails = append(thumbnails, obj.Url)
	}

	return originals, thumbnails
}
