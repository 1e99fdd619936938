package home

import (
	"fmt"
	"log/slog"
	"net/http"
	"path/filepath"

	"github.com/adampresley/adamgokit/httphelpers"
	"github.com/adampresley/adamgokit/rendering"
	"github.com/adampresley/adamgokit/s3"
	"github.com/adampresley/adamgokit/s3/listoptions"
	"github.com/domenikresidence/website/cmd/website/internal/configuration"
	"github.com/domenikresidence/website/cmd/website/internal/viewmodels"
)

type HomeHandlers interface {
	HomePage(w http.ResponseWriter, r *http.Request)
	ProjectPage(w http.ResponseWriter, r *http.Request)
	LocationPage(w http.ResponseWriter, r *http.Request)
}

type HomeControllerConfig struct {
	AwsBucket   string
	MediaFolder string
	Config      *configuration.Config
	Renderer    rendering.TemplateRenderer
	S3Client    s3.S3Client
}

type HomeController struct {
	awsBucket   string
	mediaFolder string
	config      *configuration.Config
	renderer    rendering.TemplateRenderer
	s3Client    s3.S3Client
}

func NewHomeController(config HomeControllerConfig) HomeController {
	return HomeController{
		awsBucket:   config.AwsBucket,
		mediaFolder: config.MediaFolder,
		config:      config.Config,
		renderer:    config.Renderer,
		s3Client:    config.S3Client,
	}
}

/*
GET /
*/
func (c HomeController) HomePage(w http.ResponseWriter, r *http.Request) {
	pageName := "pages/home"

	viewData := viewmodels.HomePage{
		BaseViewModel: viewmodels.BaseViewModel{
			Message:            "",
			IsHtmx:             httphelpers.IsHtmx(r),
			JavascriptIncludes: []rendering.JavascriptInclude{},
		},
		HeroImages: []viewmodels.HeroImage{},
	}

	thumbnails, err := c.s3Client.List(
		c.awsBucket,
		fmt.Sprintf("%s/home/thumbnail", c.mediaFolder),
		listoptions.WithGetUrls(),
	)

	if err != nil {
		slog.Error("error listing objects in S3 bucket", "error", err, "bucket", c.awsBucket, "prefix", c.mediaFolder)
		viewData.IsError = true
		viewData.Message = "There was a problem getting photos for this page."

		c.renderer.Render(pageName, viewData, w)
		return
	}

	originals, err := c.s3Client.List(
		c.awsBucket,
		fmt.Sprintf("%s/home/original", c.mediaFolder),
		listoptions.WithGetUrls(),
	)

	if err != nil {
		slog.Error("error listing objects in S3 bucket", "error", err, "bucket", c.awsBucket, "prefix", c.mediaFolder)
		viewData.IsError = true
		viewData.Message = "There was a problem getting photos for this page."

		c.renderer.Render(pageName, viewData, w)
		return
	}

	for index, obj := range thumbnails.Objects {
		fileName := filepath.Base(obj.Url)

		viewData.HeroImages = append(viewData.HeroImages, viewmodels.HeroImage{
			ThumbnailURL: obj.Url,
			FileName:     fileName,
			FullSizeURL:  originals.Objects[index].Url,
		})
	}

	c.renderer.Render(pageName, viewData, w)
}

/*
GET /project
*/
func (c HomeController) ProjectPage(w http.ResponseWriter, r *http.Request) {
	viewData := viewmodels.ProjectPage{
		BaseViewModel: viewmodels.BaseViewModel{
			IsHtmx: httphelpers.IsHtmx(r),
		},
	}

	c.renderer.Render("pages/project", viewData, w)
}

/*
GET /location
*/
func (c HomeController) LocationPage(w http.ResponseWriter, r *http.Request) {
	viewData := viewmodels.LocationPage{
		BaseViewModel: viewmodels.BaseViewModel{
			IsHtmx: httphelpers.IsHtmx(r),
		},
	}

	c.renderer.Render("pages/location", viewData, w)
}
