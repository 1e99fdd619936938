package cache

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/jpeg"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/adampresley/adamgokit/s3"
	"github.com/adampresley/adamgokit/s3/createbucketoptions"
	"github.com/adampresley/adamgokit/s3/geturloptions"
	"github.com/adampresley/adamgokit/s3/listoptions"
	"github.com/adampresley/adamgokit/slices"
	"github.com/alitto/pond/v2"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/domenikresidence/website/pkg/models"
	"github.com/domenikresidence/website/pkg/services"
	"github.com/nfnt/resize"
)

type CacheCreator interface {
	CreateCache()
}

type CacheCreatorConfig struct {
	ApartmentService services.ApartmentServicer
	AwsBucket        string
	AwsRegion        string
	MaxCacheWorkers  int
	MediaFolder      string
	S3Client         s3.S3Client
	ShutdownCtx      context.Context
}

/*
CacheCreatorService resizes apartment gallery originals into the
thumbnails the carousel strip serves. Thumbnails are refreshed only
when the original is newer.
*/
type CacheCreatorService struct {
	apartmentService services.ApartmentServicer
	awsBucket        string
	awsRegion        string
	maxCacheWorkers  int
	mediaFolder      string
	s3Client         s3.S3Client
	shutdownCtx      context.Context
}

func NewCacheCreatorService(config CacheCreatorConfig) CacheCreatorService {
	return CacheCreatorService{
		apartmentService: config.ApartmentService,
		awsBucket:        config.AwsBucket,
		awsRegion:        config.AwsRegion,
		maxCacheWorkers:  config.MaxCacheWorkers,
		mediaFolder:      config.MediaFolder,
		s3Client:         config.S3Client,
		shutdownCtx:      config.ShutdownCtx,
	}
}

func (c CacheCreatorService) CreateCache() {
	var (
		err        error
		apartments []models.Apartment
		images     []s3.Object
	)

	slog.Info("starting media cache creation...")

	if err = c.ensureBucketExists(c.awsBucket); err != nil {
		slog.Error("error ensuring bucket exists. aborting", "bucket", c.awsBucket, "error", err)
		os.Exit(1)
	}

	if apartments, err = c.apartmentService.GetAll(); err != nil {
		slog.Error("error retrieving apartments from database", "error", err)
		return
	}

	slog.Info("creating media cache for apartments...", "numApartments", len(apartments))

	pool := pond.NewPool(c.maxCacheWorkers, pond.WithContext(c.shutdownCtx))

	if err = c.updateHomePageCache(pool); err != nil {
		slog.Error("error updating home page cache", "error", err)
	}

	for _, apartment := range apartments {
		if images, err = c.getGalleryImageListing(&apartment); err != nil {
			slog.Error("error retrieving image listing for apartment", "slug", apartment.Slug, "error", err)
			return
		}

		for _, imageObj := range images {
			pool.Submit(func() {
				if !c.doesThumbnailExist(&apartment, imageObj) {
					slog.Info("creating cache item for apartment...", "key", imageObj.Key)

					if err = c.createThumbnail(&apartment, imageObj.Key); err != nil {
						slog.Error("error creating cache item for apartment", "slug", apartment.Slug, "imageName", imageObj, "error", err)
					}
				}
			})
		}
	}

	_ = pool.Stop().Wait()
}

func (c CacheCreatorService) ensureBucketExists(bucketName string) error {
	var (
		err    error
		exists bool
	)

	exists, err = c.s3Client.BucketExists(bucketName)

	if err != nil {
		return fmt.Errorf("error ensuring bucket '%s' exists: %w", bucketName, err)
	}

	if exists {
		return nil
	}

	slog.Info("creating bucket", "bucketName", bucketName)

	err = c.s3Client.CreateBucket(
		bucketName,
		createbucketoptions.WithRegion(c.awsRegion),
	)

	if err != nil {
		return fmt.Errorf("error creating bucket '%s': %w", bucketName, err)
	}

	return nil
}

func (c CacheCreatorService) updateHomePageCache(pool pond.Pool) error {
	var (
		err           error
		originals     s3.ListResponse
		thumbnailStat *s3.ObjectMetadata
	)

	resizeWork := func(original s3.Object, thumbnailKey string) {
		var (
			err error
			img image.Image
			buf bytes.Buffer
		)

		img, err = c.resizeUrl(original.Url, 300)
		if err != nil {
			slog.Error("error resizing image", "image", original.Key, "error", err)
			return
		}

		if err = jpeg.Encode(&buf, img, &jpeg.Options{Quality: 85}); err != nil {
			slog.Error("error encoding image for thumbnail", "key", thumbnailKey, "error", err)
			return
		}

		if _, err = c.s3Client.Put(c.awsBucket, thumbnailKey, bytes.NewReader(buf.Bytes())); err != nil {
			slog.Error("error uploading resized image", "thumbnailKey", thumbnailKey, "error", err)
		}

		slog.Info("updated home page thumbnail", "thumbnailKey", thumbnailKey)
	}

	originalsKey := filepath.Join(c.mediaFolder, "home", "original")
	originals, err = c.s3Client.List(
		c.awsBucket,
		originalsKey,
		listoptions.WithGetUrls(),
	)

	if err != nil {
		return fmt.Errorf("error listing home page images: %w", err)
	}

	slog.Info("checking for updated home page images...", "numImages", len(originals.Objects), "bucket", c.awsBucket, "path", originalsKey)

	for _, original := range originals.Objects {
		thumbnailKey := filepath.Join(c.mediaFolder, "home", "thumbnail", filepath.Base(original.Key))

		if thumbnailStat, err = c.s3Client.StatObject(c.awsBucket, thumbnailKey); err != nil {
			slog.Error("error retrieving metadata for thumbnail", "thumbnailKey", thumbnailKey, "error", err)
			continue
		}

		if thumbnailStat == nil || thumbnailStat.LastModified.Before(original.LastModified) {
			pool.Submit(func() {
				resizeWork(original, thumbnailKey)
			})
		}
	}

	return nil
}

func (c CacheCreatorService) getGalleryImageListing(apartment *models.Apartment) ([]s3.Object, error) {
	var (
		err      error
		response s3.ListResponse
		validExt = []string{".jpg", ".jpeg"}
	)

	key := filepath.Join(c.mediaFolder, apartment.MediaFolder, "originals")

	response, err = c.s3Client.List(
		c.awsBucket,
		key,
		listoptions.WithGetUrls(),
		listoptions.WithGetAll(),
		listoptions.WithFilter(func(obj types.Object) bool {
			ext := strings.ToLower(filepath.Ext(aws.ToString(obj.Key)))
			result := slices.IsInSlice(ext, validExt)
			return result
		}),
		listoptions.WithGetUrlOptions(
			geturloptions.WithExpiration(time.Minute*30),
		),
	)

	if err != nil {
		return nil, fmt.Errorf("error listing gallery images: %w", err)
	}

	return response.Objects, nil
}

func (c CacheCreatorService) doesThumbnailExist(apartment *models.Apartment, original s3.Object) bool {
	var (
		err  error
		stat *s3.ObjectMetadata
	)

	imageName := filepath.Base(original.Key)
	key := filepath.Join(c.mediaFolder, apartment.MediaFolder, "thumbnails", imageName)

	if stat, err = c.s3Client.StatObject(c.awsBucket, key); err != nil {
		slog.Error("error retrieving metadata for thumbnail", "key", key, "error", err)
		return false
	}

	if stat == nil {
		return false
	}

	if stat.LastModified.Before(original.LastModified) {
		return false
	}

	return true
}

func (c CacheCreatorService) createThumbnail(apartment *models.Apartment, originalKey string) error {
	var (
		err      error
		img      image.Image
		maxSize  uint = 400
		original s3.GetObjectResponse
		buf      bytes.Buffer
	)

	original, err = c.s3Client.Get(
		c.awsBucket,
		originalKey,
	)

	if err != nil {
		return fmt.Errorf("error retrieving original image %s: %w", originalKey, err)
	}

	if img, err = c.resizeReader(original.Body, maxSize); err != nil {
		return fmt.Errorf("error resizing image: %w", err)
	}

	if err = jpeg.Encode(&buf, img, &jpeg.Options{Quality: 85}); err != nil {
		return fmt.Errorf("error encoding image for thumbnail: %w", err)
	}

	putKey := filepath.Join(c.mediaFolder, apartment.MediaFolder, "thumbnails", filepath.Base(originalKey))

	_, err = c.s3Client.Put(
		c.awsBucket,
		putKey,
		&buf,
	)

	if err != nil {
		return fmt.Errorf("error uploading thumbnail to S3: %w", err)
	}

	return nil
}

func (c CacheCreatorService) resizeUrl(url string, maxSize uint) (image.Image, error) {
	var (
		err      error
		response *http.Response
	)

	if response, err = http.Get(url); err != nil {
		return nil, fmt.Errorf("error downloading image from '%s': %w", url, err)
	}

	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("error downloading image from '%s', status: %s", url, response.Status)
	}

	return c.resizeReader(response.Body, maxSize)
}

func (c CacheCreatorService) resizeReader(r io.Reader, maxSize uint) (image.Image, error) {
	var (
		err error
		img image.Image
	)

	if img, _, err = image.Decode(r); err != nil {
		return nil, fmt.Errorf("error decoding image: %w", err)
	}

	resizedImage := c.resize(img, maxSize)
	return resizedImage, nil
}

func (c CacheCreatorService) resize(img image.Image, maxSize uint) image.Image {
	var (
		resizedImage image.Image
	)

	/*
	 * Determine which dimension to resize based on the longest edge
	 */
	bounds := img.Bounds()
	width := uint(bounds.Dx())
	height := uint(bounds.Dy())

	var newWidth, newHeight uint
	if width > height {
		// Landscape orientation
		newWidth = maxSize
		newHeight = uint(float64(height) * (float64(maxSize) / float64(width)))
	} else {
		// Portrait orientation or square
		newHeight = maxSize
		newWidth = uint(float64(width) * (float64(maxSize) / float64(height)))
	}

	resizedImage = resize.Resize(newWidth, newHeight, img, resize.Lanczos3)
	return resizedImage
}
