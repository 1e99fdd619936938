package services

import (
	"context"
	"fmt"
	"time"

	"github.com/domenikresidence/website/pkg/models"
	"github.com/rfberaldo/sqlz"
)

type ApartmentServicer interface {
	GetAll() ([]models.Apartment, error)
	GetBySlug(slug string) (*models.Apartment, error)
}

type ApartmentServiceConfig struct {
	DB *sqlz.DB
}

type ApartmentService struct {
	db *sqlz.DB
}

func NewApartmentService(config ApartmentServiceConfig) ApartmentService {
	return ApartmentService{
		db: config.DB,
	}
}

func (s ApartmentService) GetAll() ([]models.Apartment, error) {
	var (
		err        error
		apartments []models.Apartment
	)

	sql := `
SELECT
   a.id
   , a.created_at
   , a.updated_at
   , a.deleted_at
   , a.slug
   , a.name
   , a.summary
   , a.bedrooms
   , a.bathrooms
   , a.interior_sqm
   , a.veranda_sqm
   , a.floor
   , a.price
   , a.available
   , a.media_folder
   , a.floor_plan_key
   , a.floor_plan_pages
FROM apartments AS a
WHERE 1=1
   AND a.deleted_at IS NULL
ORDER BY a.floor, a.name
`

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	if err = s.db.Query(ctx, &apartments, sql); err != nil {
		return nil, fmt.Errorf("error querying for all apartments: %w", err)
	}

	return apartments, nil
}

func (s ApartmentService) GetBySlug(slug string) (*models.Apartment, error) {
	var (
		err error
	)

	result := &models.Apartment{}

	sql := `
SELECT
   a.id
   , a.created_at
   , a.updated_at
   , a.deleted_at
   , a.slug
   , a.name
   , a.summary
   , a.bedrooms
   , a.bathrooms
   , a.interior_sqm
   , a.veranda_sqm
   , a.floor
   , a.price
   , a.available
   , a.media_folder
   , a.floor_plan_key
   , a.floor_plan_pages
FROM apartments AS a
WHERE 1=1
   AND a.deleted_at IS NULL
   AND a.slug=?
   `

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	if err = s.db.QueryRow(ctx, result, sql, slug); err != nil {
		return result, fmt.Errorf("error querying for apartment '%s': %w", slug, err)
	}

	return result, nil
}
