package services

import (
	"context"
	"fmt"
	"time"

	"github.com/domenikresidence/website/pkg/models"
	"github.com/rfberaldo/sqlz"
)

type EnquiryServicer interface {
	Save(enquiry *models.Enquiry) error
	GetRecent(limit int) ([]models.Enquiry, error)
}

type EnquiryServiceConfig struct {
	DB *sqlz.DB
}

/*
EnquiryService records received contact submissions so an operator can
review them later. Failures here never reach the visitor.
*/
type EnquiryService struct {
	db *sqlz.DB
}

func NewEnquiryService(config EnquiryServiceConfig) EnquiryService {
	return EnquiryService{
		db: config.DB,
	}
}

func (s EnquiryService) Save(enquiry *models.Enquiry) error {
	var (
		err error
	)

	sql := `
INSERT INTO enquiries (
   name,
   email,
   phone,
   inquiry_type,
   message,
   created_at
) VALUES (?, ?, ?, ?, ?, ?)
`

	params := []any{
		enquiry.Name,
		enquiry.Email,
		enquiry.Phone,
		enquiry.InquiryType,
		enquiry.Message,
		time.Now().UTC(),
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	if _, err = s.db.Exec(ctx, sql, params...); err != nil {
		return fmt.Errorf("error saving enquiry from '%s': %w", enquiry.Email, err)
	}

	return nil
}

func (s EnquiryService) GetRecent(limit int) ([]models.Enquiry, error) {
	var (
		err       error
		enquiries []models.Enquiry
	)

	sql := `
SELECT
   e.id
   , e.created_at
   , e.name
   , e.email
   , e.phone
   , e.inquiry_type
   , e.message
FROM enquiries AS e
WHERE 1=1
   AND e.deleted_at IS NULL
ORDER BY e.created_at DESC
LIMIT ?
`

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	if err = s.db.Query(ctx, &enquiries, sql, limit); err != nil {
		return nil, fmt.Errorf("error querying for recent enquiries: %w", err)
	}

	return enquiries, nil
}
