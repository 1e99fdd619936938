package models

import (
	"fmt"
)

var (
	ErrApartmentNotFound = fmt.Errorf("apartment not found")
)

type Apartment struct {
	BaseModel

	Slug           string
	Name           string
	Summary        string
	Bedrooms       int
	Bathrooms      int
	InteriorSqm    float64 `db:"interior_sqm"`
	VerandaSqm     float64 `db:"veranda_sqm"`
	Floor          string
	Price          string
	Available      bool
	MediaFolder    string `db:"media_folder"`
	FloorPlanKey   string `db:"floor_plan_key"`
	FloorPlanPages int    `db:"floor_plan_pages"`
}
