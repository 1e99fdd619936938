package models

type Apartment struct {
	ID             uint
	Slug           string
	Name           string
	Summary        string
	Bedrooms       int
	Bathrooms      int
	InteriorSqm    float64
	VerandaSqm     float64
	Floor          string
	Price          string
	Available      bool
	PosterImageURL string
	Images         []Image
	FloorPlanPages int
}

type Image struct {
	ThumbnailURL string
	OriginalURL  string
}
