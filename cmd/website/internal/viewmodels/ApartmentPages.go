package viewmodels

import (
	internalmodels "github.com/domenikresidence/website/cmd/website/internal/models"
)

type ApartmentList struct {
	BaseViewModel

	Apartments []internalmodels.Apartment
}

type ApartmentDetail struct {
	BaseViewModel

	Apartment internalmodels.Apartment
	Gallery   Gallery
	FloorPlan FloorPlan
}

type ProjectPage struct {
	BaseViewModel
}

type LocationPage struct {
	BaseViewModel
}
