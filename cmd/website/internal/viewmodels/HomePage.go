package viewmodels

type HomePage struct {
	BaseViewModel
	HeroImages []HeroImage
}

/*
HeroImage is one image in the home page's showcase of the residence
exterior and common areas.
*/
type HeroImage struct {
	FullSizeURL  string
	ThumbnailURL string
	FileName     string
}
