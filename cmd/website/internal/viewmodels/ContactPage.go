package viewmodels

import (
	"github.com/domenikresidence/website/pkg/contact"
)

type ContactPage struct {
	BaseViewModel

	Form      contact.FormData
	Options   []contact.InquiryOption
	Submitted bool
}
