package contactpage

import (
	"log/slog"
	"net/http"

	"github.com/adampresley/adamgokit/httphelpers"
	"github.com/adampresley/adamgokit/rendering"
	"github.com/domenikresidence/website/cmd/website/internal/viewmodels"
	"github.com/domenikresidence/website/pkg/contact"
	"github.com/domenikresidence/website/pkg/models"
	"github.com/domenikresidence/website/pkg/services"
)

type ContactPageHandlers interface {
	ContactPage(w http.ResponseWriter, r *http.Request)
	SubmitAction(w http.ResponseWriter, r *http.Request)
}

type ContactPageControllerConfig struct {
	EnquiryService services.EnquiryServicer
	MailService    services.MailServicer
	Renderer       rendering.TemplateRenderer
}

/*
ContactPageController renders the contact form and handles the htmx
form post. It runs the same pipeline as the JSON relay: validate, fan
out both notifications, record the enquiry, and surface a coarse
outcome to the visitor.
*/
type ContactPageController struct {
	enquiryService services.EnquiryServicer
	mailService    services.MailServicer
	renderer       rendering.TemplateRenderer
}

func NewContactPageController(config ContactPageControllerConfig) ContactPageController {
	return ContactPageController{
		enquiryService: config.EnquiryService,
		mailService:    config.MailService,
		renderer:       config.Renderer,
	}
}

/*
GET /contact
*/
func (c ContactPageController) ContactPage(w http.ResponseWriter, r *http.Request) {
	viewData := viewmodels.ContactPage{
		BaseViewModel: viewmodels.BaseViewModel{
			IsHtmx: httphelpers.IsHtmx(r),
		},
		Options: contact.InquiryOptions(),
	}

	c.renderer.Render("pages/contact", viewData, w)
}

/*
POST /contact
*/
func (c ContactPageController) SubmitAction(w http.ResponseWriter, r *http.Request) {
	var (
		err error
		id  string
	)

	pageName := "pages/contact"

	form := contact.FormData{
		Name:        httphelpers.GetFromRequest[string](r, "name"),
		Email:       httphelpers.GetFromRequest[string](r, "email"),
		Phone:       httphelpers.GetFromRequest[string](r, "phone"),
		InquiryType: contact.InquiryType(httphelpers.GetFromRequest[string](r, "inquiryType")),
		Message:     httphelpers.GetFromRequest[string](r, "message"),
	}

	viewData := viewmodels.ContactPage{
		BaseViewModel: viewmodels.BaseViewModel{
			IsHtmx: httphelpers.IsHtmx(r),
		},
		Form:    form,
		Options: contact.InquiryOptions(),
	}

	if err = form.Validate(); err != nil {
		viewData.IsWarning = true
		viewData.Message = err.Error()

		c.renderer.Render(pageName, viewData, w)
		return
	}

	if id, err = c.mailService.SendContactNotifications(r.Context(), form); err != nil {
		slog.Error("error dispatching contact notifications", "error", err, "email", form.Email)
		viewData.IsError = true
		viewData.Message = contact.GenericErrorMessage

		c.renderer.Render(pageName, viewData, w)
		return
	}

	enquiry := &models.Enquiry{
		Name:        form.Name,
		Email:       form.Email,
		Phone:       form.Phone,
		InquiryType: string(form.InquiryType),
		Message:     form.Message,
	}

	if err = c.enquiryService.Save(enquiry); err != nil {
		slog.Error("error saving enquiry", "error", err, "email", form.Email)
	}

	slog.Info("contact form submitted", "inquiryType", form.InquiryType, "providerID", id)

	/*
	 * The form clears after a successful submission and the page shows
	 * a persistent confirmation instead of the form.
	 */
	viewData.Form.Clear()
	viewData.Submitted = true
	viewData.Message = "Thank you! Your message has been sent."

	c.renderer.Render(pageName, viewData, w)
}
