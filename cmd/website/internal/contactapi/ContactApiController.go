package contactapi

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/domenikresidence/website/pkg/contact"
	"github.com/domenikresidence/website/pkg/models"
	"github.com/domenikresidence/website/pkg/services"
)

type ContactApiHandlers interface {
	Submit(w http.ResponseWriter, r *http.Request)
}

type ContactApiControllerConfig struct {
	EnquiryService services.EnquiryServicer
	MailService    services.MailServicer
}

/*
ContactApiController is the relay behind the contact form: it accepts
the serialized form as JSON, validates it, and dispatches the admin and
acknowledgment notifications. Provider failures are logged but never
returned to the caller in detail.
*/
type ContactApiController struct {
	enquiryService services.EnquiryServicer
	mailService    services.MailServicer
}

func NewContactApiController(config ContactApiControllerConfig) ContactApiController {
	return ContactApiController{
		enquiryService: config.EnquiryService,
		mailService:    config.MailService,
	}
}

type submitResponse struct {
	Success bool   `json:"success"`
	ID      string `json:"id,omitempty"`
}

type errorResponse struct {
	Error string `json:"error"`
}

/*
POST /api/contact
*/
func (c ContactApiController) Submit(w http.ResponseWriter, r *http.Request) {
	var (
		err  error
		form contact.FormData
		id   string
	)

	if r.Method != http.MethodPost {
		writeJson(w, http.StatusMethodNotAllowed, errorResponse{Error: "Method Not Allowed"})
		return
	}

	if err = json.NewDecoder(r.Body).Decode(&form); err != nil {
		writeJson(w, http.StatusBadRequest, errorResponse{Error: "Invalid request body"})
		return
	}

	if err = form.Validate(); err != nil {
		writeJson(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	if id, err = c.mailService.SendContactNotifications(r.Context(), form); err != nil {
		slog.Error("error dispatching contact notifications", "error", err, "email", form.Email)
		writeJson(w, http.StatusInternalServerError, errorResponse{Error: "Failed to send email"})
		return
	}

	/*
	 * The enquiry log is operator-side bookkeeping. A storage failure
	 * does not fail a submission whose notifications already went out.
	 */
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

	writeJson(w, http.StatusOK, submitResponse{Success: true, ID: id})
}

func writeJson(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
