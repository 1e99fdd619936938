package services

import (
	"context"
	"fmt"
	"html/template"
	"log/slog"
	"strings"
	"time"

	"github.com/alitto/pond/v2"
	"github.com/domenikresidence/website/pkg/contact"
	"github.com/resend/resend-go/v2"
)

const (
	defaultSendTimeout = time.Second * 10
	mailWorkers        = 4
)

/*
EmailSender is the slice of the Resend client the mail service uses.
resend.Client.Emails satisfies it.
*/
type EmailSender interface {
	SendWithContext(ctx context.Context, params *resend.SendEmailRequest) (*resend.SendEmailResponse, error)
}

type MailServicer interface {
	SendContactNotifications(ctx context.Context, form contact.FormData) (string, error)
}

type MailServiceConfig struct {
	ApiKey            string
	FromName          string
	FromEmail         string
	NotificationEmail string
	SendTimeout       time.Duration

	/* Overrides the Resend-backed sender. Used by tests. */
	Sender EmailSender
}

/*
MailService dispatches the two notifications produced by one contact
submission: the full details to the sales inbox, reply-addressed to the
visitor, and an acknowledgment back to the visitor echoing their
message. Both sends run concurrently and the service reports failure if
either one fails.
*/
type MailService struct {
	fromName          string
	fromEmail         string
	notificationEmail string
	sendTimeout       time.Duration
	sender            EmailSender
	pool              pond.Pool
}

func NewMailService(config MailServiceConfig) MailService {
	sender := config.Sender

	if sender == nil {
		sender = resend.NewClient(config.ApiKey).Emails
	}

	sendTimeout := config.SendTimeout

	if sendTimeout <= 0 {
		sendTimeout = defaultSendTimeout
	}

	return MailService{
		fromName:          config.FromName,
		fromEmail:         config.FromEmail,
		notificationEmail: config.NotificationEmail,
		sendTimeout:       sendTimeout,
		sender:            sender,
		pool:              pond.NewPool(mailWorkers),
	}
}

var adminTemplate = template.Must(template.New("admin").Parse(`
<h2>New Contact Form Submission</h2>
<p>DomeNik Residence &ndash; Zakaki, Limassol</p>
<table>
	<tr><td><strong>Name</strong></td><td>{{.Name}}</td></tr>
	<tr><td><strong>Email</strong></td><td>{{.Email}}</td></tr>
	<tr><td><strong>Phone</strong></td><td>{{.Phone}}</td></tr>
	<tr><td><strong>Inquiry Type</strong></td><td>{{.InquiryLabel}}</td></tr>
</table>
<p><strong>Message</strong></p>
<p>{{.Message}}</p>
<p><small>This email was sent from the contact form on domenikresidence.com.</small></p>
`))

var acknowledgmentTemplate = template.Must(template.New("acknowledgment").Parse(`
<h2>Thank you for reaching out, {{.Name}}!</h2>
<p>We received your inquiry about <strong>{{.InquiryLabel}}</strong> and
our sales team will get back to you shortly.</p>
<p>Your message:</p>
<blockquote>{{.Message}}</blockquote>
<p>DomeNik Residence &ndash; Zakaki, Limassol</p>
`))

type mailData struct {
	Name         string
	Email        string
	Phone        string
	InquiryLabel string
	Message      string
}

/*
SendContactNotifications fires both sends through the worker pool and
waits for both to finish. The first send error, if any, is returned; on
success the provider id of the admin notification is returned.
*/
func (s MailService) SendContactNotifications(ctx context.Context, form contact.FormData) (string, error) {
	var (
		err     error
		adminID string
	)

	data := mailData{
		Name:         form.Name,
		Email:        form.Email,
		Phone:        form.Phone,
		InquiryLabel: form.InquiryType.Label(),
		Message:      form.Message,
	}

	group := s.pool.NewGroupContext(ctx)

	group.SubmitErr(func() error {
		id, sendErr := s.sendAdminNotification(ctx, data)

		if sendErr != nil {
			return sendErr
		}

		adminID = id
		return nil
	})

	group.SubmitErr(func() error {
		return s.sendAcknowledgment(ctx, data)
	})

	if err = group.Wait(); err != nil {
		return "", err
	}

	return adminID, nil
}

func (s MailService) sendAdminNotification(ctx context.Context, data mailData) (string, error) {
	var (
		err  error
		body string
		sent *resend.SendEmailResponse
	)

	if body, err = renderMailTemplate(adminTemplate, data); err != nil {
		return "", err
	}

	subject := fmt.Sprintf("New Contact Form Submission – %s – DomeNik Residence", data.InquiryLabel)

	sendCtx, cancel := context.WithTimeout(ctx, s.sendTimeout)
	defer cancel()

	sent, err = s.sender.SendWithContext(sendCtx, &resend.SendEmailRequest{
		From:    s.fromAddress(),
		To:      []string{s.notificationEmail},
		Subject: subject,
		Html:    body,
		ReplyTo: data.Email,
	})

	if err != nil {
		return "", fmt.Errorf("error sending admin notification: %w", err)
	}

	return sent.Id, nil
}

func (s MailService) sendAcknowledgment(ctx context.Context, data mailData) error {
	var (
		err  error
		body string
	)

	if body, err = renderMailTemplate(acknowledgmentTemplate, data); err != nil {
		return err
	}

	sendCtx, cancel := context.WithTimeout(ctx, s.sendTimeout)
	defer cancel()

	_, err = s.sender.SendWithContext(sendCtx, &resend.SendEmailRequest{
		From:    s.fromAddress(),
		To:      []string{data.Email},
		Subject: "We received your inquiry – DomeNik Residence",
		Html:    body,
	})

	if err != nil {
		return fmt.Errorf("error sending acknowledgment: %w", err)
	}

	return nil
}

func (s MailService) fromAddress() string {
	return fmt.Sprintf("%s <%s>", s.fromName, s.fromEmail)
}

func renderMailTemplate(tmpl *template.Template, data mailData) (string, error) {
	parsed := strings.Builder{}

	if err := tmpl.Execute(&parsed, data); err != nil {
		slog.Error("error rendering mail template", "template", tmpl.Name(), "error", err)
		return "", fmt.Errorf("error rendering mail template '%s': %w", tmpl.Name(), err)
	}

	return parsed.String(), nil
}
