package services_test

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/domenikresidence/website/pkg/contact"
	"github.com/domenikresidence/website/pkg/services"
	"github.com/resend/resend-go/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSender struct {
	mu       sync.Mutex
	requests []*resend.SendEmailRequest
	failTo   string
}

func (f *fakeSender) SendWithContext(ctx context.Context, params *resend.SendEmailRequest) (*resend.SendEmailResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.requests = append(f.requests, params)

	if f.failTo != "" && len(params.To) > 0 && params.To[0] == f.failTo {
		return nil, fmt.Errorf("provider rejected recipient")
	}

	return &resend.SendEmailResponse{Id: fmt.Sprintf("email-%d", len(f.requests))}, nil
}

func (f *fakeSender) sent() []*resend.SendEmailRequest {
	f.mu.Lock()
	defer f.mu.Unlock()

	result := make([]*resend.SendEmailRequest, len(f.requests))
	copy(result, f.requests)
	return result
}

func (f *fakeSender) byRecipient(to string) *resend.SendEmailRequest {
	for _, request := range f.sent() {
		if len(request.To) > 0 && request.To[0] == to {
			return request
		}
	}

	return nil
}

func newTestMailService(sender *fakeSender) services.MailService {
	return services.NewMailService(services.MailServiceConfig{
		FromName:          "DomeNik Residence",
		FromEmail:         "no-reply@domenikresidence.com",
		NotificationEmail: "sales@domenikresidence.com",
		Sender:            sender,
	})
}

func testForm() contact.FormData {
	return contact.FormData{
		Name:        "Jane Doe",
		Email:       "jane@example.com",
		Phone:       "+357 99 123456",
		InquiryType: contact.InquiryViewing,
		Message:     "I would like to arrange a viewing.",
	}
}

func TestSendContactNotificationsDispatchesBothEmails(t *testing.T) {
	sender := &fakeSender{}
	service := newTestMailService(sender)

	id, err := service.SendContactNotifications(context.Background(), testForm())

	require.NoError(t, err)
	assert.NotEmpty(t, id)
	assert.Len(t, sender.sent(), 2, "one submission produces exactly two sends")

	admin := sender.byRecipient("sales@domenikresidence.com")
	require.NotNil(t, admin, "the sales inbox must receive a notification")
	assert.Equal(t, "DomeNik Residence <no-reply@domenikresidence.com>", admin.From)
	assert.Equal(t, "jane@example.com", admin.ReplyTo, "replying to the notification must reach the visitor")
	assert.Contains(t, admin.Subject, "Rooftop Suite")
	assert.Contains(t, admin.Html, "Jane Doe")
	assert.Contains(t, admin.Html, "+357 99 123456")

	acknowledgment := sender.byRecipient("jane@example.com")
	require.NotNil(t, acknowledgment, "the visitor must receive an acknowledgment")
	assert.Equal(t, "We received your inquiry – DomeNik Residence", acknowledgment.Subject)
	assert.Contains(t, acknowledgment.Html, "I would like to arrange a viewing.")
}

func TestSendContactNotificationsSubjectUsesInquiryLabel(t *testing.T) {
	tests := []struct {
		inquiryType contact.InquiryType
		label       string
	}{
		{contact.InquiryGeneral, "Penthouse Suite"},
		{contact.InquiryViewing, "Rooftop Suite"},
		{contact.InquiryInvestment, "Investment Opportunity"},
		{contact.InquirySales, "Sales Question"},
		{contact.InquiryRelocation, "Relocation to Cyprus"},
		{contact.InquiryOther, "Other"},
	}

	for _, test := range tests {
		t.Run(string(test.inquiryType), func(t *testing.T) {
			sender := &fakeSender{}
			service := newTestMailService(sender)

			form := testForm()
			form.InquiryType = test.inquiryType

			_, err := service.SendContactNotifications(context.Background(), form)

			require.NoError(t, err)

			admin := sender.byRecipient("sales@domenikresidence.com")
			require.NotNil(t, admin)
			assert.True(t, strings.Contains(admin.Subject, test.label), "subject %q should contain %q", admin.Subject, test.label)
		})
	}
}

func TestSendContactNotificationsFailsWhenAdminSendFails(t *testing.T) {
	sender := &fakeSender{failTo: "sales@domenikresidence.com"}
	service := newTestMailService(sender)

	id, err := service.SendContactNotifications(context.Background(), testForm())

	assert.Error(t, err)
	assert.Empty(t, id)
}

func TestSendContactNotificationsFailsWhenAcknowledgmentFails(t *testing.T) {
	sender := &fakeSender{failTo: "jane@example.com"}
	service := newTestMailService(sender)

	_, err := service.SendContactNotifications(context.Background(), testForm())

	assert.Error(t, err, "a failed acknowledgment fails the whole submission even if the admin send succeeded")
}
