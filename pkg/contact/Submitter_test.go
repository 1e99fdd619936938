package contact_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/domenikresidence/website/pkg/contact"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubmitSuccessClearsFormAndCapturesID(t *testing.T) {
	var received contact.FormData

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{"success": true, "id": "email-abc123"})
	}))

	defer server.Close()

	submitter := contact.NewSubmitter(contact.SubmitterConfig{
		Endpoint: contact.RelayEndpoint(server.URL),
	})

	*submitter.Form() = validForm()

	outcome := submitter.Submit(context.Background())

	assert.Equal(t, contact.OutcomeSucceeded, outcome)
	assert.Equal(t, "email-abc123", submitter.SubmissionID())
	assert.True(t, submitter.Form().IsEmpty(), "a successful submission clears the form")
	assert.Empty(t, submitter.FailureReason())

	assert.Equal(t, "Jane Doe", received.Name)
	assert.Equal(t, contact.InquiryViewing, received.InquiryType)
}

func TestSubmitSurfacesRelayErrorMessage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "Failed to send email"})
	}))

	defer server.Close()

	submitter := contact.NewSubmitter(contact.SubmitterConfig{
		Endpoint: contact.RelayEndpoint(server.URL),
	})

	*submitter.Form() = validForm()

	outcome := submitter.Submit(context.Background())

	assert.Equal(t, contact.OutcomeFailed, outcome)
	assert.Equal(t, "Failed to send email", submitter.FailureReason())
	assert.False(t, submitter.Form().IsEmpty(), "a failed submission keeps the form for retry")
}

func TestSubmitUsesGenericMessageForUnparseableError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("<html>upstream exploded</html>"))
	}))

	defer server.Close()

	submitter := contact.NewSubmitter(contact.SubmitterConfig{
		Endpoint: contact.RelayEndpoint(server.URL),
	})

	*submitter.Form() = validForm()

	outcome := submitter.Submit(context.Background())

	assert.Equal(t, contact.OutcomeFailed, outcome)
	assert.Equal(t, contact.GenericErrorMessage, submitter.FailureReason())
}

func TestSubmitFailsClosedWhenRelayUnreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	endpoint := contact.RelayEndpoint(server.URL)
	server.Close()

	submitter := contact.NewSubmitter(contact.SubmitterConfig{Endpoint: endpoint})
	*submitter.Form() = validForm()

	outcome := submitter.Submit(context.Background())

	assert.Equal(t, contact.OutcomeFailed, outcome)
	assert.Equal(t, contact.GenericErrorMessage, submitter.FailureReason())
}

func TestSubmitValidatesBeforeSending(t *testing.T) {
	requests := 0

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
	}))

	defer server.Close()

	submitter := contact.NewSubmitter(contact.SubmitterConfig{
		Endpoint: contact.RelayEndpoint(server.URL),
	})

	submitter.Form().Name = "Jane Doe"

	outcome := submitter.Submit(context.Background())

	assert.Equal(t, contact.OutcomeFailed, outcome)
	assert.Equal(t, "missing required field: email", submitter.FailureReason())
	assert.Equal(t, 0, requests, "an invalid form never reaches the relay")
}

func TestResubmissionAfterFailureCanSucceed(t *testing.T) {
	attempts := 0

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++

		w.Header().Set("Content-Type", "application/json")

		if attempts == 1 {
			w.WriteHeader(http.StatusInternalServerError)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": "Failed to send email"})
			return
		}

		_ = json.NewEncoder(w).Encode(map[string]any{"success": true, "id": "email-retry"})
	}))

	defer server.Close()

	submitter := contact.NewSubmitter(contact.SubmitterConfig{
		Endpoint: contact.RelayEndpoint(server.URL),
	})

	*submitter.Form() = validForm()

	require.Equal(t, contact.OutcomeFailed, submitter.Submit(context.Background()))
	require.Equal(t, contact.OutcomeSucceeded, submitter.Submit(context.Background()))

	assert.Equal(t, 2, attempts)
	assert.Equal(t, "email-retry", submitter.SubmissionID())
	assert.Empty(t, submitter.FailureReason())
}

func TestRelayEndpoint(t *testing.T) {
	assert.Equal(t, "https://domenikresidence.com/api/contact", contact.RelayEndpoint("https://domenikresidence.com"))
}
