package contact

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const (
	/* Shown whenever the real failure must not leak to the visitor. */
	GenericErrorMessage = "Something went wrong. Please try again."

	defaultSubmitTimeout = time.Second * 15
)

type Outcome string

const (
	OutcomeIdle      Outcome = ""
	OutcomePending   Outcome = "pending"
	OutcomeSucceeded Outcome = "succeeded"
	OutcomeFailed    Outcome = "failed"
)

type SubmitterConfig struct {
	Endpoint   string
	HttpClient *http.Client
	Timeout    time.Duration
}

/*
Submitter holds one contact form's state and performs the single-shot
POST to the relay endpoint. A submission attempt enters the pending
outcome, then settles as succeeded (form cleared) or failed (reason
kept for display). Nothing is retried automatically; calling Submit
again re-enters pending and repeats the attempt.
*/
type Submitter struct {
	endpoint   string
	httpClient *http.Client

	form    FormData
	outcome Outcome
	reason  string
	id      string
}

func NewSubmitter(config SubmitterConfig) *Submitter {
	httpClient := config.HttpClient

	if httpClient == nil {
		timeout := config.Timeout

		if timeout <= 0 {
			timeout = defaultSubmitTimeout
		}

		httpClient = &http.Client{Timeout: timeout}
	}

	return &Submitter{
		endpoint:   config.Endpoint,
		httpClient: httpClient,
	}
}

/*
Form exposes the mutable form state so callers can update it field by
field as the visitor types.
*/
func (s *Submitter) Form() *FormData {
	return &s.form
}

func (s *Submitter) Outcome() Outcome {
	return s.outcome
}

/*
FailureReason is the human-readable reason for the last failed attempt.
Empty unless the outcome is failed.
*/
func (s *Submitter) FailureReason() string {
	return s.reason
}

/*
SubmissionID is the provider-assigned identifier returned on success,
when the relay includes one.
*/
func (s *Submitter) SubmissionID() string {
	return s.id
}

type relaySuccessResponse struct {
	Success bool   `json:"success"`
	ID      string `json:"id"`
}

type relayErrorResponse struct {
	Error string `json:"error"`
}

/*
Submit performs one POST of the serialized form to the relay. A non-2xx
response surfaces the relay's error message when the body carries one,
and the generic message otherwise. A request that never completes is
treated the same as a failed response.
*/
func (s *Submitter) Submit(ctx context.Context) Outcome {
	var (
		err      error
		body     []byte
		request  *http.Request
		response *http.Response
	)

	s.outcome = OutcomePending
	s.reason = ""

	if err = s.form.Validate(); err != nil {
		return s.fail(err.Error())
	}

	if body, err = json.Marshal(s.form); err != nil {
		return s.fail(GenericErrorMessage)
	}

	request, err = http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(body))

	if err != nil {
		return s.fail(GenericErrorMessage)
	}

	request.Header.Set("Content-Type", "application/json")

	if response, err = s.httpClient.Do(request); err != nil {
		return s.fail(GenericErrorMessage)
	}

	defer response.Body.Close()

	if response.StatusCode < 200 || response.StatusCode > 299 {
		return s.fail(errorMessageFromBody(response.Body))
	}

	success := relaySuccessResponse{}

	if err = json.NewDecoder(response.Body).Decode(&success); err == nil {
		s.id = success.ID
	}

	s.outcome = OutcomeSucceeded
	s.form.Clear()
	return s.outcome
}

func (s *Submitter) fail(reason string) Outcome {
	s.outcome = OutcomeFailed
	s.reason = reason
	return s.outcome
}

func errorMessageFromBody(body io.Reader) string {
	relayError := relayErrorResponse{}

	if err := json.NewDecoder(body).Decode(&relayError); err != nil {
		return GenericErrorMessage
	}

	if relayError.Error == "" {
		return GenericErrorMessage
	}

	return relayError.Error
}

/*
RelayPath is the fixed path the website mounts the relay on.
*/
const RelayPath = "/api/contact"

func RelayEndpoint(baseURL string) string {
	return fmt.Sprintf("%s%s", baseURL, RelayPath)
}
