package bookings

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"medprep/internal/domain"
)

// envelope is the {success, data, error/message} wrapper every bookings
// service endpoint returns. A success:false body is a failure even on a 2xx
// status.
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
	Message string          `json:"message"`
}

func (e *envelope) failureMessage() string {
	if e.Error != "" {
		return e.Error
	}
	if e.Message != "" {
		return e.Message
	}
	return "unknown error"
}

type httpClient struct {
	client  *http.Client
	baseURL string
	apiKey  string
}

// NewHTTPClient returns a BookingsClient that calls the bookings/scheduling
// service at baseURL, authenticating with the given API key.
func NewHTTPClient(client *http.Client, baseURL, apiKey string) domain.BookingsClient {
	if client == nil {
		client = http.DefaultClient
	}
	return &httpClient{client: client, baseURL: baseURL, apiKey: apiKey}
}

// do performs one request and decodes the envelope's data field into out
// (when out is non-nil). Both a non-2xx status and success:false are errors.
func (c *httpClient) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("bookings service request failed: %w", err)
	}
	defer resp.Body.Close()

	var env envelope
	decodeErr := json.NewDecoder(resp.Body).Decode(&env)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		if decodeErr == nil {
			return fmt.Errorf("bookings service returned status %d: %s", resp.StatusCode, env.failureMessage())
		}
		return fmt.Errorf("bookings service returned status %d", resp.StatusCode)
	}
	if decodeErr != nil {
		return fmt.Errorf("failed to decode bookings response: %w", decodeErr)
	}
	if !env.Success {
		return fmt.Errorf("bookings service error: %s", env.failureMessage())
	}
	if out != nil {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("failed to decode bookings response data: %w", err)
		}
	}
	return nil
}

func (c *httpClient) ListTutorAvailability(ctx context.Context, from, to string) ([]domain.TutorAvailabilityRecord, error) {
	q := url.Values{}
	q.Set("from", from)
	q.Set("to", to)
	var records []domain.TutorAvailabilityRecord
	if err := c.do(ctx, http.MethodGet, "/tutors/availability", q, nil, &records); err != nil {
		return nil, err
	}
	return records, nil
}

func (c *httpClient) CreateAvailability(ctx context.Context, tutorID string, slots []domain.AvailabilityInput) error {
	body := struct {
		Slots []domain.AvailabilityInput `json:"slots"`
	}{Slots: slots}
	return c.do(ctx, http.MethodPost, "/tutors/"+url.PathEscape(tutorID)+"/availability", nil, body, nil)
}

func (c *httpClient) DeleteAvailability(ctx context.Context, slotID string) error {
	return c.do(ctx, http.MethodDelete, "/availability/"+url.PathEscape(slotID), nil, nil, nil)
}

func (c *httpClient) ListUnassignedInterviews(ctx context.Context) ([]*domain.UnassignedInterview, error) {
	var interviews []*domain.UnassignedInterview
	if err := c.do(ctx, http.MethodGet, "/interviews/unassigned", nil, nil, &interviews); err != nil {
		return nil, err
	}
	return interviews, nil
}

func (c *httpClient) GetInterview(ctx context.Context, interviewID string) (*domain.InterviewRecord, error) {
	var rec domain.InterviewRecord
	if err := c.do(ctx, http.MethodGet, "/interviews/"+url.PathEscape(interviewID), nil, nil, &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

func (c *httpClient) GetBooking(ctx context.Context, bookingID string) (*domain.BookingRecord, error) {
	var rec domain.BookingRecord
	if err := c.do(ctx, http.MethodGet, "/bookings/"+url.PathEscape(bookingID), nil, nil, &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

func (c *httpClient) GetStudentAvailability(ctx context.Context, studentID string) ([]domain.StudentAvailabilitySlot, error) {
	var windows []domain.StudentAvailabilitySlot
	if err := c.do(ctx, http.MethodGet, "/students/"+url.PathEscape(studentID)+"/availability", nil, nil, &windows); err != nil {
		return nil, err
	}
	return windows, nil
}

func (c *httpClient) AssignInterview(ctx context.Context, interviewID string, in domain.AssignInterviewInput) error {
	return c.do(ctx, http.MethodPost, "/interviews/"+url.PathEscape(interviewID)+"/assign", nil, in, nil)
}

func (c *httpClient) ConfirmInterview(ctx context.Context, interviewID string, in domain.ConfirmInterviewInput) error {
	return c.do(ctx, http.MethodPost, "/interviews/"+url.PathEscape(interviewID)+"/confirm", nil, in, nil)
}

func (c *httpClient) CancelInterview(ctx context.Context, interviewID, notes string) error {
	body := struct {
		Notes string `json:"notes"`
	}{Notes: notes}
	return c.do(ctx, http.MethodPost, "/interviews/"+url.PathEscape(interviewID)+"/cancel", nil, body, nil)
}

func (c *httpClient) DeleteInterview(ctx context.Context, interviewID string) error {
	return c.do(ctx, http.MethodDelete, "/interviews/"+url.PathEscape(interviewID), nil, nil, nil)
}

func (c *httpClient) CreateInterview(ctx context.Context, in domain.CreateInterviewInput) (*domain.UnassignedInterview, error) {
	var iv domain.UnassignedInterview
	if err := c.do(ctx, http.MethodPost, "/interviews", nil, in, &iv); err != nil {
		return nil, err
	}
	return &iv, nil
}
