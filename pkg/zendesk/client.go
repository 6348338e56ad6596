package zendesk

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/getmentor/feedback-form/pkg/httpclient"
	"github.com/getmentor/feedback-form/pkg/logger"
	"github.com/getmentor/feedback-form/pkg/metrics"
	"github.com/getmentor/feedback-form/pkg/tracing"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.uber.org/zap"
)

// RequesterName is the display name attached to every ticket created by the form
const RequesterName = "Customer"

// maxResponseBytes caps how much of a response body is read
const maxResponseBytes = 1 << 20

// EndpointForSubdomain returns the Requests API URL of a Zendesk account
func EndpointForSubdomain(subdomain string) string {
	return fmt.Sprintf("https://%s.zendesk.com/api/v2/requests.json", subdomain)
}

// TicketRequest is the body of POST /api/v2/requests.json
type TicketRequest struct {
	Request RequestBody `json:"request"`
}

type RequestBody struct {
	Requester Requester `json:"requester"`
	Subject   string    `json:"subject"`
	Comment   Comment   `json:"comment"`
}

type Requester struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type Comment struct {
	Body string `json:"body"`
}

// NewTicketRequest builds the payload for an anonymous request
func NewTicketRequest(email, subject, body string) *TicketRequest {
	return &TicketRequest{
		Request: RequestBody{
			Requester: Requester{Name: RequesterName, Email: email},
			Subject:   subject,
			Comment:   Comment{Body: body},
		},
	}
}

// ticketResponse is the subset of the API response the client reads.
// Error is raw because Zendesk returns either a string or an object there.
type ticketResponse struct {
	Request *struct {
		ID int64 `json:"id"`
	} `json:"request"`
	Error       json.RawMessage `json:"error"`
	Description string          `json:"description"`
}

type objectError struct {
	Title   string `json:"title"`
	Message string `json:"message"`
}

// TransportError means no HTTP response was received
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return e.Err.Error()
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// APIError means Zendesk answered but did not create a ticket
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return e.Message
}

// Client creates Zendesk requests
type Client struct {
	endpoint   string
	httpClient httpclient.Client
}

// NewClient creates a client posting to endpoint
func NewClient(endpoint string, httpClient httpclient.Client) *Client {
	return &Client{
		endpoint:   endpoint,
		httpClient: httpClient,
	}
}

// Endpoint returns the URL tickets are posted to
func (c *Client) Endpoint() string {
	return c.endpoint
}

// CreateRequest posts req and returns the id of the created ticket.
// Failures are *TransportError or *APIError.
func (c *Client) CreateRequest(ctx context.Context, req *TicketRequest) (int64, error) {
	ctx, span := tracing.StartSpan(ctx, "zendesk.CreateRequest")
	defer span.End()

	start := time.Now()
	id, statusCode, err := c.createRequest(ctx, req)
	duration := metrics.MeasureDuration(start)

	status := "success"
	var transportErr *TransportError
	switch {
	case errors.As(err, &transportErr):
		status = "transport_error"
	case err != nil:
		status = "api_error"
	}

	metrics.ZendeskRequestDuration.WithLabelValues(status).Observe(duration)
	metrics.ZendeskRequestTotal.WithLabelValues(status).Inc()

	if statusCode != 0 {
		span.SetAttributes(attribute.Int("http.response.status_code", statusCode))
	}

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, status)
		logger.LogAPICall("zendesk", "create_request", "error", duration,
			zap.String("reason", status),
			zap.Int("status_code", statusCode),
			zap.Error(err))
		return 0, err
	}

	span.SetAttributes(attribute.Int64("zendesk.request.id", id))
	logger.LogAPICall("zendesk", "create_request", status, duration,
		zap.Int("status_code", statusCode),
		zap.Int64("ticket_id", id))
	return id, nil
}

func (c *Client) createRequest(ctx context.Context, req *TicketRequest) (int64, int, error) {
	payload, err := json.Marshal(req)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to encode ticket request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return 0, 0, &TransportError{Err: err}
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return 0, 0, &TransportError{Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return 0, resp.StatusCode, &TransportError{Err: fmt.Errorf("failed to read response: %w", err)}
	}

	var parsed ticketResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return 0, resp.StatusCode, &APIError{StatusCode: resp.StatusCode, Message: fallbackMessage(resp.StatusCode, raw)}
	}

	// A ticket id is success whatever the status code says
	if parsed.Request != nil && parsed.Request.ID != 0 {
		return parsed.Request.ID, resp.StatusCode, nil
	}

	message := parsed.errorMessage()
	if message == "" {
		message = fallbackMessage(resp.StatusCode, raw)
	}
	return 0, resp.StatusCode, &APIError{StatusCode: resp.StatusCode, Message: message}
}

func (r *ticketResponse) errorMessage() string {
	var message string

	if len(r.Error) > 0 {
		var s string
		if err := json.Unmarshal(r.Error, &s); err == nil {
			message = s
		} else {
			var obj objectError
			if err := json.Unmarshal(r.Error, &obj); err == nil {
				message = obj.Message
				if message == "" {
					message = obj.Title
				}
			}
		}
	}

	if message != "" && r.Description != "" {
		message = message + ": " + r.Description
	}
	return message
}

func fallbackMessage(statusCode int, raw []byte) string {
	body := strings.TrimSpace(string(raw))
	if body != "" {
		return body
	}
	return fmt.Sprintf("HTTP %d", statusCode)
}
