package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/getmentor/feedback-form/internal/models"
	"github.com/getmentor/feedback-form/pkg/logger"
	"github.com/getmentor/feedback-form/pkg/metrics"
	"github.com/getmentor/feedback-form/pkg/zendesk"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// TicketCreator creates helpdesk tickets
type TicketCreator interface {
	CreateRequest(ctx context.Context, req *zendesk.TicketRequest) (int64, error)
}

// FeedbackService validates feedback submissions and forwards them to Zendesk
type FeedbackService struct {
	tickets  TicketCreator
	validate *validator.Validate
}

// NewFeedbackService creates a new feedback service instance
func NewFeedbackService(tickets TicketCreator) *FeedbackService {
	return &FeedbackService{
		tickets:  tickets,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Validate reports every invalid field of the submission, in form order
func (s *FeedbackService) Validate(sub models.Submission) models.ValidationResult {
	sub = sub.Normalized()

	result := models.ValidationResult{}
	if err := s.validate.Struct(sub); err != nil {
		result.Errors = validationMessages(err)
	}

	if !result.Valid() {
		metrics.FeedbackSubmissions.WithLabelValues("invalid").Inc()
	}
	return result
}

// Submit forwards a validated submission as a Zendesk request. Failures are
// reported in the response and never retried.
func (s *FeedbackService) Submit(ctx context.Context, sub models.Submission) *models.TicketResponse {
	sub = sub.Normalized()

	ticket := zendesk.NewTicketRequest(sub.Email, sub.Subject, sub.Body)
	id, err := s.tickets.CreateRequest(ctx, ticket)
	if err == nil {
		metrics.FeedbackSubmissions.WithLabelValues("success").Inc()
		logger.Info("Feedback ticket created", zap.Int64("ticket_id", id))
		return &models.TicketResponse{Success: true, TicketID: id}
	}

	var apiErr *zendesk.APIError
	if errors.As(err, &apiErr) {
		metrics.FeedbackSubmissions.WithLabelValues("api_error").Inc()
		logger.Warn("Zendesk rejected feedback ticket",
			zap.Int("status_code", apiErr.StatusCode),
			zap.Error(err))
		return &models.TicketResponse{
			Success: false,
			Error:   fmt.Sprintf("Error submitting feedback: %s", apiErr.Message),
		}
	}

	metrics.FeedbackSubmissions.WithLabelValues("transport_error").Inc()
	logger.Error("Failed to reach Zendesk", zap.Error(err))
	return &models.TicketResponse{
		Success: false,
		Error:   fmt.Sprintf("Error: %s", err.Error()),
	}
}
