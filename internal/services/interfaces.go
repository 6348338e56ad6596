package services

import (
	"context"

	"github.com/getmentor/feedback-form/internal/models"
	"github.com/getmentor/feedback-form/pkg/zendesk"
)

// FeedbackServiceInterface defines the interface for feedback service operations
type FeedbackServiceInterface interface {
	Validate(sub models.Submission) models.ValidationResult
	Submit(ctx context.Context, sub models.Submission) *models.TicketResponse
}

// Ensure services implement their interfaces
var _ FeedbackServiceInterface = (*FeedbackService)(nil)
var _ TicketCreator = (*zendesk.Client)(nil)
