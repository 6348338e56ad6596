package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/getmentor/feedback-form/internal/models"
	"github.com/getmentor/feedback-form/internal/services"
	"github.com/getmentor/feedback-form/internal/views"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/gin-gonic/gin/render"
)

// FeedbackHandler serves the feedback page
type FeedbackHandler struct {
	service services.FeedbackServiceInterface
}

// NewFeedbackHandler creates a new feedback handler
func NewFeedbackHandler(service services.FeedbackServiceInterface) *FeedbackHandler {
	return &FeedbackHandler{service: service}
}

// ShowForm handles GET / with an empty form
func (h *FeedbackHandler) ShowForm(c *gin.Context) {
	h.render(c, http.StatusOK, models.FormState{Action: c.Request.URL.Path})
}

// SubmitForm handles POST /: validate, forward to Zendesk, render the outcome.
// Invalid input never reaches Zendesk.
func (h *FeedbackHandler) SubmitForm(c *gin.Context) {
	var sub models.Submission
	if err := c.ShouldBindWith(&sub, binding.Form); err != nil {
		attachError(c, err)
		h.render(c, http.StatusBadRequest, models.FormState{
			Action:       c.Request.URL.Path,
			Message:      "Invalid form submission.",
			MessageClass: models.MessageClassError,
		})
		return
	}
	sub = sub.Normalized()

	state := models.FormState{
		Action:  c.Request.URL.Path,
		Email:   sub.Email,
		Subject: sub.Subject,
		Body:    sub.Body,
	}

	result := h.service.Validate(sub)
	if !result.Valid() {
		state.Errors = result.Errors
		state.MessageClass = models.MessageClassError
		h.render(c, http.StatusUnprocessableEntity, state)
		return
	}

	resp := h.service.Submit(c.Request.Context(), sub)
	if !resp.Success {
		attachError(c, errors.New(resp.Error))
		state.Message = resp.Error
		state.MessageClass = models.MessageClassError
		h.render(c, http.StatusBadGateway, state)
		return
	}

	// Fields are cleared once the ticket exists
	h.render(c, http.StatusOK, models.FormState{
		Action:       c.Request.URL.Path,
		Message:      fmt.Sprintf("Thank you for your feedback! Your ticket ID is: %d", resp.TicketID),
		MessageClass: models.MessageClassSuccess,
	})
}

func (h *FeedbackHandler) render(c *gin.Context, status int, state models.FormState) {
	c.Render(status, render.HTML{
		Template: views.Templates(),
		Name:     views.FeedbackTemplate,
		Data:     state,
	})
}
