package handlers_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/getmentor/feedback-form/internal/handlers"
	"github.com/getmentor/feedback-form/internal/models"
	"github.com/getmentor/feedback-form/internal/services"
	"github.com/getmentor/feedback-form/pkg/httpclient"
	"github.com/getmentor/feedback-form/pkg/zendesk"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockFeedbackService implements FeedbackServiceInterface for testing
type MockFeedbackService struct {
	mock.Mock
}

func (m *MockFeedbackService) Validate(sub models.Submission) models.ValidationResult {
	args := m.Called(sub)
	return args.Get(0).(models.ValidationResult)
}

func (m *MockFeedbackService) Submit(ctx context.Context, sub models.Submission) *models.TicketResponse {
	args := m.Called(ctx, sub)
	return args.Get(0).(*models.TicketResponse)
}

func newRouter(service services.FeedbackServiceInterface) *gin.Engine {
	gin.SetMode(gin.TestMode)
	handler := handlers.NewFeedbackHandler(service)

	router := gin.New()
	router.GET("/", handler.ShowForm)
	router.POST("/", handler.SubmitForm)
	return router
}

func postForm(router *gin.Engine, values url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func formValues(email, subject, body string) url.Values {
	return url.Values{"email": {email}, "subject": {subject}, "body": {body}}
}

func TestFeedbackHandler_ShowForm(t *testing.T) {
	router := newRouter(new(MockFeedbackService))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", http.NoBody))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/html; charset=utf-8", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Body.String(), "<h2>Send Feedback</h2>")
	assert.NotContains(t, w.Body.String(), `class="message`)
}

func TestFeedbackHandler_SubmitForm_Success(t *testing.T) {
	mockService := new(MockFeedbackService)
	router := newRouter(mockService)

	expected := models.Submission{Email: "jane@example.com", Subject: "Checkout", Body: "Pay button broken"}
	mockService.On("Validate", expected).Return(models.ValidationResult{}).Once()
	mockService.On("Submit", mock.Anything, expected).Return(&models.TicketResponse{Success: true, TicketID: 123}).Once()

	w := postForm(router, formValues("jane@example.com", "  Checkout ", "Pay button broken\n"))

	assert.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, `class="message success"`)
	assert.Contains(t, body, "Thank you for your feedback! Your ticket ID is: 123")
	// fields are cleared after a successful submission
	assert.Contains(t, body, `name="email" value=""`)
	assert.Contains(t, body, `name="subject" value=""`)
	assert.NotContains(t, body, "Pay button broken")
	mockService.AssertExpectations(t)
}

func TestFeedbackHandler_SubmitForm_ValidationErrors(t *testing.T) {
	mockService := new(MockFeedbackService)
	router := newRouter(mockService)

	mockService.On("Validate", mock.Anything).Return(models.ValidationResult{
		Errors: []string{"Please enter a valid email address.", "Subject is required."},
	}).Once()

	w := postForm(router, formValues("nope", "", "Some feedback"))

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, `class="message error"`)
	assert.Contains(t, body, "<li>Please enter a valid email address.</li>")
	assert.Contains(t, body, "<li>Subject is required.</li>")
	// values are kept so the user can fix them
	assert.Contains(t, body, `value="nope"`)
	assert.Contains(t, body, "Some feedback")

	mockService.AssertNotCalled(t, "Submit", mock.Anything, mock.Anything)
	mockService.AssertExpectations(t)
}

func TestFeedbackHandler_SubmitForm_SubmitFailure(t *testing.T) {
	mockService := new(MockFeedbackService)
	router := newRouter(mockService)

	mockService.On("Validate", mock.Anything).Return(models.ValidationResult{}).Once()
	mockService.On("Submit", mock.Anything, mock.Anything).Return(&models.TicketResponse{
		Success: false,
		Error:   "Error submitting feedback: Invalid ticket",
	}).Once()

	w := postForm(router, formValues("jane@example.com", "Checkout", "Pay button broken"))

	assert.Equal(t, http.StatusBadGateway, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, `class="message error"`)
	assert.Contains(t, body, "Error submitting feedback: Invalid ticket")
	assert.Contains(t, body, `value="jane@example.com"`)
	mockService.AssertExpectations(t)
}

func TestFeedbackHandler_SubmitForm_EscapesScript(t *testing.T) {
	mockService := new(MockFeedbackService)
	router := newRouter(mockService)

	mockService.On("Validate", mock.Anything).Return(models.ValidationResult{
		Errors: []string{"Please enter a valid email address."},
	}).Once()

	w := postForm(router, formValues(`"><script>alert(1)</script>`, "<script>alert(2)</script>", "<script>alert(3)</script>"))

	body := w.Body.String()
	assert.NotContains(t, body, "<script>")
	assert.Contains(t, body, "&lt;script&gt;alert(2)&lt;/script&gt;")
}

// End to end through the real service and a fake Zendesk
func TestFeedbackHandler_SubmitForm_WithZendesk(t *testing.T) {
	calls := 0
	zendeskServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"request":{"id":123}}`))
	}))
	defer zendeskServer.Close()

	client := zendesk.NewClient(zendeskServer.URL+"/api/v2/requests.json", httpclient.NewStandardClient())
	router := newRouter(services.NewFeedbackService(client))

	w := postForm(router, formValues("bad-email", " ", "hello"))
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, 0, calls)

	w = postForm(router, formValues("jane@example.com", "Checkout", "hello"))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Your ticket ID is: 123")
	assert.Equal(t, 1, calls)
}
