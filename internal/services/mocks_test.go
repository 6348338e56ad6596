package services_test

import (
	"context"

	"github.com/getmentor/feedback-form/pkg/zendesk"
	"github.com/stretchr/testify/mock"
)

// MockTicketCreator is a mock implementation of TicketCreator
type MockTicketCreator struct {
	mock.Mock
}

func (m *MockTicketCreator) CreateRequest(ctx context.Context, req *zendesk.TicketRequest) (int64, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(int64), args.Error(1)
}
