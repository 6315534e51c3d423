package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type MockOCREngine struct {
	mock.Mock
}

func (m *MockOCREngine) Recognize(ctx context.Context, data []byte, mimeType string) (string, error) {
	args := m.Called(ctx, data, mimeType)

	return args.String(0), args.Error(1)
}
