package webhook

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	services "github.com/shobhanapappu/groweasytracker/internal/services/payment"
)

// MockService реализует интерфейс webhook.Service
type MockService struct {
	mock.Mock
}

func (m *MockService) ProcessWebhook(ctx context.Context, body []byte, signature string) error {
	args := m.Called(ctx, body, signature)
	return args.Error(0)
}

func newNoopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
}

func TestWebhookHandler(t *testing.T) {
	body := `{"event":"order.paid","payload":{"order":{"entity":{"id":"order_1","status":"paid"}}}}`

	tests := []struct {
		name           string
		signature      string
		processErr     error
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "уведомление обработано",
			signature:      "valid-signature",
			expectedStatus: http.StatusOK,
			expectedBody:   `"webhook processed"`,
		},
		{
			name:           "неверная подпись",
			signature:      "bad-signature",
			processErr:     services.ErrInvalidSignature,
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `"invalid signature"`,
		},
		{
			name:           "ошибка обработки",
			signature:      "valid-signature",
			processErr:     errors.New("unknown order"),
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `"failed to process webhook"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockService)
			mockService.On("ProcessWebhook", mock.Anything, []byte(body), tt.signature).
				Return(tt.processErr)

			handler := New(newNoopLogger(), mockService)

			req := httptest.NewRequest(http.MethodPost, "/payment/webhook", bytes.NewBufferString(body))
			req.Header.Set("X-Razorpay-Signature", tt.signature)
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.True(t, strings.Contains(w.Body.String(), tt.expectedBody),
				"response body should contain %s, got %s", tt.expectedBody, w.Body.String())

			mockService.AssertExpectations(t)
		})
	}
}
