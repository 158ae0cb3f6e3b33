package create

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/shobhanapappu/groweasytracker/internal/http/middlewarectx"
	"github.com/shobhanapappu/groweasytracker/internal/models"
	services "github.com/shobhanapappu/groweasytracker/internal/services/records"
)

// MockService реализует интерфейс create.Service
type MockService struct {
	mock.Mock
}

func (m *MockService) CreateIncome(ctx context.Context, userUID string, req models.DummyIncome) (string, error) {
	args := m.Called(ctx, userUID, req)
	return args.String(0), args.Error(1)
}

func newNoopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
}

func TestCreateIncomeHandler(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		userUID        string
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:    "успешное создание дохода",
			body:    `{"amount":2500.50,"source":"Client A","category":"Consulting","date":"2025-06-10","notes":"invoice #42"}`,
			userUID: "uid-123",
			setupMock: func(m *MockService) {
				m.On("CreateIncome", mock.Anything, "uid-123", models.DummyIncome{
					Amount:   2500.50,
					Source:   "Client A",
					Category: "Consulting",
					Date:     "2025-06-10",
					Notes:    "invoice #42",
				}).Return("rec-1", nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"id":"rec-1"`,
		},
		{
			name:           "некорректный JSON",
			body:           `{broken`,
			userUID:        "uid-123",
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"invalid request body"`,
		},
		{
			name:    "дата в неверном формате",
			body:    `{"amount":100,"source":"Client A","category":"Consulting","date":"10-06-2025"}`,
			userUID: "uid-123",
			setupMock: func(m *MockService) {
				m.On("CreateIncome", mock.Anything, "uid-123", mock.Anything).
					Return("", fmt.Errorf("%w: bad layout", services.ErrInvalidDate))
			},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   `invalid date, expected format 2006-01-02`,
		},
		{
			name:    "нулевая сумма проходит валидацию",
			body:    `{"amount":0,"source":"Client A","category":"Consulting","date":"2025-06-10"}`,
			userUID: "uid-123",
			setupMock: func(m *MockService) {
				m.On("CreateIncome", mock.Anything, "uid-123", models.DummyIncome{
					Amount:   0,
					Source:   "Client A",
					Category: "Consulting",
					Date:     "2025-06-10",
				}).Return("rec-2", nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"id":"rec-2"`,
		},
		{
			name:           "отрицательная сумма отклоняется",
			body:           `{"amount":-5,"source":"Client A","category":"Consulting","date":"2025-06-10"}`,
			userUID:        "uid-123",
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   `field Amount must not be negative`,
		},
		{
			name:           "пользователь не авторизован",
			body:           `{"amount":100,"source":"Client A","category":"Consulting","date":"2025-06-10"}`,
			userUID:        "",
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `"unauthorized"`,
		},
		{
			name:    "ошибка сервиса",
			body:    `{"amount":100,"source":"Client A","category":"Consulting","date":"2025-06-10"}`,
			userUID: "uid-123",
			setupMock: func(m *MockService) {
				m.On("CreateIncome", mock.Anything, "uid-123", mock.Anything).
					Return("", errors.New("db error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `"could not create income"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockService)
			tt.setupMock(mockService)

			handler := New(newNoopLogger(), mockService)

			req := httptest.NewRequest(http.MethodPost, "/income", bytes.NewBufferString(tt.body))
			if tt.userUID != "" {
				ctx := context.WithValue(req.Context(), middlewarectx.UserUID, tt.userUID)
				req = req.WithContext(ctx)
			}
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.True(t, strings.Contains(w.Body.String(), tt.expectedBody),
				"response body should contain %s, got %s", tt.expectedBody, w.Body.String())

			mockService.AssertExpectations(t)
		})
	}
}
