package dashboard

import (
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

	"github.com/shobhanapappu/groweasytracker/internal/aggregate"
	"github.com/shobhanapappu/groweasytracker/internal/http/middlewarectx"
	services "github.com/shobhanapappu/groweasytracker/internal/services/dashboard"
)

// MockService реализует интерфейс dashboard.Service
type MockService struct {
	mock.Mock
}

func (m *MockService) Build(ctx context.Context, userUID string) (*services.Dashboard, error) {
	args := m.Called(ctx, userUID)
	if res, ok := args.Get(0).(*services.Dashboard); ok {
		return res, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockService) BuildGuest(ctx context.Context) *services.Dashboard {
	args := m.Called(ctx)
	return args.Get(0).(*services.Dashboard)
}

func newNoopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
}

func TestDashboardHandler(t *testing.T) {
	tests := []struct {
		name           string
		role           string
		userUID        string
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:    "дашборд пользователя",
			role:    "user",
			userUID: "uid-123",
			setupMock: func(m *MockService) {
				m.On("Build", mock.Anything, "uid-123").Return(&services.Dashboard{
					Metrics: aggregate.Totals{Income: 4000, Expenses: 1000},
				}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"total_income":4000`,
		},
		{
			name:    "гость получает демо-данные",
			role:    "guest",
			userUID: "guest-abc",
			setupMock: func(m *MockService) {
				m.On("BuildGuest", mock.Anything).Return(&services.Dashboard{
					Metrics: aggregate.Totals{Income: 5000, Expenses: 2000},
				})
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"total_income":5000`,
		},
		{
			name:           "без идентификатора — 401",
			role:           "user",
			userUID:        "",
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `"unauthorized"`,
		},
		{
			name:    "ошибка сборки дашборда",
			role:    "user",
			userUID: "uid-123",
			setupMock: func(m *MockService) {
				m.On("Build", mock.Anything, "uid-123").Return(nil, errors.New("db error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `"failed to build dashboard"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockService)
			tt.setupMock(mockService)

			handler := New(newNoopLogger(), mockService)

			req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
			ctx := context.WithValue(req.Context(), middlewarectx.Role, tt.role)
			ctx = context.WithValue(ctx, middlewarectx.UserUID, tt.userUID)
			req = req.WithContext(ctx)

			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.True(t, strings.Contains(w.Body.String(), tt.expectedBody),
				"response body should contain %s, got %s", tt.expectedBody, w.Body.String())

			mockService.AssertExpectations(t)
		})
	}
}
