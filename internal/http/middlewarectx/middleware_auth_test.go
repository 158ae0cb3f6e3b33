package middlewarectx_test

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

	"github.com/shobhanapappu/groweasytracker/internal/http/middlewarectx"
	"github.com/shobhanapappu/groweasytracker/internal/models"
)

type AuthServiceMock struct {
	mock.Mock
}

func (m *AuthServiceMock) ValidateToken(ctx context.Context, token string) (*models.User, string, bool, error) {
	args := m.Called(ctx, token)
	user, _ := args.Get(0).(*models.User)
	return user, args.String(1), args.Bool(2), args.Error(3)
}

type SubscriptionServiceMock struct {
	mock.Mock
}

func (m *SubscriptionServiceMock) HasPremiumAccess(ctx context.Context, userUID string) (bool, error) {
	args := m.Called(ctx, userUID)
	return args.Bool(0), args.Error(1)
}

func newNoopLogger() *slog.Logger {
	h := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{})
	return slog.New(h)
}

func TestJWTMiddleware(t *testing.T) {
	logger := newNoopLogger()

	handlerCalled := false

	nextHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		handlerCalled = true
		username := r.Context().Value(middlewarectx.User)
		role := r.Context().Value(middlewarectx.Role)
		userUID := r.Context().Value(middlewarectx.UserUID)
		assert.Equal(t, "testuser", username)
		assert.Equal(t, "user", role)
		assert.Equal(t, "uid-123", userUID)
		w.WriteHeader(http.StatusOK)
	})

	tests := []struct {
		name           string
		authHeader     string
		mockUser       *models.User
		mockValid      bool
		mockErr        error
		wantStatusCode int
		wantCalled     bool
	}{
		{
			name:           "missing Authorization header",
			authHeader:     "",
			wantStatusCode: http.StatusUnauthorized,
			wantCalled:     false,
		},
		{
			name:           "invalid Authorization header prefix",
			authHeader:     "Basic sometoken",
			wantStatusCode: http.StatusUnauthorized,
			wantCalled:     false,
		},
		{
			name:           "token validation error",
			authHeader:     "Bearer token",
			mockErr:        errors.New("token is expired"),
			wantStatusCode: http.StatusUnauthorized,
			wantCalled:     false,
		},
		{
			name:           "valid token",
			authHeader:     "Bearer validtoken",
			mockUser:       &models.User{Username: "testuser", Role: "user", UID: "uid-123"},
			mockValid:      true,
			wantStatusCode: http.StatusOK,
			wantCalled:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handlerCalled = false
			authMock := new(AuthServiceMock)
			if tt.mockUser != nil || tt.mockErr != nil {
				authMock.On("ValidateToken", mock.Anything, strings.TrimPrefix(tt.authHeader, "Bearer ")).
					Return(tt.mockUser, "user", tt.mockValid, tt.mockErr).Once()
			}

			mw := middlewarectx.JWTMiddleware(authMock, logger)(nextHandler)

			req := httptest.NewRequest(http.MethodGet, "/somepath", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			rec := httptest.NewRecorder()

			mw.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatusCode, rec.Code)
			assert.Equal(t, tt.wantCalled, handlerCalled)
			authMock.AssertExpectations(t)
		})
	}
}

func TestGuestReadOnlyMiddleware(t *testing.T) {
	logger := newNoopLogger()
	nextHandler := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	mw := middlewarectx.GuestReadOnlyMiddleware(logger)(nextHandler)

	tests := []struct {
		name           string
		method         string
		role           string
		wantStatusCode int
	}{
		{
			name:           "гость читает — доступ разрешен",
			method:         http.MethodGet,
			role:           "guest",
			wantStatusCode: http.StatusOK,
		},
		{
			name:           "гость пишет — доступ запрещен",
			method:         http.MethodPost,
			role:           "guest",
			wantStatusCode: http.StatusForbidden,
		},
		{
			name:           "пользователь пишет — доступ разрешен",
			method:         http.MethodPost,
			role:           "user",
			wantStatusCode: http.StatusOK,
		},
		{
			name:           "гость удаляет — доступ запрещен",
			method:         http.MethodDelete,
			role:           "guest",
			wantStatusCode: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, "/records", nil)
			ctx := context.WithValue(req.Context(), middlewarectx.Role, tt.role)
			ctx = context.WithValue(ctx, middlewarectx.UserUID, "uid-123")
			rec := httptest.NewRecorder()

			mw.ServeHTTP(rec, req.WithContext(ctx))

			assert.Equal(t, tt.wantStatusCode, rec.Code)
		})
	}
}

func TestPremiumAccessMiddleware(t *testing.T) {
	logger := newNoopLogger()
	nextHandler := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	tests := []struct {
		name           string
		role           string
		userUID        string
		hasAccess      bool
		subErr         error
		wantStatusCode int
	}{
		{
			name:           "premium доступ разрешен",
			role:           "user",
			userUID:        "uid-123",
			hasAccess:      true,
			wantStatusCode: http.StatusOK,
		},
		{
			name:           "пробный период истек — 403",
			role:           "user",
			userUID:        "uid-123",
			hasAccess:      false,
			wantStatusCode: http.StatusForbidden,
		},
		{
			name:           "гостю premium недоступен",
			role:           "guest",
			userUID:        "guest-abc",
			wantStatusCode: http.StatusForbidden,
		},
		{
			name:           "без идентификатора — 401",
			role:           "user",
			userUID:        "",
			wantStatusCode: http.StatusUnauthorized,
		},
		{
			name:           "ошибка сервиса — 500",
			role:           "user",
			userUID:        "uid-123",
			subErr:         errors.New("redis down"),
			wantStatusCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			subMock := new(SubscriptionServiceMock)
			if tt.role == "user" && tt.userUID != "" {
				subMock.On("HasPremiumAccess", mock.Anything, tt.userUID).
					Return(tt.hasAccess, tt.subErr).Once()
			}

			mw := middlewarectx.PremiumAccessMiddleware(logger, subMock)(nextHandler)

			req := httptest.NewRequest(http.MethodGet, "/investments", nil)
			ctx := context.WithValue(req.Context(), middlewarectx.Role, tt.role)
			ctx = context.WithValue(ctx, middlewarectx.UserUID, tt.userUID)
			rec := httptest.NewRecorder()

			mw.ServeHTTP(rec, req.WithContext(ctx))

			assert.Equal(t, tt.wantStatusCode, rec.Code)
			subMock.AssertExpectations(t)
		})
	}
}
