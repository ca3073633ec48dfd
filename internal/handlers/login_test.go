package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/rexapp/rex-backend/internal/jwt"
	"github.com/rexapp/rex-backend/internal/services"
)

func cookieByName(cookies []*http.Cookie, name string) *http.Cookie {
	for _, c := range cookies {
		if c.Name == name {
			return c
		}
	}
	return nil
}

func TestLoginHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name         string
		body         string
		mockSetup    func(m *MockLoginer)
		expectedCode int
	}{
		{
			name: "success",
			body: `{"email":"alice@example.com","password":"secret"}`,
			mockSetup: func(m *MockLoginer) {
				m.EXPECT().
					Login(gomock.Any(), "alice@example.com", "secret").
					Return("access123", "refresh123", nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "invalid credentials",
			body: `{"email":"alice@example.com","password":"wrong"}`,
			mockSetup: func(m *MockLoginer) {
				m.EXPECT().
					Login(gomock.Any(), "alice@example.com", "wrong").
					Return("", "", services.ErrInvalidCredentials)
			},
			expectedCode: http.StatusUnauthorized,
		},
		{
			name: "internal server error",
			body: `{"email":"alice@example.com","password":"secret"}`,
			mockSetup: func(m *MockLoginer) {
				m.EXPECT().
					Login(gomock.Any(), "alice@example.com", "secret").
					Return("", "", errors.New("database failure"))
			},
			expectedCode: http.StatusInternalServerError,
		},
		{
			name:         "invalid json",
			body:         `{"email":`,
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockLoginer(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			req := httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewBufferString(tt.body))
			rec := httptest.NewRecorder()

			NewLoginHandler(mockSvc)(rec, req)

			assert.Equal(t, tt.expectedCode, rec.Code)

			if tt.expectedCode == http.StatusOK {
				var resp TokenResponse
				assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
				assert.Equal(t, "access123", resp.AccessToken)
				assert.Equal(t, "refresh123", resp.RefreshToken)
				assert.Equal(t, "bearer", resp.TokenType)

				cookies := rec.Result().Cookies()
				access := cookieByName(cookies, jwt.AccessTokenCookie)
				refresh := cookieByName(cookies, jwt.RefreshTokenCookie)
				assert.NotNil(t, access)
				assert.NotNil(t, refresh)
				assert.Equal(t, "access123", access.Value)
				assert.Equal(t, "refresh123", refresh.Value)
				assert.True(t, access.HttpOnly)
				assert.True(t, refresh.HttpOnly)
			}
		})
	}
}

func TestRefreshHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name         string
		cookie       *http.Cookie
		mockSetup    func(m *MockRefresher)
		expectedCode int
	}{
		{
			name:   "success",
			cookie: &http.Cookie{Name: jwt.RefreshTokenCookie, Value: "refresh123"},
			mockSetup: func(m *MockRefresher) {
				m.EXPECT().
					Refresh(gomock.Any(), "refresh123").
					Return("access456", nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:   "invalid refresh token",
			cookie: &http.Cookie{Name: jwt.RefreshTokenCookie, Value: "garbage"},
			mockSetup: func(m *MockRefresher) {
				m.EXPECT().
					Refresh(gomock.Any(), "garbage").
					Return("", jwt.ErrInvalidToken)
			},
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:         "missing cookie",
			expectedCode: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockRefresher(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			req := httptest.NewRequest(http.MethodPost, "/auth/refresh", nil)
			if tt.cookie != nil {
				req.AddCookie(tt.cookie)
			}
			rec := httptest.NewRecorder()

			NewRefreshHandler(mockSvc)(rec, req)

			assert.Equal(t, tt.expectedCode, rec.Code)

			if tt.expectedCode == http.StatusOK {
				var resp TokenResponse
				assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
				assert.Equal(t, "access456", resp.AccessToken)

				access := cookieByName(rec.Result().Cookies(), jwt.AccessTokenCookie)
				assert.NotNil(t, access)
				assert.Equal(t, "access456", access.Value)
			}
		})
	}
}

func TestLogoutHandler(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/auth/logout", nil)
	rec := httptest.NewRecorder()

	NewLogoutHandler()(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)

	cookies := rec.Result().Cookies()
	access := cookieByName(cookies, jwt.AccessTokenCookie)
	refresh := cookieByName(cookies, jwt.RefreshTokenCookie)
	assert.NotNil(t, access)
	assert.NotNil(t, refresh)
	assert.Empty(t, access.Value)
	assert.Empty(t, refresh.Value)
	assert.Negative(t, access.MaxAge)
	assert.Negative(t, refresh.MaxAge)
}
