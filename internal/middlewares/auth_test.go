package middlewares

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/rexapp/rex-backend/internal/jwt"
	"github.com/rexapp/rex-backend/internal/models"
)

func TestAuthMiddleware(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	activeUser := &models.UserDB{
		ID:       primitive.NewObjectID(),
		Email:    "alice@example.com",
		Username: "alice",
		IsActive: true,
	}
	inactiveUser := &models.UserDB{
		ID:       primitive.NewObjectID(),
		Email:    "bob@example.com",
		IsActive: false,
	}

	tests := []struct {
		name         string
		mockSetup    func(tokener *MockTokener, users *MockUserGetter)
		expectedCode int
		expectUser   *models.UserDB
	}{
		{
			name: "valid access token and active user",
			mockSetup: func(tokener *MockTokener, users *MockUserGetter) {
				tokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("token", nil)
				tokener.EXPECT().Validate(gomock.Any(), "token").
					Return(&jwt.Claims{Subject: activeUser.Email, Kind: jwt.KindAccess}, nil)
				users.EXPECT().GetByEmail(gomock.Any(), activeUser.Email).Return(activeUser, nil)
			},
			expectedCode: http.StatusOK,
			expectUser:   activeUser,
		},
		{
			name: "no token",
			mockSetup: func(tokener *MockTokener, users *MockUserGetter) {
				tokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("", jwt.ErrNoToken)
			},
			expectedCode: http.StatusUnauthorized,
		},
		{
			name: "invalid token",
			mockSetup: func(tokener *MockTokener, users *MockUserGetter) {
				tokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("bad", nil)
				tokener.EXPECT().Validate(gomock.Any(), "bad").Return(nil, jwt.ErrInvalidToken)
			},
			expectedCode: http.StatusUnauthorized,
		},
		{
			name: "refresh token rejected on protected endpoint",
			mockSetup: func(tokener *MockTokener, users *MockUserGetter) {
				tokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("refresh", nil)
				tokener.EXPECT().Validate(gomock.Any(), "refresh").
					Return(&jwt.Claims{Subject: activeUser.Email, Kind: jwt.KindRefresh}, nil)
			},
			expectedCode: http.StatusUnauthorized,
		},
		{
			name: "user lookup failure",
			mockSetup: func(tokener *MockTokener, users *MockUserGetter) {
				tokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("token", nil)
				tokener.EXPECT().Validate(gomock.Any(), "token").
					Return(&jwt.Claims{Subject: activeUser.Email, Kind: jwt.KindAccess}, nil)
				users.EXPECT().GetByEmail(gomock.Any(), activeUser.Email).Return(nil, errors.New("db error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
		{
			name: "unknown user",
			mockSetup: func(tokener *MockTokener, users *MockUserGetter) {
				tokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("token", nil)
				tokener.EXPECT().Validate(gomock.Any(), "token").
					Return(&jwt.Claims{Subject: "ghost@example.com", Kind: jwt.KindAccess}, nil)
				users.EXPECT().GetByEmail(gomock.Any(), "ghost@example.com").Return(nil, nil)
			},
			expectedCode: http.StatusUnauthorized,
		},
		{
			name: "inactive user",
			mockSetup: func(tokener *MockTokener, users *MockUserGetter) {
				tokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("token", nil)
				tokener.EXPECT().Validate(gomock.Any(), "token").
					Return(&jwt.Claims{Subject: inactiveUser.Email, Kind: jwt.KindAccess}, nil)
				users.EXPECT().GetByEmail(gomock.Any(), inactiveUser.Email).Return(inactiveUser, nil)
			},
			expectedCode: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockTokener := NewMockTokener(ctrl)
			mockUsers := NewMockUserGetter(ctrl)
			tt.mockSetup(mockTokener, mockUsers)

			var gotUser *models.UserDB
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotUser = UserFromContext(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			rec := httptest.NewRecorder()

			AuthMiddleware(mockTokener, mockUsers)(next).ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedCode, rec.Code)
			if tt.expectUser != nil {
				assert.Equal(t, tt.expectUser, gotUser)
			}
		})
	}
}

func TestUserFromContext_Empty(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Nil(t, UserFromContext(req.Context()))
}
