package middlewares

import (
	"context"
	"net/http"

	"github.com/rexapp/rex-backend/internal/jwt"
	"github.com/rexapp/rex-backend/internal/logger"
	"github.com/rexapp/rex-backend/internal/models"
)

// Tokener defines the token operations the middleware needs.
type Tokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	Validate(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// UserGetter loads the user a token's subject refers to.
type UserGetter interface {
	GetByEmail(ctx context.Context, email string) (*models.UserDB, error)
}

type contextKey string

const userContextKey contextKey = "currentUser"

// ContextWithUser attaches the session user to the context.
func ContextWithUser(ctx context.Context, user *models.UserDB) context.Context {
	return context.WithValue(ctx, userContextKey, user)
}

// UserFromContext returns the session user resolved by AuthMiddleware, or nil.
func UserFromContext(ctx context.Context) *models.UserDB {
	user, _ := ctx.Value(userContextKey).(*models.UserDB)
	return user
}

// AuthMiddleware resolves the session user from the request: token from
// cookie or bearer header, signature/expiry validation, access-kind check,
// user lookup by subject email, active-account policy. Any failure ends the
// request with 401 before the handler runs.
func AuthMiddleware(tokener Tokener, users UserGetter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			tokenString, err := tokener.GetTokenFromRequest(ctx, r)
			if err != nil {
				logger.Log.Errorw("authorization failed", "err", err)
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			claims, err := tokener.Validate(ctx, tokenString)
			if err != nil {
				logger.Log.Errorw("authorization failed", "err", err)
				w.WriteHeader(http.StatusUnauthorized)
				return
			}
			if claims.Kind != jwt.KindAccess {
				logger.Log.Errorw("authorization failed", "err", "wrong token kind")
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			user, err := users.GetByEmail(ctx, claims.Subject)
			if err != nil {
				logger.Log.Errorw("failed to load session user", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
			if user == nil || !user.IsActive {
				logger.Log.Errorw("user unavailable", "subject", claims.Subject)
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r.WithContext(ContextWithUser(ctx, user)))
		})
	}
}
