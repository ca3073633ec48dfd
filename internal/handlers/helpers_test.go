package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/rexapp/rex-backend/internal/middlewares"
	"github.com/rexapp/rex-backend/internal/models"
)

// sessionUser returns a request carrying an authenticated user, as the auth
// middleware would leave it.
func withUser(r *http.Request, user *models.UserDB) *http.Request {
	return r.WithContext(middlewares.ContextWithUser(r.Context(), user))
}

// withRouteParam injects a chi URL parameter into the request context.
func withRouteParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func testUser() *models.UserDB {
	return &models.UserDB{
		ID:       primitive.NewObjectID(),
		Email:    "alice@example.com",
		Username: "alice",
		IsActive: true,
	}
}
