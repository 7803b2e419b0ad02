package middlewares_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/pesonapantai/go-wisata/app/helpers"
	"github.com/pesonapantai/go-wisata/app/middlewares"
	"github.com/pesonapantai/go-wisata/app/models"
	"github.com/stretchr/testify/require"
)

func protectedProbe(called *bool) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*called = true
		w.WriteHeader(http.StatusOK)
	})
}

func TestAdminAuthMiddlewareRedirectsWithoutSession(t *testing.T) {
	var called bool
	handler := middlewares.AdminAuthMiddleware(protectedProbe(&called))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/admin", nil))

	require.False(t, called)
	require.Equal(t, http.StatusFound, rec.Code)
	require.Contains(t, rec.Header().Get("Location"), "/auth")
}

func TestAdminAuthMiddlewareRedirectsNonAdmin(t *testing.T) {
	user := &models.User{ID: uuid.New().String(), Email: "warga@wisata.test", Role: "user"}

	var called bool
	handler := middlewares.AdminAuthMiddleware(protectedProbe(&called))

	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	ctx := context.WithValue(req.Context(), helpers.ContextKeyUserID, user.ID)
	ctx = context.WithValue(ctx, helpers.ContextKeyUser, user)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req.WithContext(ctx))

	require.False(t, called)
	require.Equal(t, http.StatusFound, rec.Code)
	require.True(t, strings.HasPrefix(rec.Header().Get("Location"), "/?"))
}

func TestAdminAuthMiddlewarePassesAdminThrough(t *testing.T) {
	user := &models.User{ID: uuid.New().String(), Email: "admin@wisata.test", Role: "admin"}

	var called bool
	handler := middlewares.AdminAuthMiddleware(protectedProbe(&called))

	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	ctx := context.WithValue(req.Context(), helpers.ContextKeyUserID, user.ID)
	ctx = context.WithValue(ctx, helpers.ContextKeyUser, user)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req.WithContext(ctx))

	require.True(t, called)
	require.Equal(t, http.StatusOK, rec.Code)
}
