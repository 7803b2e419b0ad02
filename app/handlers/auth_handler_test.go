package handlers_test

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/gorilla/securecookie"
	"github.com/pesonapantai/go-wisata/app/handlers"
	"github.com/pesonapantai/go-wisata/app/helpers"
	"github.com/pesonapantai/go-wisata/app/models"
	"github.com/pesonapantai/go-wisata/app/repositories"
	"github.com/pesonapantai/go-wisata/app/utils/renderer"
	"github.com/pesonapantai/go-wisata/app/utils/sessions"
	"github.com/stretchr/testify/require"
)

func TestLoginPost(t *testing.T) {
	db := setupTestDB(t)
	require.NoError(t, db.Create(&models.User{
		ID:       uuid.New().String(),
		FullName: "Admin Wisata",
		Email:    "admin@wisata.test",
		Password: helpers.HashPassword("rahasia123"),
		Role:     "admin",
	}).Error)

	sessionStore := sessions.NewCookieSessionStore(securecookie.GenerateRandomKey(64), securecookie.GenerateRandomKey(32))
	h := handlers.NewAuthHandler(renderer.New(), repositories.NewUserRepository(db), sessionStore)
	router := mux.NewRouter()
	router.HandleFunc("/auth", h.LoginPost).Methods("POST")

	t.Run("password salah ditolak", func(t *testing.T) {
		rec := postForm(router, "/auth", url.Values{
			"email":    {"admin@wisata.test"},
			"password": {"salah"},
		})
		require.Equal(t, http.StatusUnauthorized, rec.Code)
		require.Empty(t, rec.Result().Cookies())
	})

	t.Run("email tak dikenal ditolak", func(t *testing.T) {
		rec := postForm(router, "/auth", url.Values{
			"email":    {"bukan@wisata.test"},
			"password": {"rahasia123"},
		})
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("kredensial valid membuat sesi", func(t *testing.T) {
		rec := postForm(router, "/auth", url.Values{
			"email":    {"admin@wisata.test"},
			"password": {"rahasia123"},
		})
		require.Equal(t, http.StatusOK, rec.Code)

		cookies := rec.Result().Cookies()
		require.NotEmpty(t, cookies)
		require.Equal(t, "wisata-session", cookies[0].Name)

		// password tidak boleh ikut ter-serialize di respons
		require.NotContains(t, rec.Body.String(), "rahasia123")
	})
}
