package handlers

import (
	"log"
	"net/http"

	"github.com/pesonapantai/go-wisata/app/helpers"
	"github.com/pesonapantai/go-wisata/app/models"
	"github.com/pesonapantai/go-wisata/app/repositories"
	"github.com/pesonapantai/go-wisata/app/utils/sessions"
	"github.com/unrolled/render"
)

type AuthHandler struct {
	render       *render.Render
	userRepo     repositories.UserRepositoryImpl
	sessionStore sessions.SessionStore
}

func NewAuthHandler(r *render.Render, userRepo repositories.UserRepositoryImpl, sessionStore sessions.SessionStore) *AuthHandler {
	return &AuthHandler{render: r, userRepo: userRepo, sessionStore: sessionStore}
}

// Status menjawab pemeriksaan sesi saat shell admin dimuat.
func (h *AuthHandler) Status(w http.ResponseWriter, r *http.Request) {
	user, ok := r.Context().Value(helpers.ContextKeyUser).(*models.User)
	if !ok || user == nil {
		h.render.JSON(w, http.StatusOK, Response{Status: "success", Data: map[string]interface{}{
			"authenticated": false,
		}})
		return
	}

	h.render.JSON(w, http.StatusOK, Response{Status: "success", Data: map[string]interface{}{
		"authenticated": true,
		"user":          user,
	}})
}

func (h *AuthHandler) LoginPost(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		log.Printf("AuthHandler.LoginPost: Error parsing form: %v", err)
		h.render.JSON(w, http.StatusBadRequest, Response{Status: "error", Message: "Terjadi kesalahan saat memproses data."})
		return
	}

	email := r.FormValue("email")
	password := r.FormValue("password")
	if email == "" || password == "" {
		h.render.JSON(w, http.StatusUnprocessableEntity, Response{Status: "error", Message: "Email dan password wajib diisi."})
		return
	}

	user, err := h.userRepo.FindByEmail(r.Context(), email)
	if err != nil {
		log.Printf("AuthHandler.LoginPost: Error getting user by email '%s': %v", email, err)
		h.render.JSON(w, http.StatusBadGateway, Response{Status: "error", Message: "Terjadi kesalahan server."})
		return
	}
	if user == nil || !helpers.PasswordCompare(user.Password, []byte(password)) {
		h.render.JSON(w, http.StatusUnauthorized, Response{Status: "error", Message: "Email atau password salah."})
		return
	}

	if err := h.sessionStore.SetUserID(w, r, user.ID); err != nil {
		log.Printf("AuthHandler.LoginPost: Gagal menyimpan sesi untuk user %s: %v", user.ID, err)
		h.render.JSON(w, http.StatusInternalServerError, Response{Status: "error", Message: "Gagal membuat sesi login."})
		return
	}

	h.render.JSON(w, http.StatusOK, Response{Status: "success", Message: "Login berhasil.", Data: map[string]interface{}{
		"user": user,
	}})
}

// LogoutPost mengakhiri sesi secara eksplisit; klien dialihkan ke /auth.
func (h *AuthHandler) LogoutPost(w http.ResponseWriter, r *http.Request) {
	if err := h.sessionStore.ClearSession(w, r); err != nil {
		log.Printf("AuthHandler.LogoutPost: Gagal menghapus sesi: %v", err)
	}
	h.render.JSON(w, http.StatusOK, Response{Status: "success", Message: "Anda telah logout."})
}
