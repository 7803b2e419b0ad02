package middlewares

import (
	"log"
	"net/http"
	"net/url"

	"github.com/pesonapantai/go-wisata/app/helpers"
	"github.com/pesonapantai/go-wisata/app/models"
)

// AdminAuthMiddleware adalah gerbang sesi admin: tanpa sesi valid semua
// route /admin dialihkan ke halaman login.
func AdminAuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, ok := r.Context().Value(helpers.ContextKeyUserID).(string)
		if !ok || userID == "" {
			log.Println("AdminAuthMiddleware: User ID not found in context or empty. Redirecting to login.")
			http.Redirect(w, r, "/auth?status=error&message="+url.QueryEscape("Anda harus login untuk mengakses admin panel."), http.StatusFound)
			return
		}

		user, ok := r.Context().Value(helpers.ContextKeyUser).(*models.User)
		if !ok || user == nil {
			log.Printf("AdminAuthMiddleware: user %s tidak ada di context. Redirecting to login.", userID)
			http.Redirect(w, r, "/auth?status=error&message="+url.QueryEscape("Pengguna tidak ditemukan atau sesi tidak valid."), http.StatusFound)
			return
		}

		if user.Role != "admin" {
			log.Printf("AdminAuthMiddleware: User %s (%s) attempted to access admin panel without admin role.", user.ID, user.Email)
			http.Redirect(w, r, "/?status=error&message="+url.QueryEscape("Anda tidak memiliki izin untuk mengakses halaman ini."), http.StatusFound)
			return
		}

		next.ServeHTTP(w, r)
	})
}
