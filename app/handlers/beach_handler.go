package handlers

import (
	"log"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/pesonapantai/go-wisata/app/catalog"
	"github.com/pesonapantai/go-wisata/app/models"
	"github.com/pesonapantai/go-wisata/app/repositories"
	"github.com/unrolled/render"
)

type BeachHandler struct {
	render    *render.Render
	beachRepo repositories.BeachRepositoryImpl
}

func NewBeachHandler(r *render.Render, beachRepo repositories.BeachRepositoryImpl) *BeachHandler {
	return &BeachHandler{render: r, beachRepo: beachRepo}
}

// List mengambil seluruh koleksi lalu menyaring di memori berdasarkan kata
// kunci; predikat dihitung ulang per request, tanpa filter server-side.
func (h *BeachHandler) List(w http.ResponseWriter, r *http.Request) {
	beaches, err := h.beachRepo.GetAll(r.Context())
	if err != nil {
		log.Printf("BeachHandler.List: Gagal mengambil daftar pantai: %v", err)
		h.render.JSON(w, catalog.HTTPStatus(err), Response{Status: "error", Message: catalog.UserMessage(err)})
		return
	}

	query := r.URL.Query().Get("q")
	filtered := catalog.Filter(beaches, func(b models.Beach) bool {
		return catalog.MatchesText(query, b.Name, b.Location)
	})

	h.render.JSON(w, http.StatusOK, Response{Status: "success", Data: map[string]interface{}{
		"beaches": filtered,
		"total":   len(filtered),
	}})
}

func (h *BeachHandler) Detail(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["slug"]

	beach, err := h.beachRepo.GetBySlug(r.Context(), slug)
	if err != nil {
		log.Printf("BeachHandler.Detail: Gagal mengambil pantai %s: %v", slug, err)
		h.render.JSON(w, catalog.HTTPStatus(err), Response{Status: "error", Message: catalog.UserMessage(err)})
		return
	}
	if beach == nil {
		h.render.JSON(w, http.StatusNotFound, NotFoundResponse{
			Status:  "not_found",
			Message: "Pantai tidak ditemukan.",
			BackURL: "/wisata",
		})
		return
	}

	h.render.JSON(w, http.StatusOK, Response{Status: "success", Data: map[string]interface{}{
		"beach": beach,
	}})
}
