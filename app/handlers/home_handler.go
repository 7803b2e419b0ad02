package handlers

import (
	"log"
	"net/http"

	"github.com/pesonapantai/go-wisata/app/models"
	"github.com/pesonapantai/go-wisata/app/repositories"
	"github.com/unrolled/render"
)

const homeSectionLimit = 3

type HomeHandler struct {
	render      *render.Render
	beachRepo   repositories.BeachRepositoryImpl
	articleRepo repositories.ArticleRepositoryImpl
	serviceRepo repositories.ServiceRepositoryImpl
	settingRepo repositories.SiteSettingRepositoryImpl
}

func NewHomeHandler(r *render.Render, beachRepo repositories.BeachRepositoryImpl, articleRepo repositories.ArticleRepositoryImpl, serviceRepo repositories.ServiceRepositoryImpl, settingRepo repositories.SiteSettingRepositoryImpl) *HomeHandler {
	return &HomeHandler{render: r, beachRepo: beachRepo, articleRepo: articleRepo, serviceRepo: serviceRepo, settingRepo: settingRepo}
}

// Index merangkai seksi beranda. Tiap seksi berdiri sendiri: yang gagal
// tampil kosong, tidak menggagalkan seluruh halaman.
func (h *HomeHandler) Index(w http.ResponseWriter, r *http.Request) {
	beaches, err := h.beachRepo.GetFeatured(r.Context(), homeSectionLimit)
	if err != nil {
		log.Printf("HomeHandler.Index: Gagal mengambil pantai unggulan: %v", err)
		beaches = []models.Beach{}
	}

	articles, err := h.articleRepo.GetLatestPublished(r.Context(), homeSectionLimit)
	if err != nil {
		log.Printf("HomeHandler.Index: Gagal mengambil artikel terbaru: %v", err)
		articles = []models.Article{}
	}

	services, err := h.serviceRepo.GetFeatured(r.Context(), homeSectionLimit)
	if err != nil {
		log.Printf("HomeHandler.Index: Gagal mengambil layanan unggulan: %v", err)
		services = []models.Service{}
	}

	h.render.JSON(w, http.StatusOK, Response{Status: "success", Data: map[string]interface{}{
		"featured_beaches":  beaches,
		"latest_articles":   articles,
		"featured_services": services,
	}})
}

func (h *HomeHandler) About(w http.ResponseWriter, r *http.Request) {
	settings, err := h.settingRepo.GetAll(r.Context())
	if err != nil {
		log.Printf("HomeHandler.About: Gagal mengambil pengaturan situs: %v", err)
		settings = map[string]string{}
	}

	h.render.JSON(w, http.StatusOK, Response{Status: "success", Data: map[string]interface{}{
		"settings": settings,
	}})
}
