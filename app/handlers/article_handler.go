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

const relatedArticleLimit = 3

type ArticleHandler struct {
	render       *render.Render
	articleRepo  repositories.ArticleRepositoryImpl
	categoryRepo repositories.CategoryRepositoryImpl
}

func NewArticleHandler(r *render.Render, articleRepo repositories.ArticleRepositoryImpl, categoryRepo repositories.CategoryRepositoryImpl) *ArticleHandler {
	return &ArticleHandler{render: r, articleRepo: articleRepo, categoryRepo: categoryRepo}
}

func (h *ArticleHandler) List(w http.ResponseWriter, r *http.Request) {
	articles, err := h.articleRepo.GetPublished(r.Context())
	if err != nil {
		log.Printf("ArticleHandler.List: Gagal mengambil daftar artikel: %v", err)
		h.render.JSON(w, catalog.HTTPStatus(err), Response{Status: "error", Message: catalog.UserMessage(err)})
		return
	}

	query := r.URL.Query().Get("q")
	categoryID := r.URL.Query().Get("kategori")
	filtered := catalog.Filter(articles,
		func(a models.Article) bool {
			return catalog.MatchesText(query, a.Title, a.Excerpt)
		},
		func(a models.Article) bool {
			if categoryID == "" {
				return true
			}
			return a.CategoryID != nil && *a.CategoryID == categoryID
		},
	)

	// Daftar kategori melengkapi chip filter; kegagalannya tidak
	// menggagalkan halaman.
	categories, err := h.categoryRepo.GetByType(r.Context(), models.CategoryTypeArticle)
	if err != nil {
		log.Printf("ArticleHandler.List: Gagal mengambil kategori artikel: %v", err)
		categories = []models.Category{}
	}

	h.render.JSON(w, http.StatusOK, Response{Status: "success", Data: map[string]interface{}{
		"articles":   filtered,
		"categories": categories,
		"total":      len(filtered),
	}})
}

func (h *ArticleHandler) Detail(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["slug"]

	article, err := h.articleRepo.GetPublishedBySlug(r.Context(), slug)
	if err != nil {
		log.Printf("ArticleHandler.Detail: Gagal mengambil artikel %s: %v", slug, err)
		h.render.JSON(w, catalog.HTTPStatus(err), Response{Status: "error", Message: catalog.UserMessage(err)})
		return
	}
	if article == nil {
		h.render.JSON(w, http.StatusNotFound, NotFoundResponse{
			Status:  "not_found",
			Message: "Artikel tidak ditemukan.",
			BackURL: "/artikel",
		})
		return
	}

	// Artikel terkait hanya dicari setelah artikel utamanya ada, dan
	// dilewati sama sekali bila tidak berkategori.
	related := []models.Article{}
	if article.CategoryID != nil {
		related, err = h.articleRepo.GetRelated(r.Context(), *article.CategoryID, article.ID, relatedArticleLimit)
		if err != nil {
			log.Printf("ArticleHandler.Detail: Gagal mengambil artikel terkait untuk %s: %v", slug, err)
			related = []models.Article{}
		}
	}

	h.render.JSON(w, http.StatusOK, Response{Status: "success", Data: map[string]interface{}{
		"article": article,
		"related": related,
	}})
}
