package admin

import (
	"log"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/pesonapantai/go-wisata/app/helpers"
	"github.com/pesonapantai/go-wisata/app/models"
)

type ArticleForm struct {
	Title         string `validate:"required,min=2,max=255"`
	Slug          string
	Excerpt       string
	Content       string
	FeaturedImage string
	Status        string `validate:"required,oneof=draft published"`
	CategoryID    string
}

func parseArticleForm(r *http.Request) ArticleForm {
	return ArticleForm{
		Title:         r.PostFormValue("title"),
		Slug:          r.PostFormValue("slug"),
		Excerpt:       r.PostFormValue("excerpt"),
		Content:       r.PostFormValue("content"),
		FeaturedImage: r.PostFormValue("featured_image"),
		Status:        r.PostFormValue("status"),
		CategoryID:    r.PostFormValue("category_id"),
	}
}

// apply menyalin draft ke baris artikel. Status "published" mencap
// published_at dengan waktu sekarang; status lain mengosongkannya.
func (f ArticleForm) apply(article *models.Article) {
	article.Title = f.Title
	article.Slug = helpers.DeriveSlug(f.Slug, f.Title)
	article.Excerpt = f.Excerpt
	article.Content = f.Content
	article.FeaturedImage = f.FeaturedImage
	article.Status = models.ArticleStatus(f.Status)
	article.CategoryID = helpers.NullableID(f.CategoryID)

	if article.Status == models.ArticleStatusPublished {
		now := time.Now()
		article.PublishedAt = &now
	} else {
		article.PublishedAt = nil
	}
}

func (h *AdminHandler) GetArticles(w http.ResponseWriter, r *http.Request) {
	articles, err := h.articleRepo.GetAll(r.Context())
	if err != nil {
		log.Printf("GetArticles: Gagal mengambil daftar artikel: %v", err)
		h.fail(w, err)
		return
	}

	categories, err := h.categoryRepo.GetByType(r.Context(), models.CategoryTypeArticle)
	if err != nil {
		log.Printf("GetArticles: Gagal mengambil kategori artikel: %v", err)
		categories = []models.Category{}
	}

	h.success(w, http.StatusOK, "", map[string]interface{}{
		"articles":   articles,
		"categories": categories,
	})
}

func (h *AdminHandler) CreateArticle(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		log.Printf("CreateArticle: Kesalahan parsing form: %v", err)
		h.render.JSON(w, http.StatusBadRequest, response{Status: "error", Message: "Kesalahan parsing form."})
		return
	}

	form := parseArticleForm(r)
	if err := h.validator.Struct(&form); err != nil {
		h.failValidation(w, helpers.FormatValidationErrors(err.(validator.ValidationErrors)))
		return
	}

	userID, _ := r.Context().Value(helpers.ContextKeyUserID).(string)

	article := &models.Article{ID: uuid.New().String(), AuthorID: helpers.NullableID(userID)}
	form.apply(article)

	if err := h.articleRepo.Create(r.Context(), article); err != nil {
		log.Printf("CreateArticle: Gagal menambahkan artikel: %v", err)
		h.fail(w, err)
		return
	}

	h.success(w, http.StatusCreated, "Artikel berhasil ditambahkan!", map[string]interface{}{"article": article})
}

func (h *AdminHandler) EditArticle(w http.ResponseWriter, r *http.Request) {
	articleID := mux.Vars(r)["id"]

	article, err := h.articleRepo.GetByID(r.Context(), articleID)
	if err != nil {
		log.Printf("EditArticle: Error mencari artikel %s: %v", articleID, err)
		h.fail(w, err)
		return
	}
	if article == nil {
		h.notFound(w, "Artikel tidak ditemukan.")
		return
	}

	if err := r.ParseForm(); err != nil {
		log.Printf("EditArticle: Kesalahan parsing form: %v", err)
		h.render.JSON(w, http.StatusBadRequest, response{Status: "error", Message: "Kesalahan parsing form."})
		return
	}

	form := parseArticleForm(r)
	if err := h.validator.Struct(&form); err != nil {
		h.failValidation(w, helpers.FormatValidationErrors(err.(validator.ValidationErrors)))
		return
	}

	form.apply(article)

	if err := h.articleRepo.Update(r.Context(), article); err != nil {
		log.Printf("EditArticle: Gagal memperbarui artikel %s: %v", articleID, err)
		h.fail(w, err)
		return
	}

	h.success(w, http.StatusOK, "Artikel berhasil diperbarui!", map[string]interface{}{"article": article})
}

func (h *AdminHandler) DeleteArticle(w http.ResponseWriter, r *http.Request) {
	articleID := mux.Vars(r)["id"]

	article, err := h.articleRepo.GetByID(r.Context(), articleID)
	if err != nil || article == nil {
		log.Printf("DeleteArticle: Artikel %s tidak ditemukan untuk penghapusan: %v", articleID, err)
		h.notFound(w, "Artikel tidak ditemukan atau sudah dihapus.")
		return
	}

	if err := h.articleRepo.Delete(r.Context(), articleID); err != nil {
		log.Printf("DeleteArticle: Gagal menghapus artikel %s: %v", articleID, err)
		h.fail(w, err)
		return
	}

	h.success(w, http.StatusOK, "Artikel berhasil dihapus!", nil)
}
