package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/pesonapantai/go-wisata/app/handlers"
	"github.com/pesonapantai/go-wisata/app/models"
	"github.com/pesonapantai/go-wisata/app/models/migrations"
	"github.com/pesonapantai/go-wisata/app/repositories"
	"github.com/pesonapantai/go-wisata/app/utils/renderer"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "wisata_test.db")
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, migrations.AutoMigrate(db))
	return db
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func postForm(router *mux.Router, path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestBeachListFiltersInMemory(t *testing.T) {
	db := setupTestDB(t)
	beachRepo := repositories.NewBeachRepository(db)
	require.NoError(t, db.Create(&models.Beach{ID: uuid.New().String(), Name: "Pantai Balekambang", Slug: "balekambang", Location: "Bantur"}).Error)
	require.NoError(t, db.Create(&models.Beach{ID: uuid.New().String(), Name: "Pantai Ngliyep", Slug: "ngliyep", Location: "Donomulyo"}).Error)

	h := handlers.NewBeachHandler(renderer.New(), beachRepo)
	router := mux.NewRouter()
	router.HandleFunc("/wisata", h.List).Methods("GET")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/wisata", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	require.EqualValues(t, 2, body["data"].(map[string]interface{})["total"])

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/wisata?q=bale", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	data := decodeBody(t, rec)["data"].(map[string]interface{})
	require.EqualValues(t, 1, data["total"])
	beaches := data["beaches"].([]interface{})
	require.Equal(t, "balekambang", beaches[0].(map[string]interface{})["slug"])
}

func TestBeachDetailNotFoundIsTerminalState(t *testing.T) {
	db := setupTestDB(t)
	h := handlers.NewBeachHandler(renderer.New(), repositories.NewBeachRepository(db))
	router := mux.NewRouter()
	router.HandleFunc("/wisata/{slug}", h.Detail).Methods("GET")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/wisata/nonexistent-slug", nil))

	require.Equal(t, http.StatusNotFound, rec.Code)
	body := decodeBody(t, rec)
	require.Equal(t, "not_found", body["status"])
	require.Equal(t, "/wisata", body["back_url"])
}

func TestArticleDetailHidesDraftAndReturnsRelated(t *testing.T) {
	db := setupTestDB(t)
	articleRepo := repositories.NewArticleRepository(db)
	categoryRepo := repositories.NewCategoryRepository(db)

	category := models.Category{ID: uuid.New().String(), Name: "Tips", Slug: "tips", Type: models.CategoryTypeArticle}
	require.NoError(t, db.Create(&category).Error)

	now := time.Now()
	primary := models.Article{ID: uuid.New().String(), Title: "Utama", Slug: "utama", Status: models.ArticleStatusPublished, PublishedAt: &now, CategoryID: &category.ID}
	sibling := models.Article{ID: uuid.New().String(), Title: "Terkait", Slug: "terkait", Status: models.ArticleStatusPublished, PublishedAt: &now, CategoryID: &category.ID}
	draft := models.Article{ID: uuid.New().String(), Title: "Rahasia", Slug: "rahasia", Status: models.ArticleStatusDraft, CategoryID: &category.ID}
	require.NoError(t, db.Create(&primary).Error)
	require.NoError(t, db.Create(&sibling).Error)
	require.NoError(t, db.Create(&draft).Error)

	h := handlers.NewArticleHandler(renderer.New(), articleRepo, categoryRepo)
	router := mux.NewRouter()
	router.HandleFunc("/artikel/{slug}", h.Detail).Methods("GET")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/artikel/utama", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	data := decodeBody(t, rec)["data"].(map[string]interface{})
	related := data["related"].([]interface{})
	require.Len(t, related, 1)
	require.Equal(t, "terkait", related[0].(map[string]interface{})["slug"])

	// draft tersembunyi meski slug-nya persis
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/artikel/rahasia", nil))
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Equal(t, "/artikel", decodeBody(t, rec)["back_url"])
}

func TestProductListingDisplayPriceFallback(t *testing.T) {
	db := setupTestDB(t)
	require.NoError(t, db.Create(&models.Product{ID: uuid.New().String(), Name: "Tanpa Harga", Slug: "tanpa-harga", IsAvailable: true}).Error)

	h := handlers.NewShopHandler(renderer.New(), repositories.NewProductRepository(db), repositories.NewServiceRepository(db), repositories.NewCategoryRepository(db))
	router := mux.NewRouter()
	router.HandleFunc("/toko/produk", h.Products).Methods("GET")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/toko/produk", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	data := decodeBody(t, rec)["data"].(map[string]interface{})
	products := data["products"].([]interface{})
	require.Len(t, products, 1)
	product := products[0].(map[string]interface{})
	require.Equal(t, "Hubungi Kami", product["display_price"])
	require.Contains(t, product["whatsapp_url"], "https://wa.me/")
}

func TestServiceListingTabFilter(t *testing.T) {
	db := setupTestDB(t)
	require.NoError(t, db.Create(&models.Service{ID: uuid.New().String(), Name: "BRILink Bu Siti", Slug: "brilink-bu-siti", ServiceType: models.ServiceTypeBrilink, IsAvailable: true}).Error)
	require.NoError(t, db.Create(&models.Service{ID: uuid.New().String(), Name: "Rental Motor", Slug: "rental-motor", ServiceType: models.ServiceTypeRental, IsAvailable: true}).Error)

	h := handlers.NewShopHandler(renderer.New(), repositories.NewProductRepository(db), repositories.NewServiceRepository(db), repositories.NewCategoryRepository(db))
	router := mux.NewRouter()
	router.HandleFunc("/toko/layanan", h.Services).Methods("GET")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/toko/layanan?tab=brilink", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	data := decodeBody(t, rec)["data"].(map[string]interface{})
	require.EqualValues(t, 1, data["total"])
	services := data["services"].([]interface{})
	require.Equal(t, "brilink-bu-siti", services[0].(map[string]interface{})["slug"])
}

func TestContactSubmitCreatesUnreadRowAndSucceeds(t *testing.T) {
	db := setupTestDB(t)
	contactRepo := repositories.NewContactRepository(db)
	settingRepo := repositories.NewSiteSettingRepository(db)

	h := handlers.NewContactHandler(renderer.New(), contactRepo, settingRepo, validator.New())
	router := mux.NewRouter()
	router.HandleFunc("/kontak", h.Submit).Methods("POST")

	rec := postForm(router, "/kontak", url.Values{
		"name":    {"Budi"},
		"email":   {"budi@example.com"},
		"message": {"Tanya harga"},
	})

	require.Equal(t, http.StatusCreated, rec.Code)
	require.Equal(t, "success", decodeBody(t, rec)["status"])

	var contacts []models.Contact
	require.NoError(t, db.Find(&contacts).Error)
	require.Len(t, contacts, 1)
	require.Equal(t, "Budi", contacts[0].Name)
	require.False(t, contacts[0].IsRead)
}

func TestContactSubmitValidationKeepsState(t *testing.T) {
	db := setupTestDB(t)
	h := handlers.NewContactHandler(renderer.New(), repositories.NewContactRepository(db), repositories.NewSiteSettingRepository(db), validator.New())
	router := mux.NewRouter()
	router.HandleFunc("/kontak", h.Submit).Methods("POST")

	rec := postForm(router, "/kontak", url.Values{
		"name":  {"Budi"},
		"email": {"bukan-email"},
	})

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	body := decodeBody(t, rec)
	require.Equal(t, "error", body["status"])
	require.NotEmpty(t, body["errors"])

	var count int64
	require.NoError(t, db.Model(&models.Contact{}).Count(&count).Error)
	require.Zero(t, count)
}
