package admin_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/pesonapantai/go-wisata/app/handlers/admin"
	"github.com/pesonapantai/go-wisata/app/models"
	"github.com/pesonapantai/go-wisata/app/models/migrations"
	"github.com/pesonapantai/go-wisata/app/repositories"
	"github.com/pesonapantai/go-wisata/app/utils/renderer"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type testEnv struct {
	db      *gorm.DB
	handler *admin.AdminHandler
	router  *mux.Router
}

func setupAdmin(t *testing.T) *testEnv {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "wisata_test.db")
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, migrations.AutoMigrate(db))

	h := admin.NewAdminHandler(
		renderer.New(),
		validator.New(),
		repositories.NewBeachRepository(db),
		repositories.NewArticleRepository(db),
		repositories.NewCategoryRepository(db),
		repositories.NewProductRepository(db),
		repositories.NewServiceRepository(db),
		repositories.NewContactRepository(db),
	)

	router := mux.NewRouter()
	router.HandleFunc("/admin", h.GetDashboard).Methods("GET")
	router.HandleFunc("/admin/pantai", h.CreateBeach).Methods("POST")
	router.HandleFunc("/admin/pantai/edit/{id}", h.EditBeach).Methods("POST")
	router.HandleFunc("/admin/artikel", h.CreateArticle).Methods("POST")
	router.HandleFunc("/admin/artikel/edit/{id}", h.EditArticle).Methods("POST")
	router.HandleFunc("/admin/layanan/delete/{id}", h.DeleteService).Methods("POST")

	return &testEnv{db: db, handler: h, router: router}
}

func (e *testEnv) postForm(t *testing.T, path string, form url.Values) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestCreateBeachDerivesSlugFromName(t *testing.T) {
	env := setupAdmin(t)

	rec := env.postForm(t, "/admin/pantai", url.Values{
		"name":     {"Pantai Tiga Warna"},
		"location": {"Sumbermanjing Wetan"},
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var beach models.Beach
	require.NoError(t, env.db.Where("slug = ?", "pantai-tiga-warna").First(&beach).Error)
	require.Equal(t, "Pantai Tiga Warna", beach.Name)
}

func TestCreateBeachExplicitSlugWins(t *testing.T) {
	env := setupAdmin(t)

	rec := env.postForm(t, "/admin/pantai", url.Values{
		"name": {"Pantai Tiga Warna"},
		"slug": {"tiga-warna"},
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var beach models.Beach
	require.NoError(t, env.db.Where("slug = ?", "tiga-warna").First(&beach).Error)
}

func TestCreateBeachDuplicateSlugRejected(t *testing.T) {
	env := setupAdmin(t)
	require.NoError(t, env.db.Create(&models.Beach{ID: uuid.New().String(), Name: "Balekambang", Slug: "balekambang"}).Error)

	rec := env.postForm(t, "/admin/pantai", url.Values{
		"name": {"Balekambang Baru"},
		"slug": {"balekambang"},
	})
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	require.Equal(t, "error", decode(t, rec)["status"])
}

func TestEditBeachUpdatesRowInPlace(t *testing.T) {
	env := setupAdmin(t)
	beach := models.Beach{ID: uuid.New().String(), Name: "Balekambang", Slug: "balekambang", IsFeatured: false}
	require.NoError(t, env.db.Create(&beach).Error)

	rec := env.postForm(t, "/admin/pantai/edit/"+beach.ID, url.Values{
		"name":        {"Balekambang"},
		"slug":        {"balekambang"},
		"is_featured": {"true"},
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var count int64
	require.NoError(t, env.db.Model(&models.Beach{}).Count(&count).Error)
	require.EqualValues(t, 1, count)

	var updated models.Beach
	require.NoError(t, env.db.First(&updated, "id = ?", beach.ID).Error)
	require.True(t, updated.IsFeatured)
}

func TestArticlePublishStampsAndUnpublishClears(t *testing.T) {
	env := setupAdmin(t)

	rec := env.postForm(t, "/admin/artikel", url.Values{
		"title":  {"Kabar Pantai"},
		"status": {"published"},
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var article models.Article
	require.NoError(t, env.db.Where("slug = ?", "kabar-pantai").First(&article).Error)
	require.NotNil(t, article.PublishedAt)

	rec = env.postForm(t, "/admin/artikel/edit/"+article.ID, url.Values{
		"title":  {"Kabar Pantai"},
		"status": {"draft"},
	})
	require.Equal(t, http.StatusOK, rec.Code)

	require.NoError(t, env.db.First(&article, "id = ?", article.ID).Error)
	require.Equal(t, models.ArticleStatusDraft, article.Status)
	require.Nil(t, article.PublishedAt)
}

func TestDeleteServiceRemovesRow(t *testing.T) {
	env := setupAdmin(t)
	service := models.Service{ID: uuid.New().String(), Name: "Rental Motor", Slug: "rental-motor", ServiceType: models.ServiceTypeRental, IsAvailable: true}
	require.NoError(t, env.db.Create(&service).Error)

	rec := env.postForm(t, "/admin/layanan/delete/"+service.ID, url.Values{})
	require.Equal(t, http.StatusOK, rec.Code)

	var count int64
	require.NoError(t, env.db.Model(&models.Service{}).Count(&count).Error)
	require.Zero(t, count)

	// penghapusan kedua atas id yang sama harus 404, bukan sukses semu
	rec = env.postForm(t, "/admin/layanan/delete/"+service.ID, url.Values{})
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDashboardCountsEachCollection(t *testing.T) {
	env := setupAdmin(t)
	require.NoError(t, env.db.Create(&models.Beach{ID: uuid.New().String(), Name: "Balekambang", Slug: "balekambang"}).Error)
	require.NoError(t, env.db.Create(&models.Beach{ID: uuid.New().String(), Name: "Ngliyep", Slug: "ngliyep"}).Error)
	require.NoError(t, env.db.Create(&models.Contact{ID: uuid.New().String(), Name: "Budi", Email: "budi@example.com", Message: "Tanya harga", IsRead: false}).Error)
	require.NoError(t, env.db.Create(&models.Contact{ID: uuid.New().String(), Name: "Sari", Email: "sari@example.com", Message: "Sudah dibalas", IsRead: true}).Error)

	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	stats := decode(t, rec)["data"].(map[string]interface{})["stats"].(map[string]interface{})
	require.EqualValues(t, 2, stats["beaches"])
	require.EqualValues(t, 0, stats["articles"])
	require.EqualValues(t, 1, stats["unread_contacts"])
}
