package admin

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/pesonapantai/go-wisata/app/catalog"
	"github.com/pesonapantai/go-wisata/app/repositories"
	"github.com/unrolled/render"
)

type AdminHandler struct {
	render       *render.Render
	validator    *validator.Validate
	beachRepo    repositories.BeachRepositoryImpl
	articleRepo  repositories.ArticleRepositoryImpl
	categoryRepo repositories.CategoryRepositoryImpl
	productRepo  repositories.ProductRepositoryImpl
	serviceRepo  repositories.ServiceRepositoryImpl
	contactRepo  repositories.ContactRepositoryImpl
}

func NewAdminHandler(
	r *render.Render,
	v *validator.Validate,
	beachRepo repositories.BeachRepositoryImpl,
	articleRepo repositories.ArticleRepositoryImpl,
	categoryRepo repositories.CategoryRepositoryImpl,
	productRepo repositories.ProductRepositoryImpl,
	serviceRepo repositories.ServiceRepositoryImpl,
	contactRepo repositories.ContactRepositoryImpl,
) *AdminHandler {
	return &AdminHandler{
		render:       r,
		validator:    v,
		beachRepo:    beachRepo,
		articleRepo:  articleRepo,
		categoryRepo: categoryRepo,
		productRepo:  productRepo,
		serviceRepo:  serviceRepo,
		contactRepo:  contactRepo,
	}
}

type response struct {
	Status  string            `json:"status"`
	Message string            `json:"message,omitempty"`
	Data    interface{}       `json:"data,omitempty"`
	Errors  map[string]string `json:"errors,omitempty"`
}

func (h *AdminHandler) success(w http.ResponseWriter, status int, message string, data interface{}) {
	h.render.JSON(w, status, response{Status: "success", Message: message, Data: data})
}

// fail memetakan jenis error catalog ke status HTTP; pesan validasi tampil
// apa adanya supaya form bisa dikoreksi.
func (h *AdminHandler) fail(w http.ResponseWriter, err error) {
	h.render.JSON(w, catalog.HTTPStatus(err), response{Status: "error", Message: catalog.UserMessage(err)})
}

func (h *AdminHandler) failValidation(w http.ResponseWriter, errors map[string]string) {
	h.render.JSON(w, http.StatusUnprocessableEntity, response{
		Status:  "error",
		Message: "Mohon lengkapi form dengan benar.",
		Errors:  errors,
	})
}

func (h *AdminHandler) notFound(w http.ResponseWriter, message string) {
	h.render.JSON(w, http.StatusNotFound, response{Status: "error", Message: message})
}
