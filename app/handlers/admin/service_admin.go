package admin

import (
	"log"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/pesonapantai/go-wisata/app/helpers"
	"github.com/pesonapantai/go-wisata/app/models"
)

type ServiceForm struct {
	Name            string `validate:"required,min=2,max=255"`
	Slug            string
	ServiceType     string `validate:"required,oneof=brilink rental"`
	Description     string
	Location        string
	Address         string
	OpeningHours    string
	WhatsappNumber  string
	ServicesOffered string
	FeaturedImage   string
	Images          string
	IsAvailable     bool
	IsFeatured      bool
}

func parseServiceForm(r *http.Request) ServiceForm {
	return ServiceForm{
		Name:            r.PostFormValue("name"),
		Slug:            r.PostFormValue("slug"),
		ServiceType:     r.PostFormValue("service_type"),
		Description:     r.PostFormValue("description"),
		Location:        r.PostFormValue("location"),
		Address:         r.PostFormValue("address"),
		OpeningHours:    r.PostFormValue("opening_hours"),
		WhatsappNumber:  r.PostFormValue("whatsapp_number"),
		ServicesOffered: r.PostFormValue("services_offered"),
		FeaturedImage:   r.PostFormValue("featured_image"),
		Images:          r.PostFormValue("images"),
		IsAvailable:     r.PostFormValue("is_available") == "on" || r.PostFormValue("is_available") == "true",
		IsFeatured:      r.PostFormValue("is_featured") == "on" || r.PostFormValue("is_featured") == "true",
	}
}

func (f ServiceForm) apply(service *models.Service) {
	service.Name = f.Name
	service.Slug = helpers.DeriveSlug(f.Slug, f.Name)
	service.ServiceType = models.ServiceType(f.ServiceType)
	service.Description = f.Description
	service.Location = f.Location
	service.Address = f.Address
	service.OpeningHours = f.OpeningHours
	service.WhatsappNumber = f.WhatsappNumber
	service.ServicesOffered = helpers.SplitLines(f.ServicesOffered)
	service.FeaturedImage = f.FeaturedImage
	service.Images = helpers.SplitLines(f.Images)
	service.IsAvailable = f.IsAvailable
	service.IsFeatured = f.IsFeatured
}

func (h *AdminHandler) GetServices(w http.ResponseWriter, r *http.Request) {
	services, err := h.serviceRepo.GetAll(r.Context())
	if err != nil {
		log.Printf("GetServices: Gagal mengambil daftar layanan: %v", err)
		h.fail(w, err)
		return
	}
	h.success(w, http.StatusOK, "", map[string]interface{}{"services": services})
}

func (h *AdminHandler) CreateService(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		log.Printf("CreateService: Kesalahan parsing form: %v", err)
		h.render.JSON(w, http.StatusBadRequest, response{Status: "error", Message: "Kesalahan parsing form."})
		return
	}

	form := parseServiceForm(r)
	if err := h.validator.Struct(&form); err != nil {
		h.failValidation(w, helpers.FormatValidationErrors(err.(validator.ValidationErrors)))
		return
	}

	service := &models.Service{ID: uuid.New().String()}
	form.apply(service)

	if err := h.serviceRepo.Create(r.Context(), service); err != nil {
		log.Printf("CreateService: Gagal menambahkan layanan: %v", err)
		h.fail(w, err)
		return
	}

	h.success(w, http.StatusCreated, "Layanan berhasil ditambahkan!", map[string]interface{}{"service": service})
}

func (h *AdminHandler) EditService(w http.ResponseWriter, r *http.Request) {
	serviceID := mux.Vars(r)["id"]

	service, err := h.serviceRepo.GetByID(r.Context(), serviceID)
	if err != nil {
		log.Printf("EditService: Error mencari layanan %s: %v", serviceID, err)
		h.fail(w, err)
		return
	}
	if service == nil {
		h.notFound(w, "Layanan tidak ditemukan.")
		return
	}

	if err := r.ParseForm(); err != nil {
		log.Printf("EditService: Kesalahan parsing form: %v", err)
		h.render.JSON(w, http.StatusBadRequest, response{Status: "error", Message: "Kesalahan parsing form."})
		return
	}

	form := parseServiceForm(r)
	if err := h.validator.Struct(&form); err != nil {
		h.failValidation(w, helpers.FormatValidationErrors(err.(validator.ValidationErrors)))
		return
	}

	form.apply(service)

	if err := h.serviceRepo.Update(r.Context(), service); err != nil {
		log.Printf("EditService: Gagal memperbarui layanan %s: %v", serviceID, err)
		h.fail(w, err)
		return
	}

	h.success(w, http.StatusOK, "Layanan berhasil diperbarui!", map[string]interface{}{"service": service})
}

func (h *AdminHandler) DeleteService(w http.ResponseWriter, r *http.Request) {
	serviceID := mux.Vars(r)["id"]

	service, err := h.serviceRepo.GetByID(r.Context(), serviceID)
	if err != nil || service == nil {
		log.Printf("DeleteService: Layanan %s tidak ditemukan untuk penghapusan: %v", serviceID, err)
		h.notFound(w, "Layanan tidak ditemukan atau sudah dihapus.")
		return
	}

	if err := h.serviceRepo.Delete(r.Context(), serviceID); err != nil {
		log.Printf("DeleteService: Gagal menghapus layanan %s: %v", serviceID, err)
		h.fail(w, err)
		return
	}

	h.success(w, http.StatusOK, "Layanan berhasil dihapus!", nil)
}
