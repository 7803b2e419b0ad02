package handlers

import (
	"log"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/pesonapantai/go-wisata/app/catalog"
	"github.com/pesonapantai/go-wisata/app/helpers"
	"github.com/pesonapantai/go-wisata/app/models"
	"github.com/pesonapantai/go-wisata/app/repositories"
	"github.com/pesonapantai/go-wisata/app/utils/whatsapp"
	"github.com/unrolled/render"
)

type ContactHandler struct {
	render      *render.Render
	contactRepo repositories.ContactRepositoryImpl
	settingRepo repositories.SiteSettingRepositoryImpl
	validator   *validator.Validate
}

func NewContactHandler(r *render.Render, contactRepo repositories.ContactRepositoryImpl, settingRepo repositories.SiteSettingRepositoryImpl, v *validator.Validate) *ContactHandler {
	return &ContactHandler{render: r, contactRepo: contactRepo, settingRepo: settingRepo, validator: v}
}

type ContactForm struct {
	Name    string `validate:"required"`
	Email   string `validate:"required,email"`
	Phone   string
	Subject string
	Message string `validate:"required"`
}

func (h *ContactHandler) Show(w http.ResponseWriter, r *http.Request) {
	settings, err := h.settingRepo.GetAll(r.Context())
	if err != nil {
		log.Printf("ContactHandler.Show: Gagal mengambil pengaturan situs: %v", err)
		settings = map[string]string{}
	}

	h.render.JSON(w, http.StatusOK, Response{Status: "success", Data: map[string]interface{}{
		"settings":     settings,
		"whatsapp_url": whatsapp.Link(settings["whatsapp_number"], ""),
	}})
}

func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		log.Printf("ContactHandler.Submit: Kesalahan parsing form: %v", err)
		h.render.JSON(w, http.StatusBadRequest, Response{Status: "error", Message: "Kesalahan parsing form."})
		return
	}

	form := ContactForm{
		Name:    r.PostFormValue("name"),
		Email:   r.PostFormValue("email"),
		Phone:   r.PostFormValue("phone"),
		Subject: r.PostFormValue("subject"),
		Message: r.PostFormValue("message"),
	}

	if err := h.validator.Struct(&form); err != nil {
		validationErrors := err.(validator.ValidationErrors)
		h.render.JSON(w, http.StatusUnprocessableEntity, Response{
			Status:  "error",
			Message: "Mohon lengkapi form dengan benar.",
			Errors:  helpers.FormatValidationErrors(validationErrors),
		})
		return
	}

	contact := &models.Contact{
		ID:      uuid.New().String(),
		Name:    form.Name,
		Email:   form.Email,
		Phone:   form.Phone,
		Subject: form.Subject,
		Message: form.Message,
		IsRead:  false,
	}

	if err := h.contactRepo.Create(r.Context(), contact); err != nil {
		log.Printf("ContactHandler.Submit: Gagal menyimpan pesan kontak: %v", err)
		h.render.JSON(w, catalog.HTTPStatus(err), Response{
			Status:  "error",
			Message: "Gagal mengirim pesan. Silakan coba lagi atau hubungi kami via WhatsApp.",
		})
		return
	}

	h.render.JSON(w, http.StatusCreated, Response{
		Status:  "success",
		Message: "Pesan Anda berhasil dikirim. Kami akan segera menghubungi Anda.",
	})
}
