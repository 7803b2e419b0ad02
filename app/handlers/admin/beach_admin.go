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

type BeachForm struct {
	Name             string `validate:"required,min=2,max=255"`
	Slug             string
	ShortDescription string
	Description      string
	Location         string
	Facilities       string
	FeaturedImage    string
	Images           string
	TicketPrice      string
	OpeningHours     string
	AccessInfo       string
	Tips             string
	MapEmbed         string
	IsFeatured       bool
}

func parseBeachForm(r *http.Request) BeachForm {
	return BeachForm{
		Name:             r.PostFormValue("name"),
		Slug:             r.PostFormValue("slug"),
		ShortDescription: r.PostFormValue("short_description"),
		Description:      r.PostFormValue("description"),
		Location:         r.PostFormValue("location"),
		Facilities:       r.PostFormValue("facilities"),
		FeaturedImage:    r.PostFormValue("featured_image"),
		Images:           r.PostFormValue("images"),
		TicketPrice:      r.PostFormValue("ticket_price"),
		OpeningHours:     r.PostFormValue("opening_hours"),
		AccessInfo:       r.PostFormValue("access_info"),
		Tips:             r.PostFormValue("tips"),
		MapEmbed:         r.PostFormValue("map_embed"),
		IsFeatured:       r.PostFormValue("is_featured") == "on" || r.PostFormValue("is_featured") == "true",
	}
}

func (f BeachForm) apply(beach *models.Beach) {
	beach.Name = f.Name
	beach.Slug = helpers.DeriveSlug(f.Slug, f.Name)
	beach.ShortDescription = f.ShortDescription
	beach.Description = f.Description
	beach.Location = f.Location
	beach.Facilities = helpers.SplitLines(f.Facilities)
	beach.FeaturedImage = f.FeaturedImage
	beach.Images = helpers.SplitLines(f.Images)
	beach.TicketPrice = f.TicketPrice
	beach.OpeningHours = f.OpeningHours
	beach.AccessInfo = f.AccessInfo
	beach.Tips = f.Tips
	beach.MapEmbed = f.MapEmbed
	beach.IsFeatured = f.IsFeatured
}

func (h *AdminHandler) GetBeaches(w http.ResponseWriter, r *http.Request) {
	beaches, err := h.beachRepo.GetAll(r.Context())
	if err != nil {
		log.Printf("GetBeaches: Gagal mengambil daftar pantai: %v", err)
		h.fail(w, err)
		return
	}
	h.success(w, http.StatusOK, "", map[string]interface{}{"beaches": beaches})
}

func (h *AdminHandler) CreateBeach(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		log.Printf("CreateBeach: Kesalahan parsing form: %v", err)
		h.render.JSON(w, http.StatusBadRequest, response{Status: "error", Message: "Kesalahan parsing form."})
		return
	}

	form := parseBeachForm(r)
	if err := h.validator.Struct(&form); err != nil {
		h.failValidation(w, helpers.FormatValidationErrors(err.(validator.ValidationErrors)))
		return
	}

	beach := &models.Beach{ID: uuid.New().String()}
	form.apply(beach)

	if err := h.beachRepo.Create(r.Context(), beach); err != nil {
		log.Printf("CreateBeach: Gagal menambahkan pantai: %v", err)
		h.fail(w, err)
		return
	}

	h.success(w, http.StatusCreated, "Pantai berhasil ditambahkan!", map[string]interface{}{"beach": beach})
}

func (h *AdminHandler) EditBeach(w http.ResponseWriter, r *http.Request) {
	beachID := mux.Vars(r)["id"]

	beach, err := h.beachRepo.GetByID(r.Context(), beachID)
	if err != nil {
		log.Printf("EditBeach: Error mencari pantai %s: %v", beachID, err)
		h.fail(w, err)
		return
	}
	if beach == nil {
		h.notFound(w, "Pantai tidak ditemukan.")
		return
	}

	if err := r.ParseForm(); err != nil {
		log.Printf("EditBeach: Kesalahan parsing form: %v", err)
		h.render.JSON(w, http.StatusBadRequest, response{Status: "error", Message: "Kesalahan parsing form."})
		return
	}

	form := parseBeachForm(r)
	if err := h.validator.Struct(&form); err != nil {
		h.failValidation(w, helpers.FormatValidationErrors(err.(validator.ValidationErrors)))
		return
	}

	form.apply(beach)

	if err := h.beachRepo.Update(r.Context(), beach); err != nil {
		log.Printf("EditBeach: Gagal memperbarui pantai %s: %v", beachID, err)
		h.fail(w, err)
		return
	}

	h.success(w, http.StatusOK, "Pantai berhasil diperbarui!", map[string]interface{}{"beach": beach})
}

func (h *AdminHandler) DeleteBeach(w http.ResponseWriter, r *http.Request) {
	beachID := mux.Vars(r)["id"]

	beach, err := h.beachRepo.GetByID(r.Context(), beachID)
	if err != nil || beach == nil {
		log.Printf("DeleteBeach: Pantai %s tidak ditemukan untuk penghapusan: %v", beachID, err)
		h.notFound(w, "Pantai tidak ditemukan atau sudah dihapus.")
		return
	}

	if err := h.beachRepo.Delete(r.Context(), beachID); err != nil {
		log.Printf("DeleteBeach: Gagal menghapus pantai %s: %v", beachID, err)
		h.fail(w, err)
		return
	}

	h.success(w, http.StatusOK, "Pantai berhasil dihapus!", nil)
}
