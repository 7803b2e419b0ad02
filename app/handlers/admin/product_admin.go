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

type ProductForm struct {
	Name           string `validate:"required,min=2,max=255"`
	Slug           string
	Description    string
	Price          string
	PriceText      string
	FeaturedImage  string
	Images         string
	WhatsappNumber string
	CategoryID     string
	IsAvailable    bool
	IsFeatured     bool
}

func parseProductForm(r *http.Request) ProductForm {
	return ProductForm{
		Name:           r.PostFormValue("name"),
		Slug:           r.PostFormValue("slug"),
		Description:    r.PostFormValue("description"),
		Price:          r.PostFormValue("price"),
		PriceText:      r.PostFormValue("price_text"),
		FeaturedImage:  r.PostFormValue("featured_image"),
		Images:         r.PostFormValue("images"),
		WhatsappNumber: r.PostFormValue("whatsapp_number"),
		CategoryID:     r.PostFormValue("category_id"),
		IsAvailable:    r.PostFormValue("is_available") == "on" || r.PostFormValue("is_available") == "true",
		IsFeatured:     r.PostFormValue("is_featured") == "on" || r.PostFormValue("is_featured") == "true",
	}
}

func (f ProductForm) apply(product *models.Product) {
	product.Name = f.Name
	product.Slug = helpers.DeriveSlug(f.Slug, f.Name)
	product.Description = f.Description
	product.Price = helpers.ParseNullDecimal(f.Price)
	product.PriceText = f.PriceText
	product.FeaturedImage = f.FeaturedImage
	product.Images = helpers.SplitLines(f.Images)
	product.WhatsappNumber = f.WhatsappNumber
	product.CategoryID = helpers.NullableID(f.CategoryID)
	product.IsAvailable = f.IsAvailable
	product.IsFeatured = f.IsFeatured
}

func (h *AdminHandler) GetProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.productRepo.GetAll(r.Context())
	if err != nil {
		log.Printf("GetProducts: Gagal mengambil daftar produk: %v", err)
		h.fail(w, err)
		return
	}

	categories, err := h.categoryRepo.GetByType(r.Context(), models.CategoryTypeProduct)
	if err != nil {
		log.Printf("GetProducts: Gagal mengambil kategori produk: %v", err)
		categories = []models.Category{}
	}

	h.success(w, http.StatusOK, "", map[string]interface{}{
		"products":   products,
		"categories": categories,
	})
}

func (h *AdminHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		log.Printf("CreateProduct: Kesalahan parsing form: %v", err)
		h.render.JSON(w, http.StatusBadRequest, response{Status: "error", Message: "Kesalahan parsing form."})
		return
	}

	form := parseProductForm(r)
	if err := h.validator.Struct(&form); err != nil {
		h.failValidation(w, helpers.FormatValidationErrors(err.(validator.ValidationErrors)))
		return
	}

	product := &models.Product{ID: uuid.New().String()}
	form.apply(product)

	if err := h.productRepo.Create(r.Context(), product); err != nil {
		log.Printf("CreateProduct: Gagal menambahkan produk: %v", err)
		h.fail(w, err)
		return
	}

	h.success(w, http.StatusCreated, "Produk berhasil ditambahkan!", map[string]interface{}{"product": product})
}

func (h *AdminHandler) EditProduct(w http.ResponseWriter, r *http.Request) {
	productID := mux.Vars(r)["id"]

	product, err := h.productRepo.GetByID(r.Context(), productID)
	if err != nil {
		log.Printf("EditProduct: Error mencari produk %s: %v", productID, err)
		h.fail(w, err)
		return
	}
	if product == nil {
		h.notFound(w, "Produk tidak ditemukan.")
		return
	}

	if err := r.ParseForm(); err != nil {
		log.Printf("EditProduct: Kesalahan parsing form: %v", err)
		h.render.JSON(w, http.StatusBadRequest, response{Status: "error", Message: "Kesalahan parsing form."})
		return
	}

	form := parseProductForm(r)
	if err := h.validator.Struct(&form); err != nil {
		h.failValidation(w, helpers.FormatValidationErrors(err.(validator.ValidationErrors)))
		return
	}

	form.apply(product)

	if err := h.productRepo.Update(r.Context(), product); err != nil {
		log.Printf("EditProduct: Gagal memperbarui produk %s: %v", productID, err)
		h.fail(w, err)
		return
	}

	h.success(w, http.StatusOK, "Produk berhasil diperbarui!", map[string]interface{}{"product": product})
}

func (h *AdminHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	productID := mux.Vars(r)["id"]

	product, err := h.productRepo.GetByID(r.Context(), productID)
	if err != nil || product == nil {
		log.Printf("DeleteProduct: Produk %s tidak ditemukan untuk penghapusan: %v", productID, err)
		h.notFound(w, "Produk tidak ditemukan atau sudah dihapus.")
		return
	}

	if err := h.productRepo.Delete(r.Context(), productID); err != nil {
		log.Printf("DeleteProduct: Gagal menghapus produk %s: %v", productID, err)
		h.fail(w, err)
		return
	}

	h.success(w, http.StatusOK, "Produk berhasil dihapus!", nil)
}
