package handlers

import (
	"log"
	"net/http"

	"github.com/pesonapantai/go-wisata/app/catalog"
	"github.com/pesonapantai/go-wisata/app/models"
	"github.com/pesonapantai/go-wisata/app/repositories"
	"github.com/pesonapantai/go-wisata/app/utils/format"
	"github.com/pesonapantai/go-wisata/app/utils/whatsapp"
	"github.com/unrolled/render"
)

type ShopHandler struct {
	render       *render.Render
	productRepo  repositories.ProductRepositoryImpl
	serviceRepo  repositories.ServiceRepositoryImpl
	categoryRepo repositories.CategoryRepositoryImpl
}

func NewShopHandler(r *render.Render, productRepo repositories.ProductRepositoryImpl, serviceRepo repositories.ServiceRepositoryImpl, categoryRepo repositories.CategoryRepositoryImpl) *ShopHandler {
	return &ShopHandler{render: r, productRepo: productRepo, serviceRepo: serviceRepo, categoryRepo: categoryRepo}
}

// ProductView menambah field turunan yang dibutuhkan katalog: harga tampilan
// dan deep link pemesanan WhatsApp.
type ProductView struct {
	models.Product
	DisplayPrice string `json:"display_price"`
	WhatsappURL  string `json:"whatsapp_url"`
}

type ServiceView struct {
	models.Service
	WhatsappURL string `json:"whatsapp_url"`
}

func (h *ShopHandler) Products(w http.ResponseWriter, r *http.Request) {
	products, err := h.productRepo.GetAvailable(r.Context())
	if err != nil {
		log.Printf("ShopHandler.Products: Gagal mengambil daftar produk: %v", err)
		h.render.JSON(w, catalog.HTTPStatus(err), Response{Status: "error", Message: catalog.UserMessage(err)})
		return
	}

	query := r.URL.Query().Get("q")
	categoryID := r.URL.Query().Get("kategori")
	filtered := catalog.Filter(products,
		func(p models.Product) bool {
			return catalog.MatchesText(query, p.Name, p.Description)
		},
		func(p models.Product) bool {
			if categoryID == "" {
				return true
			}
			return p.CategoryID != nil && *p.CategoryID == categoryID
		},
	)

	views := make([]ProductView, 0, len(filtered))
	for _, p := range filtered {
		displayPrice := format.DisplayPrice(p.PriceText, p.Price)
		views = append(views, ProductView{
			Product:      p,
			DisplayPrice: displayPrice,
			WhatsappURL:  whatsapp.Link(p.WhatsappNumber, whatsapp.ProductOrderMessage(p.Name, displayPrice)),
		})
	}

	categories, err := h.categoryRepo.GetByType(r.Context(), models.CategoryTypeProduct)
	if err != nil {
		log.Printf("ShopHandler.Products: Gagal mengambil kategori produk: %v", err)
		categories = []models.Category{}
	}

	h.render.JSON(w, http.StatusOK, Response{Status: "success", Data: map[string]interface{}{
		"products":   views,
		"categories": categories,
		"total":      len(views),
	}})
}

// Services menyaring per tab jenis layanan (brilink/rental); tanpa tab
// semua layanan tersedia ikut.
func (h *ShopHandler) Services(w http.ResponseWriter, r *http.Request) {
	services, err := h.serviceRepo.GetAvailable(r.Context())
	if err != nil {
		log.Printf("ShopHandler.Services: Gagal mengambil daftar layanan: %v", err)
		h.render.JSON(w, catalog.HTTPStatus(err), Response{Status: "error", Message: catalog.UserMessage(err)})
		return
	}

	query := r.URL.Query().Get("q")
	tab := r.URL.Query().Get("tab")
	filtered := catalog.Filter(services,
		func(s models.Service) bool {
			return catalog.MatchesText(query, s.Name, s.Location)
		},
		func(s models.Service) bool {
			if tab == "" {
				return true
			}
			return string(s.ServiceType) == tab
		},
	)

	views := make([]ServiceView, 0, len(filtered))
	for _, s := range filtered {
		views = append(views, ServiceView{
			Service:     s,
			WhatsappURL: whatsapp.Link(s.WhatsappNumber, whatsapp.ServiceContactMessage(s.Name)),
		})
	}

	h.render.JSON(w, http.StatusOK, Response{Status: "success", Data: map[string]interface{}{
		"services": views,
		"total":    len(views),
	}})
}
