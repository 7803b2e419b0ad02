package seeders

import (
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/pesonapantai/go-wisata/app/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Seed mengisi konten contoh. Dilewati bila sudah ada data pantai supaya
// aman dijalankan berulang.
func Seed(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Beach{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Println("Seeder: data sudah ada, dilewati")
		return nil
	}

	articleCategory := models.Category{
		ID:   uuid.New().String(),
		Name: "Tips Wisata",
		Slug: "tips-wisata",
		Type: models.CategoryTypeArticle,
	}
	productCategory := models.Category{
		ID:   uuid.New().String(),
		Name: "Oleh-Oleh",
		Slug: "oleh-oleh",
		Type: models.CategoryTypeProduct,
	}
	if err := db.Create([]*models.Category{&articleCategory, &productCategory}).Error; err != nil {
		return err
	}

	beaches := []models.Beach{
		{
			ID:               uuid.New().String(),
			Name:             "Pantai Balekambang",
			Slug:             "balekambang",
			ShortDescription: "Pantai dengan pura di atas pulau karang, sering disebut Tanah Lot-nya Jawa Timur.",
			Location:         "Bantur, Kabupaten Malang",
			Facilities:       models.StringList{"Area parkir", "Warung makan", "Toilet", "Mushola"},
			TicketPrice:      "Rp 15.000",
			OpeningHours:     "24 jam",
			IsFeatured:       true,
		},
		{
			ID:               uuid.New().String(),
			Name:             "Pantai Tiga Warna",
			Slug:             "tiga-warna",
			ShortDescription: "Pantai konservasi dengan gradasi tiga warna air laut, wajib reservasi.",
			Location:         "Sumbermanjing Wetan, Kabupaten Malang",
			Facilities:       models.StringList{"Pemandu", "Penyewaan snorkel", "Area konservasi"},
			TicketPrice:      "Rp 10.000",
			OpeningHours:     "06.00 - 16.00",
			IsFeatured:       true,
		},
	}
	if err := db.Create(&beaches).Error; err != nil {
		return err
	}

	now := time.Now()
	articles := []models.Article{
		{
			ID:          uuid.New().String(),
			Title:       "Tips Aman Berenang di Pantai Selatan",
			Slug:        "tips-aman-berenang-di-pantai-selatan",
			Excerpt:     "Kenali rip current dan zona aman sebelum berenang.",
			Content:     "Ombak pantai selatan terkenal kuat. Perhatikan bendera peringatan...",
			Status:      models.ArticleStatusPublished,
			PublishedAt: &now,
			CategoryID:  &articleCategory.ID,
		},
	}
	if err := db.Create(&articles).Error; err != nil {
		return err
	}

	price := decimal.NewFromInt(25000)
	products := []models.Product{
		{
			ID:          uuid.New().String(),
			Name:        "Keripik Singkong Pedas",
			Slug:        "keripik-singkong-pedas",
			Description: "Oleh-oleh khas Malang Selatan, dibuat warga lokal.",
			Price:       &price,
			CategoryID:  &productCategory.ID,
			IsAvailable: true,
		},
	}
	if err := db.Create(&products).Error; err != nil {
		return err
	}

	services := []models.Service{
		{
			ID:              uuid.New().String(),
			Name:            "BRILink Bu Siti",
			Slug:            "brilink-bu-siti",
			ServiceType:     models.ServiceTypeBrilink,
			Location:        "Desa Srigonco",
			OpeningHours:    "08.00 - 20.00",
			ServicesOffered: models.StringList{"Tarik tunai", "Transfer", "Bayar listrik"},
			IsAvailable:     true,
			IsFeatured:      true,
		},
		{
			ID:              uuid.New().String(),
			Name:            "Rental Motor Pantai",
			Slug:            "rental-motor-pantai",
			ServiceType:     models.ServiceTypeRental,
			Location:        "Dekat gerbang Balekambang",
			OpeningHours:    "07.00 - 18.00",
			ServicesOffered: models.StringList{"Motor matic", "Helm", "Antar jemput"},
			IsAvailable:     true,
		},
	}
	if err := db.Create(&services).Error; err != nil {
		return err
	}

	settings := map[string]string{
		"site_name":       "Pesona Pantai Malang Selatan",
		"contact_email":   "info@pesonapantai.example",
		"contact_phone":   "0341-000000",
		"whatsapp_number": "6281234567890",
		"address":         "Kabupaten Malang, Jawa Timur",
	}
	for key, value := range settings {
		setting := models.SiteSetting{ID: uuid.New().String(), Key: key, Value: value}
		if err := db.Create(&setting).Error; err != nil {
			return err
		}
	}

	log.Printf("Seeder: %d pantai, %d artikel, %d produk, %d layanan dibuat", len(beaches), len(articles), len(products), len(services))
	return nil
}
