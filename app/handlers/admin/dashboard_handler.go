package admin

import (
	"context"
	"log"
	"net/http"
	"sync"
)

// DashboardStats adalah agregat lima hitungan panel admin.
type DashboardStats struct {
	Beaches        int64 `json:"beaches"`
	Articles       int64 `json:"articles"`
	Products       int64 `json:"products"`
	Services       int64 `json:"services"`
	UnreadContacts int64 `json:"unread_contacts"`
}

// GetDashboard menjalankan kelima query hitung secara paralel. Cabang yang
// gagal diturunkan ke nol dan dicatat, bukan menggagalkan seluruh agregat.
func (h *AdminHandler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var stats DashboardStats
	var wg sync.WaitGroup

	count := func(dst *int64, name string, fn func(context.Context) (int64, error)) {
		defer wg.Done()
		n, err := fn(ctx)
		if err != nil {
			log.Printf("GetDashboard: Gagal menghitung %s: %v", name, err)
			return
		}
		*dst = n
	}

	wg.Add(5)
	go count(&stats.Beaches, "pantai", h.beachRepo.Count)
	go count(&stats.Articles, "artikel", h.articleRepo.Count)
	go count(&stats.Products, "produk", h.productRepo.Count)
	go count(&stats.Services, "layanan", h.serviceRepo.Count)
	go count(&stats.UnreadContacts, "pesan belum dibaca", h.contactRepo.CountUnread)
	wg.Wait()

	h.success(w, http.StatusOK, "", map[string]interface{}{"stats": stats})
}
