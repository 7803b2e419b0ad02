package admin

import (
	"log"
	"net/http"

	"github.com/gorilla/mux"
)

func (h *AdminHandler) GetContacts(w http.ResponseWriter, r *http.Request) {
	contacts, err := h.contactRepo.GetAll(r.Context())
	if err != nil {
		log.Printf("GetContacts: Gagal mengambil daftar pesan: %v", err)
		h.fail(w, err)
		return
	}
	h.success(w, http.StatusOK, "", map[string]interface{}{"contacts": contacts})
}

func (h *AdminHandler) MarkContactRead(w http.ResponseWriter, r *http.Request) {
	contactID := mux.Vars(r)["id"]

	contact, err := h.contactRepo.GetByID(r.Context(), contactID)
	if err != nil || contact == nil {
		log.Printf("MarkContactRead: Pesan %s tidak ditemukan: %v", contactID, err)
		h.notFound(w, "Pesan tidak ditemukan.")
		return
	}

	if err := h.contactRepo.MarkRead(r.Context(), contactID); err != nil {
		log.Printf("MarkContactRead: Gagal menandai pesan %s: %v", contactID, err)
		h.fail(w, err)
		return
	}

	h.success(w, http.StatusOK, "Pesan ditandai sudah dibaca.", nil)
}
