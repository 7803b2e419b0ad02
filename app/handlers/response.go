package handlers

// Response adalah amplop JSON standar; padanan notifikasi toast di sisi
// klien.
type Response struct {
	Status  string            `json:"status"`
	Message string            `json:"message,omitempty"`
	Data    interface{}       `json:"data,omitempty"`
	Errors  map[string]string `json:"errors,omitempty"`
}

// NotFoundResponse adalah kondisi terminal yang diharapkan, bukan error:
// selalu membawa tautan kembali ke halaman daftar.
type NotFoundResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	BackURL string `json:"back_url"`
}
