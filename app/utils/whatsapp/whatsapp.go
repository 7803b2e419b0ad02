package whatsapp

import (
	"fmt"
	"net/url"
	"strings"
)

const (
	// DefaultNumber dipakai saat resource tidak menyimpan nomor sendiri.
	DefaultNumber   = "6281234567890"
	DefaultGreeting = "Halo, saya tertarik dengan informasi wisata Pantai Malang Selatan"
)

// Link membangun deep link wa.me dari nomor internasional dan pesan yang
// di-percent-encode.
func Link(number, message string) string {
	if number == "" {
		number = DefaultNumber
	}
	if message == "" {
		message = DefaultGreeting
	}
	text := url.QueryEscape(message)
	text = strings.ReplaceAll(text, "+", "%20")
	return fmt.Sprintf("https://wa.me/%s?text=%s", number, text)
}

// ProductOrderMessage mengisi template pesanan produk dengan nama dan harga
// yang sudah diformat untuk tampilan.
func ProductOrderMessage(name, displayPrice string) string {
	return fmt.Sprintf("Halo, saya tertarik dengan produk:\n\n*%s*\n%s\n\nApakah masih tersedia?", name, displayPrice)
}

// ServiceContactMessage mengisi template pertanyaan layanan.
func ServiceContactMessage(name string) string {
	return fmt.Sprintf("Halo, saya ingin bertanya tentang layanan *%s*", name)
}
