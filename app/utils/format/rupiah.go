package format

import (
	"github.com/leekchan/accounting"
	"github.com/shopspring/decimal"
)

// FallbackPriceLabel tampil saat produk tidak punya harga maupun teks harga.
const FallbackPriceLabel = "Hubungi Kami"

var idr = accounting.Accounting{Symbol: "Rp ", Precision: 0, Thousand: ".", Decimal: ","}

func Rupiah(amount decimal.Decimal) string {
	return idr.FormatMoneyDecimal(amount)
}

// DisplayPrice: price_text menang bila diisi, lalu harga terformat, terakhir
// label fallback. Harga nol diperlakukan sama dengan tidak ada harga.
func DisplayPrice(priceText string, price *decimal.Decimal) string {
	if priceText != "" {
		return priceText
	}
	if price != nil && !price.IsZero() {
		return Rupiah(*price)
	}
	return FallbackPriceLabel
}
