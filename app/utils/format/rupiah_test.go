package format

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestRupiah(t *testing.T) {
	assert.Equal(t, "Rp 150.000", Rupiah(decimal.NewFromInt(150000)))
	assert.Equal(t, "Rp 500", Rupiah(decimal.NewFromInt(500)))
}

func TestDisplayPrice(t *testing.T) {
	price := decimal.NewFromInt(25000)
	zero := decimal.NewFromInt(0)

	// price_text menang atas harga numerik
	assert.Equal(t, "Mulai Rp 20rb", DisplayPrice("Mulai Rp 20rb", &price))
	assert.Equal(t, "Rp 25.000", DisplayPrice("", &price))
	assert.Equal(t, FallbackPriceLabel, DisplayPrice("", nil))
	assert.Equal(t, FallbackPriceLabel, DisplayPrice("", &zero))
}
