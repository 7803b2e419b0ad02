package helpers

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestGenerateSlug(t *testing.T) {
	cases := []struct {
		title string
		want  string
	}{
		{"Pantai Balekambang", "pantai-balekambang"},
		{"Pantai  Tiga   Warna", "pantai-tiga-warna"},
		{"SUDAH KAPITAL", "sudah-kapital"},
		{"tanpa spasi", "tanpa-spasi"},
		// tanda baca sengaja tidak dibuang
		{"Pantai Ngliyep!", "pantai-ngliyep!"},
	}

	for _, c := range cases {
		assert.Equal(t, c.want, GenerateSlug(c.title))
	}
}

func TestDeriveSlug(t *testing.T) {
	assert.Equal(t, "slug-manual", DeriveSlug("slug-manual", "Judul Panjang"))
	assert.Equal(t, "judul-panjang", DeriveSlug("", "Judul Panjang"))
}

func TestParseNullDecimal(t *testing.T) {
	assert.Nil(t, ParseNullDecimal(""))
	assert.Nil(t, ParseNullDecimal("   "))
	assert.Nil(t, ParseNullDecimal("bukan angka"))

	d := ParseNullDecimal("15000")
	if assert.NotNil(t, d) {
		assert.True(t, d.Equal(decimal.NewFromInt(15000)))
	}

	d = ParseNullDecimal(" 2500.50 ")
	if assert.NotNil(t, d) {
		assert.True(t, d.Equal(decimal.NewFromFloat(2500.50)))
	}
}

func TestSplitLines(t *testing.T) {
	assert.Equal(t, []string{"Parkir", "Toilet"}, SplitLines("Parkir\r\nToilet"))
	assert.Equal(t, []string{"Satu"}, SplitLines("\n  Satu  \n\n"))
	assert.Nil(t, SplitLines(""))
}

func TestNullableID(t *testing.T) {
	assert.Nil(t, NullableID(""))
	id := NullableID("abc")
	if assert.NotNil(t, id) {
		assert.Equal(t, "abc", *id)
	}
}
