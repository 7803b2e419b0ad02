package whatsapp

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLinkDefaults(t *testing.T) {
	link := Link("", "")
	assert.True(t, strings.HasPrefix(link, "https://wa.me/"+DefaultNumber+"?text="))
	assert.NotContains(t, link, " ")
	assert.NotContains(t, link, "+")
	assert.Contains(t, link, "%20")
}

func TestLinkCustomNumberAndMessage(t *testing.T) {
	link := Link("628999000111", "Halo & selamat pagi")
	assert.Equal(t, "https://wa.me/628999000111?text=Halo%20%26%20selamat%20pagi", link)
}

func TestProductOrderMessage(t *testing.T) {
	msg := ProductOrderMessage("Keripik Singkong", "Rp 25.000")
	assert.Contains(t, msg, "*Keripik Singkong*")
	assert.Contains(t, msg, "Rp 25.000")
	assert.Contains(t, msg, "Apakah masih tersedia?")
}

func TestServiceContactMessage(t *testing.T) {
	assert.Equal(t, "Halo, saya ingin bertanya tentang layanan *BRILink Bu Siti*", ServiceContactMessage("BRILink Bu Siti"))
}
