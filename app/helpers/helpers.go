package helpers

import (
	"fmt"
	"log"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
)

type contextKey string

const (
	ContextKeyUserID contextKey = "userID"
	ContextKeyUser   contextKey = "userObject"
)

var whitespaceRun = regexp.MustCompile(`\s+`)

// GenerateSlug menurunkan slug dari judul: huruf kecil, deretan spasi jadi
// satu tanda hubung. Tanda baca sengaja tidak dibuang; keunikan dijaga oleh
// unique index di database.
func GenerateSlug(title string) string {
	return whitespaceRun.ReplaceAllString(strings.ToLower(title), "-")
}

// DeriveSlug memakai slug eksplisit apa adanya bila diisi, selain itu
// menurunkannya dari judul.
func DeriveSlug(explicit, title string) string {
	if explicit != "" {
		return explicit
	}
	return GenerateSlug(title)
}

// ParseNullDecimal mengubah input teks harga menjadi desimal; kosong atau
// tidak bisa diparse disimpan sebagai NULL, bukan nol.
func ParseNullDecimal(s string) *decimal.Decimal {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		log.Printf("ParseNullDecimal: nilai '%s' tidak valid, disimpan sebagai NULL: %v", s, err)
		return nil
	}
	return &d
}

// SplitLines memecah isian textarea menjadi daftar berurutan, baris kosong
// dibuang.
func SplitLines(s string) []string {
	var items []string
	for _, line := range strings.Split(strings.ReplaceAll(s, "\r\n", "\n"), "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			items = append(items, line)
		}
	}
	return items
}

// NullableID mengubah isian select kosong menjadi NULL foreign key.
func NullableID(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func FormatValidationErrors(errs validator.ValidationErrors) map[string]string {
	errorMessages := make(map[string]string)
	for _, err := range errs {
		field := strings.ToLower(err.Field())
		switch err.Tag() {
		case "required":
			errorMessages[field] = fmt.Sprintf("%s wajib diisi.", err.Field())
		case "email":
			errorMessages[field] = fmt.Sprintf("%s harus berupa alamat email yang valid.", err.Field())
		case "oneof":
			errorMessages[field] = fmt.Sprintf("%s harus salah satu dari: %s.", err.Field(), err.Param())
		case "min":
			errorMessages[field] = fmt.Sprintf("%s minimal %s karakter/nilai.", err.Field(), err.Param())
		case "max":
			errorMessages[field] = fmt.Sprintf("%s maksimal %s karakter/nilai.", err.Field(), err.Param())
		default:
			errorMessages[field] = fmt.Sprintf("Validasi %s gagal pada field %s.", err.Tag(), err.Field())
		}
	}
	return errorMessages
}

func PasswordCompare(hashPass string, password []byte) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hashPass), password)
	if err != nil {
		log.Printf("PasswordCompare: password does not match or error: %v", err)
		return false
	}
	return true
}

func HashPassword(password string) string {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("Error hashing password: %v", err)
		return ""
	}
	return string(bytes)
}
