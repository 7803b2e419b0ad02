package catalog

import (
	"context"
	"errors"
	"net/http"

	"gorm.io/gorm"
)

type Kind int

const (
	KindNotFound Kind = iota + 1
	KindValidation
	KindTransport
)

// Error membawa jenis kegagalan tertutup plus pesan yang bisa ditampilkan
// langsung ke pengguna.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

func NewValidation(message string, err error) *Error {
	return &Error{Kind: KindValidation, Message: message, Err: err}
}

func NewNotFound(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

// Translate memetakan error dari GORM ke taksonomi catalog. Pelanggaran
// constraint unik (slug duplikat) menjadi KindValidation supaya form admin
// tetap terbuka untuk dikoreksi; sisanya dianggap kegagalan transport.
func Translate(err error) error {
	if err == nil {
		return nil
	}
	var known *Error
	if errors.As(err, &known) {
		return err
	}
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return &Error{Kind: KindNotFound, Message: "Data tidak ditemukan.", Err: err}
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return &Error{Kind: KindValidation, Message: "Slug atau data unik sudah digunakan, gunakan yang lain.", Err: err}
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return &Error{Kind: KindTransport, Message: "Permintaan dibatalkan.", Err: err}
	default:
		return &Error{Kind: KindTransport, Message: "Terjadi kesalahan server.", Err: err}
	}
}

func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindTransport
}

// UserMessage mengambil pesan yang aman ditampilkan ke pengguna.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return "Terjadi kesalahan server."
}

func HTTPStatus(err error) int {
	switch KindOf(err) {
	case KindNotFound:
		return http.StatusNotFound
	case KindValidation:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusBadGateway
	}
}
