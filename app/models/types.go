package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// StringList menyimpan daftar string berurutan (fasilitas, gambar, layanan)
// sebagai kolom JSON text.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		l = StringList{}
	}
	b, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (l *StringList) Scan(src interface{}) error {
	if src == nil {
		*l = nil
		return nil
	}
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	default:
		return fmt.Errorf("StringList: tipe kolom tidak didukung: %T", src)
	}
}
