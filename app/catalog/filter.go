package catalog

import "strings"

// MatchesText mencocokkan substring tanpa memedulikan huruf besar/kecil
// terhadap salah satu field. Query kosong selalu cocok.
func MatchesText(query string, fields ...string) bool {
	if query == "" {
		return true
	}
	query = strings.ToLower(query)
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), query) {
			return true
		}
	}
	return false
}

// Filter menyaring baris yang sudah diambil di memori; hasilnya selalu
// subset dari masukan dan memenuhi semua predikat.
func Filter[T any](rows []T, preds ...func(T) bool) []T {
	filtered := make([]T, 0, len(rows))
row:
	for _, r := range rows {
		for _, p := range preds {
			if !p(r) {
				continue row
			}
		}
		filtered = append(filtered, r)
	}
	return filtered
}
