package catalog

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Scope menyempitkan query (filter, order, preload) ala gorm scopes.
type Scope func(*gorm.DB) *gorm.DB

// Repository adalah inti CRUD generik yang dipakai semua koleksi konten.
// GetBySlug dan GetByID mengembalikan (nil, nil) saat data tidak ada:
// itu kondisi terminal yang wajar, bukan error.
type Repository[T any] struct {
	db *gorm.DB
}

func NewRepository[T any](db *gorm.DB) *Repository[T] {
	return &Repository[T]{db: db}
}

func (r *Repository[T]) DB() *gorm.DB { return r.db }

func (r *Repository[T]) List(ctx context.Context, scopes ...Scope) ([]T, error) {
	var rows []T
	q := r.db.WithContext(ctx).Model(new(T))
	for _, s := range scopes {
		q = s(q)
	}
	if err := q.Find(&rows).Error; err != nil {
		return nil, Translate(err)
	}
	return rows, nil
}

func (r *Repository[T]) GetBySlug(ctx context.Context, slug string, scopes ...Scope) (*T, error) {
	return r.getOne(ctx, "slug = ?", slug, scopes...)
}

func (r *Repository[T]) GetByID(ctx context.Context, id string, scopes ...Scope) (*T, error) {
	return r.getOne(ctx, "id = ?", id, scopes...)
}

func (r *Repository[T]) getOne(ctx context.Context, cond string, arg string, scopes ...Scope) (*T, error) {
	var row T
	q := r.db.WithContext(ctx).Model(new(T))
	for _, s := range scopes {
		q = s(q)
	}
	err := q.First(&row, cond, arg).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, Translate(err)
	}
	return &row, nil
}

// Create dan Save tidak ikut menulis baris relasi yang kebetulan sedang
// ter-preload; relasi dirujuk lewat kolom foreign key saja.
func (r *Repository[T]) Create(ctx context.Context, row *T) error {
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(row).Error; err != nil {
		return Translate(err)
	}
	return nil
}

func (r *Repository[T]) Save(ctx context.Context, row *T) error {
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Save(row).Error; err != nil {
		return Translate(err)
	}
	return nil
}

func (r *Repository[T]) Delete(ctx context.Context, id string) error {
	if err := r.db.WithContext(ctx).Delete(new(T), "id = ?", id).Error; err != nil {
		return Translate(err)
	}
	return nil
}

func (r *Repository[T]) Count(ctx context.Context, scopes ...Scope) (int64, error) {
	var total int64
	q := r.db.WithContext(ctx).Model(new(T))
	for _, s := range scopes {
		q = s(q)
	}
	if err := q.Count(&total).Error; err != nil {
		return 0, Translate(err)
	}
	return total, nil
}
