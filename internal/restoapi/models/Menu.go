package models

import (
	"github.com/shopspring/decimal"
)

type MenuItem struct {
	ID         int                 `json:"id"`
	Nama       string              `json:"nama"`
	Kategori   string              `json:"kategori"`
	Deskripsi  string              `json:"deskripsi"`
	Harga      decimal.Decimal     `json:"harga"`
	HargaFinal decimal.NullDecimal `json:"harga_final"`
	Tersedia   bool                `json:"tersedia"`
	Gambar     string              `json:"gambar"`
}

// Price prefers the server computed final (discounted) price over the listed one.
func (m *MenuItem) Price() decimal.Decimal {
	if m.HargaFinal.Valid {
		return m.HargaFinal.Decimal
	}
	return m.Harga
}

// MenuPage is a Laravel length-aware paginator page.
type MenuPage struct {
	Data        []*MenuItem `json:"data"`
	CurrentPage int         `json:"current_page"`
	LastPage    int         `json:"last_page"`
	PerPage     int         `json:"per_page"`
	Total       int         `json:"total"`
}
