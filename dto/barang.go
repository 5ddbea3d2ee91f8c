package dto

import "time"

type CreateBarangRequest struct {
	Nama       string     `json:"nama" binding:"required"`
	Type       string     `json:"type" binding:"required,oneof=lost found"`
	KategoriID int        `json:"kategori_id" binding:"required"`
	StatusID   int        `json:"status_id" binding:"omitempty,oneof=1 2 3 4"`
	Tanggal    *time.Time `json:"tanggal"`
	Lokasi     string     `json:"lokasi"`
	Kontak     string     `json:"kontak"`
	Deskripsi  string     `json:"deskripsi"`
	Foto       string     `json:"foto"`
}

// Status is deliberately absent: status changes go through the
// resolve/status endpoints so lifecycle rules are always applied.
type UpdateBarangRequest struct {
	Nama       string     `json:"nama" binding:"required"`
	Type       string     `json:"type" binding:"required,oneof=lost found"`
	KategoriID int        `json:"kategori_id" binding:"required"`
	Tanggal    *time.Time `json:"tanggal"`
	Lokasi     string     `json:"lokasi"`
	Kontak     string     `json:"kontak"`
	Deskripsi  string     `json:"deskripsi"`
	Foto       string     `json:"foto"`
}

type ResolveBarangRequest struct {
	Revert bool `json:"revert"`
}

type SetStatusRequest struct {
	StatusID int `json:"status_id" binding:"required,oneof=1 2 3 4"`
}
