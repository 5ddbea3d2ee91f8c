package services

import (
	"errors"
	"net/url"
	"sort"
	"strings"
	"time"

	"optifind/model"

	"gorm.io/gorm"
)

// Display value used when a joined kategori/status row is missing.
const UnknownRelation = "Tidak Diketahui"

type RelationResponse struct {
	ID   int    `json:"id"`
	Nama string `json:"nama"`
}

type PelaporResponse struct {
	UserID   int    `json:"user_id"`
	Name     string `json:"name"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Kontak   string `json:"kontak"`
}

// BarangResponse is the denormalized shape every read endpoint returns.
type BarangResponse struct {
	BarangID  int              `json:"barang_id"`
	Nama      string           `json:"nama"`
	Type      string           `json:"type"`
	Kategori  RelationResponse `json:"kategori"`
	Status    RelationResponse `json:"status"`
	Pelapor   *PelaporResponse `json:"pelapor"`
	Tanggal   *time.Time       `json:"tanggal"`
	Lokasi    string           `json:"lokasi"`
	Kontak    string           `json:"kontak"`
	Deskripsi string           `json:"deskripsi"`
	Foto      string           `json:"foto"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
}

func ToBarangResponse(b *model.Barang) BarangResponse {
	resp := BarangResponse{
		BarangID:  b.BarangID,
		Nama:      b.Nama,
		Type:      strings.ToLower(b.Type),
		Kategori:  RelationResponse{ID: b.KategoriID, Nama: UnknownRelation},
		Status:    RelationResponse{ID: b.StatusID, Nama: UnknownRelation},
		Tanggal:   b.Tanggal,
		Lokasi:    b.Lokasi,
		Kontak:    b.Kontak,
		Deskripsi: b.Deskripsi,
		Foto:      SanitizeFotoURL(b.Foto),
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
	if b.Kategori.Nama != "" {
		resp.Kategori.Nama = b.Kategori.Nama
	}
	if b.Status.Nama != "" {
		resp.Status.Nama = b.Status.Nama
	}
	if b.User != nil && b.User.UserID != 0 {
		resp.Pelapor = &PelaporResponse{
			UserID:   b.User.UserID,
			Name:     b.User.Name,
			Username: b.User.Username,
			Email:    b.User.Email,
			Kontak:   b.User.Kontak,
		}
	}
	return resp
}

// SanitizeFotoURL keeps only absolute URLs or root-relative paths.
// Anything else renders as "no photo".
func SanitizeFotoURL(raw string) string {
	if raw == "" {
		return ""
	}
	if strings.HasPrefix(raw, "/") {
		return raw
	}
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return ""
	}
	return raw
}

func GetBarangByID(db *gorm.DB, id int) (*model.Barang, error) {
	var barang model.Barang
	err := db.Preload("Kategori").Preload("Status").Preload("User").
		Where("barang_id = ?", id).First(&barang).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBarangNotFound
		}
		return nil, err
	}
	return &barang, nil
}

func CreateBarang(db *gorm.DB, barang *model.Barang) error {
	barang.Type = strings.ToLower(barang.Type)
	if barang.StatusID == 0 {
		barang.StatusID = InitialStatus(barang.Type)
	}
	barang.Foto = SanitizeFotoURL(barang.Foto)
	if err := db.Create(barang).Error; err != nil {
		return err
	}
	return db.Preload("Kategori").Preload("Status").Preload("User").
		Where("barang_id = ?", barang.BarangID).First(barang).Error
}

// UpdateBarang writes every editable field. status_id never comes from
// the caller: lifecycle changes go through SetBarangStatus, except
// that a type flip remaps the current stage into the new type's
// lifecycle so the item cannot strand with an impossible status.
func UpdateBarang(db *gorm.DB, id int, updates map[string]interface{}) (*model.Barang, error) {
	current, err := GetBarangByID(db, id)
	if err != nil {
		return nil, err
	}

	delete(updates, "status_id")
	if newType, ok := updates["type"].(string); ok && !strings.EqualFold(newType, current.Type) {
		updates["status_id"] = StatusForType(current.StatusID, newType)
	}
	if foto, ok := updates["foto"].(string); ok {
		updates["foto"] = SanitizeFotoURL(foto)
	}

	result := db.Model(&model.Barang{}).Where("barang_id = ?", id).Updates(updates)
	if result.Error != nil {
		return nil, result.Error
	}
	return GetBarangByID(db, id)
}

func DeleteBarang(db *gorm.DB, id int) error {
	result := db.Where("barang_id = ?", id).Delete(&model.Barang{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrBarangNotFound
	}
	return nil
}

func SetBarangStatus(db *gorm.DB, id int, statusID int) error {
	result := db.Model(&model.Barang{}).Where("barang_id = ?", id).
		Update("status_id", statusID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrBarangNotFound
	}
	return nil
}

// BarangPredicate is a single in-memory filter over a candidate row.
// Type and lifecycle-stage filtering are separate predicates that the
// endpoint composes, so each can be reasoned about (and tested) alone.
type BarangPredicate func(*model.Barang) bool

func TypeIs(itemType string) BarangPredicate {
	want := strings.ToLower(itemType)
	return func(b *model.Barang) bool {
		return strings.ToLower(b.Type) == want
	}
}

// StageFor keeps only items still open for the given listing: browsing
// "found" shows items not yet returned, browsing "lost" shows items
// not yet recovered.
func StageFor(itemType string) BarangPredicate {
	switch strings.ToLower(itemType) {
	case model.TypeFound:
		return func(b *model.Barang) bool {
			return b.StatusID == model.StatusBelumDikembalikan
		}
	case model.TypeLost:
		return func(b *model.Barang) bool {
			return b.StatusID == model.StatusBelumDitemukan
		}
	default:
		return func(*model.Barang) bool { return true }
	}
}

// MatchesQuery is the free-text filter: a case-insensitive substring
// match on nama, kategori nama, or lokasi. Empty queries match all.
func MatchesQuery(b *model.Barang, q string) bool {
	q = strings.ToLower(strings.TrimSpace(q))
	if q == "" {
		return true
	}
	return strings.Contains(strings.ToLower(b.Nama), q) ||
		strings.Contains(strings.ToLower(b.Kategori.Nama), q) ||
		strings.Contains(strings.ToLower(b.Lokasi), q)
}

// SearchBarangs narrows by kategori at the store, then applies the
// free-text match and any predicates in memory. Results are ordered by
// tanggal descending; rows without a tanggal sort last.
func SearchBarangs(db *gorm.DB, q string, kategoriIDs []int, preds ...BarangPredicate) ([]BarangResponse, error) {
	tx := db.Preload("Kategori").Preload("Status").Preload("User")
	if len(kategoriIDs) > 0 {
		tx = tx.Where("kategori_id IN ?", kategoriIDs)
	}
	var rows []model.Barang
	if err := tx.Find(&rows).Error; err != nil {
		return nil, err
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return occurredAt(&rows[i]).After(occurredAt(&rows[j]))
	})

	results := make([]BarangResponse, 0, len(rows))
next:
	for i := range rows {
		b := &rows[i]
		if !MatchesQuery(b, q) {
			continue
		}
		for _, pred := range preds {
			if !pred(b) {
				continue next
			}
		}
		results = append(results, ToBarangResponse(b))
	}
	return results, nil
}

func occurredAt(b *model.Barang) time.Time {
	if b.Tanggal == nil {
		return time.Unix(0, 0)
	}
	return *b.Tanggal
}
