package services

import (
	"errors"
	"testing"
	"time"

	"optifind/model"
)

const (
	kategoriElektronik = 1
	kategoriDompet     = 2
	kategoriKunci      = 3
)

func TestSearchFreeText(t *testing.T) {
	db := newTestDB(t)

	rows := []model.Barang{
		{Nama: "Dompet Hitam", Type: model.TypeLost, KategoriID: kategoriDompet, StatusID: model.StatusBelumDitemukan, Lokasi: "Perpustakaan"},
		{Nama: "Kunci Motor", Type: model.TypeLost, KategoriID: kategoriKunci, StatusID: model.StatusBelumDitemukan, Lokasi: "Kantin"},
		{Nama: "Laptop", Type: model.TypeFound, KategoriID: kategoriElektronik, StatusID: model.StatusBelumDikembalikan, Lokasi: "Lab Komputer"},
	}
	if err := db.Create(&rows).Error; err != nil {
		t.Fatalf("seed barang: %v", err)
	}

	cases := []struct {
		q    string
		want []string
	}{
		{"DOMPET", []string{"Dompet Hitam"}},       // name, case-insensitive
		{"kantin", []string{"Kunci Motor"}},        // lokasi
		{"elektronik", []string{"Laptop"}},         // kategori name
		{"xyz", nil},                               // no match anywhere
		{"", []string{"Dompet Hitam", "Kunci Motor", "Laptop"}},
	}
	for _, tc := range cases {
		got, err := SearchBarangs(db, tc.q, nil)
		if err != nil {
			t.Fatalf("SearchBarangs(%q): %v", tc.q, err)
		}
		if len(got) != len(tc.want) {
			t.Errorf("SearchBarangs(%q): got %d results, want %d", tc.q, len(got), len(tc.want))
			continue
		}
		names := make(map[string]bool, len(got))
		for _, r := range got {
			names[r.Nama] = true
		}
		for _, want := range tc.want {
			if !names[want] {
				t.Errorf("SearchBarangs(%q): missing %q", tc.q, want)
			}
		}
	}
}

func TestSearchTypeAndStagePredicates(t *testing.T) {
	db := newTestDB(t)

	rows := []model.Barang{
		{Nama: "Payung", Type: model.TypeFound, KategoriID: kategoriElektronik, StatusID: model.StatusBelumDikembalikan},
		{Nama: "Jam Tangan", Type: model.TypeFound, KategoriID: kategoriElektronik, StatusID: model.StatusSudahDikembalikan},
		{Nama: "Dompet Coklat", Type: model.TypeLost, KategoriID: kategoriDompet, StatusID: model.StatusBelumDitemukan},
		{Nama: "Kartu Mahasiswa", Type: model.TypeLost, KategoriID: kategoriDompet, StatusID: model.StatusSudahDitemukan},
	}
	if err := db.Create(&rows).Error; err != nil {
		t.Fatalf("seed barang: %v", err)
	}

	found, err := SearchBarangs(db, "", nil, TypeIs("FOUND"), StageFor("FOUND"))
	if err != nil {
		t.Fatalf("SearchBarangs(found): %v", err)
	}
	if len(found) != 1 || found[0].Nama != "Payung" {
		t.Errorf("found listing: got %+v, want only Payung", found)
	}
	for _, r := range found {
		if r.Type != model.TypeFound || r.Status.ID != model.StatusBelumDikembalikan {
			t.Errorf("found listing leaked %q with type %q status %d", r.Nama, r.Type, r.Status.ID)
		}
	}

	lost, err := SearchBarangs(db, "", nil, TypeIs("lost"), StageFor("lost"))
	if err != nil {
		t.Fatalf("SearchBarangs(lost): %v", err)
	}
	if len(lost) != 1 || lost[0].Nama != "Dompet Coklat" {
		t.Errorf("lost listing: got %+v, want only Dompet Coklat", lost)
	}
}

func TestSearchCategoryFilter(t *testing.T) {
	db := newTestDB(t)

	rows := []model.Barang{
		{Nama: "Charger", Type: model.TypeFound, KategoriID: kategoriElektronik, StatusID: model.StatusBelumDikembalikan},
		{Nama: "Dompet Merah", Type: model.TypeLost, KategoriID: kategoriDompet, StatusID: model.StatusBelumDitemukan},
		{Nama: "Kunci Kos", Type: model.TypeLost, KategoriID: kategoriKunci, StatusID: model.StatusBelumDitemukan},
	}
	if err := db.Create(&rows).Error; err != nil {
		t.Fatalf("seed barang: %v", err)
	}

	got, err := SearchBarangs(db, "", []int{kategoriDompet, kategoriKunci})
	if err != nil {
		t.Fatalf("SearchBarangs: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("category filter: got %d results, want 2", len(got))
	}
	for _, r := range got {
		if r.Kategori.ID != kategoriDompet && r.Kategori.ID != kategoriKunci {
			t.Errorf("category filter leaked kategori %d", r.Kategori.ID)
		}
	}

	// Nonexistent id: empty result, not an error.
	none, err := SearchBarangs(db, "", []int{999})
	if err != nil {
		t.Fatalf("SearchBarangs(999): %v", err)
	}
	if len(none) != 0 {
		t.Errorf("unknown category: got %d results, want 0", len(none))
	}

	// Empty set means no narrowing.
	all, err := SearchBarangs(db, "", nil)
	if err != nil {
		t.Fatalf("SearchBarangs(nil): %v", err)
	}
	if len(all) != 3 {
		t.Errorf("no category filter: got %d results, want 3", len(all))
	}
}

func TestSearchOrdering(t *testing.T) {
	db := newTestDB(t)

	older := time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC)
	newer := time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC)
	rows := []model.Barang{
		{Nama: "Tanpa Tanggal", Type: model.TypeLost, KategoriID: kategoriDompet, StatusID: model.StatusBelumDitemukan},
		{Nama: "Januari", Type: model.TypeLost, KategoriID: kategoriDompet, StatusID: model.StatusBelumDitemukan, Tanggal: &older},
		{Nama: "Maret", Type: model.TypeLost, KategoriID: kategoriDompet, StatusID: model.StatusBelumDitemukan, Tanggal: &newer},
	}
	if err := db.Create(&rows).Error; err != nil {
		t.Fatalf("seed barang: %v", err)
	}

	got, err := SearchBarangs(db, "", nil)
	if err != nil {
		t.Fatalf("SearchBarangs: %v", err)
	}
	want := []string{"Maret", "Januari", "Tanpa Tanggal"}
	if len(got) != len(want) {
		t.Fatalf("got %d results, want %d", len(got), len(want))
	}
	for i, nama := range want {
		if got[i].Nama != nama {
			t.Errorf("position %d: got %q, want %q", i, got[i].Nama, nama)
		}
	}
}

func TestCreateAndGetRoundTrip(t *testing.T) {
	db := newTestDB(t)
	reporter := seedUser(t, db, "budi", model.RoleUser)

	when := time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)
	reporterID := reporter.UserID
	barang := model.Barang{
		Nama:       "Dompet Hitam",
		Type:       "LOST",
		KategoriID: kategoriDompet,
		UserID:     &reporterID,
		Tanggal:    &when,
		Lokasi:     "Gedung A",
		Kontak:     "0812000000",
		Deskripsi:  "Dompet kulit warna hitam",
	}
	if err := CreateBarang(db, &barang); err != nil {
		t.Fatalf("CreateBarang: %v", err)
	}
	if barang.BarangID == 0 {
		t.Fatal("CreateBarang did not assign an id")
	}

	got, err := GetBarangByID(db, barang.BarangID)
	if err != nil {
		t.Fatalf("GetBarangByID: %v", err)
	}
	resp := ToBarangResponse(got)
	if resp.Nama != "Dompet Hitam" || resp.Type != model.TypeLost {
		t.Errorf("round trip mismatch: %+v", resp)
	}
	if resp.Status.ID != model.StatusBelumDitemukan || resp.Status.Nama != "Belum Ditemukan" {
		t.Errorf("default status: got %+v, want Belum Ditemukan", resp.Status)
	}
	if resp.Pelapor == nil || resp.Pelapor.Username != "budi" {
		t.Errorf("pelapor: got %+v, want budi", resp.Pelapor)
	}
	if resp.Lokasi != "Gedung A" || resp.Kontak != "0812000000" {
		t.Errorf("fields not persisted: %+v", resp)
	}
}

func TestUpdateBarangDoesNotTouchStatus(t *testing.T) {
	db := newTestDB(t)

	barang := model.Barang{Nama: "Tas", Type: model.TypeLost, KategoriID: kategoriDompet, StatusID: model.StatusBelumDitemukan}
	if err := db.Create(&barang).Error; err != nil {
		t.Fatalf("seed barang: %v", err)
	}

	updated, err := UpdateBarang(db, barang.BarangID, map[string]interface{}{
		"nama":      "Tas Ransel",
		"status_id": model.StatusSudahDitemukan,
	})
	if err != nil {
		t.Fatalf("UpdateBarang: %v", err)
	}
	if updated.Nama != "Tas Ransel" {
		t.Errorf("nama: got %q, want Tas Ransel", updated.Nama)
	}
	if updated.StatusID != model.StatusBelumDitemukan {
		t.Errorf("status changed through generic update: got %d", updated.StatusID)
	}
}

func TestUpdateBarangTypeChangeRemapsStatus(t *testing.T) {
	db := newTestDB(t)

	pending := model.Barang{Nama: "Payung", Type: model.TypeLost, KategoriID: kategoriDompet, StatusID: model.StatusBelumDitemukan}
	if err := db.Create(&pending).Error; err != nil {
		t.Fatalf("seed barang: %v", err)
	}

	updated, err := UpdateBarang(db, pending.BarangID, map[string]interface{}{
		"nama": "Payung", "type": model.TypeFound, "kategori_id": kategoriDompet,
	})
	if err != nil {
		t.Fatalf("UpdateBarang: %v", err)
	}
	if updated.StatusID != model.StatusBelumDikembalikan {
		t.Errorf("pending lost -> found: status %d, want %d", updated.StatusID, model.StatusBelumDikembalikan)
	}
	// The item must still be resolvable through the strict rules.
	if target, err := ResolveTarget(updated); err != nil || target != model.StatusSudahDikembalikan {
		t.Errorf("resolve after type flip: got (%d, %v), want (%d, nil)", target, err, model.StatusSudahDikembalikan)
	}

	resolved := model.Barang{Nama: "Jam", Type: model.TypeFound, KategoriID: kategoriDompet, StatusID: model.StatusSudahDikembalikan}
	if err := db.Create(&resolved).Error; err != nil {
		t.Fatalf("seed barang: %v", err)
	}
	updated, err = UpdateBarang(db, resolved.BarangID, map[string]interface{}{
		"nama": "Jam", "type": model.TypeLost, "kategori_id": kategoriDompet,
	})
	if err != nil {
		t.Fatalf("UpdateBarang: %v", err)
	}
	if updated.StatusID != model.StatusSudahDitemukan {
		t.Errorf("resolved found -> lost: status %d, want %d", updated.StatusID, model.StatusSudahDitemukan)
	}
}

func TestUpdateAndDeleteNotFound(t *testing.T) {
	db := newTestDB(t)

	if _, err := UpdateBarang(db, 12345, map[string]interface{}{"nama": "x"}); !errors.Is(err, ErrBarangNotFound) {
		t.Errorf("UpdateBarang on missing row: got %v, want ErrBarangNotFound", err)
	}
	if err := DeleteBarang(db, 12345); !errors.Is(err, ErrBarangNotFound) {
		t.Errorf("DeleteBarang on missing row: got %v, want ErrBarangNotFound", err)
	}
	if _, err := GetBarangByID(db, 12345); !errors.Is(err, ErrBarangNotFound) {
		t.Errorf("GetBarangByID on missing row: got %v, want ErrBarangNotFound", err)
	}
}

func TestToBarangResponseMissingRelations(t *testing.T) {
	db := newTestDB(t)

	// kategori 999 does not exist and there is no reporter.
	barang := model.Barang{Nama: "Misterius", Type: model.TypeLost, KategoriID: 999, StatusID: model.StatusBelumDitemukan}
	if err := db.Create(&barang).Error; err != nil {
		t.Fatalf("seed barang: %v", err)
	}

	got, err := GetBarangByID(db, barang.BarangID)
	if err != nil {
		t.Fatalf("GetBarangByID: %v", err)
	}
	resp := ToBarangResponse(got)
	if resp.Kategori.Nama != UnknownRelation {
		t.Errorf("missing kategori: got %q, want %q", resp.Kategori.Nama, UnknownRelation)
	}
	if resp.Pelapor != nil {
		t.Errorf("missing reporter: got %+v, want nil", resp.Pelapor)
	}
}

func TestSanitizeFotoURL(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"/uploads/foto.jpg", "/uploads/foto.jpg"},
		{"https://cdn.example.com/foto.jpg", "https://cdn.example.com/foto.jpg"},
		{"http://cdn.example.com/foto.jpg", "http://cdn.example.com/foto.jpg"},
		{"ftp://cdn.example.com/foto.jpg", ""},
		{"javascript:alert(1)", ""},
		{"foto.jpg", ""},
	}
	for _, tc := range cases {
		if got := SanitizeFotoURL(tc.in); got != tc.want {
			t.Errorf("SanitizeFotoURL(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
