// model/status.go
package model

// Fixed lifecycle states. Lost items move between 2 and 1,
// found items between 4 and 3.
const (
	StatusSudahDitemukan    = 1 // lost item recovered
	StatusBelumDitemukan    = 2 // lost item still missing (initial for "lost")
	StatusSudahDikembalikan = 3 // found item returned to its owner
	StatusBelumDikembalikan = 4 // found item awaiting pickup (initial for "found")
)

type Status struct {
	StatusID int    `gorm:"column:status_id;primaryKey"`
	Nama     string `gorm:"column:nama;type:varchar(100);not null"`
}

func (Status) TableName() string {
	return "status"
}
