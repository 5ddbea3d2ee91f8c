package services

import (
	"optifind/model"
)

// CanModifyBarang reports whether the caller may mutate the given
// barang. Admins may touch any report; everyone else must be the
// reporter. A barang whose reporter account was deleted is owned by
// nobody, so only admins can still change it.
func CanModifyBarang(userID uint, role string, b *model.Barang) bool {
	if role == model.RoleAdmin {
		return true
	}
	if b.UserID == nil {
		return false
	}
	return *b.UserID == int(userID)
}
