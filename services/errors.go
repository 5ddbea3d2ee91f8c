package services

import (
	"errors"
)

var (
	ErrBarangNotFound  = errors.New("barang not found")
	ErrAlreadyResolved = errors.New("barang already resolved")
	ErrNotResolved     = errors.New("barang is not in a resolved state")
	ErrInvalidStatus   = errors.New("status does not belong to the barang type")
)
