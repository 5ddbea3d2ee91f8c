package services

import (
	"strings"

	"optifind/model"
)

// InitialStatus is the state a fresh report starts in.
func InitialStatus(itemType string) int {
	if strings.ToLower(itemType) == model.TypeFound {
		return model.StatusBelumDikembalikan
	}
	return model.StatusBelumDitemukan
}

// ResolveTarget returns the state a barang moves to when its report is
// closed out: a found item gets returned, a lost item gets recovered.
// Fails if the barang is already in its resolved state.
func ResolveTarget(b *model.Barang) (int, error) {
	switch strings.ToLower(b.Type) {
	case model.TypeFound:
		if b.StatusID == model.StatusBelumDikembalikan {
			return model.StatusSudahDikembalikan, nil
		}
	case model.TypeLost:
		if b.StatusID == model.StatusBelumDitemukan {
			return model.StatusSudahDitemukan, nil
		}
	}
	return 0, ErrAlreadyResolved
}

// RevertTarget undoes a resolve, moving the barang back to its initial
// state. Fails if the barang was never resolved.
func RevertTarget(b *model.Barang) (int, error) {
	switch strings.ToLower(b.Type) {
	case model.TypeFound:
		if b.StatusID == model.StatusSudahDikembalikan {
			return model.StatusBelumDikembalikan, nil
		}
	case model.TypeLost:
		if b.StatusID == model.StatusSudahDitemukan {
			return model.StatusBelumDitemukan, nil
		}
	}
	return 0, ErrNotResolved
}

// StatusForType carries a lifecycle stage over to another type's
// lifecycle: pending stays pending, resolved stays resolved. Used when
// an edit flips an item's type so its status cannot strand in the old
// lifecycle.
func StatusForType(statusID int, itemType string) int {
	resolved := statusID == model.StatusSudahDitemukan || statusID == model.StatusSudahDikembalikan
	if strings.ToLower(itemType) == model.TypeFound {
		if resolved {
			return model.StatusSudahDikembalikan
		}
		return model.StatusBelumDikembalikan
	}
	if resolved {
		return model.StatusSudahDitemukan
	}
	return model.StatusBelumDitemukan
}

// ValidateStatusChange applies the lifecycle rules to callers that
// name the target state directly: the target must belong to the
// two-state cycle of the barang's type. Re-setting the current state
// is allowed and is a no-op.
func ValidateStatusChange(b *model.Barang, target int) error {
	switch strings.ToLower(b.Type) {
	case model.TypeFound:
		if target != model.StatusBelumDikembalikan && target != model.StatusSudahDikembalikan {
			return ErrInvalidStatus
		}
	case model.TypeLost:
		if target != model.StatusBelumDitemukan && target != model.StatusSudahDitemukan {
			return ErrInvalidStatus
		}
	default:
		return ErrInvalidStatus
	}
	return nil
}
