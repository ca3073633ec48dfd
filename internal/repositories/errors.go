package repositories

import (
	"errors"

	"go.mongodb.org/mongo-driver/mongo"
)

// ErrDuplicateKey is returned when a write violates a unique index. The unique
// indexes are the authoritative uniqueness guard; service-level pre-checks are
// only an optimization.
var ErrDuplicateKey = errors.New("duplicate key")

// translateWriteError maps driver duplicate-key faults to ErrDuplicateKey and
// passes everything else through untouched.
func translateWriteError(err error) error {
	if err == nil {
		return nil
	}
	if mongo.IsDuplicateKeyError(err) {
		return ErrDuplicateKey
	}
	return err
}
