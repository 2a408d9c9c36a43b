package repositories

import (
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
)

var (
	// ErrNotFound indicates the requested document does not exist.
	ErrNotFound = errors.New("repository: not found")
	// ErrDuplicate indicates a unique index rejected the write.
	ErrDuplicate = errors.New("repository: duplicate key")
)

// translateError maps driver errors onto repository sentinels.
func translateError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, mongo.ErrNoDocuments):
		return ErrNotFound
	case mongo.IsDuplicateKeyError(err):
		return fmt.Errorf("%w: %v", ErrDuplicate, err)
	default:
		return err
	}
}
