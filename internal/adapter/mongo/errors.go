package mongo

import (
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/heartmarshall/eventorias-backend/internal/domain"
)

// mapError converts driver errors into domain sentinels.
func mapError(err error, entity, id string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, mongo.ErrNoDocuments):
		return fmt.Errorf("%s %s: %w", entity, id, domain.ErrNotFound)
	case mongo.IsDuplicateKeyError(err):
		return fmt.Errorf("%s %s: %w", entity, id, domain.ErrAlreadyExists)
	default:
		return fmt.Errorf("%s %s: %w", entity, id, err)
	}
}
