package badger

import (
	"context"
	"fmt"

	"github.com/spf13/cast"
	"github.com/timshannon/badgerhold/v4"

	"github.com/bobmcallan/vire-gate/internal/common"
)

// EntityRecord is one registered entity, keyed by kind and identifier.
type EntityRecord struct {
	ID     string `badgerhold:"key"`
	Entity string
	Key    string
}

// EntityStore implements validate.Checker against BadgerDB. Lookups never
// mutate state; a missing record reports (false, nil) and only genuine
// storage failures surface as errors.
type EntityStore struct {
	db     *BadgerDB
	logger *common.Logger
}

// NewEntityStore creates an entity registry backed by BadgerDB.
func NewEntityStore(db *BadgerDB, logger *common.Logger) *EntityStore {
	return &EntityStore{
		db:     db,
		logger: logger,
	}
}

// entityID builds the composite record key for an entity kind and value.
func entityID(entity, key string) string {
	return entity + "/" + key
}

// Exists reports whether a value is registered under the entity kind.
func (s *EntityStore) Exists(_ context.Context, entity string, value any) (bool, error) {
	key, err := cast.ToStringE(value)
	if err != nil {
		return false, fmt.Errorf("entity key for %s is not textual: %w", entity, err)
	}

	var rec EntityRecord
	err = s.db.Store().Get(entityID(entity, key), &rec)
	if err != nil {
		if err == badgerhold.ErrNotFound {
			return false, nil
		}
		return false, fmt.Errorf("failed to look up %s/%s: %w", entity, key, err)
	}
	return true, nil
}

// Register stores an entity record, overwriting any previous registration.
func (s *EntityStore) Register(_ context.Context, entity, key string) error {
	rec := EntityRecord{
		ID:     entityID(entity, key),
		Entity: entity,
		Key:    key,
	}
	if err := s.db.Store().Upsert(rec.ID, &rec); err != nil {
		return fmt.Errorf("failed to register %s/%s: %w", entity, key, err)
	}
	s.logger.Debug().Str("entity", entity).Str("key", key).Msg("entity registered")
	return nil
}

// Deregister removes an entity record. Removing an unknown record is not an
// error.
func (s *EntityStore) Deregister(_ context.Context, entity, key string) error {
	err := s.db.Store().Delete(entityID(entity, key), &EntityRecord{})
	if err != nil && err != badgerhold.ErrNotFound {
		return fmt.Errorf("failed to deregister %s/%s: %w", entity, key, err)
	}
	return nil
}
