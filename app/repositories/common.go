package repositories

import (
	"errors"
	"fmt"

	"github.com/dgraph-io/badger/v4"
	"github.com/goccy/go-json"
	"github.com/google/uuid"
)

var (
	ErrNotFound = errors.New("record not found")
)

const (
	// Key prefixes for different entity types
	PublicationKeyPrefix = "publication:"
	CommentKeyPrefix     = "comment:"
	ReactionKeyPrefix    = "reaction:"
)

// newID returns a time-ordered identifier, so prefix scans yield records
// in creation order.
func newID() string {
	return uuid.Must(uuid.NewV7()).String()
}

func entityKey(prefix, id string) []byte {
	return []byte(prefix + id)
}

// marshalEntity marshals an entity to JSON
func marshalEntity(entity interface{}) ([]byte, error) {
	data, err := json.Marshal(entity)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal entity: %w", err)
	}
	return data, nil
}

// unmarshalEntity unmarshals JSON data into an entity
func unmarshalEntity(data []byte, entity interface{}) error {
	if err := json.Unmarshal(data, entity); err != nil {
		return fmt.Errorf("failed to unmarshal entity: %w", err)
	}
	return nil
}

// getEntity loads the document stored under key.
func getEntity[T any](txn *badger.Txn, key []byte) (*T, error) {
	item, err := txn.Get(key)
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	var entity T
	err = item.Value(func(val []byte) error {
		return unmarshalEntity(val, &entity)
	})
	if err != nil {
		return nil, err
	}
	return &entity, nil
}

// putEntity stores entity under key, overwriting any previous version.
func putEntity(txn *badger.Txn, key []byte, entity interface{}) error {
	data, err := marshalEntity(entity)
	if err != nil {
		return err
	}
	return txn.Set(key, data)
}

// replaceEntity overwrites an existing document, failing with ErrNotFound
// when nothing is stored under key.
func replaceEntity(db *badger.DB, key []byte, entity interface{}) error {
	return db.Update(func(txn *badger.Txn) error {
		_, err := txn.Get(key)
		if errors.Is(err, badger.ErrKeyNotFound) {
			return ErrNotFound
		}
		if err != nil {
			return err
		}
		return putEntity(txn, key, entity)
	})
}

// removeEntity deletes the document under key and returns what was stored.
func removeEntity[T any](db *badger.DB, key []byte) (*T, error) {
	var deleted *T
	err := db.Update(func(txn *badger.Txn) error {
		entity, err := getEntity[T](txn, key)
		if err != nil {
			return err
		}
		deleted = entity
		return txn.Delete(key)
	})
	if err != nil {
		return nil, err
	}
	return deleted, nil
}

// fetchEntity loads a single document in a read-only transaction.
func fetchEntity[T any](db *badger.DB, key []byte) (*T, error) {
	var entity *T
	err := db.View(func(txn *badger.Txn) error {
		var err error
		entity, err = getEntity[T](txn, key)
		return err
	})
	if err != nil {
		return nil, err
	}
	return entity, nil
}

// scanEntities returns every document under prefix accepted by keep, in key
// order. The result is never nil.
func scanEntities[T any](db *badger.DB, prefix string, keep func(*T) bool) ([]*T, error) {
	entities := make([]*T, 0)
	err := db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(prefix)
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			var entity T
			err := it.Item().Value(func(val []byte) error {
				return unmarshalEntity(val, &entity)
			})
			if err != nil {
				return err
			}
			if keep == nil || keep(&entity) {
				entities = append(entities, &entity)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return entities, nil
}
