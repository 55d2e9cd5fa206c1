package badger

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bobmcallan/jinyao-fortune/internal/common"
	"github.com/bobmcallan/jinyao-fortune/internal/interfaces"
	"github.com/timshannon/badgerhold/v4"
)

// KVEntry represents a key-value pair stored in BadgerDB.
type KVEntry struct {
	Key       string `badgerhold:"key"`
	Value     string
	UpdatedAt time.Time
}

// KVStorage implements interfaces.KeyValueStorage using BadgerDB.
type KVStorage struct {
	db     *BadgerDB
	logger *common.Logger
}

// NewKVStorage creates a new key-value storage backed by BadgerDB.
func NewKVStorage(db *BadgerDB, logger *common.Logger) *KVStorage {
	return &KVStorage{
		db:     db,
		logger: logger.OrSilent(),
	}
}

// Get retrieves a value by key. A missing key yields interfaces.ErrNotFound.
func (s *KVStorage) Get(_ context.Context, key string) (string, error) {
	var entry KVEntry
	err := s.db.Store().Get(key, &entry)
	if err != nil {
		if errors.Is(err, badgerhold.ErrNotFound) {
			return "", fmt.Errorf("%w: %s", interfaces.ErrNotFound, key)
		}
		return "", fmt.Errorf("failed to get key %s: %w", key, err)
	}
	return entry.Value, nil
}

// Set stores a key-value pair.
func (s *KVStorage) Set(_ context.Context, key, value string) error {
	entry := KVEntry{
		Key:       key,
		Value:     value,
		UpdatedAt: time.Now().UTC(),
	}
	if err := s.db.Store().Upsert(key, &entry); err != nil {
		return fmt.Errorf("failed to set key %s: %w", key, err)
	}
	return nil
}

// Delete removes a key-value pair. Deleting a missing key is not an error.
func (s *KVStorage) Delete(_ context.Context, key string) error {
	err := s.db.Store().Delete(key, KVEntry{})
	if err != nil {
		if errors.Is(err, badgerhold.ErrNotFound) {
			return nil
		}
		return fmt.Errorf("failed to delete key %s: %w", key, err)
	}
	return nil
}

// GetAll retrieves all key-value pairs.
func (s *KVStorage) GetAll(_ context.Context) (map[string]string, error) {
	var entries []KVEntry
	if err := s.db.Store().Find(&entries, nil); err != nil {
		return nil, fmt.Errorf("failed to get all keys: %w", err)
	}

	result := make(map[string]string, len(entries))
	for _, entry := range entries {
		result[entry.Key] = entry.Value
	}
	return result, nil
}
