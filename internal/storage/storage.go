// Package storage is the persistence bridge: a key-value byte store the log
// and weight stores snapshot into on every mutation and read back on load.
package storage

import (
	"context"
	"errors"
)

// Snapshot keys. The version suffix is part of the persisted layout.
const (
	MealsKey  = "calorieAppMeals_v2"
	WeightKey = "calorieAppWeightLogs_v1"
)

// ErrNotFound is returned by Load when the key has never been saved.
var ErrNotFound = errors.New("storage: key not found")

// Store is a key-value byte store. Save overwrites; there is no
// read-modify-write, each value is a complete snapshot.
type Store interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, value []byte) error
}
