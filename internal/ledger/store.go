package ledger

import (
	"context"
	"encoding/json"
	"fmt"
)

// Store is a durable key-value mapping for a single namespace. Implementations
// read the active transaction from ctx when one is present.
type Store interface {
	Get(ctx context.Context, key Key) ([]byte, bool, error)
	Set(ctx context.Context, key Key, value []byte) error
	Has(ctx context.Context, key Key) (bool, error)
}

// Load decodes the value stored under key. The boolean is false when the key
// is absent, in which case the zero T is returned.
func Load[T any](ctx context.Context, s Store, key Key) (T, bool, error) {
	var v T
	raw, ok, err := s.Get(ctx, key)
	if err != nil {
		return v, false, fmt.Errorf("ledger get %s: %w", key, err)
	}
	if !ok {
		return v, false, nil
	}
	if err := json.Unmarshal(raw, &v); err != nil {
		return v, false, fmt.Errorf("ledger decode %s: %w", key, err)
	}
	return v, true, nil
}

// LoadOr is Load with a fallback for absent keys.
func LoadOr[T any](ctx context.Context, s Store, key Key, fallback T) (T, error) {
	v, ok, err := Load[T](ctx, s, key)
	if err != nil {
		return fallback, err
	}
	if !ok {
		return fallback, nil
	}
	return v, nil
}

// Save encodes v and stores it under key, replacing any previous value.
func Save[T any](ctx context.Context, s Store, key Key, v T) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("ledger encode %s: %w", key, err)
	}
	if err := s.Set(ctx, key, raw); err != nil {
		return fmt.Errorf("ledger set %s: %w", key, err)
	}
	return nil
}
