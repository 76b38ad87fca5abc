// Package sql provides a backend.Backend backed by GORM, so the cache
// engine can run against a durable, out-of-process-capable store instead
// of an in-memory map. It is grounded in the same gorm + glebarez/sqlite
// pairing used elsewhere in the retrieved example pack for a pure-Go
// (no cgo) embedded database.
//
// Values are round-tripped through encoding/gob, so any value put through
// a Store must be gob-encodable (and, if it's an interface value, its
// concrete type must be gob.Register'd by the caller). This is a property
// of this particular backend, not of the cache engine: the engine core
// treats values as opaque and leaves serialization entirely to the
// backend, per its contract.
package sql

import (
	"bytes"
	"context"
	"encoding/gob"
	"errors"
	"fmt"

	"github.com/cachecore/cachecore/entry"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

// Store is a GORM-backed backend.Backend scoped to a single cache name.
type Store struct {
	db   *gorm.DB
	name string
}

// Open opens (creating if necessary) a SQLite database at path and returns
// a Store scoped to the given cache name. Multiple Stores opened against
// the same path with different names share the underlying table but never
// see each other's rows.
func Open(path, name string) (*Store, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("cachecore/backend/sql: open %q: %w", path, err)
	}
	if err := db.AutoMigrate(&row{}); err != nil {
		return nil, fmt.Errorf("cachecore/backend/sql: migrate: %w", err)
	}
	return &Store{db: db, name: name}, nil
}

func encode(v any) ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(&v); err != nil {
		return nil, fmt.Errorf("cachecore/backend/sql: encode value: %w", err)
	}
	return buf.Bytes(), nil
}

func decode(b []byte) (any, error) {
	var v any
	if err := gob.NewDecoder(bytes.NewReader(b)).Decode(&v); err != nil {
		return nil, fmt.Errorf("cachecore/backend/sql: decode value: %w", err)
	}
	return v, nil
}

func toEntry(r *row) (*entry.Entry, error) {
	v, err := decode(r.ValueGob)
	if err != nil {
		return nil, err
	}
	return &entry.Entry{
		Value:        v,
		CreationTime: r.CreationTime,
		AccessTime:   r.AccessTime,
		UpdateTime:   r.UpdateTime,
		HitCount:     r.HitCount,
		ExpiryTime:   r.ExpiryTime,
	}, nil
}

// Size implements backend.Backend.
func (s *Store) Size(ctx context.Context) (int, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&row{}).Where("cache_name = ?", s.name).Count(&count).Error
	return int(count), err
}

// ContainsKey implements backend.Backend.
func (s *Store) ContainsKey(ctx context.Context, key string) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&row{}).
		Where("cache_name = ? AND key = ?", s.name, key).Count(&count).Error
	return count > 0, err
}

// GetEntry implements backend.Backend.
func (s *Store) GetEntry(ctx context.Context, key string) (*entry.Entry, bool, error) {
	var r row
	err := s.db.WithContext(ctx).
		Where("cache_name = ? AND key = ?", s.name, key).First(&r).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	e, err := toEntry(&r)
	if err != nil {
		return nil, false, err
	}
	return e, true, nil
}

// PutEntry implements backend.Backend as an upsert on (cache_name, key).
func (s *Store) PutEntry(ctx context.Context, key string, e *entry.Entry) error {
	blob, err := encode(e.Value)
	if err != nil {
		return err
	}

	var existing row
	err = s.db.WithContext(ctx).
		Where("cache_name = ? AND key = ?", s.name, key).First(&existing).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return s.db.WithContext(ctx).Create(&row{
			CacheName:    s.name,
			Key:          key,
			ValueGob:     blob,
			CreationTime: e.CreationTime,
			AccessTime:   e.AccessTime,
			UpdateTime:   e.UpdateTime,
			HitCount:     e.HitCount,
			ExpiryTime:   e.ExpiryTime,
		}).Error
	case err != nil:
		return err
	default:
		existing.ValueGob = blob
		existing.CreationTime = e.CreationTime
		existing.AccessTime = e.AccessTime
		existing.UpdateTime = e.UpdateTime
		existing.HitCount = e.HitCount
		existing.ExpiryTime = e.ExpiryTime
		return s.db.WithContext(ctx).Save(&existing).Error
	}
}

// Remove implements backend.Backend.
func (s *Store) Remove(ctx context.Context, key string) error {
	return s.db.WithContext(ctx).
		Where("cache_name = ? AND key = ?", s.name, key).Delete(&row{}).Error
}

// Clear implements backend.Backend.
func (s *Store) Clear(ctx context.Context) error {
	return s.db.WithContext(ctx).Where("cache_name = ?", s.name).Delete(&row{}).Error
}

// Keys implements backend.Backend.
func (s *Store) Keys(ctx context.Context) ([]string, error) {
	var keys []string
	err := s.db.WithContext(ctx).Model(&row{}).
		Where("cache_name = ?", s.name).Pluck("key", &keys).Error
	return keys, err
}

// Values implements backend.Backend.
func (s *Store) Values(ctx context.Context) ([]*entry.Entry, error) {
	var rows []row
	if err := s.db.WithContext(ctx).Where("cache_name = ?", s.name).Find(&rows).Error; err != nil {
		return nil, err
	}
	entries := make([]*entry.Entry, 0, len(rows))
	for i := range rows {
		e, err := toEntry(&rows[i])
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, nil
}
