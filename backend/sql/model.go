package sql

import "time"

// row is the GORM model backing one cached entry. CacheName scopes rows to
// a single logical cache inside a shared database/table, the same way a
// backend.Backend instance is handed to exactly one engine.Engine.
type row struct {
	ID           uint `gorm:"primarykey"`
	CacheName    string `gorm:"uniqueIndex:idx_cachecore_name_key;size:128"`
	Key          string `gorm:"uniqueIndex:idx_cachecore_name_key;size:512"`
	ValueGob     []byte
	CreationTime time.Time
	AccessTime   time.Time
	UpdateTime   time.Time
	HitCount     uint64
	ExpiryTime   time.Time
}

func (row) TableName() string { return "cachecore_entries" }
