package models

import (
	"time"

	"gorm.io/datatypes"
)

// KVEntry is one key/value row of the durable store. Values are JSON documents.
type KVEntry struct {
	Key       string         `gorm:"column:entry_key;primaryKey;size:128"`
	Value     datatypes.JSON `gorm:"not null"`
	UpdatedAt time.Time
}

func (KVEntry) TableName() string { return "compliance_kv" }
