package models

import "time"

// Entry is one row of the key-value store. Value holds a JSON document.
type Entry struct {
	Key       string `gorm:"column:entry_key;primaryKey"`
	Value     string `gorm:"type:text;not null"`
	UpdatedAt time.Time
}
