package persistence

import (
	"time"
)

// FittingModel represents the fittings table
// The full fitting aggregate is stored as a JSON document; the flat columns
// exist for listing and lookup without unmarshalling every row
type FittingModel struct {
	Name       string    `gorm:"column:name;primaryKey;not null"`
	ShipTypeID int       `gorm:"column:ship_type_id;not null"`
	ShipName   string    `gorm:"column:ship_name;not null"`
	Document   string    `gorm:"column:document;type:text;not null"` // JSON as text
	CreatedAt  time.Time `gorm:"column:created_at;not null"`
	UpdatedAt  time.Time `gorm:"column:updated_at;not null"`
}

func (FittingModel) TableName() string {
	return "fittings"
}

// TypeCacheModel represents the type_cache table
type TypeCacheModel struct {
	TypeID   int       `gorm:"column:type_id;primaryKey;not null"`
	Name     string    `gorm:"column:name;not null"`
	Document string    `gorm:"column:document;type:text;not null"` // JSON as text
	CachedAt time.Time `gorm:"column:cached_at;not null"`
}

func (TypeCacheModel) TableName() string {
	return "type_cache"
}

// GroupCacheModel represents the group_cache table
type GroupCacheModel struct {
	GroupID  int       `gorm:"column:group_id;primaryKey;not null"`
	Name     string    `gorm:"column:name;not null"`
	CachedAt time.Time `gorm:"column:cached_at;not null"`
}

func (GroupCacheModel) TableName() string {
	return "group_cache"
}
