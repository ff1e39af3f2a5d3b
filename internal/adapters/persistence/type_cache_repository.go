package persistence

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/acheronlabs/evefit/internal/domain/fitting"
)

// GormTypeCacheRepository implements the provider's persistent type store
// using GORM. Entries never expire here; staleness is governed by the
// in-memory cache in front of it.
type GormTypeCacheRepository struct {
	db *gorm.DB
}

// NewGormTypeCacheRepository creates a new GORM type cache repository
func NewGormTypeCacheRepository(db *gorm.DB) *GormTypeCacheRepository {
	return &GormTypeCacheRepository{db: db}
}

// FindType retrieves a cached type entity, nil when absent
func (r *GormTypeCacheRepository) FindType(ctx context.Context, typeID int) (*fitting.TypeEntity, error) {
	var model TypeCacheModel
	result := r.db.WithContext(ctx).Where("type_id = ?", typeID).First(&model)

	if result.Error != nil {
		if result.Error == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find cached type: %w", result.Error)
	}

	var entity fitting.TypeEntity
	if err := json.Unmarshal([]byte(model.Document), &entity); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cached type: %w", err)
	}

	return &entity, nil
}

// SaveType caches a type entity
func (r *GormTypeCacheRepository) SaveType(ctx context.Context, entity *fitting.TypeEntity) error {
	document, err := json.Marshal(entity)
	if err != nil {
		return fmt.Errorf("failed to marshal type: %w", err)
	}

	model := TypeCacheModel{
		TypeID:   entity.ID,
		Name:     entity.Name,
		Document: string(document),
		CachedAt: time.Now().UTC(),
	}

	if err := r.db.WithContext(ctx).Save(&model).Error; err != nil {
		return fmt.Errorf("failed to cache type: %w", err)
	}

	return nil
}

// FindGroupName retrieves a cached group name, "" when absent
func (r *GormTypeCacheRepository) FindGroupName(ctx context.Context, groupID int) (string, error) {
	var model GroupCacheModel
	result := r.db.WithContext(ctx).Where("group_id = ?", groupID).First(&model)

	if result.Error != nil {
		if result.Error == gorm.ErrRecordNotFound {
			return "", nil
		}
		return "", fmt.Errorf("failed to find cached group: %w", result.Error)
	}

	return model.Name, nil
}

// SaveGroupName caches a group name
func (r *GormTypeCacheRepository) SaveGroupName(ctx context.Context, groupID int, name string) error {
	model := GroupCacheModel{
		GroupID:  groupID,
		Name:     name,
		CachedAt: time.Now().UTC(),
	}

	if err := r.db.WithContext(ctx).Save(&model).Error; err != nil {
		return fmt.Errorf("failed to cache group: %w", err)
	}

	return nil
}
