package persistence

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/acheronlabs/evefit/internal/domain/fitting"
)

// GormFittingRepository implements FittingRepository using GORM
type GormFittingRepository struct {
	db *gorm.DB
}

// NewGormFittingRepository creates a new GORM fitting repository
func NewGormFittingRepository(db *gorm.DB) *GormFittingRepository {
	return &GormFittingRepository{db: db}
}

// Save upserts a fitting under its name
func (r *GormFittingRepository) Save(ctx context.Context, fit *fitting.Fitting) error {
	document, err := json.Marshal(fit)
	if err != nil {
		return fmt.Errorf("failed to marshal fitting: %w", err)
	}

	now := time.Now().UTC()
	model := FittingModel{
		Name:       fit.Name,
		ShipTypeID: fit.ShipTypeID,
		ShipName:   fit.ShipName,
		Document:   string(document),
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	// Upsert: preserve created_at on update
	var existing FittingModel
	result := r.db.WithContext(ctx).Where("name = ?", fit.Name).First(&existing)
	if result.Error == nil {
		model.CreatedAt = existing.CreatedAt
	} else if result.Error != gorm.ErrRecordNotFound {
		return fmt.Errorf("failed to look up fitting: %w", result.Error)
	}

	if err := r.db.WithContext(ctx).Save(&model).Error; err != nil {
		return fmt.Errorf("failed to save fitting: %w", err)
	}

	return nil
}

// FindByName retrieves a fitting by name
func (r *GormFittingRepository) FindByName(ctx context.Context, name string) (*fitting.Fitting, error) {
	var model FittingModel
	result := r.db.WithContext(ctx).Where("name = ?", name).First(&model)

	if result.Error != nil {
		if result.Error == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("fitting not found: %s", name)
		}
		return nil, fmt.Errorf("failed to find fitting: %w", result.Error)
	}

	return r.modelToEntity(&model)
}

// List retrieves all fittings ordered by name
func (r *GormFittingRepository) List(ctx context.Context) ([]*fitting.Fitting, error) {
	var models []FittingModel
	if err := r.db.WithContext(ctx).Order("name").Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to list fittings: %w", err)
	}

	fittings := make([]*fitting.Fitting, 0, len(models))
	for _, model := range models {
		entity, err := r.modelToEntity(&model)
		if err != nil {
			return nil, fmt.Errorf("failed to convert fitting %s: %w", model.Name, err)
		}
		fittings = append(fittings, entity)
	}

	return fittings, nil
}

// Delete removes a fitting by name
func (r *GormFittingRepository) Delete(ctx context.Context, name string) error {
	result := r.db.WithContext(ctx).Where("name = ?", name).Delete(&FittingModel{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete fitting: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("fitting not found: %s", name)
	}

	return nil
}

// modelToEntity converts database model to domain entity
func (r *GormFittingRepository) modelToEntity(model *FittingModel) (*fitting.Fitting, error) {
	var fit fitting.Fitting
	if err := json.Unmarshal([]byte(model.Document), &fit); err != nil {
		return nil, fmt.Errorf("failed to unmarshal fitting document: %w", err)
	}
	return &fit, nil
}
