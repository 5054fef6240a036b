package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/ppkgen/backend/internal/domain/filing"
	"github.com/ppkgen/backend/internal/domain/shared"
	"github.com/ppkgen/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormGenerationRepository implements GenerationRepository using GORM.
// Generations are append-only; Save never updates an existing row.
type GormGenerationRepository struct {
	db *gorm.DB
}

// NewGormGenerationRepository creates a new GormGenerationRepository
func NewGormGenerationRepository(db *gorm.DB) *GormGenerationRepository {
	return &GormGenerationRepository{db: db}
}

// Save persists a new generation record with its snapshot
func (r *GormGenerationRepository) Save(ctx context.Context, g *filing.Generation) error {
	var model models.GenerationModel
	model.FromDomain(g)
	return r.db.WithContext(ctx).Create(&model).Error
}

// FindByID returns a generation including its snapshot blob
func (r *GormGenerationRepository) FindByID(ctx context.Context, id uuid.UUID) (*filing.Generation, error) {
	var model models.GenerationModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByOrganization returns an organization's generations without snapshot
// blobs, most recent first
func (r *GormGenerationRepository) FindByOrganization(ctx context.Context, organizationID uuid.UUID) ([]filing.Generation, error) {
	var rows []models.GenerationModel
	err := r.db.WithContext(ctx).
		Omit("snapshot").
		Where("organization_id = ?", organizationID).
		Order("generated_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	generations := make([]filing.Generation, 0, len(rows))
	for i := range rows {
		generations = append(generations, *rows[i].ToDomain())
	}
	return generations, nil
}
