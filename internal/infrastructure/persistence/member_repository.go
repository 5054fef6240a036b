package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/ppkgen/backend/internal/domain/employer"
	"github.com/ppkgen/backend/internal/domain/shared"
	"github.com/ppkgen/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormMemberRepository implements MemberRepository using GORM
type GormMemberRepository struct {
	db *gorm.DB
}

// NewGormMemberRepository creates a new GormMemberRepository
func NewGormMemberRepository(db *gorm.DB) *GormMemberRepository {
	return &GormMemberRepository{db: db}
}

// FindByID finds a member by its ID
func (r *GormMemberRepository) FindByID(ctx context.Context, id uuid.UUID) (*employer.Member, error) {
	var model models.MemberModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByOrganization returns all members of an organization ordered by
// (last name, first name)
func (r *GormMemberRepository) FindByOrganization(ctx context.Context, organizationID uuid.UUID) ([]employer.Member, error) {
	var rows []models.MemberModel
	err := r.db.WithContext(ctx).
		Where("organization_id = ?", organizationID).
		Order("last_name ASC, first_name ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	members := make([]employer.Member, 0, len(rows))
	for i := range rows {
		members = append(members, *rows[i].ToDomain())
	}
	return members, nil
}

// ActiveMemberIDs returns the IDs of all active members of an organization
func (r *GormMemberRepository) ActiveMemberIDs(ctx context.Context, organizationID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := r.db.WithContext(ctx).
		Model(&models.MemberModel{}).
		Where("organization_id = ? AND status = ?", organizationID, string(employer.MemberStatusActive)).
		Pluck("id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

// Save creates or updates a member
func (r *GormMemberRepository) Save(ctx context.Context, member *employer.Member) error {
	var model models.MemberModel
	model.FromDomain(member)

	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		UpdateAll: true,
	}).Create(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return shared.ErrAlreadyExists
		}
		return err
	}
	return nil
}

// Delete deletes a member
func (r *GormMemberRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.MemberModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}
