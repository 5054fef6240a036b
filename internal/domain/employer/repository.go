package employer

import (
	"context"

	"github.com/google/uuid"
)

// OrganizationRepository defines the interface for organization persistence
type OrganizationRepository interface {
	// FindByID finds an organization by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Organization, error)

	// FindAll returns all organizations ordered by name
	FindAll(ctx context.Context) ([]Organization, error)

	// Save creates or updates an organization
	Save(ctx context.Context, org *Organization) error

	// Delete deletes an organization
	Delete(ctx context.Context, id uuid.UUID) error
}

// MemberRepository defines the interface for member persistence
type MemberRepository interface {
	// FindByID finds a member by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Member, error)

	// FindByOrganization returns all members of an organization ordered by
	// (last name, first name)
	FindByOrganization(ctx context.Context, organizationID uuid.UUID) ([]Member, error)

	// ActiveMemberIDs returns the IDs of all active members of an
	// organization
	ActiveMemberIDs(ctx context.Context, organizationID uuid.UUID) ([]uuid.UUID, error)

	// Save creates or updates a member
	Save(ctx context.Context, member *Member) error

	// Delete deletes a member
	Delete(ctx context.Context, id uuid.UUID) error
}
