package filing

import (
	"context"

	"github.com/google/uuid"
)

// GenerationRepository defines the interface for generation persistence.
// Generations are append-only: there is no update operation.
type GenerationRepository interface {
	// Save persists a new generation record with its snapshot
	Save(ctx context.Context, g *Generation) error

	// FindByID returns a generation including its snapshot blob
	FindByID(ctx context.Context, id uuid.UUID) (*Generation, error)

	// FindByOrganization returns an organization's generations without
	// snapshot blobs, most recent first
	FindByOrganization(ctx context.Context, organizationID uuid.UUID) ([]Generation, error)
}
