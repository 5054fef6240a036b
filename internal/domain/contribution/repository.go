package contribution

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines the interface for contribution persistence. The storage
// layer owns the UNIQUE(member, year, month) constraint; both Upsert and
// InsertIfAbsent must be atomic against it.
type Repository interface {
	// ListForPeriod returns the contributions of an organization's members
	// for one period, joined with member data and ordered by
	// (last name, first name)
	ListForPeriod(ctx context.Context, organizationID uuid.UUID, period Period) ([]Record, error)

	// FindLatestByMember returns the member's most recent contribution
	// ordered by (year desc, month desc), or shared.ErrNotFound
	FindLatestByMember(ctx context.Context, memberID uuid.UUID) (*Contribution, error)

	// Upsert inserts or updates the (member, period) row. Only the supplied
	// fields overwrite stored values; the source always becomes manual.
	Upsert(ctx context.Context, params UpsertParams) error

	// InsertIfAbsent inserts the contribution unless a row for its
	// (member, period) already exists. Reports whether a row was inserted.
	InsertIfAbsent(ctx context.Context, c *Contribution) (bool, error)

	// AvailablePeriods returns the distinct periods that have contributions
	// for an organization, most recent first
	AvailablePeriods(ctx context.Context, organizationID uuid.UUID) ([]Period, error)
}

// MemberSource supplies the reconciler with the members eligible for a
// filing period.
type MemberSource interface {
	// ActiveMemberIDs returns the IDs of all active members of an
	// organization
	ActiveMemberIDs(ctx context.Context, organizationID uuid.UUID) ([]uuid.UUID, error)
}
