package contribution

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/ppkgen/backend/internal/domain/shared"
)

// Reconciler fills missing contribution records for a filing period. For each
// active member it copies the most recent prior contribution, or inserts a
// zero record when the member has no history. Idempotence does not rely on
// this service's reads: every insert goes through InsertIfAbsent, so a
// concurrent prefill or manual upsert for the same (member, period) can never
// produce a duplicate.
type Reconciler struct {
	members       MemberSource
	contributions Repository
}

// NewReconciler creates a new Reconciler
func NewReconciler(members MemberSource, contributions Repository) *Reconciler {
	return &Reconciler{
		members:       members,
		contributions: contributions,
	}
}

// Prefill ensures every active member of the organization has a contribution
// for the target period and returns the number of records created.
func (r *Reconciler) Prefill(ctx context.Context, organizationID uuid.UUID, period Period) (int, error) {
	if err := period.Validate(); err != nil {
		return 0, err
	}

	memberIDs, err := r.members.ActiveMemberIDs(ctx, organizationID)
	if err != nil {
		return 0, err
	}

	created := 0
	for _, memberID := range memberIDs {
		latest, err := r.contributions.FindLatestByMember(ctx, memberID)
		var c *Contribution
		switch {
		case err == nil:
			c = NewPrefilled(memberID, period,
				latest.EmployeeBasic, latest.EmployeeAdditional,
				latest.EmployerBasic, latest.EmployerAdditional,
				latest.ReducedBasicFlag)
		case errors.Is(err, shared.ErrNotFound):
			c = NewZeroPrefilled(memberID, period)
		default:
			return created, err
		}

		inserted, err := r.contributions.InsertIfAbsent(ctx, c)
		if err != nil {
			return created, err
		}
		if inserted {
			created++
		}
	}

	return created, nil
}
