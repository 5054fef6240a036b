package contribution

import (
	"context"

	"github.com/google/uuid"
	"github.com/ppkgen/backend/internal/domain/contribution"
)

// ContributionService handles period amount edits and reconciliation
type ContributionService struct {
	contributionRepo contribution.Repository
	reconciler       *contribution.Reconciler
}

// NewContributionService creates a new ContributionService
func NewContributionService(contributionRepo contribution.Repository, reconciler *contribution.Reconciler) *ContributionService {
	return &ContributionService{
		contributionRepo: contributionRepo,
		reconciler:       reconciler,
	}
}

// ListForPeriod returns the contribution grid for one organization and period,
// joined with member data and ordered by (last name, first name)
func (s *ContributionService) ListForPeriod(ctx context.Context, organizationID uuid.UUID, year, month int) ([]contribution.Record, error) {
	period := contribution.Period{Year: year, Month: month}
	if err := period.Validate(); err != nil {
		return nil, err
	}
	return s.contributionRepo.ListForPeriod(ctx, organizationID, period)
}

// Upsert applies a partial amount edit to one (member, period) cell. The row
// is created from zero defaults when absent, and its provenance becomes
// manual either way.
func (s *ContributionService) Upsert(ctx context.Context, req UpsertContributionRequest) error {
	params := req.ToParams()
	if err := params.Validate(); err != nil {
		return err
	}
	return s.contributionRepo.Upsert(ctx, params)
}

// Prefill seeds a period with each active member's most recent prior amounts,
// or zeroes for members without history. Existing rows are never overwritten;
// the call is idempotent.
func (s *ContributionService) Prefill(ctx context.Context, organizationID uuid.UUID, req PrefillRequest) (*PrefillResponse, error) {
	period := contribution.Period{Year: req.Year, Month: req.Month}
	inserted, err := s.reconciler.Prefill(ctx, organizationID, period)
	if err != nil {
		return nil, err
	}
	return &PrefillResponse{Inserted: inserted}, nil
}

// AvailablePeriods returns the distinct periods that have contribution rows
// for an organization, most recent first
func (s *ContributionService) AvailablePeriods(ctx context.Context, organizationID uuid.UUID) ([]contribution.Period, error) {
	return s.contributionRepo.AvailablePeriods(ctx, organizationID)
}
