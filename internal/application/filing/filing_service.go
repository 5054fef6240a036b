package filing

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/ppkgen/backend/internal/domain/contribution"
	"github.com/ppkgen/backend/internal/domain/employer"
	"github.com/ppkgen/backend/internal/domain/filing"
	"github.com/ppkgen/backend/internal/domain/shared"
)

// FilingService generates, lists and re-exports filing archives
type FilingService struct {
	organizationRepo employer.OrganizationRepository
	contributionRepo contribution.Repository
	generationRepo   filing.GenerationRepository

	// now is swappable for deterministic tests
	now func() time.Time
}

// NewFilingService creates a new FilingService
func NewFilingService(
	organizationRepo employer.OrganizationRepository,
	contributionRepo contribution.Repository,
	generationRepo filing.GenerationRepository,
) *FilingService {
	return &FilingService{
		organizationRepo: organizationRepo,
		contributionRepo: contributionRepo,
		generationRepo:   generationRepo,
		now:              time.Now,
	}
}

// Generate renders both filing documents for a period, packs them into a zip
// archive and records the generation together with the snapshot that allows
// re-exporting the identical archive later.
func (s *FilingService) Generate(ctx context.Context, organizationID uuid.UUID, req GenerateFilingRequest) (*ArchiveResponse, error) {
	period := contribution.Period{Year: req.Year, Month: req.Month}
	if err := period.Validate(); err != nil {
		return nil, err
	}

	org, err := s.organizationRepo.FindByID(ctx, organizationID)
	if err != nil {
		return nil, err
	}

	records, err := s.contributionRepo.ListForPeriod(ctx, organizationID, period)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, shared.NewGenerationError(
			fmt.Sprintf("no contributions recorded for period %s", period))
	}

	dataset := &filing.Dataset{
		Employer: filing.Employer{
			Name:          org.Name,
			NIP:           org.NIP,
			REGON:         org.REGON,
			ContactPerson: org.ContactPerson,
		},
		Period:      period,
		GeneratedAt: s.now(),
		Records:     records,
	}

	archive, err := s.buildArchive(dataset)
	if err != nil {
		return nil, err
	}

	snapshot, err := filing.NewSnapshot(dataset).Encode()
	if err != nil {
		return nil, err
	}

	generation := filing.NewGeneration(organizationID, dataset, archive.ArchiveName, snapshot)
	if err := s.generationRepo.Save(ctx, generation); err != nil {
		return nil, err
	}

	return &ArchiveResponse{
		GenerationID: generation.ID,
		ArchiveName:  archive.ArchiveName,
		Bytes:        archive.Bytes,
	}, nil
}

// List returns an organization's past generations, most recent first
func (s *FilingService) List(ctx context.Context, organizationID uuid.UUID) ([]GenerationResponse, error) {
	generations, err := s.generationRepo.FindByOrganization(ctx, organizationID)
	if err != nil {
		return nil, err
	}

	responses := make([]GenerationResponse, 0, len(generations))
	for i := range generations {
		responses = append(responses, ToGenerationResponse(&generations[i]))
	}
	return responses, nil
}

// Get returns a single generation record
func (s *FilingService) Get(ctx context.Context, id uuid.UUID) (*GenerationResponse, error) {
	generation, err := s.generationRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := ToGenerationResponse(generation)
	return &resp, nil
}

// Export rebuilds a past generation's archive from its stored snapshot. The
// result is byte-identical to the original download regardless of any member
// or contribution edits made since.
func (s *FilingService) Export(ctx context.Context, id uuid.UUID) (*ArchiveResponse, error) {
	generation, err := s.generationRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	snapshot, err := filing.DecodeSnapshot(generation.Snapshot)
	if err != nil {
		return nil, err
	}

	archive, err := s.buildArchive(snapshot.Dataset())
	if err != nil {
		return nil, err
	}

	return &ArchiveResponse{
		GenerationID: generation.ID,
		ArchiveName:  archive.ArchiveName,
		Bytes:        archive.Bytes,
	}, nil
}

func (s *FilingService) buildArchive(dataset *filing.Dataset) (*filing.Archive, error) {
	document := filing.RenderDocument(dataset)
	table := filing.RenderTable(dataset)
	return filing.BuildArchive(document, table, dataset.GeneratedAt)
}
