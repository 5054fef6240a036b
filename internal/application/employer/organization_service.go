package employer

import (
	"context"

	"github.com/google/uuid"
	"github.com/ppkgen/backend/internal/domain/employer"
)

// OrganizationService handles employer registration operations
type OrganizationService struct {
	organizationRepo employer.OrganizationRepository
}

// NewOrganizationService creates a new OrganizationService
func NewOrganizationService(organizationRepo employer.OrganizationRepository) *OrganizationService {
	return &OrganizationService{organizationRepo: organizationRepo}
}

// Create registers a new employer after validating its identifiers
func (s *OrganizationService) Create(ctx context.Context, req CreateOrganizationRequest) (*OrganizationResponse, error) {
	org, err := employer.NewOrganization(req.Name, req.NIP, req.REGON, req.ContactPerson)
	if err != nil {
		return nil, err
	}

	if err := s.organizationRepo.Save(ctx, org); err != nil {
		return nil, err
	}

	resp := ToOrganizationResponse(org)
	return &resp, nil
}

// Get returns a single employer by ID
func (s *OrganizationService) Get(ctx context.Context, id uuid.UUID) (*OrganizationResponse, error) {
	org, err := s.organizationRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := ToOrganizationResponse(org)
	return &resp, nil
}

// List returns all employers ordered by name
func (s *OrganizationService) List(ctx context.Context) ([]OrganizationResponse, error) {
	orgs, err := s.organizationRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]OrganizationResponse, 0, len(orgs))
	for i := range orgs {
		responses = append(responses, ToOrganizationResponse(&orgs[i]))
	}
	return responses, nil
}

// Update replaces an employer's details, revalidating identifiers
func (s *OrganizationService) Update(ctx context.Context, id uuid.UUID, req UpdateOrganizationRequest) (*OrganizationResponse, error) {
	org, err := s.organizationRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := org.Update(req.Name, req.NIP, req.REGON, req.ContactPerson); err != nil {
		return nil, err
	}

	if err := s.organizationRepo.Save(ctx, org); err != nil {
		return nil, err
	}

	resp := ToOrganizationResponse(org)
	return &resp, nil
}

// Delete removes an employer
func (s *OrganizationService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.organizationRepo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.organizationRepo.Delete(ctx, id)
}
