package employer

import (
	"context"

	"github.com/google/uuid"
	"github.com/ppkgen/backend/internal/domain/employer"
)

// MemberService handles member enrollment operations
type MemberService struct {
	memberRepo       employer.MemberRepository
	organizationRepo employer.OrganizationRepository
}

// NewMemberService creates a new MemberService
func NewMemberService(memberRepo employer.MemberRepository, organizationRepo employer.OrganizationRepository) *MemberService {
	return &MemberService{
		memberRepo:       memberRepo,
		organizationRepo: organizationRepo,
	}
}

// Create enrolls a member under an organization. The PESEL is validated and
// birth date and sex are derived from it.
func (s *MemberService) Create(ctx context.Context, organizationID uuid.UUID, req CreateMemberRequest) (*MemberResponse, error) {
	if _, err := s.organizationRepo.FindByID(ctx, organizationID); err != nil {
		return nil, err
	}

	member, err := employer.NewMember(organizationID, req.PESEL, req.FirstName, req.LastName)
	if err != nil {
		return nil, err
	}

	if req.SecondName != "" {
		member.SetSecondName(req.SecondName)
	}
	if req.Citizenship != "" {
		member.SetCitizenship(req.Citizenship)
	}
	if req.DocType != "" || req.DocNumber != "" {
		member.SetIdentityDocument(req.DocType, req.DocNumber)
	}

	if err := s.memberRepo.Save(ctx, member); err != nil {
		return nil, err
	}

	resp := ToMemberResponse(member)
	return &resp, nil
}

// Get returns a single member by ID
func (s *MemberService) Get(ctx context.Context, id uuid.UUID) (*MemberResponse, error) {
	member, err := s.memberRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := ToMemberResponse(member)
	return &resp, nil
}

// List returns all members of an organization ordered by (last name, first name)
func (s *MemberService) List(ctx context.Context, organizationID uuid.UUID) ([]MemberResponse, error) {
	members, err := s.memberRepo.FindByOrganization(ctx, organizationID)
	if err != nil {
		return nil, err
	}

	responses := make([]MemberResponse, 0, len(members))
	for i := range members {
		responses = append(responses, ToMemberResponse(&members[i]))
	}
	return responses, nil
}

// Update replaces a member's editable details. The PESEL and derived fields
// stay as enrolled.
func (s *MemberService) Update(ctx context.Context, id uuid.UUID, req UpdateMemberRequest) (*MemberResponse, error) {
	member, err := s.memberRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	err = member.Update(req.FirstName, req.LastName, req.SecondName,
		req.Citizenship, req.DocType, req.DocNumber, employer.MemberStatus(req.Status))
	if err != nil {
		return nil, err
	}

	if err := s.memberRepo.Save(ctx, member); err != nil {
		return nil, err
	}

	resp := ToMemberResponse(member)
	return &resp, nil
}

// Delete removes a member
func (s *MemberService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.memberRepo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.memberRepo.Delete(ctx, id)
}

// ValidatePESEL checks an identifier without persisting anything. A failed
// check is a normal outcome, not an error.
func (s *MemberService) ValidatePESEL(req ValidatePESELRequest) ValidatePESELResponse {
	info, err := employer.ValidatePESEL(req.PESEL)
	if err != nil {
		return ValidatePESELResponse{Valid: false, Error: err.Error()}
	}
	return ValidatePESELResponse{
		Valid:     true,
		BirthDate: info.BirthDate,
		Sex:       info.Sex,
	}
}
