package employer

import (
	"strings"

	"github.com/google/uuid"
	"github.com/ppkgen/backend/internal/domain/shared"
)

// MemberStatus represents the lifecycle status of a program member
type MemberStatus string

const (
	MemberStatusActive   MemberStatus = "active"
	MemberStatusInactive MemberStatus = "inactive"
)

// DefaultCitizenship is assumed when no citizenship is supplied.
const DefaultCitizenship = "PL"

// Member represents a program participant employed by an organization.
// BirthDate and Sex are derived from the PESEL at creation and are not
// re-validated afterwards.
type Member struct {
	shared.BaseEntity
	OrganizationID uuid.UUID
	PESEL          string
	FirstName      string
	LastName       string
	SecondName     string
	Sex            string
	BirthDate      string // YYYY-MM-DD
	Citizenship    string
	DocType        string
	DocNumber      string
	Status         MemberStatus
}

// NewMember validates the PESEL, derives birth date and sex from it, and
// creates an active member.
func NewMember(organizationID uuid.UUID, pesel, firstName, lastName string) (*Member, error) {
	info, err := ValidatePESEL(pesel)
	if err != nil {
		return nil, err
	}
	if err := validateMemberNames(firstName, lastName); err != nil {
		return nil, err
	}

	return &Member{
		BaseEntity:     shared.NewBaseEntity(),
		OrganizationID: organizationID,
		PESEL:          pesel,
		FirstName:      firstName,
		LastName:       lastName,
		Sex:            info.Sex,
		BirthDate:      info.BirthDate,
		Citizenship:    DefaultCitizenship,
		Status:         MemberStatusActive,
	}, nil
}

// Update replaces the member's editable details. The PESEL and the fields
// derived from it are deliberately untouched.
func (m *Member) Update(firstName, lastName, secondName, citizenship, docType, docNumber string, status MemberStatus) error {
	if err := validateMemberNames(firstName, lastName); err != nil {
		return err
	}
	if status != MemberStatusActive && status != MemberStatusInactive {
		return shared.NewValidationError("status", "must be active or inactive")
	}

	m.FirstName = firstName
	m.LastName = lastName
	m.SecondName = secondName
	if citizenship == "" {
		citizenship = DefaultCitizenship
	}
	m.Citizenship = citizenship
	m.DocType = docType
	m.DocNumber = docNumber
	m.Status = status
	m.Touch()
	return nil
}

// SetIdentityDocument sets the optional identity-document fields.
func (m *Member) SetIdentityDocument(docType, docNumber string) {
	m.DocType = docType
	m.DocNumber = docNumber
	m.Touch()
}

// SetSecondName sets the optional second name.
func (m *Member) SetSecondName(secondName string) {
	m.SecondName = secondName
	m.Touch()
}

// SetCitizenship overrides the default citizenship.
func (m *Member) SetCitizenship(citizenship string) {
	if citizenship != "" {
		m.Citizenship = citizenship
	}
	m.Touch()
}

// IsActive reports whether the member participates in new filing periods.
func (m *Member) IsActive() bool {
	return m.Status == MemberStatusActive
}

func validateMemberNames(firstName, lastName string) error {
	if strings.TrimSpace(firstName) == "" {
		return shared.NewValidationError("first name", "is required")
	}
	if strings.TrimSpace(lastName) == "" {
		return shared.NewValidationError("last name", "is required")
	}
	return nil
}
