package employer

import (
	"strings"

	"github.com/ppkgen/backend/internal/domain/shared"
)

// Organization represents an employer enrolled in the capital-savings program.
// It is the aggregate root owning members and their contributions.
type Organization struct {
	shared.BaseEntity
	Name          string
	NIP           string
	REGON         string
	ContactPerson string
}

// NewOrganization creates a new organization after validating both
// registration identifiers.
func NewOrganization(name, nip, regon, contactPerson string) (*Organization, error) {
	if strings.TrimSpace(name) == "" {
		return nil, shared.NewValidationError("name", "is required")
	}
	if err := ValidateNIP(nip); err != nil {
		return nil, err
	}
	if err := ValidateREGON(regon); err != nil {
		return nil, err
	}

	return &Organization{
		BaseEntity:    shared.NewBaseEntity(),
		Name:          name,
		NIP:           nip,
		REGON:         regon,
		ContactPerson: contactPerson,
	}, nil
}

// Update replaces the organization's details, revalidating identifiers.
func (o *Organization) Update(name, nip, regon, contactPerson string) error {
	if strings.TrimSpace(name) == "" {
		return shared.NewValidationError("name", "is required")
	}
	if err := ValidateNIP(nip); err != nil {
		return err
	}
	if err := ValidateREGON(regon); err != nil {
		return err
	}

	o.Name = name
	o.NIP = nip
	o.REGON = regon
	o.ContactPerson = contactPerson
	o.Touch()
	return nil
}
