package employer

import (
	"time"

	"github.com/google/uuid"
	"github.com/ppkgen/backend/internal/domain/employer"
)

// CreateOrganizationRequest represents a request to register an employer
type CreateOrganizationRequest struct {
	Name          string `json:"name" binding:"required,min=1,max=200"`
	NIP           string `json:"nip" binding:"required"`
	REGON         string `json:"regon" binding:"required"`
	ContactPerson string `json:"contact_person" binding:"max=200"`
}

// UpdateOrganizationRequest represents a request to update an employer
type UpdateOrganizationRequest struct {
	Name          string `json:"name" binding:"required,min=1,max=200"`
	NIP           string `json:"nip" binding:"required"`
	REGON         string `json:"regon" binding:"required"`
	ContactPerson string `json:"contact_person" binding:"max=200"`
}

// OrganizationResponse represents an employer in API responses
type OrganizationResponse struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	NIP           string    `json:"nip"`
	REGON         string    `json:"regon"`
	ContactPerson string    `json:"contact_person"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// CreateMemberRequest represents a request to enroll a member
type CreateMemberRequest struct {
	PESEL       string `json:"pesel" binding:"required,len=11"`
	FirstName   string `json:"first_name" binding:"required,min=1,max=100"`
	LastName    string `json:"last_name" binding:"required,min=1,max=100"`
	SecondName  string `json:"second_name" binding:"max=100"`
	Citizenship string `json:"citizenship" binding:"max=10"`
	DocType     string `json:"doc_type" binding:"max=50"`
	DocNumber   string `json:"doc_number" binding:"max=50"`
}

// UpdateMemberRequest represents a request to update a member. The PESEL and
// the fields derived from it cannot be changed.
type UpdateMemberRequest struct {
	FirstName   string `json:"first_name" binding:"required,min=1,max=100"`
	LastName    string `json:"last_name" binding:"required,min=1,max=100"`
	SecondName  string `json:"second_name" binding:"max=100"`
	Citizenship string `json:"citizenship" binding:"max=10"`
	DocType     string `json:"doc_type" binding:"max=50"`
	DocNumber   string `json:"doc_number" binding:"max=50"`
	Status      string `json:"status" binding:"required,oneof=active inactive"`
}

// MemberResponse represents a member in API responses
type MemberResponse struct {
	ID             uuid.UUID `json:"id"`
	OrganizationID uuid.UUID `json:"organization_id"`
	PESEL          string    `json:"pesel"`
	FirstName      string    `json:"first_name"`
	LastName       string    `json:"last_name"`
	SecondName     string    `json:"second_name"`
	Sex            string    `json:"sex"`
	BirthDate      string    `json:"birth_date"`
	Citizenship    string    `json:"citizenship"`
	DocType        string    `json:"doc_type"`
	DocNumber      string    `json:"doc_number"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// ValidatePESELRequest represents a standalone identifier check
type ValidatePESELRequest struct {
	PESEL string `json:"pesel" binding:"required"`
}

// ValidatePESELResponse carries the outcome of an identifier check. BirthDate
// and Sex are only set when the identifier is valid.
type ValidatePESELResponse struct {
	Valid     bool   `json:"valid"`
	BirthDate string `json:"birth_date,omitempty"`
	Sex       string `json:"sex,omitempty"`
	Error     string `json:"error,omitempty"`
}

// ToOrganizationResponse converts a domain Organization to OrganizationResponse
func ToOrganizationResponse(o *employer.Organization) OrganizationResponse {
	return OrganizationResponse{
		ID:            o.ID,
		Name:          o.Name,
		NIP:           o.NIP,
		REGON:         o.REGON,
		ContactPerson: o.ContactPerson,
		CreatedAt:     o.CreatedAt,
		UpdatedAt:     o.UpdatedAt,
	}
}

// ToMemberResponse converts a domain Member to MemberResponse
func ToMemberResponse(m *employer.Member) MemberResponse {
	return MemberResponse{
		ID:             m.ID,
		OrganizationID: m.OrganizationID,
		PESEL:          m.PESEL,
		FirstName:      m.FirstName,
		LastName:       m.LastName,
		SecondName:     m.SecondName,
		Sex:            m.Sex,
		BirthDate:      m.BirthDate,
		Citizenship:    m.Citizenship,
		DocType:        m.DocType,
		DocNumber:      m.DocNumber,
		Status:         string(m.Status),
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}
