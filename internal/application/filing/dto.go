package filing

import (
	"time"

	"github.com/google/uuid"
	"github.com/ppkgen/backend/internal/domain/filing"
)

// GenerateFilingRequest represents a request to generate a filing archive
// for one period
type GenerateFilingRequest struct {
	Year  int `json:"year" binding:"required,min=1900,max=9999"`
	Month int `json:"month" binding:"required,min=1,max=12"`
}

// ArchiveResponse carries a built archive and the name it should be served
// under
type ArchiveResponse struct {
	GenerationID uuid.UUID
	ArchiveName  string
	Bytes        []byte
}

// GenerationResponse represents a past generation in API responses. The
// snapshot blob is never exposed.
type GenerationResponse struct {
	ID                 uuid.UUID `json:"id"`
	OrganizationID     uuid.UUID `json:"organization_id"`
	Year               int       `json:"year"`
	Month              int       `json:"month"`
	GeneratedAt        time.Time `json:"generated_at"`
	ArchiveName        string    `json:"archive_name"`
	TotalEmployeeBasic string    `json:"total_employee_basic"`
	TotalEmployerBasic string    `json:"total_employer_basic"`
	MemberCount        int       `json:"member_count"`
}

// ToGenerationResponse converts a domain Generation to GenerationResponse
func ToGenerationResponse(g *filing.Generation) GenerationResponse {
	return GenerationResponse{
		ID:                 g.ID,
		OrganizationID:     g.OrganizationID,
		Year:               g.Period.Year,
		Month:              g.Period.Month,
		GeneratedAt:        g.GeneratedAt,
		ArchiveName:        g.ArchiveName,
		TotalEmployeeBasic: g.TotalEmployeeBasic,
		TotalEmployerBasic: g.TotalEmployerBasic,
		MemberCount:        g.MemberCount,
	}
}
