package filing

import (
	"time"

	"github.com/google/uuid"
	"github.com/ppkgen/backend/internal/domain/contribution"
	"github.com/ppkgen/backend/internal/domain/shared"
)

// Generation records one filing generation event: the period, summary totals
// and the immutable snapshot the archive was produced from.
type Generation struct {
	shared.BaseEntity
	OrganizationID     uuid.UUID
	Period             contribution.Period
	GeneratedAt        time.Time
	ArchiveName        string
	TotalEmployeeBasic string
	TotalEmployerBasic string
	MemberCount        int
	Snapshot           []byte
}

// NewGeneration creates a generation record from a rendered dataset.
func NewGeneration(organizationID uuid.UUID, d *Dataset, archiveName string, snapshot []byte) *Generation {
	totals := d.Totals()
	return &Generation{
		BaseEntity:         shared.NewBaseEntity(),
		OrganizationID:     organizationID,
		Period:             d.Period,
		GeneratedAt:        d.GeneratedAt,
		ArchiveName:        archiveName,
		TotalEmployeeBasic: totals.EmployeeBasic.StringFixed(2),
		TotalEmployerBasic: totals.EmployerBasic.StringFixed(2),
		MemberCount:        len(d.Records),
		Snapshot:           snapshot,
	}
}
