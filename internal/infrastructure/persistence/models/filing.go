package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/ppkgen/backend/internal/domain/contribution"
	"github.com/ppkgen/backend/internal/domain/filing"
)

// GenerationModel is the persistence model for the Generation domain entity.
// Rows are append-only; the snapshot blob is what later exports re-render
// from.
type GenerationModel struct {
	BaseModel
	OrganizationID     uuid.UUID `gorm:"type:uuid;not null;index"`
	PeriodYear         int       `gorm:"not null"`
	PeriodMonth        int       `gorm:"not null"`
	GeneratedAt        time.Time `gorm:"not null"`
	ArchiveName        string    `gorm:"type:varchar(100);not null"`
	TotalEmployeeBasic string    `gorm:"type:varchar(20);not null"`
	TotalEmployerBasic string    `gorm:"type:varchar(20);not null"`
	MemberCount        int       `gorm:"not null"`
	Snapshot           []byte    `gorm:"type:blob"`
}

// TableName returns the table name for GORM
func (GenerationModel) TableName() string {
	return "generations"
}

// ToDomain converts the persistence model to a domain Generation entity.
func (m *GenerationModel) ToDomain() *filing.Generation {
	return &filing.Generation{
		BaseEntity:         m.BaseModel.ToDomain(),
		OrganizationID:     m.OrganizationID,
		Period:             contribution.Period{Year: m.PeriodYear, Month: m.PeriodMonth},
		GeneratedAt:        m.GeneratedAt,
		ArchiveName:        m.ArchiveName,
		TotalEmployeeBasic: m.TotalEmployeeBasic,
		TotalEmployerBasic: m.TotalEmployerBasic,
		MemberCount:        m.MemberCount,
		Snapshot:           m.Snapshot,
	}
}

// FromDomain populates the persistence model from a domain Generation entity.
func (m *GenerationModel) FromDomain(g *filing.Generation) {
	m.FromDomainBaseEntity(g.BaseEntity)
	m.OrganizationID = g.OrganizationID
	m.PeriodYear = g.Period.Year
	m.PeriodMonth = g.Period.Month
	m.GeneratedAt = g.GeneratedAt
	m.ArchiveName = g.ArchiveName
	m.TotalEmployeeBasic = g.TotalEmployeeBasic
	m.TotalEmployerBasic = g.TotalEmployerBasic
	m.MemberCount = g.MemberCount
	m.Snapshot = g.Snapshot
}
