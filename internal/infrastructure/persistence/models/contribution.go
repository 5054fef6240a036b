package models

import (
	"github.com/google/uuid"
	"github.com/ppkgen/backend/internal/domain/contribution"
)

// ContributionModel is the persistence model for the Contribution domain
// entity. The composite unique index enforces one row per (member, period);
// Upsert and InsertIfAbsent rely on it for their conflict targets.
type ContributionModel struct {
	BaseModel
	MemberID           uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_contribution_member_period,priority:1"`
	PeriodYear         int       `gorm:"not null;uniqueIndex:idx_contribution_member_period,priority:2"`
	PeriodMonth        int       `gorm:"not null;uniqueIndex:idx_contribution_member_period,priority:3"`
	EmployeeBasic      string    `gorm:"type:varchar(20);not null;default:'0.00'"`
	EmployeeAdditional string    `gorm:"type:varchar(20);not null;default:'0.00'"`
	EmployerBasic      string    `gorm:"type:varchar(20);not null;default:'0.00'"`
	EmployerAdditional string    `gorm:"type:varchar(20);not null;default:'0.00'"`
	ReducedBasicFlag   string    `gorm:"type:varchar(1);not null;default:'N'"`
	Source             string    `gorm:"type:varchar(20);not null"`
}

// TableName returns the table name for GORM
func (ContributionModel) TableName() string {
	return "contributions"
}

// ToDomain converts the persistence model to a domain Contribution entity.
func (m *ContributionModel) ToDomain() *contribution.Contribution {
	return &contribution.Contribution{
		BaseEntity:         m.BaseModel.ToDomain(),
		MemberID:           m.MemberID,
		Period:             contribution.Period{Year: m.PeriodYear, Month: m.PeriodMonth},
		EmployeeBasic:      m.EmployeeBasic,
		EmployeeAdditional: m.EmployeeAdditional,
		EmployerBasic:      m.EmployerBasic,
		EmployerAdditional: m.EmployerAdditional,
		ReducedBasicFlag:   m.ReducedBasicFlag,
		Source:             contribution.Source(m.Source),
	}
}

// FromDomain populates the persistence model from a domain Contribution entity.
func (m *ContributionModel) FromDomain(c *contribution.Contribution) {
	m.FromDomainBaseEntity(c.BaseEntity)
	m.MemberID = c.MemberID
	m.PeriodYear = c.Period.Year
	m.PeriodMonth = c.Period.Month
	m.EmployeeBasic = c.EmployeeBasic
	m.EmployeeAdditional = c.EmployeeAdditional
	m.EmployerBasic = c.EmployerBasic
	m.EmployerAdditional = c.EmployerAdditional
	m.ReducedBasicFlag = c.ReducedBasicFlag
	m.Source = string(c.Source)
}
