package models

import (
	"github.com/google/uuid"
	"github.com/ppkgen/backend/internal/domain/employer"
)

// OrganizationModel is the persistence model for the Organization domain
// entity.
type OrganizationModel struct {
	BaseModel
	Name          string `gorm:"type:varchar(200);not null"`
	NIP           string `gorm:"type:varchar(10);not null;uniqueIndex"`
	REGON         string `gorm:"type:varchar(9);not null"`
	ContactPerson string `gorm:"type:varchar(200)"`
}

// TableName returns the table name for GORM
func (OrganizationModel) TableName() string {
	return "organizations"
}

// ToDomain converts the persistence model to a domain Organization entity.
func (m *OrganizationModel) ToDomain() *employer.Organization {
	return &employer.Organization{
		BaseEntity:    m.BaseModel.ToDomain(),
		Name:          m.Name,
		NIP:           m.NIP,
		REGON:         m.REGON,
		ContactPerson: m.ContactPerson,
	}
}

// FromDomain populates the persistence model from a domain Organization entity.
func (m *OrganizationModel) FromDomain(o *employer.Organization) {
	m.FromDomainBaseEntity(o.BaseEntity)
	m.Name = o.Name
	m.NIP = o.NIP
	m.REGON = o.REGON
	m.ContactPerson = o.ContactPerson
}

// MemberModel is the persistence model for the Member domain entity.
type MemberModel struct {
	BaseModel
	OrganizationID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_member_org_pesel,priority:1"`
	PESEL          string    `gorm:"type:varchar(11);not null;uniqueIndex:idx_member_org_pesel,priority:2"`
	FirstName      string    `gorm:"type:varchar(100);not null"`
	LastName       string    `gorm:"type:varchar(100);not null"`
	SecondName     string    `gorm:"type:varchar(100)"`
	Sex            string    `gorm:"type:varchar(1);not null"`
	BirthDate      string    `gorm:"type:varchar(10);not null"`
	Citizenship    string    `gorm:"type:varchar(10);not null"`
	DocType        string    `gorm:"type:varchar(50)"`
	DocNumber      string    `gorm:"type:varchar(50)"`
	Status         string    `gorm:"type:varchar(20);not null;default:'active';index"`
}

// TableName returns the table name for GORM
func (MemberModel) TableName() string {
	return "members"
}

// ToDomain converts the persistence model to a domain Member entity.
func (m *MemberModel) ToDomain() *employer.Member {
	return &employer.Member{
		BaseEntity:     m.BaseModel.ToDomain(),
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
		Status:         employer.MemberStatus(m.Status),
	}
}

// FromDomain populates the persistence model from a domain Member entity.
func (m *MemberModel) FromDomain(member *employer.Member) {
	m.FromDomainBaseEntity(member.BaseEntity)
	m.OrganizationID = member.OrganizationID
	m.PESEL = member.PESEL
	m.FirstName = member.FirstName
	m.LastName = member.LastName
	m.SecondName = member.SecondName
	m.Sex = member.Sex
	m.BirthDate = member.BirthDate
	m.Citizenship = member.Citizenship
	m.DocType = member.DocType
	m.DocNumber = member.DocNumber
	m.Status = string(member.Status)
}
