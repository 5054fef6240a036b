package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/ppkgen/backend/internal/domain/contribution"
	"github.com/ppkgen/backend/internal/domain/shared"
	"github.com/ppkgen/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormContributionRepository implements the contribution Repository using
// GORM. The contributions table owns the UNIQUE(member_id, period_year,
// period_month) index; both write paths resolve races through ON CONFLICT on
// that index instead of read-then-write.
type GormContributionRepository struct {
	db *gorm.DB
}

// NewGormContributionRepository creates a new GormContributionRepository
func NewGormContributionRepository(db *gorm.DB) *GormContributionRepository {
	return &GormContributionRepository{db: db}
}

// contributionRow is the scan target for the period listing join.
type contributionRow struct {
	ContributionID     uuid.UUID
	MemberID           uuid.UUID
	PESEL              string
	FirstName          string
	LastName           string
	SecondName         string
	Sex                string
	BirthDate          string
	Citizenship        string
	DocType            string
	DocNumber          string
	EmployeeBasic      string
	EmployeeAdditional string
	EmployerBasic      string
	EmployerAdditional string
	ReducedBasicFlag   string
	Source             string
}

// ListForPeriod returns the contributions of an organization's members for
// one period, joined with member data and ordered by (last name, first name)
func (r *GormContributionRepository) ListForPeriod(ctx context.Context, organizationID uuid.UUID, period contribution.Period) ([]contribution.Record, error) {
	var rows []contributionRow
	err := r.db.WithContext(ctx).
		Table("contributions").
		Select(`contributions.id AS contribution_id,
			members.id AS member_id,
			members.pesel,
			members.first_name,
			members.last_name,
			members.second_name,
			members.sex,
			members.birth_date,
			members.citizenship,
			members.doc_type,
			members.doc_number,
			contributions.employee_basic,
			contributions.employee_additional,
			contributions.employer_basic,
			contributions.employer_additional,
			contributions.reduced_basic_flag,
			contributions.source`).
		Joins("JOIN members ON members.id = contributions.member_id").
		Where("members.organization_id = ? AND contributions.period_year = ? AND contributions.period_month = ?",
			organizationID, period.Year, period.Month).
		Order("members.last_name ASC, members.first_name ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	records := make([]contribution.Record, 0, len(rows))
	for _, row := range rows {
		records = append(records, contribution.Record{
			ContributionID:     row.ContributionID,
			MemberID:           row.MemberID,
			PESEL:              row.PESEL,
			FirstName:          row.FirstName,
			LastName:           row.LastName,
			SecondName:         row.SecondName,
			Sex:                row.Sex,
			BirthDate:          row.BirthDate,
			Citizenship:        row.Citizenship,
			DocType:            row.DocType,
			DocNumber:          row.DocNumber,
			EmployeeBasic:      row.EmployeeBasic,
			EmployeeAdditional: row.EmployeeAdditional,
			EmployerBasic:      row.EmployerBasic,
			EmployerAdditional: row.EmployerAdditional,
			ReducedBasicFlag:   row.ReducedBasicFlag,
			Source:             contribution.Source(row.Source),
		})
	}
	return records, nil
}

// FindLatestByMember returns the member's most recent contribution ordered by
// (year desc, month desc), or shared.ErrNotFound
func (r *GormContributionRepository) FindLatestByMember(ctx context.Context, memberID uuid.UUID) (*contribution.Contribution, error) {
	var model models.ContributionModel
	err := r.db.WithContext(ctx).
		Where("member_id = ?", memberID).
		Order("period_year DESC, period_month DESC").
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// Upsert inserts or updates the (member, period) row. Only the supplied
// fields overwrite stored values; the source always becomes manual.
func (r *GormContributionRepository) Upsert(ctx context.Context, params contribution.UpsertParams) error {
	fresh := contribution.NewZeroPrefilled(params.MemberID, params.Period)
	fresh.Source = contribution.SourceManual
	applySupplied(fresh, params)

	var model models.ContributionModel
	model.FromDomain(fresh)

	assignments := map[string]any{
		"source":     string(contribution.SourceManual),
		"updated_at": model.UpdatedAt,
	}
	if params.EmployeeBasic != nil {
		assignments["employee_basic"] = *params.EmployeeBasic
	}
	if params.EmployeeAdditional != nil {
		assignments["employee_additional"] = *params.EmployeeAdditional
	}
	if params.EmployerBasic != nil {
		assignments["employer_basic"] = *params.EmployerBasic
	}
	if params.EmployerAdditional != nil {
		assignments["employer_additional"] = *params.EmployerAdditional
	}
	if params.ReducedBasicFlag != nil {
		assignments["reduced_basic_flag"] = *params.ReducedBasicFlag
	}

	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "member_id"}, {Name: "period_year"}, {Name: "period_month"},
		},
		DoUpdates: clause.Assignments(assignments),
	}).Create(&model).Error
}

// InsertIfAbsent inserts the contribution unless a row for its (member,
// period) already exists. Reports whether a row was inserted.
func (r *GormContributionRepository) InsertIfAbsent(ctx context.Context, c *contribution.Contribution) (bool, error) {
	var model models.ContributionModel
	model.FromDomain(c)

	result := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "member_id"}, {Name: "period_year"}, {Name: "period_month"},
		},
		DoNothing: true,
	}).Create(&model)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// AvailablePeriods returns the distinct periods that have contributions for
// an organization, most recent first
func (r *GormContributionRepository) AvailablePeriods(ctx context.Context, organizationID uuid.UUID) ([]contribution.Period, error) {
	var rows []struct {
		PeriodYear  int
		PeriodMonth int
	}
	err := r.db.WithContext(ctx).
		Table("contributions").
		Distinct("contributions.period_year", "contributions.period_month").
		Joins("JOIN members ON members.id = contributions.member_id").
		Where("members.organization_id = ?", organizationID).
		Order("period_year DESC, period_month DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	periods := make([]contribution.Period, 0, len(rows))
	for _, row := range rows {
		periods = append(periods, contribution.Period{Year: row.PeriodYear, Month: row.PeriodMonth})
	}
	return periods, nil
}

// applySupplied overlays the non-nil fields of params onto a contribution.
func applySupplied(c *contribution.Contribution, params contribution.UpsertParams) {
	if params.EmployeeBasic != nil {
		c.EmployeeBasic = *params.EmployeeBasic
	}
	if params.EmployeeAdditional != nil {
		c.EmployeeAdditional = *params.EmployeeAdditional
	}
	if params.EmployerBasic != nil {
		c.EmployerBasic = *params.EmployerBasic
	}
	if params.EmployerAdditional != nil {
		c.EmployerAdditional = *params.EmployerAdditional
	}
	if params.ReducedBasicFlag != nil {
		c.ReducedBasicFlag = *params.ReducedBasicFlag
	}
}
