package contribution

import (
	"github.com/google/uuid"
	"github.com/ppkgen/backend/internal/domain/contribution"
)

// UpsertContributionRequest represents a partial amount edit for one
// (member, period) cell. Omitted fields keep their stored values.
type UpsertContributionRequest struct {
	MemberID           uuid.UUID `json:"member_id" binding:"required"`
	Year               int       `json:"year" binding:"required,min=1900,max=9999"`
	Month              int       `json:"month" binding:"required,min=1,max=12"`
	EmployeeBasic      *string   `json:"employee_basic"`
	EmployeeAdditional *string   `json:"employee_additional"`
	EmployerBasic      *string   `json:"employer_basic"`
	EmployerAdditional *string   `json:"employer_additional"`
	ReducedBasicFlag   *string   `json:"reduced_basic_flag" binding:"omitempty,oneof=N T"`
}

// PrefillRequest represents a request to seed a period from each member's
// most recent prior record
type PrefillRequest struct {
	Year  int `json:"year" binding:"required,min=1900,max=9999"`
	Month int `json:"month" binding:"required,min=1,max=12"`
}

// PrefillResponse reports how many rows the prefill inserted. Members that
// already had a row for the period are untouched and not counted.
type PrefillResponse struct {
	Inserted int `json:"inserted"`
}

// PeriodQuery binds a period from query parameters
type PeriodQuery struct {
	Year  int `form:"year" binding:"required,min=1900,max=9999"`
	Month int `form:"month" binding:"required,min=1,max=12"`
}

// ToParams converts the request to domain upsert parameters
func (r UpsertContributionRequest) ToParams() contribution.UpsertParams {
	return contribution.UpsertParams{
		MemberID:           r.MemberID,
		Period:             contribution.Period{Year: r.Year, Month: r.Month},
		EmployeeBasic:      r.EmployeeBasic,
		EmployeeAdditional: r.EmployeeAdditional,
		EmployerBasic:      r.EmployerBasic,
		EmployerAdditional: r.EmployerAdditional,
		ReducedBasicFlag:   r.ReducedBasicFlag,
	}
}
