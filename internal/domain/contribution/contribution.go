package contribution

import (
	"github.com/google/uuid"
	"github.com/ppkgen/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Source marks how a contribution record came to exist.
type Source string

const (
	SourceManual    Source = "manual"
	SourcePrefilled Source = "prefilled"
)

// Amount defaults for a member with no contribution history.
const (
	ZeroAmount  = "0.00"
	FlagNotSet  = "N"
	FlagReduced = "T"
)

// Contribution is the fact for exactly one (member, period) pair. Amounts are
// stored as decimal strings; validation and arithmetic go through
// shopspring/decimal.
type Contribution struct {
	shared.BaseEntity
	MemberID           uuid.UUID
	Period             Period
	EmployeeBasic      string
	EmployeeAdditional string
	EmployerBasic      string
	EmployerAdditional string
	ReducedBasicFlag   string
	Source             Source
}

// NewPrefilled creates a contribution synthesized by the period reconciler,
// copying amounts from a prior record.
func NewPrefilled(memberID uuid.UUID, period Period, employeeBasic, employeeAdditional, employerBasic, employerAdditional, reducedBasicFlag string) *Contribution {
	return &Contribution{
		BaseEntity:         shared.NewBaseEntity(),
		MemberID:           memberID,
		Period:             period,
		EmployeeBasic:      employeeBasic,
		EmployeeAdditional: employeeAdditional,
		EmployerBasic:      employerBasic,
		EmployerAdditional: employerAdditional,
		ReducedBasicFlag:   reducedBasicFlag,
		Source:             SourcePrefilled,
	}
}

// NewZeroPrefilled creates a zero-amount contribution for a member with no
// history at all.
func NewZeroPrefilled(memberID uuid.UUID, period Period) *Contribution {
	return NewPrefilled(memberID, period, ZeroAmount, ZeroAmount, ZeroAmount, ZeroAmount, FlagNotSet)
}

// ValidateAmount checks that a monetary string parses as a non-negative
// decimal with at most two fractional digits. The field name is carried into
// the error message.
func ValidateAmount(field, value string) error {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return shared.NewValidationError(field, "is not a valid amount")
	}
	if d.IsNegative() {
		return shared.NewValidationError(field, "cannot be negative")
	}
	if d.Exponent() < -2 {
		return shared.NewValidationError(field, "cannot have more than two decimal places")
	}
	return nil
}

// UpsertParams carries a partial contribution update. Nil fields retain the
// stored value; an absent row is created from ZeroAmount/FlagNotSet defaults.
// The provenance always becomes manual.
type UpsertParams struct {
	MemberID           uuid.UUID
	Period             Period
	EmployeeBasic      *string
	EmployeeAdditional *string
	EmployerBasic      *string
	EmployerAdditional *string
	ReducedBasicFlag   *string
}

// Validate checks every supplied amount field.
func (p UpsertParams) Validate() error {
	if err := p.Period.Validate(); err != nil {
		return err
	}
	fields := []struct {
		name  string
		value *string
	}{
		{"employee basic amount", p.EmployeeBasic},
		{"employee additional amount", p.EmployeeAdditional},
		{"employer basic amount", p.EmployerBasic},
		{"employer additional amount", p.EmployerAdditional},
	}
	for _, f := range fields {
		if f.value == nil {
			continue
		}
		if err := ValidateAmount(f.name, *f.value); err != nil {
			return err
		}
	}
	if p.ReducedBasicFlag != nil && *p.ReducedBasicFlag != FlagNotSet && *p.ReducedBasicFlag != FlagReduced {
		return shared.NewValidationError("reduced basic flag", "must be N or T")
	}
	return nil
}
