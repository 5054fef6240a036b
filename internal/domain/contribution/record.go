package contribution

import (
	"github.com/google/uuid"
)

// Record is a contribution joined with its member's identity data, in the
// shape consumed by period listings and filing generation. JSON tags define
// the snapshot serialization, so renaming them breaks stored snapshots.
type Record struct {
	ContributionID     uuid.UUID `json:"contribution_id"`
	MemberID           uuid.UUID `json:"member_id"`
	PESEL              string    `json:"pesel"`
	FirstName          string    `json:"first_name"`
	LastName           string    `json:"last_name"`
	SecondName         string    `json:"second_name"`
	Sex                string    `json:"sex"`
	BirthDate          string    `json:"birth_date"`
	Citizenship        string    `json:"citizenship"`
	DocType            string    `json:"doc_type"`
	DocNumber          string    `json:"doc_number"`
	EmployeeBasic      string    `json:"employee_basic"`
	EmployeeAdditional string    `json:"employee_additional"`
	EmployerBasic      string    `json:"employer_basic"`
	EmployerAdditional string    `json:"employer_additional"`
	ReducedBasicFlag   string    `json:"reduced_basic_flag"`
	Source             Source    `json:"source"`
}
