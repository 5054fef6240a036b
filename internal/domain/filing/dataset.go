package filing

import (
	"time"

	"github.com/ppkgen/backend/internal/domain/contribution"
	"github.com/shopspring/decimal"
)

// Employer carries the organization identity embedded in a filing. It is a
// copy, not a reference: a snapshot must stay renderable after the
// organization record changes.
type Employer struct {
	Name          string `json:"name"`
	NIP           string `json:"nip"`
	REGON         string `json:"regon"`
	ContactPerson string `json:"contact_person"`
}

// Dataset is the full input of one filing generation: organization identity,
// period, generation timestamp and the joined records ordered by
// (last name, first name). Rendering a Dataset is a pure function of its
// fields.
type Dataset struct {
	Employer    Employer
	Period      contribution.Period
	GeneratedAt time.Time
	Records     []contribution.Record
}

// Totals holds the four exact-decimal column sums of a dataset.
type Totals struct {
	EmployeeBasic      decimal.Decimal
	EmployeeAdditional decimal.Decimal
	EmployerBasic      decimal.Decimal
	EmployerAdditional decimal.Decimal
}

// Totals sums the four amount columns with decimal arithmetic. A value that
// fails to parse contributes zero, matching the degrade-gracefully rule of
// the renderers.
func (d *Dataset) Totals() Totals {
	var t Totals
	for _, r := range d.Records {
		t.EmployeeBasic = t.EmployeeBasic.Add(parseOrZero(r.EmployeeBasic))
		t.EmployeeAdditional = t.EmployeeAdditional.Add(parseOrZero(r.EmployeeAdditional))
		t.EmployerBasic = t.EmployerBasic.Add(parseOrZero(r.EmployerBasic))
		t.EmployerAdditional = t.EmployerAdditional.Add(parseOrZero(r.EmployerAdditional))
	}
	return t
}

func parseOrZero(value string) decimal.Decimal {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero
	}
	return d
}
