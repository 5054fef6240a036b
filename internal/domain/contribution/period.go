package contribution

import (
	"fmt"

	"github.com/ppkgen/backend/internal/domain/shared"
)

// Period identifies one filing cycle as a (year, month) pair.
type Period struct {
	Year  int `json:"year"`
	Month int `json:"month"`
}

// NewPeriod validates and creates a Period.
func NewPeriod(year, month int) (Period, error) {
	p := Period{Year: year, Month: month}
	if err := p.Validate(); err != nil {
		return Period{}, err
	}
	return p, nil
}

// Validate checks the period is a real calendar (year, month).
func (p Period) Validate() error {
	if p.Month < 1 || p.Month > 12 {
		return shared.NewValidationError("period month", "must be between 1 and 12")
	}
	if p.Year < 1900 || p.Year > 9999 {
		return shared.NewValidationError("period year", "must be a four-digit year")
	}
	return nil
}

// String renders the period as YYYY-MM, the form used in the structured
// filing document.
func (p Period) String() string {
	return fmt.Sprintf("%04d-%02d", p.Year, p.Month)
}

// Before reports whether p is an earlier filing cycle than other.
func (p Period) Before(other Period) bool {
	if p.Year != other.Year {
		return p.Year < other.Year
	}
	return p.Month < other.Month
}
