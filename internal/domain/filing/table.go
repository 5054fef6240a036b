package filing

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// tableHeader is the fixed 16-column header row, emitted unquoted. Three
// columns (UCZESTNIK_IDENTYFIKATOR_INFORMATYCZNY, PZIF_RACH_PPK,
// ID_EPPK_UCZESTNIKA) are reserved and always empty.
const tableHeader = "LP;NR_PESEL;DOK_TOZSAMOSCI_RODZAJ;DOK_TOZSAMOSCI_SERIA_NUMER;" +
	"UCZESTNIK_IDENTYFIKATOR_INFORMATYCZNY;NAZWISKO;IMIE;" +
	"WARTOSC_PODST_PRACOWNIKA;WARTOSC_DODATK_PRACOWNIKA;" +
	"WARTOSC_PODST_PRACODAWCY;WARTOSC_DODATK_PRACODAWCY;" +
	"FLAGA_OBNIZENIE_SKL_PODST_PRACOWNIKA;ZA_MIESIAC;ZA_ROK;" +
	"PZIF_RACH_PPK;ID_EPPK_UCZESTNIKA"

// RenderTable renders the delimited table: CRLF rows, semicolon delimiter,
// every data field double-quoted, comma decimals, month unpadded. The
// stdlib csv writer cannot produce this mixed quoting, so rows are built
// directly.
func RenderTable(d *Dataset) string {
	var b strings.Builder

	b.WriteString(tableHeader)
	b.WriteString("\r\n")

	for i, r := range d.Records {
		fields := []string{
			fmt.Sprintf("%d", i+1),
			r.PESEL,
			r.DocType,
			r.DocNumber,
			"", // reserved informational identifier
			strings.ToUpper(r.LastName),
			strings.ToUpper(r.FirstName),
			formatCommaDecimal(r.EmployeeBasic),
			formatCommaDecimal(r.EmployeeAdditional),
			formatCommaDecimal(r.EmployerBasic),
			formatCommaDecimal(r.EmployerAdditional),
			r.ReducedBasicFlag,
			fmt.Sprintf("%d", d.Period.Month),
			fmt.Sprintf("%04d", d.Period.Year),
			"", // reserved banking reference
			"", // reserved participant reference
		}
		for j, f := range fields {
			if j > 0 {
				b.WriteByte(';')
			}
			b.WriteByte('"')
			b.WriteString(f)
			b.WriteByte('"')
		}
		b.WriteString("\r\n")
	}

	return b.String()
}

// formatCommaDecimal renders an amount with a decimal comma and exactly two
// fractional digits. An unparseable value only gets its separator swapped.
func formatCommaDecimal(value string) string {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return strings.ReplaceAll(value, ".", ",")
	}
	return strings.ReplaceAll(d.StringFixed(2), ".", ",")
}
