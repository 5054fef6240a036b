package filing

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// documentVersion is the fixed version marker required by the registry.
const documentVersion = "GRUPA_PPK 1.00"

// RenderDocument renders the structured registry document. The output is
// consumed byte-for-byte by the receiving portal: CRLF line terminators,
// 4-space indentation, dot decimals with exactly two fractional digits,
// empty fields as paired empty tags.
func RenderDocument(d *Dataset) string {
	var b strings.Builder

	generated := d.GeneratedAt.Format("2006-01-02 15:04:05")
	period := d.Period.String()

	b.WriteString("<?xml version=\"1.0\" encoding=\"utf-8\"?>\r\n")
	b.WriteString("<PPK>\r\n")
	fmt.Fprintf(&b, "    <WERSJA>%s</WERSJA>\r\n", documentVersion)
	fmt.Fprintf(&b, "    <GENERACJA>%s</GENERACJA>\r\n", generated)
	b.WriteString("    <PRACODAWCA>\r\n")
	fmt.Fprintf(&b, "        <NIP>%s</NIP>\r\n", d.Employer.NIP)
	fmt.Fprintf(&b, "        <REGON>%s</REGON>\r\n", d.Employer.REGON)
	fmt.Fprintf(&b, "        <KONTAKT>%s</KONTAKT>\r\n", d.Employer.ContactPerson)
	b.WriteString("    </PRACODAWCA>\r\n")
	b.WriteString("    <DANE_UCZESTNIKA>\r\n")

	for _, r := range d.Records {
		b.WriteString("        <UCZESTNIK>\r\n")
		fmt.Fprintf(&b, "            <NR_PESEL>%s</NR_PESEL>\r\n", r.PESEL)
		fmt.Fprintf(&b, "            <DOK_TOZ_TYP>%s</DOK_TOZ_TYP>\r\n", r.DocType)
		fmt.Fprintf(&b, "            <DOK_TOZ_SYM>%s</DOK_TOZ_SYM>\r\n", r.DocNumber)
		fmt.Fprintf(&b, "            <NAZWISKO>%s</NAZWISKO>\r\n", strings.ToUpper(r.LastName))
		fmt.Fprintf(&b, "            <IMIE>%s</IMIE>\r\n", strings.ToUpper(r.FirstName))
		fmt.Fprintf(&b, "            <PLEC>%s</PLEC>\r\n", r.Sex)
		fmt.Fprintf(&b, "            <IMIE_2>%s</IMIE_2>\r\n", strings.ToUpper(r.SecondName))
		fmt.Fprintf(&b, "            <OBYW>%s</OBYW>\r\n", r.Citizenship)
		fmt.Fprintf(&b, "            <DATA_UR>%s</DATA_UR>\r\n", r.BirthDate)
		b.WriteString("            <SKLADKA>\r\n")
		fmt.Fprintf(&b, "                <UCZ_WAR_POD>%s</UCZ_WAR_POD>\r\n", formatDotDecimal(r.EmployeeBasic))
		fmt.Fprintf(&b, "                <UCZ_WAR_DOD>%s</UCZ_WAR_DOD>\r\n", formatDotDecimal(r.EmployeeAdditional))
		fmt.Fprintf(&b, "                <FIR_WAR_POD>%s</FIR_WAR_POD>\r\n", formatDotDecimal(r.EmployerBasic))
		fmt.Fprintf(&b, "                <FIR_WAR_DOD>%s</FIR_WAR_DOD>\r\n", formatDotDecimal(r.EmployerAdditional))
		fmt.Fprintf(&b, "                <UCZ_OBNIZ_SKL_POD>%s</UCZ_OBNIZ_SKL_POD>\r\n", r.ReducedBasicFlag)
		fmt.Fprintf(&b, "                <SKL_ZA_OKRES>%s</SKL_ZA_OKRES>\r\n", period)
		b.WriteString("            </SKLADKA>\r\n")
		b.WriteString("        </UCZESTNIK>\r\n")
	}

	b.WriteString("    </DANE_UCZESTNIKA>\r\n")
	b.WriteString("</PPK>\r\n")

	return b.String()
}

// formatDotDecimal re-renders a stored amount with a dot separator and
// exactly two fractional digits. An unparseable value passes through
// unchanged rather than dropping the row.
func formatDotDecimal(value string) string {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return value
	}
	return d.StringFixed(2)
}
