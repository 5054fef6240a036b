package employer

import (
	"fmt"

	"github.com/ppkgen/backend/internal/domain/shared"
)

// Sex codes as they appear in the registry filing format.
const (
	SexMale   = "M"
	SexFemale = "K"
)

var peselWeights = [10]int{1, 3, 7, 9, 1, 3, 7, 9, 1, 3}
var nipWeights = [9]int{6, 5, 7, 2, 3, 4, 5, 6, 7}
var regonWeights = [8]int{8, 9, 2, 3, 4, 5, 6, 7}

// PESELInfo holds the attributes derived from a valid PESEL number.
type PESELInfo struct {
	BirthDate string // YYYY-MM-DD
	Sex       string // "M" or "K"
}

// ValidatePESEL validates an 11-digit PESEL number against its checksum and
// derives the holder's birth date and sex. The embedded month carries a
// century offset in steps of 20: 1-12 → 1900s, 21-32 → 2000s, 41-52 → 2100s,
// 61-72 → 2200s, 81-92 → 1800s.
func ValidatePESEL(pesel string) (*PESELInfo, error) {
	if len(pesel) != 11 {
		return nil, shared.NewValidationError("PESEL", "must be 11 digits")
	}

	digits := make([]int, 11)
	for i, c := range pesel {
		if c < '0' || c > '9' {
			return nil, shared.NewValidationError("PESEL", "must contain only digits")
		}
		digits[i] = int(c - '0')
	}

	sum := 0
	for i, w := range peselWeights {
		sum += digits[i] * w
	}
	if (10-sum%10)%10 != digits[10] {
		return nil, shared.NewValidationError("PESEL", "invalid checksum")
	}

	yearPart := digits[0]*10 + digits[1]
	monthPart := digits[2]*10 + digits[3]
	day := digits[4]*10 + digits[5]

	var year, month int
	switch {
	case monthPart >= 1 && monthPart <= 12:
		year, month = 1900+yearPart, monthPart
	case monthPart >= 21 && monthPart <= 32:
		year, month = 2000+yearPart, monthPart-20
	case monthPart >= 41 && monthPart <= 52:
		year, month = 2100+yearPart, monthPart-40
	case monthPart >= 61 && monthPart <= 72:
		year, month = 2200+yearPart, monthPart-60
	case monthPart >= 81 && monthPart <= 92:
		year, month = 1800+yearPart, monthPart-80
	default:
		return nil, shared.NewValidationError("PESEL", "invalid embedded month")
	}

	sex := SexFemale
	if digits[9]%2 == 1 {
		sex = SexMale
	}

	return &PESELInfo{
		BirthDate: fmt.Sprintf("%04d-%02d-%02d", year, month, day),
		Sex:       sex,
	}, nil
}

// ValidateNIP validates a 10-digit tax identification number. Separator
// characters are stripped before checking. A computed check value of 10 is
// invalid outright; it does not wrap.
func ValidateNIP(nip string) error {
	digits := stripNonDigits(nip)
	if len(digits) != 10 {
		return shared.NewValidationError("NIP", "must be 10 digits")
	}

	sum := 0
	for i, w := range nipWeights {
		sum += digits[i] * w
	}
	check := sum % 11
	if check == 10 || check != digits[9] {
		return shared.NewValidationError("NIP", "invalid checksum")
	}
	return nil
}

// ValidateREGON validates a 9-digit statistical business number. Unlike NIP,
// a computed check value of 10 wraps to 0.
func ValidateREGON(regon string) error {
	digits := stripNonDigits(regon)
	if len(digits) != 9 {
		return shared.NewValidationError("REGON", "must be 9 digits")
	}

	sum := 0
	for i, w := range regonWeights {
		sum += digits[i] * w
	}
	check := sum % 11
	if check == 10 {
		check = 0
	}
	if check != digits[8] {
		return shared.NewValidationError("REGON", "invalid checksum")
	}
	return nil
}

func stripNonDigits(s string) []int {
	digits := make([]int, 0, len(s))
	for _, c := range s {
		if c >= '0' && c <= '9' {
			digits = append(digits, int(c-'0'))
		}
	}
	return digits
}
