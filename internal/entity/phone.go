package entity

import "strings"

// NormalizePhone mantém apenas os dígitos decimais.
func NormalizePhone(phone string) string {
	if phone == "" {
		return ""
	}
	var digits strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	return digits.String()
}

// SamePhone compara só os dígitos dos dois telefones.
func SamePhone(a, b string) bool {
	return NormalizePhone(a) == NormalizePhone(b)
}
