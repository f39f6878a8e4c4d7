package models

import "strings"

// NormalizeEmail applies the trim+lowercase normalization required at every
// write boundary so cross-entity joins by email never miss on case.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func hasSuffixFold(s, suffix string) bool {
	return strings.HasSuffix(strings.ToLower(strings.TrimSpace(s)), suffix)
}
