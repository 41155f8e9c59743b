package domain

import "strings"

// NormalizeHumanName trims leading/trailing whitespace and collapses internal
// whitespace runs. It is used for title and name normalization.
func NormalizeHumanName(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// NormalizeCountryName normalizes a country name for the visited-countries
// set: whitespace runs collapsed, no leading/trailing space.
func NormalizeCountryName(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// EqualFoldCountry compares two country names case-insensitively after
// normalization.
func EqualFoldCountry(a, b string) bool {
	return strings.EqualFold(NormalizeCountryName(a), NormalizeCountryName(b))
}
