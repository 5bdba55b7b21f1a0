package testutil

import "strings"

// Ptr returns a pointer to the value (useful for optional fields in tests).
func Ptr[T any](v T) *T {
	return &v
}

// ContainsDetail checks if any detail string contains the given substring.
func ContainsDetail(details []string, substr string) bool {
	for _, d := range details {
		if strings.Contains(d, substr) {
			return true
		}
	}
	return false
}
