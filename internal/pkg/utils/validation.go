package utils

import "strings"

// MissingAnyField reports whether any of the ordered values is absent or an
// empty string, short-circuiting on the first hit. Numeric zero and boolean
// false are legal values and are never treated as missing; optional values
// are passed as pointers, where only nil counts as absent.
func MissingAnyField(values ...interface{}) bool {
	for _, value := range values {
		switch v := value.(type) {
		case nil:
			return true
		case string:
			if strings.TrimSpace(v) == "" {
				return true
			}
		case *string:
			if v == nil || strings.TrimSpace(*v) == "" {
				return true
			}
		case *float64:
			if v == nil {
				return true
			}
		case *int:
			if v == nil {
				return true
			}
		case *bool:
			if v == nil {
				return true
			}
		}
	}
	return false
}
