// utils/validation.go
package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseID accepts a non-negative integer identifier.
func ParseID(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.TrimLeft(s, "0123456789") != "" {
		return 0, fmt.Errorf("invalid id %q", s)
	}
	return strconv.ParseInt(s, 10, 64)
}

// ParseAmount accepts any decimal number, as typed by a user.
func ParseAmount(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("invalid number %q", s)
	}
	return v, nil
}
