package service

import (
	"strconv"
	"strings"
)

// ParseAnswer converts user input into an integer answer.
// It returns nil for empty or non-numeric input, which is scored as incorrect.
func ParseAnswer(text string) *int {
	s := strings.TrimSpace(text)

	// Decimal keypads may produce "12.0" or "12,00"; a zero fraction is dropped.
	if idx := strings.IndexAny(s, ".,"); idx >= 0 {
		frac := s[idx+1:]
		if frac == "" || strings.Trim(frac, "0") != "" {
			return nil
		}
		s = s[:idx]
	}

	n, err := strconv.Atoi(s)
	if err != nil {
		return nil
	}
	return &n
}
