package http

import (
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// parseDatePtr turns an optional "YYYY-MM-DD" string into a *time.Time.
// Empty/nil means "field cleared".
func parseDatePtr(s *string) (*time.Time, error) {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, *s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// ---- test helpers ----

func containsFieldMsg(list []FieldError, field, substr string) bool {
	for _, e := range list {
		if e.Field == field && strings.Contains(e.Message, substr) {
			return true
		}
	}
	return false
}
