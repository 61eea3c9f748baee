package validators

import (
	"time"

	"github.com/go-playground/validator/v10"
)

// IsISODate accepts only zero-padded YYYY-MM-DD values. The agenda sorts
// dates as plain strings, which is only chronological for this form.
func IsISODate(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return false
	}
	return t.Format("2006-01-02") == value
}

// IsClockTime accepts only zero-padded 24-hour HH:MM values, for the same
// lexicographic-sort reason as IsISODate.
func IsClockTime(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	t, err := time.Parse("15:04", value)
	if err != nil {
		return false
	}
	return t.Format("15:04") == value
}
