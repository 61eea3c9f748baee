package utils

import (
	"errors"
	"reflect"
	"strings"
	"time"
)

// Date and clock normal forms. Every persisted fecha/hora must be in these
// layouts: the agenda sort is a plain string comparison and is only
// chronological while this holds.
const (
	DateLayout  = "2006-01-02"
	ClockLayout = "15:04"
)

var dateLayouts = []string{
	DateLayout,
	"02/01/2006",
	"2/1/2006",
}

var clockLayouts = []string{
	ClockLayout,
	"15:04:05",
	"3:04 PM",
	"3:04PM",
}

// NormalizeDate parses a handful of common date spellings and returns the
// zero-padded YYYY-MM-DD form.
func NormalizeDate(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.Format(DateLayout), nil
		}
	}
	return "", errors.New("unrecognized date format")
}

// NormalizeClock parses a handful of common time spellings and returns the
// zero-padded 24-hour HH:MM form. Seconds are dropped.
func NormalizeClock(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	for _, layout := range clockLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.Format(ClockLayout), nil
		}
	}
	return "", errors.New("unrecognized time format")
}

// Today returns the current day in the date normal form.
func Today() string {
	return time.Now().Format(DateLayout)
}

func Sanitize(o any) {
	v := reflect.ValueOf(o)
	if v.Kind() != reflect.Ptr || v.IsNil() {
		panic("sanitize: expected pointer to struct")
	}

	v = v.Elem()
	if v.Kind() != reflect.Struct {
		panic("sanitize: expected struct")
	}

	for i := 0; i < v.NumField(); i++ {
		field := v.Field(i)
		switch field.Kind() {
		case reflect.String:
			field.SetString(sanitizeString(field.String()))

		case reflect.Slice:
			if field.Type().Elem().Kind() == reflect.String {
				for j := 0; j < field.Len(); j++ {
					field.Index(j).SetString(sanitizeString(field.Index(j).String()))
				}
			}
		}
	}
}

func sanitizeString(s string) string {
	return strings.TrimSpace(s)
}
