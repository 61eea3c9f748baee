// Package whatsapp builds the reminder deep-links shown next to each
// agenda row.
package whatsapp

import (
	"fmt"
	"net/url"
	"strings"

	"lodelfer/cmd/internal/domain/entity"
)

const linkBase = "https://wa.me/"

// NormalizePhone keeps only the decimal digits of a raw phone string, in
// their original order. Spaces, dashes, parentheses, a leading "+" and the
// ".0" suffix that numeric spreadsheet cells grow are all dropped. Never
// fails: garbage in, empty string out.
func NormalizePhone(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ReminderLink returns a wa.me link that pre-fills a reminder message for
// the given appointment. The client name is not sanitized beyond the
// percent-encoding applied to the whole message; an empty phone yields a
// link with an empty recipient segment.
func ReminderLink(businessName string, appt *entity.Appointment) string {
	msg := fmt.Sprintf("👋 Hola *%s*, recordatorio de cita en *%s* para el día %s a las %s.",
		appt.ClientName, businessName, appt.Date, appt.Time)
	return linkBase + NormalizePhone(appt.Phone) + "?text=" + encodeMessage(msg)
}

// encodeMessage percent-encodes with %20 for spaces; wa.me renders "+"
// literally inside the message body.
func encodeMessage(msg string) string {
	return strings.ReplaceAll(url.QueryEscape(msg), "+", "%20")
}
