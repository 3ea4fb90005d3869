// Package contact derives display-ready contact fields from the raw record.
package contact

import (
	"strings"

	"github.com/jonathan/resume-site/internal/types"
)

// DefaultProfileLink is used for a missing LinkedIn or GitHub URL
const DefaultProfileLink = "#"

// Fields are the contact values after defaults and derivation, still unescaped
type Fields struct {
	Email     string
	Phone     string
	PhoneE164 string
	Location  string
	Website   string
	LinkedIn  string
	GitHub    string
}

// DialDigits strips every character that is not an ASCII digit, giving the
// dial-ready form used in tel: links ("+358 44 519 5357" -> "358445195357").
func DialDigits(raw string) string {
	var sb strings.Builder
	sb.Grow(len(raw))
	for i := 0; i < len(raw); i++ {
		if c := raw[i]; c >= '0' && c <= '9' {
			sb.WriteByte(c)
		}
	}
	return sb.String()
}

// Normalize applies the contact defaults and derives the dialable phone number
func Normalize(c types.Contact) Fields {
	return Fields{
		Email:     c.Email.String(),
		Phone:     c.Phone.String(),
		PhoneE164: DialDigits(c.Phone.String()),
		Location:  c.Location.String(),
		Website:   c.Website.String(),
		LinkedIn:  orDefault(c.LinkedIn.String(), DefaultProfileLink),
		GitHub:    orDefault(c.GitHub.String(), DefaultProfileLink),
	}
}

func orDefault(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}
