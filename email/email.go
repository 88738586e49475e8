// Package email provides Address, a semantic type for email addresses.
//
// A function that takes an Address instead of a string cannot be handed a
// phone number, a name, or any other string by mistake:
//
//	func Send(to email.Address, message string) error
//
// The grammar is an approximation of RFC 5322, not a complete implementation.
// It accepts a dot-atom or quoted local part and a dotted hostname or bracketed
// IPv4 literal domain, case-insensitively.
package email

import (
	"regexp"
	"strings"

	"github.com/amp-labs/semtype/semantic"
)

// MaxLength is the longest address accepted, per RFC 5321 path limits.
const MaxLength = 254

const (
	atext     = "-!#$%&'*+/=?^`{}|~\\w"
	localDot  = `[0-9a-z](?:(?:\.?[` + atext + `])*\.?[0-9a-z])?`
	localQuot = `"(?:[^"\\\r\n]|\\.)+"`
	ipLiteral = `\[(?:\d{1,3}\.){3}\d{1,3}\]`
	hostname  = `(?:[0-9a-z][-\w]*[0-9a-z]*\.)+[a-z0-9][-a-z0-9]{0,22}[a-z0-9]`
)

var pattern = regexp.MustCompile(
	`(?i)^(?:` + localQuot + `|` + localDot + `)@(?:` + ipLiteral + `|` + hostname + `)$`)

// Kind is the semantic kind of email addresses.
type Kind struct{}

func (Kind) Name() string { return "EmailAddress" }

func (Kind) Valid(candidate string) bool {
	return len(candidate) <= MaxLength && pattern.MatchString(candidate)
}

// Address is a string that has been checked to look like an email address.
type Address = semantic.Type[string, Kind]

// New validates candidate and wraps it as an Address. The string is kept
// exactly as given; no case folding or trimming is applied.
func New(candidate string) (Address, error) {
	return semantic.New[Kind](candidate)
}

// Must is like New but panics on an invalid address.
func Must(candidate string) Address {
	return semantic.Must[Kind](candidate)
}

// IsValid reports whether candidate would be accepted by New.
func IsValid(candidate string) bool {
	return semantic.IsValid[Kind](candidate)
}

// LocalPart returns the part of the address before the last "@".
func LocalPart(addr Address) string {
	local, _ := split(addr)

	return local
}

// Domain returns the part of the address after the last "@".
func Domain(addr Address) string {
	_, domain := split(addr)

	return domain
}

// The last "@" separates the parts, since a quoted local part may contain "@".
func split(addr Address) (string, string) {
	s := addr.Value()

	at := strings.LastIndexByte(s, '@')
	if at < 0 {
		return "", ""
	}

	return s[:at], s[at+1:]
}
