package validators

import (
	"net"
	"net/mail"
	"regexp"
	"strings"
	"unicode/utf8"
)

var usernamePattern = regexp.MustCompile(`^[\p{L}\p{N}_.@+-]+$`)

const (
	MaxUsernameLength = 150
	MaxEmailLength    = 254
	MinPasswordLength = 8
)

// IsUsernameValid accepts Unicode letters and digits plus . @ + - _, up to
// 150 runes.
func IsUsernameValid(username string) bool {
	if username == "" || utf8.RuneCountInString(username) > MaxUsernameLength {
		return false
	}
	return usernamePattern.MatchString(username)
}

// IsEmailValid checks the address syntax only.
func IsEmailValid(email string) bool {
	if email == "" || len(email) > MaxEmailLength {
		return false
	}
	addr, err := mail.ParseAddress(email)
	return err == nil && addr.Address == email
}

// NormalizeEmail lowercases and trims an address before lookups.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// IsEmailDomainValid resolves the domain's MX or A records. It performs
// network lookups and is only used when enabled in configuration.
func IsEmailDomainValid(email string) bool {
	at := strings.LastIndex(email, "@")
	if at < 0 || at == len(email)-1 {
		return false
	}

	domain := email[at+1:]

	if mx, err := net.LookupMX(domain); err == nil && len(mx) > 0 {
		return true
	}

	if ips, err := net.LookupIP(domain); err == nil && len(ips) > 0 {
		return true
	}

	return false
}

func IsPasswordValid(password string) bool {
	return utf8.RuneCountInString(password) >= MinPasswordLength
}
