package service

import (
	"regexp"
	"strings"
	"unicode"
)

const (
	minNameLen     = 3
	maxNameLen     = 100
	minPasswordLen = 8
	maxPasswordLen = 50
)

var (
	emailRe   = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	youtubeRe = regexp.MustCompile(`^(https?://)?(www\.)?(youtube\.com|youtu\.be)/.+$`)
)

// NormalizeEmail lowercases and trims an email for storage and lookup.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func validateName(name string) error {
	n := len(strings.TrimSpace(name))
	if n < minNameLen || n > maxNameLen {
		return validationErr("name must be between 3 and 100 characters")
	}
	return nil
}

func validateEmail(email string) error {
	if !emailRe.MatchString(email) {
		return validationErr("invalid email address")
	}
	return nil
}

// validatePassword enforces length bounds and character-class coverage:
// at least one uppercase, one lowercase, one digit and one symbol.
func validatePassword(password string) error {
	if len(password) < minPasswordLen || len(password) > maxPasswordLen {
		return validationErr("password must be between 8 and 50 characters")
	}

	var upper, lower, digit, symbol bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		default:
			symbol = true
		}
	}
	if !upper || !lower || !digit || !symbol {
		return validationErr("password must contain uppercase, lowercase, digit and symbol characters")
	}
	return nil
}

func validYouTubeURL(url string) bool {
	return youtubeRe.MatchString(url)
}
