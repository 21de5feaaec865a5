package domain

import "time"

// Theme is a user's UI theme preference.
type Theme string

const (
	ThemeLight  Theme = "light"
	ThemeDark   Theme = "dark"
	ThemeSystem Theme = "system"
)

// ValidTheme reports whether t is one of the accepted themes.
func ValidTheme(t Theme) bool {
	switch t {
	case ThemeLight, ThemeDark, ThemeSystem:
		return true
	}
	return false
}

// Locale is a user's UI language preference.
type Locale string

const (
	LocalePTBR Locale = "pt-BR"
	LocaleENUS Locale = "en-US"
	LocaleESES Locale = "es-ES"

	// DefaultLocale applies when registration carries no locale or an
	// unknown one.
	DefaultLocale = LocalePTBR
)

// ValidLocale reports whether l is one of the supported locales.
func ValidLocale(l Locale) bool {
	switch l {
	case LocalePTBR, LocaleENUS, LocaleESES:
		return true
	}
	return false
}

type User struct {
	ID           string
	Name         string
	Email        string // stored lowercased and trimmed
	PasswordHash string // argon2 encoded
	Theme        Theme
	Locale       Locale
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
