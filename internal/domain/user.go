package domain

import "strings"

// User represents the single signed-in user of the tracker.
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// ValidateLogin checks the freeform login fields. Only emptiness is checked.
func ValidateLogin(name, email string) error {
	if strings.TrimSpace(name) == "" {
		return ErrEmptyName
	}

	if strings.TrimSpace(email) == "" {
		return ErrEmptyEmail
	}

	return nil
}
