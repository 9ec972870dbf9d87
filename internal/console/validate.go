package console

import (
	"strings"
	"unicode"

	"hotel-console/internal/repository"
)

// validateLogin checks a candidate login for length, spaces and
// availability.  The emptyish reason return keeps the caller's loop
// simple.
func validateLogin(users *repository.UserRepo, login string) (ok bool, why string) {
	if len(login) < 3 {
		return false, "Login must be at least 3 characters."
	}
	if strings.ContainsRune(login, ' ') {
		return false, "Login cannot contain spaces."
	}
	if _, taken := users.GetByLogin(login); taken {
		return false, "This login is already taken."
	}
	return true, ""
}

// validatePasswordStrength requires 8+ characters mixing upper,
// lower and a digit.
func validatePasswordStrength(pw string) (ok bool, why string) {
	if len(pw) < 8 {
		return false, "Password must be at least 8 characters."
	}
	var upper, lower, digit bool
	for _, r := range pw {
		upper = upper || unicode.IsUpper(r)
		lower = lower || unicode.IsLower(r)
		digit = digit || unicode.IsDigit(r)
	}
	if !(upper && lower && digit) {
		return false, "Use upper, lower, and a digit."
	}
	return true, ""
}
