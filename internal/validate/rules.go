package validate

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode"
)

var (
	emailPattern  = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phonePattern  = regexp.MustCompile(`^[\d\s\-+()]+$`)
	domainPattern = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9-]*(\.[a-zA-Z0-9][a-zA-Z0-9-]*)+$`)
	digitsOnly    = regexp.MustCompile(`^\d+$`)
)

// RequiredString enforces presence plus a kind-specific length window on a
// trimmed value. min or max of 0 disables that bound.
func RequiredString(errs ErrorSet, field, value, label string, min, max int) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		errs.Add(field, label+" is required")
		return
	}
	if min > 0 && len(trimmed) < min {
		errs.Add(field, fmt.Sprintf("%s must be at least %d characters", label, min))
		return
	}
	if max > 0 && len(trimmed) > max {
		errs.Add(field, fmt.Sprintf("%s must be less than %d characters", label, max))
	}
}

// Email enforces the standard local@domain.tld shape.
func Email(errs ErrorSet, field, value string) {
	if strings.TrimSpace(value) == "" {
		errs.Add(field, "Email is required")
		return
	}
	if !emailPattern.MatchString(value) {
		errs.Add(field, "Please enter a valid email address")
	}
}

// OptionalPhone accepts an empty value; anything else must look like a
// phone number (digits, spaces, dashes, plus, parens).
func OptionalPhone(errs ErrorSet, field, value string) {
	if strings.TrimSpace(value) == "" {
		return
	}
	if !phonePattern.MatchString(value) {
		errs.Add(field, "Please enter a valid phone number")
	}
}

// CompanyDomain checks an SSO discovery domain like "company.com".
func CompanyDomain(errs ErrorSet, field, value string) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		errs.Add(field, "Company domain is required")
		return
	}
	if !domainPattern.MatchString(trimmed) {
		errs.Add(field, "Please enter a valid domain (e.g., company.com)")
	}
}

// DueDate requires a YYYY-MM-DD value. Dates before today are rejected
// only when creating; editing an existing entity may keep a past date.
func DueDate(errs ErrorSet, field, value string, editing bool, now time.Time) {
	if value == "" {
		errs.Add(field, "Due date is required")
		return
	}
	due, err := time.Parse("2006-01-02", value)
	if err != nil {
		errs.Add(field, "Due date must be a valid date")
		return
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if due.Before(today) && !editing {
		errs.Add(field, "Due date cannot be in the past")
	}
}

// Password enforces the minimum length shared by every password field.
func Password(errs ErrorSet, field, value string) {
	if value == "" {
		errs.Add(field, "Password is required")
		return
	}
	if len(value) < 8 {
		errs.Add(field, "Password must be at least 8 characters")
	}
}

// StrongPassword additionally requires an uppercase letter, a lowercase
// letter and a digit. Used by signup, reset and the settings change form.
func StrongPassword(errs ErrorSet, field, value string) {
	if value == "" {
		errs.Add(field, "Password is required")
		return
	}
	if len(value) < 8 || !hasUpperLowerDigit(value) {
		errs.Add(field, "Password does not meet requirements")
	}
}

// NewPassword is the change-password variant of StrongPassword with
// per-rule messages.
func NewPassword(errs ErrorSet, field, value string) {
	if value == "" {
		errs.Add(field, "New password is required")
		return
	}
	if len(value) < 8 {
		errs.Add(field, "Password must be at least 8 characters")
		return
	}
	if !hasUpperLowerDigit(value) {
		errs.Add(field, "Password must contain uppercase, lowercase, and number")
	}
}

// PasswordConfirm requires the confirmation to match exactly.
func PasswordConfirm(errs ErrorSet, field, password, confirm string) {
	if confirm == "" {
		errs.Add(field, "Please confirm your password")
		return
	}
	if password != confirm {
		errs.Add(field, "Passwords do not match")
	}
}

// CardNumber strips spaces and requires at least 16 digits.
func CardNumber(errs ErrorSet, field, value string) {
	num := strings.ReplaceAll(value, " ", "")
	if num == "" {
		errs.Add(field, "Card number is required")
		return
	}
	if len(num) < 16 || !digitsOnly.MatchString(num) {
		errs.Add(field, "Please enter a valid 16-digit card number")
	}
}

// CardExpiry parses MM/YY and rejects months already in the past relative
// to the current month and year.
func CardExpiry(errs ErrorSet, field, value string, now time.Time) {
	if value == "" {
		errs.Add(field, "Expiry date is required")
		return
	}
	parts := strings.Split(value, "/")
	if len(parts) != 2 {
		errs.Add(field, "Please enter a valid expiry date")
		return
	}
	month, merr := strconv.Atoi(parts[0])
	year, yerr := strconv.Atoi(parts[1])
	currentYear := now.Year() % 100
	currentMonth := int(now.Month())
	if merr != nil || yerr != nil ||
		month < 1 || month > 12 ||
		year < currentYear ||
		(year == currentYear && month < currentMonth) {
		errs.Add(field, "Please enter a valid expiry date")
	}
}

// CVV requires 3 or 4 digits.
func CVV(errs ErrorSet, field, value string) {
	if value == "" {
		errs.Add(field, "CVV is required")
		return
	}
	if len(value) < 3 || len(value) > 4 || !digitsOnly.MatchString(value) {
		errs.Add(field, "CVV must be 3-4 digits")
	}
}

func hasUpperLowerDigit(s string) bool {
	var upper, lower, digit bool
	for _, r := range s {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		}
	}
	return upper && lower && digit
}
