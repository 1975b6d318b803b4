package ticketing

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Field length and range constraints for a submission
const (
	MaxNameLength  = 80
	MaxEmailLength = 160
	MaxNotesLength = 1000
	MinQuantity    = 1
	MaxQuantity    = 20
)

// emailPattern matches a simple local@domain.tld shape: exactly one "@"
// with non-whitespace on both sides and a "." in the domain part.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Submission is a fully normalized ticket submission: trimmed strings,
// lower-cased email and a numeric quantity.
type Submission struct {
	FirstName  string
	LastName   string
	Email      string
	TicketType TicketType
	Quantity   int
	Notes      string
}

// ValidateSubmission checks a raw submission against the field rules and
// either returns a normalized Submission or a non-empty list of
// human-readable error messages, one per violated rule, in stable field
// order: firstName, lastName, email, ticketType, quantity, notes.
// No partial normalization is returned alongside errors.
func ValidateSubmission(raw map[string]any) (*Submission, []string) {
	var errs []string

	firstName, msgs := validateName(raw, "firstName")
	errs = append(errs, msgs...)

	lastName, msgs := validateName(raw, "lastName")
	errs = append(errs, msgs...)

	email, msgs := validateEmail(raw)
	errs = append(errs, msgs...)

	ticketType, msgs := validateTicketType(raw)
	errs = append(errs, msgs...)

	quantity, msgs := validateQuantity(raw)
	errs = append(errs, msgs...)

	notes, msgs := validateNotes(raw)
	errs = append(errs, msgs...)

	if len(errs) > 0 {
		return nil, errs
	}

	return &Submission{
		FirstName:  firstName,
		LastName:   lastName,
		Email:      email,
		TicketType: ticketType,
		Quantity:   quantity,
		Notes:      notes,
	}, nil
}

// stringValue extracts raw[key] as a trimmed string. Non-string values
// are treated as absent.
func stringValue(raw map[string]any, key string) string {
	v, ok := raw[key]
	if !ok {
		return ""
	}
	s, ok := v.(string)
	if !ok {
		return ""
	}
	return strings.TrimSpace(s)
}

func validateName(raw map[string]any, field string) (string, []string) {
	name := stringValue(raw, field)
	if name == "" {
		return "", []string{field + " is required"}
	}
	if utf8.RuneCountInString(name) > MaxNameLength {
		return "", []string{fmt.Sprintf("%s must be at most %d characters", field, MaxNameLength)}
	}
	return name, nil
}

func validateEmail(raw map[string]any) (string, []string) {
	email := strings.ToLower(stringValue(raw, "email"))
	if email == "" {
		return "", []string{"email is required"}
	}
	if utf8.RuneCountInString(email) > MaxEmailLength {
		return "", []string{fmt.Sprintf("email must be at most %d characters", MaxEmailLength)}
	}
	if !emailPattern.MatchString(email) {
		return "", []string{"email must be a valid address"}
	}
	return email, nil
}

func validateTicketType(raw map[string]any) (TicketType, []string) {
	value := stringValue(raw, "ticketType")
	if value == "" {
		return "", []string{"ticketType is required"}
	}
	ticketType := TicketType(value)
	if !ticketType.IsValid() {
		names := make([]string, len(TicketTypes))
		for i, t := range TicketTypes {
			names[i] = string(t)
		}
		return "", []string{"ticketType must be one of: " + strings.Join(names, ", ")}
	}
	return ticketType, nil
}

// validateQuantity accepts integral JSON numbers and numeric strings;
// submissions arrive as untyped documents so both forms occur.
func validateQuantity(raw map[string]any) (int, []string) {
	v, ok := raw["quantity"]
	if !ok || v == nil {
		return 0, []string{"quantity is required"}
	}

	var quantity int
	switch n := v.(type) {
	case float64:
		if n != math.Trunc(n) {
			return 0, []string{"quantity must be a whole number"}
		}
		quantity = int(n)
	case int:
		quantity = n
	case string:
		parsed, err := strconv.Atoi(strings.TrimSpace(n))
		if err != nil {
			return 0, []string{"quantity must be a whole number"}
		}
		quantity = parsed
	default:
		return 0, []string{"quantity must be a whole number"}
	}

	if quantity < MinQuantity || quantity > MaxQuantity {
		return 0, []string{fmt.Sprintf("quantity must be between %d and %d", MinQuantity, MaxQuantity)}
	}
	return quantity, nil
}

func validateNotes(raw map[string]any) (string, []string) {
	notes := stringValue(raw, "notes")
	if utf8.RuneCountInString(notes) > MaxNotesLength {
		return "", []string{fmt.Sprintf("notes must be at most %d characters", MaxNotesLength)}
	}
	return notes, nil
}
