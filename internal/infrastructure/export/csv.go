// Package export renders reservation lists as CSV documents.
//
// The document format always quotes every field so downstream spreadsheet
// imports never misparse free-text notes. encoding/csv only quotes fields
// that need it, so the writer is hand-rolled.
package export

import (
	"strconv"
	"strings"
	"time"

	"github.com/tickets/backend/internal/domain/ticketing"
)

// Header is the fixed first line of every exported document. Column
// names are not quoted; quoting applies to record field values only.
const Header = "createdAt,firstName,lastName,email,ticketType,quantity,notes"

// Filename is the suggested download name for exported documents.
const Filename = "ticket-reservations.csv"

// Document renders reservations as a CSV document. Every field is
// double-quoted with embedded quotes doubled. No trailing newline.
func Document(reservations []ticketing.Reservation) string {
	lines := make([]string, 0, len(reservations)+1)
	lines = append(lines, Header)

	for i := range reservations {
		lines = append(lines, record(&reservations[i]))
	}

	return strings.Join(lines, "\n")
}

func record(r *ticketing.Reservation) string {
	fields := []string{
		r.CreatedAt.UTC().Format(time.RFC3339),
		r.FirstName,
		r.LastName,
		r.Email,
		string(r.TicketType),
		strconv.Itoa(r.Quantity),
		r.Notes,
	}

	quoted := make([]string, len(fields))
	for i, f := range fields {
		quoted[i] = quote(f)
	}
	return strings.Join(quoted, ",")
}

func quote(field string) string {
	return `"` + strings.ReplaceAll(field, `"`, `""`) + `"`
}
