// Package presentation renders registry results as protocol output
// lines. Every byte the program emits on the command stream goes
// through the Formatter, so the line shapes live in exactly one place.
package presentation

import (
	"errors"
	"fmt"
	"io"

	"vaxreg/internal/clock"
	"vaxreg/internal/i18n"
	"vaxreg/internal/registry"
)

// Formatter writes protocol lines for one selected language.
type Formatter struct {
	w    io.Writer
	msgs *i18n.Catalog
}

// NewFormatter creates a formatter writing to w using the given
// message catalogue.
func NewFormatter(w io.Writer, msgs *i18n.Catalog) *Formatter {
	return &Formatter{w: w, msgs: msgs}
}

// Line writes a raw result line (batch id echoes).
func (f *Formatter) Line(s string) {
	fmt.Fprintln(f.w, s)
}

// Count writes a numeric result line.
func (f *Formatter) Count(n int) {
	fmt.Fprintln(f.w, n)
}

// Date writes the clock date line.
func (f *Formatter) Date(d clock.Date) {
	fmt.Fprintln(f.w, d)
}

// Batch writes one batch row: name, id, expiry, available, used.
func (f *Formatter) Batch(b registry.Batch) {
	fmt.Fprintf(f.w, "%s %s %s %d %d\n", b.Vaccine, b.ID, b.ValidUntil, b.Available(), b.DosesUsed)
}

// Inoculation writes one inoculation row: user, batch id, date.
func (f *Formatter) Inoculation(rec registry.Inoculation) {
	fmt.Fprintf(f.w, "%s %s %s\n", rec.User, rec.BatchID, rec.Date)
}

// Error writes the localised error line. Registry errors carrying a
// subject render as "subject: message"; a clock rejection renders as
// the invalid-date message.
func (f *Formatter) Error(err error) {
	var rerr *registry.Error
	switch {
	case errors.As(err, &rerr):
		if rerr.Subject != "" {
			fmt.Fprintf(f.w, "%s: %s\n", rerr.Subject, f.msgs.Message(rerr.Code))
			return
		}
		fmt.Fprintln(f.w, f.msgs.Message(rerr.Code))
	case errors.Is(err, clock.ErrInvalidDate):
		fmt.Fprintln(f.w, f.msgs.Message(registry.CodeInvalidDate))
	default:
		fmt.Fprintln(f.w, err)
	}
}
