package model

import (
	"bytes"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	// API ожидает суммы числами, а не строками.
	decimal.MarshalJSONWithoutQuotes = true
}

// DateLayout is the calendar date format used on writes and in form input.
const DateLayout = "2006-01-02"

// Date is a calendar date at UTC midnight.
type Date struct {
	time.Time
}

// NewDate truncates t to its calendar date.
func NewDate(t time.Time) Date {
	y, m, d := t.Date()
	return Date{time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

// ParseDate parses "YYYY-MM-DD".
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, err
	}
	return Date{t}, nil
}

// MarshalJSON writes "YYYY-MM-DD", or null for the zero date.
func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return []byte(`"` + d.Format(DateLayout) + `"`), nil
}

// UnmarshalJSON accepts RFC 3339 timestamps and plain dates.
func (d *Date) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, []byte("null")) {
		*d = Date{}
		return nil
	}
	s := string(bytes.Trim(b, `"`))
	if s == "" {
		*d = Date{}
		return nil
	}
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		*d = Date{t.UTC()}
		return nil
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return fmt.Errorf("date %q: %w", s, err)
	}
	*d = Date{t}
	return nil
}

// Display renders the date the way uk-UA locale does: dd.mm.yyyy.
func (d Date) Display() string {
	if d.IsZero() {
		return Missing
	}
	return d.Format("02.01.2006")
}
