package fakturoid

import (
	"fmt"
	"strings"
	"time"
)

// dateLayout is the wire format of calendar-day fields.
const dateLayout = "2006-01-02"

// Date is a calendar day without time-of-day, serialized as YYYY-MM-DD the
// way the API expects for fields such as issued_on and due_on.
type Date struct {
	time.Time
}

// NewDate creates a Date for the given calendar day.
func NewDate(year int, month time.Month, day int) Date {
	return Date{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// ParseDate parses a YYYY-MM-DD string.
func ParseDate(value string) (Date, error) {
	parsed, err := time.Parse(dateLayout, value)
	if err != nil {
		return Date{}, fmt.Errorf("parsing date %q: %w", value, err)
	}

	return Date{Time: parsed}, nil
}

// String returns the date in its wire format.
func (d Date) String() string {
	return d.Format(dateLayout)
}

// MarshalJSON implements json.Marshaler.
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Format(dateLayout) + `"`), nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (d *Date) UnmarshalJSON(data []byte) error {
	value := strings.Trim(string(data), `"`)
	if value == "null" || value == "" {
		return nil
	}

	parsed, err := time.Parse(dateLayout, value)
	if err != nil {
		return fmt.Errorf("parsing date %q: %w", value, err)
	}

	d.Time = parsed

	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (d Date) MarshalYAML() (interface{}, error) {
	return d.String(), nil
}

// Ptr returns a pointer to the given value, convenient for populating
// optional entity fields inline.
func Ptr[T any](value T) *T {
	return &value
}
