package types

import (
	"strconv"
	"time"

	"github.com/Siphalor/twilight/errors"
)

// Timestamp wraps time.Time with the ISO8601 wire format the protocol uses
// for message timestamps. The zero value means "no timestamp".
type Timestamp struct {
	time.Time
}

// NewTimestamp creates a Timestamp from a time.Time.
func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{Time: t}
}

// ParseTimestamp parses the ISO8601 wire form.
func ParseTimestamp(s string) (Timestamp, error) {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return Timestamp{}, errors.NewTypeMismatch("", "ISO8601 timestamp", strconv.Quote(s))
	}
	// normalize to UTC so equal instants compare equal regardless of the
	// offset spelling the sender used
	return Timestamp{Time: t.UTC()}, nil
}

// MarshalJSON emits the timestamp in ISO8601 form with microsecond precision,
// matching what the protocol sends.
func (t Timestamp) MarshalJSON() ([]byte, error) {
	return []byte(`"` + t.Format("2006-01-02T15:04:05.999999Z07:00") + `"`), nil
}

// UnmarshalJSON parses an ISO8601 timestamp, tolerating the fractional-second
// variants the protocol has emitted over time.
func (t *Timestamp) UnmarshalJSON(data []byte) error {
	s, err := strconv.Unquote(string(data))
	if err != nil {
		return errors.NewTypeMismatch("", "ISO8601 timestamp", string(data))
	}
	parsed, err := ParseTimestamp(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
