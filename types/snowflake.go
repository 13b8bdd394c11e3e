package types

import (
	"strconv"
	"time"

	"github.com/Siphalor/twilight/errors"
)

// DiscordEpoch is the first second of 2015 in Unix milliseconds, the zero
// point of the snowflake timestamp field.
const DiscordEpoch int64 = 1420070400000

// Snowflake is the 64-bit identifier used for every addressable entity in the
// protocol. On the wire snowflakes are JSON strings (they exceed the safe
// integer range of many JSON consumers), but numeric payloads are accepted on
// decode for robustness.
//
// The zero value means "no ID" and is never a valid entity identifier.
type Snowflake uint64

// ParseSnowflake parses the decimal string form of a snowflake.
func ParseSnowflake(s string) (Snowflake, error) {
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, errors.NewTypeMismatch("", "snowflake", strconv.Quote(s))
	}
	return Snowflake(v), nil
}

// String returns the decimal wire form of the snowflake.
func (s Snowflake) String() string {
	return strconv.FormatUint(uint64(s), 10)
}

// IsValid reports whether the snowflake is a usable identifier.
func (s Snowflake) IsValid() bool {
	return s != 0
}

// Time returns the creation time encoded in the snowflake's timestamp bits.
func (s Snowflake) Time() time.Time {
	ms := int64(s>>22) + DiscordEpoch
	return time.UnixMilli(ms).UTC()
}

// MarshalJSON emits the snowflake as a quoted decimal string.
func (s Snowflake) MarshalJSON() ([]byte, error) {
	return []byte(`"` + s.String() + `"`), nil
}

// UnmarshalJSON accepts both quoted and bare decimal forms.
func (s *Snowflake) UnmarshalJSON(data []byte) error {
	raw := string(data)
	if raw == "null" {
		*s = 0
		return nil
	}
	if len(raw) > 0 && raw[0] == '"' {
		unquoted, err := strconv.Unquote(raw)
		if err != nil {
			return errors.NewTypeMismatch("", "snowflake", raw)
		}
		raw = unquoted
	}
	v, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return errors.NewTypeMismatch("", "snowflake", string(data))
	}
	*s = Snowflake(v)
	return nil
}
