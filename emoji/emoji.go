// Package emoji provides the partial emoji record shared by reactions,
// buttons, and select options.
//
// On the wire an emoji is either a custom emoji identified by snowflake or a
// standard unicode emoji carried as its literal codepoints. The two forms are
// a tagged choice, not independent optional fields: exactly one is populated,
// and a payload carrying both is malformed and rejected as a type mismatch.
package emoji

import (
	"encoding/json"

	"github.com/Siphalor/twilight/errors"
	"github.com/Siphalor/twilight/types"
)

// Emoji is the partial emoji projection carried inside message payloads.
// Use NewCustom or NewUnicode for outbound construction; the zero value is
// not a valid emoji.
type Emoji struct {
	// ID identifies a custom emoji. Zero for unicode emoji.
	ID types.Snowflake `json:"id,omitempty"`
	// Name holds the unicode emoji literal. Empty for custom emoji.
	Name string `json:"name,omitempty"`
	// Animated is set for animated custom emoji.
	Animated bool `json:"animated,omitempty"`
}

// NewCustom creates a custom emoji reference.
func NewCustom(id types.Snowflake) Emoji {
	return Emoji{ID: id}
}

// NewUnicode creates a unicode emoji from its literal codepoints.
func NewUnicode(name string) Emoji {
	return Emoji{Name: name}
}

// IsCustom reports whether the emoji is a custom emoji.
func (e Emoji) IsCustom() bool {
	return e.ID.IsValid()
}

// IsUnicode reports whether the emoji is a standard unicode emoji.
func (e Emoji) IsUnicode() bool {
	return !e.ID.IsValid() && e.Name != ""
}

// Validate checks the tagged-choice invariant: exactly one form populated.
func (e Emoji) Validate() error {
	switch {
	case e.ID.IsValid() && e.Name != "":
		return errors.NewTypeMismatch("emoji", "custom id or unicode name", "both")
	case !e.ID.IsValid() && e.Name == "":
		return errors.NewTypeMismatch("emoji", "custom id or unicode name", "neither")
	}
	return nil
}

// MarshalJSON emits the wire form. Values violating the tagged-choice
// invariant are rejected here; this is the encode-time enforcement point for
// caller-constructed emoji.
func (e Emoji) MarshalJSON() ([]byte, error) {
	if err := e.Validate(); err != nil {
		return nil, err
	}
	type alias Emoji
	return json.Marshal(alias(e))
}

// UnmarshalJSON decodes either emoji form, rejecting documents that populate
// both.
func (e *Emoji) UnmarshalJSON(data []byte) error {
	type alias Emoji
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return errors.Wrap(err, "emoji")
	}
	decoded := Emoji(a)
	if err := decoded.Validate(); err != nil {
		return err
	}
	*e = decoded
	return nil
}
