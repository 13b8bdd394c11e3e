package component

import (
	"encoding/json"

	"github.com/Siphalor/twilight/errors"
)

// DefaultMaxDepth bounds component nesting when the caller does not configure
// a limit. The protocol nests at most a few levels; anything deeper is
// pathological input.
const DefaultMaxDepth = 8

// DecodeOptions controls discriminant policy and nesting bounds for Decode.
type DecodeOptions struct {
	// Strict rejects unrecognized component discriminants with a schema
	// error instead of producing Unknown.
	Strict bool
	// MaxDepth bounds tree nesting. Zero means DefaultMaxDepth.
	MaxDepth int
}

// Decode parses a single component document into its tagged variant.
// Error paths are relative to the component itself ("components[1].type");
// callers embedding components prefix the subtree position with
// errors.Prefix.
func Decode(data []byte, opts DecodeOptions) (Component, error) {
	if opts.MaxDepth == 0 {
		opts.MaxDepth = DefaultMaxDepth
	}
	return decode(data, 1, opts)
}

// head is the discriminant peeked before the component body is parsed.
type head struct {
	Type *Type `json:"type"`
}

func decode(data []byte, depth int, opts DecodeOptions) (Component, error) {
	if depth > opts.MaxDepth {
		return nil, errors.NewDepthExceeded("", opts.MaxDepth)
	}

	var h head
	if err := json.Unmarshal(data, &h); err != nil {
		return nil, errors.NewTypeMismatch("", "component object", "malformed document")
	}
	if h.Type == nil {
		return nil, errors.NewMissingRequiredField("type")
	}

	switch *h.Type {
	case TypeActionRow:
		return decodeActionRow(data, depth, opts)
	case TypeButton:
		var b Button
		if err := json.Unmarshal(data, &b); err != nil {
			return nil, errors.Wrap(err, "button")
		}
		return b, nil
	case TypeStringSelect, TypeUserSelect, TypeRoleSelect, TypeMentionableSelect, TypeChannelSelect:
		var s SelectMenu
		if err := json.Unmarshal(data, &s); err != nil {
			return nil, errors.Wrap(err, "select")
		}
		s.MenuType = *h.Type
		return s, nil
	case TypeTextInput:
		var i TextInput
		if err := json.Unmarshal(data, &i); err != nil {
			return nil, errors.Wrap(err, "text_input")
		}
		return i, nil
	default:
		if opts.Strict {
			return nil, errors.NewSchema("type", int(*h.Type))
		}
		return Unknown{Type: *h.Type, Raw: append(json.RawMessage(nil), data...)}, nil
	}
}

func decodeActionRow(data []byte, depth int, opts DecodeOptions) (Component, error) {
	var wire actionRowWire
	if err := json.Unmarshal(data, &wire); err != nil {
		return nil, errors.Wrap(err, "components")
	}

	row := ActionRow{Components: make([]Component, len(wire.Components))}
	for i, raw := range wire.Components {
		child, err := decode(raw, depth+1, opts)
		if err != nil {
			return nil, errors.Prefix(err, errors.Index("components", i))
		}
		row.Components[i] = child
	}
	return row, nil
}

// UnmarshalComponent decodes with default options: lenient discriminant
// policy and the default depth bound.
func UnmarshalComponent(data []byte) (Component, error) {
	return Decode(data, DecodeOptions{})
}
