package component

import (
	"encoding/json"

	"github.com/Siphalor/twilight/emoji"
	"github.com/Siphalor/twilight/errors"
	"github.com/Siphalor/twilight/types"
)

// Component is the tagged union of interactive components. Concrete variants
// are ActionRow, Button, SelectMenu, TextInput, and Unknown; the wire
// discriminant is the "type" field, exposed through Kind.
//
// The component tree is owned top-down (rows hold child values); the wire
// format is a tree, so no cyclic construction is possible.
type Component interface {
	// Kind returns the wire discriminant of this component.
	Kind() Type

	json.Marshaler
}

// ActionRow is the container component holding a row of child components.
type ActionRow struct {
	Components []Component
}

// Kind implements Component.
func (ActionRow) Kind() Type { return TypeActionRow }

type actionRowWire struct {
	Type       Type              `json:"type"`
	Components []json.RawMessage `json:"components"`
}

// MarshalJSON emits the row with its discriminant and children.
func (r ActionRow) MarshalJSON() ([]byte, error) {
	children := make([]json.RawMessage, len(r.Components))
	for i, c := range r.Components {
		data, err := c.MarshalJSON()
		if err != nil {
			return nil, errors.Prefix(err, errors.Index("components", i))
		}
		children[i] = data
	}
	return json.Marshal(actionRowWire{Type: TypeActionRow, Components: children})
}

// Button is a clickable component. Link buttons carry a URL instead of a
// custom ID, premium buttons a SKU ID; the remaining styles carry a custom ID
// routed back through interactions.
type Button struct {
	Style    ButtonStyle     `json:"style"`
	Label    string          `json:"label,omitempty"`
	Emoji    *emoji.Emoji    `json:"emoji,omitempty"`
	CustomID string          `json:"custom_id,omitempty"`
	URL      string          `json:"url,omitempty"`
	SKUID    types.Snowflake `json:"sku_id,omitempty"`
	Disabled bool            `json:"disabled,omitempty"`
}

// Kind implements Component.
func (Button) Kind() Type { return TypeButton }

// MarshalJSON emits the button with its discriminant.
func (b Button) MarshalJSON() ([]byte, error) {
	type alias Button
	return json.Marshal(struct {
		Type Type `json:"type"`
		alias
	}{Type: TypeButton, alias: alias(b)})
}

// SelectOption is a choice in a string select menu.
type SelectOption struct {
	Label       string       `json:"label"`
	Value       string       `json:"value"`
	Description string       `json:"description,omitempty"`
	Emoji       *emoji.Emoji `json:"emoji,omitempty"`
	Default     bool         `json:"default,omitempty"`
}

// SelectDefaultValue pre-selects an entity in an auto-populated select menu.
type SelectDefaultValue struct {
	ID   types.Snowflake        `json:"id"`
	Type SelectDefaultValueType `json:"type"`
}

// SelectMenu is any of the five select menu kinds. MenuType records which
// kind this menu is; Options is only populated for string selects,
// ChannelTypes and DefaultValues only for the auto-populated kinds.
type SelectMenu struct {
	MenuType      Type                 `json:"-"`
	CustomID      string               `json:"custom_id"`
	Options       []SelectOption       `json:"options,omitempty"`
	ChannelTypes  []int                `json:"channel_types,omitempty"`
	Placeholder   string               `json:"placeholder,omitempty"`
	DefaultValues []SelectDefaultValue `json:"default_values,omitempty"`
	MinValues     *int                 `json:"min_values,omitempty"`
	MaxValues     int                  `json:"max_values,omitempty"`
	Disabled      bool                 `json:"disabled,omitempty"`
}

// Kind implements Component.
func (s SelectMenu) Kind() Type {
	if s.MenuType == 0 {
		return TypeStringSelect
	}
	return s.MenuType
}

// MarshalJSON emits the menu with its discriminant.
func (s SelectMenu) MarshalJSON() ([]byte, error) {
	type alias SelectMenu
	return json.Marshal(struct {
		Type Type `json:"type"`
		alias
	}{Type: s.Kind(), alias: alias(s)})
}

// TextInput is a free-form text field in a modal.
type TextInput struct {
	CustomID    string         `json:"custom_id"`
	Style       TextInputStyle `json:"style"`
	Label       string         `json:"label"`
	MinLength   *int           `json:"min_length,omitempty"`
	MaxLength   int            `json:"max_length,omitempty"`
	Required    *bool          `json:"required,omitempty"`
	Value       string         `json:"value,omitempty"`
	Placeholder string         `json:"placeholder,omitempty"`
}

// Kind implements Component.
func (TextInput) Kind() Type { return TypeTextInput }

// MarshalJSON emits the input with its discriminant.
func (i TextInput) MarshalJSON() ([]byte, error) {
	type alias TextInput
	return json.Marshal(struct {
		Type Type `json:"type"`
		alias
	}{Type: TypeTextInput, alias: alias(i)})
}

// Unknown preserves a component whose discriminant the model does not
// recognize. The raw document is kept verbatim so re-encoding loses nothing.
type Unknown struct {
	Type Type
	Raw  json.RawMessage
}

// Kind implements Component.
func (u Unknown) Kind() Type { return u.Type }

// MarshalJSON re-emits the original document unchanged.
func (u Unknown) MarshalJSON() ([]byte, error) {
	return append([]byte(nil), u.Raw...), nil
}
