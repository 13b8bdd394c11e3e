package component

import "strconv"

// Type is the open component discriminant read before the rest of a
// component document is parsed. Unrecognized values decode to Unknown and
// re-encode unchanged.
type Type int

// Known component types.
const (
	TypeActionRow         Type = 1
	TypeButton            Type = 2
	TypeStringSelect      Type = 3
	TypeTextInput         Type = 4
	TypeUserSelect        Type = 5
	TypeRoleSelect        Type = 6
	TypeMentionableSelect Type = 7
	TypeChannelSelect     Type = 8
)

// Known reports whether the type is part of the recognized set.
func (t Type) Known() bool {
	return t >= TypeActionRow && t <= TypeChannelSelect
}

// IsSelect reports whether the type is one of the select menu kinds.
func (t Type) IsSelect() bool {
	switch t {
	case TypeStringSelect, TypeUserSelect, TypeRoleSelect, TypeMentionableSelect, TypeChannelSelect:
		return true
	}
	return false
}

// String returns the name of a known type, or the raw value for unknown ones.
func (t Type) String() string {
	switch t {
	case TypeActionRow:
		return "action_row"
	case TypeButton:
		return "button"
	case TypeStringSelect:
		return "string_select"
	case TypeTextInput:
		return "text_input"
	case TypeUserSelect:
		return "user_select"
	case TypeRoleSelect:
		return "role_select"
	case TypeMentionableSelect:
		return "mentionable_select"
	case TypeChannelSelect:
		return "channel_select"
	default:
		return strconv.Itoa(int(t))
	}
}

// ButtonStyle selects a button's appearance and behavior class.
type ButtonStyle int

// Known button styles.
const (
	ButtonStylePrimary   ButtonStyle = 1
	ButtonStyleSecondary ButtonStyle = 2
	ButtonStyleSuccess   ButtonStyle = 3
	ButtonStyleDanger    ButtonStyle = 4
	ButtonStyleLink      ButtonStyle = 5
	ButtonStylePremium   ButtonStyle = 6
)

// TextInputStyle selects single-line or paragraph rendering.
type TextInputStyle int

// Known text input styles.
const (
	TextInputStyleShort     TextInputStyle = 1
	TextInputStyleParagraph TextInputStyle = 2
)

// SelectDefaultValueType names the entity kind of a select menu default.
type SelectDefaultValueType string

// Known default value types for auto-populated selects.
const (
	SelectDefaultValueUser    SelectDefaultValueType = "user"
	SelectDefaultValueRole    SelectDefaultValueType = "role"
	SelectDefaultValueChannel SelectDefaultValueType = "channel"
)
