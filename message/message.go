package message

import (
	"encoding/json"

	"github.com/Siphalor/twilight/component"
	"github.com/Siphalor/twilight/embed"
	"github.com/Siphalor/twilight/errors"
	"github.com/Siphalor/twilight/sticker"
	"github.com/Siphalor/twilight/types"
)

// Message is the top-level message entity as received from the protocol.
// Values are constructed wholesale by Decode and consumed read-only;
// outbound messages are built with Builder, not by mutating decoded values.
//
// Field optionality mirrors the wire document: omitempty/omitzero fields
// reproduce the original sparsity on encode, and the tri-state cells
// (Content, EditedTimestamp, ReferencedMessage) preserve the
// absent/null/value distinction the protocol makes for them.
type Message struct {
	ID        types.Snowflake `json:"id"`
	ChannelID types.Snowflake `json:"channel_id"`
	GuildID   types.Snowflake `json:"guild_id,omitempty"`
	Author    *User           `json:"author"`

	Content types.Nullable[string] `json:"content,omitzero"`

	Timestamp types.Timestamp `json:"timestamp,omitzero"`
	// EditedTimestamp is absent for messages that were never edited and
	// carries the edit time otherwise; the wire also distinguishes an
	// explicit null.
	EditedTimestamp types.Nullable[types.Timestamp] `json:"edited_timestamp,omitzero"`

	TTS             bool              `json:"tts,omitempty"`
	MentionEveryone bool              `json:"mention_everyone,omitempty"`
	Mentions        []Mention         `json:"mentions,omitempty"`
	MentionRoles    []types.Snowflake `json:"mention_roles,omitempty"`
	MentionChannels []ChannelMention  `json:"mention_channels,omitempty"`

	Attachments []Attachment  `json:"attachments,omitempty"`
	Embeds      []embed.Embed `json:"embeds,omitempty"`
	Reactions   []Reaction    `json:"reactions,omitempty"`

	// Nonce is a string or integer on the wire; the raw form is kept so
	// re-encoding reproduces whichever the sender used.
	Nonce json.RawMessage `json:"nonce,omitempty"`

	Pinned    bool            `json:"pinned,omitempty"`
	WebhookID types.Snowflake `json:"webhook_id,omitempty"`

	// Kind is the message type discriminant ("type" on the wire). It
	// determines which optional fields are semantically meaningful, but
	// decode never rejects a message for carrying unexpected ones.
	Kind Type `json:"type"`

	Activity      *Activity       `json:"activity,omitempty"`
	Application   *Application    `json:"application,omitempty"`
	ApplicationID types.Snowflake `json:"application_id,omitempty"`

	Reference *Reference `json:"message_reference,omitempty"`
	// ReferencedMessage is absent for non-replies, null when the replied-to
	// message was deleted, and the full message otherwise.
	ReferencedMessage types.Nullable[*Message] `json:"referenced_message,omitzero"`

	Flags Flags `json:"flags,omitempty"`

	Components   []component.Component `json:"components,omitempty"`
	StickerItems []sticker.Item        `json:"sticker_items,omitempty"`

	Interaction          *Interaction          `json:"interaction,omitempty"`
	RoleSubscriptionData *RoleSubscriptionData `json:"role_subscription_data,omitempty"`

	Position int `json:"position,omitempty"`
}

// Validate checks the structural requirements every message must satisfy
// regardless of its type: identity, channel, author, and creation time.
// A message without these is not a valid message in any decode mode.
func (m *Message) Validate() error {
	if !m.ID.IsValid() {
		return errors.NewMissingRequiredField("id")
	}
	if !m.ChannelID.IsValid() {
		return errors.NewMissingRequiredField("channel_id")
	}
	if m.Author == nil {
		return errors.NewMissingRequiredField("author")
	}
	if m.Timestamp.IsZero() {
		return errors.NewMissingRequiredField("timestamp")
	}
	return nil
}

// IsReply reports whether the message is a reply to another message.
func (m *Message) IsReply() bool {
	return m.Kind == TypeReply
}

// UnmarshalJSON decodes with default options: lenient discriminant policy
// and the default component depth bound. Use Decode for strict mode or
// custom bounds.
func (m *Message) UnmarshalJSON(data []byte) error {
	decoded, err := Decode(data)
	if err != nil {
		return err
	}
	*m = *decoded
	return nil
}
