package message

import (
	"encoding/json"
	"unicode/utf8"

	"github.com/Siphalor/twilight/component"
	"github.com/Siphalor/twilight/embed"
	"github.com/Siphalor/twilight/errors"
	"github.com/Siphalor/twilight/types"
)

// MaxContentLength is the protocol's character limit for outbound content.
const MaxContentLength = 2000

// MaxEmbeds is the protocol's embed limit per outbound message.
const MaxEmbeds = 10

// CreateMessage is the outbound message creation payload. It is a separate
// type from Message: outbound documents carry policy fields (allowed
// mentions, nonce enforcement, sticker IDs) that received messages never do.
type CreateMessage struct {
	Content         string                `json:"content,omitempty"`
	Nonce           string                `json:"nonce,omitempty"`
	EnforceNonce    bool                  `json:"enforce_nonce,omitempty"`
	TTS             bool                  `json:"tts,omitempty"`
	Embeds          []embed.Embed         `json:"embeds,omitempty"`
	AllowedMentions *AllowedMentions      `json:"allowed_mentions,omitempty"`
	Reference       *Reference            `json:"message_reference,omitempty"`
	Components      []component.Component `json:"components,omitempty"`
	StickerIDs      []types.Snowflake     `json:"sticker_ids,omitempty"`
	Flags           Flags                 `json:"flags,omitempty"`
}

// Encode serializes the payload to its wire document.
func (c *CreateMessage) Encode() ([]byte, error) {
	return json.Marshal(c)
}

// Builder assembles an outbound message. Decoded messages are immutable;
// all outbound construction goes through here.
//
//	payload, err := message.NewBuilder().
//	    Content("deployment finished").
//	    Embed(statusEmbed).
//	    ReplyTo(originalID).
//	    Build()
type Builder struct {
	msg CreateMessage
}

// NewBuilder creates an empty message builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Content sets the textual content.
func (b *Builder) Content(content string) *Builder {
	b.msg.Content = content
	return b
}

// Nonce sets the deduplication nonce, optionally enforced server-side.
func (b *Builder) Nonce(nonce string, enforce bool) *Builder {
	b.msg.Nonce = nonce
	b.msg.EnforceNonce = enforce
	return b
}

// TTS marks the message as text-to-speech.
func (b *Builder) TTS() *Builder {
	b.msg.TTS = true
	return b
}

// Embed appends a rich embed.
func (b *Builder) Embed(e embed.Embed) *Builder {
	b.msg.Embeds = append(b.msg.Embeds, e)
	return b
}

// AllowedMentions sets the outbound mention policy.
func (b *Builder) AllowedMentions(a AllowedMentions) *Builder {
	b.msg.AllowedMentions = &a
	return b
}

// ReplyTo points the message at a replied-to message.
func (b *Builder) ReplyTo(messageID types.Snowflake) *Builder {
	b.msg.Reference = &Reference{Type: ReferenceTypeDefault, MessageID: messageID}
	return b
}

// Reference sets a full message reference (crosspost, forward).
func (b *Builder) Reference(ref Reference) *Builder {
	b.msg.Reference = &ref
	return b
}

// Component appends a top-level component row.
func (b *Builder) Component(c component.Component) *Builder {
	b.msg.Components = append(b.msg.Components, c)
	return b
}

// Sticker appends a sticker by ID.
func (b *Builder) Sticker(id types.Snowflake) *Builder {
	b.msg.StickerIDs = append(b.msg.StickerIDs, id)
	return b
}

// Flags sets message flags (e.g. FlagSuppressEmbeds, FlagSuppressNotifications).
func (b *Builder) Flags(f Flags) *Builder {
	b.msg.Flags = f
	return b
}

// Build validates the assembled payload and returns it. The protocol
// requires at least one of content, embeds, stickers, or components, and
// enforces the documented size limits.
func (b *Builder) Build() (*CreateMessage, error) {
	m := b.msg

	if m.Content == "" && len(m.Embeds) == 0 && len(m.StickerIDs) == 0 && len(m.Components) == 0 {
		return nil, errors.NewMissingRequiredField("content")
	}
	if utf8.RuneCountInString(m.Content) > MaxContentLength {
		return nil, errors.NewTypeMismatch("content", "at most 2000 characters", "longer")
	}
	if len(m.Embeds) > MaxEmbeds {
		return nil, errors.NewTypeMismatch("embeds", "at most 10 embeds", "more")
	}
	for i, e := range m.Embeds {
		if err := e.Validate(); err != nil {
			return nil, errors.Prefix(err, errors.Index("embeds", i))
		}
	}
	if m.AllowedMentions != nil {
		if err := m.AllowedMentions.Validate(); err != nil {
			return nil, err
		}
	}

	return &m, nil
}
