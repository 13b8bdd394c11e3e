package message

import (
	"encoding/json"
	stderrors "errors"

	"github.com/rs/zerolog"

	"github.com/Siphalor/twilight/component"
	"github.com/Siphalor/twilight/embed"
	"github.com/Siphalor/twilight/errors"
	"github.com/Siphalor/twilight/sticker"
	"github.com/Siphalor/twilight/types"
)

// Mode is the decode policy for unrecognized discriminants.
type Mode int

const (
	// Lenient tolerates unrecognized discriminants: enum values decode to
	// their raw form and unknown component kinds to component.Unknown.
	// This is the default.
	Lenient Mode = iota
	// Strict rejects any unrecognized discriminant in the document with a
	// schema error naming the value and its structural path.
	Strict
)

// decodeConfig carries decode policy. Built from DecodeOptions.
type decodeConfig struct {
	mode     Mode
	maxDepth int
	logger   zerolog.Logger
}

// DecodeOption configures Decode.
type DecodeOption func(*decodeConfig)

// WithMode selects strict or lenient discriminant policy.
func WithMode(mode Mode) DecodeOption {
	return func(c *decodeConfig) {
		c.mode = mode
	}
}

// WithMaxComponentDepth bounds component tree nesting. Documents nesting
// deeper fail with a DepthExceeded error under both modes.
func WithMaxComponentDepth(depth int) DecodeOption {
	return func(c *decodeConfig) {
		c.maxDepth = depth
	}
}

// WithLogger attaches a logger for lenient-mode diagnostics: unrecognized
// discriminants and unknown flag bits are logged at debug level instead of
// failing. Decode logs nothing by default.
func WithLogger(logger zerolog.Logger) DecodeOption {
	return func(c *decodeConfig) {
		c.logger = logger
	}
}

// decodeField unmarshals one key of the staged document, prefixing any
// failure with the key so errors from nested unmarshalers surface with the
// field's structural location. Absent keys are skipped, preserving zero and
// tri-state defaults.
func decodeField(doc map[string]json.RawMessage, key string, dst any) error {
	raw, ok := doc[key]
	if !ok {
		return nil
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return errors.Prefix(mapJSONError(err, ""), key)
	}
	return nil
}

// decodeSlice unmarshals an array field element by element so a failure
// inside one element carries its index, e.g. "reactions[1].emoji".
func decodeSlice[T any](doc map[string]json.RawMessage, key string) ([]T, error) {
	raw, ok := doc[key]
	if !ok {
		return nil, nil
	}
	var elems []json.RawMessage
	if err := json.Unmarshal(raw, &elems); err != nil {
		return nil, errors.Prefix(mapJSONError(err, ""), key)
	}
	out := make([]T, len(elems))
	for i := range elems {
		if err := json.Unmarshal(elems[i], &out[i]); err != nil {
			return nil, errors.Prefix(mapJSONError(err, ""), errors.Index(key, i))
		}
	}
	return out, nil
}

// Decode parses a wire document into a Message.
//
// Required fields (id, channel_id, author, timestamp) fail with
// MissingRequiredField under both modes; unrecognized extra fields and
// enum/flag values never fail under Lenient. Strict additionally rejects
// unrecognized discriminants anywhere in the substructure tree. All errors
// carry a structural path into the document.
func Decode(data []byte, opts ...DecodeOption) (*Message, error) {
	cfg := decodeConfig{
		mode:     Lenient,
		maxDepth: component.DefaultMaxDepth,
		logger:   zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return decode(data, &cfg)
}

func decode(data []byte, cfg *decodeConfig) (*Message, error) {
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, mapJSONError(err, "message")
	}

	m := &Message{}
	scalars := []struct {
		key string
		dst any
	}{
		{"id", &m.ID},
		{"channel_id", &m.ChannelID},
		{"guild_id", &m.GuildID},
		{"author", &m.Author},
		{"content", &m.Content},
		{"timestamp", &m.Timestamp},
		{"edited_timestamp", &m.EditedTimestamp},
		{"tts", &m.TTS},
		{"mention_everyone", &m.MentionEveryone},
		{"pinned", &m.Pinned},
		{"webhook_id", &m.WebhookID},
		{"type", &m.Kind},
		{"activity", &m.Activity},
		{"application", &m.Application},
		{"application_id", &m.ApplicationID},
		{"message_reference", &m.Reference},
		{"flags", &m.Flags},
		{"interaction", &m.Interaction},
		{"role_subscription_data", &m.RoleSubscriptionData},
		{"position", &m.Position},
	}
	for _, f := range scalars {
		if err := decodeField(doc, f.key, f.dst); err != nil {
			return nil, err
		}
	}

	var err error
	if m.Mentions, err = decodeSlice[Mention](doc, "mentions"); err != nil {
		return nil, err
	}
	if m.MentionRoles, err = decodeSlice[types.Snowflake](doc, "mention_roles"); err != nil {
		return nil, err
	}
	if m.MentionChannels, err = decodeSlice[ChannelMention](doc, "mention_channels"); err != nil {
		return nil, err
	}
	if m.Attachments, err = decodeSlice[Attachment](doc, "attachments"); err != nil {
		return nil, err
	}
	if m.Embeds, err = decodeSlice[embed.Embed](doc, "embeds"); err != nil {
		return nil, err
	}
	if m.Reactions, err = decodeSlice[Reaction](doc, "reactions"); err != nil {
		return nil, err
	}
	if m.StickerItems, err = decodeSlice[sticker.Item](doc, "sticker_items"); err != nil {
		return nil, err
	}
	m.Nonce = doc["nonce"]

	if err := m.Validate(); err != nil {
		return nil, err
	}

	if raw, ok := doc["components"]; ok {
		var elems []json.RawMessage
		if err := json.Unmarshal(raw, &elems); err != nil {
			return nil, errors.Prefix(mapJSONError(err, ""), "components")
		}
		if len(elems) > 0 {
			m.Components = make([]component.Component, len(elems))
			compOpts := component.DecodeOptions{
				Strict:   cfg.mode == Strict,
				MaxDepth: cfg.maxDepth,
			}
			for i, elem := range elems {
				c, err := component.Decode(elem, compOpts)
				if err != nil {
					return nil, errors.Prefix(err, errors.Index("components", i))
				}
				m.Components[i] = c
			}
		}
	}

	if raw, ok := doc["referenced_message"]; ok {
		if string(raw) == "null" {
			m.ReferencedMessage = types.NewNull[*Message]()
		} else {
			ref, err := decode(raw, cfg)
			if err != nil {
				return nil, errors.Prefix(err, "referenced_message")
			}
			m.ReferencedMessage = types.NewValue(ref)
		}
	}

	if err := checkDiscriminants(m, cfg); err != nil {
		return nil, err
	}

	return m, nil
}

// checkDiscriminants walks every open discriminant outside the component
// tree (which enforces its own policy during decode). Strict mode fails on
// the first unrecognized value; lenient mode logs them.
func checkDiscriminants(m *Message, cfg *decodeConfig) error {
	report := func(path string, raw any) error {
		if cfg.mode == Strict {
			return errors.NewSchema(path, raw)
		}
		cfg.logger.Debug().
			Str("path", path).
			Interface("discriminant", raw).
			Msg("unrecognized discriminant")
		return nil
	}

	if !m.Kind.Known() {
		if err := report("type", int(m.Kind)); err != nil {
			return err
		}
	}
	if m.Activity != nil && !m.Activity.Type.Known() {
		if err := report("activity.type", int(m.Activity.Type)); err != nil {
			return err
		}
	}
	if m.Reference != nil && !m.Reference.Type.Known() {
		if err := report("message_reference.type", int(m.Reference.Type)); err != nil {
			return err
		}
	}
	if m.Interaction != nil && !m.Interaction.Type.Known() {
		if err := report("interaction.type", int(m.Interaction.Type)); err != nil {
			return err
		}
	}
	for i, r := range m.Reactions {
		if !r.Type.Known() {
			if err := report(errors.Index("reactions", i)+".type", int(r.Type)); err != nil {
				return err
			}
		}
	}
	for i, e := range m.Embeds {
		if e.Type != "" && !e.Type.Known() {
			if err := report(errors.Index("embeds", i)+".type", string(e.Type)); err != nil {
				return err
			}
		}
	}
	for i, s := range m.StickerItems {
		if !s.FormatType.Known() {
			if err := report(errors.Index("sticker_items", i)+".format_type", int(s.FormatType)); err != nil {
				return err
			}
		}
	}

	// flag bits are extensible, never a strict failure; surface for
	// diagnostics only
	if unknown := m.Flags.UnknownBits(); unknown != 0 {
		cfg.logger.Debug().
			Uint64("bits", uint64(unknown)).
			Msg("unrecognized message flag bits")
	}

	return nil
}

// Encode serializes a Message back into its wire document. Fields holding
// their default or empty value are omitted, mirroring protocol sparsity;
// the tri-state cells re-emit exactly the absent/null/value state they
// decoded from. Encode only fails on wire invariant violations in
// caller-constructed values, such as a reaction emoji populating both the
// custom and unicode forms.
func Encode(m *Message) ([]byte, error) {
	return json.Marshal(m)
}

// mapJSONError converts encoding/json failures into the codec taxonomy.
// Paths reported by json are kept; errors without one get the fallback, and
// callers prefix the field position on top.
func mapJSONError(err error, fallback string) error {
	var typeErr *json.UnmarshalTypeError
	if stderrors.As(err, &typeErr) {
		path := typeErr.Field
		if path == "" {
			path = fallback
		}
		return errors.NewTypeMismatch(path, typeErr.Type.String(), typeErr.Value)
	}

	var de *errors.DecodeError
	if stderrors.As(err, &de) {
		return err
	}

	return errors.Wrap(err, fallback)
}
