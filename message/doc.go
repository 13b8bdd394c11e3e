// Package message provides the message aggregate of the chat protocol and
// its decode/encode layer: the entity a client receives for every message
// event, with everything attached to it (embeds, components, stickers,
// reactions, mentions, references, role subscription metadata).
//
// # Decoding
//
// Decode turns a wire document into a Message:
//
//	msg, err := message.Decode(data)
//
// Decoding is forward compatible by default. The protocol evolves
// independently of the client, so unrecognized enum discriminants decode to
// their raw value (every enum is open, with Known reporting whether the
// value has a name), unknown flag bits are preserved bit-for-bit, and
// unknown component kinds decode to component.Unknown carrying the raw
// document. A message only fails to decode when it is structurally not a
// message: missing id, channel, author, or timestamp, or a field with the
// wrong wire shape.
//
// Strict mode opts into rejecting unrecognized discriminants, for callers
// that prefer to detect protocol drift over tolerating it:
//
//	msg, err := message.Decode(data, message.WithMode(message.Strict))
//
// Component nesting is bounded (WithMaxComponentDepth); documents nesting
// deeper fail with a DepthExceeded error under both modes. All decode errors
// carry a structural path such as "embeds[2].fields[0].value".
//
// # Encoding
//
// Encode reverses Decode, emitting only fields that hold data so the
// document mirrors protocol sparsity. The tri-state cells (Content,
// EditedTimestamp, ReferencedMessage) re-emit exactly the absent, null, or
// value state they decoded from.
//
// # Outbound messages
//
// Decoded messages are immutable value types; outbound construction goes
// through Builder, which assembles and validates a CreateMessage payload:
//
//	payload, err := message.NewBuilder().
//	    Content("release 1.4 is live").
//	    Embed(changelogEmbed).
//	    AllowedMentions(message.AllowedMentions{Parse: []message.MentionType{message.MentionTypeUsers}}).
//	    Build()
//
// # Concurrency
//
// Decode and Encode are pure functions over immutable inputs. Calls on
// independent documents may run fully in parallel with no synchronization.
package message
