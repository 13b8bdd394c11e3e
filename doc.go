// Package twilight models the message payloads of a Discord-style chat
// protocol: typed entities, open enums, bit-flag sets, and a codec that
// round-trips wire documents without losing protocol state the model does
// not yet understand.
//
// # Philosophy: Forward-Compatible Modeling
//
// The protocol evolves independently of any client. New message types,
// component kinds, flag bits, and fields appear on the wire before a model
// revision names them. The packages here are built around one rule:
// unknown-but-well-typed data is never an error.
//
//   - Open enums: every discriminant is a newtype over its raw wire value.
//     Unrecognized values decode, compare, and re-encode untouched; Known
//     reports whether this revision has a name for them.
//   - Bit-flag sets: flags are the raw wire integer. Bits without a named
//     constant survive a decode/encode round trip bit-for-bit.
//   - Tagged unions: an unrecognized component kind decodes to a variant
//     carrying its raw document, and re-emits it losslessly.
//
// A document only fails to decode when it is structurally broken: a missing
// required field, a field of the wrong wire type, or nesting past the
// configured depth bound.
//
// # Architecture
//
// The model is layered bottom-up:
//
//	┌─────────────────────────────────────┐
//	│            message                  │  Message aggregate,
//	│  (Decode, Encode, Builder, flags)   │  codec policy, outbound
//	└─────────────────────────────────────┘
//	           ↓ composes
//	┌─────────────────────────────────────┐
//	│   embed   component   sticker       │  Polymorphic
//	│           emoji                     │  substructures
//	└─────────────────────────────────────┘
//	           ↓ built on
//	┌─────────────────────────────────────┐
//	│        types      errors            │  Snowflake, Timestamp,
//	│                                     │  Nullable, error taxonomy
//	└─────────────────────────────────────┘
//
// # Packages
//
// Foundation:
//   - types: Snowflake IDs, wire timestamps, tri-state Nullable cells,
//     colors, locales
//   - errors: the decode error taxonomy (missing field, type mismatch,
//     schema error, depth exceeded), each carrying a structural path
//
// Substructures:
//   - emoji: the tagged custom-or-unicode emoji choice
//   - embed: rich embeds with their outbound length limits
//   - component: the recursive interactive component tree (action rows,
//     buttons, select menus, text inputs) with a bounded decoder
//   - sticker: sticker items and full sticker entities
//
// Aggregate:
//   - message: the Message entity, its enums and flag set, the
//     strict/lenient codec, and the outbound CreateMessage builder
//
// # Sparsity
//
// Wire documents are sparse: most fields are simply absent, and a handful
// distinguish absent from an explicit null. Struct fields mirror that with
// omitempty/omitzero, and types.Nullable keeps the three-way
// absent/null/value distinction for the fields where the protocol makes it
// (message content, edit timestamp, referenced message). Encoding a decoded
// message reproduces the sparsity of the original document.
//
// # Decode Policy
//
// message.Decode and component.Decode accept a policy: Lenient (the
// default) tolerates unrecognized discriminants, Strict rejects them with a
// schema error naming the raw value and its structural path, such as
// "components[0].components[1].type". The depth bound for component
// nesting is configurable and enforced under both policies.
//
// # Concurrency
//
// Decoded values are immutable and safe for concurrent reads. Decode and
// Encode hold no shared state; independent documents may be processed fully
// in parallel.
package twilight
