// Package types provides the primitive value types shared by every payload
// in the model: snowflake identifiers, ISO8601 timestamps, RGB colors,
// locale tags, and the tri-state Nullable cell.
//
// # Snowflakes
//
// Every addressable entity carries a 64-bit snowflake identifier. On the wire
// snowflakes are decimal strings; Snowflake handles both quoted and bare
// forms on decode and always emits the quoted form on encode. The timestamp
// bits are exposed through Snowflake.Time.
//
// # Tri-state fields
//
// A handful of wire fields distinguish three states: key absent, key present
// with null, and key present with a value. Nullable[T] preserves all three
// through a decode/encode round trip. The zero value is the absent state and
// implements IsZero, so fields tagged `json:"...,omitzero"` reproduce the
// original sparsity on encode:
//
//	type Message struct {
//	    EditedTimestamp types.Nullable[types.Timestamp] `json:"edited_timestamp,omitzero"`
//	}
package types
