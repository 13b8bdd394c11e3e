package types

import "encoding/json"

// nullState tracks which of the three wire states a Nullable holds.
type nullState uint8

const (
	stateAbsent nullState = iota
	stateNull
	stateValue
)

// Nullable is a tri-state field cell for wire fields where the protocol
// distinguishes "key absent", "key present with null", and "key present with
// a value" (notably edited_timestamp and content). The zero value is the
// absent state, so struct fields default to absent without initialization.
//
// Nullable implements IsZero so that `json:"...,omitzero"` omits absent
// fields on encode, reproducing the original document's sparsity.
type Nullable[T any] struct {
	value T
	state nullState
}

// NewValue creates a Nullable holding a value.
func NewValue[T any](v T) Nullable[T] {
	return Nullable[T]{value: v, state: stateValue}
}

// NewNull creates a Nullable in the explicit-null state.
func NewNull[T any]() Nullable[T] {
	return Nullable[T]{state: stateNull}
}

// IsAbsent reports whether the key was absent from the wire document.
func (n Nullable[T]) IsAbsent() bool {
	return n.state == stateAbsent
}

// IsNull reports whether the key was present with an explicit null.
func (n Nullable[T]) IsNull() bool {
	return n.state == stateNull
}

// Get returns the held value and whether one is present. Absent and null
// states both return ok = false.
func (n Nullable[T]) Get() (T, bool) {
	return n.value, n.state == stateValue
}

// ValueOr returns the held value, or fallback when absent or null.
func (n Nullable[T]) ValueOr(fallback T) T {
	if n.state == stateValue {
		return n.value
	}
	return fallback
}

// IsZero reports whether the cell is absent. encoding/json consults this for
// the omitzero tag option, so absent cells never emit a key.
func (n Nullable[T]) IsZero() bool {
	return n.state == stateAbsent
}

// MarshalJSON emits null for the null state and the held value otherwise.
// Absent cells are omitted before this is called (omitzero); an absent cell
// marshaled directly degrades to null.
func (n Nullable[T]) MarshalJSON() ([]byte, error) {
	if n.state != stateValue {
		return []byte("null"), nil
	}
	return json.Marshal(n.value)
}

// UnmarshalJSON records presence and distinguishes null from a value. It is
// only invoked when the key exists, so the absent state survives decoding.
func (n *Nullable[T]) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*n = Nullable[T]{state: stateNull}
		return nil
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*n = Nullable[T]{value: v, state: stateValue}
	return nil
}
