package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// tri-state carrier used across the sparsity tests
type sparseDoc struct {
	Edited Nullable[string] `json:"edited,omitzero"`
}

func TestNullable_ZeroValueIsAbsent(t *testing.T) {
	var n Nullable[string]
	assert.True(t, n.IsAbsent())
	assert.False(t, n.IsNull())
	_, ok := n.Get()
	assert.False(t, ok)
	assert.True(t, n.IsZero())
}

func TestNullable_States(t *testing.T) {
	v := NewValue("hello")
	assert.False(t, v.IsAbsent())
	assert.False(t, v.IsNull())
	got, ok := v.Get()
	assert.True(t, ok)
	assert.Equal(t, "hello", got)

	n := NewNull[string]()
	assert.False(t, n.IsAbsent())
	assert.True(t, n.IsNull())
	_, ok = n.Get()
	assert.False(t, ok)
	assert.False(t, n.IsZero())
}

func TestNullable_ValueOr(t *testing.T) {
	assert.Equal(t, "x", NewValue("x").ValueOr("y"))
	assert.Equal(t, "y", NewNull[string]().ValueOr("y"))
	var absent Nullable[string]
	assert.Equal(t, "y", absent.ValueOr("y"))
}

func TestNullable_DecodeDistinguishesThreeStates(t *testing.T) {
	tests := []struct {
		name   string
		doc    string
		absent bool
		null   bool
		value  string
	}{
		{"key absent", `{}`, true, false, ""},
		{"explicit null", `{"edited": null}`, false, true, ""},
		{"value", `{"edited": "2021-01-01"}`, false, false, "2021-01-01"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			var doc sparseDoc
			require.NoError(t, json.Unmarshal([]byte(test.doc), &doc))
			assert.Equal(t, test.absent, doc.Edited.IsAbsent())
			assert.Equal(t, test.null, doc.Edited.IsNull())
			if !test.absent && !test.null {
				got, ok := doc.Edited.Get()
				require.True(t, ok)
				assert.Equal(t, test.value, got)
			}
		})
	}
}

func TestNullable_EncodeReproducesSparsity(t *testing.T) {
	tests := []struct {
		name string
		doc  sparseDoc
		want string
	}{
		{"absent omits key", sparseDoc{}, `{}`},
		{"null emits null", sparseDoc{Edited: NewNull[string]()}, `{"edited":null}`},
		{"value emits value", sparseDoc{Edited: NewValue("x")}, `{"edited":"x"}`},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			data, err := json.Marshal(test.doc)
			require.NoError(t, err)
			assert.JSONEq(t, test.want, string(data))
		})
	}
}

func TestNullable_RoundTrip(t *testing.T) {
	for _, doc := range []string{`{}`, `{"edited":null}`, `{"edited":"x"}`} {
		var d sparseDoc
		require.NoError(t, json.Unmarshal([]byte(doc), &d))
		out, err := json.Marshal(d)
		require.NoError(t, err)
		assert.JSONEq(t, doc, string(out), "round trip of %s", doc)
	}
}

func TestNullable_BadValue(t *testing.T) {
	var n Nullable[int]
	assert.Error(t, n.UnmarshalJSON([]byte(`"nope"`)))
}
