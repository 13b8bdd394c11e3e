package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestKind_String(t *testing.T) {
	tests := []struct {
		kind     Kind
		expected string
	}{
		{KindMissingRequiredField, "missing required field"},
		{KindTypeMismatch, "type mismatch"},
		{KindSchema, "schema"},
		{KindDepthExceeded, "depth exceeded"},
		{Kind(999), "unknown"},
	}

	for _, test := range tests {
		t.Run(test.expected, func(t *testing.T) {
			result := test.kind.String()
			if result != test.expected {
				t.Errorf("expected %s, got %s", test.expected, result)
			}
		})
	}
}

func TestDecodeError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *DecodeError
		expected string
	}{
		{
			name:     "missing field",
			err:      NewMissingRequiredField("author"),
			expected: "author: missing required field",
		},
		{
			name:     "type mismatch with shapes",
			err:      NewTypeMismatch("flags", "number", "string"),
			expected: "flags: type mismatch: expected number, found string",
		},
		{
			name:     "type mismatch without shapes",
			err:      &DecodeError{Kind: KindTypeMismatch, Path: "emoji"},
			expected: "emoji: type mismatch",
		},
		{
			name:     "schema",
			err:      NewSchema("components[0].type", 99),
			expected: "components[0].type: unrecognized discriminant 99",
		},
		{
			name:     "depth",
			err:      NewDepthExceeded("components[0]", 8),
			expected: "components[0]: nesting depth exceeded (max 8)",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := test.err.Error(); got != test.expected {
				t.Errorf("expected %q, got %q", test.expected, got)
			}
		})
	}
}

func TestDecodeError_Sentinels(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		sentinel error
	}{
		{"missing field", NewMissingRequiredField("id"), ErrMissingRequiredField},
		{"type mismatch", NewTypeMismatch("count", "number", "string"), ErrTypeMismatch},
		{"schema", NewSchema("type", 42), ErrSchema},
		{"depth", NewDepthExceeded("components", 4), ErrDepthExceeded},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if !errors.Is(test.err, test.sentinel) {
				t.Errorf("errors.Is(%v, %v) = false, want true", test.err, test.sentinel)
			}
		})
	}
}

func TestDecodeError_UnwrapCause(t *testing.T) {
	cause := fmt.Errorf("invalid character 'x'")
	err := Wrap(cause, "reactions[0].count")

	if !errors.Is(err, cause) {
		t.Error("wrapped cause not reachable through errors.Is")
	}
	if !errors.Is(err, ErrTypeMismatch) {
		t.Error("wrapped error should classify as type mismatch")
	}

	var de *DecodeError
	if !errors.As(err, &de) {
		t.Fatal("errors.As failed to find DecodeError")
	}
	if de.Path != "reactions[0].count" {
		t.Errorf("expected path reactions[0].count, got %s", de.Path)
	}
}

func TestWrap_NilError(t *testing.T) {
	if Wrap(nil, "anywhere") != nil {
		t.Error("Wrap(nil) should return nil")
	}
}

func TestPrefix(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		segment  string
		expected string
	}{
		{
			name:     "prefix nested path",
			err:      NewSchema("components[1].type", 99),
			segment:  "embeds[0]",
			expected: "embeds[0].components[1].type",
		},
		{
			name:     "prefix empty path",
			err:      &DecodeError{Kind: KindTypeMismatch},
			segment:  "flags",
			expected: "flags",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := Prefix(test.err, test.segment)
			var de *DecodeError
			if !errors.As(got, &de) {
				t.Fatal("prefixed error is not a DecodeError")
			}
			if de.Path != test.expected {
				t.Errorf("expected path %q, got %q", test.expected, de.Path)
			}
		})
	}
}

func TestPrefix_PreservesOriginal(t *testing.T) {
	// Prefix must not mutate the original error
	orig := NewSchema("type", 5)
	_ = Prefix(orig, "components[0]")
	if orig.Path != "type" {
		t.Errorf("Prefix mutated original path: %s", orig.Path)
	}
}

func TestPrefix_NilError(t *testing.T) {
	if Prefix(nil, "anywhere") != nil {
		t.Error("Prefix(nil) should return nil")
	}
}

func TestPrefix_ForeignError(t *testing.T) {
	err := Prefix(errors.New("boom"), "attachments[2]")
	var de *DecodeError
	if !errors.As(err, &de) {
		t.Fatal("foreign error was not wrapped into a DecodeError")
	}
	if de.Path != "attachments[2]" {
		t.Errorf("expected path attachments[2], got %s", de.Path)
	}
}

func TestIndex(t *testing.T) {
	if got := Index("embeds", 2); got != "embeds[2]" {
		t.Errorf("expected embeds[2], got %s", got)
	}
}

func TestIsHelpers(t *testing.T) {
	if !IsMissingRequiredField(NewMissingRequiredField("id")) {
		t.Error("IsMissingRequiredField failed")
	}
	if !IsTypeMismatch(NewTypeMismatch("a", "b", "c")) {
		t.Error("IsTypeMismatch failed")
	}
	if !IsSchema(NewSchema("t", 1)) {
		t.Error("IsSchema failed")
	}
	if !IsDepthExceeded(NewDepthExceeded("c", 1)) {
		t.Error("IsDepthExceeded failed")
	}
	if IsSchema(NewTypeMismatch("a", "b", "c")) {
		t.Error("IsSchema matched a type mismatch")
	}
	if IsMissingRequiredField(nil) {
		t.Error("nil should not classify")
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected Kind
	}{
		{"missing", NewMissingRequiredField("id"), KindMissingRequiredField},
		{"schema", NewSchema("t", 1), KindSchema},
		{"depth", NewDepthExceeded("c", 1), KindDepthExceeded},
		{"foreign", errors.New("boom"), KindTypeMismatch},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := Classify(test.err); got != test.expected {
				t.Errorf("expected %v, got %v", test.expected, got)
			}
		})
	}
}
