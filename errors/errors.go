// Package errors provides standardized error handling for the twilight payload
// model. It includes a decode error taxonomy with structural paths, standard
// error variables, and helper functions for consistent error classification
// across the codec.
package errors

import (
	"errors"
	"fmt"
	"strconv"
)

// Kind represents the classification of decode errors for handling purposes.
type Kind int

const (
	// KindMissingRequiredField represents a field that must be present for the
	// payload to be a valid entity but was absent from the wire document.
	KindMissingRequiredField Kind = iota
	// KindTypeMismatch represents a field whose wire value has a different
	// shape than the schema requires.
	KindTypeMismatch
	// KindSchema represents an unrecognized discriminant rejected under
	// strict decoding.
	KindSchema
	// KindDepthExceeded represents a component tree nested beyond the
	// configured maximum depth.
	KindDepthExceeded
)

// String returns the string representation of Kind.
func (k Kind) String() string {
	switch k {
	case KindMissingRequiredField:
		return "missing required field"
	case KindTypeMismatch:
		return "type mismatch"
	case KindSchema:
		return "schema"
	case KindDepthExceeded:
		return "depth exceeded"
	default:
		return "unknown"
	}
}

// Standard error variables for decode failure conditions. DecodeError wraps
// exactly one of these, so callers can classify with errors.Is.
var (
	// ErrMissingRequiredField indicates a required field was absent.
	ErrMissingRequiredField = errors.New("missing required field")
	// ErrTypeMismatch indicates a field value had the wrong wire shape.
	ErrTypeMismatch = errors.New("type mismatch")
	// ErrSchema indicates an unrecognized discriminant under strict decoding.
	ErrSchema = errors.New("unrecognized discriminant")
	// ErrDepthExceeded indicates component nesting beyond the configured bound.
	ErrDepthExceeded = errors.New("nesting depth exceeded")
)

// DecodeError is the structured error returned by the codec. Every instance
// carries a structural Path into the wire document (for example
// "embeds[2].fields[0].value") so callers can locate the offending field in
// the original payload.
type DecodeError struct {
	// Kind classifies the failure.
	Kind Kind
	// Path is the structural location of the failure in the wire document.
	Path string
	// Expected and Found describe the shapes involved in a type mismatch.
	Expected string
	Found    string
	// Discriminant is the raw tag value rejected by a schema error.
	Discriminant any
	// MaxDepth is the configured bound violated by a depth error.
	MaxDepth int
	// Err is an optional underlying cause.
	Err error
}

// Error implements the error interface.
func (e *DecodeError) Error() string {
	switch e.Kind {
	case KindMissingRequiredField:
		return fmt.Sprintf("%s: missing required field", e.Path)
	case KindTypeMismatch:
		if e.Expected != "" || e.Found != "" {
			return fmt.Sprintf("%s: type mismatch: expected %s, found %s", e.Path, e.Expected, e.Found)
		}
		return fmt.Sprintf("%s: type mismatch", e.Path)
	case KindSchema:
		return fmt.Sprintf("%s: unrecognized discriminant %v", e.Path, e.Discriminant)
	case KindDepthExceeded:
		return fmt.Sprintf("%s: nesting depth exceeded (max %d)", e.Path, e.MaxDepth)
	default:
		return fmt.Sprintf("%s: decode failed", e.Path)
	}
}

// Unwrap returns the sentinel for the error kind plus any underlying cause,
// integrating DecodeError with errors.Is chains.
func (e *DecodeError) Unwrap() []error {
	sentinel := sentinelFor(e.Kind)
	if e.Err != nil {
		return []error{sentinel, e.Err}
	}
	return []error{sentinel}
}

func sentinelFor(k Kind) error {
	switch k {
	case KindMissingRequiredField:
		return ErrMissingRequiredField
	case KindTypeMismatch:
		return ErrTypeMismatch
	case KindSchema:
		return ErrSchema
	case KindDepthExceeded:
		return ErrDepthExceeded
	default:
		return ErrTypeMismatch
	}
}

// NewMissingRequiredField creates a DecodeError for an absent required field.
func NewMissingRequiredField(path string) *DecodeError {
	return &DecodeError{Kind: KindMissingRequiredField, Path: path}
}

// NewTypeMismatch creates a DecodeError for a wrongly-shaped field value.
func NewTypeMismatch(path, expected, found string) *DecodeError {
	return &DecodeError{Kind: KindTypeMismatch, Path: path, Expected: expected, Found: found}
}

// NewSchema creates a DecodeError for an unrecognized discriminant.
// Only produced under strict decoding.
func NewSchema(path string, discriminant any) *DecodeError {
	return &DecodeError{Kind: KindSchema, Path: path, Discriminant: discriminant}
}

// NewDepthExceeded creates a DecodeError for over-deep component nesting.
func NewDepthExceeded(path string, maxDepth int) *DecodeError {
	return &DecodeError{Kind: KindDepthExceeded, Path: path, MaxDepth: maxDepth}
}

// Wrap attaches an underlying cause to a type mismatch at path. Used when a
// third-party parser error needs a structural location.
func Wrap(err error, path string) error {
	if err == nil {
		return nil
	}
	return &DecodeError{Kind: KindTypeMismatch, Path: path, Err: err}
}

// Prefix rewrites the structural path of every DecodeError in err's chain,
// prepending the given segment. Nested decoders report paths relative to
// their own subtree; the caller prefixes the position of that subtree.
//
//	err := component.Decode(raw)        // path "components[1].type"
//	err = errors.Prefix(err, "embeds[0]") // path "embeds[0].components[1].type"
func Prefix(err error, segment string) error {
	if err == nil {
		return nil
	}
	var de *DecodeError
	if errors.As(err, &de) {
		clone := *de
		if clone.Path == "" {
			clone.Path = segment
		} else {
			clone.Path = segment + "." + clone.Path
		}
		return &clone
	}
	return Wrap(err, segment)
}

// Index formats an array element path segment, e.g. Index("embeds", 2)
// returns "embeds[2]".
func Index(field string, i int) string {
	return field + "[" + strconv.Itoa(i) + "]"
}

// IsMissingRequiredField checks whether err is a missing-required-field error.
func IsMissingRequiredField(err error) bool {
	return errors.Is(err, ErrMissingRequiredField)
}

// IsTypeMismatch checks whether err is a type-mismatch error.
func IsTypeMismatch(err error) bool {
	return errors.Is(err, ErrTypeMismatch)
}

// IsSchema checks whether err is a strict-mode schema error.
func IsSchema(err error) bool {
	return errors.Is(err, ErrSchema)
}

// IsDepthExceeded checks whether err is a depth-bound error.
func IsDepthExceeded(err error) bool {
	return errors.Is(err, ErrDepthExceeded)
}

// Classify returns the Kind for an error, defaulting to KindTypeMismatch for
// unclassified errors so callers always get a usable category.
func Classify(err error) Kind {
	var de *DecodeError
	if errors.As(err, &de) {
		return de.Kind
	}
	return KindTypeMismatch
}
