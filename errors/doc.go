// Package errors provides standardized error handling for the twilight
// payload codec.
//
// # Overview
//
// The package implements a four-kind decode error taxonomy:
//
//   - MissingRequiredField: a field the schema requires was absent
//   - TypeMismatch: a field value had the wrong wire shape
//   - Schema: an unrecognized discriminant was rejected (strict mode only)
//   - DepthExceeded: component nesting exceeded the configured bound
//
// Every DecodeError carries a structural path into the wire document, such as
// "embeds[2].fields[0].value", so a human can locate the malformed field in
// the original payload. Nested decoders report paths relative to their own
// subtree and callers compose them with Prefix.
//
// # Quick Start
//
// Classify failures with the Is* helpers or errors.Is against the sentinels:
//
//	msg, err := message.Decode(data)
//	if err != nil {
//	    if errors.IsSchema(err) {
//	        // unknown discriminant under strict decoding; retry lenient
//	    }
//	    var de *errors.DecodeError
//	    if stderrors.As(err, &de) {
//	        log.Printf("bad field at %s", de.Path)
//	    }
//	}
//
// The taxonomy integrates with Go's standard error handling: DecodeError
// supports errors.Is, errors.As, and multi-error unwrapping to both its kind
// sentinel and any underlying cause.
//
// Encode has no failure mode for well-formed values; the only encode-time
// errors are wire invariant violations (for example an emoji carrying both a
// custom ID and a unicode name), reported as TypeMismatch.
package errors
