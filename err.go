package asinine

/*
err.go contains the stable, user-observable error enumeration and the
helpers used to construct descriptive, wrap-compatible instances of it.
*/

import (
	"errors"
	"fmt"
)

var (
	// ErrEOF is returned by Parser.Next when the input (or the current
	// constructed value) has been fully consumed. It is not a failure.
	ErrEOF = errors.New("asinine: end of input")

	// ErrInvalid is the catch-all for malformed input: structural bounds
	// violations, non-minimal encodings, forbidden byte values, calendar
	// mismatches, and any other DER canonical-form violation.
	ErrInvalid = errors.New("asinine: invalid DER encoding")

	// ErrMemory signals that a caller-supplied output buffer was too
	// small, or that a decoded value overflows the machine word it must
	// fit in (an OID subidentifier, a tag number, an INTEGER).
	ErrMemory = errors.New("asinine: insufficient buffer or value overflow")

	// ErrUnsupported is returned only for a length field whose long-form
	// byte count exceeds the machine word's byte width.
	ErrUnsupported = errors.New("asinine: length encoding exceeds native width")
)

/*
errorf wraps sentinel with a formatted reason so that callers may both
errors.Is(err, sentinel) and read a human reason.
*/
func errorf(sentinel error, format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{sentinel}, args...)...)
}

/*
mkerr builds an error from a sentinel and a fixed reason string, for
messages that need no dynamic formatting.
*/
func mkerr(sentinel error, reason string) error {
	return fmt.Errorf("%w: %s", sentinel, reason)
}
