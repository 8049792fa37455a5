/*
Package asinine implements a streaming, zero-allocation parser for the
Distinguished Encoding Rules (DER) subset of X.690, plus decoders for the
primitive ASN.1 types a certificate or credential parser needs: INTEGER,
BOOLEAN, OBJECT IDENTIFIER, RELATIVE-OID, BIT STRING, the common string
types, and UTCTime/GeneralizedTime.

# Scope

This package is deliberately narrow. It decodes DER only: no BER
indefinite length, no constructed encodings of primitive types, and no
non-UTC time zones. It is a library, not a program: it performs no I/O,
no logging, and no dynamic allocation of its own (see [Token] and
[Parser]), apart from the string-returning conveniences
[Token.StringValue] and [OID.String] and the growth of the caller's
slice in [OID.Format]. Higher-level consumers (an X.509 parser, a CLI dumper) are
expected to live outside this package and own those concerns.

# Usage

A [Parser] walks a byte slice one [Token] at a time:

	p, err := asinine.NewParser(der)
	for {
		tok, err := p.Next()
		if err == asinine.ErrEOF {
			break
		}
		if err != nil {
			return err
		}
		if tok.IsPrimitive {
			// decode tok with DecodeInt, DecodeOID, etc.
		} else {
			if err := p.Descend(); err != nil {
				return err
			}
			// walk the children, then p.Ascend(1)
		}
	}

Every decoder returns a stable, [errors.Is]-comparable error: [ErrEOF],
[ErrInvalid], [ErrMemory], or [ErrUnsupported]. See each decoder's
documentation for which apply.
*/
package asinine
