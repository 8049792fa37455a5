package asinine

/*
bitstring.go implements the BIT STRING decoder (X.690 8.6). It performs
no class/tag check itself; callers verify the token's identity via
Is(tok, ClassUniversal, TagBitString) first, matching the source's asn1_bitstring,
which likewise trusts its caller.
*/

/*
nibbleReverse maps a 4-bit value to its bit-reversed counterpart, used to
flip each nibble of a BIT STRING content byte from the wire's
least-significant-bit-first layout into the most-significant-bit-first
layout this package exposes to callers.
*/
var nibbleReverse = [16]byte{
	0x0, 0x8, 0x4, 0xc, 0x2, 0xa, 0x6, 0xe,
	0x1, 0x9, 0x5, 0xd, 0x3, 0xb, 0x7, 0xf,
}

/*
DecodeBitString decodes tok's content, a leading unused-bit count octet
followed by the packed bits, into dst. It returns the unused-bit count
and the number of bytes written, and fails with ErrMemory if
len(dst) < len(tok.Data)-1.
*/
func DecodeBitString(tok Token, dst []byte) (unusedBits int, n int, err error) {
	data := tok.Data
	if len(data) == 0 {
		return 0, 0, mkerr(ErrInvalid, "empty BIT STRING content")
	}

	unusedBits = int(data[0])
	if unusedBits > 7 {
		return 0, 0, mkerr(ErrInvalid, "unused-bit count exceeds 7")
	}

	body := data[1:]
	if len(body) == 0 {
		if unusedBits != 0 {
			return 0, 0, mkerr(ErrInvalid, "empty BIT STRING must report zero unused bits")
		}
		return 0, 0, nil
	}

	last := body[len(body)-1]
	if last == 0 {
		return 0, 0, mkerr(ErrInvalid, "non-minimal BIT STRING: trailing zero byte")
	}
	if mask := byte(1<<uint(unusedBits) - 1); last&mask != 0 {
		return 0, 0, mkerr(ErrInvalid, "nonzero padding in unused bits")
	}

	if len(dst) < len(body) {
		return 0, 0, mkerr(ErrMemory, "destination buffer too small")
	}
	for i, b := range body {
		dst[i] = nibbleReverse[b&0xf]<<4 | nibbleReverse[b>>4]
	}
	return unusedBits, len(body), nil
}
