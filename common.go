package asinine

/*
common.go contains stdlib aliases and small helpers shared by the parser
and the primitive decoders.
*/

import (
	"math/bits"
	"strconv"

	"golang.org/x/exp/constraints"
)

var (
	itoa   func(int) string        = strconv.Itoa
	atoi   func(string) (int, error) = strconv.Atoi
	appInt func([]byte, int64, int) []byte = strconv.AppendInt
)

/*
wordBits and wordBytes are the machine (native int) word width in bits
and bytes, computed via math/bits rather than hard-coded, since "tag
numbers wider than a machine word" is explicitly a Non-goal the width
of which depends on GOARCH.
*/
const (
	wordBits  = bits.UintSize
	wordBytes = bits.UintSize / 8
)

/*
accumulate folds one base-128 digit (7 bits per byte, MSB first) into acc,
used by both multi-byte tag numbers (X.690 8.1.2.4.2) and OID/RELATIVE-OID
subidentifiers (X.690 8.19.2). consumedBits is the running count of bits
folded into acc so far across the whole subidentifier; accumulate rejects
with ErrMemory once that count would exceed the machine word width,
mirroring the original's per-byte bit-count check rather than a magnitude
check, so that a long run of non-canonical leading-zero 7-bit groups is
rejected exactly when the source would have rejected it too.

This is the one place this package reaches for a generic type parameter:
tag numbers and OID arcs are both base-128 values, so one shape serves
both callers rather than duplicating the loop per concrete numeric type.
*/
func accumulate[T constraints.Unsigned](acc T, consumedBits int, b byte) (T, int, error) {
	consumedBits += 7
	if consumedBits > wordBits {
		return 0, 0, mkerr(ErrMemory, "base-128 value exceeds machine word")
	}
	return (acc << 7) | T(b&0x7f), consumedBits, nil
}
