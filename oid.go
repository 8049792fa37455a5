package asinine

/*
oid.go implements the OBJECT IDENTIFIER decoder and its utilities
(X.690 8.19), plus a RELATIVE-OID decoder (X.690 8.20) that shares the
same subidentifier accumulation and arc storage.
*/

/*
OID is a decoded OBJECT IDENTIFIER: a fixed-capacity arc sequence.
Unused slots beyond Num are always zero, which is what makes Cmp a
total, lexicographic order over the whole fixed array rather than just
over the populated prefix.
*/
type OID struct {
	Arcs [OIDMaxArcs]uint
	Num  int
}

/*
DecodeOID decodes tok as an OBJECT IDENTIFIER. tok must be a primitive,
universal OID token; any other class or tag fails with ErrInvalid.
*/
func DecodeOID(tok Token) (OID, error) {
	if !Is(tok, ClassUniversal, TagOID) {
		return OID{}, mkerr(ErrInvalid, "not a universal OBJECT IDENTIFIER token")
	}
	return decodeArcs(tok.Data, true)
}

/*
DecodeRelativeOID decodes tok as a RELATIVE-OID (X.690 8.20). Unlike
DecodeOID, the first subidentifier is not split into two arcs: every
subidentifier maps one-to-one to an arc.
*/
func DecodeRelativeOID(tok Token) (OID, error) {
	if !Is(tok, ClassUniversal, TagRelativeOID) {
		return OID{}, mkerr(ErrInvalid, "not a universal RELATIVE-OID token")
	}
	return decodeArcs(tok.Data, false)
}

func decodeArcs(data []byte, splitFirst bool) (OID, error) {
	var oid OID

	if len(data) == 0 {
		return OID{}, mkerr(ErrInvalid, "empty OID content")
	}
	if data[len(data)-1]&0x80 != 0 {
		return OID{}, mkerr(ErrInvalid, "final subidentifier octet has its continuation bit set")
	}

	var arc uint
	consumed := 0
	first := true

	for _, b := range data {
		if arc == 0 && consumed == 0 && b == 0x80 {
			return OID{}, mkerr(ErrInvalid, "non-minimal subidentifier (leading 0x80)")
		}

		var err error
		if arc, consumed, err = accumulate(arc, consumed, b); err != nil {
			return OID{}, err
		}

		if b&0x80 != 0 {
			continue
		}

		if splitFirst && first {
			arc0 := arc
			if arc0 > 80 {
				arc0 = 80
			}
			arc0 /= 40
			if !appendArc(&oid, arc0) {
				return OID{}, mkerr(ErrMemory, "too many arcs")
			}
			arc -= arc0 * 40
			first = false
		}

		if !appendArc(&oid, arc) {
			return OID{}, mkerr(ErrMemory, "too many arcs")
		}
		arc, consumed = 0, 0
	}

	return oid, nil
}

func appendArc(oid *OID, arc uint) bool {
	if oid.Num >= OIDMaxArcs {
		return false
	}
	oid.Arcs[oid.Num] = arc
	oid.Num++
	return true
}

/*
Cmp returns a negative, zero, or positive value as o is less than, equal
to, or greater than other, comparing arc-by-arc over the full fixed-size
array. Because unused slots are always zero, this is a total order
consistent with comparing only the populated arcs lexicographically.
*/
func (o OID) Cmp(other OID) int {
	for i := 0; i < OIDMaxArcs; i++ {
		switch {
		case o.Arcs[i] < other.Arcs[i]:
			return -1
		case o.Arcs[i] > other.Arcs[i]:
			return 1
		}
	}
	return 0
}

/*
EqualTo reports whether o has exactly the arcs given, in order.
*/
func (o OID) EqualTo(arcs []uint) bool {
	if o.Num != len(arcs) {
		return false
	}
	for i, arc := range arcs {
		if o.Arcs[i] != arc {
			return false
		}
	}
	return true
}

/*
Format appends o's dotted-decimal representation ("a.b.c", no trailing
separator) to dst and returns the result. It fails with ErrInvalid if o
has fewer than 2 arcs (not a well-formed OID). dst grows as append grows
it: Format does not fail when dst lacks capacity and never returns
ErrMemory.
*/
func (o OID) Format(dst []byte) ([]byte, error) {
	if o.Num < 2 {
		return dst, mkerr(ErrInvalid, "OID has fewer than 2 arcs")
	}
	for i := 0; i < o.Num; i++ {
		if i > 0 {
			dst = append(dst, '.')
		}
		dst = appUint(dst, o.Arcs[i])
	}
	return dst, nil
}

/*
String returns o's dotted-decimal representation, or "" if o has fewer
than 2 arcs. Unlike Format, this allocates.
*/
func (o OID) String() string {
	buf, err := o.Format(make([]byte, 0, OIDMaxArcs*4))
	if err != nil {
		return ""
	}
	return string(buf)
}

func appUint(dst []byte, v uint) []byte {
	return appInt(dst, int64(v), 10)
}
