package asinine

import (
	"errors"
	"testing"
)

func TestParserTopLevelInteger(t *testing.T) {
	// SEQUENCE containing one INTEGER whose value is 42.
	input := []byte{0x30, 0x03, 0x02, 0x01, 0x2a}
	p, err := NewParser(input)
	if err != nil {
		t.Fatalf("NewParser: %v", err)
	}

	seq, err := p.Next()
	if err != nil {
		t.Fatalf("Next (SEQUENCE): %v", err)
	}
	if seq.IsPrimitive || !Is(seq, ClassUniversal, TagSequence) {
		t.Fatalf("expected constructed SEQUENCE, got %+v", seq)
	}
	if err := p.Descend(); err != nil {
		t.Fatalf("Descend: %v", err)
	}

	intTok, err := p.Next()
	if err != nil {
		t.Fatalf("Next (INTEGER): %v", err)
	}
	v, err := DecodeInt(intTok)
	if err != nil {
		t.Fatalf("DecodeInt: %v", err)
	}
	if v != 42 {
		t.Fatalf("expected 42, got %d", v)
	}

	if err := p.Ascend(1); err != nil {
		t.Fatalf("Ascend: %v", err)
	}
	if _, err := p.Next(); !errors.Is(err, ErrEOF) {
		t.Fatalf("expected ErrEOF, got %v", err)
	}
}

func TestParserOrphanByteViolatesContainment(t *testing.T) {
	// SEQUENCE(length 4): INTEGER(1) followed by one orphan tag byte with
	// no length octet of its own. Mirrors the "trailing orphan byte"
	// scenario: the parser emits the first INTEGER, then fails.
	input := []byte{0x30, 0x04, 0x02, 0x01, 0x01, 0x02}
	p, err := NewParser(input)
	if err != nil {
		t.Fatalf("NewParser: %v", err)
	}

	if _, err := p.Next(); err != nil {
		t.Fatalf("Next (SEQUENCE): %v", err)
	}
	if err := p.Descend(); err != nil {
		t.Fatalf("Descend: %v", err)
	}

	intTok, err := p.Next()
	if err != nil {
		t.Fatalf("Next (INTEGER): %v", err)
	}
	if v, err := DecodeInt(intTok); err != nil || v != 1 {
		t.Fatalf("DecodeInt: got (%d, %v)", v, err)
	}

	if _, err := p.Next(); !errors.Is(err, ErrInvalid) {
		t.Fatalf("expected ErrInvalid on orphan byte, got %v", err)
	}
}

func TestParserRejectsTruncatedTopLevel(t *testing.T) {
	input := []byte{0x30, 0x05, 0x02, 0x01, 0x2a}
	p, err := NewParser(input)
	if err != nil {
		t.Fatalf("NewParser: %v", err)
	}
	if _, err := p.Next(); !errors.Is(err, ErrInvalid) {
		t.Fatalf("expected ErrInvalid (length overruns input), got %v", err)
	}
}

func TestParserRejectsIndefiniteLength(t *testing.T) {
	input := []byte{0x30, 0x80, 0x02, 0x01, 0x01, 0x00, 0x00}
	p, _ := NewParser(input)
	if _, err := p.Next(); !errors.Is(err, ErrInvalid) {
		t.Fatalf("expected ErrInvalid (indefinite length), got %v", err)
	}
}

func TestParserRejectsReservedLengthForm(t *testing.T) {
	input := []byte{0x30, 0xff, 0x02, 0x01, 0x01}
	p, _ := NewParser(input)
	if _, err := p.Next(); !errors.Is(err, ErrInvalid) {
		t.Fatalf("expected ErrInvalid (reserved 0xFF length), got %v", err)
	}
}

func TestParserRejectsNonMinimalLongFormZeroLength(t *testing.T) {
	// 0x81 0x00 is long-form but non-canonical for a zero length; DER
	// requires short form for any length under 128, so this must reject.
	input := []byte{0x04, 0x81, 0x00}
	p, _ := NewParser(input)
	if _, err := p.Next(); !errors.Is(err, ErrInvalid) {
		t.Fatalf("expected ErrInvalid (non-minimal long-form length), got %v", err)
	}
}

func TestDescendRejectsBeyondMaxDepth(t *testing.T) {
	p, err := NewParser([]byte{0x01, 0x00})
	if err != nil {
		t.Fatalf("NewParser: %v", err)
	}
	for i := 0; i < MaxDepth; i++ {
		if err := p.Descend(); err != nil {
			t.Fatalf("Descend %d: unexpected error %v", i, err)
		}
	}
	if err := p.Descend(); !errors.Is(err, ErrInvalid) {
		t.Fatalf("expected ErrInvalid exceeding MaxDepth, got %v", err)
	}
}

func TestAscendFullyUndoesSingleDescend(t *testing.T) {
	input := []byte{0x30, 0x03, 0x02, 0x01, 0x01}
	p, _ := NewParser(input)
	if _, err := p.Next(); err != nil {
		t.Fatalf("Next: %v", err)
	}
	if err := p.Descend(); err != nil {
		t.Fatalf("Descend: %v", err)
	}
	if err := p.Ascend(1); err != nil {
		t.Fatalf("Ascend(1) should fully undo a single Descend, got %v", err)
	}
	if err := p.Ascend(1); !errors.Is(err, ErrInvalid) {
		t.Fatalf("expected ErrInvalid ascending past constraint 0, got %v", err)
	}
}

func TestSkipChildrenAndIsWithin(t *testing.T) {
	// SEQUENCE { INTEGER(1), INTEGER(2) }
	input := []byte{0x30, 0x06, 0x02, 0x01, 0x01, 0x02, 0x01, 0x02}
	p, _ := NewParser(input)
	seq, err := p.Next()
	if err != nil {
		t.Fatalf("Next: %v", err)
	}
	if err := p.Descend(); err != nil {
		t.Fatalf("Descend: %v", err)
	}
	if !p.IsWithin(seq) {
		t.Fatalf("expected cursor to be within SEQUENCE before skipping")
	}
	p.SkipChildren(seq)
	if p.IsWithin(seq) {
		t.Fatalf("expected cursor past SEQUENCE after SkipChildren")
	}
	if err := p.Ascend(1); err != nil {
		t.Fatalf("Ascend: %v", err)
	}
	if _, err := p.Next(); !errors.Is(err, ErrEOF) {
		t.Fatalf("expected ErrEOF after skipping to end of input, got %v", err)
	}
}

func TestNewParserRejectsEmptyInput(t *testing.T) {
	if _, err := NewParser(nil); !errors.Is(err, ErrInvalid) {
		t.Fatalf("expected ErrInvalid for empty input, got %v", err)
	}
}
