package asinine

/*
string.go implements the closed set of string decoders this package
recognizes: PrintableString, IA5String, VisibleString, T61String, and
UTF8String. Any other tag, including the further string tags named in
[TagNames] for diagnostic purposes only, is rejected outright.
*/

/*
DecodeString validates tok's content against the rules for its tag and
copies it, NUL-terminated, into dst. It returns the number of content
bytes written (not counting the terminator) and fails with ErrMemory if
len(dst) < len(tok.Data)+1.
*/
func DecodeString(tok Token, dst []byte) (int, error) {
	if !IsString(tok) {
		return 0, mkerr(ErrInvalid, "not a recognized string type")
	}
	if err := validateString(tok.Tag, tok.Data); err != nil {
		return 0, err
	}
	if tok.Tag == TagIA5String {
		for _, b := range tok.Data {
			if b == 0 {
				return 0, mkerr(ErrInvalid, "IA5String contains an embedded NUL")
			}
		}
	}
	if len(dst) < len(tok.Data)+1 {
		return 0, mkerr(ErrMemory, "destination buffer too small")
	}
	n := copy(dst, tok.Data)
	dst[n] = 0
	return n, nil
}

/*
StringValue validates t and returns its content as a native Go string,
the allocating convenience alongside the zero-copy DecodeString.
*/
func (t Token) StringValue() (string, error) {
	if !IsString(t) {
		return "", mkerr(ErrInvalid, "not a recognized string type")
	}
	if err := validateString(t.Tag, t.Data); err != nil {
		return "", err
	}
	return string(t.Data), nil
}

/*
StringEqual reports whether a and b are both valid strings of equal
length and byte-identical content. It validates both before comparing.
*/
func StringEqual(a, b Token) (bool, error) {
	if !IsString(a) || !IsString(b) {
		return false, mkerr(ErrInvalid, "not a recognized string type")
	}
	if err := validateString(a.Tag, a.Data); err != nil {
		return false, err
	}
	if err := validateString(b.Tag, b.Data); err != nil {
		return false, err
	}
	if len(a.Data) != len(b.Data) {
		return false, nil
	}
	for i := range a.Data {
		if a.Data[i] != b.Data[i] {
			return false, nil
		}
	}
	return true, nil
}

func validateString(tag int, data []byte) error {
	switch tag {
	case TagPrintableString:
		for _, b := range data {
			if !isPrintable(b) {
				return mkerr(ErrInvalid, "invalid PrintableString byte")
			}
		}
	case TagIA5String, TagVisibleString, TagT61String:
		for _, b := range data {
			if b < 0x20 || b > 0x7f {
				return mkerr(ErrInvalid, "control byte in restricted string")
			}
		}
	case TagUTF8String:
		return validateUTF8(data)
	default:
		return mkerr(ErrInvalid, "not a recognized string type")
	}
	return nil
}

func isPrintable(b byte) bool {
	if b == 0x20 {
		return true
	}
	if b < 0x27 || b > 0x7a {
		return false
	}
	switch b {
	case '*', ';', '<', '>', '@':
		return false
	}
	return true
}

func validateUTF8(data []byte) error {
	i := 0
	for i < len(data) {
		b := data[i]
		var continuations int
		switch {
		case b < 0x80:
			continuations = 0
		case b >= 0xc2 && b <= 0xcf:
			continuations = 1
		case b >= 0xd0 && b <= 0xf4:
			continuations = int(b>>4) - 0xc
		default:
			return mkerr(ErrInvalid, "invalid UTF8String leading byte")
		}
		i++
		for c := 0; c < continuations; c++ {
			if i >= len(data) || data[i] < 0x80 || data[i] > 0xbf {
				return mkerr(ErrInvalid, "invalid UTF8String continuation byte")
			}
			i++
		}
	}
	return nil
}
