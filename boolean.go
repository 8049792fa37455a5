package asinine

/*
boolean.go implements the BOOLEAN decoder (X.690 8.2), which in DER
permits exactly two content byte values.
*/

/*
DecodeBoolUnsafe decodes tok's content as a BOOLEAN without checking
tok's class or tag. Only 0x00 (false) and 0xFF (true) are accepted; any
other single-byte value, or any length other than 1, fails with
ErrInvalid.
*/
func DecodeBoolUnsafe(tok Token) (bool, error) {
	if len(tok.Data) != 1 {
		return false, mkerr(ErrInvalid, "BOOLEAN content must be exactly one byte")
	}
	switch tok.Data[0] {
	case 0x00:
		return false, nil
	case 0xff:
		return true, nil
	default:
		return false, mkerr(ErrInvalid, "BOOLEAN byte is neither 0x00 nor 0xFF")
	}
}

/*
DecodeBool requires tok be a universal BOOLEAN, then decodes it via
DecodeBoolUnsafe.
*/
func DecodeBool(tok Token) (bool, error) {
	if !IsBool(tok) {
		return false, mkerr(ErrInvalid, "not a universal BOOLEAN token")
	}
	return DecodeBoolUnsafe(tok)
}
