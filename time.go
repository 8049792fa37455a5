package asinine

/*
time.go implements the UTCTime decoder (X.690 11.8) and a GeneralizedTime
decoder (X.690 11.7).

Both decoders populate a small set of named locals (year, month, day,
hour, minute, second) directly from the digit pairs, one digitPair/digitQuad call per
field, rather than reusing any array-of-digits intermediate: Go has no
safe equivalent of a union-of-array-and-struct reinterpretation.
*/

var daysBeforeMonth = [13]int64{0, 0, 31, 59, 90, 120, 151, 181, 212, 243, 273, 304, 334}

/*
DecodeUTCTime decodes tok, which must be a universal UTCTime, into the
number of seconds since the Unix epoch. Content must match
YYMMDDHHMM[SS]Z exactly; seconds default to 0 when absent.
*/
func DecodeUTCTime(tok Token) (int64, error) {
	if !IsTime(tok) {
		return 0, mkerr(ErrInvalid, "not a universal UTCTime token")
	}
	data := tok.Data
	if len(data) < 11 {
		return 0, mkerr(ErrInvalid, "UTCTime content too short")
	}
	if data[len(data)-1] != 'Z' {
		return 0, mkerr(ErrInvalid, "UTCTime must end in Z")
	}
	body := data[:len(data)-1]

	var second int
	switch len(body) {
	case 10:
		second = 0
	case 12:
		var err error
		if second, err = digitPair(body, 10); err != nil {
			return 0, err
		}
	default:
		return 0, mkerr(ErrInvalid, "malformed UTCTime length")
	}

	yy, err := digitPair(body, 0)
	if err != nil {
		return 0, err
	}
	month, err := digitPair(body, 2)
	if err != nil {
		return 0, err
	}
	day, err := digitPair(body, 4)
	if err != nil {
		return 0, err
	}
	hour, err := digitPair(body, 6)
	if err != nil {
		return 0, err
	}
	minute, err := digitPair(body, 8)
	if err != nil {
		return 0, err
	}

	var year int64
	if yy >= 50 {
		year = 1900 + int64(yy)
	} else {
		year = 2000 + int64(yy)
	}

	return epochSeconds(year, month, day, hour, minute, second)
}

/*
DecodeGeneralizedTime decodes tok, which must be a universal
GeneralizedTime, into the number of seconds since the Unix epoch.
Content must match YYYYMMDDHHMMSS[.f+]Z: DER requires seconds to be
present and a non-empty fractional-seconds field, if any, to carry no
trailing zero digit and not be entirely zero.
*/
func DecodeGeneralizedTime(tok Token) (int64, error) {
	if !Is(tok, ClassUniversal, TagGeneralizedTime) {
		return 0, mkerr(ErrInvalid, "not a universal GeneralizedTime token")
	}
	data := tok.Data
	if len(data) < 15 {
		return 0, mkerr(ErrInvalid, "GeneralizedTime content too short")
	}
	if data[len(data)-1] != 'Z' {
		return 0, mkerr(ErrInvalid, "GeneralizedTime must end in Z")
	}
	body := data[:len(data)-1]
	if len(body) < 14 {
		return 0, mkerr(ErrInvalid, "malformed GeneralizedTime length")
	}

	if len(body) > 14 {
		if body[14] != '.' {
			return 0, mkerr(ErrInvalid, "GeneralizedTime fraction must be introduced by '.'")
		}
		frac := body[15:]
		if len(frac) == 0 {
			return 0, mkerr(ErrInvalid, "empty GeneralizedTime fraction")
		}
		allZero := true
		for _, b := range frac {
			if b < '0' || b > '9' {
				return 0, mkerr(ErrInvalid, "non-digit in GeneralizedTime fraction")
			}
			if b != '0' {
				allZero = false
			}
		}
		if allZero {
			return 0, mkerr(ErrInvalid, "non-minimal GeneralizedTime: all-zero fraction")
		}
		if frac[len(frac)-1] == '0' {
			return 0, mkerr(ErrInvalid, "non-minimal GeneralizedTime: trailing zero in fraction")
		}
	}

	year4, err := digitQuad(body, 0)
	if err != nil {
		return 0, err
	}
	month, err := digitPair(body, 4)
	if err != nil {
		return 0, err
	}
	day, err := digitPair(body, 6)
	if err != nil {
		return 0, err
	}
	hour, err := digitPair(body, 8)
	if err != nil {
		return 0, err
	}
	minute, err := digitPair(body, 10)
	if err != nil {
		return 0, err
	}
	second, err := digitPair(body, 12)
	if err != nil {
		return 0, err
	}

	return epochSeconds(int64(year4), month, day, hour, minute, second)
}

func digitPair(s []byte, offset int) (int, error) {
	if offset+2 > len(s) {
		return 0, mkerr(ErrInvalid, "truncated time field")
	}
	a, b := s[offset], s[offset+1]
	if a < '0' || a > '9' || b < '0' || b > '9' {
		return 0, mkerr(ErrInvalid, "non-digit in time field")
	}
	return int(a-'0')*10 + int(b-'0'), nil
}

func digitQuad(s []byte, offset int) (int, error) {
	hi, err := digitPair(s, offset)
	if err != nil {
		return 0, err
	}
	lo, err := digitPair(s, offset+2)
	if err != nil {
		return 0, err
	}
	return hi*100 + lo, nil
}

func isLeapYear(year int64) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

func epochSeconds(year int64, month, day, hour, minute, second int) (int64, error) {
	if month < 1 || month > 12 {
		return 0, mkerr(ErrInvalid, "month out of range")
	}
	maxDay := 31
	switch month {
	case 4, 6, 9, 11:
		maxDay = 30
	case 2:
		maxDay = 28
		if isLeapYear(year) {
			maxDay = 29
		}
	}
	if day < 1 || day > maxDay {
		return 0, mkerr(ErrInvalid, "day out of range")
	}
	if hour < 0 || hour > 23 {
		return 0, mkerr(ErrInvalid, "hour out of range")
	}
	if minute < 0 || minute > 59 {
		return 0, mkerr(ErrInvalid, "minute out of range")
	}
	if second < 0 || second > 59 {
		return 0, mkerr(ErrInvalid, "second out of range")
	}

	// Floor division: Go's / truncates toward zero, which would miscount
	// leap days for years before the reference years.
	floorDiv := func(a, b int64) int64 {
		q := a / b
		if a%b < 0 {
			q--
		}
		return q
	}
	leapDays := floorDiv(year-1968, 4) - floorDiv(year-1900, 100) + floorDiv(year-1600, 400)
	if isLeapYear(year) && month < 3 {
		leapDays--
	}

	sec := (year-1970)*31_536_000 +
		daysBeforeMonth[month]*86_400 +
		int64(day-1)*86_400 +
		int64(hour)*3600 +
		int64(minute)*60 +
		int64(second) +
		leapDays*86_400

	return sec, nil
}
