package chunk

import (
	"bytes"
	"regexp"
)

// splitByNul splits data on the foremost (numParts - 1) NUL bytes. The final
// part consumes everything left, including any embedded NULs. Fewer NULs
// than required is a structural error.
func splitByNul(data []byte, numParts int) ([][]byte, error) {
	parts := make([][]byte, 0, numParts)
	rest := data
	for i := 0; i < numParts-1; i++ {
		idx := bytes.IndexByte(rest, 0)
		if idx < 0 {
			return nil, Errorf(KindStructural, "missing expected NUL separator")
		}
		parts = append(parts, rest[:idx])
		rest = rest[idx+1:]
	}
	return append(parts, rest), nil
}

// checkKeyword validates a PNG keyword string: 1 to 79 printable Latin-1
// characters with no leading, trailing, or consecutive spaces.
func checkKeyword(s string) error {
	if len(s) < 1 || len(s) > 79 {
		return Errorf(KindFieldRange, "keyword length %d out of range [1,79]", len(s))
	}
	if s[0] == ' ' || s[len(s)-1] == ' ' {
		return Errorf(KindFieldRange, "keyword %q has leading or trailing space", s)
	}
	for i := 0; i+1 < len(s); i++ {
		if s[i] == ' ' && s[i+1] == ' ' {
			return Errorf(KindFieldRange, "keyword %q has consecutive spaces", s)
		}
	}
	return checkLatin1(s, false)
}

// checkLatin1 validates that every character of s lies in the printable
// Latin-1 subset (32..126 and 161..255), optionally admitting newline.
func checkLatin1(s string, allowNewline bool) error {
	for _, c := range s {
		switch {
		case 32 <= c && c <= 126, 161 <= c && c <= 255:
		case allowNewline && c == '\n':
		default:
			return Errorf(KindFieldRange, "invalid Latin-1 character %q", c)
		}
	}
	return nil
}

// checkedLengthSum adds component lengths, failing if the total exceeds the
// maximum representable chunk length. Used wherever a chunk's encoded size
// is the sum of several sub-lengths, so oversized payloads are rejected at
// construction rather than silently truncated on the wire.
func checkedLengthSum(lengths ...int) (int, error) {
	var total int64
	for _, n := range lengths {
		total += int64(n)
		if total > MaxDataLength {
			return 0, Errorf(KindFraming, "combined data length exceeds maximum")
		}
	}
	return int(total), nil
}

var (
	asciiFloatRe = regexp.MustCompile(`^([+-]?)(\d+(?:\.\d*)?|\.\d+)(?:[eE][+-]?\d+)?$`)
	nonzeroRe    = regexp.MustCompile(`[1-9]`)
)

// classifyASCIIFloat classifies a string in ASCII scientific notation:
// -1 invalid syntax, 0 negative or zero, 1 positive.
func classifyASCIIFloat(s string) int {
	m := asciiFloatRe.FindStringSubmatch(s)
	if m == nil {
		return -1
	}
	if m[1] == "-" || !nonzeroRe.MatchString(m[2]) {
		return 0
	}
	return 1
}

// latin1ToString maps each byte to the Unicode code point of the same value.
func latin1ToString(b []byte) string {
	runes := make([]rune, len(b))
	for i, c := range b {
		runes[i] = rune(c)
	}
	return string(runes)
}

// stringToLatin1 maps each code point below 256 back to a single byte.
// Callers validate the character set first; anything out of range has
// already been rejected.
func stringToLatin1(s string) []byte {
	out := make([]byte, 0, len(s))
	for _, c := range s {
		out = append(out, byte(c))
	}
	return out
}
