package chunk

// Type is a 4-character chunk type code. Each character must be an ASCII
// letter; bit 5 (the case bit) of each position carries a property of the
// chunk. Codes with the reserved bit set (position 2 lowercase, e.g. "ABcD")
// are unrepresentable and rejected, as are codes that claim to be critical
// yet safe-to-copy (e.g. "abCD").
type Type string

// MakeType validates s and returns it as a Type.
func MakeType(s string) (Type, error) {
	if len(s) != 4 {
		return "", Errorf(KindMalformedType, "type %q is not 4 characters", s)
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !('A' <= c && c <= 'Z' || 'a' <= c && c <= 'z') {
			return "", Errorf(KindMalformedType, "type %q contains non-letter at position %d", s, i)
		}
	}
	t := Type(s)
	if !isUpper(s[2]) {
		return "", Errorf(KindMalformedType, "type %q has reserved bit set", s)
	}
	if t.Critical() && t.SafeToCopy() {
		return "", Errorf(KindMalformedType, "type %q is critical but marked safe-to-copy", s)
	}
	return t, nil
}

// Critical reports whether a decoder must understand this chunk type to
// safely process the file.
func (t Type) Critical() bool {
	return isUpper(t[0])
}

// Public reports whether the type is defined by a public specification.
func (t Type) Public() bool {
	return isUpper(t[1])
}

// SafeToCopy reports whether an editor that does not understand this chunk
// type may still copy it into a modified file.
func (t Type) SafeToCopy() bool {
	return !isUpper(t[3])
}

func (t Type) String() string {
	return string(t)
}

func isUpper(c byte) bool {
	return c&0x20 == 0
}
