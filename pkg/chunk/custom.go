package chunk

// Custom is the fallback for chunk types not present in the registry. It
// holds the type code and the raw undecoded payload verbatim, so files
// containing vocabulary this library does not understand still round-trip
// byte-exact.
type Custom struct {
	typ  Type
	data []byte
}

// NewCustom validates the type code and wraps the raw payload.
func NewCustom(typeCode string, data []byte) (*Custom, error) {
	typ, err := MakeType(typeCode)
	if err != nil {
		return nil, err
	}
	if len(data) > MaxDataLength {
		return nil, Errorf(KindFraming, "%s: data length %d exceeds maximum", typ, len(data))
	}
	return &Custom{typ: typ, data: data}, nil
}

func decodeCustom(r *Reader) (Chunk, error) {
	data, err := r.ReadRemaining()
	if err != nil {
		return nil, err
	}
	return &Custom{typ: r.Type(), data: data}, nil
}

func (c *Custom) Type() Type { return c.typ }

// Data returns the raw payload. Callers must not modify the slice.
func (c *Custom) Data() []byte { return c.data }

func (c *Custom) WriteData(w *Writer) error {
	_, err := w.Write(c.data)
	return err
}
