package chunk

// Chunk is one length-prefixed, type-tagged, CRC-protected binary record in
// a PNG/MNG/JNG container. Implementations own their field semantics and
// serialize themselves through a Writer; the CRC-32 field is handled by the
// framing layer, never by individual chunks.
type Chunk interface {
	// Type returns the 4-letter chunk type code.
	Type() Type

	// WriteData writes the chunk's data payload (everything between the
	// type field and the CRC field) to w.
	WriteData(w *Writer) error
}

// Data serializes the chunk's data payload into a fresh byte slice.
func Data(c Chunk) ([]byte, error) {
	cw := &Writer{typ: c.Type()}
	if err := c.WriteData(cw); err != nil {
		return nil, err
	}
	return cw.buf.Bytes(), nil
}

// DataLength returns the encoded byte length of the chunk's data payload.
func DataLength(c Chunk) (int, error) {
	data, err := Data(c)
	if err != nil {
		return 0, err
	}
	return len(data), nil
}
