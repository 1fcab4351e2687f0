package chunk

// TypeIdat is the type code of the image data chunk.
const TypeIdat Type = "IDAT"

// TypeIend is the type code of the terminal marker chunk.
const TypeIend Type = "IEND"

// Idat carries a slice of the image's compressed raster payload. The bytes
// are opaque to this layer; a valid document concatenates all IDAT payloads
// into one zlib stream, but interpreting that stream is pixel territory and
// out of scope here.
type Idat struct {
	data []byte
}

// NewIdat wraps payload bytes in an image data chunk.
func NewIdat(data []byte) (*Idat, error) {
	if len(data) > MaxDataLength {
		return nil, Errorf(KindFraming, "IDAT: data length %d exceeds maximum", len(data))
	}
	return &Idat{data: data}, nil
}

func decodeIdat(r *Reader) (Chunk, error) {
	data, err := r.ReadRemaining()
	if err != nil {
		return nil, err
	}
	return &Idat{data: data}, nil
}

func (c *Idat) Type() Type { return TypeIdat }

// Data returns the payload bytes. Callers must not modify the slice.
func (c *Idat) Data() []byte { return c.data }

func (c *Idat) WriteData(w *Writer) error {
	_, err := w.Write(c.data)
	return err
}

// Iend is the terminal marker chunk. It carries no data and appears exactly
// once, as the last chunk of a well-formed file.
type Iend struct{}

func decodeIend(r *Reader) (Chunk, error) {
	if r.Remaining() != 0 {
		return nil, Errorf(KindFraming, "IEND: expected empty data, got %d bytes", r.Remaining())
	}
	return Iend{}, nil
}

func (Iend) Type() Type { return TypeIend }

func (Iend) WriteData(w *Writer) error { return nil }
