package chunk

// TypePlte is the type code of the palette chunk.
const TypePlte Type = "PLTE"

// TypeTrns is the type code of the transparency chunk.
const TypeTrns Type = "tRNS"

// TypeBkgd is the type code of the background color chunk.
const TypeBkgd Type = "bKGD"

// TypeHist is the type code of the palette histogram chunk.
const TypeHist Type = "hIST"

// Plte is the palette chunk: 1 to 256 RGB triples packed back-to-back,
// 3 bytes per entry.
type Plte struct {
	data []byte
}

// NewPlte validates raw palette bytes: the length must be a multiple of 3
// and the entry count must lie in [1,256].
func NewPlte(data []byte) (*Plte, error) {
	if len(data)%3 != 0 {
		return nil, Errorf(KindFieldRange, "PLTE: data length %d is not a multiple of 3", len(data))
	}
	n := len(data) / 3
	if n < 1 || n > 256 {
		return nil, Errorf(KindFieldRange, "PLTE: entry count %d out of range [1,256]", n)
	}
	return &Plte{data: data}, nil
}

// NewPlteEntries builds a palette from 0xRRGGBB packed integers.
func NewPlteEntries(entries []uint32) (*Plte, error) {
	data := make([]byte, 0, len(entries)*3)
	for _, e := range entries {
		if e>>24 != 0 {
			return nil, Errorf(KindFieldRange, "PLTE: entry %#x has bits above 0xFFFFFF", e)
		}
		data = append(data, byte(e>>16), byte(e>>8), byte(e))
	}
	return NewPlte(data)
}

func decodePlte(r *Reader) (Chunk, error) {
	data, err := r.ReadRemaining()
	if err != nil {
		return nil, err
	}
	return NewPlte(data)
}

func (c *Plte) Type() Type { return TypePlte }

// NumEntries returns the number of RGB triples in the palette.
func (c *Plte) NumEntries() int { return len(c.data) / 3 }

// Entry returns the i-th palette entry as an 0xRRGGBB packed integer.
func (c *Plte) Entry(i int) uint32 {
	return uint32(c.data[i*3])<<16 | uint32(c.data[i*3+1])<<8 | uint32(c.data[i*3+2])
}

// Data returns the raw palette bytes. Callers must not modify the slice.
func (c *Plte) Data() []byte { return c.data }

func (c *Plte) WriteData(w *Writer) error {
	_, err := w.Write(c.data)
	return err
}

// Trns is the transparency chunk. Its payload layout depends on the image's
// color type, which the chunk does not itself carry: one alpha byte per
// palette entry for indexed images, a 2-byte gray sample, or a 6-byte RGB
// sample. Decoding validates the structurally possible lengths; accessors
// taking an ImageContext perform the interpretation.
type Trns struct {
	data []byte
}

// NewTrns validates raw transparency bytes against the lengths any color
// type could legalize: 1 to 256 bytes.
func NewTrns(data []byte) (*Trns, error) {
	if len(data) < 1 || len(data) > 256 {
		return nil, Errorf(KindFieldRange, "tRNS: data length %d out of range [1,256]", len(data))
	}
	return &Trns{data: data}, nil
}

func decodeTrns(r *Reader) (Chunk, error) {
	data, err := r.ReadRemaining()
	if err != nil {
		return nil, err
	}
	return NewTrns(data)
}

func (c *Trns) Type() Type { return TypeTrns }

// Data returns the raw payload. Callers must not modify the slice.
func (c *Trns) Data() []byte { return c.data }

// ValidateFor checks the payload length against the image's color type.
func (c *Trns) ValidateFor(ctx ImageContext) error {
	switch ctx.ColorType {
	case ColorGrayscale:
		if len(c.data) != 2 {
			return Errorf(KindFieldRange, "tRNS: grayscale image requires 2 bytes, got %d", len(c.data))
		}
	case ColorTrueColor:
		if len(c.data) != 6 {
			return Errorf(KindFieldRange, "tRNS: truecolor image requires 6 bytes, got %d", len(c.data))
		}
	case ColorIndexed:
		// Any 1..256 alphas; cardinality against PLTE is a document concern.
	default:
		return Errorf(KindStructural, "tRNS: not allowed for color type %d", ctx.ColorType)
	}
	return nil
}

// GraySample returns the transparent gray level for grayscale images.
func (c *Trns) GraySample() (uint16, error) {
	if len(c.data) != 2 {
		return 0, Errorf(KindFieldRange, "tRNS: no gray sample in %d-byte payload", len(c.data))
	}
	return uint16(c.data[0])<<8 | uint16(c.data[1]), nil
}

// RGBSamples returns the transparent color for truecolor images.
func (c *Trns) RGBSamples() (r, g, b uint16, err error) {
	if len(c.data) != 6 {
		return 0, 0, 0, Errorf(KindFieldRange, "tRNS: no RGB samples in %d-byte payload", len(c.data))
	}
	r = uint16(c.data[0])<<8 | uint16(c.data[1])
	g = uint16(c.data[2])<<8 | uint16(c.data[3])
	b = uint16(c.data[4])<<8 | uint16(c.data[5])
	return r, g, b, nil
}

func (c *Trns) WriteData(w *Writer) error {
	_, err := w.Write(c.data)
	return err
}

// Bkgd is the background color chunk. Like tRNS its layout is keyed by the
// image's color type: a 1-byte palette index, a 2-byte gray sample, or a
// 6-byte RGB sample.
type Bkgd struct {
	data []byte
}

// NewBkgd validates raw background bytes against the lengths any color type
// could legalize: exactly 1, 2, or 6 bytes.
func NewBkgd(data []byte) (*Bkgd, error) {
	switch len(data) {
	case 1, 2, 6:
		return &Bkgd{data: data}, nil
	}
	return nil, Errorf(KindFieldRange, "bKGD: data length %d is not 1, 2, or 6", len(data))
}

// NewBkgdPaletteIndex builds a background for palette-indexed images.
func NewBkgdPaletteIndex(index uint8) *Bkgd {
	return &Bkgd{data: []byte{index}}
}

// NewBkgdGray builds a background for grayscale images.
func NewBkgdGray(v uint16) *Bkgd {
	return &Bkgd{data: []byte{byte(v >> 8), byte(v)}}
}

// NewBkgdRGB builds a background for truecolor images.
func NewBkgdRGB(r, g, b uint16) *Bkgd {
	return &Bkgd{data: []byte{
		byte(r >> 8), byte(r),
		byte(g >> 8), byte(g),
		byte(b >> 8), byte(b),
	}}
}

func decodeBkgd(r *Reader) (Chunk, error) {
	data, err := r.ReadRemaining()
	if err != nil {
		return nil, err
	}
	return NewBkgd(data)
}

func (c *Bkgd) Type() Type { return TypeBkgd }

// Data returns the raw payload. Callers must not modify the slice.
func (c *Bkgd) Data() []byte { return c.data }

// ValidateFor checks the payload length against the image's color type.
func (c *Bkgd) ValidateFor(ctx ImageContext) error {
	var want int
	switch ctx.ColorType {
	case ColorIndexed:
		want = 1
	case ColorGrayscale, ColorGrayscaleAlpha:
		want = 2
	case ColorTrueColor, ColorTrueColorAlpha:
		want = 6
	default:
		return Errorf(KindFieldRange, "bKGD: unrecognized color type %d", ctx.ColorType)
	}
	if len(c.data) != want {
		return Errorf(KindFieldRange, "bKGD: color type %d requires %d bytes, got %d", ctx.ColorType, want, len(c.data))
	}
	return nil
}

func (c *Bkgd) WriteData(w *Writer) error {
	_, err := w.Write(c.data)
	return err
}

// Hist is the palette histogram chunk: one 16-bit approximate usage
// frequency per palette entry.
type Hist struct {
	frequencies []uint16
}

// NewHist validates the frequency table length against the palette bounds.
func NewHist(frequencies []uint16) (*Hist, error) {
	if len(frequencies) < 1 || len(frequencies) > 256 {
		return nil, Errorf(KindFieldRange, "hIST: entry count %d out of range [1,256]", len(frequencies))
	}
	return &Hist{frequencies: frequencies}, nil
}

func decodeHist(r *Reader) (Chunk, error) {
	if r.Remaining()%2 != 0 {
		return nil, Errorf(KindFieldRange, "hIST: data length %d is not a multiple of 2", r.Remaining())
	}
	freqs := make([]uint16, r.Remaining()/2)
	for i := range freqs {
		v, err := r.ReadUint16()
		if err != nil {
			return nil, err
		}
		freqs[i] = v
	}
	return NewHist(freqs)
}

func (c *Hist) Type() Type { return TypeHist }

// Frequencies returns the per-entry usage counts. Callers must not modify
// the slice.
func (c *Hist) Frequencies() []uint16 { return c.frequencies }

func (c *Hist) WriteData(w *Writer) error {
	for _, f := range c.frequencies {
		if err := w.WriteUint16(f); err != nil {
			return err
		}
	}
	return nil
}
