package chunk

// TypeIhdr is the type code of the image header chunk.
const TypeIhdr Type = "IHDR"

// ColorType is the IHDR color type field.
type ColorType uint8

const (
	ColorGrayscale      ColorType = 0
	ColorTrueColor      ColorType = 2
	ColorIndexed        ColorType = 3
	ColorGrayscaleAlpha ColorType = 4
	ColorTrueColorAlpha ColorType = 6
)

// legalBitDepths maps each color type to its permitted bit depths.
var legalBitDepths = map[ColorType][]int{
	ColorGrayscale:      {1, 2, 4, 8, 16},
	ColorTrueColor:      {8, 16},
	ColorIndexed:        {1, 2, 4, 8},
	ColorGrayscaleAlpha: {8, 16},
	ColorTrueColorAlpha: {8, 16},
}

// InterlaceMethod is the IHDR interlace method field.
type InterlaceMethod uint8

const (
	InterlaceNone  InterlaceMethod = 0
	InterlaceAdam7 InterlaceMethod = 1
)

const numInterlaceMethods = 2

// ImageContext carries the header state that context-dependent chunks (bKGD,
// tRNS) need to interpret their payloads. Passing it explicitly keeps those
// codecs stateless and testable in isolation.
type ImageContext struct {
	ColorType ColorType
	BitDepth  int
}

// Ihdr is the image header chunk: a 13-byte fixed record holding the image
// dimensions, sample format, and coding methods.
type Ihdr struct {
	width             int32
	height            int32
	bitDepth          int
	colorType         ColorType
	compressionMethod CompressionMethod
	filterMethod      uint8
	interlaceMethod   InterlaceMethod
}

// NewIhdr validates the field combination and builds the header chunk. The
// compression and filter methods are fixed at zero by the format.
func NewIhdr(width, height int32, bitDepth int, colorType ColorType, interlace InterlaceMethod) (*Ihdr, error) {
	if width <= 0 {
		return nil, Errorf(KindFieldRange, "IHDR: width %d out of range", width)
	}
	if height <= 0 {
		return nil, Errorf(KindFieldRange, "IHDR: height %d out of range", height)
	}
	depths, ok := legalBitDepths[colorType]
	if !ok {
		return nil, Errorf(KindFieldRange, "IHDR: unrecognized color type %d", colorType)
	}
	legal := false
	for _, d := range depths {
		if d == bitDepth {
			legal = true
			break
		}
	}
	if !legal {
		return nil, Errorf(KindFieldRange, "IHDR: bit depth %d not allowed for color type %d", bitDepth, colorType)
	}
	if interlace >= numInterlaceMethods {
		return nil, Errorf(KindFieldRange, "IHDR: unrecognized interlace method %d", interlace)
	}
	return &Ihdr{
		width:           width,
		height:          height,
		bitDepth:        bitDepth,
		colorType:       colorType,
		interlaceMethod: interlace,
	}, nil
}

func decodeIhdr(r *Reader) (Chunk, error) {
	width, err := r.ReadInt32()
	if err != nil {
		return nil, err
	}
	height, err := r.ReadInt32()
	if err != nil {
		return nil, err
	}
	bitDepth, err := r.ReadUint8()
	if err != nil {
		return nil, err
	}
	colorType, err := r.ReadUint8()
	if err != nil {
		return nil, err
	}
	if _, err := r.ReadEnum(numCompressionMethods); err != nil {
		return nil, err
	}
	filter, err := r.ReadUint8()
	if err != nil {
		return nil, err
	}
	if filter != 0 {
		return nil, Errorf(KindFieldRange, "IHDR: unrecognized filter method %d", filter)
	}
	interlace, err := r.ReadEnum(numInterlaceMethods)
	if err != nil {
		return nil, err
	}
	return NewIhdr(width, height, int(bitDepth), ColorType(colorType), InterlaceMethod(interlace))
}

func (c *Ihdr) Type() Type { return TypeIhdr }

func (c *Ihdr) Width() int32               { return c.width }
func (c *Ihdr) Height() int32              { return c.height }
func (c *Ihdr) BitDepth() int              { return c.bitDepth }
func (c *Ihdr) ColorType() ColorType       { return c.colorType }
func (c *Ihdr) Interlace() InterlaceMethod { return c.interlaceMethod }

// Context returns the header state needed by context-dependent chunk
// accessors.
func (c *Ihdr) Context() ImageContext {
	return ImageContext{ColorType: c.colorType, BitDepth: c.bitDepth}
}

func (c *Ihdr) WriteData(w *Writer) error {
	if err := w.WriteInt32(c.width); err != nil {
		return err
	}
	if err := w.WriteInt32(c.height); err != nil {
		return err
	}
	if err := w.WriteUint8(uint8(c.bitDepth)); err != nil {
		return err
	}
	if err := w.WriteUint8(uint8(c.colorType)); err != nil {
		return err
	}
	if err := w.WriteUint8(uint8(c.compressionMethod)); err != nil {
		return err
	}
	if err := w.WriteUint8(c.filterMethod); err != nil {
		return err
	}
	return w.WriteUint8(uint8(c.interlaceMethod))
}
