package chunk

import "math"

// TypeChrm is the type code of the primary chromaticities chunk.
const TypeChrm Type = "cHRM"

// TypeGama is the type code of the image gamma chunk.
const TypeGama Type = "gAMA"

// TypeSrgb is the type code of the standard RGB color space chunk.
const TypeSrgb Type = "sRGB"

// TypeSbit is the type code of the significant bits chunk.
const TypeSbit Type = "sBIT"

// TypeIccp is the type code of the embedded ICC profile chunk.
const TypeIccp Type = "iCCP"

// Chrm is the chromaticities chunk: the x/y coordinates of the white point
// and the three primaries, each stored as the value times 100000.
type Chrm struct {
	whiteX, whiteY uint32
	redX, redY     uint32
	greenX, greenY uint32
	blueX, blueY   uint32
}

// NewChrm validates the eight fixed-point coordinates. Each must fit in a
// non-negative signed 32-bit value.
func NewChrm(whiteX, whiteY, redX, redY, greenX, greenY, blueX, blueY uint32) (*Chrm, error) {
	for _, v := range []uint32{whiteX, whiteY, redX, redY, greenX, greenY, blueX, blueY} {
		if v > math.MaxInt32 {
			return nil, Errorf(KindFieldRange, "cHRM: coordinate %d out of range", v)
		}
	}
	return &Chrm{whiteX, whiteY, redX, redY, greenX, greenY, blueX, blueY}, nil
}

func decodeChrm(r *Reader) (Chunk, error) {
	var vals [8]uint32
	for i := range vals {
		v, err := r.ReadUint32()
		if err != nil {
			return nil, err
		}
		vals[i] = v
	}
	return NewChrm(vals[0], vals[1], vals[2], vals[3], vals[4], vals[5], vals[6], vals[7])
}

func (c *Chrm) Type() Type { return TypeChrm }

func (c *Chrm) WhitePoint() (x, y uint32) { return c.whiteX, c.whiteY }
func (c *Chrm) Red() (x, y uint32)        { return c.redX, c.redY }
func (c *Chrm) Green() (x, y uint32)      { return c.greenX, c.greenY }
func (c *Chrm) Blue() (x, y uint32)       { return c.blueX, c.blueY }

func (c *Chrm) WriteData(w *Writer) error {
	for _, v := range []uint32{c.whiteX, c.whiteY, c.redX, c.redY, c.greenX, c.greenY, c.blueX, c.blueY} {
		if err := w.WriteUint32(v); err != nil {
			return err
		}
	}
	return nil
}

// Gama is the image gamma chunk: the gamma value times 100000.
type Gama struct {
	gamma uint32
}

// NewGama validates that the fixed-point gamma is positive and fits in a
// signed 32-bit value.
func NewGama(gamma uint32) (*Gama, error) {
	if gamma == 0 || gamma > math.MaxInt32 {
		return nil, Errorf(KindFieldRange, "gAMA: gamma %d out of range", gamma)
	}
	return &Gama{gamma: gamma}, nil
}

func decodeGama(r *Reader) (Chunk, error) {
	v, err := r.ReadUint32()
	if err != nil {
		return nil, err
	}
	return NewGama(v)
}

func (c *Gama) Type() Type { return TypeGama }

// Gamma returns the gamma value times 100000.
func (c *Gama) Gamma() uint32 { return c.gamma }

func (c *Gama) WriteData(w *Writer) error {
	return w.WriteUint32(c.gamma)
}

// RenderingIntent is the sRGB chunk's single enumerated field.
type RenderingIntent uint8

const (
	IntentPerceptual RenderingIntent = iota
	IntentRelativeColorimetric
	IntentSaturation
	IntentAbsoluteColorimetric

	numRenderingIntents
)

// Srgb declares that the image conforms to the sRGB color space.
type Srgb struct {
	intent RenderingIntent
}

// NewSrgb validates the rendering intent.
func NewSrgb(intent RenderingIntent) (*Srgb, error) {
	if intent >= numRenderingIntents {
		return nil, Errorf(KindFieldRange, "sRGB: unrecognized rendering intent %d", intent)
	}
	return &Srgb{intent: intent}, nil
}

func decodeSrgb(r *Reader) (Chunk, error) {
	v, err := r.ReadEnum(int(numRenderingIntents))
	if err != nil {
		return nil, err
	}
	return &Srgb{intent: RenderingIntent(v)}, nil
}

func (c *Srgb) Type() Type { return TypeSrgb }

func (c *Srgb) Intent() RenderingIntent { return c.intent }

func (c *Srgb) WriteData(w *Writer) error {
	return w.WriteUint8(uint8(c.intent))
}

// Sbit is the significant bits chunk: one byte per channel, 1 to 4 channels
// depending on the color type, each value in [1,16].
type Sbit struct {
	bits []uint8
}

// NewSbit validates the channel count and per-channel bit counts.
func NewSbit(bits []uint8) (*Sbit, error) {
	if len(bits) < 1 || len(bits) > 4 {
		return nil, Errorf(KindFieldRange, "sBIT: channel count %d out of range [1,4]", len(bits))
	}
	for _, b := range bits {
		if b < 1 || b > 16 {
			return nil, Errorf(KindFieldRange, "sBIT: significant bits %d out of range [1,16]", b)
		}
	}
	return &Sbit{bits: bits}, nil
}

func decodeSbit(r *Reader) (Chunk, error) {
	data, err := r.ReadRemaining()
	if err != nil {
		return nil, err
	}
	return NewSbit(data)
}

func (c *Sbit) Type() Type { return TypeSbit }

// Bits returns the per-channel significant bit counts. Callers must not
// modify the slice.
func (c *Sbit) Bits() []uint8 { return c.bits }

func (c *Sbit) WriteData(w *Writer) error {
	_, err := w.Write(c.bits)
	return err
}

// Iccp is the embedded ICC profile chunk: a profile name keyword, a NUL, a
// compression method byte, and the compressed profile bytes.
type Iccp struct {
	profileName       string
	method            CompressionMethod
	compressedProfile []byte
}

// NewIccp validates the profile name and wraps an already-compressed
// profile payload.
func NewIccp(profileName string, method CompressionMethod, compressedProfile []byte) (*Iccp, error) {
	if err := checkKeyword(profileName); err != nil {
		return nil, err
	}
	if method >= numCompressionMethods {
		return nil, Errorf(KindFieldRange, "iCCP: unrecognized compression method %d", method)
	}
	if _, err := checkedLengthSum(len(profileName), 2, len(compressedProfile)); err != nil {
		return nil, err
	}
	return &Iccp{profileName: profileName, method: method, compressedProfile: compressedProfile}, nil
}

// NewIccpProfile compresses a raw profile and wraps it.
func NewIccpProfile(profileName string, profile []byte) (*Iccp, error) {
	return NewIccp(profileName, CompressionZlibDeflate, CompressionZlibDeflate.Compress(profile))
}

func decodeIccp(r *Reader) (Chunk, error) {
	name, err := r.ReadStringNul()
	if err != nil {
		return nil, err
	}
	method, err := r.ReadEnum(numCompressionMethods)
	if err != nil {
		return nil, err
	}
	data, err := r.ReadRemaining()
	if err != nil {
		return nil, err
	}
	return NewIccp(name, CompressionMethod(method), data)
}

func (c *Iccp) Type() Type { return TypeIccp }

func (c *Iccp) ProfileName() string { return c.profileName }

// CompressedProfile returns the profile payload as stored. Callers must not
// modify the slice.
func (c *Iccp) CompressedProfile() []byte { return c.compressedProfile }

// Profile decompresses and returns the ICC profile bytes.
func (c *Iccp) Profile() ([]byte, error) {
	return c.method.Decompress(c.compressedProfile)
}

func (c *Iccp) WriteData(w *Writer) error {
	if err := w.WriteStringNul(c.profileName); err != nil {
		return err
	}
	if err := w.WriteUint8(uint8(c.method)); err != nil {
		return err
	}
	_, err := w.Write(c.compressedProfile)
	return err
}
