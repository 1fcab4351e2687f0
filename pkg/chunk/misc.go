package chunk

import "time"

// TypeTime is the type code of the last-modification time chunk.
const TypeTime Type = "tIME"

// TypeSplt is the type code of the suggested palette chunk.
const TypeSplt Type = "sPLT"

// TypeExif is the type code of the EXIF metadata chunk.
const TypeExif Type = "eXIf"

// TypeDsig is the type code of the digital signature chunk.
const TypeDsig Type = "dSIG"

// Time is the last-modification time chunk: a 7-byte fixed record holding a
// UTC timestamp.
type Time struct {
	year   int
	month  int
	day    int
	hour   int
	minute int
	second int
}

// NewTime validates each calendar field independently. Second 60 is legal,
// for leap seconds.
func NewTime(year, month, day, hour, minute, second int) (*Time, error) {
	if year < 0 || year > 32767 {
		return nil, Errorf(KindFieldRange, "tIME: year %d out of range", year)
	}
	if month < 1 || month > 12 {
		return nil, Errorf(KindFieldRange, "tIME: month %d out of range", month)
	}
	if day < 1 || day > 31 {
		return nil, Errorf(KindFieldRange, "tIME: day %d out of range", day)
	}
	if hour < 0 || hour > 23 {
		return nil, Errorf(KindFieldRange, "tIME: hour %d out of range", hour)
	}
	if minute < 0 || minute > 59 {
		return nil, Errorf(KindFieldRange, "tIME: minute %d out of range", minute)
	}
	if second < 0 || second > 60 {
		return nil, Errorf(KindFieldRange, "tIME: second %d out of range", second)
	}
	return &Time{year: year, month: month, day: day, hour: hour, minute: minute, second: second}, nil
}

// NewTimeFromGo converts a Go time, in UTC, to a tIME chunk.
func NewTimeFromGo(t time.Time) (*Time, error) {
	u := t.UTC()
	return NewTime(u.Year(), int(u.Month()), u.Day(), u.Hour(), u.Minute(), u.Second())
}

func decodeTime(r *Reader) (Chunk, error) {
	year, err := r.ReadUint16()
	if err != nil {
		return nil, err
	}
	var rest [5]uint8
	for i := range rest {
		v, err := r.ReadUint8()
		if err != nil {
			return nil, err
		}
		rest[i] = v
	}
	return NewTime(int(year), int(rest[0]), int(rest[1]), int(rest[2]), int(rest[3]), int(rest[4]))
}

func (c *Time) Type() Type { return TypeTime }

func (c *Time) Year() int   { return c.year }
func (c *Time) Month() int  { return c.month }
func (c *Time) Day() int    { return c.day }
func (c *Time) Hour() int   { return c.hour }
func (c *Time) Minute() int { return c.minute }
func (c *Time) Second() int { return c.second }

func (c *Time) WriteData(w *Writer) error {
	if err := w.WriteUint16(uint16(c.year)); err != nil {
		return err
	}
	for _, v := range []int{c.month, c.day, c.hour, c.minute, c.second} {
		if err := w.WriteUint8(uint8(v)); err != nil {
			return err
		}
	}
	return nil
}

// Splt is the suggested palette chunk: a palette name, a sample depth, and
// packed entries of 6 bytes (depth 8) or 10 bytes (depth 16).
type Splt struct {
	paletteName string
	sampleDepth int
	data        []byte
}

// SpltEntrySize returns the packed entry size for a sample depth, or 0 if
// the depth is not 8 or 16.
func SpltEntrySize(sampleDepth int) int {
	switch sampleDepth {
	case 8:
		return 6
	case 16:
		return 10
	default:
		return 0
	}
}

// NewSplt validates the name, depth, and that the payload length is an
// exact multiple of the depth's entry size.
func NewSplt(paletteName string, sampleDepth int, data []byte) (*Splt, error) {
	if err := checkKeyword(paletteName); err != nil {
		return nil, err
	}
	entrySize := SpltEntrySize(sampleDepth)
	if entrySize == 0 {
		return nil, Errorf(KindFieldRange, "sPLT: sample depth %d is not 8 or 16", sampleDepth)
	}
	if len(data)%entrySize != 0 {
		return nil, Errorf(KindFieldRange, "sPLT: data length %d is not a multiple of entry size %d", len(data), entrySize)
	}
	if _, err := checkedLengthSum(len(paletteName), 2, len(data)); err != nil {
		return nil, err
	}
	return &Splt{paletteName: paletteName, sampleDepth: sampleDepth, data: data}, nil
}

func decodeSplt(r *Reader) (Chunk, error) {
	name, err := r.ReadStringNul()
	if err != nil {
		return nil, err
	}
	depth, err := r.ReadUint8()
	if err != nil {
		return nil, err
	}
	data, err := r.ReadRemaining()
	if err != nil {
		return nil, err
	}
	return NewSplt(name, int(depth), data)
}

func (c *Splt) Type() Type { return TypeSplt }

func (c *Splt) PaletteName() string { return c.paletteName }
func (c *Splt) SampleDepth() int    { return c.sampleDepth }

// NumEntries returns the number of packed palette entries.
func (c *Splt) NumEntries() int { return len(c.data) / SpltEntrySize(c.sampleDepth) }

// Data returns the packed entry bytes. Callers must not modify the slice.
func (c *Splt) Data() []byte { return c.data }

func (c *Splt) WriteData(w *Writer) error {
	if err := w.WriteStringNul(c.paletteName); err != nil {
		return err
	}
	if err := w.WriteUint8(uint8(c.sampleDepth)); err != nil {
		return err
	}
	_, err := w.Write(c.data)
	return err
}

// Exif carries EXIF metadata as an opaque TIFF-structured blob.
type Exif struct {
	data []byte
}

// NewExif wraps EXIF payload bytes.
func NewExif(data []byte) (*Exif, error) {
	if len(data) > MaxDataLength {
		return nil, Errorf(KindFraming, "eXIf: data length %d exceeds maximum", len(data))
	}
	return &Exif{data: data}, nil
}

func decodeExif(r *Reader) (Chunk, error) {
	data, err := r.ReadRemaining()
	if err != nil {
		return nil, err
	}
	return &Exif{data: data}, nil
}

func (c *Exif) Type() Type { return TypeExif }

// Data returns the payload bytes. Callers must not modify the slice.
func (c *Exif) Data() []byte { return c.data }

func (c *Exif) WriteData(w *Writer) error {
	_, err := w.Write(c.data)
	return err
}

// Dsig carries a digital signature as an opaque blob.
type Dsig struct {
	data []byte
}

// NewDsig wraps signature payload bytes.
func NewDsig(data []byte) (*Dsig, error) {
	if len(data) > MaxDataLength {
		return nil, Errorf(KindFraming, "dSIG: data length %d exceeds maximum", len(data))
	}
	return &Dsig{data: data}, nil
}

func decodeDsig(r *Reader) (Chunk, error) {
	data, err := r.ReadRemaining()
	if err != nil {
		return nil, err
	}
	return &Dsig{data: data}, nil
}

func (c *Dsig) Type() Type { return TypeDsig }

// Data returns the payload bytes. Callers must not modify the slice.
func (c *Dsig) Data() []byte { return c.data }

func (c *Dsig) WriteData(w *Writer) error {
	_, err := w.Write(c.data)
	return err
}
