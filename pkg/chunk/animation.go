package chunk

// TypeActl is the type code of the animation control chunk.
const TypeActl Type = "acTL"

// TypeFctl is the type code of the frame control chunk.
const TypeFctl Type = "fcTL"

// TypeFdat is the type code of the frame data chunk.
const TypeFdat Type = "fdAT"

// Actl is the animation control chunk: the number of frames in the
// animation and how many times to play it (0 meaning forever).
type Actl struct {
	numFrames int32
	numPlays  int32
}

// NewActl validates the frame and play counts.
func NewActl(numFrames, numPlays int32) (*Actl, error) {
	if numFrames <= 0 {
		return nil, Errorf(KindFieldRange, "acTL: number of frames %d out of range", numFrames)
	}
	if numPlays < 0 {
		return nil, Errorf(KindFieldRange, "acTL: number of plays %d out of range", numPlays)
	}
	return &Actl{numFrames: numFrames, numPlays: numPlays}, nil
}

func decodeActl(r *Reader) (Chunk, error) {
	numFrames, err := r.ReadInt32()
	if err != nil {
		return nil, err
	}
	numPlays, err := r.ReadInt32()
	if err != nil {
		return nil, err
	}
	return NewActl(numFrames, numPlays)
}

func (c *Actl) Type() Type { return TypeActl }

func (c *Actl) NumFrames() int32 { return c.numFrames }
func (c *Actl) NumPlays() int32  { return c.numPlays }

func (c *Actl) WriteData(w *Writer) error {
	if err := w.WriteInt32(c.numFrames); err != nil {
		return err
	}
	return w.WriteInt32(c.numPlays)
}

// DisposeOp is the fcTL frame disposal operation.
type DisposeOp uint8

const (
	DisposeNone DisposeOp = iota
	DisposeBackground
	DisposePrevious

	numDisposeOps
)

// BlendOp is the fcTL frame blend operation.
type BlendOp uint8

const (
	BlendSource BlendOp = iota
	BlendOver

	numBlendOps
)

// Fctl is the frame control chunk: a 26-byte fixed record describing one
// animation frame's placement, timing, and composition.
type Fctl struct {
	sequenceNumber int32
	width, height  int32
	xOffset        int32
	yOffset        int32
	delayNum       uint16
	delayDen       uint16
	disposeOp      DisposeOp
	blendOp        BlendOp
}

// NewFctl validates every field of the frame control record.
func NewFctl(sequenceNumber, width, height, xOffset, yOffset int32, delayNum, delayDen uint16, disposeOp DisposeOp, blendOp BlendOp) (*Fctl, error) {
	if sequenceNumber < 0 {
		return nil, Errorf(KindFieldRange, "fcTL: sequence number %d out of range", sequenceNumber)
	}
	if width <= 0 || height <= 0 {
		return nil, Errorf(KindFieldRange, "fcTL: frame size %dx%d out of range", width, height)
	}
	if xOffset < 0 || yOffset < 0 {
		return nil, Errorf(KindFieldRange, "fcTL: frame offset %d,%d out of range", xOffset, yOffset)
	}
	if disposeOp >= numDisposeOps {
		return nil, Errorf(KindFieldRange, "fcTL: unrecognized dispose operation %d", disposeOp)
	}
	if blendOp >= numBlendOps {
		return nil, Errorf(KindFieldRange, "fcTL: unrecognized blend operation %d", blendOp)
	}
	return &Fctl{
		sequenceNumber: sequenceNumber,
		width:          width,
		height:         height,
		xOffset:        xOffset,
		yOffset:        yOffset,
		delayNum:       delayNum,
		delayDen:       delayDen,
		disposeOp:      disposeOp,
		blendOp:        blendOp,
	}, nil
}

func decodeFctl(r *Reader) (Chunk, error) {
	seq, err := r.ReadInt32()
	if err != nil {
		return nil, err
	}
	width, err := r.ReadInt32()
	if err != nil {
		return nil, err
	}
	height, err := r.ReadInt32()
	if err != nil {
		return nil, err
	}
	xOff, err := r.ReadInt32()
	if err != nil {
		return nil, err
	}
	yOff, err := r.ReadInt32()
	if err != nil {
		return nil, err
	}
	delayNum, err := r.ReadUint16()
	if err != nil {
		return nil, err
	}
	delayDen, err := r.ReadUint16()
	if err != nil {
		return nil, err
	}
	disposeOp, err := r.ReadEnum(int(numDisposeOps))
	if err != nil {
		return nil, err
	}
	blendOp, err := r.ReadEnum(int(numBlendOps))
	if err != nil {
		return nil, err
	}
	return NewFctl(seq, width, height, xOff, yOff, delayNum, delayDen, DisposeOp(disposeOp), BlendOp(blendOp))
}

func (c *Fctl) Type() Type { return TypeFctl }

func (c *Fctl) SequenceNumber() int32    { return c.sequenceNumber }
func (c *Fctl) FrameSize() (w, h int32)  { return c.width, c.height }
func (c *Fctl) Offset() (x, y int32)     { return c.xOffset, c.yOffset }
func (c *Fctl) Delay() (num, den uint16) { return c.delayNum, c.delayDen }
func (c *Fctl) DisposeOp() DisposeOp     { return c.disposeOp }
func (c *Fctl) BlendOp() BlendOp         { return c.blendOp }

func (c *Fctl) WriteData(w *Writer) error {
	for _, v := range []int32{c.sequenceNumber, c.width, c.height, c.xOffset, c.yOffset} {
		if err := w.WriteInt32(v); err != nil {
			return err
		}
	}
	if err := w.WriteUint16(c.delayNum); err != nil {
		return err
	}
	if err := w.WriteUint16(c.delayDen); err != nil {
		return err
	}
	if err := w.WriteUint8(uint8(c.disposeOp)); err != nil {
		return err
	}
	return w.WriteUint8(uint8(c.blendOp))
}

// Fdat is the frame data chunk: a sequence number followed by a slice of
// the frame's compressed raster payload, opaque at this layer like IDAT.
type Fdat struct {
	sequenceNumber int32
	data           []byte
}

// NewFdat validates the sequence number and wraps the payload bytes.
func NewFdat(sequenceNumber int32, data []byte) (*Fdat, error) {
	if sequenceNumber < 0 {
		return nil, Errorf(KindFieldRange, "fdAT: sequence number %d out of range", sequenceNumber)
	}
	if _, err := checkedLengthSum(4, len(data)); err != nil {
		return nil, err
	}
	return &Fdat{sequenceNumber: sequenceNumber, data: data}, nil
}

func decodeFdat(r *Reader) (Chunk, error) {
	seq, err := r.ReadInt32()
	if err != nil {
		return nil, err
	}
	data, err := r.ReadRemaining()
	if err != nil {
		return nil, err
	}
	return NewFdat(seq, data)
}

func (c *Fdat) Type() Type { return TypeFdat }

func (c *Fdat) SequenceNumber() int32 { return c.sequenceNumber }

// Data returns the payload bytes. Callers must not modify the slice.
func (c *Fdat) Data() []byte { return c.data }

func (c *Fdat) WriteData(w *Writer) error {
	if err := w.WriteInt32(c.sequenceNumber); err != nil {
		return err
	}
	_, err := w.Write(c.data)
	return err
}
