package chunk

// TypeGifg is the type code of the GIF graphic control extension chunk.
const TypeGifg Type = "gIFg"

// TypeGift is the type code of the deprecated GIF plain text extension
// chunk.
const TypeGift Type = "gIFt"

// TypeGifx is the type code of the GIF application extension chunk.
const TypeGifx Type = "gIFx"

// Gifg preserves a GIF graphic control extension: disposal method, user
// input flag, and delay time in hundredths of a second.
type Gifg struct {
	disposalMethod uint8
	userInputFlag  bool
	delayTime      uint16
}

// NewGifg validates the disposal method range.
func NewGifg(disposalMethod uint8, userInputFlag bool, delayTime uint16) (*Gifg, error) {
	if disposalMethod >= 8 {
		return nil, Errorf(KindFieldRange, "gIFg: disposal method %d out of range", disposalMethod)
	}
	return &Gifg{disposalMethod: disposalMethod, userInputFlag: userInputFlag, delayTime: delayTime}, nil
}

func decodeGifg(r *Reader) (Chunk, error) {
	disposal, err := r.ReadUint8()
	if err != nil {
		return nil, err
	}
	userInput, err := r.ReadEnum(2)
	if err != nil {
		return nil, err
	}
	delay, err := r.ReadUint16()
	if err != nil {
		return nil, err
	}
	return NewGifg(disposal, userInput != 0, delay)
}

func (c *Gifg) Type() Type { return TypeGifg }

func (c *Gifg) DisposalMethod() uint8 { return c.disposalMethod }
func (c *Gifg) UserInputFlag() bool   { return c.userInputFlag }
func (c *Gifg) DelayTime() uint16     { return c.delayTime }

func (c *Gifg) WriteData(w *Writer) error {
	if err := w.WriteUint8(c.disposalMethod); err != nil {
		return err
	}
	flag := uint8(0)
	if c.userInputFlag {
		flag = 1
	}
	if err := w.WriteUint8(flag); err != nil {
		return err
	}
	return w.WriteUint16(c.delayTime)
}

// Gift preserves a deprecated GIF plain text extension: a 20-byte fixed
// record describing the text grid plus the text bytes themselves.
type Gift struct {
	gridLeft   int32
	gridTop    int32
	gridWidth  int32
	gridHeight int32
	cellWidth  uint8
	cellHeight uint8
	foreground uint8
	background uint8
	text       []byte
}

// NewGift validates the grid geometry and wraps the text bytes.
func NewGift(gridLeft, gridTop, gridWidth, gridHeight int32, cellWidth, cellHeight, foreground, background uint8, text []byte) (*Gift, error) {
	if gridWidth < 0 || gridHeight < 0 {
		return nil, Errorf(KindFieldRange, "gIFt: grid size %dx%d out of range", gridWidth, gridHeight)
	}
	if _, err := checkedLengthSum(20, len(text)); err != nil {
		return nil, err
	}
	return &Gift{
		gridLeft:   gridLeft,
		gridTop:    gridTop,
		gridWidth:  gridWidth,
		gridHeight: gridHeight,
		cellWidth:  cellWidth,
		cellHeight: cellHeight,
		foreground: foreground,
		background: background,
		text:       text,
	}, nil
}

func decodeGift(r *Reader) (Chunk, error) {
	var grid [4]int32
	for i := range grid {
		v, err := r.ReadInt32()
		if err != nil {
			return nil, err
		}
		grid[i] = v
	}
	var cells [4]uint8
	for i := range cells {
		v, err := r.ReadUint8()
		if err != nil {
			return nil, err
		}
		cells[i] = v
	}
	text, err := r.ReadRemaining()
	if err != nil {
		return nil, err
	}
	return NewGift(grid[0], grid[1], grid[2], grid[3], cells[0], cells[1], cells[2], cells[3], text)
}

func (c *Gift) Type() Type { return TypeGift }

func (c *Gift) Grid() (left, top, width, height int32) {
	return c.gridLeft, c.gridTop, c.gridWidth, c.gridHeight
}

func (c *Gift) CellSize() (w, h uint8) { return c.cellWidth, c.cellHeight }

func (c *Gift) Colors() (fg, bg uint8) { return c.foreground, c.background }

// TextBytes returns the plain text payload. Callers must not modify the
// slice.
func (c *Gift) TextBytes() []byte { return c.text }

func (c *Gift) WriteData(w *Writer) error {
	for _, v := range []int32{c.gridLeft, c.gridTop, c.gridWidth, c.gridHeight} {
		if err := w.WriteInt32(v); err != nil {
			return err
		}
	}
	for _, v := range []uint8{c.cellWidth, c.cellHeight, c.foreground, c.background} {
		if err := w.WriteUint8(v); err != nil {
			return err
		}
	}
	_, err := w.Write(c.text)
	return err
}

// Gifx preserves a GIF application extension: an 8-byte application
// identifier, a 3-byte authentication code, and arbitrary application data.
type Gifx struct {
	applicationID      []byte
	authenticationCode []byte
	applicationData    []byte
}

// NewGifx validates the fixed-length identifier and code fields.
func NewGifx(applicationID, authenticationCode, applicationData []byte) (*Gifx, error) {
	if len(applicationID) != 8 {
		return nil, Errorf(KindFieldRange, "gIFx: application identifier must be 8 bytes, got %d", len(applicationID))
	}
	if len(authenticationCode) != 3 {
		return nil, Errorf(KindFieldRange, "gIFx: authentication code must be 3 bytes, got %d", len(authenticationCode))
	}
	if _, err := checkedLengthSum(len(applicationID), len(authenticationCode), len(applicationData)); err != nil {
		return nil, err
	}
	return &Gifx{
		applicationID:      applicationID,
		authenticationCode: authenticationCode,
		applicationData:    applicationData,
	}, nil
}

func decodeGifx(r *Reader) (Chunk, error) {
	appID, err := r.ReadBytes(8)
	if err != nil {
		return nil, err
	}
	authCode, err := r.ReadBytes(3)
	if err != nil {
		return nil, err
	}
	appData, err := r.ReadRemaining()
	if err != nil {
		return nil, err
	}
	return NewGifx(appID, authCode, appData)
}

func (c *Gifx) Type() Type { return TypeGifx }

func (c *Gifx) ApplicationID() []byte      { return c.applicationID }
func (c *Gifx) AuthenticationCode() []byte { return c.authenticationCode }
func (c *Gifx) ApplicationData() []byte    { return c.applicationData }

func (c *Gifx) WriteData(w *Writer) error {
	if _, err := w.Write(c.applicationID); err != nil {
		return err
	}
	if _, err := w.Write(c.authenticationCode); err != nil {
		return err
	}
	_, err := w.Write(c.applicationData)
	return err
}
