package chunk

import (
	"math"
	"strconv"
)

// TypePhys is the type code of the physical pixel dimensions chunk.
const TypePhys Type = "pHYs"

// TypeOffs is the type code of the image offset chunk.
const TypeOffs Type = "oFFs"

// TypeScal is the type code of the physical scale chunk.
const TypeScal Type = "sCAL"

// TypePcal is the type code of the pixel calibration chunk.
const TypePcal Type = "pCAL"

// TypeSter is the type code of the stereo indicator chunk.
const TypeSter Type = "sTER"

// PhysUnit is the pHYs unit specifier.
type PhysUnit uint8

const (
	PhysUnitUnknown PhysUnit = iota
	PhysUnitMetre

	numPhysUnits
)

// Phys is the physical pixel dimensions chunk: pixels per unit along each
// axis plus a unit specifier.
type Phys struct {
	pixelsPerUnitX int32
	pixelsPerUnitY int32
	unit           PhysUnit
}

// NewPhys validates that both densities are positive.
func NewPhys(pixelsPerUnitX, pixelsPerUnitY int32, unit PhysUnit) (*Phys, error) {
	if pixelsPerUnitX <= 0 || pixelsPerUnitY <= 0 {
		return nil, Errorf(KindFieldRange, "pHYs: pixels per unit %d,%d out of range", pixelsPerUnitX, pixelsPerUnitY)
	}
	if unit >= numPhysUnits {
		return nil, Errorf(KindFieldRange, "pHYs: unrecognized unit specifier %d", unit)
	}
	return &Phys{pixelsPerUnitX: pixelsPerUnitX, pixelsPerUnitY: pixelsPerUnitY, unit: unit}, nil
}

func decodePhys(r *Reader) (Chunk, error) {
	x, err := r.ReadInt32()
	if err != nil {
		return nil, err
	}
	y, err := r.ReadInt32()
	if err != nil {
		return nil, err
	}
	unit, err := r.ReadEnum(int(numPhysUnits))
	if err != nil {
		return nil, err
	}
	return NewPhys(x, y, PhysUnit(unit))
}

func (c *Phys) Type() Type { return TypePhys }

func (c *Phys) PixelsPerUnit() (x, y int32) { return c.pixelsPerUnitX, c.pixelsPerUnitY }
func (c *Phys) Unit() PhysUnit              { return c.unit }

func (c *Phys) WriteData(w *Writer) error {
	if err := w.WriteInt32(c.pixelsPerUnitX); err != nil {
		return err
	}
	if err := w.WriteInt32(c.pixelsPerUnitY); err != nil {
		return err
	}
	return w.WriteUint8(uint8(c.unit))
}

// OffsUnit is the oFFs unit specifier.
type OffsUnit uint8

const (
	OffsUnitPixel OffsUnit = iota
	OffsUnitMicrometre

	numOffsUnits
)

// Offs is the image offset chunk: the image's position relative to the page
// origin.
type Offs struct {
	xPosition int32
	yPosition int32
	unit      OffsUnit
}

// NewOffs validates the positions and unit. The minimum int32 value is
// unrepresentable by the format's signed field convention and rejected.
func NewOffs(xPosition, yPosition int32, unit OffsUnit) (*Offs, error) {
	if xPosition == math.MinInt32 || yPosition == math.MinInt32 {
		return nil, Errorf(KindFieldRange, "oFFs: position %d,%d out of range", xPosition, yPosition)
	}
	if unit >= numOffsUnits {
		return nil, Errorf(KindFieldRange, "oFFs: unrecognized unit specifier %d", unit)
	}
	return &Offs{xPosition: xPosition, yPosition: yPosition, unit: unit}, nil
}

func decodeOffs(r *Reader) (Chunk, error) {
	x, err := r.ReadInt32()
	if err != nil {
		return nil, err
	}
	y, err := r.ReadInt32()
	if err != nil {
		return nil, err
	}
	unit, err := r.ReadEnum(int(numOffsUnits))
	if err != nil {
		return nil, err
	}
	return NewOffs(x, y, OffsUnit(unit))
}

func (c *Offs) Type() Type { return TypeOffs }

func (c *Offs) Position() (x, y int32) { return c.xPosition, c.yPosition }
func (c *Offs) Unit() OffsUnit         { return c.unit }

func (c *Offs) WriteData(w *Writer) error {
	if err := w.WriteInt32(c.xPosition); err != nil {
		return err
	}
	if err := w.WriteInt32(c.yPosition); err != nil {
		return err
	}
	return w.WriteUint8(uint8(c.unit))
}

// ScalUnit is the sCAL unit specifier. Unlike most enumerated fields its
// wire values start at 1.
type ScalUnit uint8

const (
	ScalUnitMetre  ScalUnit = 1
	ScalUnitRadian ScalUnit = 2
)

// Scal is the physical scale chunk: the physical size of one pixel, with
// each dimension stored as a positive number in ASCII scientific notation.
type Scal struct {
	unit   ScalUnit
	width  string
	height string
}

// NewScal validates the unit and that both dimensions are syntactically
// valid, strictly positive ASCII floats.
func NewScal(unit ScalUnit, width, height string) (*Scal, error) {
	if unit != ScalUnitMetre && unit != ScalUnitRadian {
		return nil, Errorf(KindFieldRange, "sCAL: unrecognized unit specifier %d", unit)
	}
	for _, s := range []string{width, height} {
		if classifyASCIIFloat(s) != 1 {
			return nil, Errorf(KindFieldRange, "sCAL: dimension %q is not a positive ASCII float", s)
		}
	}
	if _, err := checkedLengthSum(2, len(width), len(height)); err != nil {
		return nil, err
	}
	return &Scal{unit: unit, width: width, height: height}, nil
}

func decodeScal(r *Reader) (Chunk, error) {
	unit, err := r.ReadUint8()
	if err != nil {
		return nil, err
	}
	if unit != uint8(ScalUnitMetre) && unit != uint8(ScalUnitRadian) {
		return nil, Errorf(KindFieldRange, "sCAL: unrecognized unit specifier %d", unit)
	}
	rest, err := r.ReadRemaining()
	if err != nil {
		return nil, err
	}
	parts, err := splitByNul(rest, 2)
	if err != nil {
		return nil, err
	}
	return NewScal(ScalUnit(unit), string(parts[0]), string(parts[1]))
}

func (c *Scal) Type() Type { return TypeScal }

func (c *Scal) Unit() ScalUnit { return c.unit }

// PixelSize returns the per-pixel dimensions as their ASCII representations.
func (c *Scal) PixelSize() (width, height string) { return c.width, c.height }

// PixelSizeFloat parses the per-pixel dimensions as float64 values.
func (c *Scal) PixelSizeFloat() (width, height float64, err error) {
	width, err = strconv.ParseFloat(c.width, 64)
	if err == nil {
		height, err = strconv.ParseFloat(c.height, 64)
	}
	if err != nil {
		return 0, 0, Errorf(KindFieldRange, "sCAL: unparseable dimension: %v", err)
	}
	return width, height, nil
}

func (c *Scal) WriteData(w *Writer) error {
	if err := w.WriteUint8(uint8(c.unit)); err != nil {
		return err
	}
	if err := w.WriteStringNul(c.width); err != nil {
		return err
	}
	return w.WriteString(c.height)
}

// PcalEquation is the pCAL mapping equation type.
type PcalEquation uint8

const (
	PcalLinear PcalEquation = iota
	PcalBaseEExponential
	PcalArbitraryBaseExponential
	PcalHyperbolic

	numPcalEquations
)

// pcalParamCounts maps each equation type to its required parameter count.
var pcalParamCounts = [numPcalEquations]int{2, 3, 3, 4}

// Pcal is the pixel calibration chunk: a calibration name, the original
// sample range, an equation type, a unit name, and the equation's
// parameters in ASCII scientific notation.
type Pcal struct {
	calibrationName string
	x0, x1          int32
	equation        PcalEquation
	unitName        string
	params          []string
}

// NewPcal validates the name, sample range, equation type, and parameter
// list.
func NewPcal(calibrationName string, x0, x1 int32, equation PcalEquation, unitName string, params []string) (*Pcal, error) {
	if err := checkKeyword(calibrationName); err != nil {
		return nil, err
	}
	if x0 == x1 {
		return nil, Errorf(KindFieldRange, "pCAL: original sample range is empty (x0 == x1 == %d)", x0)
	}
	if x0 == math.MinInt32 || x1 == math.MinInt32 {
		return nil, Errorf(KindFieldRange, "pCAL: sample limit out of range")
	}
	if equation >= numPcalEquations {
		return nil, Errorf(KindFieldRange, "pCAL: unrecognized equation type %d", equation)
	}
	if err := checkLatin1(unitName, false); err != nil {
		return nil, err
	}
	if want := pcalParamCounts[equation]; len(params) != want {
		return nil, Errorf(KindFieldRange, "pCAL: equation type %d requires %d parameters, got %d", equation, want, len(params))
	}
	lengths := []int{len(calibrationName), 1, 4, 4, 1, 1, len(unitName), 1}
	for _, p := range params {
		if classifyASCIIFloat(p) == -1 {
			return nil, Errorf(KindFieldRange, "pCAL: parameter %q is not an ASCII float", p)
		}
		lengths = append(lengths, len(p), 1)
	}
	if _, err := checkedLengthSum(lengths...); err != nil {
		return nil, err
	}
	return &Pcal{
		calibrationName: calibrationName,
		x0:              x0,
		x1:              x1,
		equation:        equation,
		unitName:        unitName,
		params:          params,
	}, nil
}

func decodePcal(r *Reader) (Chunk, error) {
	name, err := r.ReadStringNul()
	if err != nil {
		return nil, err
	}
	x0, err := r.ReadInt32()
	if err != nil {
		return nil, err
	}
	x1, err := r.ReadInt32()
	if err != nil {
		return nil, err
	}
	equation, err := r.ReadEnum(int(numPcalEquations))
	if err != nil {
		return nil, err
	}
	numParams, err := r.ReadUint8()
	if err != nil {
		return nil, err
	}
	rest, err := r.ReadRemaining()
	if err != nil {
		return nil, err
	}
	parts, err := splitByNul(rest, int(numParams)+1)
	if err != nil {
		return nil, err
	}
	unitName := latin1ToString(parts[0])
	params := make([]string, numParams)
	for i, p := range parts[1:] {
		params[i] = string(p)
	}
	return NewPcal(name, x0, x1, PcalEquation(equation), unitName, params)
}

func (c *Pcal) Type() Type { return TypePcal }

func (c *Pcal) CalibrationName() string     { return c.calibrationName }
func (c *Pcal) SampleRange() (x0, x1 int32) { return c.x0, c.x1 }
func (c *Pcal) Equation() PcalEquation      { return c.equation }
func (c *Pcal) UnitName() string            { return c.unitName }

// Params returns the equation parameters in ASCII representation. Callers
// must not modify the slice.
func (c *Pcal) Params() []string { return c.params }

func (c *Pcal) WriteData(w *Writer) error {
	if err := w.WriteStringNul(c.calibrationName); err != nil {
		return err
	}
	if err := w.WriteInt32(c.x0); err != nil {
		return err
	}
	if err := w.WriteInt32(c.x1); err != nil {
		return err
	}
	if err := w.WriteUint8(uint8(c.equation)); err != nil {
		return err
	}
	if err := w.WriteUint8(uint8(len(c.params))); err != nil {
		return err
	}
	if err := w.WriteString(c.unitName); err != nil {
		return err
	}
	for _, p := range c.params {
		if err := w.WriteUint8(0); err != nil {
			return err
		}
		if err := w.WriteString(p); err != nil {
			return err
		}
	}
	return nil
}

// SterMode is the sTER layout mode.
type SterMode uint8

const (
	SterCrossFuse SterMode = iota
	SterDivergingFuse

	numSterModes
)

// Ster is the stereo indicator chunk: a single enumerated layout mode.
type Ster struct {
	mode SterMode
}

// NewSter validates the layout mode.
func NewSter(mode SterMode) (*Ster, error) {
	if mode >= numSterModes {
		return nil, Errorf(KindFieldRange, "sTER: unrecognized mode %d", mode)
	}
	return &Ster{mode: mode}, nil
}

func decodeSter(r *Reader) (Chunk, error) {
	mode, err := r.ReadEnum(int(numSterModes))
	if err != nil {
		return nil, err
	}
	return &Ster{mode: SterMode(mode)}, nil
}

func (c *Ster) Type() Type { return TypeSter }

func (c *Ster) Mode() SterMode { return c.mode }

func (c *Ster) WriteData(w *Writer) error {
	return w.WriteUint8(uint8(c.mode))
}
