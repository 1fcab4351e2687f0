package chunk

import (
	"bytes"
	"math"
	"testing"
)

func TestPhys_RoundTrip(t *testing.T) {
	c, err := NewPhys(2835, 2835, PhysUnitMetre)
	if err != nil {
		t.Fatalf("NewPhys failed: %v", err)
	}

	decoded := roundTrip(t, c).(*Phys)
	x, y := decoded.PixelsPerUnit()
	if x != 2835 || y != 2835 {
		t.Errorf("pixels per unit: got %d, %d", x, y)
	}
	if decoded.Unit() != PhysUnitMetre {
		t.Errorf("unit: got %d", decoded.Unit())
	}
}

func TestNewPhys_Invalid(t *testing.T) {
	if _, err := NewPhys(0, 1, PhysUnitUnknown); !IsKind(err, KindFieldRange) {
		t.Errorf("zero density: got %v", err)
	}
	if _, err := NewPhys(1, 1, PhysUnit(2)); !IsKind(err, KindFieldRange) {
		t.Errorf("unit 2: got %v", err)
	}
}

func TestOffs_RoundTrip(t *testing.T) {
	c, err := NewOffs(-500, 300, OffsUnitMicrometre)
	if err != nil {
		t.Fatalf("NewOffs failed: %v", err)
	}

	decoded := roundTrip(t, c).(*Offs)
	x, y := decoded.Position()
	if x != -500 || y != 300 {
		t.Errorf("position: got (%d, %d)", x, y)
	}
	if decoded.Unit() != OffsUnitMicrometre {
		t.Errorf("unit: got %d", decoded.Unit())
	}
}

func TestNewOffs_Invalid(t *testing.T) {
	if _, err := NewOffs(math.MinInt32, 0, OffsUnitPixel); !IsKind(err, KindFieldRange) {
		t.Errorf("minimum int32 position: got %v", err)
	}
	if _, err := NewOffs(0, 0, OffsUnit(2)); !IsKind(err, KindFieldRange) {
		t.Errorf("unit 2: got %v", err)
	}
}

func TestScal_RoundTrip(t *testing.T) {
	c, err := NewScal(ScalUnitMetre, "0.01", "2.5e-2")
	if err != nil {
		t.Fatalf("NewScal failed: %v", err)
	}

	decoded := roundTrip(t, c).(*Scal)
	if decoded.Unit() != ScalUnitMetre {
		t.Errorf("unit: got %d", decoded.Unit())
	}
	w, h := decoded.PixelSize()
	if w != "0.01" || h != "2.5e-2" {
		t.Errorf("pixel size strings: got %q, %q", w, h)
	}
	fw, fh, err := decoded.PixelSizeFloat()
	if err != nil {
		t.Fatalf("PixelSizeFloat failed: %v", err)
	}
	if fw != 0.01 || fh != 0.025 {
		t.Errorf("pixel size floats: got %g, %g", fw, fh)
	}
}

func TestNewScal_Invalid(t *testing.T) {
	testCases := []struct {
		name          string
		unit          ScalUnit
		width, height string
	}{
		{"unit zero", 0, "1", "1"},
		{"unit three", 3, "1", "1"},
		{"zero width", ScalUnitMetre, "0", "1"},
		{"negative height", ScalUnitRadian, "1", "-2"},
		{"malformed float", ScalUnitMetre, "1x", "1"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := NewScal(tc.unit, tc.width, tc.height); !IsKind(err, KindFieldRange) {
				t.Fatalf("got %v, want field range error", err)
			}
		})
	}
}

func TestDecodeScal_UnitOnWire(t *testing.T) {
	// The wire encoding uses 1 and 2, not a zero-based index.
	raw := frame(t, "sCAL", []byte{0x00, '1', 0x00, '1'})
	if _, err := Read(bytes.NewReader(raw)); !IsKind(err, KindFieldRange) {
		t.Fatalf("unit byte 0: got %v, want field range error", err)
	}
}

func TestPcal_RoundTrip(t *testing.T) {
	c, err := NewPcal("Temperature", 0, 255, PcalLinear, "kelvin", []string{"273.15", "0.5"})
	if err != nil {
		t.Fatalf("NewPcal failed: %v", err)
	}

	decoded := roundTrip(t, c).(*Pcal)
	if decoded.CalibrationName() != "Temperature" {
		t.Errorf("name: got %q", decoded.CalibrationName())
	}
	x0, x1 := decoded.SampleRange()
	if x0 != 0 || x1 != 255 {
		t.Errorf("sample range: got [%d, %d]", x0, x1)
	}
	if decoded.Equation() != PcalLinear {
		t.Errorf("equation: got %d", decoded.Equation())
	}
	if decoded.UnitName() != "kelvin" {
		t.Errorf("unit name: got %q", decoded.UnitName())
	}
	params := decoded.Params()
	if len(params) != 2 || params[0] != "273.15" || params[1] != "0.5" {
		t.Errorf("params: got %q", params)
	}
}

func TestPcal_NegativeParamsAllowed(t *testing.T) {
	// Unlike sCAL, calibration parameters may be zero or negative.
	if _, err := NewPcal("Cal", -100, 100, PcalHyperbolic, "", []string{"-1.5", "0", "2", "1e-3"}); err != nil {
		t.Fatalf("NewPcal rejected negative parameter: %v", err)
	}
}

func TestNewPcal_Invalid(t *testing.T) {
	testCases := []struct {
		name     string
		x0, x1   int32
		equation PcalEquation
		params   []string
	}{
		{"empty sample range", 5, 5, PcalLinear, []string{"0", "1"}},
		{"bad equation", 0, 1, PcalEquation(4), []string{"0", "1"}},
		{"too few params", 0, 1, PcalLinear, []string{"0"}},
		{"too many params", 0, 1, PcalLinear, []string{"0", "1", "2"}},
		{"malformed param", 0, 1, PcalLinear, []string{"0", "one"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := NewPcal("Cal", tc.x0, tc.x1, tc.equation, "", tc.params); !IsKind(err, KindFieldRange) {
				t.Fatalf("got %v, want field range error", err)
			}
		})
	}
}

func TestSter_RoundTrip(t *testing.T) {
	c, err := NewSter(SterDivergingFuse)
	if err != nil {
		t.Fatalf("NewSter failed: %v", err)
	}

	decoded := roundTrip(t, c).(*Ster)
	if decoded.Mode() != SterDivergingFuse {
		t.Errorf("mode: got %d", decoded.Mode())
	}

	if _, err := NewSter(SterMode(2)); !IsKind(err, KindFieldRange) {
		t.Errorf("mode 2: got %v", err)
	}
}
