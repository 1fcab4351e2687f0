package chunk

import (
	"bytes"
	"testing"
	"time"
)

func TestTime_RoundTrip(t *testing.T) {
	c, err := NewTime(2024, 6, 15, 23, 59, 60)
	if err != nil {
		t.Fatalf("NewTime failed: %v", err)
	}

	decoded := roundTrip(t, c).(*Time)
	if decoded.Year() != 2024 || decoded.Month() != 6 || decoded.Day() != 15 {
		t.Errorf("date: got %d-%d-%d", decoded.Year(), decoded.Month(), decoded.Day())
	}
	if decoded.Hour() != 23 || decoded.Minute() != 59 || decoded.Second() != 60 {
		t.Errorf("time: got %d:%d:%d", decoded.Hour(), decoded.Minute(), decoded.Second())
	}
}

func TestNewTime_Invalid(t *testing.T) {
	testCases := []struct {
		name     string
		y, mo, d int
		h, mi, s int
	}{
		{"negative year", -1, 1, 1, 0, 0, 0},
		{"year too large", 32768, 1, 1, 0, 0, 0},
		{"month zero", 2024, 0, 1, 0, 0, 0},
		{"month thirteen", 2024, 13, 1, 0, 0, 0},
		{"day zero", 2024, 1, 0, 0, 0, 0},
		{"day 32", 2024, 1, 32, 0, 0, 0},
		{"hour 24", 2024, 1, 1, 24, 0, 0},
		{"minute 60", 2024, 1, 1, 0, 60, 0},
		{"second 61", 2024, 1, 1, 0, 0, 61},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewTime(tc.y, tc.mo, tc.d, tc.h, tc.mi, tc.s)
			if !IsKind(err, KindFieldRange) {
				t.Fatalf("got %v, want field range error", err)
			}
		})
	}
}

func TestNewTimeFromGo(t *testing.T) {
	// A non-UTC time must be converted, not rejected.
	loc := time.FixedZone("UTC+9", 9*3600)
	c, err := NewTimeFromGo(time.Date(2024, 1, 1, 2, 30, 0, 0, loc))
	if err != nil {
		t.Fatalf("NewTimeFromGo failed: %v", err)
	}
	if c.Year() != 2023 || c.Month() != 12 || c.Day() != 31 || c.Hour() != 17 {
		t.Errorf("UTC conversion: got %d-%d-%d %d:00", c.Year(), c.Month(), c.Day(), c.Hour())
	}
}

func TestSplt_RoundTrip(t *testing.T) {
	t.Run("8-bit entries", func(t *testing.T) {
		// Two 6-byte entries.
		data := make([]byte, 12)
		c, err := NewSplt("pastel", 8, data)
		if err != nil {
			t.Fatalf("NewSplt failed: %v", err)
		}
		decoded := roundTrip(t, c).(*Splt)
		if decoded.PaletteName() != "pastel" || decoded.SampleDepth() != 8 {
			t.Errorf("got name %q, depth %d", decoded.PaletteName(), decoded.SampleDepth())
		}
		if decoded.NumEntries() != 2 {
			t.Errorf("entries: got %d, want 2", decoded.NumEntries())
		}
	})

	t.Run("16-bit entries", func(t *testing.T) {
		// Three 10-byte entries.
		data := make([]byte, 30)
		c, err := NewSplt("hdr", 16, data)
		if err != nil {
			t.Fatalf("NewSplt failed: %v", err)
		}
		decoded := roundTrip(t, c).(*Splt)
		if decoded.NumEntries() != 3 {
			t.Errorf("entries: got %d, want 3", decoded.NumEntries())
		}
	})

	t.Run("empty entry list", func(t *testing.T) {
		if _, err := NewSplt("empty", 8, nil); err != nil {
			t.Fatalf("zero entries rejected: %v", err)
		}
	})
}

func TestNewSplt_Invalid(t *testing.T) {
	if _, err := NewSplt("p", 12, nil); !IsKind(err, KindFieldRange) {
		t.Errorf("depth 12: got %v", err)
	}
	if _, err := NewSplt("p", 8, make([]byte, 7)); !IsKind(err, KindFieldRange) {
		t.Errorf("7 bytes at depth 8: got %v", err)
	}
	if _, err := NewSplt("p", 16, make([]byte, 6)); !IsKind(err, KindFieldRange) {
		t.Errorf("6 bytes at depth 16: got %v", err)
	}
	if _, err := NewSplt("", 8, nil); !IsKind(err, KindFieldRange) {
		t.Errorf("empty name: got %v", err)
	}
}

func TestExifDsig_RoundTrip(t *testing.T) {
	payload := []byte{0x4D, 0x4D, 0x00, 0x2A}

	exif, err := NewExif(payload)
	if err != nil {
		t.Fatalf("NewExif failed: %v", err)
	}
	if got := roundTrip(t, exif).(*Exif); !bytes.Equal(got.Data(), payload) {
		t.Errorf("eXIf data: got % x", got.Data())
	}

	dsig, err := NewDsig(payload)
	if err != nil {
		t.Fatalf("NewDsig failed: %v", err)
	}
	if got := roundTrip(t, dsig).(*Dsig); !bytes.Equal(got.Data(), payload) {
		t.Errorf("dSIG data: got % x", got.Data())
	}
}

func TestIend_RoundTrip(t *testing.T) {
	decoded := roundTrip(t, Iend{})
	if _, ok := decoded.(Iend); !ok {
		t.Fatalf("decoded type: got %T, want Iend", decoded)
	}

	n, err := DataLength(Iend{})
	if err != nil || n != 0 {
		t.Errorf("IEND data length: got (%d, %v)", n, err)
	}
}

func TestDecodeIend_RejectsPayload(t *testing.T) {
	raw := frame(t, "IEND", []byte{0x00})
	if _, err := Read(bytes.NewReader(raw)); err == nil {
		t.Fatal("IEND with payload accepted")
	}
}

func TestIdat_RoundTrip(t *testing.T) {
	payload := bytes.Repeat([]byte{0xAB}, 100)
	c, err := NewIdat(payload)
	if err != nil {
		t.Fatalf("NewIdat failed: %v", err)
	}
	decoded := roundTrip(t, c).(*Idat)
	if !bytes.Equal(decoded.Data(), payload) {
		t.Errorf("data mismatch")
	}

	// Empty IDAT frames are legal.
	empty, err := NewIdat(nil)
	if err != nil {
		t.Fatalf("NewIdat(nil) failed: %v", err)
	}
	roundTrip(t, empty)
}
