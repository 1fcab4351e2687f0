package chunk

import (
	"bytes"
	"testing"
)

func TestActl_RoundTrip(t *testing.T) {
	c, err := NewActl(10, 0)
	if err != nil {
		t.Fatalf("NewActl failed: %v", err)
	}

	decoded := roundTrip(t, c).(*Actl)
	if decoded.NumFrames() != 10 {
		t.Errorf("frames: got %d", decoded.NumFrames())
	}
	if decoded.NumPlays() != 0 {
		t.Errorf("plays: got %d", decoded.NumPlays())
	}
}

func TestNewActl_Invalid(t *testing.T) {
	if _, err := NewActl(0, 0); !IsKind(err, KindFieldRange) {
		t.Errorf("zero frames: got %v", err)
	}
	if _, err := NewActl(-1, 0); !IsKind(err, KindFieldRange) {
		t.Errorf("negative frames: got %v", err)
	}
	if _, err := NewActl(1, -1); !IsKind(err, KindFieldRange) {
		t.Errorf("negative plays: got %v", err)
	}
}

func TestFctl_RoundTrip(t *testing.T) {
	c, err := NewFctl(3, 100, 50, 10, 20, 1, 30, DisposePrevious, BlendOver)
	if err != nil {
		t.Fatalf("NewFctl failed: %v", err)
	}

	n, err := DataLength(c)
	if err != nil {
		t.Fatalf("DataLength failed: %v", err)
	}
	if n != 26 {
		t.Errorf("data length: got %d, want 26", n)
	}

	decoded := roundTrip(t, c).(*Fctl)
	if decoded.SequenceNumber() != 3 {
		t.Errorf("sequence: got %d", decoded.SequenceNumber())
	}
	if w, h := decoded.FrameSize(); w != 100 || h != 50 {
		t.Errorf("frame size: got %dx%d", w, h)
	}
	if x, y := decoded.Offset(); x != 10 || y != 20 {
		t.Errorf("offset: got (%d, %d)", x, y)
	}
	if num, den := decoded.Delay(); num != 1 || den != 30 {
		t.Errorf("delay: got %d/%d", num, den)
	}
	if decoded.DisposeOp() != DisposePrevious {
		t.Errorf("dispose op: got %d", decoded.DisposeOp())
	}
	if decoded.BlendOp() != BlendOver {
		t.Errorf("blend op: got %d", decoded.BlendOp())
	}
}

func TestNewFctl_Invalid(t *testing.T) {
	testCases := []struct {
		name                  string
		seq, w, h, xOff, yOff int32
		dispose               DisposeOp
		blend                 BlendOp
	}{
		{"negative sequence", -1, 1, 1, 0, 0, DisposeNone, BlendSource},
		{"zero width", 0, 0, 1, 0, 0, DisposeNone, BlendSource},
		{"zero height", 0, 1, 0, 0, 0, DisposeNone, BlendSource},
		{"negative x offset", 0, 1, 1, -1, 0, DisposeNone, BlendSource},
		{"negative y offset", 0, 1, 1, 0, -1, DisposeNone, BlendSource},
		{"bad dispose op", 0, 1, 1, 0, 0, DisposeOp(3), BlendSource},
		{"bad blend op", 0, 1, 1, 0, 0, DisposeNone, BlendOp(2)},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewFctl(tc.seq, tc.w, tc.h, tc.xOff, tc.yOff, 1, 10, tc.dispose, tc.blend)
			if !IsKind(err, KindFieldRange) {
				t.Fatalf("got %v, want field range error", err)
			}
		})
	}
}

func TestFdat_RoundTrip(t *testing.T) {
	payload := []byte{0x01, 0x02, 0x03}
	c, err := NewFdat(7, payload)
	if err != nil {
		t.Fatalf("NewFdat failed: %v", err)
	}

	decoded := roundTrip(t, c).(*Fdat)
	if decoded.SequenceNumber() != 7 {
		t.Errorf("sequence: got %d", decoded.SequenceNumber())
	}
	if !bytes.Equal(decoded.Data(), payload) {
		t.Errorf("data: got % x", decoded.Data())
	}
}

func TestDecodeFdat_TooShort(t *testing.T) {
	// The payload must at least hold the 4-byte sequence number.
	raw := frame(t, "fdAT", []byte{0x00, 0x00})
	if _, err := Read(bytes.NewReader(raw)); err == nil {
		t.Fatal("2-byte fdAT accepted")
	}
}
