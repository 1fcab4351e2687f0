package chunk

import (
	"bytes"
	"testing"
)

func TestGifg_RoundTrip(t *testing.T) {
	c, err := NewGifg(3, true, 500)
	if err != nil {
		t.Fatalf("NewGifg failed: %v", err)
	}

	decoded := roundTrip(t, c).(*Gifg)
	if decoded.DisposalMethod() != 3 {
		t.Errorf("disposal: got %d", decoded.DisposalMethod())
	}
	if !decoded.UserInputFlag() {
		t.Error("user input flag lost")
	}
	if decoded.DelayTime() != 500 {
		t.Errorf("delay: got %d", decoded.DelayTime())
	}

	if _, err := NewGifg(8, false, 0); !IsKind(err, KindFieldRange) {
		t.Errorf("disposal 8: got %v", err)
	}
}

func TestGift_RoundTrip(t *testing.T) {
	text := []byte("plain text extension")
	c, err := NewGift(-10, 20, 300, 100, 8, 16, 1, 0, text)
	if err != nil {
		t.Fatalf("NewGift failed: %v", err)
	}

	decoded := roundTrip(t, c).(*Gift)
	left, top, width, height := decoded.Grid()
	if left != -10 || top != 20 || width != 300 || height != 100 {
		t.Errorf("grid: got (%d, %d, %d, %d)", left, top, width, height)
	}
	if w, h := decoded.CellSize(); w != 8 || h != 16 {
		t.Errorf("cell size: got %dx%d", w, h)
	}
	if fg, bg := decoded.Colors(); fg != 1 || bg != 0 {
		t.Errorf("colors: got fg %d, bg %d", fg, bg)
	}
	if !bytes.Equal(decoded.TextBytes(), text) {
		t.Errorf("text: got %q", decoded.TextBytes())
	}

	if _, err := NewGift(0, 0, -1, 1, 0, 0, 0, 0, nil); !IsKind(err, KindFieldRange) {
		t.Errorf("negative grid width: got %v", err)
	}
}

func TestGifx_RoundTrip(t *testing.T) {
	c, err := NewGifx([]byte("NETSCAPE"), []byte("2.0"), []byte{0x01, 0x00, 0x00})
	if err != nil {
		t.Fatalf("NewGifx failed: %v", err)
	}

	decoded := roundTrip(t, c).(*Gifx)
	if !bytes.Equal(decoded.ApplicationID(), []byte("NETSCAPE")) {
		t.Errorf("application ID: got %q", decoded.ApplicationID())
	}
	if !bytes.Equal(decoded.AuthenticationCode(), []byte("2.0")) {
		t.Errorf("authentication code: got %q", decoded.AuthenticationCode())
	}
	if !bytes.Equal(decoded.ApplicationData(), []byte{0x01, 0x00, 0x00}) {
		t.Errorf("application data: got % x", decoded.ApplicationData())
	}
}

func TestNewGifx_FixedFieldLengths(t *testing.T) {
	if _, err := NewGifx([]byte("SHORT"), []byte("2.0"), nil); !IsKind(err, KindFieldRange) {
		t.Errorf("5-byte application ID: got %v", err)
	}
	if _, err := NewGifx([]byte("NETSCAPE"), []byte("2.00"), nil); !IsKind(err, KindFieldRange) {
		t.Errorf("4-byte authentication code: got %v", err)
	}
}

func TestDecodeGifx_TruncatedFixedFields(t *testing.T) {
	// 10 bytes cannot hold the 8-byte ID plus 3-byte code.
	raw := frame(t, "gIFx", make([]byte, 10))
	if _, err := Read(bytes.NewReader(raw)); err == nil {
		t.Fatal("10-byte gIFx accepted")
	}
}
