package chunk

import (
	"bytes"
	"strings"
	"testing"
)

func TestText_RoundTrip(t *testing.T) {
	c, err := NewText("Comment", "first line\nsecond line")
	if err != nil {
		t.Fatalf("NewText failed: %v", err)
	}

	decoded := roundTrip(t, c).(*Text)
	if decoded.Keyword() != "Comment" {
		t.Errorf("keyword: got %q", decoded.Keyword())
	}
	if decoded.Text() != "first line\nsecond line" {
		t.Errorf("text: got %q", decoded.Text())
	}
}

func TestNewText_Invalid(t *testing.T) {
	if _, err := NewText("", "text"); !IsKind(err, KindFieldRange) {
		t.Errorf("empty keyword: got %v", err)
	}
	if _, err := NewText("Comment", "tab\there"); !IsKind(err, KindFieldRange) {
		t.Errorf("control character in text: got %v", err)
	}
}

func TestDecodeText_MissingSeparator(t *testing.T) {
	raw := frame(t, "tEXt", []byte("keyword without separator"))
	if _, err := Read(bytes.NewReader(raw)); !IsKind(err, KindStructural) {
		t.Fatalf("got %v, want structural error", err)
	}
}

func TestZtxt_RoundTrip(t *testing.T) {
	long := strings.Repeat("compressed text payload ", 100)
	c, err := NewZtxtText("Description", long)
	if err != nil {
		t.Fatalf("NewZtxtText failed: %v", err)
	}

	// Compression must pay for itself on repetitive text.
	n, err := DataLength(c)
	if err != nil {
		t.Fatalf("DataLength failed: %v", err)
	}
	if n >= len(long) {
		t.Errorf("encoded size %d not smaller than text %d", n, len(long))
	}

	decoded := roundTrip(t, c).(*Ztxt)
	got, err := decoded.Text()
	if err != nil {
		t.Fatalf("Text failed: %v", err)
	}
	if got != long {
		t.Error("text mismatch after round trip")
	}
}

func TestZtxt_CorruptPayload(t *testing.T) {
	c, err := NewZtxt("Description", CompressionZlibDeflate, []byte("not a zlib stream"))
	if err != nil {
		t.Fatalf("NewZtxt failed: %v", err)
	}
	// The corrupt stream survives framing; only Text fails.
	decoded := roundTrip(t, c).(*Ztxt)
	if _, err := decoded.Text(); !IsKind(err, KindDecompression) {
		t.Fatalf("got %v, want decompression error", err)
	}
}

func TestDecodeZtxt_BadMethod(t *testing.T) {
	raw := frame(t, "zTXt", []byte("kw\x00\x01data"))
	if _, err := Read(bytes.NewReader(raw)); !IsKind(err, KindFieldRange) {
		t.Fatalf("method 1: got %v, want field range error", err)
	}
}

func TestItxt_RoundTrip(t *testing.T) {
	testCases := []struct {
		name     string
		compress bool
	}{
		{"uncompressed", false},
		{"compressed", true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c, err := NewItxtText("Title", "ja-JP", "題名", tc.compress, "こんにちは")
			if err != nil {
				t.Fatalf("NewItxtText failed: %v", err)
			}

			decoded := roundTrip(t, c).(*Itxt)
			if decoded.Keyword() != "Title" {
				t.Errorf("keyword: got %q", decoded.Keyword())
			}
			if decoded.LanguageTag() != "ja-JP" {
				t.Errorf("language tag: got %q", decoded.LanguageTag())
			}
			if decoded.TranslatedKeyword() != "題名" {
				t.Errorf("translated keyword: got %q", decoded.TranslatedKeyword())
			}
			if decoded.Compressed() != tc.compress {
				t.Errorf("compressed flag: got %v", decoded.Compressed())
			}
			got, err := decoded.Text()
			if err != nil {
				t.Fatalf("Text failed: %v", err)
			}
			if got != "こんにちは" {
				t.Errorf("text: got %q", got)
			}
		})
	}
}

func TestCheckLanguageTag(t *testing.T) {
	valid := []string{"", "en", "en-US", "x-klingon", "zh-Hant-TW", "abcdefgh"}
	for _, tag := range valid {
		if err := checkLanguageTag(tag); err != nil {
			t.Errorf("checkLanguageTag(%q) failed: %v", tag, err)
		}
	}

	invalid := []string{"-en", "en-", "en--US", "abcdefghi", "en_US", "en US", "én"}
	for _, tag := range invalid {
		if err := checkLanguageTag(tag); err == nil {
			t.Errorf("checkLanguageTag(%q) succeeded, want error", tag)
		}
	}
}

func TestNewItxt_InvalidUTF8(t *testing.T) {
	if _, err := NewItxt("Title", "en", "ok", false, CompressionZlibDeflate, []byte{0xFF, 0xFE}); !IsKind(err, KindFieldRange) {
		t.Errorf("invalid UTF-8 text: got %v", err)
	}
	if _, err := NewItxt("Title", "en", string([]byte{0xFF}), false, CompressionZlibDeflate, nil); !IsKind(err, KindFieldRange) {
		t.Errorf("invalid UTF-8 translated keyword: got %v", err)
	}
}
