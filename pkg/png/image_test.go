package png

import (
	"bytes"
	"testing"

	"github.com/aexlab51/PNG-library/pkg/chunk"
)

func mustText(t *testing.T, keyword, text string) *chunk.Text {
	t.Helper()
	c, err := chunk.NewText(keyword, text)
	if err != nil {
		t.Fatalf("NewText failed: %v", err)
	}
	return c
}

func TestImageFromChunks_Valid(t *testing.T) {
	header := mustIhdr(t)
	meta := mustText(t, "Software", "pngtool")
	trailer := mustText(t, "Comment", "after data")
	dataA := mustIdat(t, []byte{0x01})
	dataB := mustIdat(t, []byte{0x02})

	img, err := ImageFromChunks([]chunk.Chunk{
		header, meta, dataA, dataB, trailer, chunk.Iend{},
	})
	if err != nil {
		t.Fatalf("ImageFromChunks failed: %v", err)
	}

	if img.Header != header {
		t.Error("header not captured")
	}
	if len(img.BeforeData) != 1 || img.BeforeData[0] != meta {
		t.Errorf("before-data: got %d chunks", len(img.BeforeData))
	}
	if len(img.Data) != 2 {
		t.Fatalf("data run: got %d chunks, want 2", len(img.Data))
	}
	if len(img.AfterData) != 1 || img.AfterData[0] != trailer {
		t.Errorf("after-data: got %d chunks", len(img.AfterData))
	}
}

func TestImageFromChunks_Invalid(t *testing.T) {
	header := mustIhdr(t)
	meta := mustText(t, "Software", "pngtool")
	dataA := mustIdat(t, []byte{0x01})
	dataB := mustIdat(t, []byte{0x02})

	testCases := []struct {
		name   string
		chunks []chunk.Chunk
	}{
		{"data run interrupted", []chunk.Chunk{header, dataA, meta, dataB, chunk.Iend{}}},
		{"data before header", []chunk.Chunk{dataA, header, chunk.Iend{}}},
		{"metadata before header", []chunk.Chunk{meta, header, dataA, chunk.Iend{}}},
		{"chunk after terminator", []chunk.Chunk{header, dataA, chunk.Iend{}, meta}},
		{"no data", []chunk.Chunk{header, chunk.Iend{}}},
		{"no header", []chunk.Chunk{dataA, chunk.Iend{}}},
		{"duplicate header", []chunk.Chunk{header, header, dataA, chunk.Iend{}}},
		{"missing terminator", []chunk.Chunk{header, dataA}},
		{"empty sequence", nil},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := ImageFromChunks(tc.chunks); !chunk.IsKind(err, chunk.KindStructural) {
				t.Fatalf("got %v, want structural error", err)
			}
		})
	}
}

func TestImage_Chunks_AppendsTerminator(t *testing.T) {
	img := &Image{
		Header: mustIhdr(t),
		Data:   []*chunk.Idat{mustIdat(t, []byte{0x00})},
	}

	chunks, err := img.Chunks()
	if err != nil {
		t.Fatalf("Chunks failed: %v", err)
	}
	if len(chunks) != 3 {
		t.Fatalf("got %d chunks, want 3", len(chunks))
	}
	if chunks[len(chunks)-1].Type() != chunk.TypeIend {
		t.Errorf("final chunk: got %s, want IEND", chunks[len(chunks)-1].Type())
	}
}

func TestImage_Chunks_Incomplete(t *testing.T) {
	noHeader := &Image{Data: []*chunk.Idat{mustIdat(t, nil)}}
	if _, err := noHeader.Chunks(); !chunk.IsKind(err, chunk.KindStructural) {
		t.Errorf("missing header: got %v", err)
	}

	noData := &Image{Header: mustIhdr(t)}
	if _, err := noData.Chunks(); !chunk.IsKind(err, chunk.KindStructural) {
		t.Errorf("missing data: got %v", err)
	}
}

func TestImage_WriteReadRoundTrip(t *testing.T) {
	img := &Image{
		Header:     mustIhdr(t),
		BeforeData: []chunk.Chunk{mustText(t, "Software", "pngtool")},
		Data:       []*chunk.Idat{mustIdat(t, []byte{0x00, 0x01, 0x02})},
	}

	var buf bytes.Buffer
	if err := img.WriteTo(&buf); err != nil {
		t.Fatalf("WriteTo failed: %v", err)
	}

	parsed, err := ReadImage(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("ReadImage failed: %v", err)
	}
	if parsed.Header.Width() != 1 || parsed.Header.Height() != 1 {
		t.Errorf("header: got %dx%d", parsed.Header.Width(), parsed.Header.Height())
	}
	if len(parsed.BeforeData) != 1 || len(parsed.Data) != 1 {
		t.Errorf("layout: %d before, %d data", len(parsed.BeforeData), len(parsed.Data))
	}
	text, ok := parsed.BeforeData[0].(*chunk.Text)
	if !ok || text.Text() != "pngtool" {
		t.Errorf("metadata lost: %T", parsed.BeforeData[0])
	}
}

func TestReadImage_RejectsMNG(t *testing.T) {
	var buf bytes.Buffer
	buf.Write(ContainerMNG.Signature())
	if err := chunk.Write(&buf, chunk.Iend{}); err != nil {
		t.Fatal(err)
	}

	if _, err := ReadImage(&buf); !chunk.IsKind(err, chunk.KindStructural) {
		t.Fatalf("got %v, want structural error", err)
	}
}
