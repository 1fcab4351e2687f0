package png

import (
	"io"

	"github.com/aexlab51/PNG-library/pkg/chunk"
)

// Image is the validated PNG view over a flat chunk sequence: the single
// header, the chunks before the data run, the contiguous IDAT run, and the
// chunks after it. IEND is implicit; it is appended on serialization and
// never stored in the lists. The collections may be mutated between parse
// and re-serialization; invariants are re-checked on write.
type Image struct {
	Header     *chunk.Ihdr
	BeforeData []chunk.Chunk
	Data       []*chunk.Idat
	AfterData  []chunk.Chunk
}

// assemblyState is the classifier state while walking the chunk sequence.
type assemblyState int

const (
	expectHeader assemblyState = iota
	beforeData
	inData
	afterData
	done
)

// ImageFromChunks classifies a flat chunk sequence into an Image, enforcing
// the document invariants: the header first, at least one IDAT, all IDATs
// contiguous, and exactly one IEND in final position.
func ImageFromChunks(chunks []chunk.Chunk) (*Image, error) {
	img := &Image{}
	state := expectHeader
	for i, c := range chunks {
		if state == done {
			return nil, chunk.Errorf(chunk.KindStructural, "chunk %s at position %d after IEND", c.Type(), i)
		}
		if c.Type() == chunk.TypeIend {
			state = done
			continue
		}
		switch c := c.(type) {
		case *chunk.Ihdr:
			if state != expectHeader {
				return nil, chunk.Errorf(chunk.KindStructural, "duplicate IHDR at position %d", i)
			}
			img.Header = c
			state = beforeData
		case *chunk.Idat:
			switch state {
			case expectHeader:
				return nil, chunk.Errorf(chunk.KindStructural, "IDAT at position %d before IHDR", i)
			case beforeData, inData:
				img.Data = append(img.Data, c)
				state = inData
			case afterData:
				return nil, chunk.Errorf(chunk.KindStructural, "IDAT at position %d breaks the contiguous data run", i)
			}
		default:
			switch state {
			case expectHeader:
				return nil, chunk.Errorf(chunk.KindStructural, "chunk %s at position %d before IHDR", c.Type(), i)
			case beforeData:
				img.BeforeData = append(img.BeforeData, c)
			case inData:
				state = afterData
				img.AfterData = append(img.AfterData, c)
			case afterData:
				img.AfterData = append(img.AfterData, c)
			}
		}
	}
	if state != done {
		return nil, chunk.Errorf(chunk.KindStructural, "missing IEND terminator")
	}
	if img.Header == nil {
		return nil, chunk.Errorf(chunk.KindStructural, "missing IHDR")
	}
	if len(img.Data) == 0 {
		return nil, chunk.Errorf(chunk.KindStructural, "missing IDAT")
	}
	return img, nil
}

// Chunks flattens the document back into the chunk sequence: header, the
// before-data chunks, the data run, the after-data chunks, and the implicit
// IEND terminator.
func (img *Image) Chunks() ([]chunk.Chunk, error) {
	if img.Header == nil {
		return nil, chunk.Errorf(chunk.KindStructural, "missing IHDR")
	}
	if len(img.Data) == 0 {
		return nil, chunk.Errorf(chunk.KindStructural, "missing IDAT")
	}
	out := make([]chunk.Chunk, 0, 2+len(img.BeforeData)+len(img.Data)+len(img.AfterData))
	out = append(out, img.Header)
	out = append(out, img.BeforeData...)
	for _, d := range img.Data {
		out = append(out, d)
	}
	out = append(out, img.AfterData...)
	return append(out, chunk.Iend{}), nil
}

// ReadImage parses a PNG stream and validates it into an Image. A valid
// MNG or JNG stream is rejected here: only the PNG vocabulary forms an
// Image.
func ReadImage(r io.Reader) (*Image, error) {
	f, err := ReadFile(r)
	if err != nil {
		return nil, err
	}
	if f.Type != ContainerPNG {
		return nil, chunk.Errorf(chunk.KindStructural, "container type %s is not PNG", f.Type)
	}
	return ImageFromChunks(f.Chunks)
}

// WriteTo validates the document and serializes the signature and chunks
// to w.
func (img *Image) WriteTo(w io.Writer) error {
	chunks, err := img.Chunks()
	if err != nil {
		return err
	}
	f := &File{Type: ContainerPNG, Chunks: chunks}
	return f.WriteTo(w)
}
