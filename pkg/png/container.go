package png

import (
	"bytes"
	"io"

	"github.com/aexlab51/PNG-library/pkg/chunk"
)

// ContainerType identifies the file family sharing the chunk framing
// protocol. The families differ in signature and permitted chunk
// vocabulary, not in framing.
type ContainerType int

const (
	ContainerPNG ContainerType = iota
	ContainerMNG
	ContainerJNG
)

var signatures = map[ContainerType][]byte{
	ContainerPNG: {0x89, 'P', 'N', 'G', '\r', '\n', 0x1A, '\n'},
	ContainerMNG: {0x8A, 'M', 'N', 'G', '\r', '\n', 0x1A, '\n'},
	ContainerJNG: {0x8B, 'J', 'N', 'G', '\r', '\n', 0x1A, '\n'},
}

func (t ContainerType) String() string {
	switch t {
	case ContainerPNG:
		return "PNG"
	case ContainerMNG:
		return "MNG"
	case ContainerJNG:
		return "JNG"
	default:
		return "unknown"
	}
}

// Signature returns the container family's 8-byte file signature.
func (t ContainerType) Signature() []byte {
	sig := signatures[t]
	out := make([]byte, len(sig))
	copy(out, sig)
	return out
}

// File is a parsed container file: a container-type tag plus the ordered
// chunk sequence. A well-formed file ends with exactly one IEND chunk.
type File struct {
	Type   ContainerType
	Chunks []chunk.Chunk
}

// ReadFile parses a complete container file from r: the 8-byte signature,
// then chunks until end of stream. The chunk sequence must terminate with
// exactly one IEND in final position.
func ReadFile(r io.Reader) (*File, error) {
	var sig [8]byte
	if _, err := io.ReadFull(r, sig[:]); err != nil {
		return nil, chunk.Errorf(chunk.KindFraming, "truncated signature: %v", err)
	}
	var ctype ContainerType
	found := false
	for t, want := range signatures {
		if bytes.Equal(sig[:], want) {
			ctype, found = t, true
			break
		}
	}
	if !found {
		return nil, chunk.Errorf(chunk.KindFraming, "unrecognized file signature % x", sig)
	}

	var chunks []chunk.Chunk
	for {
		c, err := chunk.Read(r)
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		chunks = append(chunks, c)
	}
	f := &File{Type: ctype, Chunks: chunks}
	if err := f.checkTerminator(); err != nil {
		return nil, err
	}
	return f, nil
}

// WriteTo serializes the signature and every chunk to w. The sequence is
// validated for a single, final IEND before any byte is written, so an
// invalid File never emits a partial stream.
func (f *File) WriteTo(w io.Writer) error {
	if err := f.checkTerminator(); err != nil {
		return err
	}
	if _, err := w.Write(f.Type.Signature()); err != nil {
		return err
	}
	for _, c := range f.Chunks {
		if err := chunk.Write(w, c); err != nil {
			return err
		}
	}
	return nil
}

func (f *File) checkTerminator() error {
	if len(f.Chunks) == 0 {
		return chunk.Errorf(chunk.KindStructural, "file contains no chunks")
	}
	for i, c := range f.Chunks {
		if c.Type() == chunk.TypeIend && i != len(f.Chunks)-1 {
			return chunk.Errorf(chunk.KindStructural, "IEND at position %d is not the final chunk", i)
		}
	}
	if last := f.Chunks[len(f.Chunks)-1]; last.Type() != chunk.TypeIend {
		return chunk.Errorf(chunk.KindStructural, "final chunk is %s, want IEND", last.Type())
	}
	return nil
}
