package chunk

import (
	"encoding/binary"
	"hash"
	"hash/crc32"
	"io"
)

// MaxDataLength is the largest data payload a single chunk may carry.
const MaxDataLength = 1<<31 - 1

// Reader decodes one chunk frame: a 4-byte big-endian length, a 4-letter
// type code, the data payload, and a trailing CRC-32 over type+data. It is
// handed to the codec for the chunk's type, which must consume exactly the
// declared number of data bytes; Finish then verifies consumption and the
// CRC. Reads are forward-only and complete-or-fail.
type Reader struct {
	r         io.Reader
	crc       hash.Hash32
	typ       Type
	dataLen   int
	remaining int
}

// NewReader reads the length and type fields of the next frame from r.
// A clean end of stream before the first length byte returns io.EOF,
// signalling the end of the chunk sequence rather than an error.
func NewReader(r io.Reader) (*Reader, error) {
	var head [4]byte
	if _, err := io.ReadFull(r, head[:]); err != nil {
		if err == io.EOF {
			return nil, io.EOF
		}
		return nil, Errorf(KindFraming, "truncated length field: %v", err)
	}
	length := binary.BigEndian.Uint32(head[:])
	if length > MaxDataLength {
		return nil, Errorf(KindFraming, "data length %d exceeds maximum", length)
	}

	var rawType [4]byte
	if _, err := io.ReadFull(r, rawType[:]); err != nil {
		return nil, Errorf(KindFraming, "truncated type field: %v", err)
	}
	typ, err := MakeType(string(rawType[:]))
	if err != nil {
		return nil, err
	}

	crc := crc32.NewIEEE()
	crc.Write(rawType[:])
	return &Reader{
		r:         r,
		crc:       crc,
		typ:       typ,
		dataLen:   int(length),
		remaining: int(length),
	}, nil
}

// Type returns the type code of the frame being read.
func (r *Reader) Type() Type {
	return r.typ
}

// DataLength returns the declared length of the frame's data payload.
func (r *Reader) DataLength() int {
	return r.dataLen
}

// Remaining returns the number of unread data bytes in the frame.
func (r *Reader) Remaining() int {
	return r.remaining
}

// ReadFull fills buf from the frame's data region, feeding the CRC as a side
// effect. Requesting more bytes than remain in the frame is a framing error.
func (r *Reader) ReadFull(buf []byte) error {
	if len(buf) > r.remaining {
		return Errorf(KindFraming, "%s: read of %d bytes exceeds %d remaining", r.typ, len(buf), r.remaining)
	}
	if _, err := io.ReadFull(r.r, buf); err != nil {
		return Errorf(KindFraming, "%s: truncated data: %v", r.typ, err)
	}
	r.crc.Write(buf)
	r.remaining -= len(buf)
	return nil
}

// ReadBytes reads exactly n data bytes into a fresh slice.
func (r *Reader) ReadBytes(n int) ([]byte, error) {
	buf := make([]byte, n)
	if err := r.ReadFull(buf); err != nil {
		return nil, err
	}
	return buf, nil
}

// ReadRemaining reads all data bytes left in the frame.
func (r *Reader) ReadRemaining() ([]byte, error) {
	return r.ReadBytes(r.remaining)
}

// ReadUint8 reads one unsigned byte.
func (r *Reader) ReadUint8() (uint8, error) {
	var b [1]byte
	if err := r.ReadFull(b[:]); err != nil {
		return 0, err
	}
	return b[0], nil
}

// ReadUint16 reads a big-endian unsigned 16-bit integer.
func (r *Reader) ReadUint16() (uint16, error) {
	var b [2]byte
	if err := r.ReadFull(b[:]); err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint16(b[:]), nil
}

// ReadUint32 reads a big-endian unsigned 32-bit integer.
func (r *Reader) ReadUint32() (uint32, error) {
	var b [4]byte
	if err := r.ReadFull(b[:]); err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(b[:]), nil
}

// ReadInt32 reads a big-endian signed 32-bit integer.
func (r *Reader) ReadInt32() (int32, error) {
	v, err := r.ReadUint32()
	return int32(v), err
}

// ReadStringNul reads Latin-1 bytes up to and including the next NUL
// separator and returns them as a string, NUL excluded. Exhausting the
// frame's data before a NUL is found is a structural error.
func (r *Reader) ReadStringNul() (string, error) {
	var out []byte
	for {
		if r.remaining == 0 {
			return "", Errorf(KindStructural, "%s: missing expected NUL separator", r.typ)
		}
		b, err := r.ReadUint8()
		if err != nil {
			return "", err
		}
		if b == 0 {
			return latin1ToString(out), nil
		}
		out = append(out, b)
	}
}

// ReadEnum reads one byte and validates it as an index into an enumeration
// of the given cardinality.
func (r *Reader) ReadEnum(cardinality int) (int, error) {
	v, err := r.ReadUint8()
	if err != nil {
		return 0, err
	}
	if int(v) >= cardinality {
		return 0, Errorf(KindFieldRange, "%s: unrecognized enumeration value %d", r.typ, v)
	}
	return int(v), nil
}

// Finish asserts that the codec consumed exactly the declared data length,
// then reads the trailing CRC-32 field and compares it against the running
// value computed over type+data.
func (r *Reader) Finish() error {
	if r.remaining != 0 {
		return Errorf(KindFraming, "%s: codec left %d of %d data bytes unconsumed", r.typ, r.remaining, r.dataLen)
	}
	var stored [4]byte
	if _, err := io.ReadFull(r.r, stored[:]); err != nil {
		return Errorf(KindFraming, "%s: truncated CRC field: %v", r.typ, err)
	}
	if got, want := r.crc.Sum32(), binary.BigEndian.Uint32(stored[:]); got != want {
		return Errorf(KindIntegrity, "%s: CRC mismatch: computed %08x, stored %08x", r.typ, got, want)
	}
	return nil
}
