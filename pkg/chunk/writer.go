package chunk

import (
	"bytes"
	"encoding/binary"
	"hash/crc32"
	"io"
)

// Writer encodes one chunk frame. The data payload is buffered in full
// before framing, since the length field precedes the data on the wire;
// Close then emits length, type, data, and the CRC-32 over type+data in one
// pass. A Writer that is abandoned without Close writes nothing to the
// underlying sink, so a failed encode never leaves a partial frame behind.
type Writer struct {
	w      io.Writer
	typ    Type
	buf    bytes.Buffer
	closed bool
}

// NewWriter returns a frame writer for one chunk of the given type.
func NewWriter(w io.Writer, typ Type) *Writer {
	return &Writer{w: w, typ: typ}
}

// Write appends raw bytes to the data payload.
func (w *Writer) Write(p []byte) (int, error) {
	return w.buf.Write(p)
}

// WriteUint8 appends one unsigned byte.
func (w *Writer) WriteUint8(v uint8) error {
	return w.buf.WriteByte(v)
}

// WriteUint16 appends a big-endian unsigned 16-bit integer.
func (w *Writer) WriteUint16(v uint16) error {
	var b [2]byte
	binary.BigEndian.PutUint16(b[:], v)
	_, err := w.buf.Write(b[:])
	return err
}

// WriteUint32 appends a big-endian unsigned 32-bit integer.
func (w *Writer) WriteUint32(v uint32) error {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], v)
	_, err := w.buf.Write(b[:])
	return err
}

// WriteInt32 appends a big-endian signed 32-bit integer.
func (w *Writer) WriteInt32(v int32) error {
	return w.WriteUint32(uint32(v))
}

// WriteStringNul appends s as Latin-1 bytes followed by a NUL separator.
func (w *Writer) WriteStringNul(s string) error {
	if _, err := w.buf.Write(stringToLatin1(s)); err != nil {
		return err
	}
	return w.buf.WriteByte(0)
}

// WriteString appends s as Latin-1 bytes with no terminator.
func (w *Writer) WriteString(s string) error {
	_, err := w.buf.Write(stringToLatin1(s))
	return err
}

// Close frames the buffered payload and flushes the complete chunk to the
// sink. It fails without writing anything if the payload exceeds the
// maximum representable chunk length.
func (w *Writer) Close() error {
	if w.closed {
		return nil
	}
	if w.w == nil {
		return Errorf(KindFraming, "%s: writer has no sink", w.typ)
	}
	data := w.buf.Bytes()
	if len(data) > MaxDataLength {
		return Errorf(KindFraming, "%s: data length %d exceeds maximum", w.typ, len(data))
	}

	crc := crc32.NewIEEE()
	crc.Write([]byte(w.typ))
	crc.Write(data)

	var head [8]byte
	binary.BigEndian.PutUint32(head[:4], uint32(len(data)))
	copy(head[4:], w.typ)
	if _, err := w.w.Write(head[:]); err != nil {
		return err
	}
	if _, err := w.w.Write(data); err != nil {
		return err
	}
	var tail [4]byte
	binary.BigEndian.PutUint32(tail[:], crc.Sum32())
	if _, err := w.w.Write(tail[:]); err != nil {
		return err
	}
	w.closed = true
	return nil
}

// Write frames and writes a whole chunk to w.
func Write(w io.Writer, c Chunk) error {
	cw := NewWriter(w, c.Type())
	if err := c.WriteData(cw); err != nil {
		return err
	}
	return cw.Close()
}
