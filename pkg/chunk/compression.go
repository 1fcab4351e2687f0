package chunk

import (
	"bytes"
	"compress/zlib"
	"io"
)

// CompressionMethod identifies the compression algorithm used by iCCP, zTXt,
// and iTXt payloads. The only method defined by the format is zlib DEFLATE.
type CompressionMethod uint8

// CompressionZlibDeflate is compression method 0.
const CompressionZlibDeflate CompressionMethod = 0

const numCompressionMethods = 1

// Compress compresses data with this method. Compression of in-memory data
// cannot fail.
func (m CompressionMethod) Compress(data []byte) []byte {
	var buf bytes.Buffer
	zw := zlib.NewWriter(&buf)
	if _, err := zw.Write(data); err != nil {
		panic(err)
	}
	if err := zw.Close(); err != nil {
		panic(err)
	}
	return buf.Bytes()
}

// Decompress decompresses data with this method, failing with a
// decompression error if the payload is not valid for it.
func (m CompressionMethod) Decompress(data []byte) ([]byte, error) {
	zr, err := zlib.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, Errorf(KindDecompression, "invalid zlib stream: %v", err)
	}
	defer zr.Close()
	out, err := io.ReadAll(zr)
	if err != nil {
		return nil, Errorf(KindDecompression, "corrupt zlib stream: %v", err)
	}
	return out, nil
}
