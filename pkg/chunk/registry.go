package chunk

import (
	"io"
	"sync"
)

// DecodeFunc parses one chunk's data payload from a frame reader. The codec
// must consume exactly the frame's declared data length; the framing layer
// verifies this after dispatch.
type DecodeFunc func(r *Reader) (Chunk, error)

// The registry maps type codes to decoders. It is read-mostly process-wide
// state: register private chunk types once, before any concurrent parsing.
var (
	registryMu sync.RWMutex
	registry   = map[Type]DecodeFunc{
		TypeActl: decodeActl,
		TypeBkgd: decodeBkgd,
		TypeChrm: decodeChrm,
		TypeDsig: decodeDsig,
		TypeExif: decodeExif,
		TypeFctl: decodeFctl,
		TypeFdat: decodeFdat,
		TypeGama: decodeGama,
		TypeGifg: decodeGifg,
		TypeGift: decodeGift,
		TypeGifx: decodeGifx,
		TypeHist: decodeHist,
		TypeIccp: decodeIccp,
		TypeIdat: decodeIdat,
		TypeIend: decodeIend,
		TypeIhdr: decodeIhdr,
		TypeItxt: decodeItxt,
		TypeOffs: decodeOffs,
		TypePcal: decodePcal,
		TypePhys: decodePhys,
		TypePlte: decodePlte,
		TypeSbit: decodeSbit,
		TypeScal: decodeScal,
		TypeSplt: decodeSplt,
		TypeSrgb: decodeSrgb,
		TypeSter: decodeSter,
		TypeText: decodeText,
		TypeTime: decodeTime,
		TypeTrns: decodeTrns,
		TypeZtxt: decodeZtxt,
	}
)

// Register installs (or overrides) the decoder for a chunk type, letting
// library consumers add private chunk vocabularies.
func Register(t Type, decode DecodeFunc) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[t] = decode
}

// Lookup returns the registered decoder for a chunk type.
func Lookup(t Type) (DecodeFunc, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	d, ok := registry[t]
	return d, ok
}

// Read reads one complete chunk frame from r, dispatching the data payload
// to the decoder registered for its type, or to the opaque Custom fallback
// for unrecognized types. It returns io.EOF if the stream ends cleanly
// before the next frame.
func Read(r io.Reader) (Chunk, error) {
	cr, err := NewReader(r)
	if err != nil {
		return nil, err
	}
	decode, ok := Lookup(cr.Type())
	if !ok {
		decode = decodeCustom
	}
	c, err := decode(cr)
	if err != nil {
		return nil, err
	}
	if err := cr.Finish(); err != nil {
		return nil, err
	}
	return c, nil
}
