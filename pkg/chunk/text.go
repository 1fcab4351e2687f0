package chunk

import "unicode/utf8"

// TypeText is the type code of the uncompressed Latin-1 text chunk.
const TypeText Type = "tEXt"

// TypeZtxt is the type code of the compressed Latin-1 text chunk.
const TypeZtxt Type = "zTXt"

// TypeItxt is the type code of the international (UTF-8) text chunk.
const TypeItxt Type = "iTXt"

// Text is the tEXt chunk: a keyword, a NUL separator, and uncompressed
// Latin-1 text that may contain newlines but no other control characters.
type Text struct {
	keyword string
	text    string
}

// NewText validates the keyword and text character sets.
func NewText(keyword, text string) (*Text, error) {
	if err := checkKeyword(keyword); err != nil {
		return nil, err
	}
	if err := checkLatin1(text, true); err != nil {
		return nil, err
	}
	if _, err := checkedLengthSum(len(keyword), 1, len(text)); err != nil {
		return nil, err
	}
	return &Text{keyword: keyword, text: text}, nil
}

func decodeText(r *Reader) (Chunk, error) {
	data, err := r.ReadRemaining()
	if err != nil {
		return nil, err
	}
	parts, err := splitByNul(data, 2)
	if err != nil {
		return nil, err
	}
	return NewText(latin1ToString(parts[0]), latin1ToString(parts[1]))
}

func (c *Text) Type() Type { return TypeText }

func (c *Text) Keyword() string { return c.keyword }
func (c *Text) Text() string    { return c.text }

func (c *Text) WriteData(w *Writer) error {
	if err := w.WriteStringNul(c.keyword); err != nil {
		return err
	}
	return w.WriteString(c.text)
}

// Ztxt is the zTXt chunk: a keyword, a NUL separator, a compression method
// byte, and the compressed Latin-1 text.
type Ztxt struct {
	keyword        string
	method         CompressionMethod
	compressedText []byte
}

// NewZtxt validates the keyword and wraps an already-compressed payload.
func NewZtxt(keyword string, method CompressionMethod, compressedText []byte) (*Ztxt, error) {
	if err := checkKeyword(keyword); err != nil {
		return nil, err
	}
	if method >= numCompressionMethods {
		return nil, Errorf(KindFieldRange, "zTXt: unrecognized compression method %d", method)
	}
	if _, err := checkedLengthSum(len(keyword), 2, len(compressedText)); err != nil {
		return nil, err
	}
	return &Ztxt{keyword: keyword, method: method, compressedText: compressedText}, nil
}

// NewZtxtText validates and compresses plain text.
func NewZtxtText(keyword, text string) (*Ztxt, error) {
	if err := checkLatin1(text, true); err != nil {
		return nil, err
	}
	return NewZtxt(keyword, CompressionZlibDeflate, CompressionZlibDeflate.Compress(stringToLatin1(text)))
}

func decodeZtxt(r *Reader) (Chunk, error) {
	keyword, err := r.ReadStringNul()
	if err != nil {
		return nil, err
	}
	method, err := r.ReadEnum(numCompressionMethods)
	if err != nil {
		return nil, err
	}
	data, err := r.ReadRemaining()
	if err != nil {
		return nil, err
	}
	return NewZtxt(keyword, CompressionMethod(method), data)
}

func (c *Ztxt) Type() Type { return TypeZtxt }

func (c *Ztxt) Keyword() string { return c.keyword }

// CompressedText returns the payload as stored. Callers must not modify the
// slice.
func (c *Ztxt) CompressedText() []byte { return c.compressedText }

// Text decompresses the payload and validates it as Latin-1 text.
func (c *Ztxt) Text() (string, error) {
	raw, err := c.method.Decompress(c.compressedText)
	if err != nil {
		return "", err
	}
	s := latin1ToString(raw)
	if err := checkLatin1(s, true); err != nil {
		return "", err
	}
	return s, nil
}

func (c *Ztxt) WriteData(w *Writer) error {
	if err := w.WriteStringNul(c.keyword); err != nil {
		return err
	}
	if err := w.WriteUint8(uint8(c.method)); err != nil {
		return err
	}
	_, err := w.Write(c.compressedText)
	return err
}

// Itxt is the iTXt chunk: a Latin-1 keyword, a compression flag and method,
// an ASCII language tag, a UTF-8 translated keyword, and UTF-8 text that is
// optionally compressed.
type Itxt struct {
	keyword           string
	languageTag       string
	translatedKeyword string
	compressed        bool
	method            CompressionMethod
	payload           []byte
}

// NewItxt validates all fields and wraps the text payload as it appears on
// the wire (compressed iff the flag is set).
func NewItxt(keyword, languageTag, translatedKeyword string, compressed bool, method CompressionMethod, payload []byte) (*Itxt, error) {
	if err := checkKeyword(keyword); err != nil {
		return nil, err
	}
	if err := checkLanguageTag(languageTag); err != nil {
		return nil, err
	}
	if !utf8.ValidString(translatedKeyword) {
		return nil, Errorf(KindFieldRange, "iTXt: translated keyword is not valid UTF-8")
	}
	if method >= numCompressionMethods {
		return nil, Errorf(KindFieldRange, "iTXt: unrecognized compression method %d", method)
	}
	if !compressed && !utf8.Valid(payload) {
		return nil, Errorf(KindFieldRange, "iTXt: text is not valid UTF-8")
	}
	if _, err := checkedLengthSum(len(keyword), 5, len(languageTag), len([]byte(translatedKeyword)), len(payload)); err != nil {
		return nil, err
	}
	return &Itxt{
		keyword:           keyword,
		languageTag:       languageTag,
		translatedKeyword: translatedKeyword,
		compressed:        compressed,
		method:            method,
		payload:           payload,
	}, nil
}

// NewItxtText builds an iTXt chunk from plain UTF-8 text, compressing it if
// requested.
func NewItxtText(keyword, languageTag, translatedKeyword string, compress bool, text string) (*Itxt, error) {
	if !utf8.ValidString(text) {
		return nil, Errorf(KindFieldRange, "iTXt: text is not valid UTF-8")
	}
	payload := []byte(text)
	if compress {
		payload = CompressionZlibDeflate.Compress(payload)
	}
	return NewItxt(keyword, languageTag, translatedKeyword, compress, CompressionZlibDeflate, payload)
}

func decodeItxt(r *Reader) (Chunk, error) {
	keyword, err := r.ReadStringNul()
	if err != nil {
		return nil, err
	}
	flag, err := r.ReadEnum(2)
	if err != nil {
		return nil, err
	}
	method, err := r.ReadEnum(numCompressionMethods)
	if err != nil {
		return nil, err
	}
	rest, err := r.ReadRemaining()
	if err != nil {
		return nil, err
	}
	parts, err := splitByNul(rest, 3)
	if err != nil {
		return nil, err
	}
	if !utf8.Valid(parts[1]) {
		return nil, Errorf(KindFieldRange, "iTXt: translated keyword is not valid UTF-8")
	}
	return NewItxt(keyword, string(parts[0]), string(parts[1]), flag == 1, CompressionMethod(method), parts[2])
}

func (c *Itxt) Type() Type { return TypeItxt }

func (c *Itxt) Keyword() string           { return c.keyword }
func (c *Itxt) LanguageTag() string       { return c.languageTag }
func (c *Itxt) TranslatedKeyword() string { return c.translatedKeyword }
func (c *Itxt) Compressed() bool          { return c.compressed }

// Text returns the chunk's text, decompressing it if needed.
func (c *Itxt) Text() (string, error) {
	raw := c.payload
	if c.compressed {
		var err error
		raw, err = c.method.Decompress(c.payload)
		if err != nil {
			return "", err
		}
	}
	if !utf8.Valid(raw) {
		return "", Errorf(KindFieldRange, "iTXt: text is not valid UTF-8")
	}
	return string(raw), nil
}

func (c *Itxt) WriteData(w *Writer) error {
	if err := w.WriteStringNul(c.keyword); err != nil {
		return err
	}
	flag := uint8(0)
	if c.compressed {
		flag = 1
	}
	if err := w.WriteUint8(flag); err != nil {
		return err
	}
	if err := w.WriteUint8(uint8(c.method)); err != nil {
		return err
	}
	if _, err := w.Write([]byte(c.languageTag)); err != nil {
		return err
	}
	if err := w.WriteUint8(0); err != nil {
		return err
	}
	if _, err := w.Write([]byte(c.translatedKeyword)); err != nil {
		return err
	}
	if err := w.WriteUint8(0); err != nil {
		return err
	}
	_, err := w.Write(c.payload)
	return err
}

// checkLanguageTag validates an RFC 3066 style language tag: empty, or
// hyphen-separated ASCII alphanumeric runs of 1 to 8 characters.
func checkLanguageTag(s string) error {
	if s == "" {
		return nil
	}
	run := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case 'A' <= c && c <= 'Z', 'a' <= c && c <= 'z', '0' <= c && c <= '9':
			run++
			if run > 8 {
				return Errorf(KindFieldRange, "iTXt: language tag component too long in %q", s)
			}
		case c == '-':
			if run == 0 {
				return Errorf(KindFieldRange, "iTXt: empty language tag component in %q", s)
			}
			run = 0
		default:
			return Errorf(KindFieldRange, "iTXt: invalid language tag character %q", c)
		}
	}
	if run == 0 {
		return Errorf(KindFieldRange, "iTXt: language tag %q ends with separator", s)
	}
	return nil
}
