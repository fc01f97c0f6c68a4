package pdf

import (
	"bytes"
	"errors"
	"strconv"
	"strings"
)

const maxDepth = 100

var errTooDeep = errors.New("pdf: object nesting too deep")

// scanner parses PDF objects from a byte slice by recursive descent.
type scanner struct {
	data  []byte
	pos   int
	depth int
}

func newScanner(data []byte, pos int) *scanner {
	return &scanner{data: data, pos: pos}
}

func (s *scanner) eof() bool {
	return s.pos >= len(s.data)
}

// skipSpace skips whitespace and comments.
func (s *scanner) skipSpace() {
	for !s.eof() {
		c := s.data[s.pos]
		switch {
		case c == '%':
			for !s.eof() && s.data[s.pos] != '\n' && s.data[s.pos] != '\r' {
				s.pos++
			}
		case isSpace(c):
			s.pos++
		default:
			return
		}
	}
}

// accept advances past keyword if it is next in the input.
func (s *scanner) accept(keyword string) bool {
	if bytes.HasPrefix(s.data[s.pos:], []byte(keyword)) {
		s.pos += len(keyword)
		return true
	}
	return false
}

// token reads a run of regular characters.
func (s *scanner) token() string {
	start := s.pos
	for !s.eof() && !isSpace(s.data[s.pos]) && !isDelimiter(s.data[s.pos]) {
		s.pos++
	}
	return string(s.data[start:s.pos])
}

// objectHeader consumes "N G obj".
func (s *scanner) objectHeader() bool {
	s.skipSpace()
	s.token()
	s.skipSpace()
	s.token()
	s.skipSpace()
	return s.accept("obj")
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\r', '\n', '\f', 0:
		return true
	}
	return false
}

func isDelimiter(c byte) bool {
	switch c {
	case '(', ')', '<', '>', '[', ']', '{', '}', '/', '%':
		return true
	}
	return false
}

// object parses the next object. Unknown tokens yield null.
func (s *scanner) object() (*Object, error) {
	if s.depth >= maxDepth {
		return nil, errTooDeep
	}
	s.depth++
	defer func() { s.depth-- }()

	s.skipSpace()
	if s.eof() {
		return nullObject, nil
	}

	switch c := s.data[s.pos]; {
	case s.accept("null"):
		return nullObject, nil
	case s.accept("true"):
		return &Object{Kind: Bool, Bool: true}, nil
	case s.accept("false"):
		return &Object{Kind: Bool}, nil
	case c == '(':
		return s.literalString(), nil
	case c == '<' && s.pos+1 < len(s.data) && s.data[s.pos+1] == '<':
		return s.dictOrStream()
	case c == '<':
		return s.hexString(), nil
	case c == '/':
		return s.name(), nil
	case c == '[':
		return s.array()
	case c == '+' || c == '-' || c == '.' || (c >= '0' && c <= '9'):
		return s.numberOrRef(), nil
	default:
		s.pos++
		return nullObject, nil
	}
}

func (s *scanner) literalString() *Object {
	s.pos++
	var buf bytes.Buffer
	for depth := 1; !s.eof(); {
		c := s.data[s.pos]
		s.pos++
		switch c {
		case '\\':
			s.escape(&buf)
			continue
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				return &Object{Kind: String, Str: buf.Bytes()}
			}
		}
		buf.WriteByte(c)
	}
	return &Object{Kind: String, Str: buf.Bytes()}
}

func (s *scanner) escape(buf *bytes.Buffer) {
	if s.eof() {
		return
	}
	c := s.data[s.pos]
	s.pos++
	switch c {
	case 'n':
		buf.WriteByte('\n')
	case 'r':
		buf.WriteByte('\r')
	case 't':
		buf.WriteByte('\t')
	case 'b':
		buf.WriteByte('\b')
	case 'f':
		buf.WriteByte('\f')
	case '\r':
		if !s.eof() && s.data[s.pos] == '\n' {
			s.pos++
		}
	case '\n':
	default:
		if c < '0' || c > '7' {
			buf.WriteByte(c)
			return
		}
		v := int(c - '0')
		for i := 0; i < 2 && !s.eof(); i++ {
			d := s.data[s.pos]
			if d < '0' || d > '7' {
				break
			}
			v = v*8 + int(d-'0')
			s.pos++
		}
		buf.WriteByte(byte(v))
	}
}

func (s *scanner) hexString() *Object {
	s.pos++
	var digits []byte
	for !s.eof() && s.data[s.pos] != '>' {
		if c := s.data[s.pos]; !isSpace(c) {
			digits = append(digits, c)
		}
		s.pos++
	}
	if !s.eof() {
		s.pos++
	}
	if len(digits)%2 == 1 {
		digits = append(digits, '0')
	}
	out := make([]byte, len(digits)/2)
	for i := range out {
		out[i] = hexValue(digits[2*i])<<4 | hexValue(digits[2*i+1])
	}
	return &Object{Kind: String, Str: out}
}

func hexValue(b byte) byte {
	switch {
	case b >= '0' && b <= '9':
		return b - '0'
	case b >= 'a' && b <= 'f':
		return b - 'a' + 10
	case b >= 'A' && b <= 'F':
		return b - 'A' + 10
	}
	return 0
}

func (s *scanner) name() *Object {
	s.pos++
	raw := s.token()
	if !strings.ContainsRune(raw, '#') {
		return &Object{Kind: Name, Name: raw}
	}
	var buf bytes.Buffer
	for i := 0; i < len(raw); i++ {
		if raw[i] == '#' && i+2 < len(raw) {
			buf.WriteByte(hexValue(raw[i+1])<<4 | hexValue(raw[i+2]))
			i += 2
			continue
		}
		buf.WriteByte(raw[i])
	}
	return &Object{Kind: Name, Name: buf.String()}
}

func (s *scanner) array() (*Object, error) {
	s.pos++
	arr := &Object{Kind: Array}
	for {
		s.skipSpace()
		if s.eof() {
			return arr, nil
		}
		if s.data[s.pos] == ']' {
			s.pos++
			return arr, nil
		}
		obj, err := s.object()
		if err != nil {
			return nil, err
		}
		arr.Array = append(arr.Array, obj)
	}
}

func (s *scanner) dictOrStream() (*Object, error) {
	s.pos += 2
	d := make(Dict)
	for {
		s.skipSpace()
		if s.eof() {
			break
		}
		if s.accept(">>") {
			break
		}
		if s.data[s.pos] != '/' {
			s.pos++
			continue
		}
		key := s.name().Name
		val, err := s.object()
		if err != nil {
			return nil, err
		}
		d[key] = val
	}

	save := s.pos
	s.skipSpace()
	if !s.accept("stream") {
		s.pos = save
		return &Object{Kind: Dictionary, Dict: d}, nil
	}
	if s.accept("\r") {
		s.accept("\n")
	} else {
		s.accept("\n")
	}

	start := s.pos
	end := -1
	if n, ok := d.Int("Length"); ok && n >= 0 && start+int(n) <= len(s.data) {
		end = start + int(n)
	} else if i := bytes.Index(s.data[start:], []byte("endstream")); i >= 0 {
		end = start + i
	} else {
		end = len(s.data)
	}
	s.pos = end
	s.skipSpace()
	s.accept("endstream")

	return &Object{Kind: Stream, Dict: d, Stream: s.data[start:end]}, nil
}

func (s *scanner) numberOrRef() *Object {
	first := s.token()
	n, intErr := strconv.ParseInt(first, 10, 64)
	if intErr == nil {
		after := s.pos
		s.skipSpace()
		if gen, err := strconv.ParseInt(s.token(), 10, 64); err == nil {
			s.skipSpace()
			if s.accept("R") && (s.eof() || isSpace(s.data[s.pos]) || isDelimiter(s.data[s.pos])) {
				return &Object{Kind: Ref, Ref: Reference{Number: int(n), Gen: int(gen)}}
			}
		}
		s.pos = after
		return &Object{Kind: Int, Int: n}
	}
	if f, err := strconv.ParseFloat(first, 64); err == nil {
		return &Object{Kind: Real, Real: f}
	}
	return nullObject
}
