package pdf

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"unicode/utf16"
)

// ErrNotPDF is returned when the input lacks a %PDF- header.
var ErrNotPDF = errors.New("pdf: not a PDF file")

type xrefEntry struct {
	offset int64
	// stream is the object stream holding a compressed object, or 0.
	stream int
	free   bool
}

// Reader gives access to the objects of a parsed PDF file.
type Reader struct {
	data    []byte
	xref    map[int]xrefEntry
	trailer Dict
	cache   map[int]*Object
}

// Page describes a single page.
type Page struct {
	Width    float64
	Height   float64
	Rotation int
}

// Info holds the document information dictionary entries.
type Info struct {
	Title    string
	Creator  string
	Producer string
}

// Open reads and parses the PDF file at path.
func Open(path string) (*Reader, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("pdf: %w", err)
	}
	return Load(data)
}

// Load parses a PDF held in memory.
func Load(data []byte) (*Reader, error) {
	if !bytes.HasPrefix(data, []byte("%PDF-")) {
		return nil, ErrNotPDF
	}
	r := &Reader{
		data:  data,
		xref:  make(map[int]xrefEntry),
		cache: make(map[int]*Object),
	}
	start, err := r.startXRef()
	if err != nil {
		return nil, err
	}
	seen := make(map[int64]bool)
	for off := start; off > 0; {
		if seen[off] {
			return nil, fmt.Errorf("pdf: xref loop at offset %d", off)
		}
		seen[off] = true
		if off, err = r.loadSection(off); err != nil {
			return nil, err
		}
	}
	if r.trailer == nil {
		return nil, errors.New("pdf: missing trailer")
	}
	return r, nil
}

// Version returns the header version, e.g. "1.4".
func (r *Reader) Version() string {
	head := r.data[5:min(len(r.data), 16)]
	if i := bytes.IndexAny(head, "\r\n %"); i >= 0 {
		head = head[:i]
	}
	return string(head)
}

func (r *Reader) startXRef() (int64, error) {
	tail := r.data[max(0, len(r.data)-1024):]
	i := bytes.LastIndex(tail, []byte("startxref"))
	if i < 0 {
		return 0, errors.New("pdf: startxref not found")
	}
	s := newScanner(tail, i+len("startxref"))
	s.skipSpace()
	off, err := strconv.ParseInt(s.token(), 10, 64)
	if err != nil || off <= 0 || off >= int64(len(r.data)) {
		return 0, errors.New("pdf: invalid startxref offset")
	}
	return off, nil
}

// loadSection reads one xref table or stream and returns the offset of
// the previous section, or 0. Entries from newer sections win.
func (r *Reader) loadSection(off int64) (int64, error) {
	if off < 0 || off >= int64(len(r.data)) {
		return 0, fmt.Errorf("pdf: xref offset %d out of range", off)
	}
	s := newScanner(r.data, int(off))
	s.skipSpace()

	var trailer Dict
	if s.accept("xref") {
		if err := r.readTable(s); err != nil {
			return 0, err
		}
		obj, err := s.object()
		if err != nil {
			return 0, fmt.Errorf("pdf: trailer: %w", err)
		}
		if obj.Kind != Dictionary {
			return 0, errors.New("pdf: trailer is not a dictionary")
		}
		trailer = obj.Dict
	} else {
		if !s.objectHeader() {
			return 0, fmt.Errorf("pdf: no xref at offset %d", off)
		}
		obj, err := s.object()
		if err != nil {
			return 0, err
		}
		if err := r.readStream(obj); err != nil {
			return 0, err
		}
		trailer = obj.Dict
	}

	if r.trailer == nil {
		r.trailer = trailer
	}
	prev, _ := trailer.Int("Prev")
	return prev, nil
}

func (r *Reader) readTable(s *scanner) error {
	for {
		s.skipSpace()
		if s.eof() {
			return errors.New("pdf: truncated xref table")
		}
		if s.accept("trailer") {
			return nil
		}
		first, err1 := strconv.Atoi(s.token())
		s.skipSpace()
		count, err2 := strconv.Atoi(s.token())
		if err1 != nil || err2 != nil {
			return errors.New("pdf: malformed xref subsection")
		}
		for i := range count {
			s.skipSpace()
			offset, _ := strconv.ParseInt(s.token(), 10, 64)
			s.skipSpace()
			s.token()
			s.skipSpace()
			kind := s.token()
			num := first + i
			if _, ok := r.xref[num]; !ok {
				r.xref[num] = xrefEntry{offset: offset, free: kind != "n"}
			}
		}
	}
}

func (r *Reader) readStream(obj *Object) error {
	if obj.Kind != Stream {
		return errors.New("pdf: xref section is not a stream")
	}
	data, err := decode(obj)
	if err != nil {
		return fmt.Errorf("pdf: xref stream: %w", err)
	}

	w, _ := obj.Dict.Array("W")
	if len(w) != 3 {
		return errors.New("pdf: xref stream has invalid /W")
	}
	widths := [3]int{int(w[0].Int), int(w[1].Int), int(w[2].Int)}
	size := widths[0] + widths[1] + widths[2]
	if size == 0 {
		return errors.New("pdf: xref stream has empty entries")
	}

	var index []*Object
	if idx, ok := obj.Dict.Array("Index"); ok {
		index = idx
	} else {
		n, _ := obj.Dict.Int("Size")
		index = []*Object{{Kind: Int}, {Kind: Int, Int: n}}
	}

	pos := 0
	for i := 0; i+1 < len(index); i += 2 {
		first, count := int(index[i].Int), int(index[i+1].Int)
		for j := range count {
			if pos+size > len(data) {
				return nil
			}
			var f [3]int64
			p := pos
			for k, width := range widths {
				for range width {
					f[k] = f[k]<<8 | int64(data[p])
					p++
				}
			}
			pos += size
			if widths[0] == 0 {
				f[0] = 1
			}

			num := first + j
			if _, ok := r.xref[num]; ok {
				continue
			}
			switch f[0] {
			case 0:
				r.xref[num] = xrefEntry{free: true}
			case 1:
				r.xref[num] = xrefEntry{offset: f[1]}
			case 2:
				r.xref[num] = xrefEntry{stream: int(f[1])}
			}
		}
	}
	return nil
}

// Object returns the indirect object numbered num. Missing and free
// objects resolve to null.
func (r *Reader) Object(num int) (*Object, error) {
	if obj, ok := r.cache[num]; ok {
		return obj, nil
	}
	entry, ok := r.xref[num]
	if !ok || entry.free {
		return nullObject, nil
	}
	// Guards against reference cycles while resolving.
	r.cache[num] = nullObject

	var obj *Object
	var err error
	if entry.stream > 0 {
		obj, err = r.compressed(num, entry.stream)
	} else {
		obj, err = r.direct(entry.offset)
	}
	if err != nil {
		delete(r.cache, num)
		return nil, fmt.Errorf("pdf: object %d: %w", num, err)
	}
	r.cache[num] = obj
	return obj, nil
}

// Resolve follows obj if it is a reference.
func (r *Reader) Resolve(obj *Object) (*Object, error) {
	if obj == nil {
		return nullObject, nil
	}
	if obj.Kind != Ref {
		return obj, nil
	}
	return r.Object(obj.Ref.Number)
}

func (r *Reader) direct(off int64) (*Object, error) {
	if off <= 0 || off >= int64(len(r.data)) {
		return nil, fmt.Errorf("offset %d out of range", off)
	}
	s := newScanner(r.data, int(off))
	if !s.objectHeader() {
		return nil, fmt.Errorf("no object header at offset %d", off)
	}
	obj, err := s.object()
	if err != nil {
		return nil, err
	}
	if obj.Kind != Stream {
		return obj, nil
	}
	if length, ok := obj.Dict["Length"]; ok && length.Kind == Ref {
		resolved, err := r.Resolve(length)
		if err != nil {
			return nil, err
		}
		if resolved.Kind == Int {
			obj.Dict["Length"] = resolved
			s = newScanner(r.data, int(off))
			s.objectHeader()
			return s.object()
		}
	}
	return obj, nil
}

func (r *Reader) compressed(num, container int) (*Object, error) {
	holder, err := r.Object(container)
	if err != nil {
		return nil, err
	}
	if holder.Kind != Stream {
		return nil, fmt.Errorf("object stream %d is not a stream", container)
	}
	data, err := decode(holder)
	if err != nil {
		return nil, err
	}
	n, _ := holder.Dict.Int("N")
	first, _ := holder.Dict.Int("First")

	s := newScanner(data, 0)
	for range n {
		s.skipSpace()
		id, _ := strconv.Atoi(s.token())
		s.skipSpace()
		off, _ := strconv.Atoi(s.token())
		if id != num {
			continue
		}
		pos := int(first) + off
		if pos >= len(data) {
			return nil, fmt.Errorf("object %d outside object stream %d", num, container)
		}
		return newScanner(data, pos).object()
	}
	return nil, fmt.Errorf("object %d not found in object stream %d", num, container)
}

func (r *Reader) catalog() (Dict, error) {
	root, err := r.Resolve(r.trailer["Root"])
	if err != nil {
		return nil, err
	}
	if root.Kind != Dictionary {
		return nil, errors.New("pdf: missing document catalog")
	}
	return root.Dict, nil
}

// Pages walks the page tree and returns every page in document order.
// MediaBox and Rotate are inherited from ancestor nodes.
func (r *Reader) Pages() ([]Page, error) {
	cat, err := r.catalog()
	if err != nil {
		return nil, err
	}
	root, err := r.Resolve(cat["Pages"])
	if err != nil {
		return nil, err
	}
	if root.Kind != Dictionary {
		return nil, errors.New("pdf: missing page tree")
	}
	var pages []Page
	visited := make(map[*Object]bool)
	if err := r.collect(root, Page{}, visited, &pages); err != nil {
		return nil, err
	}
	return pages, nil
}

func (r *Reader) collect(node *Object, inherited Page, visited map[*Object]bool, pages *[]Page) error {
	if visited[node] {
		return errors.New("pdf: cycle in page tree")
	}
	visited[node] = true

	attrs, err := r.pageAttrs(node.Dict, inherited)
	if err != nil {
		return err
	}
	if typ, _ := node.Dict.Name("Type"); typ == "Page" {
		*pages = append(*pages, attrs)
		return nil
	}

	kids, err := r.Resolve(node.Dict["Kids"])
	if err != nil {
		return err
	}
	for _, ref := range kids.Array {
		kid, err := r.Resolve(ref)
		if err != nil {
			return err
		}
		if kid.Kind != Dictionary {
			continue
		}
		if err := r.collect(kid, attrs, visited, pages); err != nil {
			return err
		}
	}
	return nil
}

func (r *Reader) pageAttrs(d Dict, page Page) (Page, error) {
	if mb, ok := d["MediaBox"]; ok {
		box, err := r.Resolve(mb)
		if err != nil {
			return page, err
		}
		if box.Kind == Array && len(box.Array) == 4 {
			var v [4]float64
			for i, o := range box.Array {
				ro, err := r.Resolve(o)
				if err != nil {
					return page, err
				}
				v[i], _ = ro.Number()
			}
			page.Width = v[2] - v[0]
			page.Height = v[3] - v[1]
		}
	}
	if rot, ok := d["Rotate"]; ok {
		ro, err := r.Resolve(rot)
		if err != nil {
			return page, err
		}
		if ro.Kind == Int {
			page.Rotation = int(ro.Int)
		}
	}
	return page, nil
}

// PageCount returns the number of pages.
func (r *Reader) PageCount() (int, error) {
	pages, err := r.Pages()
	if err != nil {
		return 0, err
	}
	return len(pages), nil
}

// Info returns the document information dictionary. Absent entries are
// left empty.
func (r *Reader) Info() Info {
	obj, err := r.Resolve(r.trailer["Info"])
	if err != nil || obj.Kind != Dictionary {
		return Info{}
	}
	str := func(key string) string {
		v, err := r.Resolve(obj.Dict[key])
		if err != nil || v.Kind != String {
			return ""
		}
		return decodeText(v.Str)
	}
	return Info{
		Title:    str("Title"),
		Creator:  str("Creator"),
		Producer: str("Producer"),
	}
}

// decodeText decodes a PDF text string, which is either UTF-16BE with a
// byte order mark or PDFDocEncoding. Bytes above 0x7f are mapped as Latin-1.
func decodeText(b []byte) string {
	if len(b) >= 2 && b[0] == 0xfe && b[1] == 0xff {
		var sb strings.Builder
		units := make([]uint16, 0, (len(b)-2)/2)
		for i := 2; i+1 < len(b); i += 2 {
			units = append(units, uint16(b[i])<<8|uint16(b[i+1]))
		}
		for _, ru := range utf16.Decode(units) {
			sb.WriteRune(ru)
		}
		return sb.String()
	}
	runes := make([]rune, len(b))
	for i, c := range b {
		runes[i] = rune(c)
	}
	return string(runes)
}
