package pdf

import (
	"bytes"
	"compress/zlib"
	"errors"
	"fmt"
	"io"
)

// maxStreamSize bounds the decoded size of a single stream (64 MB).
const maxStreamSize = 64 << 20

// decode undoes the filters declared in a stream dictionary. Only the
// filters Chrome and common writers use for structural streams are
// supported.
func decode(obj *Object) ([]byte, error) {
	filters, _ := obj.Dict.Array("Filter")
	parms, _ := obj.Dict.Array("DecodeParms")

	data := obj.Stream
	for i, f := range filters {
		if f.Kind != Name {
			continue
		}
		var p Dict
		if i < len(parms) && parms[i].Kind == Dictionary {
			p = parms[i].Dict
		}
		var err error
		switch f.Name {
		case "FlateDecode", "Fl":
			data, err = inflate(data, p)
		default:
			err = fmt.Errorf("unsupported filter %s", f.Name)
		}
		if err != nil {
			return nil, err
		}
	}
	return data, nil
}

func inflate(data []byte, parms Dict) ([]byte, error) {
	zr, err := zlib.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("zlib: %w", err)
	}
	defer zr.Close()

	out, err := io.ReadAll(io.LimitReader(zr, maxStreamSize+1))
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) {
		return nil, fmt.Errorf("zlib: %w", err)
	}
	if len(out) > maxStreamSize {
		return nil, errors.New("decoded stream too large")
	}

	if predictor, _ := parms.Int("Predictor"); predictor >= 10 {
		columns, ok := parms.Int("Columns")
		if !ok || columns <= 0 {
			columns = 1
		}
		return unpredictPNG(out, int(columns))
	}
	return out, nil
}

// unpredictPNG reverses PNG row filters for one byte per pixel, which
// is how cross-reference streams are encoded.
func unpredictPNG(data []byte, columns int) ([]byte, error) {
	stride := columns + 1
	if len(data)%stride != 0 {
		return nil, fmt.Errorf("predictor: %d bytes is not a multiple of row size %d", len(data), stride)
	}
	rows := len(data) / stride
	out := make([]byte, rows*columns)
	prev := make([]byte, columns)

	for r := range rows {
		src := data[r*stride+1 : (r+1)*stride]
		dst := out[r*columns : (r+1)*columns]
		for i := range dst {
			var left, upLeft byte
			if i > 0 {
				left = dst[i-1]
				upLeft = prev[i-1]
			}
			up := prev[i]
			switch data[r*stride] {
			case 0:
				dst[i] = src[i]
			case 1:
				dst[i] = src[i] + left
			case 2:
				dst[i] = src[i] + up
			case 3:
				dst[i] = src[i] + byte((int(left)+int(up))/2)
			case 4:
				dst[i] = src[i] + paeth(left, up, upLeft)
			default:
				return nil, fmt.Errorf("predictor: unknown row filter %d", data[r*stride])
			}
		}
		prev = dst
	}
	return out, nil
}

func paeth(a, b, c byte) byte {
	p := int(a) + int(b) - int(c)
	pa, pb, pc := absInt(p-int(a)), absInt(p-int(b)), absInt(p-int(c))
	switch {
	case pa <= pb && pa <= pc:
		return a
	case pb <= pc:
		return b
	}
	return c
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
