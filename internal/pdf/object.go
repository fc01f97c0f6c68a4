// Package pdf reads the structure of PDF files: the cross-reference
// section, indirect objects and the page tree. It is used to check the
// documents this module produces.
package pdf

// Kind identifies the type of a PDF object.
type Kind int

const (
	Null Kind = iota
	Bool
	Int
	Real
	String
	Name
	Array
	Dictionary
	Stream
	Ref
)

// Object is any PDF object.
type Object struct {
	Kind   Kind
	Bool   bool
	Int    int64
	Real   float64
	Str    []byte
	Name   string
	Array  []*Object
	Dict   Dict
	Stream []byte
	Ref    Reference
}

// Reference is an indirect reference "N G R".
type Reference struct {
	Number int
	Gen    int
}

// Dict is a PDF dictionary keyed by name without the leading slash.
type Dict map[string]*Object

var nullObject = &Object{Kind: Null}

// Number returns the numeric value of o as a float.
func (o *Object) Number() (float64, bool) {
	if o == nil {
		return 0, false
	}
	switch o.Kind {
	case Int:
		return float64(o.Int), true
	case Real:
		return o.Real, true
	}
	return 0, false
}

// Int returns the integer stored under key. Reals are truncated.
func (d Dict) Int(key string) (int64, bool) {
	obj, ok := d[key]
	if !ok {
		return 0, false
	}
	switch obj.Kind {
	case Int:
		return obj.Int, true
	case Real:
		return int64(obj.Real), true
	}
	return 0, false
}

// Name returns the name stored under key.
func (d Dict) Name(key string) (string, bool) {
	obj, ok := d[key]
	if !ok || obj.Kind != Name {
		return "", false
	}
	return obj.Name, true
}

// Array returns the array stored under key. A single non-array value is
// returned as a one-element array.
func (d Dict) Array(key string) ([]*Object, bool) {
	obj, ok := d[key]
	if !ok {
		return nil, false
	}
	if obj.Kind == Array {
		return obj.Array, true
	}
	return []*Object{obj}, true
}
