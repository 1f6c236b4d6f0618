package input

import (
	"math"
	"strconv"
	"strings"
)

// Kind identifies the payload type an Input accepts.
type Kind uint8

const (
	KindBool Kind = iota + 1
	KindInt8
	KindUint8
	KindInt16
	KindUint16
	KindInt32
	KindUint32
	KindInt64
	KindUint64
	KindInt32Array
	KindString
)

func (k Kind) String() string {
	switch k {
	case KindBool:
		return "bool"
	case KindInt8:
		return "int8"
	case KindUint8:
		return "uint8"
	case KindInt16:
		return "int16"
	case KindUint16:
		return "uint16"
	case KindInt32:
		return "int32"
	case KindUint32:
		return "uint32"
	case KindInt64:
		return "int64"
	case KindUint64:
		return "uint64"
	case KindInt32Array:
		return "int32[]"
	case KindString:
		return "string"
	default:
		return "unknown"
	}
}

// width reports the bit size and signedness of a scalar integer kind.
func (k Kind) width() (bits int, signed bool, ok bool) {
	switch k {
	case KindInt8:
		return 8, true, true
	case KindUint8:
		return 8, false, true
	case KindInt16:
		return 16, true, true
	case KindUint16:
		return 16, false, true
	case KindInt32, KindInt32Array:
		return 32, true, true
	case KindUint32:
		return 32, false, true
	case KindInt64:
		return 64, true, true
	case KindUint64:
		return 64, false, true
	default:
		return 0, false, false
	}
}

// Value is the closed set of payloads a flag can carry. A nil Value means
// the flag has no value.
type Value interface {
	Kind() Kind
	String() string
	isValue()
}

type (
	Bool   bool
	Int8   int8
	Uint8  uint8
	Int16  int16
	Uint16 uint16
	Int32  int32
	Uint32 uint32
	Int64  int64
	Uint64 uint64
	String string
)

// Int32Array holds a fixed number of slots; a nil slot was not supplied.
type Int32Array []*int32

func (Bool) Kind() Kind       { return KindBool }
func (Int8) Kind() Kind       { return KindInt8 }
func (Uint8) Kind() Kind      { return KindUint8 }
func (Int16) Kind() Kind      { return KindInt16 }
func (Uint16) Kind() Kind     { return KindUint16 }
func (Int32) Kind() Kind      { return KindInt32 }
func (Uint32) Kind() Kind     { return KindUint32 }
func (Int64) Kind() Kind      { return KindInt64 }
func (Uint64) Kind() Kind     { return KindUint64 }
func (Int32Array) Kind() Kind { return KindInt32Array }
func (String) Kind() Kind     { return KindString }

func (Bool) isValue()       {}
func (Int8) isValue()       {}
func (Uint8) isValue()      {}
func (Int16) isValue()      {}
func (Uint16) isValue()     {}
func (Int32) isValue()      {}
func (Uint32) isValue()     {}
func (Int64) isValue()      {}
func (Uint64) isValue()     {}
func (Int32Array) isValue() {}
func (String) isValue()     {}

func (v Bool) String() string   { return strconv.FormatBool(bool(v)) }
func (v Int8) String() string   { return strconv.FormatInt(int64(v), 10) }
func (v Uint8) String() string  { return strconv.FormatUint(uint64(v), 10) }
func (v Int16) String() string  { return strconv.FormatInt(int64(v), 10) }
func (v Uint16) String() string { return strconv.FormatUint(uint64(v), 10) }
func (v Int32) String() string  { return strconv.FormatInt(int64(v), 10) }
func (v Uint32) String() string { return strconv.FormatUint(uint64(v), 10) }
func (v Int64) String() string  { return strconv.FormatInt(int64(v), 10) }
func (v Uint64) String() string { return strconv.FormatUint(uint64(v), 10) }
func (v String) String() string { return string(v) }

// String joins the supplied slots with single spaces.
func (v Int32Array) String() string {
	parts := make([]string, 0, len(v))
	for _, slot := range v {
		if slot == nil {
			continue
		}
		parts = append(parts, strconv.FormatInt(int64(*slot), 10))
	}
	return strings.Join(parts, " ")
}

// Ints builds a fully populated Int32Array.
func Ints(values ...int32) Int32Array {
	out := make(Int32Array, len(values))
	for i := range values {
		v := values[i]
		out[i] = &v
	}
	return out
}

// AsInt widens any scalar integer value to int64.
func AsInt(v Value) (int64, bool) {
	switch t := v.(type) {
	case Int8:
		return int64(t), true
	case Uint8:
		return int64(t), true
	case Int16:
		return int64(t), true
	case Uint16:
		return int64(t), true
	case Int32:
		return int64(t), true
	case Uint32:
		return int64(t), true
	case Int64:
		return int64(t), true
	case Uint64:
		if uint64(t) > math.MaxInt64 {
			return 0, false
		}
		return int64(t), true
	default:
		return 0, false
	}
}

// AsString returns the payload of a String value.
func AsString(v Value) (string, bool) {
	s, ok := v.(String)
	return string(s), ok
}

// AsBool returns the payload of a Bool value.
func AsBool(v Value) (bool, bool) {
	b, ok := v.(Bool)
	return bool(b), ok
}

// FromInt boxes n into the integer variant for kind, reporting false when n
// does not fit.
func FromInt(kind Kind, n int64) (Value, bool) {
	bits, signed, ok := kind.width()
	if !ok || kind == KindInt32Array {
		return nil, false
	}
	if signed {
		if bits < 64 && (n < -(1<<(bits-1)) || n > (1<<(bits-1))-1) {
			return nil, false
		}
		return boxSigned(kind, n), true
	}
	if n < 0 || (bits < 64 && uint64(n) > (1<<bits)-1) {
		return nil, false
	}
	return boxUnsigned(kind, uint64(n)), true
}

func boxSigned(kind Kind, n int64) Value {
	switch kind {
	case KindInt8:
		return Int8(n)
	case KindInt16:
		return Int16(n)
	case KindInt32:
		return Int32(n)
	default:
		return Int64(n)
	}
}

func boxUnsigned(kind Kind, n uint64) Value {
	switch kind {
	case KindUint8:
		return Uint8(n)
	case KindUint16:
		return Uint16(n)
	case KindUint32:
		return Uint32(n)
	default:
		return Uint64(n)
	}
}
