package input

import (
	"fmt"
	"strconv"
	"strings"
)

// Input is a named flag with an optional trailing value.
type Input struct {
	name     string
	aliases  []string
	kind     Kind
	required bool

	size     int
	min, max *int32

	hex      bool
	quote    bool
	explicit bool
	bare     bool
	prefixes []string

	value Value
}

// Option configures an Input.
type Option func(*Input)

// Required marks the trailing value as mandatory.
func Required() Option {
	return func(in *Input) { in.required = true }
}

// Alias registers alternate spellings (for example "-h" for "--help").
func Alias(names ...string) Option {
	return func(in *Input) {
		for _, name := range names {
			if name = strings.TrimSpace(name); name != "" {
				in.aliases = append(in.aliases, name)
			}
		}
	}
}

// Bounds restricts array slots to the inclusive range [lo, hi].
func Bounds(lo, hi int32) Option {
	return func(in *Input) {
		in.min = &lo
		in.max = &hi
	}
}

// Hex renders the value in lowercase base 16 and reads base 16 first.
func Hex() Option {
	return func(in *Input) { in.hex = true }
}

// AlwaysQuote wraps string values in double quotes even without whitespace.
func AlwaysQuote() Option {
	return func(in *Input) { in.quote = true }
}

// ExplicitBool renders booleans as "name true" / "name false" rather than a
// bare switch.
func ExplicitBool() Option {
	return func(in *Input) { in.explicit = true }
}

// Bare lets the flag stand alone: a match without a readable value still
// counts as supplied and renders as the name by itself.
func Bare() Option {
	return func(in *Input) { in.bare = true }
}

// FlagPrefix replaces the prefixes that mark a following token as another
// flag rather than a string value. The default is "-".
func FlagPrefix(prefixes ...string) Option {
	return func(in *Input) { in.prefixes = prefixes }
}

// New constructs a scalar Input of the given kind.
func New(kind Kind, name string, opts ...Option) *Input {
	in := &Input{name: name, kind: kind, prefixes: []string{"-"}}
	for _, opt := range opts {
		opt(in)
	}
	return in
}

func NewBool(name string, opts ...Option) *Input   { return New(KindBool, name, opts...) }
func NewInt8(name string, opts ...Option) *Input   { return New(KindInt8, name, opts...) }
func NewUint8(name string, opts ...Option) *Input  { return New(KindUint8, name, opts...) }
func NewInt16(name string, opts ...Option) *Input  { return New(KindInt16, name, opts...) }
func NewUint16(name string, opts ...Option) *Input { return New(KindUint16, name, opts...) }
func NewInt32(name string, opts ...Option) *Input  { return New(KindInt32, name, opts...) }
func NewUint32(name string, opts ...Option) *Input { return New(KindUint32, name, opts...) }
func NewInt64(name string, opts ...Option) *Input  { return New(KindInt64, name, opts...) }
func NewUint64(name string, opts ...Option) *Input { return New(KindUint64, name, opts...) }
func NewString(name string, opts ...Option) *Input { return New(KindString, name, opts...) }

// NewInt32Array constructs an Input that reads size consecutive integers.
func NewInt32Array(name string, size int, opts ...Option) *Input {
	in := New(KindInt32Array, name, opts...)
	if size < 1 {
		size = 1
	}
	in.size = size
	return in
}

func (in *Input) Name() string      { return in.name }
func (in *Input) Kind() Kind        { return in.kind }
func (in *Input) IsRequired() bool  { return in.required }
func (in *Input) Size() int         { return in.size }
func (in *Input) Value() Value      { return in.value }
func (in *Input) IsExplicit() bool  { return in.explicit }
func (in *Input) AllowsBare() bool  { return in.bare }
func (in *Input) Aliases() []string { return append([]string(nil), in.aliases...) }

// Names returns the primary name followed by every alias.
func (in *Input) Names() []string {
	return append([]string{in.name}, in.aliases...)
}

// Reset clears the last processed value.
func (in *Input) Reset() { in.value = nil }

// SetValue stores v after checking its kind. String values lose any
// surrounding double quotes.
func (in *Input) SetValue(v Value) error {
	if v == nil {
		in.value = nil
		return nil
	}
	if v.Kind() != in.kind {
		return fmt.Errorf("flag %s: value kind %s does not match %s", in.name, v.Kind(), in.kind)
	}
	if s, ok := v.(String); ok {
		v = String(trimQuotes(string(s)))
	}
	if arr, ok := v.(Int32Array); ok && len(arr) != in.size {
		return fmt.Errorf("flag %s: expected %d values, got %d", in.name, in.size, len(arr))
	}
	in.value = v
	return nil
}

// match reports whether token names this Input, either on its own or in the
// single-token name=value form.
func (in *Input) match(token string) (inline string, hasInline bool, ok bool) {
	for _, name := range in.Names() {
		if token == name {
			return "", false, true
		}
		if rest, found := strings.CutPrefix(token, name+"="); found {
			return rest, true, true
		}
	}
	return "", false, false
}

// Matches reports whether token is one of this Input's spellings.
func (in *Input) Matches(token string) bool {
	_, _, ok := in.match(token)
	return ok
}

// Process tries to read this flag at parts[index]. It returns the index of
// the next unread token and whether the flag was read successfully. A
// returned index equal to index means the token is not this flag.
//
// When the value is missing or unparseable the flag token alone is consumed:
// optional booleans become true, other optional kinds stay empty, and
// required kinds report failure.
func (in *Input) Process(parts []string, index int) (int, bool) {
	if index < 0 || index >= len(parts) {
		return index, false
	}
	inline, hasInline, ok := in.match(parts[index])
	if !ok {
		return index, false
	}

	candidate, hasCandidate := inline, hasInline
	if !hasInline && index+1 < len(parts) {
		candidate, hasCandidate = parts[index+1], true
	}
	step := 2
	if hasInline {
		step = 1
	}

	switch in.kind {
	case KindBool:
		if hasCandidate {
			if b, ok := parseBoolLiteral(candidate); ok {
				in.value = Bool(b)
				return index + step, true
			}
		}
		if in.required {
			in.value = nil
			return index + 1, false
		}
		in.value = Bool(true)
		return index + 1, true

	case KindString:
		if hasCandidate && (hasInline || !in.looksLikeFlag(candidate)) {
			if s := trimQuotes(candidate); s != "" {
				in.value = String(s)
				return index + step, true
			}
		}
		in.value = nil
		return index + 1, !in.required

	case KindInt32Array:
		return in.processArray(parts, index, inline, hasInline)

	default:
		if hasCandidate {
			if v, ok := parseNumber(in.kind, candidate, in.hex); ok {
				in.value = v
				return index + step, true
			}
		}
		in.value = nil
		return index + 1, !in.required
	}
}

// processArray fills slots left to right and stops at the first slot that
// cannot be read; that slot and every later one stay empty.
func (in *Input) processArray(parts []string, index int, inline string, hasInline bool) (int, bool) {
	slots := make(Int32Array, in.size)
	in.value = slots
	last := index
	for slot := 0; slot < in.size; slot++ {
		var candidate string
		fromInline := slot == 0 && hasInline
		switch {
		case fromInline:
			candidate = inline
		case last+1 < len(parts):
			candidate = parts[last+1]
		default:
			return last + 1, !in.required
		}

		v, ok := parseNumber(KindInt32, candidate, in.hex)
		if !ok || !in.inBounds(int32(v.(Int32))) {
			return last + 1, !in.required
		}
		n := int32(v.(Int32))
		slots[slot] = &n
		if !fromInline {
			last++
		}
	}
	return last + 1, true
}

func (in *Input) looksLikeFlag(token string) bool {
	for _, prefix := range in.prefixes {
		if strings.HasPrefix(token, prefix) {
			return true
		}
	}
	return false
}

func (in *Input) inBounds(v int32) bool {
	if in.min != nil && v < *in.min {
		return false
	}
	if in.max != nil && v > *in.max {
		return false
	}
	return true
}

// Emits reports whether v would produce output for this Input.
func (in *Input) Emits(v Value) bool {
	switch t := v.(type) {
	case nil:
		return false
	case Bool:
		return bool(t) || in.explicit
	case String:
		return t != ""
	default:
		return true
	}
}

// Format renders the last processed value.
func (in *Input) Format(useEquals bool) string {
	return in.FormatValue(in.value, useEquals)
}

// FormatValue renders v as name, separator and value. Empty values render as
// an empty string.
func (in *Input) FormatValue(v Value, useEquals bool) string {
	if !in.Emits(v) {
		return ""
	}
	sep := " "
	if useEquals {
		sep = "="
	}

	switch t := v.(type) {
	case Bool:
		if in.explicit {
			return in.name + sep + t.String()
		}
		return in.name
	case String:
		return in.name + sep + in.quoteString(string(t))
	case Int32Array:
		rendered := t.String()
		if rendered == "" {
			return in.name
		}
		return in.name + sep + rendered
	case Uint8:
		if in.hex {
			return in.name + sep + fmt.Sprintf("%02x", uint8(t))
		}
		return in.name + sep + t.String()
	default:
		if in.hex {
			if n, ok := AsInt(v); ok && n >= 0 {
				return in.name + sep + strconv.FormatInt(n, 16)
			}
		}
		return in.name + sep + v.String()
	}
}

func (in *Input) quoteString(s string) string {
	if len(s) >= 2 && strings.HasPrefix(s, `"`) && strings.HasSuffix(s, `"`) {
		return s
	}
	if in.quote || strings.ContainsAny(s, " \t") {
		return `"` + s + `"`
	}
	return s
}
