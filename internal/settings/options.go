package settings

import (
	"maps"
	"slices"
	"strconv"
	"strings"
)

// Options is a string keyed bag of user preferences. Missing keys and values
// that fail to parse fall back to the caller supplied default.
type Options map[string]string

// Clone returns a copy that can be mutated independently.
func (o Options) Clone() Options {
	if o == nil {
		return Options{}
	}
	return maps.Clone(o)
}

// Keys returns the option keys in sorted order.
func (o Options) Keys() []string {
	return slices.Sorted(maps.Keys(o))
}

// Lookup returns the trimmed value for key and whether it was set to a
// non-empty value.
func (o Options) Lookup(key string) (string, bool) {
	if o == nil {
		return "", false
	}
	raw, ok := o[key]
	if !ok {
		return "", false
	}
	raw = strings.TrimSpace(raw)
	return raw, raw != ""
}

// Bool reads key as a boolean.
func (o Options) Bool(key string, fallback bool) bool {
	raw, ok := o.Lookup(key)
	if !ok {
		return fallback
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return fallback
	}
	return v
}

// Int reads key as a base 10 integer.
func (o Options) Int(key string, fallback int) int {
	raw, ok := o.Lookup(key)
	if !ok {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return v
}

// String reads key verbatim.
func (o Options) String(key, fallback string) string {
	raw, ok := o.Lookup(key)
	if !ok {
		return fallback
	}
	return raw
}

// IsNone reports whether v is empty or the "NONE" placeholder used for
// disabled enumerated settings.
func IsNone(v string) bool {
	v = strings.TrimSpace(v)
	return v == "" || strings.EqualFold(v, "none")
}
