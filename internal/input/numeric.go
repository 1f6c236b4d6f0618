package input

import (
	"math"
	"strconv"
	"strings"
)

// unitFactors maps value suffixes to multipliers. Longer suffixes come first
// so "kB" is not read as a "B" prefix.
var unitFactors = []struct {
	suffix string
	factor uint64
}{
	{"kB", 1000},
	{"MB", 1000 * 1000},
	{"GB", 1000 * 1000 * 1000},
	{"K", 1 << 10},
	{"M", 1 << 20},
	{"G", 1 << 30},
	{"k", 1000},
	{"c", 1},
	{"w", 2},
}

// parseNumber runs the decimal, unit-suffix and hex stages in order and
// boxes the first success into kind. Hex-first inputs try base 16 before
// anything else and accept bare digits; other inputs only read hex carrying
// a 0x prefix or h suffix.
func parseNumber(kind Kind, raw string, hexFirst bool) (Value, bool) {
	bits, signed, ok := kind.width()
	if !ok {
		return nil, false
	}
	s := strings.TrimSpace(trimQuotes(raw))
	if s == "" {
		return nil, false
	}

	stages := []func(string, int, bool) (int64, uint64, bool){parseDecimal, parseFactor, parseMarkedHex}
	if hexFirst {
		stages = []func(string, int, bool) (int64, uint64, bool){parseHex, parseDecimal, parseFactor}
	}
	for _, stage := range stages {
		i, u, ok := stage(s, bits, signed)
		if !ok {
			continue
		}
		if signed {
			return boxSigned(kind, i), true
		}
		return boxUnsigned(kind, u), true
	}
	return nil, false
}

func parseDecimal(s string, bits int, signed bool) (int64, uint64, bool) {
	if signed {
		v, err := strconv.ParseInt(s, 10, bits)
		return v, 0, err == nil
	}
	v, err := strconv.ParseUint(strings.TrimPrefix(s, "+"), 10, bits)
	return 0, v, err == nil
}

func parseFactor(s string, bits int, signed bool) (int64, uint64, bool) {
	for _, unit := range unitFactors {
		if !strings.HasSuffix(s, unit.suffix) {
			continue
		}
		base := strings.TrimSuffix(s, unit.suffix)
		i, u, ok := parseDecimal(base, bits, signed)
		if !ok {
			return 0, 0, false
		}
		if signed {
			v, ok := mulSigned(i, int64(unit.factor), bits)
			return v, 0, ok
		}
		v, ok := mulUnsigned(u, unit.factor, bits)
		return 0, v, ok
	}
	return 0, 0, false
}

// parseMarkedHex is parseHex restricted to strings with a hex identifier, so
// words such as "bad" are not numbers.
func parseMarkedHex(s string, bits int, signed bool) (int64, uint64, bool) {
	if removeHexIdentifier(s) == s {
		return 0, 0, false
	}
	return parseHex(s, bits, signed)
}

// parseHex reads s as base 16 after removing a 0x prefix or h suffix. Signed
// kinds take the two's complement reading of the full bit width, so "ff"
// is -1 for an int8.
func parseHex(s string, bits int, signed bool) (int64, uint64, bool) {
	digits := removeHexIdentifier(s)
	if digits == "" {
		return 0, 0, false
	}
	u, err := strconv.ParseUint(digits, 16, bits)
	if err != nil {
		return 0, 0, false
	}
	if !signed {
		return 0, u, true
	}
	if bits < 64 && u&(1<<(bits-1)) != 0 {
		return int64(u) - (1 << bits), 0, true
	}
	return int64(u), 0, true
}

func removeHexIdentifier(s string) string {
	switch {
	case strings.HasPrefix(s, "0x"), strings.HasPrefix(s, "0X"):
		return s[2:]
	case strings.HasSuffix(s, "h"), strings.HasSuffix(s, "H"):
		return s[:len(s)-1]
	default:
		return s
	}
}

func mulSigned(v, factor int64, bits int) (int64, bool) {
	maxV := int64(math.MaxInt64)
	minV := int64(math.MinInt64)
	if bits < 64 {
		maxV = (1 << (bits - 1)) - 1
		minV = -(1 << (bits - 1))
	}
	if v > maxV/factor || v < minV/factor {
		return 0, false
	}
	return v * factor, true
}

func mulUnsigned(v, factor uint64, bits int) (uint64, bool) {
	maxV := uint64(math.MaxUint64)
	if bits < 64 {
		maxV = (1 << bits) - 1
	}
	if v > maxV/factor {
		return 0, false
	}
	return v * factor, true
}

func parseBoolLiteral(s string) (bool, bool) {
	switch strings.ToLower(strings.TrimSpace(trimQuotes(s))) {
	case "true":
		return true, true
	case "false":
		return false, true
	default:
		return false, false
	}
}

func trimQuotes(s string) string {
	return strings.Trim(s, `"`)
}
