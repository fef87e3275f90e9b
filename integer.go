package tokenflag

import (
	"math"
	"reflect"
)

// Integer is the set of types ParseInt converts to.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// IntegerDescriptor is a numeric literal split into its parts.
type IntegerDescriptor struct {
	// "-" or "".
	Negative string
	// "0x" or "".
	Base string
	// The digit run.
	Value string
}

func splitInteger(text string) (ret IntegerDescriptor, err error) {
	m := integerRegexp().FindStringSubmatch(text)
	if m == nil {
		err = badType(text, nil)
		return
	}
	ret.Negative = m[1]
	if m[4] != "" {
		ret.Base = m[5]
		ret.Value = "0"
	} else {
		ret.Base = m[2]
		ret.Value = m[3]
	}
	return
}

func digitValue(c byte, hex bool) (uint64, bool) {
	switch {
	case c >= '0' && c <= '9':
		return uint64(c - '0'), true
	case hex && c >= 'a' && c <= 'f':
		return uint64(c-'a') + 10, true
	case hex && c >= 'A' && c <= 'F':
		return uint64(c-'A') + 10, true
	}
	return 0, false
}

// Accumulates the magnitude of text into an unsigned value no wider than bits.
func integerMagnitude(text string, bits int) (negative bool, magnitude uint64, err error) {
	desc, err := splitInteger(text)
	if err != nil {
		return
	}
	negative = desc.Negative != ""
	hex := desc.Base != ""
	base := uint64(10)
	if hex {
		base = 16
	}
	limit := uint64(math.MaxUint64) >> (64 - bits)
	for i := 0; i < len(desc.Value); i++ {
		d, ok := digitValue(desc.Value[i], hex)
		if !ok {
			err = badType(text, nil)
			return
		}
		// Overflow guard: magnitude*base+d must stay within limit.
		if magnitude > (limit-d)/base {
			err = badType(text, nil)
			return
		}
		magnitude = magnitude*base + d
	}
	return
}

func parseSigned(text string, bits int) (int64, error) {
	negative, m, err := integerMagnitude(text, bits)
	if err != nil {
		return 0, err
	}
	max := uint64(1)<<(bits-1) - 1
	if negative {
		// |min| is one more than max.
		if m > max+1 {
			return 0, badType(text, nil)
		}
		return -int64(m-1) - 1, nil
	}
	if m > max {
		return 0, badType(text, nil)
	}
	return int64(m), nil
}

func parseUnsigned(text string, bits int) (uint64, error) {
	negative, m, err := integerMagnitude(text, bits)
	if err != nil {
		return 0, err
	}
	if negative {
		return 0, badType(text, nil)
	}
	return m, nil
}

func isSignedKind(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return true
	}
	return false
}

func isUnsignedKind(k reflect.Kind) bool {
	switch k {
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return true
	}
	return false
}

// ParseInt converts a decimal or 0x-prefixed hexadecimal literal with an
// optional leading '-' to T, failing on overflow or when the value doesn't
// fit T.
func ParseInt[T Integer](text string) (T, error) {
	t := reflect.TypeOf(T(0))
	if isSignedKind(t.Kind()) {
		i, err := parseSigned(text, t.Bits())
		return T(i), err
	}
	u, err := parseUnsigned(text, t.Bits())
	return T(u), err
}
