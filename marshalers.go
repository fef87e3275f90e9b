package tokenflag

import (
	"encoding"
	"fmt"
	"reflect"
	"strings"

	"github.com/huandu/xstrings"
)

// The separator for values of slice type, unless a Var or Set says otherwise.
const DefaultDelimiter = ','

// Marshaler is implemented by types that parse their own values. It's checked
// on a pointer to the target before anything else.
type Marshaler interface {
	Marshal(in string) error
}

var (
	marshalerType       = reflect.TypeOf((*Marshaler)(nil)).Elem()
	textUnmarshalerType = reflect.TypeOf((*encoding.TextUnmarshaler)(nil)).Elem()
	charType            = reflect.TypeOf(Char(0))
)

// Convert parses text into the value target points to. Slices are appended
// to, using DefaultDelimiter to separate elements. Pointers are allocated.
func Convert(text string, target interface{}) error {
	v := reflect.ValueOf(target)
	if v.Kind() != reflect.Ptr || v.IsNil() {
		return fmt.Errorf("target for value %q is not a non-nil pointer", text)
	}
	if err := checkConvertible(v.Type().Elem()); err != nil {
		return err
	}
	return convertValue(v.Elem(), text, DefaultDelimiter)
}

// Dispatches on the type of v, which must be settable.
func convertValue(v reflect.Value, text string, delim rune) error {
	if v.CanAddr() {
		switch m := v.Addr().Interface().(type) {
		case Marshaler:
			return wrapBadType(text, m.Marshal(text))
		case encoding.TextUnmarshaler:
			return wrapBadType(text, m.UnmarshalText([]byte(text)))
		}
	}
	if f, ok := typeMarshalFuncs[v.Type()]; ok {
		return f(v, text)
	}
	if v.Type() == charType {
		c, err := ParseChar(text)
		if err == nil {
			v.SetInt(int64(c))
		}
		return err
	}
	k := v.Kind()
	switch {
	case k == reflect.Bool:
		b, err := ParseBool(text)
		if err == nil {
			v.SetBool(b)
		}
		return err
	case isSignedKind(k):
		i, err := parseSigned(text, v.Type().Bits())
		if err == nil {
			v.SetInt(i)
		}
		return err
	case isUnsignedKind(k):
		u, err := parseUnsigned(text, v.Type().Bits())
		if err == nil {
			v.SetUint(u)
		}
		return err
	case k == reflect.String:
		v.SetString(text)
		return nil
	case k == reflect.Slice:
		return convertSequence(v, text, delim)
	case k == reflect.Ptr:
		n := reflect.New(v.Type().Elem())
		if err := convertValue(n.Elem(), text, delim); err != nil {
			return err
		}
		v.Set(n)
		return nil
	}
	return scanValue(v, text)
}

// Appends each delimited field of text to the slice v. v is only modified if
// every field converts. A trailing delimiter doesn't add an element.
func convertSequence(v reflect.Value, text string, delim rune) error {
	elems := v
	sep := string(delim)
	for rest := text; rest != ""; {
		var field string
		field, _, rest = xstrings.Partition(rest, sep)
		e := reflect.New(v.Type().Elem()).Elem()
		if err := convertValue(e, field, delim); err != nil {
			return err
		}
		elems = reflect.Append(elems, e)
	}
	v.Set(elems)
	return nil
}

// The fallback, which attempts fmt.Fscan, and insists the entire text is
// consumed.
func scanValue(v reflect.Value, text string) error {
	r := strings.NewReader(text)
	n, err := fmt.Fscan(r, v.Addr().Interface())
	if err != nil {
		return badType(text, err)
	}
	if n != 1 {
		panic(n)
	}
	if rest := text[len(text)-r.Len():]; strings.TrimSpace(rest) != "" {
		return badType(text, fmt.Errorf("unexpected trailing text %q", rest))
	}
	return nil
}

func wrapBadType(text string, err error) error {
	if err == nil {
		return nil
	}
	if _, ok := AsError(err); ok {
		return err
	}
	return badType(text, err)
}

// Returns the type nested in t that can't be converted to, or nil.
func cannotConvert(t reflect.Type) reflect.Type {
	pt := reflect.PtrTo(t)
	if pt.Implements(marshalerType) || pt.Implements(textUnmarshalerType) {
		return nil
	}
	if _, ok := typeMarshalFuncs[t]; ok {
		return nil
	}
	k := t.Kind()
	switch {
	case k == reflect.Bool, k == reflect.String, isSignedKind(k), isUnsignedKind(k):
		return nil
	case k == reflect.Float32, k == reflect.Float64, k == reflect.Complex64, k == reflect.Complex128:
		return nil
	case k == reflect.Ptr, k == reflect.Slice:
		return cannotConvert(t.Elem())
	}
	return t
}

func checkConvertible(t reflect.Type) error {
	if ct := cannotConvert(t); ct != nil {
		return fmt.Errorf("can't convert to type %s: %s", fullTypeName(ct), t)
	}
	return nil
}

func fullTypeName(t reflect.Type) string {
	if t.PkgPath() == "" {
		return t.String()
	}
	return fmt.Sprintf(`"%s".%s`, t.PkgPath(), t.Name())
}
