package tokenflag

import (
	"reflect"

	"github.com/anacrolix/missinggo/v2/panicif"
)

// Token is the value sink bound to one declared option. Tokens aren't safe
// for concurrent mutation.
type Token interface {
	// Returns a Token with the same configuration and fresh, unset storage.
	Clone() Token
	// Converts text and stores it, replacing a scalar or appending to a slice.
	Parse(text string) error
	// Parses the implicit value, failing with KindNotSatisfied if there isn't
	// one.
	ParseImplicit() error
	HasDefault() bool
	// Whether there's a value to use when the option is given without one.
	HasImplicit() bool
	IsContainer() bool
	IsBoolean() bool
	Default() string
	Implicit() string
	// Sets the default value after checking that it converts. Returns the
	// receiver for chaining.
	DefaultValue(text string) (Token, error)
	ImplicitValue(text string) (Token, error)
}

// Var is the Token implementation for any type Convert supports.
type Var struct {
	target reflect.Value
	delim  rune
	count  int

	defaultText  string
	hasDefault   bool
	implicitText string
	hasImplicit  bool
}

var _ Token = (*Var)(nil)

// NewVar binds a Token to the value p points to. It panics if the type isn't
// supported.
func NewVar(p interface{}) *Var {
	v := reflect.ValueOf(p)
	if v.Kind() != reflect.Ptr || v.IsNil() {
		panic("target must be a non-nil pointer")
	}
	return newVar(v.Elem())
}

// Value is a typed NewVar.
func Value[T any](p *T) *Var {
	return NewVar(p)
}

// New returns a Var that owns its storage.
func New[T any]() *Var {
	return NewVar(new(T))
}

// Get returns the current value held by v.
func Get[T any](v *Var) T {
	return v.target.Interface().(T)
}

// target must be addressable.
func newVar(target reflect.Value) *Var {
	panicif.NotNil(checkConvertible(target.Type()))
	v := &Var{
		target: target,
		delim:  DefaultDelimiter,
	}
	if v.IsBoolean() {
		v.implicitText = "true"
		v.hasImplicit = true
	}
	return v
}

// Sets the separator for elements of slice values.
func (v *Var) Delimiter(r rune) *Var {
	v.delim = r
	return v
}

func (v *Var) Clone() Token {
	c := *v
	c.target = reflect.New(v.target.Type()).Elem()
	c.count = 0
	return &c
}

func (v *Var) Parse(text string) error {
	n := reflect.New(v.target.Type()).Elem()
	n.Set(v.target)
	if err := convertValue(n, text, v.delim); err != nil {
		return err
	}
	v.target.Set(n)
	v.count++
	return nil
}

// Appends text to a slice target as one element, without splitting it on
// the delimiter.
func (v *Var) parseElement(text string) error {
	e := reflect.New(v.target.Type().Elem()).Elem()
	if err := convertValue(e, text, v.delim); err != nil {
		return err
	}
	v.target.Set(reflect.Append(v.target, e))
	v.count++
	return nil
}

func (v *Var) ParseImplicit() error {
	if !v.hasImplicit {
		return newError(KindNotSatisfied, v.target.Type().String())
	}
	return v.Parse(v.implicitText)
}

func (v *Var) check(text string) error {
	return convertValue(reflect.New(v.target.Type()).Elem(), text, v.delim)
}

func (v *Var) DefaultValue(text string) (Token, error) {
	if err := v.check(text); err != nil {
		return nil, err
	}
	v.defaultText = text
	v.hasDefault = true
	return v, nil
}

func (v *Var) ImplicitValue(text string) (Token, error) {
	if err := v.check(text); err != nil {
		return nil, err
	}
	v.implicitText = text
	v.hasImplicit = true
	return v, nil
}

func (v *Var) HasDefault() bool  { return v.hasDefault }
func (v *Var) HasImplicit() bool { return v.hasImplicit }
func (v *Var) Default() string   { return v.defaultText }
func (v *Var) Implicit() string  { return v.implicitText }

func (v *Var) IsContainer() bool {
	return v.target.Kind() == reflect.Slice
}

func (v *Var) IsBoolean() bool {
	t := v.target.Type()
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Kind() == reflect.Bool
}

// The number of successful calls to Parse.
func (v *Var) Count() int {
	return v.count
}

func (v *Var) Interface() interface{} {
	return v.target.Interface()
}
