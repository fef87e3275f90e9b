package tokenflag

import (
	"fmt"
	"reflect"
	"strings"
	"unicode/utf8"

	"github.com/anacrolix/missinggo/v2"
	"github.com/bradfitz/iter"
	"github.com/huandu/xstrings"
	"github.com/pkg/errors"
)

// Binds the fields of a command struct to a Set.
type parser struct {
	cmd interface{}
	set *Set

	posArgs []posArg
	numPos  int
}

type arity struct {
	min, max int
}

type posArg struct {
	token *Var
	arity arity
	name  string
	help  string
}

func newParser(cmd interface{}, opts ...parseOpt) (p *parser, err error) {
	p = &parser{
		cmd: cmd,
		set: NewSet(opts...),
	}
	err = p.parseCmd()
	return
}

func (p *parser) parseCmd() error {
	if p.cmd == nil {
		return nil
	}
	v := reflect.ValueOf(p.cmd)
	if v.Kind() != reflect.Ptr || v.IsNil() {
		return fmt.Errorf("expected pointer to struct got %T", p.cmd)
	}
	s := v.Elem()
	if s.Kind() != reflect.Struct {
		return fmt.Errorf("expected struct got %s", s.Type())
	}
	return p.parseStruct(s)
}

// Positional arguments are marked per struct.
func (p *parser) parseStruct(st reflect.Value) (err error) {
	posStarted := false
	foreachStructField(st, func(f reflect.Value, sf reflect.StructField) (stop bool) {
		if !posStarted && f.Type() == reflect.TypeOf(StartPos{}) {
			posStarted = true
			return false
		}
		if sf.PkgPath != "" {
			return false
		}
		if cannotConvert(f.Type()) == nil {
			if posStarted {
				err = p.addPos(f, sf)
			} else {
				err = p.addFlag(f, sf)
				if err != nil {
					err = errors.Wrapf(err, "error adding flag in %s", st.Type())
				}
			}
			return err != nil
		}
		if f.Kind() == reflect.Struct {
			err = p.parseStruct(f)
			return err != nil
		}
		err = errors.Wrapf(newError(KindInvalid, sf.Name), "field has bad type: %v", f.Type())
		return true
	})
	return
}

func fieldArity(v reflect.Value, sf reflect.StructField) (arity arity) {
	arity.min = 1
	arity.max = 1
	switch v.Kind() {
	case reflect.Slice:
		arity.max = infArity
	case reflect.Ptr:
		arity.min = 0
	}
	if sf.Tag.Get("arity") != "" {
		switch sf.Tag.Get("arity") {
		case "?":
			arity.min = 0
		case "*":
			arity.min = 0
			arity.max = infArity
		case "+":
			arity.max = infArity
		default:
			panic(fmt.Sprintf("unhandled arity tag: %q", sf.Tag.Get("arity")))
		}
	}
	return
}

func (p *parser) fieldVar(f reflect.Value, sf reflect.StructField) *Var {
	v := newVar(f).Delimiter(p.set.delim)
	if sep := sf.Tag.Get("sep"); sep != "" {
		r, _ := utf8.DecodeRuneInString(sep)
		v.Delimiter(r)
	}
	return v
}

func (p *parser) addPos(f reflect.Value, sf reflect.StructField) error {
	p.posArgs = append(p.posArgs, posArg{
		token: p.fieldVar(f, sf),
		arity: fieldArity(f, sf),
		name:  strings.ToUpper(xstrings.ToSnakeCase(sf.Name)),
		help:  sf.Tag.Get("help"),
	})
	return nil
}

func (p *parser) addFlag(f reflect.Value, sf reflect.StructField) error {
	v := p.fieldVar(f, sf)
	if d, ok := sf.Tag.Lookup("default"); ok {
		if _, err := v.DefaultValue(d); err != nil {
			return err
		}
	}
	if i, ok := sf.Tag.Lookup("implicit"); ok {
		if _, err := v.ImplicitValue(i); err != nil {
			return err
		}
	}
	opts := []argOpt{Help(sf.Tag.Get("help"))}
	if missinggo.StringTruth(sf.Tag.Get("required")) {
		opts = append(opts, Required())
	}
	return p.set.Add(structFieldSpecifier(sf), v, opts...)
}

func structFieldSpecifier(sf reflect.StructField) string {
	long := sf.Tag.Get("long")
	if long == "" {
		long = sf.Tag.Get("name")
	}
	if long == "" {
		long = fieldLongFlagKey(sf.Name)
	}
	if short := sf.Tag.Get("short"); short != "" {
		return short + "," + long
	}
	return long
}

func (p *parser) parse(args []string) error {
	pos, err := p.set.Parse(args)
	if err != nil {
		return err
	}
	for _, a := range pos {
		if err := p.parsePos(a); err != nil {
			return err
		}
	}
	if p.numPos < p.minPos() {
		return newError(KindNotPresent, p.indexPosArg(p.numPos).name)
	}
	return nil
}

func (p *parser) minPos() (min int) {
	for _, arg := range p.posArgs {
		min += arg.arity.min
	}
	return
}

func (p *parser) indexPosArg(i int) *posArg {
	for j := range p.posArgs {
		arg := &p.posArgs[j]
		if i < arg.arity.max {
			return arg
		}
		i -= arg.arity.max
	}
	return nil
}

func (p *parser) parsePos(s string) error {
	arg := p.indexPosArg(p.numPos)
	if arg == nil {
		return newError(KindUnknown, s)
	}
	parse := arg.token.Parse
	if arg.token.IsContainer() {
		// Each positional argument is one element.
		parse = arg.token.parseElement
	}
	if err := parse(s); err != nil {
		return errors.Wrapf(err, "error setting argument %q", arg.name)
	}
	p.numPos++
	return nil
}

func foreachStructField(_struct reflect.Value, f func(fv reflect.Value, sf reflect.StructField) (stop bool)) {
	t := _struct.Type()
	for i := range iter.N(t.NumField()) {
		sf := t.Field(i)
		fv := _struct.Field(i)
		if f(fv, sf) {
			break
		}
	}
}
