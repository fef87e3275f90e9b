package tokenflag

import (
	"strings"

	"github.com/pkg/errors"
)

// Set is a collection of options keyed by their short and long names. It
// feeds raw arguments through MatchArgument, and resolves what the matcher
// leaves open: which characters of a -abc cluster are flags and which are an
// inline value.
type Set struct {
	noDefaultHelp bool
	program       string
	delim         rune

	args  []*arg
	short map[string]*arg
	long  map[string]*arg
}

func NewSet(opts ...parseOpt) *Set {
	s := &Set{
		program: "program",
		delim:   DefaultDelimiter,
		short:   make(map[string]*arg),
		long:    make(map[string]*arg),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Add declares an option. specifier is as for SplitSpecifier.
func (s *Set) Add(specifier string, token Token, opts ...argOpt) error {
	short, long, err := SplitSpecifier(specifier)
	if err != nil {
		return err
	}
	// Long names of one character can't be matched by --name.
	if len(long) == 1 {
		return newError(KindInvalid, specifier)
	}
	if _, ok := s.short[short]; ok && short != "" {
		return newError(KindDuplicate, short)
	}
	if _, ok := s.long[long]; ok && long != "" {
		return newError(KindDuplicate, long)
	}
	a := &arg{
		short: short,
		long:  long,
		token: token,
	}
	for _, opt := range opts {
		opt(a)
	}
	if short != "" {
		s.short[short] = a
	}
	if long != "" {
		s.long[long] = a
	}
	s.args = append(s.args, a)
	return nil
}

func (s *Set) lookup(name string) *arg {
	if a, ok := s.long[name]; ok {
		return a
	}
	return s.short[name]
}

// Lookup returns the Token for a short or long name, or nil.
func (s *Set) Lookup(name string) Token {
	a := s.lookup(name)
	if a == nil {
		return nil
	}
	return a.token
}

// The number of times the named option was given.
func (s *Set) Count(name string) int {
	a := s.lookup(name)
	if a == nil {
		return 0
	}
	return a.count
}

func (s *Set) unknown(name string) error {
	if (name == "help" || name == "h") && !s.noDefaultHelp {
		return ErrDefaultHelp
	}
	return newError(KindUnknown, name)
}

// Parse sets options from args, and returns the arguments that aren't
// options. Everything after "--" is positional. Options that weren't given
// take their default, if they have one.
func (s *Set) Parse(args []string) (pos []string, err error) {
	for len(args) != 0 {
		a := args[0]
		args = args[1:]
		if a == "--" {
			pos = append(pos, args...)
			break
		}
		desc, ok := MatchArgument(a)
		if !ok {
			if strings.HasPrefix(a, "-") && len(a) > 1 {
				return nil, newError(KindSyntax, a)
			}
			pos = append(pos, a)
			continue
		}
		if desc.Grouping {
			args, err = s.parseGroup(desc.Name, args)
		} else {
			args, err = s.parseLong(desc, args)
		}
		if err != nil {
			return nil, err
		}
	}
	err = s.finish()
	return
}

func (s *Set) parseLong(desc ArgumentDescriptor, args []string) ([]string, error) {
	a, ok := s.long[desc.Name]
	if !ok {
		return args, s.unknown(desc.Name)
	}
	if desc.SetValue {
		return args, a.marshal(desc.Name, desc.Value)
	}
	return s.parseWithoutValue(a, desc.Name, args)
}

// Each character of run is a short option. An option that needs a value
// takes the rest of the run, or the next argument if it's the last.
func (s *Set) parseGroup(run string, args []string) ([]string, error) {
	for i := range run {
		name := run[i : i+1]
		a, ok := s.short[name]
		if !ok {
			return args, s.unknown(name)
		}
		if i == len(run)-1 {
			return s.parseWithoutValue(a, name, args)
		}
		if !a.wantsValue() {
			if err := a.marshalImplicit(name); err != nil {
				return args, err
			}
			continue
		}
		return args, a.marshal(name, run[i+1:])
	}
	return args, nil
}

func (s *Set) parseWithoutValue(a *arg, name string, args []string) ([]string, error) {
	if !a.wantsValue() {
		return args, a.marshalImplicit(name)
	}
	if len(args) == 0 {
		return args, newError(KindMissing, name)
	}
	return args[1:], a.marshal(name, args[0])
}

func (s *Set) finish() error {
	for _, a := range s.args {
		if a.count != 0 {
			continue
		}
		if a.token.HasDefault() {
			if err := a.token.Parse(a.token.Default()); err != nil {
				return errors.Wrapf(err, "error setting default for %q", a.name())
			}
			continue
		}
		if a.required {
			return newError(KindNotPresent, a.name())
		}
	}
	return nil
}
