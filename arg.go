package tokenflag

import (
	"github.com/pkg/errors"
)

// An option declared in a Set.
type arg struct {
	short string
	long  string
	help  string
	token Token

	required bool
	nonEmpty bool
	noValue  bool

	count int
}

func (me *arg) name() string {
	if me.long != "" {
		return me.long
	}
	return me.short
}

// Sets an explicitly given value. name is the name the option was referred to by.
func (me *arg) marshal(name, value string) error {
	if me.noValue {
		return rejectError(name, value)
	}
	if me.nonEmpty && value == "" {
		return newError(KindEmpty, name)
	}
	return me.parse(name, func() error { return me.token.Parse(value) })
}

func (me *arg) marshalImplicit(name string) error {
	return me.parse(name, me.token.ParseImplicit)
}

func (me *arg) parse(name string, f func() error) error {
	if err := f(); err != nil {
		return errors.Wrapf(err, "error setting flag %q", name)
	}
	me.count++
	return nil
}

// Options that take a value from the following argument.
func (me *arg) wantsValue() bool {
	return !me.noValue && !me.token.HasImplicit()
}
