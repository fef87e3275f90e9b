package tokenflag

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
)

type parseCase struct {
	args     []string
	err      *Error
	expected interface{}
}

func noErrorCase(expected interface{}, args ...string) parseCase {
	return parseCase{args: args, expected: expected}
}

func errorCase(kind Kind, what string, args ...string) parseCase {
	return parseCase{args: args, err: newError(kind, what)}
}

func (me parseCase) Run(t *testing.T, newCmd func() interface{}) {
	cmd := newCmd()
	err := ParseErr(cmd, me.args)
	if me.err != nil {
		e, ok := AsError(err)
		if assert.True(t, ok, "%q: %v", me.args, err) {
			assert.EqualValues(t, me.err.Kind, e.Kind, "%q", me.args)
			assert.EqualValues(t, me.err.What, e.What, "%q", me.args)
		}
		return
	}
	if !assert.NoError(t, err, "%q", me.args) {
		return
	}
	assert.EqualValues(t, me.expected, reflect.ValueOf(cmd).Elem().Interface(), "%q", me.args)
}

func RunCases(t *testing.T, cases []parseCase, newCmd func() interface{}) {
	for _, _case := range cases {
		_case.Run(t, newCmd)
	}
}
