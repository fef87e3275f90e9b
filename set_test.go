package tokenflag

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testSet struct {
	*Set
	verbose bool
	count   int
	name    string
	tags    []string
}

func newTestSet(t *testing.T, opts ...parseOpt) *testSet {
	ts := &testSet{Set: NewSet(opts...)}
	require.NoError(t, ts.Add("v, verbose", Value(&ts.verbose), Help("be loud")))
	require.NoError(t, ts.Add("n, count", Value(&ts.count)))
	require.NoError(t, ts.Add("name", Value(&ts.name), NonEmpty()))
	require.NoError(t, ts.Add("t, tag", Value(&ts.tags)))
	return ts
}

func requireKind(t *testing.T, err error, kind Kind, what string) {
	t.Helper()
	e, ok := AsError(err)
	require.True(t, ok, "%v", err)
	assert.EqualValues(t, kind, e.Kind)
	assert.EqualValues(t, what, e.What)
}

func TestSetParse(t *testing.T) {
	for _, _case := range []struct {
		args    []string
		verbose bool
		count   int
		pos     []string
	}{
		{nil, false, 0, nil},
		{[]string{"-v"}, true, 0, nil},
		{[]string{"-vn5"}, true, 5, nil},
		{[]string{"-n", "5", "a"}, false, 5, []string{"a"}},
		{[]string{"-n", "-5"}, false, -5, nil},
		{[]string{"--count=7"}, false, 7, nil},
		{[]string{"--count", "0x10"}, false, 16, nil},
		{[]string{"a", "--verbose", "b"}, true, 0, []string{"a", "b"}},
		{[]string{"--verbose=false"}, false, 0, nil},
		{[]string{"-n1", "-n2"}, false, 2, nil},
		{[]string{"-", "-v"}, true, 0, []string{"-"}},
		{[]string{"-v", "--", "-n", "3"}, true, 0, []string{"-n", "3"}},
	} {
		ts := newTestSet(t)
		pos, err := ts.Parse(_case.args)
		require.NoError(t, err, "%q", _case.args)
		assert.EqualValues(t, _case.verbose, ts.verbose, "%q", _case.args)
		assert.EqualValues(t, _case.count, ts.count, "%q", _case.args)
		assert.EqualValues(t, _case.pos, pos, "%q", _case.args)
	}
}

func TestSetParseErrors(t *testing.T) {
	for _, _case := range []struct {
		args []string
		kind Kind
		what string
	}{
		{[]string{"-n"}, KindMissing, "n"},
		{[]string{"--count"}, KindMissing, "count"},
		{[]string{"--nope"}, KindUnknown, "nope"},
		{[]string{"-vx"}, KindUnknown, "x"},
		{[]string{"---x"}, KindSyntax, "---x"},
		{[]string{"--=x"}, KindSyntax, "--=x"},
		{[]string{"--v"}, KindSyntax, "--v"},
		{[]string{"--name="}, KindEmpty, "name"},
		{[]string{"-nv"}, KindBadType, "v"},
		{[]string{"--count=300000000000000000000"}, KindBadType, "300000000000000000000"},
	} {
		ts := newTestSet(t)
		_, err := ts.Parse(_case.args)
		requireKind(t, err, _case.kind, _case.what)
		assert.True(t, IsParseError(err))
		assert.False(t, IsSpecifyError(err))
	}
}

func TestSetBadTypeContext(t *testing.T) {
	ts := newTestSet(t)
	_, err := ts.Parse([]string{"--count=x"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `error setting flag "count"`)
	assert.True(t, errors.Is(err, KindBadType))
	assert.EqualValues(t, 0, ts.count)
}

func TestSetDefaultHelp(t *testing.T) {
	for _, arg := range []string{"-h", "--help"} {
		_, err := newTestSet(t).Parse([]string{arg})
		assert.Equal(t, ErrDefaultHelp, err)
	}
	_, err := newTestSet(t, NoDefaultHelp()).Parse([]string{"-h"})
	requireKind(t, err, KindUnknown, "h")
}

func TestSetSequence(t *testing.T) {
	ts := newTestSet(t)
	_, err := ts.Parse([]string{"--tag", "a", "-t", "b,c"})
	require.NoError(t, err)
	assert.EqualValues(t, []string{"a", "b", "c"}, ts.tags)
	assert.EqualValues(t, 2, ts.Count("tag"))
	assert.EqualValues(t, 2, ts.Count("t"))
	assert.EqualValues(t, 0, ts.Count("count"))
	assert.EqualValues(t, 0, ts.Count("missing"))
	assert.Nil(t, ts.Lookup("missing"))
	assert.True(t, ts.Lookup("t").IsContainer())
}

func TestSetDefaults(t *testing.T) {
	s := NewSet()
	level, err := New[int]().DefaultValue("3")
	require.NoError(t, err)
	require.NoError(t, s.Add("l, level", level))
	_, err = s.Parse(nil)
	require.NoError(t, err)
	assert.EqualValues(t, 3, Get[int](level.(*Var)))

	s = NewSet()
	level = level.Clone()
	require.NoError(t, s.Add("l, level", level))
	_, err = s.Parse([]string{"-l", "9"})
	require.NoError(t, err)
	assert.EqualValues(t, 9, Get[int](level.(*Var)))
}

func TestSetRequired(t *testing.T) {
	s := NewSet()
	require.NoError(t, s.Add("o, output", New[string](), Required()))
	_, err := s.Parse(nil)
	requireKind(t, err, KindNotPresent, "output")
	_, err = s.Parse([]string{"-o", "x"})
	assert.NoError(t, err)
}

func TestSetImplicit(t *testing.T) {
	s := NewSet()
	color, err := New[string]().ImplicitValue("auto")
	require.NoError(t, err)
	require.NoError(t, s.Add("c, color", color))
	pos, err := s.Parse([]string{"--color", "always"})
	require.NoError(t, err)
	assert.EqualValues(t, "auto", Get[string](color.(*Var)))
	assert.EqualValues(t, []string{"always"}, pos)

	_, err = s.Parse([]string{"--color=never"})
	require.NoError(t, err)
	assert.EqualValues(t, "never", Get[string](color.(*Var)))
}

func TestSetNoValue(t *testing.T) {
	s := NewSet()
	quiet := New[bool]()
	require.NoError(t, s.Add("q, quiet", quiet, NoValue()))
	require.NoError(t, s.Add("level", New[int](), NoValue()))

	_, err := s.Parse([]string{"-q"})
	require.NoError(t, err)
	assert.True(t, Get[bool](quiet))

	_, err = s.Parse([]string{"--quiet=false"})
	e, ok := AsError(err)
	require.True(t, ok)
	assert.EqualValues(t, KindReject, e.Kind)
	assert.EqualValues(t, "quiet", e.What)
	assert.EqualValues(t, "false", e.Given)
	assert.Contains(t, e.Error(), "but still given")

	_, err = s.Parse([]string{"--level"})
	requireKind(t, err, KindNotSatisfied, "int")
}

func TestSetAddErrors(t *testing.T) {
	s := NewSet()
	require.NoError(t, s.Add("v, verbose", New[bool]()))
	for _, _case := range []struct {
		spec string
		kind Kind
		what string
	}{
		{"v, other", KindDuplicate, "v"},
		{"x, verbose", KindDuplicate, "verbose"},
		{"v", KindDuplicate, "v"},
		{"", KindInvalid, ""},
		{"ab, long", KindInvalid, "ab, long"},
		{"x, -bad", KindInvalid, "x, -bad"},
		{"x, y", KindInvalid, "x, y"},
	} {
		err := s.Add(_case.spec, New[int]())
		requireKind(t, err, _case.kind, _case.what)
		assert.True(t, IsSpecifyError(err), "%q", _case.spec)
	}
	// Failed declarations leave nothing behind.
	assert.Nil(t, s.Lookup("x"))
	assert.Nil(t, s.Lookup("other"))
}

func TestSetWriteOptions(t *testing.T) {
	s := NewSet()
	require.NoError(t, s.Add("v, verbose", New[bool](), Help("be loud")))
	require.NoError(t, s.Add("level", New[int](), Help("level")))
	var buf bytes.Buffer
	s.WriteOptions(&buf)
	assert.Equal(t, "Options:\n"+
		"  -v, --verbose   be loud\n"+
		"  --level         level\n", buf.String())

	buf.Reset()
	NewSet().WriteOptions(&buf)
	assert.Empty(t, buf.String())
}
