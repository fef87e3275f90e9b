package tokenflag

type parseOpt func(s *Set)

// Don't treat -h and --help as a request for help when they aren't declared.
func NoDefaultHelp() parseOpt {
	return func(s *Set) {
		s.noDefaultHelp = true
	}
}

// Sets the program name used when reporting errors.
func Program(program string) parseOpt {
	return func(s *Set) {
		s.program = program
	}
}

// Sets the element separator for slice fields of a bound struct.
func Delimiter(r rune) parseOpt {
	return func(s *Set) {
		s.delim = r
	}
}

type argOpt func(a *arg)

// Text describing the option.
func Help(help string) argOpt {
	return func(a *arg) {
		a.help = help
	}
}

// Parsing fails if the option isn't given and has no default.
func Required() argOpt {
	return func(a *arg) {
		a.required = true
	}
}

// An explicit empty value, as in --name=, is an error.
func NonEmpty() argOpt {
	return func(a *arg) {
		a.nonEmpty = true
	}
}

// The option never takes a value. Only its implicit value is used, and
// --name=value is an error.
func NoValue() argOpt {
	return func(a *arg) {
		a.noValue = true
	}
}
