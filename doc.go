// Package tokenflag tokenizes command-line arguments and converts their
// values to typed Go variables.
//
// The pieces can be used on their own. SplitSpecifier parses the "v, verbose"
// form used to declare an option. MatchArgument classifies a raw argument as
// --name[=value] or a -abc cluster. Convert and ParseInt turn text into
// values, with overflow and range checks on integers of every width.
//
// A Token is the value sink for one option. Var implements it for any
// supported type, and remembers a default value and an implicit value (used
// when the option is given without one). A Set ties Tokens to names and
// parses an argument list:
//
//	var n int
//	s := tokenflag.NewSet()
//	s.Add("n, count", tokenflag.Value(&n))
//	pos, err := s.Parse(os.Args[1:])
//
// ParseErr and Parse derive a Set from struct fields instead:
//
//	var opts struct {
//	    Verbose bool     `short:"v" help:"more output"`
//	    Level   int8     `default:"3"`
//	    Peers   []string `sep:";"`
//	    StartPos
//	    Torrent []string `arity:"+" help:"torrent file path or magnet uri"`
//	}
//	tokenflag.Parse(&opts)
//
// Supported tags include:
//
//	help: a line of text to show after the option
//	short: a single character for the "-X" form of an option
//	long: an override for the --some-option form derived from the field name
//	default: value used when the option isn't given
//	implicit: value used when the option is given without one
//	required: the option must be given, unless it has a default
//	sep: separator for elements of slice options, "," by default
//	arity: for positional arguments. ? for optional, + for one or more, or *
//	       for zero or more.
//
// Errors are all *Error, and match ErrSpecify when raised while declaring
// options, or ErrParse when raised by the arguments themselves.
package tokenflag
