package tokenflag

import (
	"errors"
	"fmt"
	"os"

	"github.com/anacrolix/missinggo/v2"
)

// Struct fields after this one are considered positional arguments.
type StartPos struct{}

// Default help flag was provided, and should be handled.
var ErrDefaultHelp = errors.New("help flag")

// ParseErr binds the fields of the struct cmd points to, and sets them from
// args.
func ParseErr(cmd interface{}, args []string, opts ...parseOpt) (err error) {
	p, err := newParser(cmd, opts...)
	if err != nil {
		return
	}
	return p.parse(args)
}

// Parse is ParseErr on os.Args. It exits the program when help is requested
// or an error occurs.
func Parse(cmd interface{}, opts ...parseOpt) {
	p, err := newParser(cmd, append([]parseOpt{Program(os.Args[0])}, opts...)...)
	if err == nil {
		err = p.parse(os.Args[1:])
	}
	if err == ErrDefaultHelp {
		p.printUsage(os.Stderr)
		os.Exit(0)
	}
	if err != nil {
		os.Stderr.WriteString(missinggo.Unchomp(fmt.Sprintf("%s: %s", p.set.program, err)))
		if IsParseError(err) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}

const infArity = 1000

// Turn a struct field name into a long flag name: NoUpload becomes no-upload.
func fieldLongFlagKey(fieldName string) string {
	return missinggo.KebabCase(fieldName)
}
