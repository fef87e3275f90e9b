package tokenflag

import (
	"fmt"
	"io"
	"text/tabwriter"
)

func newUsageTabwriter(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 8, 2, 3, ' ', 0)
}

// WriteOptions lists the declared options with their help text.
func (s *Set) WriteOptions(w io.Writer) {
	if len(s.args) == 0 {
		return
	}
	fmt.Fprintf(w, "Options:\n")
	tw := newUsageTabwriter(w)
	for _, a := range s.args {
		fmt.Fprint(tw, "  ")
		if a.short != "" {
			fmt.Fprintf(tw, "-%s", a.short)
			if a.long != "" {
				fmt.Fprint(tw, ", ")
			}
		}
		if a.long != "" {
			fmt.Fprintf(tw, "--%s", a.long)
		}
		fmt.Fprintf(tw, "\t%s\n", a.help)
	}
	tw.Flush()
}

func (p *parser) posWithHelp() (ret []posArg) {
	for _, a := range p.posArgs {
		if a.help != "" {
			ret = append(ret, a)
		}
	}
	return
}

func (p *parser) printUsage(w io.Writer) {
	fmt.Fprintf(w, "Usage:\n  %s", p.set.program)
	if len(p.set.args) != 0 {
		fmt.Fprintf(w, " [OPTIONS...]")
	}
	for _, arg := range p.posArgs {
		fs := func() string {
			switch {
			case arg.arity.max == 1 && arg.arity.min == 1:
				return "<%s>"
			case arg.arity.max == 1:
				return "[%s]"
			case arg.arity.min != 0:
				return "%s..."
			default:
				return "[%s...]"
			}
		}()
		fmt.Fprintf(w, " "+fs, arg.name)
	}
	fmt.Fprintf(w, "\n")
	if awd := p.posWithHelp(); len(awd) != 0 {
		fmt.Fprintf(w, "Arguments:\n")
		tw := newUsageTabwriter(w)
		for _, a := range awd {
			fmt.Fprintf(tw, "  %s\t%s\n", a.name, a.help)
		}
		tw.Flush()
	}
	p.set.WriteOptions(w)
}
