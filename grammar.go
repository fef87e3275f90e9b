package tokenflag

import (
	"regexp"
	"sync"
)

// Each grammar is compiled on first use and shared read-only afterwards. All
// patterns are anchored: a token must match as a whole.
var (
	integerRegexp = lazyRegexp(`^(?:(-)?(0x)?([0-9a-zA-Z]+)|((0x)?0))$`)
	truthyRegexp  = lazyRegexp(`^(?:[tT](?:rue)?|1)$`)
	falsyRegexp   = lazyRegexp(`^(?:[fF](?:alse)?|0)$`)
	// Optional single alnum short name and comma, then the long name.
	specifierRegexp = lazyRegexp(`^(?:([[:alnum:]]),)?[ ]*([[:alnum:]][-_[:alnum:]]*)?$`)
	// --long[=value] or -abc.
	matcherRegexp = lazyRegexp(`^(?:--([[:alnum:]][-_[:alnum:]]+)(=((?s:.*)))?|-([[:alnum:]]+))$`)
)

func lazyRegexp(expr string) func() *regexp.Regexp {
	return sync.OnceValue(func() *regexp.Regexp {
		return regexp.MustCompile(expr)
	})
}
