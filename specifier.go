package tokenflag

// Splits an option specifier such as "v, verbose", "v" or "verbose" into its
// short and long names. Either may be empty, but not both. A lone single
// character is taken to be the short name.
func SplitSpecifier(spec string) (short, long string, err error) {
	m := specifierRegexp().FindStringSubmatch(spec)
	if m == nil {
		err = newError(KindInvalid, spec)
		return
	}
	short, long = m[1], m[2]
	if short == "" && len(long) == 1 {
		short, long = long, ""
	}
	if short == "" && long == "" {
		err = newError(KindInvalid, spec)
	}
	return
}
