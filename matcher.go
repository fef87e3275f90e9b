package tokenflag

// ArgumentDescriptor is what a single raw command-line token says about an
// option.
type ArgumentDescriptor struct {
	// The long name, or for the grouped form, the whole run of short names.
	Name string
	// The token was of the form -abc. Which of those are flags and which is
	// an inline value is for the caller to decide.
	Grouping bool
	// The token had an explicit =value.
	SetValue bool
	Value    string
}

// Matches a raw token against --name[=value] and -abc. ok is false for
// anything else, which the caller may treat as positional.
func MatchArgument(arg string) (desc ArgumentDescriptor, ok bool) {
	m := matcherRegexp().FindStringSubmatch(arg)
	if m == nil {
		return
	}
	ok = true
	if m[4] != "" {
		desc.Name = m[4]
		desc.Grouping = true
		return
	}
	desc.Name = m[1]
	desc.SetValue = m[2] != ""
	desc.Value = m[3]
	return
}
