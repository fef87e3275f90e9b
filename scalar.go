package tokenflag

import (
	"unicode/utf8"

	"github.com/huandu/xstrings"
)

// Char is a single character value. rune and byte are integer types in Go,
// so they get converted as numbers. Use Char for "-d ," style options.
type Char rune

func (c Char) String() string {
	return string(c)
}

// ParseBool accepts t, true, T, True and 1 as true, and f, false, F, False and
// 0 as false.
func ParseBool(text string) (bool, error) {
	switch {
	case truthyRegexp().MatchString(text):
		return true, nil
	case falsyRegexp().MatchString(text):
		return false, nil
	}
	return false, badType(text, nil)
}

// ParseChar requires text to be exactly one valid UTF-8 encoded character.
func ParseChar(text string) (Char, error) {
	if !utf8.ValidString(text) || xstrings.Len(text) != 1 {
		return 0, badType(text, nil)
	}
	r, _ := utf8.DecodeRuneInString(text)
	return Char(r), nil
}
