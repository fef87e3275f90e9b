package tokenflag

func quote(s string) string {
	return "'" + s + "'"
}
