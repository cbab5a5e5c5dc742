package console

// ParseLine exports parseLine for testing.
func ParseLine(s string) (command, target string, options map[string]string, ok bool) {
	l, ok := parseLine(s)
	return l.command, l.target, l.options, ok
}
