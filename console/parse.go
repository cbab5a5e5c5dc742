package console

import (
	"regexp"
	"strings"
)

// line is a parsed operator input line.
type line struct {
	command string            // without the leading slash
	target  string            // first argument, usually a #channel
	args    []string          // all arguments
	options map[string]string // name=value pairs following the target
}

var optionKey = regexp.MustCompile(`(?:^|\s)([a-z]+)=`)

// parseLine splits "/announce #news preamble=hello all thumbnail=https://x"
// into its parts. A value runs until the next name= token. Lines that do
// not start with a slash report false.
func parseLine(s string) (line, bool) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "/") {
		return line{}, false
	}
	s = s[1:]
	name, rest, _ := strings.Cut(s, " ")
	l := line{command: strings.ToLower(name), args: strings.Fields(rest)}
	rest = strings.TrimSpace(rest)
	if len(l.args) == 0 {
		return l, true
	}
	l.target = l.args[0]
	rest = strings.TrimSpace(strings.TrimPrefix(rest, l.target))

	locs := optionKey.FindAllStringSubmatchIndex(rest, -1)
	for i, loc := range locs {
		end := len(rest)
		if i+1 < len(locs) {
			end = locs[i+1][0]
		}
		if l.options == nil {
			l.options = make(map[string]string)
		}
		l.options[rest[loc[2]:loc[3]]] = strings.TrimSpace(rest[loc[1]:end])
	}
	return l, true
}
