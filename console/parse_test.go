package console_test

import (
	"testing"

	"github.com/fwojciec/herald/console"
	"github.com/stretchr/testify/assert"
)

func TestParseLine(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		command string
		target  string
		options map[string]string
		ok      bool
	}{
		{name: "not a command", input: "hello", ok: false},
		{name: "bare command", input: "/help", command: "help", ok: true},
		{name: "command is lowercased", input: "/SAY #general", command: "say", target: "#general", ok: true},
		{
			name:    "options",
			input:   "/announce #news preamble=hello all thumbnail=https://example.com/t.png?a=b",
			command: "announce",
			target:  "#news",
			options: map[string]string{"preamble": "hello all", "thumbnail": "https://example.com/t.png?a=b"},
			ok:      true,
		},
		{name: "trailing words without options are ignored", input: "/say #general extra words", command: "say", target: "#general", ok: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			command, target, options, ok := console.ParseLine(tt.input)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.command, command)
			assert.Equal(t, tt.target, target)
			assert.Equal(t, tt.options, options)
		})
	}
}
