package herald_test

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/fwojciec/herald"
	"github.com/stretchr/testify/assert"
)

func TestParseRoleIDs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"empty", "", []string{}},
		{"single", "123", []string{"123"}},
		{"trims entries", " 1 , 2,3 ", []string{"1", "2", "3"}},
		{"drops blanks", "1,,  ,2,", []string{"1", "2"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, herald.ParseRoleIDs(tt.in))
		})
	}
}

func TestAllowList_Permits(t *testing.T) {
	t.Parallel()

	t.Run("grants on any shared role", func(t *testing.T) {
		t.Parallel()
		a := herald.NewAllowList([]string{"R1", "R2"}, nil)
		assert.True(t, a.Permits([]string{"R2", "R3"}))
	})

	t.Run("denies without a shared role", func(t *testing.T) {
		t.Parallel()
		a := herald.NewAllowList([]string{"R1", "R2"}, nil)
		assert.False(t, a.Permits([]string{"R3", "R4"}))
		assert.False(t, a.Permits(nil))
	})

	t.Run("empty list denies everyone", func(t *testing.T) {
		t.Parallel()
		a := herald.NewAllowList(nil, nil)
		assert.False(t, a.Permits(nil))
		assert.False(t, a.Permits([]string{"R1", "R2", "R3", "R4", "R5"}))
	})

	t.Run("blank ids do not count as configured", func(t *testing.T) {
		t.Parallel()
		a := herald.NewAllowList([]string{"", "  "}, nil)
		assert.Equal(t, 0, a.Len())
		assert.False(t, a.Permits([]string{""}))
	})

	t.Run("empty list warns on every evaluation", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		a := herald.NewAllowList(nil, logger)
		a.Permits(nil)
		a.Permits([]string{"R1"})
		assert.Equal(t, 2, strings.Count(buf.String(), "level=WARN"))
	})

	t.Run("configured list does not warn", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		a := herald.NewAllowList([]string{"R1"}, logger)
		a.Permits([]string{"R9"})
		assert.Empty(t, buf.String())
	})
}
