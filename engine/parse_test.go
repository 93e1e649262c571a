package engine

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseLine(t *testing.T) {
	tests := []struct {
		input    string
		declared int
		tokens   []string
	}{
		{"5 A A B B B", 5, []string{"A", "A", "B", "B", "B"}},
		{"10 A B", 10, []string{"A", "B"}},
		{"2 A B C", 2, []string{"A", "B"}},
		{"0 A B", 0, []string{}},
		{"3", 3, []string{}},
		{"  2\tfoo   bar ", 2, []string{"foo", "bar"}},
	}
	for _, tt := range tests {
		line, err := ParseLine(tt.input)
		require.NoError(t, err, tt.input)
		require.Equal(t, tt.declared, line.Declared, tt.input)
		require.Equal(t, tt.tokens, line.Tokens, tt.input)
	}
}

func TestParseLineErrors(t *testing.T) {
	t.Run("not a number", func(t *testing.T) {
		_, err := ParseLine("x A B")
		var formatErr *FormatError
		require.True(t, errors.As(err, &formatErr))
		require.Equal(t, "x A B", formatErr.Input)
		require.ErrorIs(t, err, strconv.ErrSyntax)
	})

	t.Run("negative", func(t *testing.T) {
		_, err := ParseLine("-1 A")
		require.ErrorIs(t, err, ErrNegativeCount)
	})

	t.Run("blank", func(t *testing.T) {
		_, err := ParseLine("   ")
		require.ErrorIs(t, err, ErrMissingCount)
	})

	t.Run("line number in message", func(t *testing.T) {
		err := &FormatError{Line: 7, Input: "x", Err: ErrMissingCount}
		require.Equal(t, `line 7: invalid format "x": missing count`, err.Error())
	})
}
