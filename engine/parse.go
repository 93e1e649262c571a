package engine

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	ErrMissingCount  = errors.New("missing count")
	ErrNegativeCount = errors.New("negative count")
)

// FormatError reports an input line whose leading count is not a usable integer.
type FormatError struct {
	Line  int
	Input string
	Err   error
}

func (e *FormatError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d: invalid format %q: %v", e.Line, e.Input, e.Err)
	}
	return fmt.Sprintf("invalid format %q: %v", e.Input, e.Err)
}

func (e *FormatError) Unwrap() error {
	return e.Err
}

// Line is one parsed input line.
type Line struct {
	Declared int
	Tokens   []string
}

// ParseLine reads "<count> <token>...". Tokens beyond count are dropped and a
// count larger than the available tokens is truncated to them.
func ParseLine(text string) (Line, error) {
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return Line{}, &FormatError{Input: text, Err: ErrMissingCount}
	}
	declared, err := strconv.Atoi(fields[0])
	if err != nil {
		return Line{}, &FormatError{Input: text, Err: err}
	}
	if declared < 0 {
		return Line{}, &FormatError{Input: text, Err: fmt.Errorf("%w: %d", ErrNegativeCount, declared)}
	}
	tokens := fields[1:]
	return Line{
		Declared: declared,
		Tokens:   tokens[:min(declared, len(tokens))],
	}, nil
}
