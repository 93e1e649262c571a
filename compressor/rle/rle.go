package rle

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/FitrahHaque/Compression-Selector/compressor"
)

// MaxRunLength is the largest count the two hex digits of a run can hold.
// Longer runs are split into several runs of the same token.
const MaxRunLength = 0xFF

type Metric int

const (
	// MetricParity counts every encoded character as 4 bits.
	MetricParity Metric = iota
	// MetricExact counts the hex count digits as 4 bits each and the token bytes as 8 bits each.
	MetricExact
)

var metricNames = map[string]Metric{
	"parity": MetricParity,
	"exact":  MetricExact,
}

func ParseMetric(name string) (Metric, error) {
	if m, ok := metricNames[strings.ToLower(strings.TrimSpace(name))]; ok {
		return m, nil
	}
	return MetricParity, fmt.Errorf("unknown rle metric %q, choices include: parity, exact", name)
}

func (m Metric) String() string {
	for name, value := range metricNames {
		if value == m {
			return name
		}
	}
	return fmt.Sprintf("Metric(%d)", int(m))
}

// Run is a maximal stretch of equal adjacent tokens, capped at MaxRunLength.
type Run struct {
	Token string
	Count int
}

// Runs scans the sequence left to right and groups equal adjacent tokens.
func Runs(tokens []string) []Run {
	if len(tokens) == 0 {
		return nil
	}
	var runs []Run
	current := Run{Token: tokens[0], Count: 1}
	for _, token := range tokens[1:] {
		if token == current.Token && current.Count < MaxRunLength {
			current.Count++
			continue
		}
		runs = append(runs, current)
		current = Run{Token: token, Count: 1}
	}
	return append(runs, current)
}

type Option func(*Encoder)

func WithMetric(m Metric) Option {
	return func(e *Encoder) {
		e.metric = m
	}
}

// Encoder is the run-length candidate for one token sequence.
type Encoder struct {
	runs   []Run
	metric Metric
}

func New(tokens []string, opts ...Option) *Encoder {
	e := &Encoder{
		runs: Runs(tokens),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *Encoder) Method() string {
	return compressor.MethodRLE
}

func (e *Encoder) Runs() []Run {
	return e.runs
}

// Encode writes every run as a 2-digit uppercase hex count followed by the token.
func (e *Encoder) Encode() string {
	var compressed strings.Builder
	for _, run := range e.runs {
		fmt.Fprintf(&compressed, "%02X%s", run.Count, run.Token)
	}
	return compressed.String()
}

func (e *Encoder) CompressedBitLength() int {
	if e.metric == MetricExact {
		size := 0
		for _, run := range e.runs {
			size += 2*4 + len(run.Token)*8
		}
		return size
	}
	return utf8.RuneCountInString(e.Encode()) * 4
}
