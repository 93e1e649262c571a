package engine

import (
	"fmt"
	"math"
	"slices"

	"github.com/FitrahHaque/Compression-Selector/compressor"
	"github.com/FitrahHaque/Compression-Selector/compressor/huffman"
	"github.com/FitrahHaque/Compression-Selector/compressor/rle"
)

var Engines = [...]string{
	"huffman",
	"rle",
}

type newEncoder func(tokens []string, opts Options) compressor.Encoder

var encoders = map[string]newEncoder{
	"huffman": func(tokens []string, _ Options) compressor.Encoder {
		return huffman.New(tokens)
	},
	"rle": func(tokens []string, opts Options) compressor.Encoder {
		return rle.New(tokens, rle.WithMetric(opts.RLEMetric))
	},
}

// Result is one emitted candidate for one input line.
type Result struct {
	Count          int     `json:"count"`
	Method         string  `json:"method"`
	OriginalBits   int     `json:"originalBits"`
	CompressedBits int     `json:"compressedBits"`
	Ratio          float64 `json:"ratio"`
	Payload        string  `json:"payload"`
}

// String formats the result as <count>-><METHOD>(<ratio>%)=<payload>.
func (r Result) String() string {
	return fmt.Sprintf("%d->%s(%.2f%%)=%s", r.Count, r.Method, roundHalfUp(r.Ratio), r.Payload)
}

// CompressionRatio is the percentage saved; negative when the encoding expands the data.
// An empty sequence has nothing to save and reports 0.
func CompressionRatio(original, compressed int) float64 {
	if original == 0 {
		return 0
	}
	return float64(original-compressed) / float64(original) * 100
}

// roundHalfUp rounds to two decimals, ties away from zero.
func roundHalfUp(ratio float64) float64 {
	if ratio < 0 {
		return -math.Floor(-ratio*100+0.5) / 100
	}
	return math.Floor(ratio*100+0.5) / 100
}

type candidate struct {
	compressionEngine string
	encoder           compressor.Encoder
	size              int
}

// Selector runs the configured encoders over a token sequence and keeps the smallest.
type Selector struct {
	opts  Options
	cache *resultCache
}

func NewSelector(opts Options) (*Selector, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	cache, err := newResultCache(opts.CacheSize)
	if err != nil {
		return nil, err
	}
	return &Selector{
		opts:  opts,
		cache: cache,
	}, nil
}

// Select returns the result with the smallest compressed bit length, or every
// tied result in algorithm order.
func (s *Selector) Select(tokens []string) []Result {
	if results, ok := s.cache.get(tokens); ok {
		return results
	}
	candidates := make([]candidate, 0, len(s.opts.Algorithms))
	for _, algorithm := range s.opts.Algorithms {
		encoder := encoders[algorithm](tokens, s.opts)
		candidates = append(candidates, candidate{
			compressionEngine: algorithm,
			encoder:           encoder,
			size:              encoder.CompressedBitLength(),
		})
	}
	best := slices.MinFunc(candidates, func(a, b candidate) int {
		return a.size - b.size
	})
	original := compressor.OriginalBitLength(tokens)
	var results []Result
	for _, c := range candidates {
		if c.size != best.size {
			continue
		}
		results = append(results, Result{
			Count:          len(tokens),
			Method:         c.encoder.Method(),
			OriginalBits:   original,
			CompressedBits: c.size,
			Ratio:          CompressionRatio(original, c.size),
			Payload:        c.encoder.Encode(),
		})
	}
	s.cache.add(tokens, results)
	return results
}
