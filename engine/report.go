package engine

import (
	"bufio"
	"fmt"
	"io"

	"github.com/fatih/color"
	jsoniter "github.com/json-iterator/go"

	"github.com/FitrahHaque/Compression-Selector/compressor"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type resultRecord struct {
	Line int `json:"line"`
	Result
}

type resultWriter struct {
	buf     *bufio.Writer
	format  string
	encoder *jsoniter.Encoder
}

func newResultWriter(w io.Writer, format string) *resultWriter {
	buf := bufio.NewWriter(w)
	rw := &resultWriter{
		buf:    buf,
		format: format,
	}
	if format == FormatJSON {
		rw.encoder = json.NewEncoder(buf)
	}
	return rw
}

func (rw *resultWriter) write(line int, results []Result) error {
	for _, r := range results {
		if rw.encoder != nil {
			if err := rw.encoder.Encode(resultRecord{Line: line, Result: r}); err != nil {
				return err
			}
			continue
		}
		if _, err := fmt.Fprintln(rw.buf, r.String()); err != nil {
			return err
		}
	}
	return nil
}

func (rw *resultWriter) flush() error {
	return rw.buf.Flush()
}

// Summary aggregates a batch. CompressedBits counts the winning size of each line once.
type Summary struct {
	Lines          int            `json:"lines"`
	Skipped        int            `json:"skipped"`
	Failed         int            `json:"failed"`
	Results        int            `json:"results"`
	Ties           int            `json:"ties"`
	Wins           map[string]int `json:"wins"`
	OriginalBits   int            `json:"originalBits"`
	CompressedBits int            `json:"compressedBits"`
}

func newSummary() Summary {
	return Summary{Wins: make(map[string]int)}
}

func (s *Summary) record(results []Result) {
	if len(results) == 0 {
		return
	}
	s.Results += len(results)
	if len(results) > 1 {
		s.Ties++
	} else {
		s.Wins[results[0].Method]++
	}
	s.OriginalBits += results[0].OriginalBits
	s.CompressedBits += results[0].CompressedBits
}

func (s Summary) Ratio() float64 {
	return CompressionRatio(s.OriginalBits, s.CompressedBits)
}

var (
	errorColor   = color.New(color.FgRed, color.Bold)
	headerColor  = color.New(color.FgCyan, color.Bold)
	winnerColor  = color.New(color.FgGreen)
	warningColor = color.New(color.FgYellow)
)

func reportLineError(w io.Writer, err error) {
	if w == nil {
		return
	}
	errorColor.Fprint(w, "error: ")
	fmt.Fprintln(w, err)
}

// WriteSummary prints the benchmark table of a batch.
func WriteSummary(w io.Writer, s Summary) error {
	bw := bufio.NewWriter(w)
	headerColor.Fprintf(bw, "%-16s %12s\n", "metric", "value")
	fmt.Fprintf(bw, "%-16s %12d\n", "lines", s.Lines)
	fmt.Fprintf(bw, "%-16s %12d\n", "skipped", s.Skipped)
	if s.Failed > 0 {
		warningColor.Fprintf(bw, "%-16s %12d\n", "failed", s.Failed)
	} else {
		fmt.Fprintf(bw, "%-16s %12d\n", "failed", s.Failed)
	}
	for _, method := range []string{compressor.MethodHuffman, compressor.MethodRLE} {
		winnerColor.Fprintf(bw, "%-16s %12d\n", "wins "+method, s.Wins[method])
	}
	fmt.Fprintf(bw, "%-16s %12d\n", "ties", s.Ties)
	fmt.Fprintf(bw, "%-16s %12d\n", "original bits", s.OriginalBits)
	fmt.Fprintf(bw, "%-16s %12d\n", "compressed bits", s.CompressedBits)
	headerColor.Fprintf(bw, "%-16s %11.2f%%\n", "ratio", roundHalfUp(s.Ratio()))
	return bw.Flush()
}
