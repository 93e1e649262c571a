package engine

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/FitrahHaque/Compression-Selector/compressor/rle"
)

var ErrUnknownFormat = errors.New("unknown output format")

const (
	FormatText = "text"
	FormatJSON = "json"
)

const maxLineLength = 16 * 1024 * 1024

type Options struct {
	Algorithms []string
	RLEMetric  rle.Metric
	Format     string
	Workers    int
	CacheSize  int
	// Strict aborts the whole batch on the first malformed line.
	Strict bool
	// Diagnostics receives per-line errors; nil discards them.
	Diagnostics io.Writer
	// Progress receives a progress bar over InputSize bytes; nil disables it.
	Progress  io.Writer
	InputSize int64
}

func DefaultOptions() Options {
	return Options{
		Algorithms: Engines[:],
		RLEMetric:  rle.MetricParity,
		Format:     FormatText,
		Workers:    1,
	}
}

func (o Options) Validate() error {
	if len(o.Algorithms) == 0 {
		return errors.New("no algorithm selected")
	}
	for _, algorithm := range o.Algorithms {
		if _, ok := encoders[algorithm]; !ok {
			return fmt.Errorf("unknown algorithm %q, choices include: %s", algorithm, strings.Join(Engines[:], ", "))
		}
	}
	if o.Format != FormatText && o.Format != FormatJSON {
		return fmt.Errorf("%w: %q", ErrUnknownFormat, o.Format)
	}
	if o.Workers < 1 {
		return fmt.Errorf("workers must be at least 1, got %d", o.Workers)
	}
	if o.CacheSize < 0 {
		return fmt.Errorf("cache size must not be negative, got %d", o.CacheSize)
	}
	return nil
}

// ParseAlgorithms splits a comma separated algorithm list.
func ParseAlgorithms(list string) []string {
	var algorithms []string
	for _, a := range strings.Split(list, ",") {
		if a = strings.ToLower(strings.TrimSpace(a)); a != "" {
			algorithms = append(algorithms, a)
		}
	}
	return algorithms
}

type lineOutcome struct {
	results []Result
	err     error
	skipped bool
}

type lineJob struct {
	number int
	text   string
	done   chan lineOutcome
}

// Process compresses every line of r and writes the results to w in input
// order. Malformed lines are reported to Options.Diagnostics and skipped,
// unless Options.Strict is set, in which case the first one is returned.
func Process(r io.Reader, w io.Writer, opts Options) (Summary, error) {
	selector, err := NewSelector(opts)
	if err != nil {
		return Summary{}, err
	}
	if opts.Progress != nil {
		var finish func()
		r, finish = newProgressReader(r, opts.InputSize, opts.Progress)
		defer finish()
	}
	out := newResultWriter(w, opts.Format)
	summary := newSummary()

	jobs := make(chan lineJob, opts.Workers)
	pending := make(chan lineJob, opts.Workers)
	stop := make(chan struct{})
	var scanErr error
	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		defer close(pending)
		defer close(jobs)
		scanner := bufio.NewScanner(r)
		scanner.Buffer(make([]byte, 64*1024), maxLineLength)
		for number := 1; scanner.Scan(); number++ {
			job := lineJob{
				number: number,
				text:   scanner.Text(),
				done:   make(chan lineOutcome, 1),
			}
			select {
			case pending <- job:
			case <-stop:
				return
			}
			select {
			case jobs <- job:
			case <-stop:
				return
			}
		}
		scanErr = scanner.Err()
	}()
	for i := 0; i < opts.Workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for job := range jobs {
				job.done <- processLine(selector, job)
			}
		}()
	}

	abort := func(err error) (Summary, error) {
		close(stop)
		for range pending {
		}
		wg.Wait()
		out.flush()
		return summary, err
	}
	for job := range pending {
		outcome := <-job.done
		summary.Lines++
		if outcome.skipped {
			summary.Skipped++
			continue
		}
		if outcome.err != nil {
			summary.Failed++
			if opts.Strict {
				return abort(outcome.err)
			}
			reportLineError(opts.Diagnostics, outcome.err)
			continue
		}
		summary.record(outcome.results)
		if err := out.write(job.number, outcome.results); err != nil {
			return abort(fmt.Errorf("writing results of line %d: %w", job.number, err))
		}
	}
	wg.Wait()
	if scanErr != nil {
		return summary, fmt.Errorf("reading input: %w", scanErr)
	}
	if err := out.flush(); err != nil {
		return summary, fmt.Errorf("flushing results: %w", err)
	}
	return summary, nil
}

func processLine(selector *Selector, job lineJob) lineOutcome {
	if strings.TrimSpace(job.text) == "" {
		return lineOutcome{skipped: true}
	}
	line, err := ParseLine(job.text)
	if err != nil {
		var formatErr *FormatError
		if errors.As(err, &formatErr) {
			formatErr.Line = job.number
		}
		return lineOutcome{err: err}
	}
	return lineOutcome{results: selector.Select(line.Tokens)}
}
