package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/FitrahHaque/Compression-Selector/compressor/rle"
	"github.com/FitrahHaque/Compression-Selector/engine"
)

var Commands = [...]string{"compress", "benchmark", "help"}

type config struct {
	algorithm string
	format    string
	rleMetric string
	workers   int
	cacheSize int
	strict    bool
	progress  bool
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("[ tokenpress ] ")
	application := os.Args[0]
	flag.CommandLine = flag.NewFlagSet(application, flag.ExitOnError)
	compressCmd := flag.Bool(Commands[0], false, "Compress every line of <input> into <output> (default command)")
	benchmarkCmd := flag.Bool(Commands[1], false, "Compress <input> and print a summary table instead of the results")
	helpCmd := flag.Bool(Commands[2], false, "Help")

	var cfg config
	flag.StringVar(&cfg.algorithm, "algorithm", strings.Join(engine.Engines[:], ","), fmt.Sprintf("Which algorithm(s) to compare, choices include: \n\t%s", strings.Join(engine.Engines[:], ", ")))
	flag.StringVar(&cfg.format, "format", engine.FormatText, "Output format: text or json")
	flag.StringVar(&cfg.rleMetric, "rle-metric", rle.MetricParity.String(), "How RLE size is measured: parity (4 bits per output character) or exact")
	flag.IntVar(&cfg.workers, "workers", 1, "Number of lines compressed concurrently")
	flag.IntVar(&cfg.cacheSize, "cache", 0, "Remember the results of this many distinct lines (0 disables)")
	flag.BoolVar(&cfg.strict, "strict", false, "Abort on the first malformed line instead of skipping it")
	flag.BoolVar(&cfg.progress, "progress", false, "Draw a progress bar on stderr when it is a terminal")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage of %s [--compress|--benchmark] [OPTIONS] <input> [output]\n", application)
		fmt.Fprintf(os.Stderr, "Valid commands include:\n\t%s\n", strings.Join(Commands[:], ", "))
		fmt.Fprintf(os.Stderr, "Flag:\n")
		flag.PrintDefaults()
	}

	if len(os.Args) == 1 {
		flag.Usage()
		os.Exit(1)
	}
	flag.Parse()
	if *helpCmd {
		flag.Usage()
		return
	}
	commandsSelected := countTrue([]bool{*compressCmd, *benchmarkCmd})
	if commandsSelected > 1 {
		log.Fatal("Specify a single command")
	}

	opts, err := cfg.options()
	if err != nil {
		log.Fatal(err)
	}
	files := flag.Args()
	trimSpace(files)
	if len(files) == 0 {
		log.Fatal("No input file provided")
	}
	if _, err := os.Stat(files[0]); os.IsNotExist(err) {
		log.Fatalf("Could not open the provided file %s", files[0])
	}

	var summary engine.Summary
	if *benchmarkCmd {
		summary = run(files[0], "", opts, true)
		if err := engine.WriteSummary(color.Output, summary); err != nil {
			log.Fatal(err)
		}
	} else {
		output := ""
		if len(files) > 1 {
			output = files[1]
		}
		summary = run(files[0], output, opts, false)
	}
	if summary.Failed > 0 {
		log.Printf("%d of %d lines could not be compressed", summary.Failed, summary.Lines)
		os.Exit(1)
	}
}

func (cfg config) options() (engine.Options, error) {
	opts := engine.DefaultOptions()
	opts.Algorithms = engine.ParseAlgorithms(cfg.algorithm)
	opts.Format = strings.ToLower(strings.TrimSpace(cfg.format))
	metric, err := rle.ParseMetric(cfg.rleMetric)
	if err != nil {
		return opts, err
	}
	opts.RLEMetric = metric
	opts.Workers = cfg.workers
	opts.CacheSize = cfg.cacheSize
	opts.Strict = cfg.strict
	opts.Diagnostics = color.Error
	if cfg.progress && stderrIsTerminal() {
		opts.Progress = os.Stderr
	}
	return opts, opts.Validate()
}

func run(inputPath, outputPath string, opts engine.Options, discard bool) engine.Summary {
	input, err := os.Open(inputPath)
	if err != nil {
		log.Fatal(err)
	}
	defer input.Close()
	if info, err := input.Stat(); err == nil {
		opts.InputSize = info.Size()
	}

	var output io.Writer = os.Stdout
	switch {
	case discard:
		output = io.Discard
	case outputPath != "":
		f, err := os.Create(outputPath)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		output = f
	}

	summary, err := engine.Process(input, output, opts)
	if err != nil {
		log.Fatal(err)
	}
	return summary
}

func stderrIsTerminal() bool {
	fd := os.Stderr.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func countTrue(commands []bool) int {
	count := 0
	for _, c := range commands {
		if c {
			count++
		}
	}
	return count
}

func trimSpace(s []string) {
	for i := range s {
		s[i] = strings.TrimSpace(s[i])
	}
}
