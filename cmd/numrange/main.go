// Package main provides the numrange command-line tool for expanding
// compact numeric range notation into explicit number lists and for
// compressing number lists back into canonical notation.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"runtime"
	"strings"
	"sync"

	"golang.org/x/sync/semaphore"

	"github.com/abemedia/numrange"
)

type settings struct {
	listSep  rune
	rangeSep rune
	groupSep rune
	decSep   rune
	trim     bool
	expand   bool
	grouped  bool
	minRun   int
	step     string
	delim    string
	args     []string
}

func main() {
	var (
		listSep  = flag.String("list-sep", ",", "List separator character")
		rangeSep = flag.String("range-sep", ":", "Range separator character")
		groupSep = flag.String("group-sep", "", "Digit group separator character (empty to disable)")
		decSep   = flag.String("decimal-sep", ".", "Decimal separator character (float mode)")
		trim     = flag.Bool("trim", false, "Strip whitespace inside list items")
		expand   = flag.Bool("x", false, "Expand notation into an explicit number list")
		delim    = flag.String("d", ",", "Output delimiter between expanded numbers")
		step     = flag.String("step", "", "Step hint for compression (detects constant-step runs)")
		minRun   = flag.Int("min-run", 0, "Minimum run length to compress as a range (0 for default)")
		grouped  = flag.Bool("group-output", false, "Insert digit group separators into output numbers")
		unsigned = flag.Bool("unsigned", false, "Treat values as unsigned integers")
		floats   = flag.Bool("float", false, "Treat values as floating point")
		help     = flag.Bool("help", false, "Show help message")
	)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] [file ...]", os.Args[0])
		fmt.Fprintf(os.Stderr, "\nExpands or compresses compact numeric range notation, one notation per line.\n")
		fmt.Fprintf(os.Stderr, "Without -x, each line is normalized into canonical compressed notation.\n")
		fmt.Fprintf(os.Stderr, "If no file is provided, reads from stdin and writes to stdout;\n")
		fmt.Fprintf(os.Stderr, "files are rewritten in place.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
	}

	flag.Parse()

	if *help {
		flag.Usage()
		return
	}

	s := settings{
		listSep:  firstRune(*listSep),
		rangeSep: firstRune(*rangeSep),
		groupSep: firstRune(*groupSep),
		decSep:   firstRune(*decSep),
		trim:     *trim,
		expand:   *expand,
		grouped:  *grouped,
		minRun:   *minRun,
		step:     *step,
		delim:    *delim,
		args:     flag.Args(),
	}

	switch {
	case *floats:
		run[float64](s)
	case *unsigned:
		run[uint64](s)
	default:
		run[int64](s)
	}
}

func run[T numrange.Number](s settings) {
	opts := numrange.Options[T]{
		ListSep:     s.listSep,
		RangeSep:    s.rangeSep,
		GroupSep:    s.groupSep,
		DecimalSep:  s.decSep,
		TrimSpace:   s.trim,
		MinRun:      s.minRun,
		GroupOutput: s.grouped,
	}

	if err := opts.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error in separator flags: %v\n", err)
		os.Exit(1)
	}

	if s.step != "" {
		hint, err := parseStepHint[T](s.step)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing --step flag: %v\n", err)
			os.Exit(1)
		}
		opts = opts.WithStepHint(hint)
	}

	if len(s.args) == 0 {
		// Read from stdin
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			out, err := transform(opts, scanner.Text(), s.expand, s.delim)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
			fmt.Println(out)
		}
		if err := scanner.Err(); err != nil {
			fmt.Fprintf(os.Stderr, "Error reading from stdin: %v\n", err)
			os.Exit(1)
		}
		return
	}

	var wg sync.WaitGroup
	sem := semaphore.NewWeighted(int64(runtime.NumCPU()))

	for _, path := range s.args {
		if err := sem.Acquire(context.Background(), 1); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to acquire semaphore: %v\n", err)
			break
		}
		wg.Add(1)
		go func(path string) {
			defer sem.Release(1)
			defer wg.Done()
			processFile(opts, path, s.expand, s.delim)
		}(path)
	}

	wg.Wait()
}

// transform converts one line of input. Blank lines pass through unchanged.
func transform[T numrange.Number](opts numrange.Options[T], line string, expand bool, delim string) (string, error) {
	if strings.TrimSpace(line) == "" {
		return line, nil
	}

	seq, err := opts.Parse(line)
	if err != nil {
		return "", err
	}

	if expand {
		var b strings.Builder
		first := true
		for v := range seq.All() {
			if !first {
				b.WriteString(delim)
			}
			first = false
			fmt.Fprintf(&b, "%v", v)
		}
		return b.String(), nil
	}

	return opts.Compress(seq.Values())
}

func processFile[T numrange.Number](opts numrange.Options[T], filename string, expand bool, delim string) {
	input, err := os.ReadFile(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading file %s: %v\n", filename, err)
		return
	}

	lines := strings.Split(string(input), "\n")
	for i, line := range lines {
		out, err := transform(opts, line, expand, delim)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error in file %s line %d: %v\n", filename, i+1, err)
			return
		}
		lines[i] = out
	}

	err = os.WriteFile(filename, []byte(strings.Join(lines, "\n")), 0o600)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error writing file %s: %v\n", filename, err)
	}
}

// parseStepHint parses the -step flag as a single number of the selected type.
func parseStepHint[T numrange.Number](s string) (T, error) {
	seq, err := numrange.Parse[T](s)
	if err != nil {
		return 0, err
	}
	vals := seq.Values()
	if len(vals) != 1 {
		return 0, fmt.Errorf("expected a single number, got %q", s)
	}
	return vals[0], nil
}

// firstRune returns the first rune of s, or 0 if s is empty.
func firstRune(s string) rune {
	for _, r := range s {
		return r
	}
	return 0
}
