// Package aoc are quick & dirty utilities for solving Advent of Code
// problems: a small state-space search engine, grid and graph helpers, and
// a runner that checks solvers against their samples and a set of puzzle
// inputs. (forked from bradfitz/aoc)
package aoc

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"reflect"
	"regexp"
	"slices"
	"strings"
	"time"

	"golang.org/x/exp/maps"
	"golang.org/x/sync/errgroup"
)

type sample struct {
	input string
	want  string
}

var sampleRx = regexp.MustCompile(`(?sm)^\s*want=([^\n]*)(?:\s+(.+\n))?\s*`)

func parseSample(comment string) (sample, bool) {
	text := strings.TrimPrefix(comment, "//")
	if v, ok := strings.CutPrefix(text, "/*"); ok {
		text = strings.TrimSuffix(v, "*/")
	}
	if m := sampleRx.FindStringSubmatch(text); m != nil {
		s := sample{
			want:  m[1],
			input: m[2],
		}
		return s, true
	}
	var zero sample
	return zero, false
}

// extractSamples collects the want= comments on the functions declared in
// src. A sample without input reuses the previous sample's input.
func extractSamples(name string, src []byte, samples map[string]sample) error {
	fset := token.NewFileSet()
	f, err := parser.ParseFile(fset, name, src, parser.ParseComments)
	if err != nil {
		return fmt.Errorf("parsing %s to extract samples: %w", name, err)
	}
	var lastInput string
	for _, d := range f.Decls {
		fd, ok := d.(*ast.FuncDecl)
		if !ok || fd.Doc == nil {
			continue
		}
		funcName := fd.Name.Name
		for _, c := range fd.Doc.List {
			s, ok := parseSample(c.Text)
			if ok {
				s.input = Or(s.input, lastInput)
				samples[funcName] = s
				lastInput = s.input
				break
			}
		}
	}
	return nil
}

// extractSourceSamples runs extractSamples over every .go file in src.
func extractSourceSamples(src fs.FS) (map[string]sample, error) {
	samples := make(map[string]sample)
	if src == nil {
		return samples, nil
	}
	names, err := fs.Glob(src, "*.go")
	if err != nil {
		return nil, err
	}
	for _, name := range names {
		b, err := fs.ReadFile(src, name)
		if err != nil {
			return nil, err
		}
		if err := extractSamples(name, b, samples); err != nil {
			return nil, err
		}
	}
	return samples, nil
}

// Puzzle is the input handed to a solver method for a single run.
type Puzzle struct {
	Year       int
	Day        int
	Part       string
	Account    string
	SampleMode bool

	input []byte
	log   *slog.Logger
}

// NewPuzzle returns a sample-mode Puzzle over input, for use in tests.
func NewPuzzle(input string) *Puzzle {
	return &Puzzle{
		SampleMode: true,
		input:      []byte(input),
		log:        slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func (p *Puzzle) Input() []byte {
	return p.input
}

func (p *Puzzle) Scanner() *bufio.Scanner {
	return bufio.NewScanner(bytes.NewReader(p.Input()))
}

// Lines returns the input split into lines, without the trailing newline.
func (p *Puzzle) Lines() []string {
	var lines []string
	p.ForLines(func(line string) {
		lines = append(lines, line)
	})
	return lines
}

func (p *Puzzle) ForLinesY(onLine func(int, string)) {
	s := p.Scanner()
	y := -1
	for s.Scan() {
		y++
		onLine(y, s.Text())
	}
	MustDo(s.Err())
}

// ForLines calls onLine for each line of input.
func (p *Puzzle) ForLines(onLine func(line string)) {
	p.ForLinesY(func(_ int, line string) { onLine(line) })
}

func (p *Puzzle) Debugf(format string, args ...any) {
	p.log.Debug(fmt.Sprintf(format, args...))
}

// Warnf logs something unexpected in the input that the solver chose to
// skip over.
func (p *Puzzle) Warnf(format string, args ...any) {
	p.log.Warn(fmt.Sprintf(format, args...))
}

type day struct {
	day   int
	parts []partSolver
}

type partSolver struct {
	fn   func(*Puzzle) any
	Part string
	Name string
}

// extractMethods finds the methods of x named D{day}p{part} with the
// signature func(*Puzzle) any. x must be a pointer to a struct.
func extractMethods(x any) (map[int]day, error) {
	rx := regexp.MustCompile(`^D(\d+)p(\d+.*)$`)
	v := reflect.ValueOf(x)
	if v.Kind() != reflect.Pointer || v.Elem().Kind() != reflect.Struct {
		return nil, fmt.Errorf("solver: got %T; want pointer to struct", x)
	}
	v = v.Elem()
	vt := v.Type()
	byDays := map[int][]partSolver{}
	for i := 0; i < vt.NumMethod(); i++ {
		mn := vt.Method(i).Name
		matches := rx.FindStringSubmatch(mn)
		if len(matches) != 3 {
			continue
		}
		m, ok := v.Method(i).Interface().(func(*Puzzle) any)
		if !ok {
			return nil, fmt.Errorf("solver method %s: got %v; want func(*aoc.Puzzle) any", mn, v.Method(i).Type())
		}
		d := Int(matches[1])
		byDays[d] = append(byDays[d], partSolver{
			fn:   m,
			Part: matches[2],
			Name: mn,
		})
	}
	days := make(map[int]day, len(byDays))
	for d, parts := range byDays {
		slices.SortFunc(parts, func(i, j partSolver) int {
			return strings.Compare(i.Part, j.Part)
		})
		days[d] = day{parts: parts, day: d}
	}
	return days, nil
}

type runner struct {
	cfg     Config
	out     io.Writer
	log     *slog.Logger
	samples map[string]sample
	failed  int
}

type answer struct {
	got     string
	elapsed time.Duration
	err     error
}

// Run runs the solver methods of slvr selected by cfg. Each part is
// checked against its sample from src (the solver's source files), then
// run once per configured account. Answers are written to cfg.Out.
//
// Run returns an error if a sample or an account's expected answer does
// not match, or if an input cannot be read.
func Run(ctx context.Context, cfg Config, src fs.FS, slvr any) error {
	samples, err := extractSourceSamples(src)
	if err != nil {
		return err
	}
	days, err := extractMethods(slvr)
	if err != nil {
		return err
	}
	r := &runner{
		cfg:     cfg,
		out:     Or[io.Writer](cfg.Out, os.Stdout),
		log:     Or(cfg.Logger, cfg.defaultLogger()),
		samples: samples,
	}

	if cfg.Day > 0 {
		d, ok := days[cfg.Day]
		if !ok {
			return fmt.Errorf("no solver for day %d", cfg.Day)
		}
		if err := r.runDay(ctx, d); err != nil {
			return err
		}
	} else {
		dayNums := maps.Keys(days)
		slices.Sort(dayNums)
		for i, n := range dayNums {
			if i > 0 {
				fmt.Fprintln(r.out)
			}
			if err := r.runDay(ctx, days[n]); err != nil {
				return err
			}
		}
	}
	if r.failed > 0 {
		return fmt.Errorf("%d answer(s) did not match", r.failed)
	}
	return nil
}

func (c Config) defaultLogger() *slog.Logger {
	level := slog.LevelInfo
	if c.Debug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

func (r *runner) runDay(ctx context.Context, d day) error {
	fmt.Fprintln(r.out, "Running day", d.day)
	for _, ps := range d.parts {
		if r.cfg.Part != "" && ps.Part != r.cfg.Part {
			continue
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if !r.cfg.SkipSample {
			ok, err := r.runSample(d.day, ps)
			if err != nil {
				return err
			}
			if !ok {
				// Don't bother with real inputs if the sample is wrong.
				continue
			}
		}
		if r.cfg.OnlySample {
			continue
		}
		if err := r.runAccounts(ctx, d.day, ps); err != nil {
			return err
		}
	}
	return nil
}

func (r *runner) puzzle(dayNum int, ps partSolver, account string) *Puzzle {
	return &Puzzle{
		Year:    r.cfg.Year,
		Day:     dayNum,
		Part:    ps.Part,
		Account: account,
		log:     r.log.With("day", dayNum, "part", ps.Part, "account", account),
	}
}

func (r *runner) runSample(dayNum int, ps partSolver) (bool, error) {
	s, ok := r.samples[ps.Name]
	if !ok {
		if r.cfg.OnlySample {
			return false, fmt.Errorf("no sample found for %v", ps.Name)
		}
		r.log.Warn("no sample found", "solver", ps.Name)
		return true, nil
	}
	p := r.puzzle(dayNum, ps, "sample")
	p.SampleMode = true
	p.input = []byte(s.input)
	a := solve(ps, p)
	if a.err != nil {
		return false, a.err
	}
	if a.got != s.want {
		r.failed++
		fmt.Fprintf(r.out, "part %s: %v ❌; want %v\n", ps.Part, a.got, s.want)
		return false, nil
	}
	fmt.Fprintf(r.out, "part %s sample: %v ✅ (%v)\n", ps.Part, a.got, a.elapsed.Round(time.Microsecond))
	return true, nil
}

func (r *runner) runAccounts(ctx context.Context, dayNum int, ps partSolver) error {
	if len(r.cfg.Accounts) == 0 {
		return errors.New("no puzzle input configured")
	}
	answers := make([]answer, len(r.cfg.Accounts))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(r.cfg.Parallel, 1))
	for i, acct := range r.cfg.Accounts {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			path := acct.InputPath(dayNum)
			in, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("read input %s: %w", path, err)
			}
			p := r.puzzle(dayNum, ps, acct.Name)
			p.input = in
			answers[i] = solve(ps, p)
			return answers[i].err
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for i, acct := range r.cfg.Accounts {
		a := answers[i]
		label := ""
		if len(r.cfg.Accounts) > 1 {
			label = " [" + acct.Name + "]"
		}
		want, hasWant := acct.Want[ps.Name]
		switch {
		case hasWant && want != a.got:
			r.failed++
			fmt.Fprintf(r.out, "part %s%s: %v ❌; want %v\n", ps.Part, label, a.got, want)
		case hasWant:
			fmt.Fprintf(r.out, "part %s%s: %v ✅ (took %v)\n", ps.Part, label, a.got, a.elapsed.Round(time.Microsecond))
		default:
			fmt.Fprintf(r.out, "part %s%s: %v (took %v)\n", ps.Part, label, a.got, a.elapsed.Round(time.Microsecond))
		}
	}
	return nil
}

// solve runs one part, turning a panic from malformed input into an error.
func solve(ps partSolver, p *Puzzle) (a answer) {
	defer func() {
		if v := recover(); v != nil {
			a.err = fmt.Errorf("%s (%s): %v", ps.Name, Or(p.Account, "sample"), v)
		}
	}()
	t0 := time.Now()
	a.got = fmt.Sprint(ps.fn(p))
	a.elapsed = time.Since(t0)
	return a
}

// Timing starts a timer. Calling the returned func writes the elapsed time
// to w as "> 12 ms (name)", switching to µs under 100ms.
func Timing(w io.Writer, name string) func() time.Duration {
	t0 := time.Now()
	return func() time.Duration {
		d := time.Since(t0)
		fmt.Fprintln(w, formatTiming(d, name))
		return d
	}
}

func formatTiming(d time.Duration, name string) string {
	n, unit := d.Milliseconds(), "ms"
	if d < 100*time.Millisecond {
		n, unit = d.Microseconds(), "µs"
	}
	if name != "" {
		return fmt.Sprintf("> %d %s (%s)", n, unit, name)
	}
	return fmt.Sprintf("> %d %s", n, unit)
}

// MustDo panics if err is non-nil.
func MustDo(err error) {
	if err != nil {
		panic(err)
	}
}

// MustGet returns v as is. It panics if err is non-nil.
func MustGet[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

// Or returns the first non-zero value in list.
func Or[T any](list ...T) T {
	for _, v := range list {
		rv := reflect.ValueOf(v)
		if rv.IsValid() && !rv.IsZero() {
			return v
		}
	}
	var zero T
	return zero
}
