package aoc

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSample(t *testing.T) {
	tests := []struct {
		comment string
		want    sample
	}{
		{
			comment: `/*
want=1

some-input
*/`,
			want: sample{
				want: "1",
				input: `some-input
`,
			},
		},

		{
			comment: `/*
want=1234

multi-line-input
other-line
other-line-2
*/`,
			want: sample{
				want: "1234",
				input: `multi-line-input
other-line
other-line-2
`,
			},
		},
		{
			comment: `// want=5`,
			want:    sample{want: "5"},
		},
	}

	for _, tt := range tests {
		if got, ok := parseSample(tt.comment); !ok || got != tt.want {
			t.Errorf("ParseSample = %v, want %v", got, tt.want)
		}
	}
	if got, ok := parseSample("// D1p1 sums the lines."); ok {
		t.Errorf("ParseSample of a plain comment = %v, want no sample", got)
	}
}

func TestExtractSamples(t *testing.T) {
	src := []byte(`package x

/*
want=6

1
2
3
*/
func A() {}

// want=7
func B() {}

// Not a sample.
func C() {}
`)
	samples := map[string]sample{}
	require.NoError(t, extractSamples("x.go", src, samples))
	assert.Equal(t, map[string]sample{
		"A": {want: "6", input: "1\n2\n3\n"},
		"B": {want: "7", input: "1\n2\n3\n"},
	}, samples)

	assert.Error(t, extractSamples("bad.go", []byte("package"), samples))
}

type fakeSolver struct{}

func (fakeSolver) D1p1(p *Puzzle) any { return Sum(Ints(p.Lines()...)...) }
func (fakeSolver) D1p2(p *Puzzle) any { return Product(Ints(p.Lines()...)...) }

// Not a solver method.
func (fakeSolver) Helper() int { return 0 }

type badSolver struct{}

func (badSolver) D1p1() int { return 0 }

const fakeSource = `package main

/*
want=6

1
2
3
*/
func (fakeSolver) D1p1(p *Puzzle) any { return nil }

// want=6
func (fakeSolver) D1p2(p *Puzzle) any { return nil }
`

func fakeFS(src string) fstest.MapFS {
	return fstest.MapFS{
		"day01.go":  {Data: []byte(src)},
		"README.md": {Data: []byte("want=nothing")},
	}
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func writeInput(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestRun(t *testing.T) {
	input := writeInput(t, "in01.txt", "4\n5\n")
	inputTmpl := filepath.Join(filepath.Dir(input), "in{day}.txt")

	tests := []struct {
		name    string
		cfg     Config
		src     string
		wantErr string
		wantOut []string
	}{
		{
			name: "samples only",
			cfg:  Config{OnlySample: true},
			wantOut: []string{
				"Running day 1",
				"part 1 sample: 6 ✅",
				"part 2 sample: 6 ✅",
			},
		},
		{
			name: "account answers",
			cfg: Config{Accounts: []Account{{
				Name:  "me",
				Input: inputTmpl,
				Want:  map[string]string{"D1p1": "9", "D1p2": "20"},
			}}},
			wantOut: []string{"part 1: 9 ✅", "part 2: 20 ✅"},
		},
		{
			name: "account mismatch",
			cfg: Config{Part: "2", Accounts: []Account{{
				Name:  "me",
				Input: inputTmpl,
				Want:  map[string]string{"D1p2": "21"},
			}}},
			wantErr: "1 answer(s) did not match",
			wantOut: []string{"part 2: 20 ❌; want 21"},
		},
		{
			name: "several accounts",
			cfg: Config{SkipSample: true, Part: "1", Parallel: 2, Accounts: []Account{
				{Name: "a", Input: inputTmpl},
				{Name: "b", Input: input},
			}},
			wantOut: []string{"part 1 [a]: 9", "part 1 [b]: 9"},
		},
		{
			name:    "sample mismatch",
			cfg:     Config{OnlySample: true, Part: "1"},
			src:     strings.Replace(fakeSource, "want=6", "want=7", 1),
			wantErr: "did not match",
			wantOut: []string{"part 1: 6 ❌; want 7"},
		},
		{
			name:    "missing input",
			cfg:     Config{Accounts: []Account{{Name: "me", Input: filepath.Join(t.TempDir(), "nope")}}},
			wantErr: "read input",
		},
		{
			name:    "no accounts",
			cfg:     Config{},
			wantErr: "no puzzle input configured",
		},
		{
			name:    "unknown day",
			cfg:     Config{Day: 2},
			wantErr: "no solver for day 2",
		},
		{
			name: "bad input panics",
			cfg: Config{SkipSample: true, Accounts: []Account{{
				Name:  "me",
				Input: writeInput(t, "bad.txt", "x\n"),
			}}},
			wantErr: "D1p1 (me)",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			cfg := tt.cfg
			cfg.Out = &out
			cfg.Logger = quietLogger()
			err := Run(context.Background(), cfg, fakeFS(Or(tt.src, fakeSource)), &fakeSolver{})
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			} else {
				require.NoError(t, err)
			}
			for _, w := range tt.wantOut {
				assert.Contains(t, out.String(), w)
			}
		})
	}
}

func TestRunCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	cfg := Config{OnlySample: true, Out: new(bytes.Buffer), Logger: quietLogger()}
	err := Run(ctx, cfg, fakeFS(fakeSource), &fakeSolver{})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestExtractMethods(t *testing.T) {
	days, err := extractMethods(&fakeSolver{})
	require.NoError(t, err)
	require.Len(t, days, 1)
	var names []string
	for _, ps := range days[1].parts {
		names = append(names, ps.Name)
	}
	assert.Equal(t, []string{"D1p1", "D1p2"}, names)

	_, err = extractMethods(&badSolver{})
	assert.ErrorContains(t, err, "want func(*aoc.Puzzle) any")

	_, err = extractMethods(fakeSolver{})
	assert.ErrorContains(t, err, "want pointer to struct")
}

func TestPuzzleLines(t *testing.T) {
	p := NewPuzzle("a\nb\n\nc")
	assert.Equal(t, []string{"a", "b", "", "c"}, p.Lines())
	assert.True(t, p.SampleMode)

	var ys []int
	p.ForLinesY(func(y int, _ string) { ys = append(ys, y) })
	assert.Equal(t, []int{0, 1, 2, 3}, ys)
}

func TestFormatTiming(t *testing.T) {
	assert.Equal(t, "> 150 ms (total)", formatTiming(150*time.Millisecond, "total"))
	assert.Equal(t, "> 1500 µs", formatTiming(1500*time.Microsecond, ""))

	var buf bytes.Buffer
	d := Timing(&buf, "x")()
	assert.GreaterOrEqual(t, d, time.Duration(0))
	assert.True(t, strings.HasPrefix(buf.String(), "> "), buf.String())
}

func TestOr(t *testing.T) {
	assert.Equal(t, "b", Or("", "b", "c"))
	assert.Equal(t, 0, Or(0, 0))
	var w io.Writer = new(bytes.Buffer)
	assert.Same(t, w, Or[io.Writer](nil, w))
	assert.Nil(t, Or[error](nil))
}
