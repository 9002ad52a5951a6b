package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	aoc "github.com/maisem/aoc2021"
)

const mediumCaves = `dc-end
HN-start
start-kj
dc-start
dc-HN
LN-dc
HN-end
kj-sa
kj-HN
kj-dc
`

const largeCaves = `fs-end
he-DX
fs-he
start-DX
pj-DX
end-zg
zg-sl
zg-pj
pj-he
RW-he
fs-DX
pj-RW
zg-RW
start-pj
he-WI
zg-he
pj-fs
start-RW
`

func TestSolvers(t *testing.T) {
	var s solver
	tests := []struct {
		name  string
		solve func(*aoc.Puzzle) any
		input string
		want  string
	}{
		{"D12p1 medium", s.D12p1, mediumCaves, "19"},
		{"D12p2 medium", s.D12p2, mediumCaves, "103"},
		{"D12p1 large", s.D12p1, largeCaves, "226"},
		{"D12p2 large", s.D12p2, largeCaves, "3509"},
		{"D12p1 malformed line", s.D12p1, "start-end\nbogus\n", "1"},
		{"D9p2 single basin", s.D9p2, "19\n99\n", "1"},
		{"D15p1 single row", s.D15p1, "19111\n", "12"},
		{"D21p1 sample", s.D21p1, "Player 1 starting position: 4\nPlayer 2 starting position: 8\n", "739785"},
		{"D21p1 stray line", s.D21p1, "Player 1 starting position: 4\n\nnoise\nPlayer 2 starting position: 8\n", "739785"},
		{"D15p2 single cell", s.D15p2, "8\n", "37"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := fmt.Sprint(tt.solve(aoc.NewPuzzle(tt.input)))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTileRisk(t *testing.T) {
	got := tileRisk(aoc.Grid[int]{{8}}, 3)
	want := aoc.Grid[int]{
		{8, 9, 1},
		{9, 1, 2},
		{1, 2, 3},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("tileRisk mismatch (-want +got):\n%s", diff)
	}
}

func TestDiracWinCounts(t *testing.T) {
	w := diracWinCounts(4, 8)
	assert.Equal(t, 444356092776315, w.mover)
	assert.Equal(t, 341960390180808, w.other)
}

func TestStartingPositionsPanics(t *testing.T) {
	assert.Panics(t, func() {
		startingPositions(aoc.NewPuzzle("Player 1 starting position: 4\n"))
	})
}

func TestSamples(t *testing.T) {
	var out bytes.Buffer
	cfg := aoc.Config{
		Year:       2021,
		OnlySample: true,
		Out:        &out,
		Logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	err := aoc.Run(context.Background(), cfg, sources, &solver{})
	require.NoError(t, err, out.String())
	assert.Equal(t, 8, strings.Count(out.String(), "✅"), out.String())
}
