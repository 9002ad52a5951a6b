// aoc2021 runs the 2021 Advent of Code solutions.
//
// Usage:
//
//	aoc2021 [input-file] [--day=N] [--part=P] [--sample|--skip-sample]
//	aoc2021 --config=accounts.yaml [--parallel=N]
//
// Each part is first checked against the sample in its doc comment, then
// solved for the given input file or for every account in the config.
package main

import (
	"context"
	"embed"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	aoc "github.com/maisem/aoc2021"
)

//go:embed day*.go
var sources embed.FS

// solver holds the D{day}p{part} methods.
type solver struct{}

var rootFlags struct {
	config     string
	day        int
	part       string
	sample     bool
	skipSample bool
	debug      bool
	parallel   int
}

var rootCmd = &cobra.Command{
	Use:          "aoc2021 [input-file]",
	Short:        "Run Advent of Code 2021 solutions",
	Args:         cobra.MaximumNArgs(1),
	SilenceUsage: true,
	RunE:         runRoot,
	CompletionOptions: cobra.CompletionOptions{
		HiddenDefaultCmd: true,
	},
}

func init() {
	f := rootCmd.Flags()
	f.StringVar(&rootFlags.config, "config", "", "YAML file listing accounts and their inputs")
	f.IntVar(&rootFlags.day, "day", -1, "day to run (default all)")
	f.StringVar(&rootFlags.part, "part", "", "part to run")
	f.BoolVar(&rootFlags.sample, "sample", false, "only run samples")
	f.BoolVar(&rootFlags.skipSample, "skip-sample", false, "skip samples")
	f.BoolVar(&rootFlags.debug, "debug", false, "debug logging")
	f.IntVar(&rootFlags.parallel, "parallel", 1, "accounts to solve concurrently")
	rootCmd.MarkFlagsMutuallyExclusive("sample", "skip-sample")
}

func runRoot(cmd *cobra.Command, args []string) error {
	cfg := aoc.Config{Year: 2021}
	if rootFlags.config != "" {
		var err error
		if cfg, err = aoc.LoadConfig(rootFlags.config); err != nil {
			return err
		}
	}
	f := cmd.Flags()
	if f.Changed("day") || cfg.Day == 0 {
		cfg.Day = rootFlags.day
	}
	if f.Changed("part") {
		cfg.Part = rootFlags.part
	}
	if f.Changed("sample") {
		cfg.OnlySample = rootFlags.sample
	}
	if f.Changed("skip-sample") {
		cfg.SkipSample = rootFlags.skipSample
	}
	if f.Changed("debug") {
		cfg.Debug = rootFlags.debug
	}
	if f.Changed("parallel") || cfg.Parallel == 0 {
		cfg.Parallel = rootFlags.parallel
	}
	if len(args) == 1 {
		cfg.Accounts = []aoc.Account{{Name: "input", Input: args[0]}}
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	level := slog.LevelInfo
	if cfg.Debug {
		level = slog.LevelDebug
	}
	cfg.Logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
	cfg.Out = cmd.OutOrStdout()

	defer aoc.Timing(cmd.ErrOrStderr(), "total")()
	return aoc.Run(cmd.Context(), cfg, sources, &solver{})
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
