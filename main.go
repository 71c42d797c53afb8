//go:build !lambda

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RunSummary is the JSON-serializable result of one solver run.
type RunSummary struct {
	Instance    string `json:"instance"`
	Score       int    `json:"score"`
	Libraries   int    `json:"libraries"`
	Generations int    `json:"generations"`
	TimeMs      int64  `json:"timeMs"`
	Output      string `json:"output"`
}

func newRootCmd() *cobra.Command {
	var (
		cfgPath string
		output  string
		jsonOut bool
		verbose bool
		opts    = DefaultConfig()
	)

	cmd := &cobra.Command{
		Use:   "bookscan-solver <instance>",
		Short: "Genetic solver for the library book-scanning problem",
		Long: `Searches for a high-scoring library signup order under a shared day budget
using a genetic algorithm: tournament selection, split-point crossover and
boundary-swap mutation over library permutations. Interrupt with SIGINT to
stop after the current generation and keep the best solution found so far.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := LoadConfig(cfgPath)
			if err != nil {
				return err
			}
			f := cmd.Flags()
			if f.Changed("size") {
				cfg.Size = opts.Size
			}
			if f.Changed("iterations") {
				cfg.Iterations = opts.Iterations
			}
			if f.Changed("tournament-size") {
				cfg.TournamentK = opts.TournamentK
			}
			if f.Changed("mutations-count") {
				cfg.Mutations = opts.Mutations
			}
			if f.Changed("workers") {
				cfg.Workers = opts.Workers
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			return run(args[0], output, cfg, jsonOut, verbose)
		},
	}

	cmd.Flags().StringVar(&cfgPath, "config", "", "Optional YAML config file")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Submission output path (default <instance>.out)")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Print the run summary as JSON")
	cmd.Flags().BoolVar(&verbose, "verbose", false, "Print per-phase debug detail to stderr")
	cmd.Flags().IntVarP(&opts.Size, "size", "s", opts.Size, "Population size")
	cmd.Flags().IntVarP(&opts.Iterations, "iterations", "i", opts.Iterations, "Number of generations")
	cmd.Flags().IntVarP(&opts.TournamentK, "tournament-size", "k", opts.TournamentK, "Tournament size")
	cmd.Flags().IntVarP(&opts.Mutations, "mutations-count", "m", opts.Mutations, "Mutation attempts per chromosome per generation")
	cmd.Flags().IntVar(&opts.Workers, "workers", opts.Workers, "Parallel workers per phase")

	return cmd
}

func run(instancePath, output string, cfg Config, jsonOut, verbose bool) error {
	logger := newLogger(verbose)
	defer func() { _ = logger.Sync() }()

	inst, err := LoadInstance(instancePath)
	if err != nil {
		return err
	}
	logger.Info("instance loaded",
		zap.String("name", inst.Name),
		zap.Int("books", inst.NumBooks),
		zap.Int("libraries", len(inst.Libraries)),
		zap.Int("days", inst.Days))
	logger.Info("baseline score of unshuffled ordering",
		zap.Int("score", scoreOrdering(inst.Libraries, inst.Days)))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	res, err := NewEvolver(inst, cfg, logger).Run(ctx)
	if err != nil {
		return err
	}

	sub := BuildSubmission(res.Best)
	if output == "" {
		output = instancePath + ".out"
	}
	if err := WriteResult(sub, output); err != nil {
		return err
	}
	logger.Info("result saved",
		zap.String("path", output),
		zap.Int("score", sub.Score),
		zap.Int("libraries", len(sub.Entries)))

	if jsonOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(RunSummary{
			Instance:    inst.Name,
			Score:       sub.Score,
			Libraries:   len(sub.Entries),
			Generations: res.Generations,
			TimeMs:      res.Elapsed.Milliseconds(),
			Output:      output,
		})
	}
	printSummary(inst.Name, sub, res)
	return nil
}

func printSummary(name string, sub *Submission, res *Result) {
	fmt.Printf("%-16s %10s %12s %8s\n", "Instance", "Score", "Generations", "Time")
	fmt.Printf("%-16s %10d %12d %7.1fs\n", name, sub.Score, res.Generations, res.Elapsed.Seconds())
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
