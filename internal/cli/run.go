package cli

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/patrol/internal/logging"
	"github.com/katalvlaran/patrol/puzzle"
	"github.com/katalvlaran/patrol/search"
)

// runOptions holds options for the run command.
type runOptions struct {
	workers    int
	jsonOutput bool
}

// runOutput is the JSON shape of the run command's answers.
type runOutput struct {
	Width        int `json:"width"`
	Height       int `json:"height"`
	Visited      int `json:"visited"`
	Obstructions int `json:"obstructions"`
}

// newRunCmd creates the run command.
func (a *App) newRunCmd() *cobra.Command {
	opts := &runOptions{}

	cmd := &cobra.Command{
		Use:   "run <layout|->",
		Short: "Count visited squares and looping obstructions",
		Long: `Run the guard patrol on a layout file ("-" reads stdin) and print:

  visited       distinct squares covered before the guard leaves the map
  obstructions  single squares that, obstructed, trap the guard in a loop

Examples:
  patrol run lab.txt
  patrol run --workers 1 --json lab.txt
  cat lab.txt | patrol run -c patrol.yaml -`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runPatrol(cmd, args[0], opts)
		},
	}

	cmd.Flags().IntVarP(&opts.workers, "workers", "w", -1, "Concurrent candidate runs, 0 = one per CPU (overrides config)")
	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output results as JSON")

	return cmd
}

// runPatrol loads config and input, solves, and prints the answers.
func (a *App) runPatrol(cmd *cobra.Command, path string, opts *runOptions) error {
	cfg, err := a.loadConfig()
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("workers") {
		cfg.Workers = opts.workers
	}
	logger := a.logger(cfg)

	input, err := readInput(cmd, path)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	logging.With(logger.Debug(), logging.Component("run"), logging.Input(path), logging.Workers(cfg.Workers)).
		Msg("solving layout")

	rep, err := puzzle.Solve(ctx, input, search.WithWorkers(cfg.Workers))
	if err != nil {
		logging.With(logger.Error(), logging.Component("run"), logging.Input(path), logging.ErrorField(err)).
			Msg("solve failed")
		return err
	}
	logging.With(logger.Info(), logging.Component("run"), logging.Input(path),
		logging.Dimensions(rep.Width, rep.Height), logging.Visited(rep.Visited), logging.Duration(rep.VisitedTook)).
		Msg("baseline patrol")
	logging.With(logger.Info(), logging.Component("run"), logging.Input(path),
		logging.Obstructions(rep.Obstructions), logging.Duration(rep.ObstructionsTook)).
		Msg("obstruction search")

	if opts.jsonOutput {
		enc := json.NewEncoder(a.stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(runOutput{
			Width:        rep.Width,
			Height:       rep.Height,
			Visited:      rep.Visited,
			Obstructions: rep.Obstructions,
		})
	}
	fmt.Fprintf(a.stdout, "visited: %d\nobstructions: %d\n", rep.Visited, rep.Obstructions)

	return nil
}
