package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/patrol/grid"
	"github.com/katalvlaran/patrol/internal/logging"
	"github.com/katalvlaran/patrol/simulate"
)

// newTraceCmd creates the trace command.
func (a *App) newTraceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "trace <layout|->",
		Short: "Draw the guard's path over the layout",
		Long: `Run the unmodified patrol and print the layout with every square the
guard covered marked 'X', followed by the verdict. A layout that traps the
guard is drawn without marks.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.tracePatrol(cmd, args[0])
		},
	}
}

func (a *App) tracePatrol(cmd *cobra.Command, path string) error {
	cfg, err := a.loadConfig()
	if err != nil {
		return err
	}
	logger := a.logger(cfg)

	input, err := readInput(cmd, path)
	if err != nil {
		return err
	}
	template, err := grid.Parse(input)
	if err != nil {
		logging.With(logger.Error(), logging.Component("trace"), logging.Input(path), logging.ErrorField(err)).
			Msg("parse failed")
		return err
	}

	res, err := simulate.Run(template.Clone(), simulate.WithContext(cmd.Context()))
	if err != nil {
		return err
	}
	logging.With(logger.Info(), logging.Component("trace"), logging.Input(path),
		logging.Dimensions(template.Width(), template.Height()), logging.Verdict(res.Verdict.String())).
		Msg("patrol finished")

	fmt.Fprintln(a.stdout, template.Render(res.Visited))
	fmt.Fprintf(a.stdout, "verdict: %s, squares: %d, states: %d\n", res.Verdict, res.Distinct(), res.States)

	return nil
}
