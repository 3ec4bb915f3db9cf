// Package cli provides the command-line interface of patrol.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/felixgeelhaar/bolt/v3"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/patrol/internal/config"
	"github.com/katalvlaran/patrol/internal/logging"
)

// Version information set at build time.
var (
	Version   = "dev"
	GitCommit = "unknown"
)

// App represents the CLI application.
type App struct {
	root   *cobra.Command
	stdout io.Writer
	stderr io.Writer

	configPath string
	logLevel   string
	logFormat  string
}

// New creates a new CLI application.
func New() *App {
	app := &App{
		stdout: os.Stdout,
		stderr: os.Stderr,
	}

	app.root = &cobra.Command{
		Use:   "patrol",
		Short: "Simulate a guard patrol and find the obstructions that trap it",
		Long: `patrol reads a floor plan of '.', '#' and a single '^' guard, walks the
guard until it leaves the map, and reports how many squares it covered and
how many single added obstructions would keep it walking in circles forever.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := app.root.PersistentFlags()
	pf.StringVarP(&app.configPath, "config", "c", "", "Path to YAML configuration file")
	pf.StringVar(&app.logLevel, "log-level", "", "Log level: trace, debug, info, warn, error (overrides config)")
	pf.StringVar(&app.logFormat, "log-format", "", "Log format: console or json (overrides config)")

	app.root.AddCommand(
		app.newVersionCmd(),
		app.newRunCmd(),
		app.newTraceCmd(),
	)

	return app
}

// WithOutput sets custom output writers.
func (a *App) WithOutput(stdout, stderr io.Writer) *App {
	a.stdout = stdout
	a.stderr = stderr
	a.root.SetOut(stdout)
	a.root.SetErr(stderr)
	return a
}

// WithInput sets the reader used for the "-" input path.
func (a *App) WithInput(stdin io.Reader) *App {
	a.root.SetIn(stdin)
	return a
}

// Execute runs the CLI application.
func (a *App) Execute(ctx context.Context) error {
	ctx, cancel := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	return a.root.ExecuteContext(ctx)
}

// ExecuteWithArgs runs the CLI with specific arguments (useful for testing).
func (a *App) ExecuteWithArgs(ctx context.Context, args []string) error {
	a.root.SetArgs(args)
	return a.root.ExecuteContext(ctx)
}

// loadConfig reads --config (if any) and applies flag overrides.
func (a *App) loadConfig() (config.Config, error) {
	cfg := config.Default()
	if a.configPath != "" {
		var err error
		cfg, err = config.NewLoader().LoadFile(a.configPath)
		if err != nil {
			return config.Config{}, err
		}
	}
	if a.logLevel != "" {
		cfg.Log.Level = a.logLevel
	}
	if a.logFormat != "" {
		cfg.Log.Format = a.logFormat
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}

	return cfg, nil
}

// logger builds the command logger; logs go to stderr, answers to stdout.
func (a *App) logger(cfg config.Config) *bolt.Logger {
	return logging.New(logging.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: a.stderr,
	})
}

// readInput reads the layout from path, or from the command's stdin for "-".
func readInput(cmd *cobra.Command, path string) (string, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(cmd.InOrStdin())
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return "", fmt.Errorf("read layout %s: %w", path, err)
	}
	return string(data), nil
}

func (a *App) newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(a.stdout, "patrol %s (%s)\n", Version, GitCommit)
		},
	}
}
