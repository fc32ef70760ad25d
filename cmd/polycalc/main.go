package main

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"os"
	"os/signal"
	"slices"
	"strconv"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/averycrespi/polycalc/internal/config"
	"github.com/averycrespi/polycalc/internal/logging"
	"github.com/averycrespi/polycalc/internal/repl"
	"github.com/averycrespi/polycalc/internal/server"
	"github.com/averycrespi/polycalc/internal/session"
	"github.com/averycrespi/polycalc/internal/store"
	"github.com/averycrespi/polycalc/pkg/project"
	"github.com/averycrespi/polycalc/pkg/types"
)

// app holds the state shared by every command
type app struct {
	configPath string
	logLevel   string

	config  types.Config
	logger  *zap.Logger
	session *session.Session
}

func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   project.Name,
		Short: "Polynomial calculator",
		Long: `polycalc adds, subtracts, multiplies, evaluates, compares and
differentiates polynomials in x such as "3x^2 - 2x + 1".

Run without arguments to start the interactive calculator.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
		Args: cobra.NoArgs,
		RunE: a.runInteractive,
	}

	rootCmd.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "Path to a YAML or TOML config file")
	rootCmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "Log level (debug, info, warn, error); overrides the config file")

	rootCmd.AddCommand(a.newServeCmd())
	rootCmd.AddCommand(a.newEvalCmd())
	rootCmd.AddCommand(newVersionCmd())
	return rootCmd
}

// setup loads the configuration, builds the logger and preloads the variable store
func (a *app) setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.LogLevel = a.logLevel
		if err := config.Validate(cfg); err != nil {
			return err
		}
	}
	a.config = cfg

	a.logger, err = logging.New(cfg.LogLevel)
	if err != nil {
		return err
	}

	a.session = session.New(store.New(store.WithIdentifierRule(store.LettersRule(cfg.MaxIdentifierLength))))

	// Sorted so that a variable may refer to one whose name sorts before it
	for _, name := range slices.Sorted(maps.Keys(cfg.Variables)) {
		p, err := a.session.ResolvePolynomial(cfg.Variables[name])
		if err != nil {
			return fmt.Errorf("failed to load variable %q: %w", name, err)
		}
		if err := a.session.Store(name, p); err != nil {
			return fmt.Errorf("failed to load variable %q: %w", name, err)
		}
		a.logger.Debug("Loaded variable", zap.String("name", name), zap.Stringer("polynomial", p))
	}
	return nil
}

func (a *app) runInteractive(cmd *cobra.Command, args []string) error {
	r := repl.New(a.session, cmd.InOrStdin(), cmd.OutOrStdout(), a.logger,
		repl.WithAbortKeyword(a.config.AbortKeyword),
		repl.WithMaxIdentifierLength(a.config.MaxIdentifierLength),
	)
	if err := r.Run(cmd.Context()); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

func (a *app) newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the calculator as MCP tools over stdio",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			s := server.NewPolycalcServer(a.session, a.logger)
			return s.Listen(ctx, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
}

func (a *app) newEvalCmd() *cobra.Command {
	var (
		at         float64
		derivative bool
	)

	cmd := &cobra.Command{
		Use:   "eval EXPRESSION",
		Short: "Print the canonical form of a polynomial",
		Long: `Print the canonical form of a polynomial, a stored variable from the
config file, or an assignment. Arguments are joined with spaces. Quote
expressions that contain a term starting with "-".`,
		Example: `  polycalc eval "3x^2 - 2x + 1" --at 2
  polycalc eval x^3 + x --derivative`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := a.session.ResolvePolynomial(strings.Join(args, " "))
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, p)
			if derivative {
				fmt.Fprintf(out, "derivative: %s\n", p.Derivative())
			}
			if cmd.Flags().Changed("at") {
				fmt.Fprintf(out, "value at x = %s: %s\n",
					strconv.FormatFloat(at, 'g', -1, 64),
					strconv.FormatFloat(p.Eval(at), 'g', -1, 64))
			}
			return nil
		},
	}

	cmd.Flags().Float64Var(&at, "at", 0, "Evaluate the polynomial at this value of x")
	cmd.Flags().BoolVarP(&derivative, "derivative", "d", false, "Also print the derivative")
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		// Printing the version needs neither config nor logger
		PersistentPreRun: func(cmd *cobra.Command, args []string) {},
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", project.Name, project.Version)
		},
	}
}

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
