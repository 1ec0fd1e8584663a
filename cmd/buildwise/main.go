package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/buildwise/smart-estimator/config"
	"github.com/buildwise/smart-estimator/internal/buildwise/backend"
	"github.com/buildwise/smart-estimator/internal/buildwise/render"
	"github.com/buildwise/smart-estimator/internal/logging"
)

type options struct {
	backendURL string
	timeout    time.Duration
	style      string
	width      int
	asJSON     bool
	verbose    bool
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:   "buildwise",
		Short: "BuildWise smart cost estimator client",
		Long: `buildwise sends construction project parameters to the estimation
service and prints the cost breakdown and the AI plan text.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg := zap.NewDevelopmentConfig()
			cfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
			if opts.verbose {
				cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}
			logger, err := cfg.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			logging.SetBase(logger)
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = logging.Base().Sync()
		},
	}

	// Flags fall back to the same env/.env settings as the web service.
	defaults := config.BackendConfig{URL: "http://127.0.0.1:8000"}
	if cfg, err := config.Load(); err == nil {
		defaults = cfg.Backend
	}

	pf := root.PersistentFlags()
	pf.StringVar(&opts.backendURL, "backend", defaults.URL, "estimation service base URL")
	pf.DurationVar(&opts.timeout, "timeout", defaults.Timeout, "request timeout (0 waits indefinitely)")
	pf.StringVar(&opts.style, "style", "dark", "output style: dark, light, notty")
	pf.IntVar(&opts.width, "width", 80, "word wrap width")
	pf.BoolVar(&opts.asJSON, "json", false, "print raw JSON instead of formatted output")
	pf.BoolVarP(&opts.verbose, "verbose", "v", false, "debug logging")

	root.AddCommand(newEstimateCmd(opts), newPlanCmd(opts), newSplitCmd(opts))
	return root
}

func (o *options) client() *backend.Client {
	return backend.NewClient(o.backendURL, o.timeout)
}

func (o *options) terminal() (*render.Terminal, error) {
	return render.NewTerminal(o.style, o.width)
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
