// Package main provides the baserun CLI entry point. baserun resolves
// a 1C:Enterprise connection descriptor to a starter invocation, either
// from a single command-line argument or through the interactive
// session.
package main

import (
	"fmt"
	"os"

	"baserun/cmd/baserun/tui"
	"baserun/internal/config"
	"baserun/internal/descriptor"
	"baserun/internal/launch"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// Global flags
	designer    bool
	verbose     bool
	starterPath string

	// Logger
	logger = zap.NewNop()
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "baserun [descriptor]",
	Short: "baserun - 1C:Enterprise connection launcher",
	Long: `baserun classifies a 1C:Enterprise connection descriptor and launches
the 1C starter with the translated arguments.

Recognized descriptor forms:
  ws="<url>";                web-service endpoint
  File="<path>";             file infobase
  Srvr="host";Ref="name";    server infobase
  host;name                  server infobase, short form

Run without arguments to pick or edit a descriptor interactively.`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip logger init for interactive mode (it has its own UI)
		if len(args) == 0 {
			return nil
		}

		zcfg := zap.NewProductionConfig()
		if verbose {
			zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = zcfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := loadConfig()

		path := starterPath
		if path == "" {
			path = cfg.StarterPath
		}
		starter := launch.NewExecStarter(path)

		if len(args) == 0 {
			return tui.Run(tui.Config{
				Designer:    designer,
				Starter:     starter,
				HistoryPath: cfg.HistoryFile,
			})
		}
		return runOnce(args[0], designer, starter)
	},
}

// runOnce classifies and dispatches a single descriptor. Failures print
// a one-line diagnostic distinguishing parsing from launch problems and
// surface as a non-zero exit status.
func runOnce(raw string, designerMode bool, starter launch.Starter) error {
	desc, err := descriptor.Classify(raw)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Parsing error: %v\n", err)
		return err
	}
	logger.Debug("descriptor classified",
		zap.String("form", string(descriptor.FormOf(desc))))

	if err := launch.Dispatch(desc, designerMode, starter); err != nil {
		fmt.Fprintf(os.Stderr, "Launcher error: %v\n", err)
		return err
	}
	logger.Info("starter spawned",
		zap.String("form", string(descriptor.FormOf(desc))),
		zap.Bool("designer", designerMode))
	return nil
}

// loadConfig reads user preferences; a broken config file is reported
// and replaced with defaults rather than blocking a launch.
func loadConfig() config.Config {
	path, err := config.DefaultPath()
	if err != nil {
		return config.DefaultConfig()
	}
	cfg, err := config.Load(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: ignoring config %s: %v\n", path, err)
	}
	return cfg
}

func init() {
	rootCmd.Flags().BoolVarP(&designer, "designer", "d", false, "launch in designer mode")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.Flags().StringVar(&starterPath, "starter", "", "path to the 1C starter executable (overrides config)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
