// Command bubble draws chat bubbles: single outlines, rendered
// conversations, and an interactive terminal chat.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"honnef.co/go/bubble/internal/config"
)

var (
	// Global flags
	verbose    bool
	configPath string
	logFile    string

	logger *zap.Logger
	cfg    *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "bubble",
	Short: "Draw chat bubbles",
	Long: `bubble generates the outlines of chat bubbles, rounded rectangles with
an optional speech tail at the bottom-left or bottom-right corner.

Settings such as the corner radius, tail size, layout and colors are read
from a YAML file given with --config.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		logger, err = newLogger(cmd)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}
		logger.Debug("Loaded configuration",
			zap.String("path", configPath),
			zap.Float64("corner_radius", cfg.Style.CornerRadius),
			zap.Duration("expiry", cfg.Expiry))
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

// newLogger builds the production logger. The chat front end owns the
// terminal, so it only logs when a log file is given.
func newLogger(cmd *cobra.Command) (*zap.Logger, error) {
	if cmd == chatCmd && logFile == "" {
		return zap.NewNop(), nil
	}
	zc := zap.NewProductionConfig()
	if verbose {
		zc.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	if logFile != "" {
		zc.OutputPaths = []string{logFile}
		zc.ErrorOutputPaths = []string{logFile}
	}
	return zc.Build()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Configuration file (default: built-in settings)")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Write logs to this file instead of stderr")

	rootCmd.AddCommand(outlineCmd)
	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(chatCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
