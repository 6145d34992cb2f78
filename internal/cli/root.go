package cli

import (
	"log/slog"

	"github.com/spf13/cobra"

	"cpu-simulator/config"
	"cpu-simulator/internal/logging"
)

var (
	flagConfig    string
	flagLogLevel  string
	flagLogFormat string

	cfg    *config.SchedulerConfig
	logger *slog.Logger
)

// NewRootCmd creates the root cobra command for the cpu-simulator binary.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "cpu-simulator",
		Short: "CPU scheduling simulator",
		Long:  "cpu-simulator computes FCFS, SJF, Priority and Round Robin schedules and serves them over HTTP.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := loadConfig()
			if err != nil {
				return err
			}
			// flags and serve --port edit a private copy, never the shared config
			resolved := *loaded
			if cmd.Flags().Changed("log-level") {
				resolved.LogLevel = flagLogLevel
			}
			if cmd.Flags().Changed("log-format") {
				resolved.LogFormat = flagLogFormat
			}
			cfg = &resolved
			logger = logging.NewLoggerWithWriter(logging.ParseLevel(cfg.LogLevel), cfg.LogFormat, cmd.ErrOrStderr())
			return nil
		},
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&flagConfig, "config", "", "Config file (default ./config.yaml)")
	root.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	root.PersistentFlags().StringVar(&flagLogFormat, "log-format", "text", "Log format (text, json)")

	root.AddCommand(
		newServeCmd(),
		newSimulateCmd(),
		newCompareCmd(),
	)

	return root
}

// loadConfig uses the process-wide config unless --config names a file.
func loadConfig() (*config.SchedulerConfig, error) {
	if flagConfig == "" {
		return config.GetSchedulerConfig()
	}
	return config.LoadSchedulerConfig(flagConfig)
}
