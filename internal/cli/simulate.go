package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"cpu-simulator/internal/metrics"
	"cpu-simulator/internal/requests"
	"cpu-simulator/internal/schedulers"
)

type inputFlags struct {
	file        string
	inputFormat string
	quantum     float64
	output      string
}

func (f *inputFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.file, "file", "f", "", "Process file (json, yaml or csv; - for stdin)")
	cmd.Flags().StringVar(&f.inputFormat, "input-format", "auto", "Input format (auto, json, yaml, csv)")
	cmd.Flags().Float64VarP(&f.quantum, "quantum", "q", 0, "Round robin time quantum (default from config)")
	cmd.Flags().StringVarP(&f.output, "output", "o", "json", "Output format (json, yaml)")
	_ = cmd.MarkFlagRequired("file")
}

// timeQuantum returns the flag value when set, the configured default otherwise.
func (f *inputFlags) timeQuantum(cmd *cobra.Command) *float64 {
	quantum := cfg.RoundRobinTimeQuantum
	if cmd.Flags().Changed("quantum") {
		quantum = f.quantum
	}
	return &quantum
}

func limits() requests.Limits {
	return requests.Limits{MaxDispatches: cfg.MaxRoundRobinDispatches}
}

func newSimulateCmd() *cobra.Command {
	var flags inputFlags
	var algorithm string

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Schedule a process file with one algorithm",
		Example: `  cpu-simulator simulate -a rr -q 2 -f processes.csv
  cpu-simulator simulate -a priority -f processes.yaml -o yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			processes, err := readProcesses(flags.file, flags.inputFormat, cmd.InOrStdin())
			if err != nil {
				return err
			}

			request := requests.ScheduleRequest{
				Algorithm:   algorithm,
				Processes:   processes,
				TimeQuantum: flags.timeQuantum(cmd),
			}
			resolved, err := request.Validate(limits())
			if err != nil {
				return fmt.Errorf("invalid input: %w", err)
			}

			engine := schedulers.NewEngine(logger, metrics.NopRecorder{})
			response, err := engine.Run(cmd.Context(), resolved, requests.ToProcessSpecs(processes), request.Options())
			if err != nil {
				return err
			}
			return writeOutput(cmd.OutOrStdout(), flags.output, response)
		},
	}

	cmd.Flags().StringVarP(&algorithm, "algorithm", "a", "", "Algorithm (fcfs, sjf, priority, rr)")
	_ = cmd.MarkFlagRequired("algorithm")
	flags.register(cmd)
	return cmd
}

func writeOutput(w io.Writer, format string, v any) error {
	switch strings.ToLower(format) {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case "yaml", "yml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	}
	return fmt.Errorf("unsupported output format %q", format)
}
