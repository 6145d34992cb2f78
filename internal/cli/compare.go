package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"cpu-simulator/internal/metrics"
	"cpu-simulator/internal/requests"
	"cpu-simulator/internal/schedulers"
)

func newCompareCmd() *cobra.Command {
	var flags inputFlags
	var algorithms []string

	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Run several algorithms over the same process file",
		Example: `  cpu-simulator compare -f processes.csv -q 3
  cpu-simulator compare -f processes.json -a fcfs -a sjf`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			processes, err := readProcesses(flags.file, flags.inputFormat, cmd.InOrStdin())
			if err != nil {
				return err
			}

			request := requests.CompareRequest{
				Algorithms:  algorithms,
				Processes:   processes,
				TimeQuantum: flags.timeQuantum(cmd),
			}
			resolved, err := request.Validate(limits())
			if err != nil {
				return fmt.Errorf("invalid input: %w", err)
			}

			engine := schedulers.NewEngine(logger, metrics.NopRecorder{})
			results, err := engine.Compare(cmd.Context(), resolved, requests.ToProcessSpecs(processes), request.Options())
			if err != nil {
				return err
			}
			return writeOutput(cmd.OutOrStdout(), flags.output, results)
		},
	}

	cmd.Flags().StringSliceVarP(&algorithms, "algorithm", "a", nil, "Algorithms to compare (default all)")
	flags.register(cmd)
	return cmd
}
