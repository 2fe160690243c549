// Command vrpgo is the spec-mandated thin CLI surface (§6): one `solve`
// subcommand wired straight to the driver engine. Grounded on the
// teacher's examples/ convention of one runnable main per demonstration,
// reshaped into cmd/<binary> because vrpgo ships one long-lived CLI
// rather than many standalone demos (SPEC_FULL §11).
package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/routeforge/vrpgo/driver"
	"github.com/routeforge/vrpgo/ioadapters"
)

// exit codes per §7: 0 success, 1 parse error, 2 internal invariant
// violation.
const (
	exitOK         = 0
	exitParseError = 1
	exitInternal   = 2
)

// parseError marks a failure that belongs to exit code 1 (bad instance or
// config document) as opposed to exit code 2 (an engine-internal failure).
type parseError struct{ cause error }

func (e *parseError) Error() string { return e.cause.Error() }
func (e *parseError) Unwrap() error { return e.cause }

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	root := newRootCmd()
	root.SetArgs(args)
	if err := root.Execute(); err != nil {
		var pe *parseError
		if errors.As(err, &pe) {
			fmt.Fprintln(os.Stderr, "vrpgo:", pe.Error())
			return exitParseError
		}
		fmt.Fprintln(os.Stderr, "vrpgo:", err)
		return exitInternal
	}
	return exitOK
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "vrpgo",
		Short: "Metaheuristic vehicle routing problem solver",
	}
	root.AddCommand(newSolveCmd())
	return root
}

func newSolveCmd() *cobra.Command {
	var (
		seed          int64
		maxRuntime    time.Duration
		maxIterations int
		configPath    string
		statsPath     string
	)

	cmd := &cobra.Command{
		Use:   "solve <instance.json>",
		Short: "Solve a VRP instance and print the best solution found",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return solveCmd(cmd, args[0], seed, maxRuntime, maxIterations, configPath, statsPath)
		},
	}

	cmd.Flags().Int64Var(&seed, "seed", 1, "random seed")
	cmd.Flags().DurationVar(&maxRuntime, "max-runtime", 0, "stop after this much wall-clock time (0 = unbounded)")
	cmd.Flags().IntVar(&maxIterations, "max-iterations", 1000, "stop after this many iterations (0 = no iteration limit; 1000 if --max-runtime is also 0)")
	cmd.Flags().StringVar(&configPath, "config", "", "path to a TOML configuration file")
	cmd.Flags().StringVar(&statsPath, "stats", "", "write per-iteration statistics to this CSV path")

	return cmd
}

func solveCmd(cmd *cobra.Command, instancePath string, seed int64, maxRuntime time.Duration, maxIterations int, configPath, statsPath string) error {
	pd, err := loadInstance(instancePath)
	if err != nil {
		return &parseError{cause: err}
	}

	opts := driver.DefaultOptions()
	if configPath != "" {
		opts, err = ioadapters.LoadConfigFile(configPath)
		if err != nil {
			return &parseError{cause: err}
		}
	}
	opts.Seed = seed
	if maxRuntime > 0 {
		opts.MaxRuntime = maxRuntime
	}
	if maxIterations > 0 {
		opts.MaxIterations = maxIterations
	}

	logger := zap.NewNop().Sugar()
	engine, err := driver.New(pd, opts, logger)
	if err != nil {
		return &parseError{cause: err}
	}

	stop := stopFor(maxRuntime, maxIterations)
	result, err := engine.Run(stop)
	if err != nil {
		return err
	}

	if statsPath != "" {
		if err := writeStats(statsPath, result.Stats); err != nil {
			return err
		}
	}

	printResult(cmd, result)
	return nil
}

func stopFor(maxRuntime time.Duration, maxIterations int) driver.Stop {
	var stops []driver.Stop
	if maxRuntime > 0 {
		stops = append(stops, driver.MaxRuntime(maxRuntime))
	}
	if maxIterations > 0 {
		stops = append(stops, driver.MaxIterations(maxIterations))
	}
	if len(stops) == 0 {
		return driver.MaxIterations(1000)
	}
	return driver.Any(stops...)
}

func writeStats(path string, stats []driver.IterationStat) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("cmd/vrpgo: create stats file: %w", err)
	}
	defer f.Close()
	return ioadapters.WriteStatsCSV(f, stats)
}

func printResult(cmd *cobra.Command, result driver.Result) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "run_id: %s\n", result.RunID)
	fmt.Fprintf(out, "feasible: %v\n", result.Feasible)
	fmt.Fprintf(out, "iterations: %d\n", result.Iterations)
	fmt.Fprintf(out, "elapsed: %s\n", result.Elapsed)
	if result.Best == nil {
		fmt.Fprintln(out, "no solution found")
		return
	}
	fmt.Fprintf(out, "routes: %d\n", len(result.Best.Routes))
	for i, r := range result.Best.Routes {
		fmt.Fprintf(out, "  route %d (vehicle type %d): %v\n", i, r.VehicleType, r.Clients())
	}
	if len(result.Best.Unassigned) > 0 {
		fmt.Fprintf(out, "unassigned: %v\n", result.Best.Unassigned)
	}
}
