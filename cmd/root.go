package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	sim "github.com/parksim/parksim/sim"
)

var (
	// CLI flags for the run configuration
	seed         int64     // Seed for all random streams
	horizon      float64   // Total simulation time (in minutes)
	logLevel     string    // Log verbosity level
	scenarioPath string    // YAML scenario file; overrides the individual flags
	rides        int       // Number of rides in the park
	capacity     int       // Slots per ride
	arrivalRates []float64 // Arrival rate per band (visitors/minute)
	bandMinutes  float64   // Width of each arrival-rate band (minutes)

	// CLI flags for the outage model
	failures   bool    // Whether rides fail at all
	meanTTF    float64 // Mean time to failure (minutes)
	meanRepair float64 // Mean repair duration (minutes)

	// CLI flags for service durations and visitor behavior
	serviceMin     float64 // Triangular service duration minimum
	serviceMode    float64 // Triangular service duration mode
	serviceMax     float64 // Triangular service duration maximum
	perRideService bool    // Draw an independent duration per ride
	policy         string  // Visitor selection policy (queue, retry)
	retryLimit     int     // Redraw bound under the retry policy
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "parksim",
	Short: "Discrete-event simulator for capacity-limited queueing networks",
}

// runCmd executes one simulation run using parameters from CLI flags or a
// scenario file, then prints the summary table.
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the park simulation",
	Run: func(cmd *cobra.Command, args []string) {
		// Set up logging
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)

		cfg := flagConfig()
		if scenarioPath != "" {
			cfg, err = sim.LoadConfig(scenarioPath)
			if err != nil {
				logrus.Fatalf("unable to read scenario: %v", err)
			}
		}
		if err := cfg.Validate(); err != nil {
			logrus.Fatalf("invalid config: %v", err)
		}

		logrus.Infof("Starting simulation: %d rides x capacity %d, horizon=%.0fmin, seed=%d, policy=%s",
			cfg.Rides, cfg.Capacity, cfg.Horizon, cfg.Seed, cfg.Policy)

		s, err := sim.NewSimulator(cfg)
		if err != nil {
			logrus.Fatalf("unable to build simulator: %v", err)
		}
		snapshot := s.Run()
		snapshot.Print()

		logrus.Info("Simulation complete.")
	},
}

// flagConfig assembles a Config from the individual CLI flags. Bands are
// laid out contiguously: rate[i] covers [i*bandMinutes, (i+1)*bandMinutes),
// with the last rate extending to the horizon.
func flagConfig() sim.Config {
	bands := make([]sim.RateBand, len(arrivalRates))
	for i, r := range arrivalRates {
		bands[i] = sim.RateBand{Start: float64(i) * bandMinutes, Rate: r}
	}
	return sim.Config{
		Seed:         seed,
		Horizon:      horizon,
		Rides:        rides,
		Capacity:     capacity,
		ArrivalBands: bands,
		Service: sim.ServiceConfig{
			Min:     serviceMin,
			Mode:    serviceMode,
			Max:     serviceMax,
			PerRide: perRideService,
		},
		Failure: sim.FailureConfig{
			Enabled:           failures,
			MeanTimeToFailure: meanTTF,
			MeanRepair:        meanRepair,
		},
		Policy:     policy,
		RetryLimit: retryLimit,
	}
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {
	defaults := sim.DefaultConfig()

	runCmd.Flags().Int64Var(&seed, "seed", defaults.Seed, "Seed for all random streams")
	runCmd.Flags().Float64Var(&horizon, "horizon", defaults.Horizon, "Total simulation time (minutes)")
	runCmd.Flags().StringVar(&logLevel, "log", "error", "Log level (trace, debug, info, warn, error, fatal, panic)")
	runCmd.Flags().StringVar(&scenarioPath, "scenario", "", "YAML scenario file (overrides the other flags)")

	// Park layout
	runCmd.Flags().IntVar(&rides, "rides", defaults.Rides, "Number of rides")
	runCmd.Flags().IntVar(&capacity, "capacity", defaults.Capacity, "Slots per ride")

	// Arrival pressure
	runCmd.Flags().Float64SliceVar(&arrivalRates, "arrival-rates", []float64{5, 10, 15}, "Comma-separated arrival rates per band (visitors/minute)")
	runCmd.Flags().Float64Var(&bandMinutes, "band-minutes", 120, "Width of each arrival-rate band (minutes)")

	// Outage model
	runCmd.Flags().BoolVar(&failures, "failures", defaults.Failure.Enabled, "Enable stochastic ride outages")
	runCmd.Flags().Float64Var(&meanTTF, "mean-ttf", defaults.Failure.MeanTimeToFailure, "Mean time to failure (minutes)")
	runCmd.Flags().Float64Var(&meanRepair, "mean-repair", defaults.Failure.MeanRepair, "Mean repair duration (minutes)")

	// Service durations and visitor behavior
	runCmd.Flags().Float64Var(&serviceMin, "service-min", defaults.Service.Min, "Triangular service duration minimum (minutes)")
	runCmd.Flags().Float64Var(&serviceMode, "service-mode", defaults.Service.Mode, "Triangular service duration mode (minutes)")
	runCmd.Flags().Float64Var(&serviceMax, "service-max", defaults.Service.Max, "Triangular service duration maximum (minutes)")
	runCmd.Flags().BoolVar(&perRideService, "per-ride-service", defaults.Service.PerRide, "Draw an independent service duration per ride")
	runCmd.Flags().StringVar(&policy, "policy", defaults.Policy, "Visitor selection policy (queue, retry)")
	runCmd.Flags().IntVar(&retryLimit, "retry-limit", defaults.RetryLimit, "Redraw bound under the retry policy")

	// Attach `run` as a subcommand to `root`
	rootCmd.AddCommand(runCmd)
}
