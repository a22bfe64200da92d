// Command qrlp builds and solves a quality-aware recipe linear program from
// a catalog data file and a solver configuration, following
// _examples/Napolitain-solver-lnk/cmd/units/main.go's cobra entrypoint shape.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/kvoss/qrlp/pkg/application/dto"
	"github.com/kvoss/qrlp/pkg/application/services/qrlp"
	"github.com/kvoss/qrlp/pkg/application/services/solver"
	"github.com/kvoss/qrlp/pkg/domain/entities"
	"github.com/kvoss/qrlp/pkg/infrastructure/repositories/jsoncatalog"
	icli "github.com/kvoss/qrlp/pkg/interfaces/cli"
)

var (
	catalogPath string
	configPath  string
	outputPath  string
	verbose     bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "qrlp",
		Short: "Quality-aware Recipe Linear Program builder and solver",
		Long: `Enumerates recipe/machine/module activities over quality tiers, assembles
mass-balance constraints, and solves the resulting linear program for the
cheapest cost-weighted set of activities that satisfies a declared demand.`,
		RunE: run,
	}

	rootCmd.Flags().StringVarP(&catalogPath, "catalog", "d", "", "path to the catalog data JSON file")
	rootCmd.Flags().StringVarP(&configPath, "config", "c", "", "path to the solver configuration JSON file")
	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "optional path to write the activity CSV report")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	_ = rootCmd.MarkFlagRequired("catalog")
	_ = rootCmd.MarkFlagRequired("config")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
		With().Timestamp().Logger().Level(level)

	cfg, err := loadConfig(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	maxTierUnlocked, err := cfg.ResolvedMaxQualityUnlocked()
	if err != nil {
		return fmt.Errorf("resolving max_quality_unlocked: %w", err)
	}

	loader := jsoncatalog.NewLoader()
	catalog, warnings, err := loader.Load(catalogPath, maxTierUnlocked)
	if err != nil {
		return fmt.Errorf("loading catalog: %w", err)
	}
	for _, w := range warnings {
		logger.Warn().Str("recipe", w.RecipeKey).Msg(w.Reason)
	}

	problem, err := qrlp.Build(catalog, cfg, logger)
	if err != nil {
		return fmt.Errorf("building problem: %w", err)
	}
	logger.Info().Int("variables", problem.NumVars()).Int("constraints", problem.NumConstraints()).Msg("problem assembled")

	driver := solver.NewDriver(logger)
	solution, err := driver.Solve(problem)
	if err != nil {
		return fmt.Errorf("solving: %w", err)
	}

	result, err := dto.FromActivitySolutions(solution.Status, solution.Objective, solution.Activities, solution.Supplies, solution.Byproducts, time.Now())
	if err != nil {
		return fmt.Errorf("rendering result: %w", err)
	}

	reporter := icli.NewReporter(os.Stdout)
	reporter.Report(result)

	if outputPath != "" {
		f, err := os.Create(outputPath)
		if err != nil {
			return fmt.Errorf("creating output file %s: %w", outputPath, err)
		}
		defer f.Close()
		if err := icli.ExportCSV(f, result); err != nil {
			return fmt.Errorf("writing csv to %s: %w", outputPath, err)
		}
		logger.Info().Str("path", outputPath).Msg("wrote CSV report")
	}

	return nil
}

func loadConfig(path string) (entities.SolverConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return entities.SolverConfig{}, fmt.Errorf("reading config file %s: %w", path, err)
	}
	var cfg entities.SolverConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return entities.SolverConfig{}, fmt.Errorf("parsing config file %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return entities.SolverConfig{}, err
	}
	return cfg, nil
}
