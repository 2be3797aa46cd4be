package main

import (
	"context"
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/xavierca1/evangelism-crm/config"
	"github.com/xavierca1/evangelism-crm/internal/infra/auth"
	"github.com/xavierca1/evangelism-crm/internal/infra/database"
	"github.com/xavierca1/evangelism-crm/internal/usecase"
	"github.com/xavierca1/evangelism-crm/pkg/logger"
)

type flags struct {
	converts  int
	workers   int
	services  int
	batchSize int
	seed      int64
	store     string
	reset     bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var f flags

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Populate the evangelism CRM demo with synthetic Nigerian church data",
		Long: `seed writes one demo tenant: the church, its staff, converts, services,
follow-ups, health scores, alerts, automations and voice agent data.

An already seeded tenant is left alone unless --reset is given, which clears
every demo collection first.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			godotenv.Load()
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			return run(cmd.Context(), cmd, cfg, f)
		},
	}

	cmd.Flags().IntVar(&f.converts, "converts", 0, "number of converts (default DEMO_CONVERTS)")
	cmd.Flags().IntVar(&f.workers, "workers", 0, "number of worker accounts besides the admin (default DEMO_WORKERS)")
	cmd.Flags().IntVar(&f.services, "services", 0, "number of service instances (default DEMO_SERVICES)")
	cmd.Flags().IntVar(&f.batchSize, "batch-size", 0, "records per insert (default DEMO_BATCH_SIZE)")
	cmd.Flags().Int64Var(&f.seed, "seed", 0, "random seed; 0 picks a new one every run")
	cmd.Flags().StringVar(&f.store, "store", "", "memory, postgres or mongo (default STORE_DRIVER)")
	cmd.Flags().BoolVar(&f.reset, "reset", false, "clear all demo collections before seeding")
	return cmd
}

// apply overrides config values with the flags the user actually set.
func apply(cmd *cobra.Command, cfg *config.Config, f flags) {
	changed := cmd.Flags().Changed
	if changed("converts") {
		cfg.Demo.Converts = f.converts
	}
	if changed("workers") {
		cfg.Demo.Workers = f.workers
	}
	if changed("services") {
		cfg.Demo.Services = f.services
	}
	if changed("batch-size") {
		cfg.Demo.BatchSize = f.batchSize
	}
	if changed("seed") {
		cfg.Demo.Seed = f.seed
	}
	if changed("store") {
		cfg.Store.Driver = f.store
	}
}

func run(ctx context.Context, cmd *cobra.Command, cfg *config.Config, f flags) error {
	if ctx == nil {
		ctx = context.Background()
	}
	apply(cmd, cfg, f)
	if err := cfg.Validate(); err != nil {
		return err
	}
	log := logger.NewLoggerWithLevel(cfg.LogLevel)

	store, closeStore, err := database.Open(ctx, database.Options{
		Driver:        cfg.Store.Driver,
		DatabaseURL:   cfg.Store.DatabaseURL,
		Table:         cfg.Store.Table,
		MongoURL:      cfg.Store.MongoURL,
		MongoDatabase: cfg.Store.MongoDatabase,
	})
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}
	defer closeStore(context.Background())

	seeder := usecase.NewSeedDemoUseCase(store, auth.NewBcryptHasher(cfg.Security.BcryptCost), log)
	input := cfg.Demo.SeedInput()

	var out *usecase.SeedDemoOutput
	if f.reset {
		reset, err := usecase.NewResetDemoUseCase(store, seeder, log).Execute(ctx, input)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "cleared %d collections (%d records)\n", reset.CollectionsCleared, reset.RecordsRemoved)
		out = reset.Seed
	} else {
		out, err = seeder.Execute(ctx, input)
		if err != nil {
			return err
		}
	}

	printSummary(cmd, out)
	return nil
}

func printSummary(cmd *cobra.Command, out *usecase.SeedDemoOutput) {
	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "seeded client %s in %s\n", out.ClientID, out.Duration.Round(time.Millisecond))

	names := make([]string, 0, len(out.Counts))
	for name := range out.Counts {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(w, "  %-22s %d\n", name, out.Counts[name])
	}
	fmt.Fprintf(w, "total records: %d\n", out.Total())
}
