package commands

import (
	"fmt"
	"io"
	"log/slog"

	"transaction-insights/internal/database"
	"transaction-insights/internal/repositories"
	"transaction-insights/internal/services"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
)

func newSeedCommand() *cobra.Command {
	var accountID string
	var count int
	var days int
	var clearAccount bool

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Generate fake transactions for an account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := uuid.Parse(accountID)
			if err != nil || id == uuid.Nil {
				return fmt.Errorf("invalid --account-id %q: must be a UUID", accountID)
			}

			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			db, err := database.Initialize(cmd.Context(), cfg)
			if err != nil {
				return fmt.Errorf("initializing database: %w", err)
			}
			defer db.Close()

			seeder := services.NewSeedService(
				repositories.NewTransactionRepository(db.DB),
				services.NewTransactionGenerator(),
				services.NewSearchLogger(slog.Default()),
				services.NewPrometheusMetrics(prometheus.NewRegistry()),
			)
			if clearAccount {
				return runClear(cmd, seeder, id)
			}
			return runSeed(cmd, seeder, id, count, days)
		},
	}

	cmd.Flags().StringVar(&accountID, "account-id", "", "account to seed (required)")
	_ = cmd.MarkFlagRequired("account-id")
	cmd.Flags().IntVar(&count, "count", services.DefaultSeedCount, "number of transactions to generate")
	cmd.Flags().IntVar(&days, "days", services.DefaultSeedDays, "days of history to cover")
	cmd.Flags().BoolVar(&clearAccount, "clear", false, "delete the account's transactions instead of seeding")

	return cmd
}

func runSeed(cmd *cobra.Command, seeder services.SeedServiceInterface, accountID uuid.UUID, count, days int) error {
	result, err := seeder.SeedAccount(cmd.Context(), accountID, count, days)
	if err != nil {
		return err
	}
	printSeedResult(cmd.OutOrStdout(), result)
	return nil
}

func runClear(cmd *cobra.Command, seeder services.SeedServiceInterface, accountID uuid.UUID) error {
	deleted, err := seeder.ClearAccount(cmd.Context(), accountID)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Deleted %d transactions for account %s\n", deleted, accountID)
	return nil
}

func printSeedResult(w io.Writer, result *services.SeedResult) {
	fmt.Fprintf(w, "Created %d transactions for account %s\n", result.Created, result.AccountID)
	fmt.Fprintf(w, "  period:        %s to %s\n", result.StartDate.Format("2006-01-02"), result.EndDate.Format("2006-01-02"))
	fmt.Fprintf(w, "  final balance: %s\n", result.FinalBalance.StringFixed(2))
}
