package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hugohenrick/wallet-agent-chat/internal/config"
	"github.com/hugohenrick/wallet-agent-chat/internal/infrastructure/database"
	"github.com/hugohenrick/wallet-agent-chat/pkg/logger"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		dbURL string
		log   logger.Logger
	)

	root := &cobra.Command{
		Use:          "migration",
		Short:        "Gerencia o schema do histórico no PostgreSQL",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Carregar variáveis de ambiente
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if dbURL == "" {
				dbURL = cfg.Store.Postgres.ConnectionString()
			}

			log, err = logger.NewLogger(logger.Options{Level: cfg.LogLevel, Format: cfg.LogFormat})
			return err
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = log.Sync()
		},
	}
	root.PersistentFlags().StringVar(&dbURL, "database-url", "", "URL do PostgreSQL (padrão: DATABASE_URL ou DB_*)")

	root.AddCommand(&cobra.Command{
		Use:   "up",
		Short: "Aplica as migrações pendentes",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := database.RunMigrations(dbURL); err != nil {
				return err
			}
			log.Info("Migrações executadas com sucesso")
			return nil
		},
	})

	var steps int
	down := &cobra.Command{
		Use:   "down",
		Short: "Reverte migrações",
		RunE: func(cmd *cobra.Command, args []string) error {
			if steps < 1 {
				return fmt.Errorf("--steps deve ser maior que zero")
			}
			if err := database.RollbackMigrations(dbURL, steps); err != nil {
				return err
			}
			log.Info("Migrações revertidas", "steps", steps)
			return nil
		},
	}
	down.Flags().IntVar(&steps, "steps", 1, "quantidade de migrações a reverter")
	root.AddCommand(down)

	root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Mostra a versão atual do schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			version, dirty, err := database.MigrationVersion(dbURL)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "versão %d (dirty=%t)\n", version, dirty)
			return nil
		},
	})

	return root
}
