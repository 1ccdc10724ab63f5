package migrate

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"gymstack/internal/application/uow"
	"gymstack/internal/infrastructure/config"
	"gymstack/internal/infrastructure/database"
	"gymstack/internal/infrastructure/migration"
	"gymstack/internal/infrastructure/repository"
	"gymstack/internal/infrastructure/seed"
	"gymstack/internal/shared/constants"
	"gymstack/internal/shared/db"
	"gymstack/internal/shared/logger"
)

var (
	env      string
	steps    int
	name     string
	seedPath string
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Database migration tools",
		Long:  `Run, roll back and inspect database migrations.`,
	}

	cmd.PersistentFlags().StringVarP(&env, "env", "e", constants.EnvDevelopment, "Environment (development, test, production)")

	cmd.AddCommand(
		newUpCommand(),
		newDownCommand(),
		newStatusCommand(),
		newCreateCommand(),
		newSeedCommand(),
	)

	return cmd
}

func newUpCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDatabase(func() error {
				manager := migration.NewManager(env)
				return manager.Migrate(database.Get(), migration.AutoMigrateModels()...)
			})
		},
	}
}

func newDownCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "down",
		Short: "Roll back migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDatabase(func() error {
				scriptsPath, err := filepath.Abs("./internal/infrastructure/migration/scripts")
				if err != nil {
					return err
				}
				strategy, ok := migration.NewGolangMigrateStrategy(scriptsPath).(*migration.GolangMigrateStrategy)
				if !ok {
					return fmt.Errorf("down migrations require the golang-migrate strategy")
				}
				return strategy.MigrateDown(database.Get(), steps)
			})
		},
	}
	cmd.Flags().IntVarP(&steps, "steps", "n", 1, "Number of migrations to roll back")
	return cmd
}

func newStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show migration status",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDatabase(func() error {
				scriptsPath, err := filepath.Abs("./internal/infrastructure/migration/scripts")
				if err != nil {
					return err
				}
				strategy, ok := migration.NewGooseStrategy(scriptsPath).(*migration.GooseStrategy)
				if !ok {
					return fmt.Errorf("status requires the goose strategy")
				}
				return strategy.Status(database.Get())
			})
		},
	}
}

func newCreateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new migration",
		RunE: func(cmd *cobra.Command, args []string) error {
			scriptsPath, err := filepath.Abs("./internal/infrastructure/migration/scripts")
			if err != nil {
				return err
			}
			strategy, ok := migration.NewGooseStrategy(scriptsPath).(*migration.GooseStrategy)
			if !ok {
				return fmt.Errorf("create requires the goose strategy")
			}
			return strategy.Create(name)
		},
	}
	cmd.Flags().StringVarP(&name, "name", "n", "", "Name of the migration (required)")
	cmd.MarkFlagRequired("name")
	return cmd
}

func newSeedCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Apply a YAML seed file",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDatabase(func() error {
				cfg := config.Get()
				log := logger.NewLogger()

				organizations := repository.NewOrganizationRepository(database.Get(), log)
				users := repository.NewUserRepository(database.Get(), log)
				members := repository.NewMemberRepository(database.Get(), log)
				memberships := repository.NewMembershipRepository(database.Get(), log)
				subscriptions := repository.NewSubscriptionRepository(database.Get(), log)
				plans := repository.NewPlanRepository(database.Get())

				unitOfWork := uow.New(
					db.NewTransactionManager(database.Get()),
					organizations,
					users,
					members,
					memberships,
					subscriptions,
					log,
				)

				seeder := seed.NewSeeder(users, organizations, plans, unitOfWork, cfg.Auth.Password.BcryptCost, log)
				return seeder.Run(cmd.Context(), seedPath)
			})
		},
	}
	cmd.Flags().StringVar(&seedPath, "file", "./configs/seed.yaml", "Path to the YAML seed file")
	return cmd
}

func withDatabase(fn func() error) error {
	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if err := logger.Init(&cfg.Logger, false); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	if err := database.Init(&cfg.Database); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer database.Close()

	return fn()
}
