// Command employee-tracker is an interactive terminal tool for browsing and
// editing departments, roles and employees.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"employee-tracker/config"
	"employee-tracker/internal/app/service"
	"employee-tracker/internal/delivery/terminal"
	"employee-tracker/internal/delivery/terminal/prompt"
	"employee-tracker/internal/repository/sqldb"
	"employee-tracker/pkg/logger"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "employee-tracker",
	Short: "Manage departments, roles and employees from the terminal",
	Long: `employee-tracker presents a menu for viewing departments, roles and
employees and for adding them or changing an employee's role.

The database is configured through DB_* environment variables or a .env file
in the working directory.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func run(cmd *cobra.Command, _ []string) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log, err := logger.New(cfg.Log)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	if cfg.Database.Migrate {
		if err := sqldb.Migrate(cfg.Database, log); err != nil {
			log.Error("migration failed", zap.String("class", string(sqldb.Classify(err))), zap.Error(err))
			return err
		}
	}

	ctx := cmd.Context()
	db, err := sqldb.Open(ctx, cfg.Database)
	if err != nil {
		log.Error("connect failed", zap.String("class", string(sqldb.Classify(err))), zap.Error(err))
		return err
	}
	defer db.Close()
	log.Info("connected", zap.String("driver", cfg.Database.Driver))

	handler := &terminal.Handler{
		Prompt:      prompt.NewTerminal(cmd.InOrStdin(), cmd.OutOrStdout()),
		Out:         cmd.OutOrStdout(),
		Log:         log,
		Departments: service.NewDepartmentService(sqldb.NewDepartmentRepo(db)),
		Roles:       service.NewRoleService(sqldb.NewRoleRepo(db)),
		Employees:   service.NewEmployeeService(sqldb.NewEmployeeRepo(db)),
	}
	handler.Register()

	if err := handler.Run(ctx); err != nil {
		log.Error("session ended with error", zap.String("class", string(sqldb.Classify(err))), zap.Error(err))
		return err
	}
	log.Info("bye")
	return nil
}
