package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"time"

	"employee-tracker/config"
	"employee-tracker/internal/app/service"
	"employee-tracker/internal/delivery/console"
	"employee-tracker/internal/delivery/console/prompt"
	"employee-tracker/internal/delivery/console/render"
	"employee-tracker/internal/export"
	"employee-tracker/internal/logger"
	"employee-tracker/internal/repository/sqldb"
	"employee-tracker/internal/status"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const serviceName = "employee-tracker"

var envFile string

// app is what every command needs once configuration is read and the store is open.
type app struct {
	cfg     *config.Config
	log     *zap.Logger
	db      *sql.DB
	dialect sqldb.Dialect
}

// bootstrap loads config, builds the logger and opens the single store
// connection. The returned close func must be called exactly once.
func bootstrap() (*app, func(), error) {
	cfg, err := config.LoadConfig(envFile)
	if err != nil {
		return nil, nil, fmt.Errorf("loading config: %w", err)
	}

	log, err := logger.NewLogger(cfg.Log.Level, cfg.Log.Format, serviceName, cfg.Log.File)
	if err != nil {
		return nil, nil, fmt.Errorf("building logger: %w", err)
	}

	db, dialect, err := sqldb.Open(cfg.Database)
	if err != nil {
		log.Error("database connection failed", zap.String("driver", cfg.Database.Driver), zap.Error(err))
		_ = log.Sync()
		return nil, nil, err
	}
	log.Info("connected to database", zap.String("driver", cfg.Database.Driver))

	closeFn := func() {
		if err := db.Close(); err != nil {
			log.Error("closing database", zap.Error(err))
		}
		log.Info("database connection released")
		_ = log.Sync()
	}
	return &app{cfg: cfg, log: log, db: db, dialect: dialect}, closeFn, nil
}

func (a *app) services() (*service.DepartmentService, *service.RoleService, *service.EmployeeService, *service.ReportService) {
	departmentRepo := sqldb.NewDepartmentRepo(a.db, a.dialect, a.log)
	departments := service.NewDepartmentService(departmentRepo, a.log)
	roles := service.NewRoleService(sqldb.NewRoleRepo(a.db, a.dialect, a.log), a.log)
	employees := service.NewEmployeeService(sqldb.NewEmployeeRepo(a.db, a.dialect, a.log), a.log)
	reports := service.NewReportService(sqldb.NewReportRepo(a.db, a.dialect, a.log), departmentRepo)
	return departments, roles, employees, reports
}

func newRootCmd() *cobra.Command {
	var plain bool

	cmd := &cobra.Command{
		Use:           serviceName,
		Short:         "Manage employees, roles and departments from the terminal",
		Long:          `employee-tracker is an interactive menu for viewing, adding, updating and removing the employees, roles and departments of a small organization stored in MySQL, PostgreSQL or SQLite.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInteractive(cmd.Context(), plain)
		},
	}

	cmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "Path to an env file with connection settings")
	cmd.Flags().BoolVar(&plain, "plain", false, "Use numbered line prompts instead of the arrow-key menu")

	cmd.AddCommand(newMigrateCmd(), newSeedCmd(), newExportCmd())
	return cmd
}

// startSession is bootstrap followed by schema creation, so a fresh database
// is usable from the first menu choice. Existing tables are left alone.
func startSession(ctx context.Context) (*app, func(), error) {
	a, release, err := bootstrap()
	if err != nil {
		return nil, nil, err
	}
	if err := sqldb.Migrate(ctx, a.db, a.dialect); err != nil {
		a.log.Error("schema migration failed", zap.Error(err))
		release()
		return nil, nil, err
	}
	return a, release, nil
}

func runInteractive(ctx context.Context, plain bool) error {
	a, release, err := startSession(ctx)
	if err != nil {
		return err
	}
	defer release()

	if a.cfg.Port != "" {
		srv, err := status.Start(":"+a.cfg.Port, a.log)
		if err != nil {
			// The listener is incidental; the menu still runs without it.
			a.log.Warn("status listener not started", zap.Error(err))
		} else {
			defer func() {
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				if err := srv.Shutdown(shutdownCtx); err != nil {
					a.log.Error("status listener shutdown", zap.Error(err))
				}
			}()
		}
	}

	out := render.New(os.Stdout)
	out.Banner("Employee Tracker")

	var p prompt.Prompter
	if plain || !isatty.IsTerminal(os.Stdin.Fd()) {
		p = prompt.NewLine(os.Stdin, os.Stdout)
	} else {
		p = prompt.NewTerminal()
	}

	departments, roles, employees, reports := a.services()
	h := &console.Handler{
		Prompt:      p,
		Out:         out,
		Departments: departments,
		Roles:       roles,
		Employees:   employees,
		Reports:     reports,
		Logger:      a.log,
	}
	a.log.Info("interactive session started")
	return h.Run(ctx)
}

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create the department, role and employee tables",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, release, err := bootstrap()
			if err != nil {
				return err
			}
			defer release()

			if err := sqldb.Migrate(cmd.Context(), a.db, a.dialect); err != nil {
				return err
			}
			a.log.Info("schema migrated")
			fmt.Fprintln(cmd.OutOrStdout(), "Schema is up to date.")
			return nil
		},
	}
}

func newSeedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Insert the sample departments, roles and employees",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, release, err := bootstrap()
			if err != nil {
				return err
			}
			defer release()

			if err := sqldb.Seed(cmd.Context(), a.db, a.dialect, a.log); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Sample data inserted.")
			return nil
		},
	}
}

func newExportCmd() *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write every listing to an xlsx workbook",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, release, err := bootstrap()
			if err != nil {
				return err
			}
			defer release()

			_, _, _, reports := a.services()
			snap, err := reports.Snapshot(cmd.Context())
			if err != nil {
				return fmt.Errorf("reading listings: %w", err)
			}

			f, err := os.Create(out)
			if err != nil {
				return fmt.Errorf("creating %s: %w", out, err)
			}
			if err := export.Write(f, snap); err != nil {
				f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return fmt.Errorf("closing %s: %w", out, err)
			}

			a.log.Info("workbook exported", zap.String("path", out), zap.Int("employees", len(snap.Employees)))
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", out)
			return nil
		},
	}

	cmd.Flags().StringVar(&out, "out", "employees.xlsx", "Output workbook path")
	return cmd
}

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "Error", err)
		os.Exit(1)
	}
}
