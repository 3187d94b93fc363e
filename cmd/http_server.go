package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"
	gormPostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/rdelacruz/payroll-management/internal"
	"github.com/rdelacruz/payroll-management/internal/attendance"
	attendancePostgres "github.com/rdelacruz/payroll-management/internal/attendance/postgres"
	"github.com/rdelacruz/payroll-management/internal/auth"
	authPostgres "github.com/rdelacruz/payroll-management/internal/auth/postgres"
	"github.com/rdelacruz/payroll-management/internal/core/events"
	"github.com/rdelacruz/payroll-management/internal/deduction"
	deductionPostgres "github.com/rdelacruz/payroll-management/internal/deduction/postgres"
	"github.com/rdelacruz/payroll-management/internal/employee"
	employeePostgres "github.com/rdelacruz/payroll-management/internal/employee/postgres"
	"github.com/rdelacruz/payroll-management/internal/payrecord"
	payrecordPostgres "github.com/rdelacruz/payroll-management/internal/payrecord/postgres"
	"github.com/rdelacruz/payroll-management/internal/payroll"
	payrollPostgres "github.com/rdelacruz/payroll-management/internal/payroll/postgres"
	"github.com/rdelacruz/payroll-management/internal/project"
	projectPostgres "github.com/rdelacruz/payroll-management/internal/project/postgres"
	"github.com/rdelacruz/payroll-management/internal/transport/rest"
	"github.com/rdelacruz/payroll-management/internal/user"
	userPostgres "github.com/rdelacruz/payroll-management/internal/user/postgres"
	"github.com/rdelacruz/payroll-management/pkg/logger"
)

var httpServerCmd = &cobra.Command{
	Use:   "server",
	Short: "Start HTTP server",
	Long:  `Start the HTTP server to handle API requests`,
	Run: func(cmd *cobra.Command, args []string) {
		startHTTPServer()
	},
}

type Dependencies struct {
	Config *internal.Config
	DB     *sqlx.DB
	GormDB *gorm.DB
	Router chi.Router
	Logger *slog.Logger
}

func startHTTPServer() {
	deps, err := initializeDependencies()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize dependencies: %v\n", err)
		os.Exit(1)
	}

	addr := fmt.Sprintf(":%d", deps.Config.Server.Port)
	deps.Logger.Info("starting HTTP server", "address", addr)

	server := &http.Server{
		Addr:              addr,
		Handler:           deps.Router,
		ReadHeaderTimeout: deps.Config.Server.ReadHeaderTimeout,
		ReadTimeout:       deps.Config.Server.ReadTimeout,
		WriteTimeout:      deps.Config.Server.WriteTimeout,
		IdleTimeout:       deps.Config.Server.IdleTimeout,
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	serverErrChan := make(chan error, 1)
	go func() {
		serverErrChan <- server.ListenAndServe()
	}()

	select {
	case sig := <-sigChan:
		deps.Logger.Info("received signal, shutting down", "signal", sig.String())
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			deps.Logger.Error("server shutdown error", "error", err)
		}
		if err := deps.DB.Close(); err != nil {
			deps.Logger.Error("database close error", "error", err)
		}
	case err := <-serverErrChan:
		if err != nil && err != http.ErrServerClosed {
			deps.Logger.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}

	deps.Logger.Info("server stopped")
}

func initializeDependencies() (*Dependencies, error) {
	config, err := loadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger.Init(os.Getenv("APP_ENV"))
	lg := logger.LoggerWrapper()

	db, err := initDB(config.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	gormDB, err := initGorm(db)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize orm: %w", err)
	}

	eventBus := events.NewEventBus(lg)
	registerAuditSubscribers(eventBus, lg)

	tokenGen := auth.NewJWTTokenGenerator(
		config.Security.AccessTokenSecret,
		config.Security.RefreshTokenSecret,
		config.Security.AccessTokenDuration,
		config.Security.RefreshTokenDuration,
	)

	employeeRepo := employeePostgres.NewEmployeeRepository(gormDB)
	projectRepo := projectPostgres.NewProjectRepository(gormDB)
	deductionRepo := deductionPostgres.NewDeductionRepository(gormDB)
	attendanceRepo := attendancePostgres.NewAttendanceRepository(gormDB)
	payrollRepo := payrollPostgres.NewPayrollRepository(gormDB)
	payrecordRepo := payrecordPostgres.NewPayRecordRepository(gormDB)
	userRepo := userPostgres.NewUserRepository(gormDB)
	authRepo := authPostgres.NewRepository(gormDB)

	authService := auth.NewService(authRepo, tokenGen, config.Security.BCryptCost, lg)
	employeeService := employee.NewService(employeeRepo, lg)
	projectService := project.NewService(projectRepo, lg)
	deductionService := deduction.NewService(deductionRepo, employeeRepo, lg)
	attendanceService := attendance.NewService(attendanceRepo, employeeRepo, projectRepo, config.Payroll.RegularHoursPerDay, lg)
	payrollService := payroll.NewService(payrollRepo, attendanceRepo, employeeRepo, deductionRepo, eventBus, config.Payroll, nil, lg)
	payrecordService := payrecord.NewService(payrecordRepo, eventBus, nil, lg)
	userService := user.NewService(userRepo, config.Security.BCryptCost, lg)

	handlers := rest.Handlers{
		Auth:       auth.NewHandler(authService),
		RBAC:       auth.NewRBACAuthorization(lg),
		Employee:   employee.NewHandler(employeeService),
		Project:    project.NewHandler(projectService),
		Deduction:  deduction.NewHandler(deductionService),
		Attendance: attendance.NewHandler(attendanceService),
		Payroll:    payroll.NewHandler(payrollService),
		PayRecord:  payrecord.NewHandler(payrecordService),
		User:       user.NewHandler(userService),
	}

	router := rest.NewRouter(handlers, db.DB, config.Server.AllowedOrigins, lg)

	return &Dependencies{
		Config: config,
		DB:     db,
		GormDB: gormDB,
		Router: router,
		Logger: lg,
	}, nil
}

// registerAuditSubscribers writes a structured audit line for every payroll
// commit and disbursement.
func registerAuditSubscribers(bus *events.EventBus, lg *slog.Logger) {
	bus.Subscribe(events.EventTypePayrollCommitted, func(ctx context.Context, event events.Event) error {
		lg.InfoContext(ctx, "audit: payroll committed", "event_id", event.EventID(), "payload", event.Payload())
		return nil
	})
	bus.Subscribe(events.EventTypePayRecordCreated, func(ctx context.Context, event events.Event) error {
		lg.InfoContext(ctx, "audit: pay record created", "event_id", event.EventID(), "payload", event.Payload())
		return nil
	})
}

func initDB(cfg internal.DatabaseConfig) (*sqlx.DB, error) {
	const driver = "pgx"

	dbConn, err := sqlx.Connect(driver, cfg.Source)
	if err != nil {
		return nil, fmt.Errorf("failed to open db connection: %w", err)
	}

	dbConn.SetMaxIdleConns(cfg.MaxIdleConns)
	dbConn.SetMaxOpenConns(cfg.MaxOpenConns)
	dbConn.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	dbConn.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)

	if err := dbConn.Ping(); err != nil {
		_ = dbConn.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return dbConn, nil
}

// initGorm layers the ORM over the already-open pgx connection pool.
// TranslateError turns driver duplicate-key errors into gorm.ErrDuplicatedKey
// so repositories can map them to domain conflicts.
func initGorm(db *sqlx.DB) (*gorm.DB, error) {
	return gorm.Open(gormPostgres.New(gormPostgres.Config{Conn: db.DB}), &gorm.Config{
		TranslateError: true,
	})
}
