package app

import (
	"context"
	"fmt"
	"log/slog"
	"net"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"

	"github.com/heartmarshall/healthtrack-backend/internal/adapter/postgres"
	"github.com/heartmarshall/healthtrack-backend/internal/adapter/postgres/account"
	"github.com/heartmarshall/healthtrack-backend/internal/adapter/postgres/exercise"
	"github.com/heartmarshall/healthtrack-backend/internal/adapter/postgres/health"
	"github.com/heartmarshall/healthtrack-backend/internal/adapter/postgres/nutrition"
	"github.com/heartmarshall/healthtrack-backend/internal/adapter/postgres/profile"
	"github.com/heartmarshall/healthtrack-backend/internal/coerce"
	"github.com/heartmarshall/healthtrack-backend/internal/config"
	"github.com/heartmarshall/healthtrack-backend/internal/service/record"
	"github.com/heartmarshall/healthtrack-backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, connects to
// PostgreSQL, optionally applies migrations, and serves HTTP until ctx is
// cancelled.
func Run(ctx context.Context, configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	logger := NewLogger(*cfg)
	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database, cfg.App.Name)
	if err != nil {
		return err
	}
	defer pool.Close()

	if cfg.Database.AutoMigrate {
		if err := migrate(ctx, logger, pool); err != nil {
			return err
		}
	}

	svcs := NewServices(logger, pool, coerce.NewEngine(coerce.WithBcryptCost(cfg.Account.BcryptCost)))
	handler := NewRouter(logger, *cfg, svcs, rest.NewHealthHandler(pool, BuildVersion()), NewRegistry())

	srv := newServer(cfg.Server, handler)
	ln, err := net.Listen("tcp", srv.Addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", srv.Addr, err)
	}

	return serve(ctx, logger, srv, ln, cfg.Server.ShutdownTimeout)
}

// NewServices builds every record service over q.
func NewServices(logger *slog.Logger, q postgres.Querier, engine *coerce.Engine) Services {
	return Services{
		Accounts:      record.NewAccountService(logger, engine, account.New(q)),
		Profiles:      record.NewProfileService(logger, engine, profile.New(q)),
		ExerciseLogs:  record.NewExerciseLogService(logger, engine, exercise.New(q)),
		HealthLogs:    record.NewHealthLogService(logger, engine, health.New(q)),
		NutritionLogs: record.NewNutritionLogService(logger, engine, nutrition.New(q)),
	}
}

func migrate(ctx context.Context, logger *slog.Logger, pool *pgxpool.Pool) error {
	db := stdlib.OpenDBFromPool(pool)
	defer db.Close()

	applied, err := postgres.Migrate(ctx, db)
	if err != nil {
		return fmt.Errorf("auto-migrate: %w", err)
	}
	logger.Info("migrations applied", slog.Int("count", len(applied)))
	return nil
}
