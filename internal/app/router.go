package app

import (
	"log/slog"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/heartmarshall/healthtrack-backend/internal/config"
	"github.com/heartmarshall/healthtrack-backend/internal/domain"
	"github.com/heartmarshall/healthtrack-backend/internal/service/record"
	"github.com/heartmarshall/healthtrack-backend/internal/transport/middleware"
	"github.com/heartmarshall/healthtrack-backend/internal/transport/rest"
)

// Services bundles the record services exposed over HTTP.
type Services struct {
	Accounts      *record.Service[domain.Account]
	Profiles      *record.Service[domain.Profile]
	ExerciseLogs  *record.Service[domain.ExerciseLog]
	HealthLogs    *record.Service[domain.HealthActivityLog]
	NutritionLogs *record.Service[domain.NutritionLog]
}

// NewRegistry returns a Prometheus registry with the Go runtime, process and
// build info collectors installed.
func NewRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		buildInfo(),
	)
	return reg
}

// NewRouter mounts every resource, the probes and /metrics behind the
// middleware chain.
func NewRouter(
	logger *slog.Logger,
	cfg config.Config,
	svcs Services,
	health *rest.HealthHandler,
	reg *prometheus.Registry,
) http.Handler {
	opts := rest.Options{
		MaxBodyBytes:     cfg.Server.MaxBodyBytes,
		ShowErrorDetails: !cfg.App.IsProduction(),
	}

	mux := http.NewServeMux()
	rest.NewRecordHandler[domain.Account](svcs.Accounts, logger, "accounts", opts).Register(mux, "/users", false)
	rest.NewRecordHandler[domain.Profile](svcs.Profiles, logger, "profiles", opts).Register(mux, "/user-details", true)
	rest.NewRecordHandler[domain.ExerciseLog](svcs.ExerciseLogs, logger, "exercise_logs", opts).Register(mux, "/exercise-logs", true)
	rest.NewRecordHandler[domain.HealthActivityLog](svcs.HealthLogs, logger, "health_logs", opts).Register(mux, "/health-logs", true)
	rest.NewRecordHandler[domain.NutritionLog](svcs.NutritionLogs, logger, "nutrition_logs", opts).Register(mux, "/nutrition-logs", true)

	mux.HandleFunc("GET /live", health.Live)
	mux.HandleFunc("GET /ready", health.Ready)
	mux.HandleFunc("GET /health", health.Health)
	mux.Handle("GET /metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))

	return middleware.Chain(
		middleware.RequestID(),
		middleware.Logger(logger),
		middleware.Recovery(logger),
		middleware.CORS(cfg.CORS),
		middleware.NewMetrics(reg).Middleware(),
	)(mux)
}
