package internal

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/IBM/pgxpoolprometheus"
	"github.com/getsentry/sentry-go"
	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redis_rate/v9"
	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/multierr"

	"github.com/2beens/fittrack/internal/admin"
	"github.com/2beens/fittrack/internal/auth"
	"github.com/2beens/fittrack/internal/config"
	"github.com/2beens/fittrack/internal/dates"
	"github.com/2beens/fittrack/internal/db"
	"github.com/2beens/fittrack/internal/fooddb"
	"github.com/2beens/fittrack/internal/meals"
	"github.com/2beens/fittrack/internal/middleware"
	"github.com/2beens/fittrack/internal/misc"
	"github.com/2beens/fittrack/internal/mood"
	"github.com/2beens/fittrack/internal/photos"
	"github.com/2beens/fittrack/internal/profile"
	"github.com/2beens/fittrack/internal/stats"
	"github.com/2beens/fittrack/internal/telemetry/metrics"
	"github.com/2beens/fittrack/internal/telemetry/tracing"
	"github.com/2beens/fittrack/internal/water"
	"github.com/2beens/fittrack/internal/workouts"
)

type Server struct {
	httpServer        *http.Server
	metricsHttpServer *http.Server
	versionInfo       string

	config      *config.Config
	dbPool      *pgxpool.Pool
	dates       *dates.Dates
	foodClient  *fooddb.Client
	presigner   *photos.Presigner
	tokenParser *auth.TokenParser

	redisClient  *redis.Client
	loginChecker *auth.LoginChecker
	authService  *auth.Service

	// metrics
	metricsManager *metrics.Manager
	promRegistry   *prometheus.Registry
	otelShutdown   func()
}

type NewServerParams struct {
	Config                  *config.Config
	VersionInfo             string
	AdminUsername           string
	AdminPasswordHash       string
	JWTSecret               string
	FoodDataAPIKey          string
	DBUser                  string
	DBPassword              string
	RedisPassword           string
	HoneycombTracingEnabled bool
	// Dates is overridden in tests to pin "today"
	Dates *dates.Dates
}

func NewServer(
	ctx context.Context,
	params NewServerParams,
) (*Server, error) {
	dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost:         params.Config.PostgresHost,
		DBPort:         params.Config.PostgresPort,
		DBName:         params.Config.PostgresDBName,
		DBUser:         params.DBUser,
		DBPassword:     params.DBPassword,
		TracingEnabled: params.HoneycombTracingEnabled,
	})
	if err != nil {
		return nil, fmt.Errorf("new db pool: %w", err)
	}

	if err := dbPool.Ping(ctx); err != nil {
		log.Warnf("failed to ping db: %s", err)
	} else if err := db.ApplySchema(ctx, dbPool); err != nil {
		return nil, fmt.Errorf("apply db schema: %w", err)
	}

	pgxpoolCollector := pgxpoolprometheus.NewCollector(
		dbPool,
		map[string]string{"db_name": params.Config.PostgresDBName},
	)
	promRegistry := metrics.SetupPrometheus(pgxpoolCollector)
	metricsManager := metrics.NewManager("fittrack", "main", promRegistry)
	metricsManager.GaugeLifeSignal.Set(0)

	rdb := redis.NewClient(&redis.Options{
		Addr:     net.JoinHostPort(params.Config.RedisHost, params.Config.RedisPort),
		Password: params.RedisPassword,
		DB:       0, // use default DB
	})

	rdbStatus := rdb.Ping(ctx)
	if err := rdbStatus.Err(); err != nil {
		log.Errorf("--> failed to ping redis: %s", err)
	} else {
		log.Debugf("redis ping: %s", rdbStatus.Val())
	}

	authService := auth.NewAuthService(&auth.Admin{
		Username:     params.AdminUsername,
		PasswordHash: params.AdminPasswordHash,
	}, auth.DefaultTTL, rdb)
	go func() {
		ticker := time.NewTicker(8 * time.Hour)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				authService.ScanAndClean(ctx)
			}
		}
	}()

	// use honeycomb distro to setup OpenTelemetry SDK
	otelShutdown, err := tracing.HoneycombSetup(params.HoneycombTracingEnabled, "fittrack-backend", rdb)
	if err != nil {
		return nil, err
	}

	tracedHttpClient := &http.Client{
		Transport: otelhttp.NewTransport(http.DefaultTransport),
		Timeout:   10 * time.Second,
	}

	presigner, err := photos.NewPresigner(
		ctx,
		params.Config.PhotosRegion,
		params.Config.PhotosBucket,
		params.Config.PhotosEndpoint,
		time.Duration(params.Config.PhotosURLExpiryMinutes)*time.Minute,
	)
	if err != nil {
		return nil, fmt.Errorf("new photos presigner: %w", err)
	}

	foodDataBaseURL := params.Config.FoodDataBaseURL
	if foodDataBaseURL == "" {
		foodDataBaseURL = fooddb.DefaultBaseURL
	}

	d := params.Dates
	if d == nil {
		d = dates.New(time.Now)
	}

	return &Server{
		config:      params.Config,
		dbPool:      dbPool,
		dates:       d,
		versionInfo: params.VersionInfo,
		foodClient: fooddb.NewClient(
			foodDataBaseURL,
			params.FoodDataAPIKey,
			tracedHttpClient,
			metricsManager,
		),
		presigner:   presigner,
		tokenParser: auth.NewTokenParser(params.JWTSecret),

		redisClient:  rdb,
		authService:  authService,
		loginChecker: auth.NewLoginChecker(auth.DefaultTTL, rdb),

		// telemetry
		metricsManager: metricsManager,
		promRegistry:   promRegistry,
		otelShutdown:   otelShutdown,
	}, nil
}

func (s *Server) routerSetup() *mux.Router {
	r := mux.NewRouter()
	r.Use(otelmux.Middleware("main-router"))

	mealsRepo := meals.NewRepo(s.dbPool)
	workoutsRepo := workouts.NewRepo(s.dbPool)
	waterRepo := water.NewRepo(s.dbPool)
	moodRepo := mood.NewRepo(s.dbPool)
	profileRepo := profile.NewRepo(s.dbPool)

	statsService := stats.NewService(stats.NewServiceParams{
		Meals:    mealsRepo,
		Workouts: workoutsRepo,
		Water:    waterRepo,
		Mood:     moodRepo,
		Profiles: profileRepo,
		Dates:    s.dates,
	})

	miscHandler := misc.NewHandler(s.versionInfo)
	miscHandler.SetupRoutes(r)

	apiRouter := r.PathPrefix("/api").Subrouter()

	mealsHandler := meals.NewHandler(mealsRepo, s.dates, s.metricsManager)
	apiRouter.HandleFunc("/meals", mealsHandler.HandleAdd).Methods("POST", "OPTIONS").Name("new-meal")
	apiRouter.HandleFunc("/meals", mealsHandler.HandleList).Methods("GET", "OPTIONS").Name("list-meals")
	apiRouter.HandleFunc("/meals/{id}", mealsHandler.HandleDelete).Methods("DELETE", "OPTIONS").Name("remove-meal")

	workoutsHandler := workouts.NewHandler(workoutsRepo, s.dates, s.metricsManager)
	apiRouter.HandleFunc("/workouts", workoutsHandler.HandleAdd).Methods("POST", "OPTIONS").Name("new-workout")
	apiRouter.HandleFunc("/workouts", workoutsHandler.HandleList).Methods("GET", "OPTIONS").Name("list-workouts")
	apiRouter.HandleFunc("/workouts/{id}", workoutsHandler.HandleDelete).Methods("DELETE", "OPTIONS").Name("remove-workout")

	waterHandler := water.NewHandler(waterRepo, s.dates, s.metricsManager)
	apiRouter.HandleFunc("/water", waterHandler.HandleAdd).Methods("POST", "OPTIONS").Name("new-water")
	apiRouter.HandleFunc("/water", waterHandler.HandleList).Methods("GET", "OPTIONS").Name("list-water")
	apiRouter.HandleFunc("/water/{id}", waterHandler.HandleDelete).Methods("DELETE", "OPTIONS").Name("remove-water")

	moodHandler := mood.NewHandler(moodRepo, s.dates, s.metricsManager)
	apiRouter.HandleFunc("/mood", moodHandler.HandleAdd).Methods("POST", "OPTIONS").Name("new-mood")
	apiRouter.HandleFunc("/mood", moodHandler.HandleList).Methods("GET", "OPTIONS").Name("list-mood")

	profileHandler := profile.NewHandler(profileRepo)
	apiRouter.HandleFunc("/profile", profileHandler.HandleGet).Methods("GET", "OPTIONS").Name("get-profile")
	apiRouter.HandleFunc("/profile/macro-targets", profileHandler.HandleUpdateMacroTargets).Methods("PUT", "OPTIONS").Name("update-macro-targets")

	statsHandler := stats.NewHandler(statsService, s.dates, s.metricsManager)
	apiRouter.HandleFunc("/stats/daily", statsHandler.HandleDaily).Methods("GET", "OPTIONS").Name("stats-daily")
	apiRouter.HandleFunc("/stats/weekly", statsHandler.HandleWeekly).Methods("GET", "OPTIONS").Name("stats-weekly")
	apiRouter.HandleFunc("/stats/macros", statsHandler.HandleMacros).Methods("GET", "OPTIONS").Name("stats-macros")
	apiRouter.HandleFunc("/stats/range", statsHandler.HandleRange).Methods("GET", "OPTIONS").Name("stats-range")

	foodsHandler := fooddb.NewHandler(s.foodClient)
	apiRouter.HandleFunc("/foods/search", foodsHandler.HandleSearch).Methods("GET", "OPTIONS").Name("search-foods")
	apiRouter.HandleFunc("/foods/{fdcId}", foodsHandler.HandleGet).Methods("GET", "OPTIONS").Name("get-food")

	photosHandler := photos.NewHandler(s.presigner)
	apiRouter.HandleFunc("/photos/upload-url", photosHandler.HandleUploadURL).Methods("POST", "OPTIONS").Name("photo-upload-url")
	apiRouter.HandleFunc("/photos/download-url", photosHandler.HandleDownloadURL).Methods("GET", "OPTIONS").Name("photo-download-url")

	adminHandler := admin.NewHandler(admin.NewHandlerParams{
		AuthService:   s.authService,
		StatsService:  statsService,
		MealsCount:    mealsRepo,
		WorkoutsCount: workoutsRepo,
		Dates:         s.dates,
	})
	adminHandler.SetupRoutes(
		r.PathPrefix("/admin").Subrouter(),
		redis_rate.NewLimiter(s.redisClient),
		s.metricsManager,
		s.config.LoginRateLimitAllowedPerMin,
	)

	authMiddleware := middleware.NewAuthMiddlewareHandler(s.tokenParser, s.loginChecker)

	r.Use(middleware.PanicRecovery(s.metricsManager))
	r.Use(middleware.RequestMetrics(s.metricsManager))
	r.Use(middleware.Cors())
	r.Use(authMiddleware.AuthCheck())
	r.Use(middleware.LogRequest())
	r.Use(middleware.DrainAndCloseRequest())

	return r
}

func (s *Server) Serve(host string, port int) {
	ipAndPort := net.JoinHostPort(host, strconv.Itoa(port))
	s.httpServer = &http.Server{
		Handler:      s.routerSetup(),
		Addr:         ipAndPort,
		WriteTimeout: time.Minute,
		ReadTimeout:  time.Minute,
		ConnState:    s.connStateMetrics,
	}

	metricsRouter := mux.NewRouter()
	metricsRouter.Handle("/metrics", promhttp.HandlerFor(
		s.promRegistry,
		promhttp.HandlerOpts{},
	))
	metricsAddr := net.JoinHostPort(s.config.PrometheusMetricsHost, s.config.PrometheusMetricsPort)
	s.metricsHttpServer = &http.Server{
		Addr:              metricsAddr,
		Handler:           metricsRouter,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Infof(" > server listening on: [%s]", ipAndPort)
		err := s.httpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("main service, listen and serve: %s", err)
		}
	}()

	go func() {
		log.Debugf(" > metrics listening on: [%s]", metricsAddr)
		err := s.metricsHttpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("metrics service, listen and serve: %s", err)
		}
	}()

	s.metricsManager.GaugeLifeSignal.Set(1)
}

func (s *Server) GracefulShutdown() error {
	log.Debug("graceful shutdown initiated ...")

	s.metricsManager.GaugeLifeSignal.Set(0)

	s.otelShutdown()
	log.Trace("otel shut down ...")

	var errs error
	if s.redisClient != nil {
		if err := s.redisClient.Close(); err != nil {
			errs = multierr.Append(errs, fmt.Errorf("close redis client: %w", err))
		}
	}

	if s.dbPool != nil {
		log.Debugln("closing db pool ...")
		s.dbPool.Close() // blocking operation
		log.Debugln("db pool closed")
	}

	if ok := sentry.Flush(5 * time.Second); ok {
		log.Debugf("sentry flush ok: %t", ok)
	}

	maxWaitDuration := time.Second * 15
	ctx, timeoutCancel := context.WithTimeout(context.Background(), maxWaitDuration)
	defer timeoutCancel()

	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			errs = multierr.Append(errs, fmt.Errorf("shutdown http server: %w", err))
		}
		log.Warnln("server shut down")
	}

	if s.metricsHttpServer != nil {
		if err := s.metricsHttpServer.Shutdown(ctx); err != nil {
			errs = multierr.Append(errs, fmt.Errorf("shutdown metrics http server: %w", err))
		}
		log.Warnln("metrics server shut down")
	}

	return errs
}

func (s *Server) connStateMetrics(_ net.Conn, state http.ConnState) {
	switch state {
	case http.StateNew:
		s.metricsManager.GaugeRequests.Add(1)
	case http.StateClosed:
		s.metricsManager.GaugeRequests.Add(-1)
	default:
		// do nothing
	}
}
