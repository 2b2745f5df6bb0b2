package internal

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"path"
	"path/filepath"
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

	"github.com/2beens/workouttracker/internal/comments"
	"github.com/2beens/workouttracker/internal/config"
	"github.com/2beens/workouttracker/internal/db"
	"github.com/2beens/workouttracker/internal/docstore"
	"github.com/2beens/workouttracker/internal/export"
	"github.com/2beens/workouttracker/internal/measurements"
	"github.com/2beens/workouttracker/internal/menus"
	"github.com/2beens/workouttracker/internal/middleware"
	"github.com/2beens/workouttracker/internal/snapshot"
	"github.com/2beens/workouttracker/internal/telemetry/metrics"
	"github.com/2beens/workouttracker/internal/telemetry/tracing"
	"github.com/2beens/workouttracker/internal/users"
	"github.com/2beens/workouttracker/pkg"
)

const serviceName = "workout-tracker"

type Server struct {
	httpServer        *http.Server
	metricsHttpServer *http.Server
	versionInfo       string

	config      *config.Config
	dbPool      *pgxpool.Pool
	redisClient *redis.Client

	usersService        *users.Service
	menusService        *menus.Service
	commentsService     *comments.Service
	measurementsService *measurements.Service
	snapshotService     *snapshot.Service
	exportService       *export.Service

	// metrics
	metricsManager *metrics.Manager
	promRegistry   *prometheus.Registry
	otelShutdown   func()
}

type NewServerParams struct {
	Config                  *config.Config
	VersionInfo             string
	RedisPassword           string
	MinioAccessKey          string
	MinioSecretKey          string
	HoneycombTracingEnabled bool
}

func NewServer(
	ctx context.Context,
	params NewServerParams,
) (*Server, error) {
	cfg := params.Config

	var rdb *redis.Client
	if cfg.RedisEnabled() {
		rdb = redis.NewClient(&redis.Options{
			Addr:     net.JoinHostPort(cfg.RedisHost, cfg.RedisPort),
			Password: params.RedisPassword,
			DB:       0, // use default DB
		})

		rdbStatus := rdb.Ping(ctx)
		if err := rdbStatus.Err(); err != nil {
			log.Errorf("--> failed to ping redis: %s", err)
		} else {
			log.Debugf("redis ping: %s", rdbStatus.Val())
		}
	}

	// use honeycomb distro to setup OpenTelemetry SDK
	otelShutdown, err := tracing.HoneycombSetup(params.HoneycombTracingEnabled, serviceName, rdb)
	if err != nil {
		return nil, err
	}

	s := &Server{
		config:       cfg,
		versionInfo:  params.VersionInfo,
		redisClient:  rdb,
		otelShutdown: otelShutdown,
	}

	backend, collectors, err := s.newBackend(ctx, params)
	if err != nil {
		otelShutdown()
		return nil, err
	}

	s.promRegistry = metrics.SetupPrometheus(collectors...)
	s.metricsManager = metrics.NewManager("workout", "main", s.promRegistry)
	s.metricsManager.GaugeLifeSignal.Set(0)

	store := docstore.New(backend, s.metricsManager)
	s.usersService = users.NewService(store, s.metricsManager)
	s.menusService = menus.NewService(store)
	s.commentsService = comments.NewService(store, s.metricsManager)
	s.measurementsService = measurements.NewService(store, s.metricsManager)
	s.snapshotService = snapshot.NewService(s.menusService, s.commentsService, s.measurementsService, s.metricsManager)
	s.exportService = export.NewService(s.menusService, s.commentsService, s.metricsManager)

	return s, nil
}

// newBackend opens the configured document backend, together with the
// prometheus collectors it brings along.
func (s *Server) newBackend(ctx context.Context, params NewServerParams) (docstore.Backend, []prometheus.Collector, error) {
	cfg := s.config
	switch cfg.StorageBackend {
	case config.StorageMemory:
		log.Warnln("using the in-memory document store, nothing survives a restart")
		return docstore.NewMemoryBackend(), nil, nil
	case config.StorageDisk:
		if err := pkg.EnsureDir(cfg.DataDir); err != nil {
			return nil, nil, fmt.Errorf("ensure data dir [%s]: %w", cfg.DataDir, err)
		}
		backend, err := docstore.NewDiskBackend(cfg.DataDir)
		if err != nil {
			return nil, nil, fmt.Errorf("new disk backend: %w", err)
		}
		log.Debugf("using data dir: [%s]", cfg.DataDir)
		return backend, nil, nil
	case config.StorageRedis:
		if s.redisClient == nil {
			return nil, nil, errors.New("redis storage selected, but redis is not configured")
		}
		return docstore.NewRedisBackend(s.redisClient), nil, nil
	case config.StoragePostgres:
		dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
			DBHost:         cfg.PostgresHost,
			DBPort:         cfg.PostgresPort,
			DBName:         cfg.PostgresDB,
			DBUser:         cfg.PostgresUser,
			TracingEnabled: params.HoneycombTracingEnabled,
		})
		if err != nil {
			return nil, nil, fmt.Errorf("new db pool: %w", err)
		}
		if err := dbPool.Ping(ctx); err != nil {
			log.Warnf("failed to ping db: %s", err)
		}
		s.dbPool = dbPool

		backend, err := docstore.NewPsqlBackend(ctx, dbPool)
		if err != nil {
			return nil, nil, fmt.Errorf("new psql backend: %w", err)
		}
		pgxpoolCollector := pgxpoolprometheus.NewCollector(
			dbPool,
			map[string]string{"db_name": cfg.PostgresDB},
		)
		return backend, []prometheus.Collector{pgxpoolCollector}, nil
	case config.StorageMinio:
		backend, err := docstore.NewMinioBackend(docstore.MinioParams{
			Endpoint:  cfg.MinioEndpoint,
			AccessKey: params.MinioAccessKey,
			SecretKey: params.MinioSecretKey,
			Bucket:    cfg.MinioBucket,
			UseSSL:    cfg.MinioUseSSL,
		})
		if err != nil {
			return nil, nil, fmt.Errorf("new minio backend: %w", err)
		}
		return backend, nil, nil
	default:
		return nil, nil, fmt.Errorf("unknown storage backend: %s", cfg.StorageBackend)
	}
}

func (s *Server) routerSetup() *mux.Router {
	r := mux.NewRouter().UseEncodedPath()
	r.Use(otelmux.Middleware("main-router"))

	r.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		pkg.WriteJSON(w, map[string]any{"ok": true, "version": s.versionInfo}, http.StatusOK)
	}).Methods("GET").Name("healthz")

	api := r.PathPrefix("/api").Subrouter()
	users.NewHandler(s.usersService).SetupRoutes(api)
	menus.NewHandler(s.menusService).SetupRoutes(api)
	comments.NewHandler(s.commentsService).SetupRoutes(api)
	measurements.NewHandler(s.measurementsService).SetupRoutes(api)
	snapshot.NewHandler(s.snapshotService).SetupRoutes(api)
	export.NewHandler(s.exportService).SetupRoutes(api)
	// unknown api paths get a JSON 404 from a real route, so the middlewares run;
	// a request which only missed on the method keeps its 405
	api.MatcherFunc(func(_ *http.Request, match *mux.RouteMatch) bool {
		return !errors.Is(match.MatchErr, mux.ErrMethodMismatch)
	}).PathPrefix("/").HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		pkg.WriteJSONError(w, "not found", http.StatusNotFound)
	}).Name("api-not-found")

	if s.redisClient != nil && s.config.WriteRateLimitPerMin > 0 {
		api.Use(middleware.RateLimitWrites(
			redis_rate.NewLimiter(s.redisClient),
			serviceName,
			s.config.WriteRateLimitPerMin,
			s.metricsManager,
		))
	}

	// all the rest - the client app
	r.PathPrefix("/").Handler(spaHandler(s.config.PublicDir)).Methods("GET", "HEAD").Name("static")

	r.Use(middleware.PanicRecovery(s.metricsManager))
	r.Use(middleware.LogRequest())
	r.Use(middleware.RequestMetrics(s.metricsManager))
	r.Use(middleware.Cors(s.config.AllowedOrigins))
	r.Use(middleware.DrainAndCloseRequest())

	return r
}

// spaHandler serves the files of publicDir, and index.html for every path
// not matching a file, so the client side routing works on reload.
func spaHandler(publicDir string) http.Handler {
	fileServer := http.FileServer(http.Dir(publicDir))
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		filePath := filepath.Join(publicDir, filepath.FromSlash(path.Clean("/"+r.URL.Path)))
		if info, err := os.Stat(filePath); err == nil && !info.IsDir() {
			fileServer.ServeHTTP(w, r)
			return
		}
		http.ServeFile(w, r, filepath.Join(publicDir, "index.html"))
	})
}

func (s *Server) Serve(host string, port int) {
	ipAndPort := net.JoinHostPort(host, strconv.Itoa(port))
	s.httpServer = &http.Server{
		Handler:      s.routerSetup(),
		Addr:         ipAndPort,
		WriteTimeout: time.Minute,
		ReadTimeout:  time.Minute,
	}

	go func() {
		log.Infof(" > server listening on: [%s]", ipAndPort)
		err := s.httpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("main service, listen and serve: %s", err)
		}
	}()

	if s.config.MetricsEnabled() {
		metricsRouter := mux.NewRouter()
		metricsRouter.Handle("/metrics", otelhttp.NewHandler(
			promhttp.HandlerFor(s.promRegistry, promhttp.HandlerOpts{}),
			"metrics",
		))
		metricsAddr := net.JoinHostPort(s.config.PrometheusMetricsHost, s.config.PrometheusMetricsPort)
		s.metricsHttpServer = &http.Server{
			Addr:              metricsAddr,
			Handler:           metricsRouter,
			ReadHeaderTimeout: 10 * time.Second,
		}

		go func() {
			log.Debugf(" > metrics listening on: [%s]", metricsAddr)
			err := s.metricsHttpServer.ListenAndServe()
			if err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.Fatalf("metrics service, listen and serve: %s", err)
			}
		}()
	}

	s.metricsManager.GaugeLifeSignal.Set(1)
}

func (s *Server) GracefulShutdown() {
	log.Debug("graceful shutdown initiated ...")

	s.metricsManager.GaugeLifeSignal.Set(0)

	maxWaitDuration := time.Second * 15
	ctx, timeoutCancel := context.WithTimeout(context.Background(), maxWaitDuration)
	defer timeoutCancel()

	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			log.Error(" >>> failed to gracefully shutdown http server")
		}
		log.Warnln("server shut down")
	}

	if s.metricsHttpServer != nil {
		if err := s.metricsHttpServer.Shutdown(ctx); err != nil {
			log.Error(" >>> failed to gracefully shutdown metrics http server")
		}
		log.Warnln("metrics server shut down")
	}

	s.otelShutdown()
	log.Trace("otel shut down ...")

	if s.redisClient != nil {
		if err := s.redisClient.Close(); err != nil {
			log.Errorf("failed to close redis client conn: %s", err)
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
}
