package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/soda-altruism/portal/core"
	"github.com/soda-altruism/portal/x/catalog"
	"github.com/soda-altruism/portal/x/inbox"
	"github.com/soda-altruism/portal/x/policy"
	"github.com/soda-altruism/portal/x/profile"
	"github.com/soda-altruism/portal/x/session"

	"github.com/bradfitz/gomemcache/memcache"

	"github.com/redis/go-redis/extra/redisotel/v9"
	"go.opentelemetry.io/contrib/instrumentation/github.com/labstack/echo/otelecho"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.7.0"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/plugin/opentelemetry/tracing"
)

type CustomHandler struct {
	slog.Handler
}

func (h *CustomHandler) Handle(ctx context.Context, r slog.Record) error {

	r.AddAttrs(slog.String("type", "app"))

	span := trace.SpanFromContext(ctx)
	if span.SpanContext().IsValid() {
		r.AddAttrs(slog.String("traceID", span.SpanContext().TraceID().String()))
		r.AddAttrs(slog.String("spanID", span.SpanContext().SpanID().String()))
	}

	return h.Handler.Handle(ctx, r)
}

var (
	version      = "unknown"
	buildMachine = "unknown"
	buildTime    = "unknown"
	goVersion    = "unknown"
)

func main() {

	fmt.Fprint(os.Stderr, sodaBanner)

	handler := &CustomHandler{Handler: slog.NewJSONHandler(os.Stdout, nil)}
	slogger := slog.New(handler)
	slog.SetDefault(slogger)

	slog.Info(fmt.Sprintf("SoDA portal %s starting...", version))

	e := echo.New()
	e.HidePort = true
	e.HideBanner = true
	config := Config{}
	configPath := os.Getenv("SODA_CONFIG")
	if configPath == "" {
		configPath = "/etc/soda/config.yaml"
	}

	err := config.Load(configPath)
	if err != nil {
		slog.Error(fmt.Sprintf("Failed to load config: %v", err))
		os.Exit(1)
	}

	conconf := core.SetupConfig(config.Soda)
	if len(conconf.SessionSecret) == 0 {
		slog.Error("sessionSecret is not configured")
		os.Exit(1)
	}

	slog.Info(fmt.Sprintf("Config loaded! catalog: %s", conconf.CatalogURL))

	if config.Server.EnableTrace {
		cleanup, err := setupTraceProvider(config.Server.TraceEndpoint, conconf.FQDN+"/soda", version)
		if err != nil {
			panic(err)
		}
		defer cleanup()

		skipper := otelecho.WithSkipper(
			func(c echo.Context) bool {
				return c.Path() == "/metrics" || c.Path() == "/health"
			},
		)
		e.Use(otelecho.Middleware("api", skipper))
	}

	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Namespace: "soda",
		LabelFuncs: map[string]echoprometheus.LabelValueFunc{
			"url": func(c echo.Context, err error) string {
				return "REDACTED"
			},
		},
		Skipper: func(c echo.Context) bool {
			return c.Path() == "/metrics" || c.Path() == "/health"
		},
	}))

	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	gormLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags), // io writer
		logger.Config{
			SlowThreshold:             300 * time.Millisecond, // Slow SQL threshold
			LogLevel:                  logger.Warn,            // Log level
			IgnoreRecordNotFoundError: true,                   // Ignore ErrRecordNotFound error for logger
			Colorful:                  true,                   // Enable color
		},
	)

	db, err := gorm.Open(postgres.Open(config.Server.Dsn), &gorm.Config{
		Logger: gormLogger,
	})
	if err != nil {
		panic("failed to connect database")
	}
	sqlDB, err := db.DB() // for pinging
	if err != nil {
		panic("failed to connect database")
	}
	defer sqlDB.Close()

	err = db.Use(tracing.NewPlugin(
		tracing.WithDBName("postgres"),
	))
	if err != nil {
		panic("failed to setup tracing plugin")
	}

	// Migrate the schema
	slog.Info("start migrate")
	err = db.AutoMigrate(
		&core.PolicyRecord{},
		&core.PublicationRecord{},
		&core.AccessRequestRecord{},
	)
	if err != nil {
		panic("failed to migrate schema")
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     config.Server.RedisAddr,
		Password: "", // no password set
		DB:       config.Server.RedisDB,
	})
	err = redisotel.InstrumentTracing(
		rdb,
		redisotel.WithAttributes(
			attribute.KeyValue{
				Key:   "db.name",
				Value: attribute.StringValue("redis"),
			},
		),
	)
	if err != nil {
		panic("failed to setup tracing plugin")
	}

	mc := memcache.New(config.Server.MemcachedAddr)
	defer mc.Close()

	profileService := SetupProfileService(mc, conconf)
	profileHandler := profile.NewHandler(profileService)

	sessionService := SetupSessionService(rdb, mc, conconf)
	sessionHandler := session.NewHandler(sessionService)

	policyService := SetupPolicyService(db, conconf)
	policyHandler := policy.NewHandler(policyService)

	catalogService := SetupCatalogService(db, rdb, conconf)
	catalogHandler := catalog.NewHandler(catalogService)

	inboxService := SetupInboxService(db, rdb, mc, conconf)
	inboxHandler := inbox.NewHandler(inboxService)

	socketHandler := SetupSocketHandler(rdb)

	apiV1 := e.Group("/api/v1", sessionService.Identify)

	// session
	apiV1.POST("/session", sessionHandler.Create)
	apiV1.GET("/session", sessionHandler.Get, session.Restrict)
	apiV1.DELETE("/session", sessionHandler.Delete, session.Restrict)

	// profile
	apiV1.GET("/profile", profileHandler.Get)

	// policy
	apiV1.POST("/policy/preview", policyHandler.Preview, session.Restrict)
	apiV1.POST("/policy", policyHandler.Create, session.Restrict)
	apiV1.GET("/policies", policyHandler.List, session.Restrict)
	apiV1.GET("/policies/mine", policyHandler.Mine, session.Restrict)

	// catalog
	apiV1.GET("/catalog", catalogHandler.List)
	apiV1.GET("/catalog/socket", socketHandler.Connect)
	apiV1.GET("/catalog/mine", catalogHandler.Mine, session.Restrict)
	apiV1.GET("/catalog/:id", catalogHandler.Get)
	apiV1.POST("/catalog", catalogHandler.Publish, session.Restrict)

	// inbox
	apiV1.POST("/catalog/:id/request", inboxHandler.Request, session.Restrict)
	apiV1.GET("/requests/mine", inboxHandler.Mine, session.Restrict)

	// misc
	apiV1.GET("/vocabulary", func(c echo.Context) error {
		return c.JSON(http.StatusOK, echo.Map{"status": "ok", "content": echo.Map{
			"categories": core.DataCategories,
			"purposes":   core.AltruisticPurposes,
			"catalog":    conconf.CatalogURL,
			"version":    version,
			"buildInfo": echo.Map{
				"BuildTime":    buildTime,
				"BuildMachine": buildMachine,
				"GoVersion":    goVersion,
			},
		}})
	})
	e.GET("/health", func(c echo.Context) (err error) {
		ctx := c.Request().Context()

		err = sqlDB.Ping()
		if err != nil {
			return c.String(http.StatusInternalServerError, "db error")
		}

		err = rdb.Ping(ctx).Err()
		if err != nil {
			return c.String(http.StatusInternalServerError, "redis error")
		}

		err = mc.Ping()
		if err != nil {
			return c.String(http.StatusInternalServerError, "memcached error")
		}

		return c.String(http.StatusOK, "ok")
	})

	var resourceCountMetrics = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "soda_resources_count",
			Help: "resources count",
		},
		[]string{"type"},
	)
	prometheus.MustRegister(resourceCountMetrics)

	go func() {
		for {
			time.Sleep(15 * time.Second)
			updateCounts(resourceCountMetrics, policyService, catalogService, inboxService)
		}
	}()

	e.GET("/metrics", echoprometheus.NewHandler())

	e.Logger.Fatal(e.Start(config.Server.Listen))
}

func updateCounts(metrics *prometheus.GaugeVec, policyService core.PolicyService, catalogService core.CatalogService, inboxService core.InboxService) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	count, err := policyService.Count(ctx)
	if err != nil {
		slog.Error(fmt.Sprintf("failed to count policies: %v", err))
		return
	}
	metrics.WithLabelValues("policy").Set(float64(count))

	count, err = catalogService.Count(ctx)
	if err != nil {
		slog.Error(fmt.Sprintf("failed to count publications: %v", err))
		return
	}
	metrics.WithLabelValues("publication").Set(float64(count))

	count, err = inboxService.Count(ctx)
	if err != nil {
		slog.Error(fmt.Sprintf("failed to count access requests: %v", err))
		return
	}
	metrics.WithLabelValues("request").Set(float64(count))
}

func setupTraceProvider(endpoint string, serviceName string, serviceVersion string) (func(), error) {

	exporter, err := otlptracehttp.New(
		context.Background(),
		otlptracehttp.WithEndpoint(endpoint),
		otlptracehttp.WithInsecure(),
	)

	if err != nil {
		return nil, err
	}

	resource := resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceNameKey.String(serviceName),
		semconv.ServiceVersionKey.String(serviceVersion),
	)

	tracerProvider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithSampler(sdktrace.AlwaysSample()),
		sdktrace.WithResource(resource),
	)
	otel.SetTracerProvider(tracerProvider)

	propagator := propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	)
	otel.SetTextMapPropagator(propagator)

	cleanup := func() {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		if err := tracerProvider.Shutdown(ctx); err != nil {
			slog.Error(fmt.Sprintf("Failed to shutdown tracer provider: %v", err))
		}
	}
	return cleanup, nil
}
