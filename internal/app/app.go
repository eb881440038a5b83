package app

import (
	"context"
	"net/http"
	"time"

	"github.com/go-faster/errors"
	"github.com/go-faster/sdk/app"
	"github.com/go-faster/sdk/zctx"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/zap"

	"github.com/sweetbatch/orderdesk/gen/oas"
	"github.com/sweetbatch/orderdesk/internal/domain/billing"
	"github.com/sweetbatch/orderdesk/internal/domain/order"
	"github.com/sweetbatch/orderdesk/internal/handler"
	"github.com/sweetbatch/orderdesk/internal/invoicing"
	"github.com/sweetbatch/orderdesk/internal/lookup"
	"github.com/sweetbatch/orderdesk/internal/repository"
	"github.com/sweetbatch/orderdesk/pkg/health"
	"github.com/sweetbatch/orderdesk/pkg/httpmiddleware"
)

// Run creates all dependencies, starts the HTTP server, and handles graceful
// shutdown. It is the single wiring point for the application.
func Run(ctx context.Context, lg *zap.Logger, m *app.Telemetry, cfg *Config) error {
	lg.Info("Initializing", zap.String("addr", cfg.Addr))

	// PostgreSQL pool + migrations.
	pool, err := repository.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		return errors.Wrap(err, "create db pool")
	}
	defer pool.Close()

	if err := repository.RunMigrations(ctx, pool); err != nil {
		return errors.Wrap(err, "run migrations")
	}

	// Health check service.
	healthSvc := health.New()
	healthSvc.AddReadinessCheck("postgres", 5*time.Second, func(ctx context.Context) error {
		return pool.Ping(ctx)
	})
	healthSvc.AddLivenessCheck("goroutines", time.Second, health.GoroutineCountCheck(10000))
	healthSvc.Start(ctx, 10*time.Second)
	healthSvc.SetReady(true)

	// Repositories.
	productRepo := repository.NewProductRepository(pool)
	orderRepo := repository.NewOrderRepository(pool)
	billingRepo := repository.NewBillingRepository(pool)
	historyRepo := repository.NewHistoryRepository(pool)
	apikeyRepo := repository.NewAPIKeyRepository(pool)
	allocator := repository.NewSequenceAllocator(pool)

	// Telemetry for the order lifecycle.
	tracer := m.TracerProvider().Tracer("orderdesk")
	ordersCreated, err := m.MeterProvider().Meter("orderdesk").Int64Counter("orders_created")
	if err != nil {
		return errors.Wrap(err, "create orders counter")
	}

	// Domain services.
	orderService := order.NewService(productRepo, allocator, orderRepo,
		order.WithTelemetry(tracer, ordersCreated),
	)
	billingService := billing.NewService(orderService, billingRepo, historyRepo)

	// Optional external providers, instrumented at the transport.
	outbound := &http.Client{
		Transport: otelhttp.NewTransport(http.DefaultTransport,
			otelhttp.WithTracerProvider(m.TracerProvider()),
			otelhttp.WithMeterProvider(m.MeterProvider()),
		),
		Timeout: 10 * time.Second,
	}
	var invoicer *invoicing.Caller
	if cfg.InvoicingURL != "" {
		invoicer = invoicing.NewCaller(cfg.InvoicingURL, outbound)
	}
	var lookupClient *lookup.Client
	if cfg.LookupURL != "" {
		lookupClient = lookup.NewClient(cfg.LookupURL, outbound)
	}

	// Generated API server.
	h := handler.NewHandler(productRepo, orderService, billingService, historyRepo, invoicer, lookupClient)
	securityHandler := handler.NewSecurityHandler(apikeyRepo, []byte(cfg.APIKeyPepper))
	oasServer, err := oas.NewServer(h, securityHandler,
		oas.WithPathPrefix("/api"),
		oas.WithTracerProvider(m.TracerProvider()),
		oas.WithMeterProvider(m.MeterProvider()),
	)
	if err != nil {
		return errors.Wrap(err, "create oas server")
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/livez", healthSvc.LiveEndpoint)
	mux.HandleFunc("/readyz", healthSvc.ReadyEndpoint)
	mux.Handle("/api/", oasServer)

	server := &http.Server{
		ReadHeaderTimeout: time.Second,
		ReadTimeout:       5 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       120 * time.Second,
		MaxHeaderBytes:    1 << 20,
		Addr:              cfg.Addr,
		Handler: httpmiddleware.Wrap(mux,
			httpmiddleware.Recovery(),
			httpmiddleware.CORS(httpmiddleware.CORSConfig{
				AllowOrigins:     cfg.CORS.Origins,
				AllowHeaders:     []string{"Content-Type", "Authorization", "X-Actor", "api_key"},
				AllowCredentials: cfg.CORS.AllowCredentials,
				MaxAge:           86400,
			}),
			httpmiddleware.RateLimitWithCleanup(ctx, httpmiddleware.RateLimitConfig{
				Max:    cfg.RateLimit.Max,
				Window: cfg.RateLimit.Window,
			}),
			httpmiddleware.RequestID(),
			httpmiddleware.InjectLogger(zctx.From(ctx)),
			httpmiddleware.LogRequests(),
		),
	}

	// Background status-index reconciliation. Drift can only appear after a
	// partially applied write, so this runs at a slow cadence and logs any
	// repair it makes.
	if cfg.Reconcile.Interval > 0 {
		go reconcileLoop(ctx, lg, orderService, cfg.Reconcile.Interval)
	}

	// Graceful shutdown: drop readiness, drain, then stop.
	shutdownDone := make(chan struct{})
	go func() {
		<-ctx.Done()
		healthSvc.SetReady(false)
		lg.Info("Readiness set to false, draining", zap.Duration("delay", cfg.Graceful.ReadinessDelay))
		time.Sleep(cfg.Graceful.ReadinessDelay)

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Graceful.ShutdownTimeout)
		defer cancel()

		lg.Info("Shutting down server", zap.Duration("timeout", cfg.Graceful.ShutdownTimeout))
		if err := server.Shutdown(shutdownCtx); err != nil {
			lg.Error("Server shutdown error", zap.Error(err))
		}
		healthSvc.Stop()
		close(shutdownDone)
	}()

	lg.Info("Server listening", zap.String("addr", cfg.Addr))
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.Wrap(err, "server")
	}
	<-shutdownDone
	return nil
}

func reconcileLoop(ctx context.Context, lg *zap.Logger, orders *order.Service, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n, err := orders.ReconcileIndex(ctx)
			if err != nil {
				lg.Error("Status index reconcile failed", zap.Error(err))
				continue
			}
			if n > 0 {
				lg.Warn("Status index repaired", zap.Int("entries", n))
			}
		}
	}
}
