package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"log/slog"
	"math/rand/v2"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/Simplici0/printquote/internal/config"
	"github.com/Simplici0/printquote/internal/db"
	"github.com/Simplici0/printquote/internal/migrations"
	"github.com/Simplici0/printquote/internal/seed"
	"github.com/Simplici0/printquote/internal/store"
	"github.com/Simplici0/printquote/web"
)

type server struct {
	store     *store.Store
	logger    *slog.Logger
	templates map[string]*template.Template
	limiter   *ipRateLimiter

	now   func() time.Time
	rngMu sync.Mutex
	rng   *rand.Rand
}

type baseViewData struct {
	ErrorMessage   string
	SuccessMessage string
}

func main() {
	cfg := config.Load()
	logger := newLogger(cfg)
	slog.SetDefault(logger)

	if err := run(cfg, logger); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func newLogger(cfg config.Config) *slog.Logger {
	opts := &slog.HandlerOptions{Level: cfg.LogLevel}
	if cfg.IsDev() {
		return slog.New(slog.NewTextHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, opts))
}

func run(cfg config.Config, logger *slog.Logger) error {
	ctx := context.Background()

	database, err := openSessionDB(ctx)
	if err != nil {
		return err
	}
	defer database.Close()

	srv, err := newServer(store.New(database), logger, cfg)
	if err != nil {
		return err
	}

	httpServer := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      srv.routes(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", "addr", httpServer.Addr, "environment", cfg.Environment)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("listen: %w", err)
	case sig := <-quit:
		logger.Info("shutting down server", "signal", sig.String())
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	logger.Info("server stopped")
	return nil
}

// openSessionDB opens the in-memory session database with schema and defaults in place.
func openSessionDB(ctx context.Context) (*sql.DB, error) {
	database, err := db.OpenMemory()
	if err != nil {
		return nil, fmt.Errorf("open session database: %w", err)
	}
	if err := migrations.Up(ctx, database); err != nil {
		_ = database.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	if _, err := seed.Run(ctx, database); err != nil {
		_ = database.Close()
		return nil, fmt.Errorf("seed defaults: %w", err)
	}
	return database, nil
}

func newServer(st *store.Store, logger *slog.Logger, cfg config.Config) (*server, error) {
	templates, err := parseTemplates("home.html", "quote.html")
	if err != nil {
		return nil, err
	}
	return &server{
		store:     st,
		logger:    logger,
		templates: templates,
		limiter:   newIPRateLimiter(cfg.QuoteRateLimit, cfg.QuoteRateBurst),
		now:       time.Now,
		rng:       rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0)),
	}, nil
}

func (s *server) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.logRequests)
	r.Use(s.recoverPanic)

	static, _ := fs.Sub(web.FS, "static")
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServerFS(static)))

	r.Get("/healthz", s.handleHealth)

	r.Get("/", s.handleHome)
	r.Post("/form", s.handleFormSubmit)
	r.Post("/form/reset", s.handleFormReset)
	r.Post("/form/convert", s.handleFormConvert)
	r.Post("/materials", s.handleMaterialSubmit)
	r.Post("/materials/save-all", s.handleMaterialsSaveAll)
	r.Post("/materials/{id}/delete", s.handleMaterialDelete)

	r.Group(func(r chi.Router) {
		r.Use(s.limiter.middleware(s.rateLimitExceeded))
		r.Get("/quote", s.handleQuoteView)
		r.Get("/quote.txt", s.handleQuoteText)
		r.Get("/quote.pdf", s.handleQuotePDF)
		r.Get("/quote.xlsx", s.handleQuoteExcel)
	})

	r.Route("/api", func(r chi.Router) {
		r.Post("/estimate", s.handleEstimate)
		r.Get("/materials", s.handleListMaterials)
		r.Post("/materials", s.handleCreateMaterial)
		r.Put("/materials", s.handleReplaceMaterials)
		r.Put("/materials/{id}", s.handleUpdateMaterial)
		r.Delete("/materials/{id}", s.handleDeleteMaterial)
		r.Get("/blueprint-prices", s.handleGetBlueprintPrices)
		r.Put("/blueprint-prices", s.handleSetBlueprintPrices)
	})

	return r
}

func (s *server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok"))
}
