package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Wanderlust-Mobile/travel-companion-api/internal/adapters/authlocal"
	filekvstore "github.com/Wanderlust-Mobile/travel-companion-api/internal/adapters/file/kvstore"
	"github.com/Wanderlust-Mobile/travel-companion-api/internal/adapters/httpapi"
	memkvstore "github.com/Wanderlust-Mobile/travel-companion-api/internal/adapters/memory/kvstore"
	"github.com/Wanderlust-Mobile/travel-companion-api/internal/adapters/postgres"
	pgkvstore "github.com/Wanderlust-Mobile/travel-companion-api/internal/adapters/postgres/kvstore"
	"github.com/Wanderlust-Mobile/travel-companion-api/internal/app/bookings"
	"github.com/Wanderlust-Mobile/travel-companion-api/internal/app/catalog"
	"github.com/Wanderlust-Mobile/travel-companion-api/internal/app/saved"
	"github.com/Wanderlust-Mobile/travel-companion-api/internal/app/session"
	"github.com/Wanderlust-Mobile/travel-companion-api/internal/app/trips"
	"github.com/Wanderlust-Mobile/travel-companion-api/internal/collection"
	"github.com/Wanderlust-Mobile/travel-companion-api/internal/domain"
	platformclock "github.com/Wanderlust-Mobile/travel-companion-api/internal/platform/clock"
	"github.com/Wanderlust-Mobile/travel-companion-api/internal/platform/config"
	kvstoreport "github.com/Wanderlust-Mobile/travel-companion-api/internal/ports/out/kvstore"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	log := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel(cfg.LogLevel),
	}))
	slog.SetDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var (
		kv      kvstoreport.Store
		cleanup func()
	)
	switch cfg.StorageBackend {
	case config.BackendPostgres:
		pool, err := postgres.NewPool(ctx, cfg.DatabaseURL, postgres.PoolOptions{})
		if err != nil {
			log.Error("postgres pool", "error", err)
			os.Exit(1)
		}
		cleanup = pool.Close
		store := pgkvstore.NewStore(pool)
		if err := store.EnsureSchema(ctx); err != nil {
			log.Error("postgres schema", "error", err)
			os.Exit(1)
		}
		kv = store
	case config.BackendFile:
		store, err := filekvstore.NewStore(cfg.DataDir)
		if err != nil {
			log.Error("file store", "error", err)
			os.Exit(1)
		}
		kv = store
	default:
		kv = memkvstore.NewStore()
	}
	if cleanup != nil {
		defer cleanup()
	}

	opts := collection.Options{Timeout: cfg.StoreTimeout, Logger: log}

	tripStore := collection.New(kv, kvstoreport.KeyTrips, func(t domain.Trip, id string) domain.Trip {
		t.ID = domain.TripID(id)
		return t
	}, opts)
	bookingStore := collection.New(kv, kvstoreport.KeyBookings, func(b domain.Booking, id string) domain.Booking {
		b.ID = domain.BookingID(id)
		return b
	}, opts)
	savedStore := collection.New(kv, kvstoreport.KeySavedItems, func(it domain.SavedItem, id string) domain.SavedItem {
		it.ID = domain.SavedItemID(id)
		return it
	}, opts)
	userRecord := collection.NewSingle[domain.User](kv, kvstoreport.KeyUser, opts)
	onboardFlag := collection.NewFlag(kv, kvstoreport.KeyOnboarding, cfg.StoreTimeout)

	// Warm the caches so membership checks are correct from the first request.
	if _, err := tripStore.Load(ctx); err != nil {
		log.Error("load collection", "key", kvstoreport.KeyTrips, "error", err)
		os.Exit(1)
	}
	if _, err := bookingStore.Load(ctx); err != nil {
		log.Error("load collection", "key", kvstoreport.KeyBookings, "error", err)
		os.Exit(1)
	}
	if _, err := savedStore.Load(ctx); err != nil {
		log.Error("load collection", "key", kvstoreport.KeySavedItems, "error", err)
		os.Exit(1)
	}

	clk := platformclock.NewSystemClock()
	auth := authlocal.NewBackend(cfg.AuthLatency)

	sessionSvc := session.NewService(userRecord, onboardFlag, auth, clk)
	tripsSvc := trips.NewService(tripStore, sessionSvc, clk)
	bookingsSvc := bookings.NewService(bookingStore, clk)
	savedSvc := saved.NewService(savedStore, clk)
	cat := catalog.NewBuiltin()

	api := httpapi.NewServer(tripsSvc, bookingsSvc, savedSvc, sessionSvc, cat, log)
	handler := httpapi.NewRouter(api)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Info("api listening", "port", cfg.Port, "storage", cfg.StorageBackend)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("listen", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(shutdownCtx)
}

func logLevel(s string) slog.Level {
	switch s {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
