// Command seed populates a file or postgres backend with demo data so the app
// shell has something to render on first launch.
package main

import (
	"context"
	"log/slog"
	"os"

	filekvstore "github.com/Wanderlust-Mobile/travel-companion-api/internal/adapters/file/kvstore"
	"github.com/Wanderlust-Mobile/travel-companion-api/internal/adapters/postgres"
	pgkvstore "github.com/Wanderlust-Mobile/travel-companion-api/internal/adapters/postgres/kvstore"
	"github.com/Wanderlust-Mobile/travel-companion-api/internal/app/bookings"
	"github.com/Wanderlust-Mobile/travel-companion-api/internal/app/catalog"
	"github.com/Wanderlust-Mobile/travel-companion-api/internal/app/saved"
	"github.com/Wanderlust-Mobile/travel-companion-api/internal/app/trips"
	"github.com/Wanderlust-Mobile/travel-companion-api/internal/collection"
	"github.com/Wanderlust-Mobile/travel-companion-api/internal/domain"
	platformclock "github.com/Wanderlust-Mobile/travel-companion-api/internal/platform/clock"
	"github.com/Wanderlust-Mobile/travel-companion-api/internal/platform/config"
	kvstoreport "github.com/Wanderlust-Mobile/travel-companion-api/internal/ports/out/kvstore"
)

func main() {
	log := slog.New(slog.NewTextHandler(os.Stderr, nil))

	cfg, err := config.Load()
	if err != nil {
		log.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()

	var kv kvstoreport.Store
	switch cfg.StorageBackend {
	case config.BackendPostgres:
		pool, err := postgres.NewPool(ctx, cfg.DatabaseURL, postgres.PoolOptions{})
		if err != nil {
			log.Error("postgres pool", "error", err)
			os.Exit(1)
		}
		defer pool.Close()
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
		log.Error("seeding requires STORAGE_BACKEND=file or postgres; the memory backend forgets everything on exit")
		os.Exit(1)
	}

	opts := collection.Options{Timeout: cfg.StoreTimeout, Logger: log}
	clk := platformclock.NewSystemClock()

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

	tripsSvc := trips.NewService(tripStore, noopRecorder{}, clk)
	bookingsSvc := bookings.NewService(bookingStore, clk)
	savedSvc := saved.NewService(savedStore, clk)
	cat := catalog.NewBuiltin()

	start := clk.Now().AddDate(0, 1, 0)
	paris, err := tripsSvc.Plan(ctx, trips.PlanTripInput{
		Title:       "Springtime in Paris",
		Destination: "Paris, France",
		StartDate:   start,
		EndDate:     start.AddDate(0, 0, 6),
		CoverImage:  "covers/paris.jpg",
		Budget:      &domain.Money{Amount: 2400, Currency: "EUR"},
	})
	if err != nil {
		log.Error("seed trip", "error", err)
		os.Exit(1)
	}

	if _, err := bookingsSvc.Book(ctx, bookings.BookInput{
		Category: domain.BookingCategoryHotel,
		Title:    "Hotel Le Marais",
		Location: "Paris, France",
		Date:     start,
		Price:    domain.Money{Amount: 180, Currency: "EUR"},
		Image:    "covers/le-marais.jpg",
		Details:  map[string]string{"nights": "6", "room": "double"},
	}); err != nil {
		log.Error("seed booking", "error", err)
		os.Exit(1)
	}

	for _, id := range []string{"dest-kyoto", "attr-machu-picchu"} {
		e, ok := cat.Get(id)
		if !ok {
			continue
		}
		if err := savedSvc.Save(ctx, saved.SaveInput{
			ID:       domain.SavedItemID(e.ID),
			Category: e.Category,
			Title:    e.Title,
			Location: e.Location,
			Image:    e.Image,
			Rating:   e.Rating,
			Price:    e.Price,
		}); err != nil {
			log.Error("seed saved item", "error", err)
			os.Exit(1)
		}
	}

	log.Info("seeded demo data", "backend", cfg.StorageBackend, "trip", string(paris.ID))
}

// noopRecorder satisfies the trip service's profile dependency; seeding never
// completes trips, so nothing is recorded.
type noopRecorder struct{}

func (noopRecorder) IncrementTripsCompleted(context.Context) error   { return nil }
func (noopRecorder) AddVisitedCountry(context.Context, string) error { return nil }
