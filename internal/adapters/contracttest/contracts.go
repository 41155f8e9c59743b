// Package contracttest holds behavior suites shared by every implementation
// of an outbound port. Each adapter package runs the suite against its own
// construction so memory, file, and postgres backends stay interchangeable.
package contracttest

import (
	"context"
	"strings"
	"testing"

	kvstoreport "github.com/Wanderlust-Mobile/travel-companion-api/internal/ports/out/kvstore"
)

type CleanupFunc = func()

type KVStoreFactory func(t *testing.T) (kvstoreport.Store, CleanupFunc)

// RunKVStore exercises the durable-store contract: absent keys read as
// ok=false, writes read back, overwrites replace, deletes are idempotent.
func RunKVStore(t *testing.T, newStore KVStoreFactory) {
	t.Helper()
	ctx := context.Background()

	store, cleanup := newStore(t)
	if cleanup != nil {
		t.Cleanup(cleanup)
	}

	// Absent key: ok=false, no error.
	if v, ok, err := store.Get(ctx, "trips"); err != nil || ok || v != "" {
		t.Fatalf("Get(absent) = (%q, %v, %v), want (\"\", false, nil)", v, ok, err)
	}

	// Write then read back.
	payload := `{"version":1,"items":[{"id":"t1","title":"Paris Trip"}]}`
	if err := store.Set(ctx, "trips", payload); err != nil {
		t.Fatalf("Set: %v", err)
	}
	v, ok, err := store.Get(ctx, "trips")
	if err != nil || !ok {
		t.Fatalf("Get after Set = (ok=%v, err=%v), want (true, nil)", ok, err)
	}
	if v != payload {
		t.Fatalf("Get = %q, want %q", v, payload)
	}

	// Overwrite replaces the whole value.
	if err := store.Set(ctx, "trips", `{"version":1,"items":[]}`); err != nil {
		t.Fatalf("Set overwrite: %v", err)
	}
	if v, _, _ := store.Get(ctx, "trips"); v != `{"version":1,"items":[]}` {
		t.Fatalf("Get after overwrite = %q", v)
	}

	// Keys are independent.
	if err := store.Set(ctx, "user", `{"version":1,"record":{"id":"u1"}}`); err != nil {
		t.Fatalf("Set user: %v", err)
	}
	if v, _, _ := store.Get(ctx, "trips"); strings.Contains(v, "u1") {
		t.Fatalf("trips key affected by user write: %q", v)
	}

	// Non-ASCII round-trips intact.
	if err := store.Set(ctx, "savedItems", `{"title":"Côte d'Azur — plages"}`); err != nil {
		t.Fatalf("Set unicode: %v", err)
	}
	if v, _, _ := store.Get(ctx, "savedItems"); v != `{"title":"Côte d'Azur — plages"}` {
		t.Fatalf("unicode round-trip = %q", v)
	}

	// Delete removes; deleting an absent key is a no-op.
	if err := store.Delete(ctx, "user"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, ok, _ := store.Get(ctx, "user"); ok {
		t.Fatalf("Get after Delete: ok=true, want false")
	}
	if err := store.Delete(ctx, "user"); err != nil {
		t.Fatalf("Delete absent: %v", err)
	}
}
