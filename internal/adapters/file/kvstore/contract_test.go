package kvstore

import (
	"testing"

	"github.com/Wanderlust-Mobile/travel-companion-api/internal/adapters/contracttest"
	kvstoreport "github.com/Wanderlust-Mobile/travel-companion-api/internal/ports/out/kvstore"
)

func TestContract_FileKVStore(t *testing.T) {
	contracttest.RunKVStore(t, func(t *testing.T) (kvstoreport.Store, func()) {
		t.Helper()
		s, err := NewStore(t.TempDir())
		if err != nil {
			t.Fatalf("NewStore: %v", err)
		}
		return s, nil
	})
}
