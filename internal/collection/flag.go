package collection

import (
	"context"
	"fmt"
	"time"

	"github.com/Wanderlust-Mobile/travel-companion-api/internal/ports/out/kvstore"
)

// Flag is a one-shot durable boolean (the onboarding-complete marker).
// An absent key reads as false; Set is idempotent.
type Flag struct {
	key     string
	kv      kvstore.Store
	timeout time.Duration
}

func NewFlag(kv kvstore.Store, key string, timeout time.Duration) *Flag {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Flag{key: key, kv: kv, timeout: timeout}
}

func (f *Flag) Get(ctx context.Context) (bool, error) {
	cctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()
	raw, ok, err := f.kv.Get(cctx, f.key)
	if err != nil {
		return false, fmt.Errorf("load flag %q: %w", f.key, err)
	}
	return ok && raw == "true", nil
}

func (f *Flag) Set(ctx context.Context) error {
	cctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()
	if err := f.kv.Set(cctx, f.key, "true"); err != nil {
		return fmt.Errorf("persist flag %q: %w", f.key, err)
	}
	return nil
}
