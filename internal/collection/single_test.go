package collection

import (
	"context"
	"testing"
)

type profile struct {
	Name  string `json:"name"`
	Trips int    `json:"trips"`
}

func TestSingle_PutGetRoundTrip(t *testing.T) {
	t.Parallel()

	kv := newFakeKV()
	rec := NewSingle[profile](kv, "user", quietOpts())
	ctx := context.Background()

	if _, ok, err := rec.Get(ctx); err != nil || ok {
		t.Fatalf("Get(absent) = (_, %v, %v), want (false, nil)", ok, err)
	}

	if err := rec.Put(ctx, profile{Name: "Ada", Trips: 2}); err != nil {
		t.Fatalf("Put: %v", err)
	}

	fresh := NewSingle[profile](kv, "user", quietOpts())
	got, ok, err := fresh.Get(ctx)
	if err != nil || !ok {
		t.Fatalf("Get = (%+v, %v, %v)", got, ok, err)
	}
	if got.Name != "Ada" || got.Trips != 2 {
		t.Fatalf("got=%+v", got)
	}
}

func TestSingle_MutateAbsentIsNoOp(t *testing.T) {
	t.Parallel()

	kv := newFakeKV()
	rec := NewSingle[profile](kv, "user", quietOpts())

	changed, err := rec.Mutate(context.Background(), func(p profile) profile {
		p.Trips++
		return p
	})
	if err != nil {
		t.Fatalf("Mutate: %v", err)
	}
	if changed {
		t.Fatalf("Mutate on absent record reported changed=true")
	}
	if _, ok := kv.raw("user"); ok {
		t.Fatalf("Mutate on absent record wrote to durable storage")
	}
}

func TestSingle_MutatePersists(t *testing.T) {
	t.Parallel()

	kv := newFakeKV()
	rec := NewSingle[profile](kv, "user", quietOpts())
	ctx := context.Background()

	if err := rec.Put(ctx, profile{Name: "Ada"}); err != nil {
		t.Fatalf("Put: %v", err)
	}
	changed, err := rec.Mutate(ctx, func(p profile) profile {
		p.Trips = 5
		return p
	})
	if err != nil || !changed {
		t.Fatalf("Mutate = (%v, %v)", changed, err)
	}

	fresh := NewSingle[profile](kv, "user", quietOpts())
	got, ok, err := fresh.Get(ctx)
	if err != nil || !ok || got.Trips != 5 {
		t.Fatalf("Get after Mutate = (%+v, %v, %v)", got, ok, err)
	}
}

func TestSingle_ClearIsIdempotent(t *testing.T) {
	t.Parallel()

	kv := newFakeKV()
	rec := NewSingle[profile](kv, "user", quietOpts())
	ctx := context.Background()

	if err := rec.Put(ctx, profile{Name: "Ada"}); err != nil {
		t.Fatalf("Put: %v", err)
	}
	if err := rec.Clear(ctx); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if err := rec.Clear(ctx); err != nil {
		t.Fatalf("Clear(again) = %v, want nil", err)
	}
	if _, ok, err := rec.Get(ctx); err != nil || ok {
		t.Fatalf("Get after Clear = (_, %v, %v), want (false, nil)", ok, err)
	}
	if _, ok := kv.raw("user"); ok {
		t.Fatalf("durable key survived Clear")
	}
}

func TestSingle_LegacyBareRecordDecodes(t *testing.T) {
	t.Parallel()

	kv := newFakeKV()
	kv.data["user"] = `{"name":"Grace","trips":7}`
	rec := NewSingle[profile](kv, "user", quietOpts())

	got, ok, err := rec.Get(context.Background())
	if err != nil || !ok {
		t.Fatalf("Get = (%+v, %v, %v)", got, ok, err)
	}
	if got.Name != "Grace" || got.Trips != 7 {
		t.Fatalf("legacy record decoded wrong: %+v", got)
	}
}

func TestSingle_CorruptRecordReadsAsAbsent(t *testing.T) {
	t.Parallel()

	kv := newFakeKV()
	kv.data["user"] = `not json`
	rec := NewSingle[profile](kv, "user", quietOpts())

	if _, ok, err := rec.Get(context.Background()); err != nil || ok {
		t.Fatalf("Get over corrupt payload = (_, %v, %v), want (false, nil)", ok, err)
	}
}
