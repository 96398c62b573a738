package sql_test

import (
	"context"
	"testing"

	"github.com/leaseq/leaseq"
)

func TestConfigRoundTrip(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	if _, ok, err := store.GetConfig(ctx, leaseq.ConfigHeartbeat); err != nil || ok {
		t.Fatalf("expected unset config to report false: ok=%v err=%v", ok, err)
	}

	value := "120"
	if err := store.SetConfig(ctx, leaseq.ConfigHeartbeat, &value); err != nil {
		t.Fatal(err)
	}

	got, ok, err := store.GetConfig(ctx, leaseq.ConfigHeartbeat)
	if err != nil || !ok || got != "120" {
		t.Fatalf("expected 120/true, got %s/%v (err=%v)", got, ok, err)
	}

	all, err := store.GetAllConfig(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if all[leaseq.ConfigHeartbeat] != "120" {
		t.Fatalf("expected heartbeat=120 in GetAllConfig, got %v", all)
	}

	if err := store.SetConfig(ctx, leaseq.ConfigHeartbeat, nil); err != nil {
		t.Fatal(err)
	}
	if _, ok, err := store.GetConfig(ctx, leaseq.ConfigHeartbeat); err != nil || ok {
		t.Fatalf("expected config to revert to unset, ok=%v err=%v", ok, err)
	}
}
