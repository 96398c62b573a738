package sql_test

import (
	"context"
	"testing"
	"time"
)

func TestHeartbeatExtendsLease(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	store.Put(ctx, "q", "j1", nil, baseTime, nil)
	store.Pop(ctx, "q", "w1", 1, baseTime, baseTime.Add(time.Minute))

	newExpiry, ok, err := store.Heartbeat(ctx, "j1", "w1", baseTime.Add(30*time.Second), nil)
	if err != nil || !ok {
		t.Fatalf("expected heartbeat to succeed: ok=%v err=%v", ok, err)
	}
	if !newExpiry.After(baseTime.Add(time.Minute)) {
		t.Fatalf("expected lease to be extended past original expiry, got %v", newExpiry)
	}
}

func TestHeartbeatWrongWorkerFails(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	store.Put(ctx, "q", "j1", nil, baseTime, nil)
	store.Pop(ctx, "q", "w1", 1, baseTime, baseTime.Add(time.Minute))

	_, ok, err := store.Heartbeat(ctx, "j1", "w2", baseTime.Add(time.Second), nil)
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Fatal("expected heartbeat from wrong worker to fail without an error")
	}
}

func TestHeartbeatUnknownJobFails(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	_, ok, err := store.Heartbeat(ctx, "missing", "w1", baseTime, nil)
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Fatal("expected heartbeat on unknown job to fail without an error")
	}
}
