package sql_test

import (
	"context"
	"testing"
	"time"
)

func TestCancelInvalidatesLease(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	store.Put(ctx, "q", "j1", nil, baseTime, nil)
	store.Pop(ctx, "q", "w1", 1, baseTime, baseTime.Add(time.Minute))

	if err := store.Cancel(ctx, "j1"); err != nil {
		t.Fatal(err)
	}

	j, err := store.Get(ctx, "j1")
	if err != nil {
		t.Fatal(err)
	}
	if j != nil {
		t.Fatal("expected job to be gone after cancel")
	}

	if _, ok, err := store.Heartbeat(ctx, "j1", "w1", baseTime.Add(time.Second), nil); err != nil || ok {
		t.Fatalf("expected heartbeat against cancelled job to fail without an error: ok=%v err=%v", ok, err)
	}
	if _, ok, err := store.Complete(ctx, "j1", "w1", "q", baseTime.Add(time.Second), nil); err != nil || ok {
		t.Fatalf("expected complete against cancelled job to fail without an error: ok=%v err=%v", ok, err)
	}
}

func TestCancelUnknownIDIsNoop(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	if err := store.Cancel(ctx, "missing"); err != nil {
		t.Fatal(err)
	}
}

func TestTrackAndCancelMarksExpired(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	store.Put(ctx, "q", "j1", nil, baseTime, nil)
	if err := store.Track(ctx, "j1"); err != nil {
		t.Fatal(err)
	}
	if err := store.Cancel(ctx, "j1"); err != nil {
		t.Fatal(err)
	}

	tracked, err := store.Tracked(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(tracked.Jobs) != 0 {
		t.Fatalf("expected no actively tracked ids, got %v", tracked.Jobs)
	}
	if len(tracked.Expired) != 1 || tracked.Expired[0] != "j1" {
		t.Fatalf("expected j1 in expired set, got %v", tracked.Expired)
	}
}
