package sql_test

import (
	"context"
	"testing"
	"time"

	"github.com/leaseq/leaseq"
	"github.com/leaseq/leaseq/job"
)

func TestPutCreatesWaiting(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	id, err := store.Put(ctx, "q", "j1", map[string]any{"a": 1}, baseTime, nil)
	if err != nil {
		t.Fatal(err)
	}
	if id != "j1" {
		t.Fatalf("expected id j1, got %s", id)
	}

	j, err := store.Get(ctx, "j1")
	if err != nil {
		t.Fatal(err)
	}
	if j == nil {
		t.Fatal("job not found")
	}
	if j.State != job.Waiting {
		t.Fatalf("expected Waiting, got %v", j.State)
	}
}

func TestPutWithDelaySchedules(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	_, err := store.Put(ctx, "q", "j1", nil, baseTime, &leaseq.PutArgs{Delay: time.Hour})
	if err != nil {
		t.Fatal(err)
	}

	j, _ := store.Get(ctx, "j1")
	if j.State != job.Scheduled {
		t.Fatalf("expected Scheduled, got %v", j.State)
	}

	jobs, err := store.Pop(ctx, "q", "w1", 10, baseTime, baseTime.Add(time.Minute))
	if err != nil {
		t.Fatal(err)
	}
	if len(jobs) != 0 {
		t.Fatalf("scheduled job should not be visible yet, got %d", len(jobs))
	}

	jobs, err = store.Pop(ctx, "q", "w1", 10, baseTime.Add(2*time.Hour), baseTime.Add(3*time.Hour))
	if err != nil {
		t.Fatal(err)
	}
	if len(jobs) != 1 {
		t.Fatalf("expected scheduled job to become visible, got %d", len(jobs))
	}
}

func TestPutMoveClearsFailure(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	store.Put(ctx, "q", "j1", nil, baseTime, nil)
	store.Pop(ctx, "q", "w1", 10, baseTime, baseTime.Add(time.Minute))
	if _, ok, err := store.Fail(ctx, "j1", "w1", "bad-input", "boom", baseTime, nil); err != nil || !ok {
		t.Fatalf("fail precondition should hold: ok=%v err=%v", ok, err)
	}

	j, _ := store.Get(ctx, "j1")
	if j.State != job.Failed {
		t.Fatalf("expected Failed, got %v", j.State)
	}

	store.Put(ctx, "other", "j1", nil, baseTime, nil)
	j, _ = store.Get(ctx, "j1")
	if j.State != job.Waiting {
		t.Fatalf("expected Waiting after re-put, got %v", j.State)
	}
	if j.Failure != nil {
		t.Fatal("expected Failure cleared after re-put")
	}
	if j.Queue != "other" {
		t.Fatalf("expected queue other, got %s", j.Queue)
	}
}
