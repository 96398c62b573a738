package sql_test

import (
	"context"
	"testing"
	"time"

	"github.com/leaseq/leaseq"
)

func TestPopOrdersByPriorityThenFIFO(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	store.Put(ctx, "q", "low-a", nil, baseTime, &leaseq.PutArgs{Priority: 5})
	store.Put(ctx, "q", "high", nil, baseTime.Add(time.Second), &leaseq.PutArgs{Priority: 1})
	store.Put(ctx, "q", "low-b", nil, baseTime.Add(2*time.Second), &leaseq.PutArgs{Priority: 5})

	jobs, err := store.Pop(ctx, "q", "w1", 10, baseTime.Add(3*time.Second), baseTime.Add(time.Minute))
	if err != nil {
		t.Fatal(err)
	}
	if len(jobs) != 3 {
		t.Fatalf("expected 3 jobs, got %d", len(jobs))
	}
	want := []string{"high", "low-a", "low-b"}
	for i, id := range want {
		if jobs[i].Id != id {
			t.Fatalf("position %d: expected %s, got %s", i, id, jobs[i].Id)
		}
	}
}

func TestPeekDoesNotTransition(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	store.Put(ctx, "q", "j1", nil, baseTime, nil)

	jobs, err := store.Peek(ctx, "q", 10, baseTime)
	if err != nil {
		t.Fatal(err)
	}
	if len(jobs) != 1 {
		t.Fatalf("expected 1 job, got %d", len(jobs))
	}

	j, _ := store.Get(ctx, "j1")
	if j.State.String() != "waiting" {
		t.Fatalf("peek must not transition state, got %v", j.State)
	}
}

func TestPopReclaimsExpiredLease(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	store.Put(ctx, "q", "j1", nil, baseTime, nil)
	first, err := store.Pop(ctx, "q", "w1", 1, baseTime, baseTime.Add(time.Minute))
	if err != nil || len(first) != 1 {
		t.Fatalf("expected initial pop to succeed: jobs=%v err=%v", first, err)
	}

	// before lease expiry, nothing else should be dispensable
	again, err := store.Pop(ctx, "q", "w2", 1, baseTime.Add(30*time.Second), baseTime.Add(2*time.Minute))
	if err != nil {
		t.Fatal(err)
	}
	if len(again) != 0 {
		t.Fatalf("expected no dispensable jobs before lease expiry, got %d", len(again))
	}

	// after lease expiry, another worker should be able to steal it
	stolen, err := store.Pop(ctx, "q", "w2", 1, baseTime.Add(2*time.Minute), baseTime.Add(3*time.Minute))
	if err != nil {
		t.Fatal(err)
	}
	if len(stolen) != 1 || stolen[0].Id != "j1" {
		t.Fatalf("expected j1 to be stolen by w2, got %v", stolen)
	}
	if stolen[0].Worker != "w2" {
		t.Fatalf("expected worker w2, got %s", stolen[0].Worker)
	}
}

func TestPopCountZeroReturnsNil(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	store.Put(ctx, "q", "j1", nil, baseTime, nil)
	jobs, err := store.Pop(ctx, "q", "w1", 0, baseTime, baseTime.Add(time.Minute))
	if err != nil {
		t.Fatal(err)
	}
	if len(jobs) != 0 {
		t.Fatalf("expected no jobs for count=0, got %d", len(jobs))
	}
}
