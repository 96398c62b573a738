package sql_test

import (
	"context"
	"testing"
	"time"

	"github.com/leaseq/leaseq"
	"github.com/leaseq/leaseq/job"
)

func TestCompleteFinishesJob(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	store.Put(ctx, "q", "j1", nil, baseTime, nil)
	store.Pop(ctx, "q", "w1", 1, baseTime, baseTime.Add(time.Minute))

	state, ok, err := store.Complete(ctx, "j1", "w1", "q", baseTime.Add(time.Second), nil)
	if err != nil || !ok {
		t.Fatalf("expected complete to succeed: ok=%v err=%v", ok, err)
	}
	if state != job.Complete {
		t.Fatalf("expected Complete, got %v", state)
	}

	j, _ := store.Get(ctx, "j1")
	if j.State != job.Complete {
		t.Fatalf("expected stored state Complete, got %v", j.State)
	}
}

func TestCompleteWithNextAdvancesQueue(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	store.Put(ctx, "q1", "j1", nil, baseTime, nil)
	store.Pop(ctx, "q1", "w1", 1, baseTime, baseTime.Add(time.Minute))

	state, ok, err := store.Complete(ctx, "j1", "w1", "q1", baseTime.Add(time.Second), &leaseq.CompleteArgs{Next: "q2"})
	if err != nil || !ok {
		t.Fatalf("expected complete to succeed: ok=%v err=%v", ok, err)
	}
	if state != job.Waiting {
		t.Fatalf("expected Waiting in next queue, got %v", state)
	}

	j, _ := store.Get(ctx, "j1")
	if j.Queue != "q2" {
		t.Fatalf("expected queue q2, got %s", j.Queue)
	}
}

func TestCompleteWrongQueueFails(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	store.Put(ctx, "q1", "j1", nil, baseTime, nil)
	store.Pop(ctx, "q1", "w1", 1, baseTime, baseTime.Add(time.Minute))

	_, ok, err := store.Complete(ctx, "j1", "w1", "q2", baseTime.Add(time.Second), nil)
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Fatal("expected complete against wrong queue to fail without an error")
	}
}

func TestRetentionByCount(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	zero := "0"
	if err := store.SetConfig(ctx, leaseq.ConfigJobsHistoryCount, &zero); err != nil {
		t.Fatal(err)
	}

	for i := 0; i < 3; i++ {
		id := string(rune('a' + i))
		store.Put(ctx, "q", id, nil, baseTime, nil)
		store.Pop(ctx, "q", "w1", 1, baseTime, baseTime.Add(time.Minute))
		if _, ok, err := store.Complete(ctx, id, "w1", "q", baseTime.Add(time.Second), nil); err != nil || !ok {
			t.Fatalf("complete %s: ok=%v err=%v", id, ok, err)
		}
	}

	for i := 0; i < 3; i++ {
		id := string(rune('a' + i))
		j, err := store.Get(ctx, id)
		if err != nil {
			t.Fatal(err)
		}
		if j != nil {
			t.Fatalf("expected %s to be reaped under jobs-history-count=0, still present", id)
		}
	}
}

func TestRetentionByNegativeAge(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	negative := "-1"
	if err := store.SetConfig(ctx, leaseq.ConfigJobsHistory, &negative); err != nil {
		t.Fatal(err)
	}

	store.Put(ctx, "q", "j1", nil, baseTime, nil)
	store.Pop(ctx, "q", "w1", 1, baseTime, baseTime.Add(time.Minute))
	if _, ok, err := store.Complete(ctx, "j1", "w1", "q", baseTime.Add(time.Second), nil); err != nil || !ok {
		t.Fatalf("complete: ok=%v err=%v", ok, err)
	}

	j, err := store.Get(ctx, "j1")
	if err != nil {
		t.Fatal(err)
	}
	if j != nil {
		t.Fatal("expected job-history=-1 to reap every completed job immediately")
	}
}
