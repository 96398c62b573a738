package sql_test

import (
	"context"
	"testing"
	"time"

	"github.com/leaseq/leaseq"
)

func TestQueuesReportsReconciledCounts(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	store.Put(ctx, "q", "waiting-job", nil, baseTime, nil)
	store.Put(ctx, "q", "scheduled-job", nil, baseTime, &leaseq.PutArgs{Delay: time.Hour})
	store.Put(ctx, "q", "running-job", nil, baseTime, nil)
	store.Pop(ctx, "q", "w1", 1, baseTime, baseTime.Add(time.Minute))

	summaries, err := store.Queues(ctx, baseTime)
	if err != nil {
		t.Fatal(err)
	}
	if len(summaries) != 1 {
		t.Fatalf("expected 1 queue, got %d", len(summaries))
	}
	q := summaries[0]
	if q.Name != "q" {
		t.Fatalf("expected queue q, got %s", q.Name)
	}
	if q.Waiting != 1 || q.Scheduled != 1 || q.Running != 1 || q.Stalled != 0 {
		t.Fatalf("unexpected summary: %+v", q)
	}
}

func TestQueuesReconcilesStalledWithoutMutating(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	store.Put(ctx, "q", "j1", nil, baseTime, nil)
	store.Pop(ctx, "q", "w1", 1, baseTime, baseTime.Add(time.Minute))

	summaries, err := store.Queues(ctx, baseTime.Add(2*time.Minute))
	if err != nil {
		t.Fatal(err)
	}
	q := summaries[0]
	if q.Stalled != 1 || q.Running != 0 {
		t.Fatalf("expected expired lease counted as stalled, got %+v", q)
	}

	j, _ := store.Get(ctx, "j1")
	if j.State.String() != "running" {
		t.Fatal("Queues must not mutate stored state")
	}
}

func TestEmptyQueueIsReportedOnceReferenced(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	store.Put(ctx, "q", "j1", nil, baseTime, nil)
	store.Cancel(ctx, "j1")

	summaries, err := store.Queues(ctx, baseTime)
	if err != nil {
		t.Fatal(err)
	}
	if len(summaries) != 1 {
		t.Fatalf("expected empty queue to still be reported, got %d", len(summaries))
	}
	if summaries[0].Waiting != 0 {
		t.Fatalf("expected 0 waiting, got %d", summaries[0].Waiting)
	}
}
