package sql_test

import (
	"context"
	"testing"
	"time"

	"github.com/leaseq/leaseq/job"
)

func TestFailRecordsGroupAndAppearsInFailedGroups(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	store.Put(ctx, "q", "j1", nil, baseTime, nil)
	store.Pop(ctx, "q", "w1", 1, baseTime, baseTime.Add(time.Minute))

	group, ok, err := store.Fail(ctx, "j1", "w1", "bad-input", "boom", baseTime.Add(time.Second), nil)
	if err != nil || !ok {
		t.Fatalf("expected fail to succeed: ok=%v err=%v", ok, err)
	}
	if group != "bad-input" {
		t.Fatalf("expected group bad-input, got %s", group)
	}

	groups, err := store.FailedGroups(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if groups["bad-input"] != 1 {
		t.Fatalf("expected 1 job in bad-input, got %d", groups["bad-input"])
	}

	total, jobs, err := store.FailedJobs(ctx, "bad-input", 0, 0)
	if err != nil {
		t.Fatal(err)
	}
	if total != 1 || len(jobs) != 1 || jobs[0].Id != "j1" {
		t.Fatalf("unexpected failed jobs listing: total=%d jobs=%v", total, jobs)
	}

	j, _ := store.Get(ctx, "j1")
	if j.State != job.Failed {
		t.Fatalf("expected Failed, got %v", j.State)
	}
	if j.Failure == nil || j.Failure.Message != "boom" {
		t.Fatalf("expected failure message boom, got %+v", j.Failure)
	}
}

func TestFailWrongWorkerFails(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	store.Put(ctx, "q", "j1", nil, baseTime, nil)
	store.Pop(ctx, "q", "w1", 1, baseTime, baseTime.Add(time.Minute))

	_, ok, err := store.Fail(ctx, "j1", "w2", "bad-input", "boom", baseTime.Add(time.Second), nil)
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Fatal("expected fail from wrong worker to fail without an error")
	}
}
