package sql

import (
	"time"

	"github.com/leaseq/leaseq/job"
	"github.com/uptrace/bun"
)

// jobModel is the persisted row for one job record. It is the SQL
// realization of job.Job: the broker-facing type never touches bun
// directly, it is translated at the edges by toJob/fromJob.
type jobModel struct {
	bun.BaseModel `bun:"table:jobs"`

	Id    string    `bun:"id,pk"`
	Queue string    `bun:"queue,notnull"`
	State job.State `bun:"state,notnull"`

	Worker   string `bun:"worker,notnull,default:''"`
	Priority int    `bun:"priority,notnull,default:0"`
	Seq      int64  `bun:"seq,notnull"`

	Due     *time.Time `bun:"due,nullzero"`
	Expires *time.Time `bun:"expires,nullzero"`

	Data    map[string]any `bun:"data,type:jsonb"`
	Tags    []string       `bun:"tags,type:jsonb"`
	History []job.Event    `bun:"history,type:jsonb"`

	FailureGroup   *string    `bun:"failure_group,nullzero"`
	FailureMessage *string    `bun:"failure_message,nullzero"`
	FailureWhen    *time.Time `bun:"failure_when,nullzero"`
	FailureWorker  *string    `bun:"failure_worker,nullzero"`
}

func (m *jobModel) toJob() *job.Job {
	j := &job.Job{
		Id:       m.Id,
		Data:     m.Data,
		Priority: m.Priority,
		Tags:     m.Tags,
		State:    m.State,
		Queue:    m.Queue,
		Worker:   m.Worker,
		History:  m.History,
	}
	if m.Expires != nil {
		j.Expires = *m.Expires
	}
	if m.FailureGroup != nil {
		j.Failure = &job.Failure{
			Group:   *m.FailureGroup,
			Message: derefStr(m.FailureMessage),
			Worker:  derefStr(m.FailureWorker),
		}
		if m.FailureWhen != nil {
			j.Failure.When = *m.FailureWhen
		}
	}
	return j
}

func derefStr(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// queueModel records every queue name ever referenced by Put or Pop,
// so Inspector.Queues can report empty queues too (spec.md §4.11).
type queueModel struct {
	bun.BaseModel `bun:"table:queues"`

	Name      string    `bun:"name,pk"`
	FirstSeen time.Time `bun:"first_seen,notnull"`
}

// queueSeqModel holds the monotonically increasing insertion counter
// used to break priority ties in FIFO order (spec.md §9: "avoid
// floating-point drift at large counters" by using a plain integer
// counter rather than a composite float score).
type queueSeqModel struct {
	bun.BaseModel `bun:"table:queue_seq"`

	Queue string `bun:"queue,pk"`
	Next  int64  `bun:"next,notnull"`
}

// completedModel backs the global retention-ordered completed set of
// spec.md §4.6.
type completedModel struct {
	bun.BaseModel `bun:"table:completed"`

	JobID       string    `bun:"job_id,pk"`
	CompletedAt time.Time `bun:"completed_at,notnull"`
}

// trackedModel backs the opt-in tracking set and its "expired"
// sub-collection (spec.md §4.12): a row with Expired=false is an
// actively tracked id; Expired=true records that a tracked id was
// Cancelled or reaped by retention.
type trackedModel struct {
	bun.BaseModel `bun:"table:tracked"`

	JobID   string `bun:"job_id,pk"`
	Expired bool   `bun:"expired,notnull,default:false"`
}

// statsModel is one (queue, day, kind) wait/run duration distribution
// (spec.md §4.10).
type statsModel struct {
	bun.BaseModel `bun:"table:stats"`

	Queue     string  `bun:"queue,pk"`
	Day       int64   `bun:"day,pk"`
	Kind      string  `bun:"kind,pk"`
	Count     int64   `bun:"count,notnull,default:0"`
	Sum       float64 `bun:"sum,notnull,default:0"`
	SumSq     float64 `bun:"sum_sq,notnull,default:0"`
	Histogram []int64 `bun:"histogram,type:jsonb"`
}

// configModel backs getconfig/setconfig (spec.md §4's config table).
type configModel struct {
	bun.BaseModel `bun:"table:config"`

	Name  string `bun:"name,pk"`
	Value string `bun:"value,notnull"`
}
