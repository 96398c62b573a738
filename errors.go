package leaseq

import "errors"

var (
	// ErrInvalidData is returned when a caller-supplied job payload
	// cannot be decoded as a key-value mapping. Store.Put itself takes
	// a typed map[string]any and can never violate this; it is surfaced
	// at looser-typed boundaries such as cmd/leaseqctl's --data flag.
	ErrInvalidData = errors.New("leaseq: data must be a top-level key-value mapping")

	// ErrInvalidDelay is returned by Put/Complete when delay is
	// negative.
	ErrInvalidDelay = errors.New("leaseq: malformed delay")

	// ErrMissingQueue is returned by any queue-keyed operation (Put,
	// Peek, Pop, Complete) invoked with an empty queue name.
	ErrMissingQueue = errors.New("leaseq: missing queue name")

	// ErrInvalidCount is returned by Peek/Pop when count is negative.
	ErrInvalidCount = errors.New("leaseq: malformed count")

	// ErrBadStatus is returned by FailedJobs when start or limit is
	// negative.
	ErrBadStatus = errors.New("leaseq: malformed start/limit")

	// ErrMissingID is returned whenever an id-keyed operation is
	// invoked with an empty id.
	ErrMissingID = errors.New("leaseq: missing job id")

	// ErrMissingWorker is returned whenever a lease-holding operation
	// (Heartbeat, Complete, Fail) is invoked with an empty worker id.
	ErrMissingWorker = errors.New("leaseq: missing worker id")

	// ErrMissingFailureGroup is returned by Fail when group is empty,
	// and by FailedJobs when the group filter is empty.
	ErrMissingFailureGroup = errors.New("leaseq: missing failure group")

	// ErrMissingConfigName is returned by SetConfig when name is empty.
	// GetConfig does not return it: an empty name reports "" and false.
	ErrMissingConfigName = errors.New("leaseq: missing config name")
)
