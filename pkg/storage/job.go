package storage

import (
	"context"

	"github.com/riverqueue/river"
)

// JobStorage enqueues background jobs into the queue backend that shares the
// storage's database, so a job inserted inside WithTx only becomes visible
// once the surrounding transaction commits.
type JobStorage interface {
	// AddJob enqueues a job. It reports false when the backend skipped the
	// insert as a duplicate of a unique job.
	AddJob(ctx context.Context, args river.JobArgs, opts *river.InsertOpts) (bool, error)
}
