package simulator

import (
	"time"

	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"
)

// DistributionScopeAll is the only distribution scope: every live simulation.
const DistributionScopeAll = "all"

// RefreshDistributionJobArgs asks a worker to recompute the bracket
// distribution. Scope is unique so bursts of simulations collapse into a
// single pending job per period.
type RefreshDistributionJobArgs struct {
	Scope string `json:"scope" river:"unique"`

	maxAttempts  int
	uniquePeriod time.Duration
}

// NewRefreshDistributionJobArgs builds the job arguments for the whole dataset.
func NewRefreshDistributionJobArgs(maxAttempts int, uniquePeriod time.Duration) RefreshDistributionJobArgs {
	return RefreshDistributionJobArgs{
		Scope:        DistributionScopeAll,
		maxAttempts:  maxAttempts,
		uniquePeriod: uniquePeriod,
	}
}

// Kind returns the River job kind.
func (args RefreshDistributionJobArgs) Kind() string { return "RefreshDistributionJob" }

// InsertOpts dedupes jobs that have not finished yet. Completed jobs are left
// out so a simulation made right after a refresh still triggers a new one.
func (args RefreshDistributionJobArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		MaxAttempts: args.maxAttempts,
		UniqueOpts: river.UniqueOpts{
			ByArgs:   true,
			ByPeriod: args.uniquePeriod,
			ByState: []rivertype.JobState{
				rivertype.JobStateAvailable,
				rivertype.JobStatePending,
				rivertype.JobStateRunning,
				rivertype.JobStateRetryable,
				rivertype.JobStateScheduled,
			},
		},
	}
}
