package history

import (
	"smartdomain/pkg/domain"

	"github.com/riverqueue/river"
)

// JobArgs carries a search to record in the background.
type JobArgs struct {
	UserID domain.UserID `json:"userId"`
	Input  RecordInput   `json:"input"`

	// maxAttempts configures the maximum number of times River should retry the job.
	maxAttempts int
}

// Kind returns the River job kind used to register and dispatch the history worker.
func (args JobArgs) Kind() string { return "RecordSearchJob" }

// InsertOpts returns the River options that control how the job is enqueued.
func (args JobArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		MaxAttempts: args.maxAttempts,
	}
}
