package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"smartdomain/pkg/logger"

	"github.com/riverqueue/river"
	"github.com/riverqueue/river/riverdriver/riverdatabasesql"
	"github.com/riverqueue/river/rivertype"
	"go.uber.org/zap"
)

// newJobClient returns an insert-only river client. It has no workers and is
// never started, so it is safe to share between a handle and its transactions.
func newJobClient(db *sql.DB) (*river.Client[*sql.Tx], error) {
	client, err := river.NewClient(riverdatabasesql.New(db), &river.Config{})
	if err != nil {
		return nil, fmt.Errorf("could not create river queue client: %w", err)
	}

	return client, nil
}

// AddJob enqueues a river job. Inside a transaction the job is inserted with
// InsertTx and only becomes visible to workers once the transaction commits.
// Unique jobs that already exist are skipped and reported as not added.
func (p *PgSQL) AddJob(ctx context.Context, args river.JobArgs, opts *river.InsertOpts) (bool, error) {
	client := p.jobs
	if client == nil {
		db, _ := p.DB.(*sql.DB)
		c, err := newJobClient(db)
		if err != nil {
			return false, err
		}
		client = c
	}

	var (
		res *rivertype.JobInsertResult
		err error
	)
	if tx, ok := p.DB.(*sql.Tx); ok {
		res, err = client.InsertTx(ctx, tx, args, opts)
	} else {
		res, err = client.Insert(ctx, args, opts)
	}
	if err != nil {
		return false, fmt.Errorf("could not insert %s job: %w", args.Kind(), err)
	}

	if res.UniqueSkippedAsDuplicate {
		logger.Debug(ctx, "job skipped as duplicate", zap.String("kind", args.Kind()), zap.Int64("jobID", res.Job.ID))

		return false, nil
	}

	return true, nil
}
