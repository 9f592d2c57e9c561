package sql

import (
	"context"
	"database/sql"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
)

// QueryStats holds query execution statistics.
type QueryStats struct {
	// TotalQueries is the total number of queries executed.
	TotalQueries atomic.Int64
	// TotalExecs is the total number of exec statements executed.
	TotalExecs atomic.Int64
	// TotalDuration is the total time spent executing statements.
	TotalDuration atomic.Int64 // nanoseconds
	// Errors is the count of failed statements.
	Errors atomic.Int64
}

// Stats returns a snapshot of the current statistics.
func (s *QueryStats) Stats() StatsSnapshot {
	return StatsSnapshot{
		TotalQueries:  s.TotalQueries.Load(),
		TotalExecs:    s.TotalExecs.Load(),
		TotalDuration: time.Duration(s.TotalDuration.Load()),
		Errors:        s.Errors.Load(),
	}
}

// StatsSnapshot is a point-in-time snapshot of query statistics.
type StatsSnapshot struct {
	TotalQueries  int64
	TotalExecs    int64
	TotalDuration time.Duration
	Errors        int64
}

// String returns a human-readable summary of the statistics.
func (s StatsSnapshot) String() string {
	return fmt.Sprintf("queries=%d execs=%d duration=%s errors=%d",
		s.TotalQueries, s.TotalExecs, s.TotalDuration, s.Errors)
}

// DebugQuerier wraps an ExecQuerier, logging every statement at debug
// level and collecting statistics.
type DebugQuerier struct {
	ExecQuerier
	log   zerolog.Logger
	stats QueryStats
}

// NewDebugQuerier wraps ex with debug logging.
//
//	db := sql.NewDebugQuerier(drv, logger)
//	_, err := compiler.Generate(ctx, db, cfg)
//	logger.Info().Stringer("stats", db.Stats()).Msg("done")
func NewDebugQuerier(ex ExecQuerier, log zerolog.Logger) *DebugQuerier {
	return &DebugQuerier{ExecQuerier: ex, log: log}
}

// Stats returns a snapshot of the collected statistics.
func (d *DebugQuerier) Stats() StatsSnapshot {
	return d.stats.Stats()
}

// QueryContext executes a query and logs it.
func (d *DebugQuerier) QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	start := time.Now()
	rows, err := d.ExecQuerier.QueryContext(ctx, query, args...)
	d.stats.TotalQueries.Add(1)
	d.record("query", query, args, start, err)
	return rows, err
}

// ExecContext executes a statement and logs it.
func (d *DebugQuerier) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	start := time.Now()
	res, err := d.ExecQuerier.ExecContext(ctx, query, args...)
	d.stats.TotalExecs.Add(1)
	d.record("exec", query, args, start, err)
	return res, err
}

func (d *DebugQuerier) record(op, query string, args []any, start time.Time, err error) {
	elapsed := time.Since(start)
	d.stats.TotalDuration.Add(int64(elapsed))
	if err != nil {
		d.stats.Errors.Add(1)
	}
	d.log.Debug().
		Str("op", op).
		Str("query", query).
		Int("args", len(args)).
		Dur("duration", elapsed).
		Err(err).
		Msg("sql")
}
