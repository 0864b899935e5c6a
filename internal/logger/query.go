package logger

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/uptrace/bun"
)

// QueryHook forwards every bun query to LogQuery.
type QueryHook struct{}

var _ bun.QueryHook = (*QueryHook)(nil)

func NewQueryHook() *QueryHook {
	return &QueryHook{}
}

func (h *QueryHook) BeforeQuery(ctx context.Context, _ *bun.QueryEvent) context.Context {
	return ctx
}

func (h *QueryHook) AfterQuery(_ context.Context, event *bun.QueryEvent) {
	var rowsAffected int64
	if event.Result != nil {
		rowsAffected, _ = event.Result.RowsAffected()
	}

	// a miss is reported to the caller, not logged as a failure
	err := event.Err
	if errors.Is(err, sql.ErrNoRows) {
		err = nil
	}

	LogQuery(event.Operation(), event.Query, time.Since(event.StartTime), rowsAffected, err)
}
