package sql

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDebugQuerier(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	var buf bytes.Buffer
	dq := NewDebugQuerier(db, zerolog.New(&buf).Level(zerolog.DebugLevel))

	mock.ExpectQuery("SELECT 1").WillReturnRows(sqlmock.NewRows([]string{"1"}).AddRow(1))
	rows, err := dq.QueryContext(context.Background(), "SELECT 1")
	require.NoError(t, err)
	require.NoError(t, rows.Close())

	mock.ExpectExec("DELETE").WillReturnError(errors.New("boom"))
	_, err = dq.ExecContext(context.Background(), "DELETE FROM t WHERE id = $1", 1)
	require.Error(t, err)
	require.NoError(t, mock.ExpectationsWereMet())

	s := dq.Stats()
	assert.Equal(t, int64(1), s.TotalQueries)
	assert.Equal(t, int64(1), s.TotalExecs)
	assert.Equal(t, int64(1), s.Errors)
	assert.Contains(t, s.String(), "queries=1 execs=1")

	out := buf.String()
	assert.Contains(t, out, `"query":"SELECT 1"`)
	assert.Contains(t, out, `"op":"exec"`)
	assert.Contains(t, out, `"error":"boom"`)
}
