package sql

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/syssam/pgmodel/dialect"
)

// ExecQuerier wraps the standard Exec and Query methods. It is implemented
// by *sql.DB, *sql.Tx, *sql.Conn, Driver and Tx.
type ExecQuerier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

// Conn binds an ExecQuerier to the driver it was opened with.
type Conn struct {
	ExecQuerier
	driver string
}

// Driver is a PostgreSQL connection pool opened through database/sql.
type Driver struct {
	Conn
}

// NewDriver creates a new Driver with the given Conn.
func NewDriver(c Conn) *Driver {
	return &Driver{Conn: c}
}

// Open wraps the database/sql.Open method. driverName is one of
// dialect.Drivers.
func Open(driverName, source string) (*Driver, error) {
	if dialect.Of(driverName) == "" {
		return nil, fmt.Errorf("dialect/sql: unsupported driver %q", driverName)
	}
	db, err := sql.Open(driverName, source)
	if err != nil {
		return nil, err
	}
	return OpenDB(driverName, db), nil
}

// OpenDB wraps the given database/sql.DB with a Driver.
func OpenDB(driverName string, db *sql.DB) *Driver {
	return NewDriver(Conn{db, driverName})
}

// DB returns the underlying *sql.DB instance.
func (d Driver) DB() *sql.DB {
	return d.ExecQuerier.(*sql.DB)
}

// DriverName returns the database/sql driver name.
func (d Driver) DriverName() string { return d.driver }

// Dialect returns the dialect of the driver.
func (d Driver) Dialect() string {
	if name := dialect.Of(d.driver); name != "" {
		return name
	}
	return d.driver
}

// Ping verifies the connection to the database is alive.
func (d *Driver) Ping(ctx context.Context) error {
	return d.DB().PingContext(ctx)
}

// BeginTx starts a transaction with options.
func (d *Driver) BeginTx(ctx context.Context, opts *TxOptions) (*Tx, error) {
	tx, err := d.DB().BeginTx(ctx, opts)
	if err != nil {
		return nil, err
	}
	return &Tx{Tx: tx, driver: d.driver}, nil
}

// Close closes the underlying connection.
func (d *Driver) Close() error { return d.DB().Close() }

// Tx is a transaction started by a Driver.
type Tx struct {
	*sql.Tx
	driver string
}

// TxOptions holds the transaction options to be used in DB.BeginTx.
type TxOptions = sql.TxOptions

var (
	_ ExecQuerier = (*Driver)(nil)
	_ ExecQuerier = (*Tx)(nil)
)
