package repository

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"fmt"
	"log/slog"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"modernc.org/sqlite"

	"github.com/campdesk/slip-ingest/gen/ent"
)

// sqlite3Driver adapts modernc.org/sqlite to the "sqlite3" driver name Ent expects,
// enabling foreign keys on every connection.
type sqlite3Driver struct {
	*sqlite.Driver
}

func (d sqlite3Driver) Open(name string) (driver.Conn, error) {
	conn, err := d.Driver.Open(name)
	if err != nil {
		return conn, err
	}
	c := conn.(interface {
		Exec(stmt string, args []driver.Value) (driver.Result, error)
	})
	if _, err := c.Exec("PRAGMA foreign_keys = ON;", nil); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("enable foreign keys: %w", err)
	}
	return conn, nil
}

func init() {
	sql.Register("sqlite3", sqlite3Driver{Driver: &sqlite.Driver{}})
}

// OpenSQLite opens an embedded SQLite database (used by the slip-batch CLI's
// --inmem mode) and runs schema migration.
func OpenSQLite(ctx context.Context, dsn string, logger *slog.Logger) (*ent.Client, error) {
	if dsn == "" {
		dsn = "file:slips?mode=memory&cache=shared&_fk=1"
	}
	drv, err := entsql.Open(dialect.SQLite, dsn)
	if err != nil {
		logger.Error("failed to open sqlite database", "error", err)
		return nil, err
	}
	client := ent.NewClient(ent.Driver(drv))
	if err := client.Schema.Create(ctx); err != nil {
		_ = client.Close()
		logger.Error("failed to migrate sqlite schema", "error", err)
		return nil, err
	}
	logger.Info("opened embedded sqlite database")
	return client, nil
}
