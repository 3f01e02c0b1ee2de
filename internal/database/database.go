// Wisata - Tourism Place Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wisata

// Package database reads tabular artifacts through an embedded, in-memory
// DuckDB instance. Nothing is persisted: the connection exists only long
// enough to scan the place metadata CSV during startup.
package database

import (
	"context"
	"database/sql"
	"fmt"
	"runtime"
	"time"

	_ "github.com/duckdb/duckdb-go/v2"

	"github.com/tomtom215/wisata/internal/logging"
)

// memoryDSN opens a private in-memory database. Extension autoloading is
// disabled so startup never reaches for the network.
const memoryDSN = ":memory:?autoinstall_known_extensions=false&autoload_known_extensions=false"

const pingTimeout = 5 * time.Second

// DB wraps a DuckDB connection.
type DB struct {
	conn *sql.DB
}

// Open creates an in-memory DuckDB connection.
func Open(ctx context.Context) (*DB, error) {
	conn, err := sql.Open("duckdb", memoryDSN)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Every connection of an in-memory pool is its own database; a single
	// connection keeps reads consistent.
	conn.SetMaxOpenConns(1)
	conn.SetMaxIdleConns(1)

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := conn.PingContext(pingCtx); err != nil {
		closeQuietly(conn)
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if _, err := conn.ExecContext(ctx, fmt.Sprintf("SET threads TO %d", runtime.NumCPU())); err != nil {
		logging.Debug().Err(err).Msg("Could not set DuckDB thread count")
	}

	return &DB{conn: conn}, nil
}

// Close releases the connection.
func (db *DB) Close() error {
	if db.conn == nil {
		return nil
	}
	err := db.conn.Close()
	db.conn = nil
	return err
}
