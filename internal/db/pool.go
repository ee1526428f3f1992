package db

import (
	"context"
	_ "embed"
	"fmt"
	"net"
	"net/url"

	"github.com/exaring/otelpgx"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Schema creates every table the repos need. Statements are idempotent.
//
//go:embed schema.sql
var Schema string

type NewDBPoolParams struct {
	DBHost         string
	DBPort         string
	DBName         string
	DBUser         string
	DBPassword     string
	TracingEnabled bool
}

func ConnString(params NewDBPoolParams) string {
	user := params.DBUser
	if user == "" {
		user = "postgres"
	}

	connURL := url.URL{
		Scheme: "postgres",
		User:   url.User(user),
		Host:   net.JoinHostPort(params.DBHost, params.DBPort),
		Path:   "/" + params.DBName,
	}
	if params.DBPassword != "" {
		connURL.User = url.UserPassword(user, params.DBPassword)
	}

	return connURL.String()
}

func NewDBPool(ctx context.Context, params NewDBPoolParams) (*pgxpool.Pool, error) {
	poolConfig, err := pgxpool.ParseConfig(ConnString(params))
	if err != nil {
		return nil, fmt.Errorf("parse db config: %w", err)
	}

	if params.TracingEnabled {
		poolConfig.ConnConfig.Tracer = otelpgx.NewTracer()
	}

	db, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("create connection pool: %w", err)
	}

	return db, nil
}

// ApplySchema runs the embedded schema against the pool.
func ApplySchema(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, Schema); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	return nil
}
