package database

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// PoolConfig holds the configuration for the database connection pool.
type PoolConfig struct {
	Host              string
	Port              int
	User              string
	Password          string
	Database          string
	SSLMode           string
	MaxConns          int32
	MinConns          int32
	MaxConnLifetime   time.Duration
	MaxConnIdleTime   time.Duration
	HealthCheckPeriod time.Duration
}

// URL returns the connection string in URL form, as accepted by both pgx and golang-migrate.
func (c PoolConfig) URL() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     fmt.Sprintf("%s:%d", c.Host, c.Port),
		Path:     "/" + c.Database,
		RawQuery: url.Values{"sslmode": []string{c.SSLMode}}.Encode(),
	}
	return u.String()
}

// NewPostgres creates a new PostgreSQL connection pool.
func NewPostgres(ctx context.Context, cfg PoolConfig) (*pgxpool.Pool, error) {
	poolConfig, err := pgxpool.ParseConfig(cfg.URL())
	if err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	poolConfig.MaxConns = cfg.MaxConns
	poolConfig.MinConns = cfg.MinConns
	poolConfig.MaxConnLifetime = cfg.MaxConnLifetime
	poolConfig.MaxConnIdleTime = cfg.MaxConnIdleTime
	poolConfig.HealthCheckPeriod = cfg.HealthCheckPeriod

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("create pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return pool, nil
}

// SchemaCheck reports whether the database is reachable and migrated.
type SchemaCheck struct {
	pool *pgxpool.Pool
}

// NewSchemaCheck creates a SchemaCheck over pool.
func NewSchemaCheck(pool *pgxpool.Pool) *SchemaCheck {
	return &SchemaCheck{pool: pool}
}

// Ping fails when the database is unreachable or the articles table is missing.
func (c *SchemaCheck) Ping(ctx context.Context) error {
	var migrated bool
	if err := c.pool.QueryRow(ctx, `SELECT to_regclass('public.articles') IS NOT NULL`).Scan(&migrated); err != nil {
		return fmt.Errorf("query database: %w", err)
	}
	if !migrated {
		return errors.New("articles table missing, run migrations")
	}
	return nil
}
