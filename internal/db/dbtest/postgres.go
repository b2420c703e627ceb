// Package dbtest starts a throwaway Postgres in docker for repository
// integration tests. Tests using it are behind the integration_test build tag.
package dbtest

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/2beens/gymanalytics/internal/db"

	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/lib/pq"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	log "github.com/sirupsen/logrus"
	"go.uber.org/goleak"
)

const testDBName = "gymstats_test"

type Postgres struct {
	Pool *pgxpool.Pool
	DSN  string

	dockerPool *dockertest.Pool
	resource   *dockertest.Resource
}

// StartPostgres runs a postgres container, waits for it to accept connections
// and applies all migrations.
func StartPostgres(ctx context.Context) (_ *Postgres, err error) {
	// uses a sensible default on windows (tcp/http) and linux/osx (socket)
	dockerPool, err := dockertest.NewPool("")
	if err != nil {
		return nil, fmt.Errorf("create dockertest pool: %w", err)
	}
	if err := dockerPool.Client.Ping(); err != nil {
		return nil, fmt.Errorf("ping docker: %w", err)
	}
	dockerPool.MaxWait = 2 * time.Minute

	resource, err := dockerPool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "16",
		Env: []string{
			"POSTGRES_USER=postgres",
			"POSTGRES_HOST_AUTH_METHOD=trust",
			"POSTGRES_DB=" + testDBName,
		},
	}, func(config *docker.HostConfig) {
		config.AutoRemove = true
		config.RestartPolicy = docker.RestartPolicy{
			Name: "no",
		}
	})
	if err != nil {
		return nil, fmt.Errorf("run postgres: %w", err)
	}

	pg := &Postgres{
		DSN:        db.DSN("localhost", resource.GetPort("5432/tcp"), testDBName),
		dockerPool: dockerPool,
		resource:   resource,
	}
	defer func() {
		if err != nil {
			pg.Close()
		}
	}()

	if err := dockerPool.Retry(func() error {
		conn, err := sql.Open("postgres", pg.DSN)
		if err != nil {
			return err
		}
		defer conn.Close()
		return conn.Ping()
	}); err != nil {
		return nil, fmt.Errorf("wait for postgres: %w", err)
	}

	if err := db.Migrate(pg.DSN); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}

	pg.Pool, err = pgxpool.New(ctx, pg.DSN)
	if err != nil {
		return nil, fmt.Errorf("create pool: %w", err)
	}

	return pg, nil
}

// Reset empties all tables, keeping the schema.
func (p *Postgres) Reset(ctx context.Context) error {
	_, err := p.Pool.Exec(ctx, `
		TRUNCATE exercise_definition, workout_session, session_exercise,
			personal_record, pr_processed_session, analysis_document
	`)
	if err != nil {
		return fmt.Errorf("truncate tables: %w", err)
	}
	return nil
}

func (p *Postgres) Close() {
	if p.Pool != nil {
		p.Pool.Close()
	}
	if p.resource != nil {
		if err := p.dockerPool.Purge(p.resource); err != nil {
			log.Errorf("purge postgres container: %s", err)
		}
	}
}

// LeakOptions lists goroutines the docker client leaves behind, for packages
// that run goleak alongside integration tests.
func LeakOptions() []goleak.Option {
	return []goleak.Option{
		goleak.IgnoreTopFunction("internal/poll.runtime_pollWait"),
		goleak.IgnoreTopFunction("net/http.(*persistConn).writeLoop"),
		goleak.IgnoreAnyFunction("net/http.(*persistConn).readLoop"),
	}
}
