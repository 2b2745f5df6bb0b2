//go:build integration_test || all_tests

package docstore

import (
	"context"
	"database/sql"
	"fmt"
	"testing"
	"time"

	_ "github.com/lib/pq"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/2beens/workouttracker/internal/db"
)

func testPsqlBackendSetup(t *testing.T) *PsqlBackend {
	t.Helper()

	dockerPool, err := dockertest.NewPool("")
	require.NoError(t, err)
	require.NoError(t, dockerPool.Client.Ping())

	pgResource, err := dockerPool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "16",
		Env: []string{
			"POSTGRES_USER=postgres",
			"POSTGRES_DB=workout",
			"POSTGRES_HOST_AUTH_METHOD=trust",
		},
	}, func(config *docker.HostConfig) {
		config.AutoRemove = true
		config.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := dockerPool.Purge(pgResource); err != nil {
			t.Logf("postgres teardown: %s", err)
		}
	})

	params := db.NewDBPoolParams{
		DBHost: "localhost",
		DBPort: pgResource.GetPort("5432/tcp"),
		DBName: "workout",
	}

	// wait until postgres accepts connections
	dockerPool.MaxWait = time.Minute
	require.NoError(t, dockerPool.Retry(func() error {
		sqlDB, err := sql.Open("postgres", db.ConnString(params))
		if err != nil {
			return err
		}
		defer func() {
			_ = sqlDB.Close()
		}()
		return sqlDB.Ping()
	}))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	dbPool, err := db.NewDBPool(ctx, params)
	require.NoError(t, err)
	t.Cleanup(dbPool.Close)

	backend, err := NewPsqlBackend(ctx, dbPool)
	require.NoError(t, err)
	return backend
}

func TestPsqlBackend_GetPut(t *testing.T) {
	backend := testPsqlBackendSetup(t)
	ctx := context.Background()

	_, err := backend.Get(ctx, "menus_GHOST")
	assert.ErrorIs(t, err, ErrDocumentNotFound)

	// key order must survive the round trip
	doc := `{"Push": [], "Pull": [], "Legs": []}`
	require.NoError(t, backend.Put(ctx, "menus_WAKASA", []byte(doc)))
	got, err := backend.Get(ctx, "menus_WAKASA")
	require.NoError(t, err)
	assert.Equal(t, doc, string(got))

	require.NoError(t, backend.Put(ctx, "menus_WAKASA", []byte(`{}`)))
	got, err = backend.Get(ctx, "menus_WAKASA")
	require.NoError(t, err)
	assert.Equal(t, `{}`, string(got))

	for i := 0; i < 3; i++ {
		name := fmt.Sprintf("measurements_USER%d", i)
		require.NoError(t, backend.Put(ctx, name, []byte(`[]`)))
	}
	got, err = backend.Get(ctx, "measurements_USER2")
	require.NoError(t, err)
	assert.Equal(t, `[]`, string(got))

	// a second backend on the same pool must not fail on the existing table
	_, err = NewPsqlBackend(ctx, backend.db)
	require.NoError(t, err)
}
