// Package pgtest starts a throwaway Postgres container for integration tests.
package pgtest

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/docker/go-connections/nat"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	image    = "postgres:16"
	database = "careeragent"
	user     = "agent"
	password = "agent"
)

// Start launches a Postgres container and returns a connection string. The
// container is terminated via t.Cleanup. Tests are skipped in -short mode.
func Start(t *testing.T) string {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping container-backed test in short mode")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	req := testcontainers.ContainerRequest{
		Image:        image,
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_DB":       database,
			"POSTGRES_USER":     user,
			"POSTGRES_PASSWORD": password,
		},
		WaitingFor: wait.ForAll(
			wait.ForListeningPort("5432/tcp"),
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2),
		),
	}

	tc, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		t.Fatalf("pgtest: start container: %v", err)
	}
	t.Cleanup(func() {
		tc.Terminate(context.Background()) //nolint:errcheck
	})

	host, err := tc.Host(ctx)
	if err != nil {
		t.Fatalf("pgtest: resolve host: %v", err)
	}
	port, err := tc.MappedPort(ctx, nat.Port("5432/tcp"))
	if err != nil {
		t.Fatalf("pgtest: resolve mapped port: %v", err)
	}

	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		user, password, host, port.Port(), database)
}
