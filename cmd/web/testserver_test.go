package main

import (
	"context"
	"io"
	"testing"

	"ipdetective/internal/e2etest"

	"github.com/stretchr/testify/require"
)

func testLookupEnv(key string) (string, bool) {
	switch key {
	case "IPDETECTIVE_ADDR":
		return "localhost:0", true
	case "IPDETECTIVE_SQLITE_URL":
		// In-memory database keeps the tests isolated and fast.
		return ":memory:", true
	default:
		return "", false
	}
}

// startTestServer starts the application on a dynamically allocated port and
// returns a handle for driving it over HTTP.
func startTestServer(t *testing.T) *e2etest.Server {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	server, err := e2etest.StartServer(ctx, io.Discard, testLookupEnv, run)
	require.NoError(t, err)
	return server
}
