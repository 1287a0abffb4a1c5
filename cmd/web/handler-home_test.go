package main

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_application_home(t *testing.T) {
	ctx := context.Background()
	server := startTestServer(t)
	client := server.Client()

	doc, err := client.GetDoc(ctx, "/")
	require.NoError(t, err)

	require.Contains(t, doc.Find("h1").Text(), "IP Detective")
	require.Equal(t, 1, doc.Find("a:contains('Alice vs. Bob - Copyright Violation')").Length())
	require.Equal(t, 1, doc.Find("a:contains('The Stolen Blog Post')").Length())
	require.Equal(t, 1, doc.Find("a:contains('The Student vs. Publishing House')").Length())
	require.Contains(t, doc.Text(), "Sarah Chen")
}
