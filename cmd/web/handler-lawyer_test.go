package main

import (
	"context"
	"net/url"
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_application_lawyer(t *testing.T) {
	ctx := context.Background()
	server := startTestServer(t)
	client := server.Client()

	doc, err := client.GetDoc(ctx, "/lawyer")
	require.NoError(t, err)
	require.Contains(t, doc.Text(), "Take a Case")
	require.Contains(t, doc.Text(), "The Stolen Blog Post")
	require.Contains(t, doc.Find(".scoreboard").Text(), "Reputation: 100")

	doc, err = client.SubmitForm(ctx, "/lawyer", "/lawyer/select-case", url.Values{
		"case_id": {"stolen-blog"},
	})
	require.NoError(t, err)
	require.Contains(t, doc.Text(), "Sarah Chen")
	require.Contains(t, doc.Text(), "Negotiate for Credit and Compensation")

	// Committing to the winning strategy resolves the case.
	doc, err = client.SubmitForm(ctx, "/lawyer", "/lawyer/option", url.Values{
		"option_id": {"negotiate"},
	})
	require.NoError(t, err)
	require.Contains(t, doc.Find(".outcome").Text(), "The website agreed to add proper attribution")
	require.Contains(t, doc.Find(".scoreboard").Text(), "Cases won: 1")
	require.Contains(t, doc.Find(".scoreboard").Text(), "Reputation: 100")

	doc, err = client.SubmitForm(ctx, "/lawyer", "/lawyer/reset", url.Values{})
	require.NoError(t, err)
	require.Contains(t, doc.Text(), "Take a Case")
	require.Contains(t, doc.Find(".scoreboard").Text(), "Cases won: 0")
}
