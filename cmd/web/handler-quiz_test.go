package main

import (
	"context"
	"net/url"
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_application_quiz(t *testing.T) {
	ctx := context.Background()
	server := startTestServer(t)
	client := server.Client()

	doc, err := client.GetDoc(ctx, "/quiz")
	require.NoError(t, err)
	require.Contains(t, doc.Text(), "Question 1 of 10")
	require.Contains(t, doc.Text(), "Can You Copyright a Recipe?")
	require.Contains(t, doc.Find(".scoreboard").Text(), "Score: 0")

	// A correct answer scores and reveals the explanation.
	doc, err = client.SubmitForm(ctx, "/quiz", "/quiz/answer", url.Values{
		"option": {"B"},
	})
	require.NoError(t, err)
	require.Contains(t, doc.Find(".verdict").Text(), "Correct!")
	require.Contains(t, doc.Text(), "Copyright protects creative expression")
	require.Contains(t, doc.Find(".scoreboard").Text(), "Score: 10")

	doc, err = client.SubmitForm(ctx, "/quiz", "/quiz/next", url.Values{})
	require.NoError(t, err)
	require.Contains(t, doc.Text(), "Question 2 of 10")
	require.Contains(t, doc.Find(".scoreboard").Text(), "Score: 10")

	// Resetting starts over from the first question.
	doc, err = client.SubmitForm(ctx, "/quiz", "/quiz/reset", url.Values{})
	require.NoError(t, err)
	require.Contains(t, doc.Text(), "Question 1 of 10")
	require.Contains(t, doc.Find(".scoreboard").Text(), "Score: 0")
}
