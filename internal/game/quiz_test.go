package game_test

import (
	"testing"

	"ipdetective/internal/game"
	"ipdetective/internal/models"

	"github.com/stretchr/testify/require"
)

func quizQuestion() models.Question {
	return models.Question{
		ID:       "1",
		Category: "Copyright",
		Text:     "Can You Copyright a Recipe?",
		Options: []models.QuestionOption{
			{ID: "A", Text: "Yes, recipes are automatically protected by copyright."},
			{ID: "B", Text: "No, because copyright does not protect functional things like recipes."},
			{ID: "C", Text: "Yes, but only if they publish it in a book."},
			{ID: "D", Text: "No, unless they patent it."},
		},
		CorrectAnswer: "B",
		Explanation:   "Copyright protects creative expression but not the functional aspect of a recipe.",
	}
}

func TestQuizSession_Answer(t *testing.T) {
	t.Parallel()
	question := quizQuestion()

	t.Run("correct answer scores and reveals explanation", func(t *testing.T) {
		q := game.NewQuizSession()
		q.Answer(question, "B")
		require.Equal(t, game.PointsPerQuestion, q.Score)
		require.Equal(t, "B", q.SelectedAnswer)
		require.True(t, q.ShowExplanation)
	})

	t.Run("wrong answer reveals explanation without scoring", func(t *testing.T) {
		q := game.NewQuizSession()
		q.Answer(question, "A")
		require.Zero(t, q.Score)
		require.Equal(t, "A", q.SelectedAnswer)
		require.True(t, q.ShowExplanation)
	})

	t.Run("unknown option is a no-op", func(t *testing.T) {
		q := game.NewQuizSession()
		q.Answer(question, "Z")
		require.Zero(t, q.Score)
		require.Empty(t, q.SelectedAnswer)
		require.False(t, q.ShowExplanation)
	})

	t.Run("first answer is final", func(t *testing.T) {
		q := game.NewQuizSession()
		q.Answer(question, "A")
		q.Answer(question, "B")
		require.Zero(t, q.Score)
		require.Equal(t, "A", q.SelectedAnswer)
	})
}

func TestQuizSession_Next(t *testing.T) {
	t.Parallel()
	question := quizQuestion()

	t.Run("requires an answered question", func(t *testing.T) {
		q := game.NewQuizSession()
		q.Next(3)
		require.Zero(t, q.Index)
	})

	t.Run("advances and clears per-question state", func(t *testing.T) {
		q := game.NewQuizSession()
		q.Answer(question, "B")
		q.Next(3)
		require.Equal(t, 1, q.Index)
		require.Empty(t, q.SelectedAnswer)
		require.False(t, q.ShowExplanation)
		require.False(t, q.Completed)
		require.Equal(t, game.PointsPerQuestion, q.Score, "score carries over")
	})

	t.Run("completes on the last question", func(t *testing.T) {
		q := game.NewQuizSession()
		q.Answer(question, "B")
		q.Next(1)
		require.True(t, q.Completed)
		require.Zero(t, q.Index)

		q.Answer(question, "B")
		require.Equal(t, game.PointsPerQuestion, q.Score, "a completed quiz takes no answers")
	})
}

func TestQuizSession_Reset(t *testing.T) {
	t.Parallel()
	q := game.NewQuizSession()
	q.Answer(quizQuestion(), "B")
	q.Next(1)
	require.True(t, q.Completed)

	q.Reset()
	require.Equal(t, game.QuizSession{}, *q)
}
