package game

import (
	"ipdetective/internal/models"
)

// PointsPerQuestion is awarded for each correctly answered quiz question.
const PointsPerQuestion = 10

// QuizSession is the linear restriction of the investigation pattern: an
// index into a fixed question sequence, one committed answer per step and
// immediate feedback.
type QuizSession struct {
	Index           int
	Score           int
	SelectedAnswer  string
	ShowExplanation bool
	Completed       bool
}

func NewQuizSession() *QuizSession {
	return &QuizSession{}
}

// Answer commits the player's choice for the current question. The first
// answer is final: later picks are ignored until Next. Any valid answer
// reveals the explanation; only the correct one scores. An option id not on
// the question is a no-op.
func (q *QuizSession) Answer(question models.Question, optionID string) {
	if q.ShowExplanation || q.Completed {
		return
	}
	valid := false
	for _, option := range question.Options {
		if option.ID == optionID {
			valid = true
			break
		}
	}
	if !valid {
		return
	}

	q.SelectedAnswer = optionID
	q.ShowExplanation = true
	if optionID == question.CorrectAnswer {
		q.Score += PointsPerQuestion
	}
}

// Next advances to the following question, or completes the quiz on the last
// one. It only applies after the current question was answered.
func (q *QuizSession) Next(totalQuestions int) {
	if !q.ShowExplanation || q.Completed {
		return
	}
	if q.Index >= totalQuestions-1 {
		q.Completed = true
		return
	}
	q.Index++
	q.SelectedAnswer = ""
	q.ShowExplanation = false
}

// Reset restores the fresh-quiz defaults.
func (q *QuizSession) Reset() {
	*q = QuizSession{}
}
