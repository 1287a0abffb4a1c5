package models

// Question is a single multiple-choice quiz question with one correct answer.
type Question struct {
	ID            string
	Category      string
	Text          string
	Options       []QuestionOption
	CorrectAnswer string
	Explanation   string
}

type QuestionOption struct {
	ID   string
	Text string
}
