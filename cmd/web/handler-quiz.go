package main

import (
	"net/http"

	"ipdetective/internal/errors"
	"ipdetective/internal/game"
	"ipdetective/internal/models"
)

type quizTemplateData struct {
	BaseTemplateData

	Session  game.QuizSession
	Question models.Question
	Total    int
}

func (app *application) quizTemplateData(r *http.Request) (quizTemplateData, error) {
	questions, err := app.content.ListQuestions(r.Context())
	if err != nil {
		return quizTemplateData{}, errors.Wrap(err, "list questions")
	}
	s := app.quizSession(r)

	data := quizTemplateData{
		BaseTemplateData: newBaseTemplateData(r),
		Session:          *s,
		Total:            len(questions),
	}
	if s.Index < len(questions) {
		data.Question = questions[s.Index]
	}
	return data, nil
}

func (app *application) quiz(w http.ResponseWriter, r *http.Request) {
	data, err := app.quizTemplateData(r)
	if err != nil {
		app.serverError(w, r, err)
		return
	}
	app.render(w, r, http.StatusOK, "quiz", data)
}

func (app *application) quizRespond(w http.ResponseWriter, r *http.Request) {
	h := app.htmx.NewHandler(w, r)
	if h.IsHxRequest() {
		data, err := app.quizTemplateData(r)
		if err != nil {
			app.serverError(w, r, err)
			return
		}
		app.renderPartial(w, r, "quiz", "quiz-main", data)
		return
	}
	http.Redirect(w, r, "/quiz", http.StatusSeeOther)
}

func (app *application) quizAnswer(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		app.clientError(w, r, http.StatusBadRequest)
		return
	}
	questions, err := app.content.ListQuestions(r.Context())
	if err != nil {
		app.serverError(w, r, errors.Wrap(err, "list questions"))
		return
	}
	s := app.quizSession(r)
	if s.Index < len(questions) {
		s.Answer(questions[s.Index], r.PostForm.Get("option"))
	}
	app.putQuizSession(r, s)
	app.quizRespond(w, r)
}

func (app *application) quizNext(w http.ResponseWriter, r *http.Request) {
	questions, err := app.content.ListQuestions(r.Context())
	if err != nil {
		app.serverError(w, r, errors.Wrap(err, "list questions"))
		return
	}
	s := app.quizSession(r)
	s.Next(len(questions))
	app.putQuizSession(r, s)
	app.quizRespond(w, r)
}

func (app *application) quizReset(w http.ResponseWriter, r *http.Request) {
	s := app.quizSession(r)
	s.Reset()
	app.putQuizSession(r, s)
	app.quizRespond(w, r)
}
