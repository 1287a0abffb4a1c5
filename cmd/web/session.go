package main

import (
	"encoding/gob"
	"net/http"

	"ipdetective/internal/game"
)

// Session keys for the scs-managed player state. The values are gob-encoded
// into the SQLite session store.
const (
	gameSessionKey   = "gameSession"
	quizSessionKey   = "quizSession"
	lawyerSessionKey = "lawyerSession"
	flashKey         = "flash"
)

func init() {
	gob.Register(game.Session{})
	gob.Register(game.QuizSession{})
	gob.Register(game.LawyerSession{})
}

func (app *application) gameSession(r *http.Request) *game.Session {
	if s, ok := app.sessionManager.Get(r.Context(), gameSessionKey).(game.Session); ok {
		return &s
	}
	return game.NewSession()
}

func (app *application) putGameSession(r *http.Request, s *game.Session) {
	app.sessionManager.Put(r.Context(), gameSessionKey, *s)
}

func (app *application) quizSession(r *http.Request) *game.QuizSession {
	if s, ok := app.sessionManager.Get(r.Context(), quizSessionKey).(game.QuizSession); ok {
		return &s
	}
	return game.NewQuizSession()
}

func (app *application) putQuizSession(r *http.Request, s *game.QuizSession) {
	app.sessionManager.Put(r.Context(), quizSessionKey, *s)
}

func (app *application) lawyerSession(r *http.Request) *game.LawyerSession {
	if s, ok := app.sessionManager.Get(r.Context(), lawyerSessionKey).(game.LawyerSession); ok {
		return &s
	}
	return game.NewLawyerSession()
}

func (app *application) putLawyerSession(r *http.Request, s *game.LawyerSession) {
	app.sessionManager.Put(r.Context(), lawyerSessionKey, *s)
}
