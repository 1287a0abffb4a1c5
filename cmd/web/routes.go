package main

import (
	"net/http"

	"ipdetective/ui"

	"github.com/justinas/alice"
)

func (app *application) routes() http.Handler {
	mux := http.NewServeMux()

	fileServer := http.FileServerFS(ui.Files)
	mux.Handle("GET /static/", cacheForeverHeaders(fileServer))

	session := alice.New(app.sessionManager.LoadAndSave, noSurf, app.commonContext)

	mux.Handle("GET /{$}", session.ThenFunc(app.home))

	mux.Handle("GET /game", session.ThenFunc(app.game))
	mux.Handle("POST /game/select-case", session.ThenFunc(app.gameSelectCase))
	mux.Handle("POST /game/tab", session.ThenFunc(app.gameSetTab))
	mux.Handle("POST /game/proceed", session.ThenFunc(app.gameProceed))
	mux.Handle("POST /game/dialogue", session.ThenFunc(app.gameDialogue))
	mux.Handle("POST /game/highlighting", session.ThenFunc(app.gameToggleHighlighting))
	mux.Handle("POST /game/highlight", session.ThenFunc(app.gamePlaceHighlight))
	mux.Handle("POST /game/option", session.ThenFunc(app.gameChooseOption))
	mux.Handle("POST /game/reason", session.ThenFunc(app.gameChooseReason))
	mux.Handle("POST /game/submit", session.ThenFunc(app.gameSubmitVerdict))

	mux.Handle("GET /quiz", session.ThenFunc(app.quiz))
	mux.Handle("POST /quiz/answer", session.ThenFunc(app.quizAnswer))
	mux.Handle("POST /quiz/next", session.ThenFunc(app.quizNext))
	mux.Handle("POST /quiz/reset", session.ThenFunc(app.quizReset))

	mux.Handle("GET /lawyer", session.ThenFunc(app.lawyer))
	mux.Handle("POST /lawyer/select-case", session.ThenFunc(app.lawyerSelectCase))
	mux.Handle("POST /lawyer/option", session.ThenFunc(app.lawyerChooseOption))
	mux.Handle("POST /lawyer/reset", session.ThenFunc(app.lawyerReset))

	// The advisory API is stateless and unauthenticated, so it is guarded by
	// the rate limiter instead of the session middleware.
	api := alice.New(app.rateLimit)
	mux.Handle("POST /api/fair-use/analyze", api.ThenFunc(app.fairUseAnalyze))
	mux.Handle("GET /api/rights/check", api.ThenFunc(app.rightsCheck))
	mux.HandleFunc("GET /api/health", app.health)

	return app.recoverPanic(app.logRequest(app.disclaimerHeader(secureHeaders(mux))))
}
