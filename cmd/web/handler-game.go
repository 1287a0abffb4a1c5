package main

import (
	"html/template"
	"net/http"
	"strconv"

	"ipdetective/internal/errors"
	"ipdetective/internal/game"
	"ipdetective/internal/markup"
	"ipdetective/internal/models"
)

type gameTemplateData struct {
	BaseTemplateData

	Session  game.Session
	Feedback string

	// Cases is populated during case selection.
	Cases []models.Case
	// Case is populated while a case is open.
	Case *caseViewData
}

type caseViewData struct {
	models.Case

	Evidence       []evidenceViewData
	Interviews     []interviewViewData
	SelectedOption *models.DecisionOption
}

type evidenceViewData struct {
	models.Evidence

	Rendered   template.HTML
	Highlights []models.Highlight
	Reviewed   bool
}

type interviewViewData struct {
	models.Interview

	Entry     models.DialogueLine
	Responses []responseViewData
}

type responseViewData struct {
	models.DialogueResponse

	Revealed     bool
	Continuation *models.DialogueLine
}

func (app *application) gameTemplateData(r *http.Request) (gameTemplateData, error) {
	ctx := r.Context()
	s := app.gameSession(r)
	data := gameTemplateData{
		BaseTemplateData: newBaseTemplateData(r),
		Session:          s.Snapshot(),
		Feedback:         app.sessionManager.PopString(ctx, flashKey),
	}

	if s.Phase == game.PhaseSelection {
		cases, err := app.content.ListCases(ctx)
		if err != nil {
			return gameTemplateData{}, errors.Wrap(err, "list cases")
		}
		data.Cases = cases
		return data, nil
	}

	c, err := app.machine.Case(ctx, s.CurrentCase)
	if err != nil {
		return gameTemplateData{}, errors.Wrap(err, "load current case")
	}
	view := caseViewData{Case: c}

	reviewed := map[string]bool{}
	for _, id := range s.ReviewedEvidenceSet() {
		reviewed[id] = true
	}
	for _, evidence := range c.Evidence {
		view.Evidence = append(view.Evidence, evidenceViewData{
			Evidence:   evidence,
			Rendered:   markup.Render(evidence.Content),
			Highlights: s.Highlights[evidence.ID],
			Reviewed:   reviewed[evidence.ID],
		})
	}

	for _, interview := range c.Interviews {
		if len(interview.Dialogue) == 0 {
			continue
		}
		entry := interview.Dialogue[0]
		iv := interviewViewData{Interview: interview, Entry: entry}
		for _, response := range entry.Responses {
			rv := responseViewData{
				DialogueResponse: response,
				Revealed:         s.ResponseRevealed(entry.ID, response.ID),
			}
			if rv.Revealed {
				line, ok, err := app.machine.Continuation(ctx, c.ID, interview.ID, response)
				if err != nil {
					return gameTemplateData{}, errors.Wrap(err, "resolve continuation")
				}
				if ok {
					rv.Continuation = &line
				}
			}
			iv.Responses = append(iv.Responses, rv)
		}
		view.Interviews = append(view.Interviews, iv)
	}

	if s.SelectedOption != "" {
		for i := range c.Options {
			if c.Options[i].ID == s.SelectedOption {
				view.SelectedOption = &c.Options[i]
				break
			}
		}
	}

	data.Case = &view
	return data, nil
}

func (app *application) game(w http.ResponseWriter, r *http.Request) {
	data, err := app.gameTemplateData(r)
	if err != nil {
		app.serverError(w, r, err)
		return
	}
	app.render(w, r, http.StatusOK, "game", data)
}

// gameRespond finishes an intent: htmx requests get the refreshed game
// fragment, plain form posts are redirected back to the game page.
func (app *application) gameRespond(w http.ResponseWriter, r *http.Request) {
	h := app.htmx.NewHandler(w, r)
	if h.IsHxRequest() {
		data, err := app.gameTemplateData(r)
		if err != nil {
			app.serverError(w, r, err)
			return
		}
		app.renderPartial(w, r, "game", "game-main", data)
		return
	}
	http.Redirect(w, r, "/game", http.StatusSeeOther)
}

func (app *application) gameSelectCase(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		app.clientError(w, r, http.StatusBadRequest)
		return
	}
	s := app.gameSession(r)
	if err := app.machine.SelectCase(r.Context(), s, r.PostForm.Get("case_id")); err != nil {
		app.serverError(w, r, err)
		return
	}
	app.putGameSession(r, s)
	app.gameRespond(w, r)
}

func (app *application) gameSetTab(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		app.clientError(w, r, http.StatusBadRequest)
		return
	}
	s := app.gameSession(r)
	app.machine.SetTab(s, game.Tab(r.PostForm.Get("tab")))
	app.putGameSession(r, s)
	app.gameRespond(w, r)
}

func (app *application) gameProceed(w http.ResponseWriter, r *http.Request) {
	s := app.gameSession(r)
	app.machine.ProceedToDecision(s)
	app.putGameSession(r, s)
	app.gameRespond(w, r)
}

func (app *application) gameDialogue(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		app.clientError(w, r, http.StatusBadRequest)
		return
	}
	s := app.gameSession(r)
	err := app.machine.ToggleResponse(r.Context(), s,
		r.PostForm.Get("interview_id"),
		r.PostForm.Get("line_id"),
		r.PostForm.Get("response_id"))
	if err != nil {
		app.serverError(w, r, err)
		return
	}
	app.putGameSession(r, s)
	app.gameRespond(w, r)
}

func (app *application) gameToggleHighlighting(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		app.clientError(w, r, http.StatusBadRequest)
		return
	}
	s := app.gameSession(r)
	s.StageNote(r.PostForm.Get("note"))
	s.ToggleHighlighting()
	app.putGameSession(r, s)
	app.gameRespond(w, r)
}

func (app *application) gamePlaceHighlight(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		app.clientError(w, r, http.StatusBadRequest)
		return
	}

	fields := map[string]float64{}
	for _, name := range []string{"x", "y", "box_left", "box_top", "box_width", "box_height"} {
		value, err := strconv.ParseFloat(r.PostForm.Get(name), 64)
		if err != nil {
			app.clientError(w, r, http.StatusBadRequest)
			return
		}
		fields[name] = value
	}

	s := app.gameSession(r)
	if note := r.PostForm.Get("note"); note != "" {
		s.StageNote(note)
	}
	game.PlaceHighlight(s, r.PostForm.Get("evidence_id"), fields["x"], fields["y"], game.Box{
		Left:   fields["box_left"],
		Top:    fields["box_top"],
		Width:  fields["box_width"],
		Height: fields["box_height"],
	})
	app.putGameSession(r, s)
	app.gameRespond(w, r)
}

func (app *application) gameChooseOption(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		app.clientError(w, r, http.StatusBadRequest)
		return
	}
	s := app.gameSession(r)
	if err := app.machine.ChooseOption(r.Context(), s, r.PostForm.Get("option_id")); err != nil {
		app.serverError(w, r, err)
		return
	}
	app.putGameSession(r, s)
	app.gameRespond(w, r)
}

func (app *application) gameChooseReason(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		app.clientError(w, r, http.StatusBadRequest)
		return
	}
	s := app.gameSession(r)
	app.machine.ChooseReason(s, r.PostForm.Get("reason"))
	app.putGameSession(r, s)
	app.gameRespond(w, r)
}

func (app *application) gameSubmitVerdict(w http.ResponseWriter, r *http.Request) {
	s := app.gameSession(r)
	feedback, ok, err := app.machine.SubmitVerdict(r.Context(), s)
	if err != nil {
		app.serverError(w, r, err)
		return
	}
	if ok {
		app.sessionManager.Put(r.Context(), flashKey, feedback)
	}
	app.putGameSession(r, s)
	app.gameRespond(w, r)
}
