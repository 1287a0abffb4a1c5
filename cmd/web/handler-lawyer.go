package main

import (
	"net/http"

	"ipdetective/internal/errors"
	"ipdetective/internal/game"
	"ipdetective/internal/models"
)

type lawyerTemplateData struct {
	BaseTemplateData

	Session    game.LawyerSession
	LegalCases []models.LegalCase
	// Case is the currently open scenario, nil during case selection.
	Case *models.LegalCase
	// Outcome is the consequence of the committed strategy, nil until then.
	Outcome *models.LegalOption
}

func (app *application) lawyerTemplateData(r *http.Request) (lawyerTemplateData, error) {
	legalCases, err := app.content.ListLegalCases(r.Context())
	if err != nil {
		return lawyerTemplateData{}, errors.Wrap(err, "list legal cases")
	}
	s := app.lawyerSession(r)

	data := lawyerTemplateData{
		BaseTemplateData: newBaseTemplateData(r),
		Session:          *s,
		LegalCases:       legalCases,
	}
	if s.CurrentCase == "" {
		return data, nil
	}
	for i := range legalCases {
		if legalCases[i].ID != s.CurrentCase {
			continue
		}
		data.Case = &legalCases[i]
		for j := range legalCases[i].Options {
			if legalCases[i].Options[j].ID == s.SelectedOption {
				data.Outcome = &legalCases[i].Options[j]
				break
			}
		}
		break
	}
	return data, nil
}

func (app *application) lawyer(w http.ResponseWriter, r *http.Request) {
	data, err := app.lawyerTemplateData(r)
	if err != nil {
		app.serverError(w, r, err)
		return
	}
	app.render(w, r, http.StatusOK, "lawyer", data)
}

func (app *application) lawyerRespond(w http.ResponseWriter, r *http.Request) {
	h := app.htmx.NewHandler(w, r)
	if h.IsHxRequest() {
		data, err := app.lawyerTemplateData(r)
		if err != nil {
			app.serverError(w, r, err)
			return
		}
		app.renderPartial(w, r, "lawyer", "lawyer-main", data)
		return
	}
	http.Redirect(w, r, "/lawyer", http.StatusSeeOther)
}

func (app *application) lawyerSelectCase(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		app.clientError(w, r, http.StatusBadRequest)
		return
	}
	legalCases, err := app.content.ListLegalCases(r.Context())
	if err != nil {
		app.serverError(w, r, errors.Wrap(err, "list legal cases"))
		return
	}
	s := app.lawyerSession(r)
	caseID := r.PostForm.Get("case_id")
	for _, legalCase := range legalCases {
		if legalCase.ID == caseID {
			s.SelectCase(legalCase)
			break
		}
	}
	app.putLawyerSession(r, s)
	app.lawyerRespond(w, r)
}

func (app *application) lawyerChooseOption(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		app.clientError(w, r, http.StatusBadRequest)
		return
	}
	legalCases, err := app.content.ListLegalCases(r.Context())
	if err != nil {
		app.serverError(w, r, errors.Wrap(err, "list legal cases"))
		return
	}
	s := app.lawyerSession(r)
	for _, legalCase := range legalCases {
		if legalCase.ID == s.CurrentCase {
			s.ChooseOption(legalCase, r.PostForm.Get("option_id"))
			break
		}
	}
	app.putLawyerSession(r, s)
	app.lawyerRespond(w, r)
}

func (app *application) lawyerReset(w http.ResponseWriter, r *http.Request) {
	s := app.lawyerSession(r)
	s.Reset()
	app.putLawyerSession(r, s)
	app.lawyerRespond(w, r)
}
