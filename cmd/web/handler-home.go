package main

import (
	"net/http"

	"ipdetective/internal/errors"
	"ipdetective/internal/models"
)

type homeTemplateData struct {
	BaseTemplateData

	Cases      []models.Case
	LegalCases []models.LegalCase
}

func (app *application) home(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	cases, err := app.content.ListCases(ctx)
	if err != nil {
		app.serverError(w, r, errors.Wrap(err, "list cases"))
		return
	}
	legalCases, err := app.content.ListLegalCases(ctx)
	if err != nil {
		app.serverError(w, r, errors.Wrap(err, "list legal cases"))
		return
	}

	data := homeTemplateData{
		BaseTemplateData: newBaseTemplateData(r),
		Cases:            cases,
		LegalCases:       legalCases,
	}

	app.render(w, r, http.StatusOK, "home", data)
}
