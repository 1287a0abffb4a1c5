package main

import (
	"encoding/json"
	"net/http"
	"strings"

	"ipdetective/internal/errors"
	"ipdetective/internal/fairuse"
)

// maxAnalyzeBody bounds the analyze request payload.
const maxAnalyzeBody = 10 << 10 // 10kb

const maxDescriptionLength = 1000

type fairUseRequest struct {
	ContentType string `json:"content_type"`
	IntendedUse string `json:"intended_use"`
	Description string `json:"description"`
}

type fieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type validationErrorResponse struct {
	Errors []fieldError `json:"errors"`
}

type fairUseResponse struct {
	fairuse.Analysis

	Disclaimer string `json:"disclaimer"`
}

type rightsResponse struct {
	fairuse.Rights

	Disclaimer string `json:"disclaimer"`
}

func (app *application) fairUseAnalyze(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxAnalyzeBody)

	var req fairUseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		app.writeJSON(w, r, http.StatusBadRequest, validationErrorResponse{
			Errors: []fieldError{{Field: "body", Message: "invalid JSON payload"}},
		})
		return
	}

	req.ContentType = strings.TrimSpace(req.ContentType)
	req.IntendedUse = strings.TrimSpace(req.IntendedUse)
	req.Description = strings.TrimSpace(req.Description)

	var fieldErrors []fieldError
	if req.ContentType == "" {
		fieldErrors = append(fieldErrors, fieldError{Field: "content_type", Message: "must not be empty"})
	}
	if req.IntendedUse == "" {
		fieldErrors = append(fieldErrors, fieldError{Field: "intended_use", Message: "must not be empty"})
	}
	if req.Description == "" {
		fieldErrors = append(fieldErrors, fieldError{Field: "description", Message: "must not be empty"})
	} else if len(req.Description) > maxDescriptionLength {
		fieldErrors = append(fieldErrors, fieldError{Field: "description", Message: "must be at most 1000 characters"})
	}
	if len(fieldErrors) > 0 {
		app.writeJSON(w, r, http.StatusBadRequest, validationErrorResponse{Errors: fieldErrors})
		return
	}

	analysis, err := fairuse.Analyze(req.ContentType, req.IntendedUse, req.Description)
	if err != nil {
		if errors.Is(err, fairuse.ErrUnknownContentType) {
			app.writeJSON(w, r, http.StatusBadRequest, validationErrorResponse{
				Errors: []fieldError{{Field: "content_type", Message: "unknown content type"}},
			})
			return
		}
		app.serverError(w, r, errors.Wrap(err, "analyze fair use"))
		return
	}

	app.writeJSON(w, r, http.StatusOK, fairUseResponse{
		Analysis:   analysis,
		Disclaimer: fairuse.AnalysisDisclaimer,
	})
}

func (app *application) rightsCheck(w http.ResponseWriter, r *http.Request) {
	contentType := strings.TrimSpace(r.URL.Query().Get("content_type"))
	if contentType == "" {
		app.writeJSON(w, r, http.StatusBadRequest, validationErrorResponse{
			Errors: []fieldError{{Field: "content_type", Message: "must not be empty"}},
		})
		return
	}

	app.writeJSON(w, r, http.StatusOK, rightsResponse{
		Rights:     fairuse.RightsInfo(contentType),
		Disclaimer: fairuse.RightsDisclaimer,
	})
}
