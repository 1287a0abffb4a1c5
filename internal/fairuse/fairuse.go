// Package fairuse implements the advisory scoring service: a stateless
// heuristic over small fixed lookup tables. It produces general information,
// not legal advice, which is why every response carries a disclaimer.
package fairuse

import (
	"fmt"
	"ipdetective/internal/errors"
	"strings"
)

// ErrUnknownContentType is returned by Analyze when the content type has no
// weight in the lookup table. Intended uses fall back to a neutral weight,
// content types must be validated by the caller.
var ErrUnknownContentType = errors.NewSentinel("unknown content type")

// HeaderDisclaimer is attached to every HTTP response as the
// X-Legal-Disclaimer header.
const HeaderDisclaimer = "This service provides general information about fair use and copyright. " +
	"It is not legal advice. Consult a qualified attorney for specific guidance."

// AnalysisDisclaimer is embedded in fair-use analysis payloads.
const AnalysisDisclaimer = "This analysis is for informational purposes only " +
	"and should not be considered legal advice."

// RightsDisclaimer is embedded in rights-check payloads.
const RightsDisclaimer = "This information is general in nature and should not be considered legal advice."

const fairUseThreshold = 0.5

// defaultUseWeight applies when the intended use is not in the table.
const defaultUseWeight = 0.5

var useWeights = map[string]float64{
	"educational":   0.8,
	"commentary":    0.7,
	"criticism":     0.7,
	"research":      0.8,
	"commercial":    0.3,
	"entertainment": 0.4,
}

var contentWeights = map[string]float64{
	"image":    0.7,
	"text":     0.8,
	"music":    0.5,
	"video":    0.6,
	"software": 0.4,
}

// Analysis is the fair-use opinion for one content-type/intended-use pair.
type Analysis struct {
	IsFairUse       bool     `json:"is_fair_use"`
	Explanation     string   `json:"explanation"`
	Recommendations []string `json:"recommendations"`
}

// Analyze scores an intended use of a content type against the weight tables.
// The description is collected for the record but does not influence the
// heuristic. Unknown content types return ErrUnknownContentType.
func Analyze(contentType, intendedUse, _ string) (Analysis, error) {
	contentWeight, ok := contentWeights[strings.ToLower(contentType)]
	if !ok {
		return Analysis{}, errors.Wrap(ErrUnknownContentType, "look up content weight")
	}

	useWeight, ok := useWeights[strings.ToLower(intendedUse)]
	if !ok {
		useWeight = defaultUseWeight
	}

	isFairUse := useWeight*contentWeight > fairUseThreshold

	explanation := fmt.Sprintf(
		"Based on your intended %s use of this %s, this likely qualifies as fair use.",
		intendedUse, contentType)
	if !isFairUse {
		explanation = "This use case may not qualify as fair use. Consider obtaining permission."
	}

	return Analysis{
		IsFairUse:   isFairUse,
		Explanation: explanation,
		Recommendations: []string{
			"Always attribute the original work",
			"Use only the portion necessary for your purpose",
			"Consider whether your use could affect the market for the original work",
			"Document your fair use analysis",
		},
	}, nil
}

// Rights describes what a content type's copyright generally restricts and allows.
type Rights struct {
	Info         string   `json:"rights_info"`
	Restrictions []string `json:"common_restrictions"`
	Allowed      []string `json:"allowed_uses"`
}

var rightsTable = map[string]Rights{
	"image": {
		Info: "Images are protected by copyright as soon as they are created.",
		Restrictions: []string{
			"Cannot be used commercially without permission",
			"Modifications may require permission",
			"Must attribute the creator when required",
		},
		Allowed: []string{
			"Fair use for education",
			"Personal, non-commercial use",
			"Commentary and criticism",
			"News reporting",
		},
	},
	"text": {
		Info: "Written works are protected by copyright from the moment of creation.",
		Restrictions: []string{
			"Cannot be reproduced without permission",
			"Cannot be distributed commercially",
			"Translations may require permission",
		},
		Allowed: []string{
			"Quoting small portions with attribution",
			"Academic use with citation",
			"Review and criticism",
			"Personal reference",
		},
	},
	"music": {
		Info: "Music has multiple copyright layers including composition and recording.",
		Restrictions: []string{
			"No public performance without license",
			"No commercial use without permission",
			"No unauthorized sampling",
		},
		Allowed: []string{
			"Personal listening",
			"Academic analysis",
			"Short quotes for criticism",
			"Classroom use",
		},
	},
	"video": {
		Info: "Videos are protected by multiple copyright elements including visual and audio.",
		Restrictions: []string{
			"No public screening without license",
			"No redistribution without permission",
			"No commercial use without rights",
		},
		Allowed: []string{
			"Personal viewing",
			"Educational use",
			"Critical review",
			"News reporting",
		},
	},
	"software": {
		Info: "Software is protected by copyright and often additional licenses.",
		Restrictions: []string{
			"No unauthorized distribution",
			"No modification without permission",
			"License terms must be followed",
		},
		Allowed: []string{
			"Personal use as licensed",
			"Backup copies",
			"Study and research",
			"Fair use analysis",
		},
	},
}

var unknownRights = Rights{
	Info:         "Content type not recognized",
	Restrictions: []string{"Please specify a valid content type"},
	Allowed:      []string{"Please specify a valid content type"},
}

// RightsInfo returns the rights record for a content type, or the explicit
// unrecognized-type fallback record.
func RightsInfo(contentType string) Rights {
	if rights, ok := rightsTable[strings.ToLower(contentType)]; ok {
		return rights
	}
	return unknownRights
}
