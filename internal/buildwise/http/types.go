package http

import (
	"github.com/buildwise/smart-estimator/internal/buildwise/domain"
	"github.com/buildwise/smart-estimator/internal/buildwise/insights"
	"github.com/buildwise/smart-estimator/internal/buildwise/session"
)

type splitRequest struct {
	Text string `json:"text"`
}

type estimateResponse struct {
	*domain.EstimateResult
	Sections insights.Sections `json:"sections"`
}

type stateResponse struct {
	session.View
	Sections *insights.Sections `json:"sections,omitempty"`
}

func newStateResponse(v session.View) stateResponse {
	resp := stateResponse{View: v}
	if v.Estimate != nil {
		s := insights.Split(v.Estimate.AIInsights)
		resp.Sections = &s
	}
	return resp
}
