// Package render turns a session view into what the page and the CLI show.
package render

import (
	"bytes"
	"encoding/json"

	"github.com/shopspring/decimal"

	"github.com/buildwise/smart-estimator/internal/buildwise/domain"
	"github.com/buildwise/smart-estimator/internal/buildwise/insights"
	"github.com/buildwise/smart-estimator/internal/buildwise/session"
)

// Fallback texts for the insight sections.
const (
	NoPlanText = "No build plan found in AI insights."
	NoCostText = "Cost structure not explicitly found in AI insights."
)

type Option struct {
	Value    string
	Label    string
	Selected bool
}

type EstimateView struct {
	BaseCost     string
	AdjustedCost string
	Contingency  string
	Total        string
	Insights     insights.Sections
	// PlanText is the plan section, or Other when nothing was split out.
	PlanText string
}

type PlanView struct {
	PlotSizeSqft      string
	BuiltupAreaSqft   string
	Budget            string
	TimeMonths        string
	ElevationStyle    string
	RoomDimensions    string
	RequiredEquipment string
	BlueprintImageURL string
}

// Page is everything the HTML template reads.
type Page struct {
	Form         session.View
	Materials    []Option
	Tiers        []Option
	Estimate     *EstimateView
	Plan         *PlanView
	Notification string
	NoPlanText   string
	NoCostText   string
}

var (
	materialLabels = map[string]string{
		domain.MaterialBasic:    "Basic",
		domain.MaterialStandard: "Standard",
		domain.MaterialPremium:  "Premium",
	}
	tierLabels = map[string]string{
		domain.LocationTier1: "Tier 1",
		domain.LocationTier2: "Tier 2",
		domain.LocationTier3: "Tier 3",
	}
)

func NewPage(v session.View) Page {
	return Page{
		Form:         v,
		Materials:    options(domain.MaterialQualities, materialLabels, v.Form.MaterialQuality),
		Tiers:        options(domain.LocationTiers, tierLabels, v.Form.LocationTier),
		Estimate:     NewEstimateView(v.Estimate),
		Plan:         NewPlanView(v.Plan),
		Notification: v.Notification,
		NoPlanText:   NoPlanText,
		NoCostText:   NoCostText,
	}
}

// NewEstimateView splits the insight text on every call; sections are never
// stored.
func NewEstimateView(res *domain.EstimateResult) *EstimateView {
	if res == nil {
		return nil
	}
	sections := insights.Split(res.AIInsights)
	planText := sections.Plan
	if planText == "" {
		planText = sections.Other
	}
	return &EstimateView{
		BaseCost:     Amount(res.BaseCost),
		AdjustedCost: Amount(res.AdjustedCost),
		Contingency:  Amount(res.Contingency),
		Total:        Amount(res.TotalEstimatedCost),
		Insights:     sections,
		PlanText:     planText,
	}
}

func NewPlanView(res *domain.PlanResult) *PlanView {
	if res == nil {
		return nil
	}
	return &PlanView{
		PlotSizeSqft:      Amount(res.PlotSizeSqft),
		BuiltupAreaSqft:   Amount(res.BuiltupAreaSqft),
		Budget:            Amount(res.EstimatedBudgetINR),
		TimeMonths:        Amount(res.EstimatedTimeMonths),
		ElevationStyle:    res.ElevationStyle,
		RoomDimensions:    JSONDump(res.RoomDimensions),
		RequiredEquipment: JSONDump(res.RequiredEquipment),
		BlueprintImageURL: res.BlueprintImageURL,
	}
}

// Amount prints a value exactly as the service sent it.
func Amount(d decimal.Decimal) string { return d.String() }

// JSONDump pretty prints raw JSON with two-space indentation, keeping the
// service's key order. Invalid JSON is returned as is.
func JSONDump(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		return string(raw)
	}
	return buf.String()
}

func options(values []string, labels map[string]string, selected string) []Option {
	out := make([]Option, 0, len(values))
	for _, v := range values {
		out = append(out, Option{Value: v, Label: labels[v], Selected: v == selected})
	}
	return out
}
