package domain

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// Material quality and location tier values offered by the form. The
// estimation service interprets them; nothing here validates against them.
const (
	MaterialBasic    = "basic"
	MaterialStandard = "standard"
	MaterialPremium  = "premium"

	LocationTier1 = "tier1"
	LocationTier2 = "tier2"
	LocationTier3 = "tier3"
)

func init() {
	// Amounts go back out as JSON numbers, the way the service sent them.
	decimal.MarshalJSONWithoutQuotes = true
}

var (
	MaterialQualities = []string{MaterialBasic, MaterialStandard, MaterialPremium}
	LocationTiers     = []string{LocationTier1, LocationTier2, LocationTier3}
)

// FormInput is the text the user typed, before any coercion.
type FormInput struct {
	AreaSqft        string `json:"area_sqft"`
	MaterialQuality string `json:"material_quality"`
	LocationTier    string `json:"location_tier"`
	Floors          string `json:"floors"`
	DeadlineMonths  string `json:"deadline_months"`
	Description     string `json:"description"`
}

// EstimateRequest is the body of POST /estimate.
type EstimateRequest struct {
	AreaSqft        Number `json:"area_sqft"`
	MaterialQuality string `json:"material_quality"`
	LocationTier    string `json:"location_tier"`
	Floors          Number `json:"floors"`
	DeadlineMonths  Number `json:"deadline_months"`
}

// EstimateResult is the body returned by POST /estimate.
type EstimateResult struct {
	BaseCost           decimal.Decimal `json:"base_cost"`
	AdjustedCost       decimal.Decimal `json:"adjusted_cost"`
	Contingency        decimal.Decimal `json:"contingency"`
	TotalEstimatedCost decimal.Decimal `json:"total_estimated_cost"`
	AIInsights         string          `json:"ai_insights"`
}

// PlanRequest is the body of POST /generate-smart-plan.
type PlanRequest struct {
	Description string `json:"description"`
}

// PlanResult is the body returned by POST /generate-smart-plan.
// RoomDimensions and RequiredEquipment are kept raw so they can be shown
// exactly as the service ordered them.
type PlanResult struct {
	PlotSizeSqft        decimal.Decimal `json:"plot_size_sqft"`
	BuiltupAreaSqft     decimal.Decimal `json:"builtup_area_sqft"`
	EstimatedBudgetINR  decimal.Decimal `json:"estimated_budget_inr"`
	EstimatedTimeMonths decimal.Decimal `json:"estimated_time_months"`
	RoomDimensions      json.RawMessage `json:"room_dimensions,omitempty"`
	RequiredEquipment   json.RawMessage `json:"required_equipment,omitempty"`
	ElevationStyle      string          `json:"elevation_style,omitempty"`
	BlueprintImageURL   string          `json:"blueprint_image_url,omitempty"`
}
