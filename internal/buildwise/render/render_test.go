package render

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/buildwise/smart-estimator/internal/buildwise/domain"
	"github.com/buildwise/smart-estimator/internal/buildwise/insights"
	"github.com/buildwise/smart-estimator/internal/buildwise/session"
)

func sampleEstimate(text string) *domain.EstimateResult {
	return &domain.EstimateResult{
		BaseCost:           decimal.RequireFromString("2000000"),
		AdjustedCost:       decimal.RequireFromString("2200000"),
		Contingency:        decimal.RequireFromString("110000.5"),
		TotalEstimatedCost: decimal.RequireFromString("2310000.5"),
		AIInsights:         text,
	}
}

func TestJSONDumpKeepsKeyOrder(t *testing.T) {
	got := JSONDump(json.RawMessage(`{"hall":{"w":20,"l":15},"bedroom_1":{"w":12}}`))

	assert.Equal(t, "{\n  \"hall\": {\n    \"w\": 20,\n    \"l\": 15\n  },\n  \"bedroom_1\": {\n    \"w\": 12\n  }\n}", got)
	assert.Equal(t, "", JSONDump(nil))
	assert.Equal(t, "{broken", JSONDump(json.RawMessage(`{broken`)))
}

func TestNewEstimateViewFallsBackToOther(t *testing.T) {
	v := NewEstimateView(sampleEstimate("Just a generic description with no structure"))

	require.NotNil(t, v)
	assert.Equal(t, insights.KindNone, v.Insights.Kind)
	assert.Equal(t, "Just a generic description with no structure", v.PlanText)
	assert.Equal(t, "110000.5", v.Contingency)
	assert.Nil(t, NewEstimateView(nil))
}

func TestPageTemplate(t *testing.T) {
	ws := session.NewWorkspace("s1")
	require.NoError(t, ws.SetField("area_sqft", "1000"))
	require.NoError(t, ws.SetField("material_quality", "premium"))
	v := ws.Snapshot()
	v.Estimate = sampleEstimate("Plan: build 2BHK\n\nCost: 5 lakh")
	v.Plan = &domain.PlanResult{
		PlotSizeSqft:      decimal.NewFromInt(2700),
		RoomDimensions:    json.RawMessage(`{"hall":"20x15"}`),
		BlueprintImageURL: "http://127.0.0.1:8000/static/b.png",
	}
	v.Notification = session.NoticePlanFailed

	var buf bytes.Buffer
	require.NoError(t, Templates().ExecuteTemplate(&buf, PageTemplate, NewPage(v)))
	html := buf.String()

	assert.Contains(t, html, `value="1000"`)
	assert.Contains(t, html, `<option value="premium" selected>Premium</option>`)
	assert.Contains(t, html, "₹2310000.5")
	assert.Contains(t, html, `<pre class="ai-pre">build 2BHK</pre>`)
	assert.Contains(t, html, `<pre class="ai-pre">5 lakh</pre>`)
	assert.Contains(t, html, "Error generating plan")
	assert.Contains(t, html, `src="http://127.0.0.1:8000/static/b.png"`)
	assert.Contains(t, html, "Calculate Cost")
}

func TestPageTemplateEmptySections(t *testing.T) {
	v := session.NewWorkspace("s1").Snapshot()
	v.Estimate = sampleEstimate("")
	v.Estimating = true

	var buf bytes.Buffer
	require.NoError(t, Templates().ExecuteTemplate(&buf, PageTemplate, NewPage(v)))
	html := buf.String()

	assert.Contains(t, html, NoPlanText)
	assert.Contains(t, html, NoCostText)
	assert.Contains(t, html, "Calculating...")
	assert.NotContains(t, html, "Smart Plan</h2>")
}

func TestTerminalRenderEstimate(t *testing.T) {
	term, err := NewTerminal("notty", 80)
	require.NoError(t, err)

	out, err := term.RenderEstimate(sampleEstimate("Plan: build 2BHK\n\nCost: 5 lakh"))
	require.NoError(t, err)

	assert.Contains(t, out, "2310000.5")
	assert.Contains(t, out, "build 2BHK")
	assert.Contains(t, out, "5 lakh")

	out, err = term.RenderEstimate(sampleEstimate("Plan: only a plan here"))
	require.NoError(t, err)
	assert.Contains(t, out, NoCostText)
}

func TestTerminalRenderPlan(t *testing.T) {
	term, err := NewTerminal("notty", 80)
	require.NoError(t, err)

	out, err := term.RenderPlan(&domain.PlanResult{
		EstimatedTimeMonths: decimal.NewFromInt(8),
		RequiredEquipment:   json.RawMessage(`["mixer"]`),
	})
	require.NoError(t, err)
	assert.Contains(t, out, "8 months")
	assert.True(t, strings.Contains(out, "\"mixer\""))

	out, err = term.RenderPlan(nil)
	require.NoError(t, err)
	assert.Empty(t, out)
}
