package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/buildwise/smart-estimator/internal/buildwise/domain"
	"github.com/buildwise/smart-estimator/internal/buildwise/insights"
)

var (
	colorPrimary = lipgloss.Color("#101F38")
	colorAccent  = lipgloss.Color("#8BC34A")
	colorMuted   = lipgloss.Color("#6B7280")
)

// Terminal renders results for the CLI. Insight text is markdown from the
// model, so it goes through glamour; everything else is plain lipgloss.
type Terminal struct {
	md    *glamour.TermRenderer
	title lipgloss.Style
	label lipgloss.Style
	total lipgloss.Style
	muted lipgloss.Style
}

// NewTerminal uses a glamour standard style name ("dark", "light", "notty", ...).
func NewTerminal(style string, width int) (*Terminal, error) {
	md, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, fmt.Errorf("create markdown renderer: %w", err)
	}
	return &Terminal{
		md:    md,
		title: lipgloss.NewStyle().Bold(true).Foreground(colorAccent).MarginBottom(1),
		label: lipgloss.NewStyle().Bold(true).Foreground(colorPrimary),
		total: lipgloss.NewStyle().Bold(true).Foreground(colorAccent),
		muted: lipgloss.NewStyle().Italic(true).Foreground(colorMuted),
	}, nil
}

func (t *Terminal) line(b *strings.Builder, label, value string) {
	fmt.Fprintf(b, "%s %s\n", t.label.Render(label+":"), value)
}

func (t *Terminal) RenderEstimate(res *domain.EstimateResult) (string, error) {
	v := NewEstimateView(res)
	if v == nil {
		return "", nil
	}

	var b strings.Builder
	b.WriteString(t.title.Render("📊 Estimated Cost Breakdown"))
	b.WriteString("\n")
	t.line(&b, "Base Cost", "₹"+v.BaseCost)
	t.line(&b, "Adjusted Cost", "₹"+v.AdjustedCost)
	t.line(&b, "Contingency", "₹"+v.Contingency)
	fmt.Fprintf(&b, "%s\n\n", t.total.Render("Total Cost: ₹"+v.Total))

	sections, err := t.RenderSections(v.Insights)
	if err != nil {
		return "", err
	}
	b.WriteString(sections)
	return b.String(), nil
}

// RenderSections prints the plan and cost parts with the page's fallbacks.
func (t *Terminal) RenderSections(s insights.Sections) (string, error) {
	planText := s.Plan
	if planText == "" {
		planText = s.Other
	}

	var b strings.Builder
	b.WriteString(t.title.Render("📝 Suggested Build Plan"))
	b.WriteString("\n")
	if err := t.markdownOr(&b, planText, NoPlanText); err != nil {
		return "", err
	}

	b.WriteString(t.title.Render("💰 Suggested Cost Structure"))
	b.WriteString("\n")
	if err := t.markdownOr(&b, s.Cost, NoCostText); err != nil {
		return "", err
	}
	return b.String(), nil
}

func (t *Terminal) RenderPlan(res *domain.PlanResult) (string, error) {
	v := NewPlanView(res)
	if v == nil {
		return "", nil
	}

	var b strings.Builder
	b.WriteString(t.title.Render("🏗️ Smart Plan"))
	b.WriteString("\n")
	t.line(&b, "Plot Size", v.PlotSizeSqft+" sqft")
	t.line(&b, "Built-up Area", v.BuiltupAreaSqft+" sqft")
	t.line(&b, "Estimated Budget", "₹"+v.Budget)
	t.line(&b, "Estimated Time", v.TimeMonths+" months")
	if v.ElevationStyle != "" {
		t.line(&b, "Elevation Style", v.ElevationStyle)
	}
	fmt.Fprintf(&b, "\n%s\n%s\n", t.label.Render("Rooms & Dimensions"), v.RoomDimensions)
	fmt.Fprintf(&b, "\n%s\n%s\n", t.label.Render("Equipment"), v.RequiredEquipment)
	if v.BlueprintImageURL != "" {
		t.line(&b, "\nBlueprint", v.BlueprintImageURL)
	}
	return b.String(), nil
}

func (t *Terminal) markdownOr(b *strings.Builder, text, fallback string) error {
	if text == "" {
		b.WriteString(t.muted.Render(fallback))
		b.WriteString("\n\n")
		return nil
	}
	out, err := t.md.Render(text)
	if err != nil {
		return fmt.Errorf("render markdown: %w", err)
	}
	b.WriteString(out)
	return nil
}
