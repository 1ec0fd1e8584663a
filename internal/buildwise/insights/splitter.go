// Package insights splits the advisory text returned with an estimate into a
// build plan part and a cost part for display.
package insights

import (
	"regexp"
	"strings"
)

// Kind names the rule that produced a set of sections.
type Kind string

const (
	KindHeadings   Kind = "headings"
	KindParagraphs Kind = "paragraphs"
	KindBisected   Kind = "bisected"
	KindNone       Kind = "none"
)

// Sections is the result of Split. Other is only set when Kind is KindNone.
type Sections struct {
	Kind  Kind   `json:"kind"`
	Plan  string `json:"plan"`
	Cost  string `json:"cost"`
	Other string `json:"other"`
}

// A heading keyword must be followed by ':' or '-' or a line break, after
// which any run of separators and whitespace is skipped.
const headingMarker = `[ \t]*(?:[:\-]|\r?\n)[:\-\s]*`

var (
	rePlanHeading = regexp.MustCompile(`(?i)plan` + headingMarker)
	reCostHeading = regexp.MustCompile(`(?is)cost(?: structure|s)?` + headingMarker + `(.*)`)
	reCostWord    = regexp.MustCompile(`(?i)cost`)
	reBlankLines  = regexp.MustCompile(`\n\s*\n`)
)

// Split never fails. Rules run in order and the first one that yields any
// non-empty section wins: headings, paragraphs, bisection at the first
// "cost", and finally the whole text as Other.
func Split(text string) Sections {
	if text == "" {
		return Sections{Kind: KindNone}
	}

	if s, ok := splitHeadings(text); ok {
		return s
	}
	if s, ok := splitParagraphs(text); ok {
		return s
	}
	if i := reCostWord.FindStringIndex(text); i != nil {
		return Sections{
			Kind: KindBisected,
			Plan: strings.TrimSpace(text[:i[0]]),
			Cost: strings.TrimSpace(text[i[0]:]),
		}
	}
	return Sections{Kind: KindNone, Other: strings.TrimSpace(text)}
}

// splitHeadings matches the plan and cost headings independently. A plan
// heading without a cost heading leaves Cost empty.
func splitHeadings(text string) (Sections, bool) {
	var plan, cost string

	if loc := rePlanHeading.FindStringIndex(text); loc != nil {
		body := text[loc[1]:]
		if end := reCostWord.FindStringIndex(body); end != nil {
			body = body[:end[0]]
		}
		plan = strings.TrimSpace(body)
	}

	if m := reCostHeading.FindStringSubmatch(text); m != nil {
		cost = strings.TrimSpace(m[1])
	}

	if plan == "" && cost == "" {
		return Sections{}, false
	}
	return Sections{Kind: KindHeadings, Plan: plan, Cost: cost}, true
}

func splitParagraphs(text string) (Sections, bool) {
	parts := reBlankLines.Split(text, -1)
	if len(parts) < 2 {
		return Sections{}, false
	}
	s := Sections{
		Kind: KindParagraphs,
		Plan: strings.TrimSpace(parts[0]),
		Cost: strings.TrimSpace(strings.Join(parts[1:], "\n\n")),
	}
	return s, s.Plan != "" || s.Cost != ""
}
