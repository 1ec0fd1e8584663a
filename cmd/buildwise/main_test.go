package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestSplitCommand_Stdin(t *testing.T) {
	out, err := run(t, "Plan: lay the slab\nCost: 2 lakh", "split", "--json")
	require.NoError(t, err)

	var got map[string]string
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "headings", got["kind"])
	assert.Equal(t, "lay the slab", got["plan"])
	assert.Equal(t, "2 lakh", got["cost"])
}

func TestEstimateCommand(t *testing.T) {
	var body map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/estimate", r.URL.Path)
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"base_cost": 100, "adjusted_cost": 110, "contingency": 5.5, "total_estimated_cost": 115.5, "ai_insights": "Plan: x\nCost: y"}`))
	}))
	defer server.Close()

	out, err := run(t, "", "estimate", "--backend", server.URL, "--json", "--area", "1000", "--tier", "tier3")
	require.NoError(t, err)

	assert.Equal(t, float64(1000), body["area_sqft"])
	assert.Equal(t, "basic", body["material_quality"])
	assert.Equal(t, "tier3", body["location_tier"])

	var got struct {
		TotalEstimatedCost json.Number `json:"total_estimated_cost"`
		Sections           struct {
			Plan string `json:"plan"`
			Cost string `json:"cost"`
		} `json:"sections"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "115.5", got.TotalEstimatedCost.String())
	assert.Equal(t, "x", got.Sections.Plan)
	assert.Equal(t, "y", got.Sections.Cost)
}

func TestEstimateCommand_BackendDown(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	_, err := run(t, "", "estimate", "--backend", server.URL)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Error connecting to backend")
}
