// Package form holds what the user has typed into the estimator page.
package form

import (
	"fmt"
	"sort"

	"github.com/buildwise/smart-estimator/internal/buildwise/domain"
)

// Field names, as used by the HTML inputs and the JSON API.
const (
	FieldAreaSqft        = "area_sqft"
	FieldMaterialQuality = "material_quality"
	FieldLocationTier    = "location_tier"
	FieldFloors          = "floors"
	FieldDeadlineMonths  = "deadline_months"
	FieldDescription     = "description"
)

// State is the single container for every input on the page, including the
// plan description. It is not safe for concurrent use; session.Workspace
// guards it.
type State struct {
	values domain.FormInput
}

// New returns the state a fresh page starts with.
func New() *State {
	return &State{values: domain.FormInput{
		MaterialQuality: domain.MaterialBasic,
		LocationTier:    domain.LocationTier1,
	}}
}

func (s *State) field(name string) (*string, error) {
	switch name {
	case FieldAreaSqft:
		return &s.values.AreaSqft, nil
	case FieldMaterialQuality:
		return &s.values.MaterialQuality, nil
	case FieldLocationTier:
		return &s.values.LocationTier, nil
	case FieldFloors:
		return &s.values.Floors, nil
	case FieldDeadlineMonths:
		return &s.values.DeadlineMonths, nil
	case FieldDescription:
		return &s.values.Description, nil
	}
	return nil, fmt.Errorf("%w: %q", domain.ErrUnknownField, name)
}

// Set records one edit. Values are stored as typed.
func (s *State) Set(name, value string) error {
	p, err := s.field(name)
	if err != nil {
		return err
	}
	*p = value
	return nil
}

// SetAll applies several edits; it stops at the first unknown field, leaving
// earlier edits applied. Fields are applied in name order.
func (s *State) SetAll(values map[string]string) error {
	names := make([]string, 0, len(values))
	for name := range values {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if err := s.Set(name, values[name]); err != nil {
			return err
		}
	}
	return nil
}

func (s *State) Get(name string) (string, error) {
	p, err := s.field(name)
	if err != nil {
		return "", err
	}
	return *p, nil
}

// Values returns a copy of the current input.
func (s *State) Values() domain.FormInput { return s.values }

func (s *State) Description() string { return s.values.Description }

// EstimateRequest coerces the numeric fields. Nothing is validated here.
func (s *State) EstimateRequest() domain.EstimateRequest {
	return domain.EstimateRequest{
		AreaSqft:        domain.ParseNumber(s.values.AreaSqft),
		MaterialQuality: s.values.MaterialQuality,
		LocationTier:    s.values.LocationTier,
		Floors:          domain.ParseNumber(s.values.Floors),
		DeadlineMonths:  domain.ParseNumber(s.values.DeadlineMonths),
	}
}
