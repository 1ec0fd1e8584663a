package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/buildwise/smart-estimator/internal/buildwise/domain"
	"github.com/buildwise/smart-estimator/internal/buildwise/form"
	"github.com/buildwise/smart-estimator/internal/buildwise/insights"
	"github.com/buildwise/smart-estimator/internal/buildwise/session"
)

func newEstimateCmd(opts *options) *cobra.Command {
	values := map[string]*string{}

	cmd := &cobra.Command{
		Use:   "estimate",
		Short: "Estimate the cost of a construction project",
		Example: `  buildwise estimate --area 1000 --material standard --tier tier2 --floors 2 --deadline 6`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ws := session.NewWorkspace("cli")
			for name, v := range values {
				if cmd.Flags().Changed(flagFor(name)) {
					if err := ws.SetField(name, *v); err != nil {
						return err
					}
				}
			}

			res, err := ws.SubmitEstimate(cmd.Context(), opts.client())
			if err != nil {
				return fmt.Errorf("%s: %w", session.NoticeEstimateFailed, err)
			}

			if opts.asJSON {
				return writeJSON(cmd.OutOrStdout(), struct {
					*domain.EstimateResult
					Sections insights.Sections `json:"sections"`
				}{res, insights.Split(res.AIInsights)})
			}
			term, err := opts.terminal()
			if err != nil {
				return err
			}
			out, err := term.RenderEstimate(res)
			if err != nil {
				return err
			}
			_, err = io.WriteString(cmd.OutOrStdout(), out)
			return err
		},
	}

	f := cmd.Flags()
	values[form.FieldAreaSqft] = f.String("area", "", "built area in sqft")
	values[form.FieldMaterialQuality] = f.String("material", domain.MaterialBasic, "material quality: basic, standard, premium")
	values[form.FieldLocationTier] = f.String("tier", domain.LocationTier1, "location tier: tier1, tier2, tier3")
	values[form.FieldFloors] = f.String("floors", "", "number of floors")
	values[form.FieldDeadlineMonths] = f.String("deadline", "", "deadline in months")
	return cmd
}

func newPlanCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:     "plan [description]",
		Short:   "Generate a smart construction plan from a description",
		Example: `  buildwise plan "I have 300 square yards land, need 3 bedrooms, 1 big hall, kitchen and parking"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			description := strings.Join(args, " ")
			if description == "" {
				b, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("read description: %w", err)
				}
				description = strings.TrimSpace(string(b))
			}

			ws := session.NewWorkspace("cli")
			if err := ws.SetField(form.FieldDescription, description); err != nil {
				return err
			}
			res, err := ws.GeneratePlan(cmd.Context(), opts.client())
			if err != nil {
				return fmt.Errorf("%s: %w", session.NoticePlanFailed, err)
			}

			if opts.asJSON {
				return writeJSON(cmd.OutOrStdout(), res)
			}
			term, err := opts.terminal()
			if err != nil {
				return err
			}
			out, err := term.RenderPlan(res)
			if err != nil {
				return err
			}
			_, err = io.WriteString(cmd.OutOrStdout(), out)
			return err
		},
	}
}

func newSplitCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "split [text]",
		Short: "Split insight text into plan and cost sections",
		Long:  "Reads the text from the arguments, or stdin when none are given.",
		RunE: func(cmd *cobra.Command, args []string) error {
			text := strings.Join(args, " ")
			if len(args) == 0 {
				b, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("read text: %w", err)
				}
				text = string(b)
			}

			sections := insights.Split(text)
			if opts.asJSON {
				return writeJSON(cmd.OutOrStdout(), sections)
			}
			term, err := opts.terminal()
			if err != nil {
				return err
			}
			out, err := term.RenderSections(sections)
			if err != nil {
				return err
			}
			_, err = io.WriteString(cmd.OutOrStdout(), out)
			return err
		},
	}
}

func flagFor(field string) string {
	switch field {
	case form.FieldAreaSqft:
		return "area"
	case form.FieldMaterialQuality:
		return "material"
	case form.FieldLocationTier:
		return "tier"
	case form.FieldDeadlineMonths:
		return "deadline"
	}
	return field
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}
