package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/davidbz/estimator/internal/domain"
	"github.com/davidbz/estimator/internal/summary/echo"
)

type estimateOptions struct {
	projectType string
	complexity  string
	features    []string
	pages       int
	platforms   []string
	techStack   []string
	output      string
}

func newEstimateCmd() *cobra.Command {
	opts := &estimateOptions{}

	cmd := &cobra.Command{
		Use:   "estimate",
		Short: "Price a single project from the command line",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runEstimate(cmd, opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.projectType, "type", "t", "", "project type (mobile, web, telegram, desktop, other)")
	flags.StringVarP(&opts.complexity, "complexity", "c", string(domain.ComplexityMVP), "complexity tier (mvp, standard, enterprise)")
	flags.StringSliceVarP(&opts.features, "feature", "f", nil, "feature to include (repeatable)")
	flags.IntVarP(&opts.pages, "pages", "p", 0, "number of pages or screens")
	flags.StringSliceVar(&opts.platforms, "platform", nil, "mobile platform target (repeatable)")
	flags.StringSliceVar(&opts.techStack, "tech", nil, "technology in the stack (repeatable)")
	flags.StringVarP(&opts.output, "output", "o", "text", "output format (text, json)")

	_ = cmd.MarkFlagRequired("type")

	return cmd
}

func runEstimate(cmd *cobra.Command, opts *estimateOptions) error {
	estimator := domain.NewEstimator(domain.NewStandardRateCard())

	input, err := estimator.Normalize(opts.input())
	if err != nil {
		return err
	}

	result, err := estimator.Estimate(input)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()

	switch opts.output {
	case "json":
		encoder := json.NewEncoder(out)
		encoder.SetIndent("", "  ")
		return encoder.Encode(struct {
			Input  domain.EstimateInput   `json:"input"`
			Result *domain.EstimateResult `json:"result"`
		}{input, result})
	case "text":
		summary, sumErr := echo.NewSummarizer().Summarize(cmd.Context(), &domain.SummaryRequest{
			Input:  input,
			Result: result,
		})
		if sumErr != nil {
			return sumErr
		}
		return writeEstimateTable(out, result, summary)
	default:
		return fmt.Errorf("unknown output format %q", opts.output)
	}
}

func (o *estimateOptions) input() domain.EstimateInput {
	return domain.EstimateInput{
		ProjectType: domain.ProjectType(o.projectType),
		Complexity:  domain.Complexity(o.complexity),
		Features:    toKeys[domain.Feature](o.features),
		Pages:       o.pages,
		Platforms:   toKeys[domain.Platform](o.platforms),
		TechStack:   toKeys[domain.Tech](o.techStack),
	}
}

func writeEstimateTable(out io.Writer, result *domain.EstimateResult, summary string) error {
	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)

	rows := []struct {
		label string
		value string
	}{
		{"Base cost", fmt.Sprintf("$%d", result.Breakdown.BaseCost)},
		{"Features", fmt.Sprintf("$%d", result.Breakdown.FeaturesCost)},
		{"Pages", fmt.Sprintf("$%d", result.Breakdown.PagesCost)},
		{"Complexity multiplier", fmt.Sprintf("x%g", result.Breakdown.ComplexityMultiplier)},
		{"Tech adjustment", fmt.Sprintf("x%g", result.Breakdown.TechAdjustmentFactor)},
		{"Development cost", fmt.Sprintf("$%d", result.DevelopmentCost)},
		{"Deadline", fmt.Sprintf("%d weeks", result.DeadlineWeeks)},
		{"First-year support", fmt.Sprintf("$%d", result.SupportCost)},
	}

	for _, row := range rows {
		if _, err := fmt.Fprintf(tw, "%s\t%s\n", row.label, row.value); err != nil {
			return err
		}
	}

	if err := tw.Flush(); err != nil {
		return err
	}

	_, err := fmt.Fprintf(out, "\n%s\n", summary)
	return err
}

func toKeys[T ~string](values []string) []T {
	if len(values) == 0 {
		return nil
	}

	keys := make([]T, len(values))
	for i, v := range values {
		keys[i] = T(v)
	}
	return keys
}
