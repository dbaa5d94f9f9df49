package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	appanalysis "github.com/turtacn/ExitReady-Intelligence/internal/application/analysis"
	"github.com/turtacn/ExitReady-Intelligence/internal/config"
	domain "github.com/turtacn/ExitReady-Intelligence/internal/domain/analysis"
	"github.com/turtacn/ExitReady-Intelligence/internal/infrastructure/monitoring/logging"
	"github.com/turtacn/ExitReady-Intelligence/internal/intelligence/predictor"
)

type analyzeOptions struct {
	profilePath string
	remote      bool
	endpoint    string
	target      float64
}

func newAnalyzeCommand(root *rootOptions) *cobra.Command {
	opts := &analyzeOptions{}

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Analyze a business profile",
		Long:  "Reads a business profile from a JSON file, runs the full analysis, and\nprints the report.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runAnalyze(cmd, root, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.profilePath, "profile", "p", "", "path to the profile JSON file (required)")
	cmd.Flags().BoolVar(&opts.remote, "remote", false, "delegate scoring to the remote service")
	cmd.Flags().StringVar(&opts.endpoint, "endpoint", "", "remote scoring service base URL (required with --remote)")
	cmd.Flags().Float64Var(&opts.target, "target", domain.DefaultTargetScore, "improvement plan target score")
	_ = cmd.MarkFlagRequired("profile")

	return cmd
}

func runAnalyze(cmd *cobra.Command, root *rootOptions, opts *analyzeOptions) error {
	if opts.remote && opts.endpoint == "" {
		return fmt.Errorf("--remote requires --endpoint")
	}

	raw, err := os.ReadFile(opts.profilePath)
	if err != nil {
		return fmt.Errorf("failed to read profile: %w", err)
	}
	var profile domain.BusinessProfile
	if err := domain.UnmarshalStrict(raw, &profile); err != nil {
		return fmt.Errorf("invalid profile: %w", err)
	}

	log, err := logging.NewLogger(logging.LogConfig{Level: root.logLevel, Format: "console"})
	if err != nil {
		return err
	}

	svcCfg := appanalysis.Config{Logger: log, TargetScore: opts.target}
	if opts.remote {
		gateway := predictor.NewGateway(&config.GatewayConfig{Endpoint: opts.endpoint}, log)
		svcCfg.Remote = appanalysis.NewRemoteScorer(gateway, appanalysis.NewLocalScorer(), log, nil)
	}
	svc := appanalysis.NewService(svcCfg)

	report, err := svc.Analyze(cmd.Context(), &profile, appanalysis.Options{
		UseRemote: opts.remote,
		CallerKey: "", // local invocations are not quota-limited
	})
	if err != nil {
		return err
	}

	switch root.output {
	case "text":
		printTextReport(cmd, report)
		return nil
	default:
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	}
}

func printTextReport(cmd *cobra.Command, r *domain.AnalysisReport) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Exit-readiness analysis: %s\n", r.CompanyName)
	fmt.Fprintf(out, "Overall score: %.1f   Risk: %s   Source: %s\n\n",
		r.OverallScore(), r.Risk.Overall, r.Metadata.SourcePath)

	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "DIMENSION\tSCORE")
	for _, s := range r.Scores {
		fmt.Fprintf(w, "%s\t%.1f\n", s.Dimension, s.Score)
	}
	w.Flush()

	fmt.Fprintf(out, "\nValuation: %.0f (range %.0f - %.0f, confidence %.0f%%)\n",
		r.Valuation.Point, r.Valuation.Low, r.Valuation.High, r.Valuation.Confidence)
	if r.ValueEnhancement.ValueIncrease > 0 {
		fmt.Fprintf(out, "Potential value after improvements: %.0f (+%.1f%%)\n",
			r.ValueEnhancement.PotentialValue, r.ValueEnhancement.PercentageIncrease)
	}

	if len(r.Recommendations) > 0 {
		fmt.Fprintln(out, "\nRecommendations:")
		for _, rec := range r.Recommendations {
			fmt.Fprintf(out, "  [%s] %s (%s)\n", strings.ToUpper(string(rec.Priority)), rec.Title, rec.EstimatedImpact)
		}
	}
	if len(r.ImprovementPlan) > 0 {
		fmt.Fprintln(out, "\nImprovement plan:")
		for _, ph := range r.ImprovementPlan {
			fmt.Fprintf(out, "  %s: %.1f -> %.1f (%s)\n",
				ph.Dimension, ph.CurrentScore, ph.TargetScore, ph.Timeframe)
		}
	}
}
