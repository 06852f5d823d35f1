package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/takweol/casematch/internal/analysis"
	"github.com/takweol/casematch/internal/domain/conversation"
	"github.com/takweol/casematch/pkg/errors"
	"github.com/takweol/casematch/pkg/types/consultation"
)

type analyzeOptions struct {
	file       string
	complexity string
}

func newAnalyzeCommand(root *RootOptions) *cobra.Command {
	opts := &analyzeOptions{}

	cmd := &cobra.Command{
		Use:   "analyze [text...]",
		Short: "Classify a consultation transcript and derive case metrics",
		Long:  "Each positional argument becomes one user turn.  Alternatively --file\nloads a JSON conversation ([{\"role\":...,\"text\":...}, ...]).",
		Example: `  casematch analyze "월급을 석 달째 받지 못했습니다"
  casematch analyze --file transcript.json -o json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAnalyze(cmd, root, opts, args)
		},
	}

	cmd.Flags().StringVarP(&opts.file, "file", "f", "", "JSON conversation file")
	cmd.Flags().StringVar(&opts.complexity, "complexity", "", "case complexity (simple, medium, complex)")
	return cmd
}

func runAnalyze(cmd *cobra.Command, root *RootOptions, opts *analyzeOptions, args []string) error {
	history, err := loadHistory(opts.file, args)
	if err != nil {
		return err
	}

	switch opts.complexity {
	case "", string(analysis.ComplexitySimple), string(analysis.ComplexityMedium), string(analysis.ComplexityComplex):
	default:
		return errors.InvalidParam("unknown complexity").WithDetail(opts.complexity)
	}

	engine := analysis.NewEngine(nil)
	result := engine.PerformFullAnalysis(history, analysis.Complexity(opts.complexity))
	if result == nil {
		fmt.Fprintln(cmd.OutOrStdout(), "No case category matched the conversation.")
		return nil
	}

	if root.OutputFormat == "json" {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}
	printResult(cmd, result)
	return nil
}

func loadHistory(file string, args []string) (conversation.History, error) {
	if file != "" {
		data, err := os.ReadFile(file)
		if err != nil {
			return nil, errors.Wrap(err, errors.CodeInvalidParam, "failed to read conversation file")
		}
		var messages []consultation.MessageDTO
		if err := json.Unmarshal(data, &messages); err != nil {
			return nil, errors.Wrap(err, errors.CodeInvalidParam, "conversation file is not valid JSON")
		}
		history := make(conversation.History, 0, len(messages))
		for _, m := range messages {
			role := conversation.Role(m.Role)
			if !role.Valid() {
				return nil, errors.InvalidParam("unknown message role").WithDetail(m.Role)
			}
			history = append(history, conversation.Message{Role: role, Text: m.Text})
		}
		return history, nil
	}

	if len(args) == 0 {
		return nil, errors.InvalidParam("provide transcript text or --file")
	}
	history := make(conversation.History, 0, len(args))
	for _, text := range args {
		history = append(history, conversation.Message{Role: conversation.RoleUser, Text: text})
	}
	return history, nil
}

func printResult(cmd *cobra.Command, r *analysis.AnalysisResult) {
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "Primary case:   %s (%s)\n", r.PrimaryCase.Name, r.PrimaryCase.ID)
	fmt.Fprintf(out, "Law reference:  %s\n", r.PrimaryCase.LawReference)
	fmt.Fprintf(out, "Confidence:     %d%%\n", r.PrimaryCase.Confidence)
	fmt.Fprintf(out, "Keywords:       %s\n", strings.Join(r.PrimaryCase.MatchedKeywords, ", "))
	if len(r.SecondaryCases) > 0 {
		fmt.Fprintln(out, "Also possible:")
		for _, s := range r.SecondaryCases {
			fmt.Fprintf(out, "  - %s (%d%%)\n", s.Name, s.Confidence)
		}
	}
	fmt.Fprintf(out, "Win rate:       %d%%\n", r.WinRate)
	fmt.Fprintf(out, "Estimated cost: %d~%d%s\n", r.EstimatedCost.Min, r.EstimatedCost.Max, r.EstimatedCost.Unit)
	fmt.Fprintf(out, "Similar cases:  %d\n", r.SimilarCaseCount)
	fmt.Fprintf(out, "Pattern match:  %d%%\n", r.PatternMatchPercent)
	fmt.Fprintf(out, "Evidence found: %v\n", r.HasEvidenceSignal)
	fmt.Fprintf(out, "Progress:       %d%%\n", r.AnalysisProgressPercent)
	if len(r.Experts) > 0 {
		fmt.Fprintln(out, "Experts:")
		for _, e := range r.Experts {
			fmt.Fprintf(out, "  - %s (%s, %.1f★) %s\n", e.Name, e.Specialty, e.Rating, e.Reason)
		}
	}
}
