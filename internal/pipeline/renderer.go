package pipeline

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/markforge8/ClearLease/internal/model"
)

// Renderer writes analysis reports as JSON and prints human summaries.
type Renderer struct {
	pretty bool
}

// NewRenderer creates a renderer
func NewRenderer(pretty bool) *Renderer {
	return &Renderer{pretty: pretty}
}

// RenderJSON writes the report to the given path, or to stdout when the
// path is "-" or empty.
func (r *Renderer) RenderJSON(report *model.Report, path string) error {
	var data []byte
	var err error
	if r.pretty {
		data, err = json.MarshalIndent(report, "", "  ")
	} else {
		data, err = json.Marshal(report)
	}
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	data = append(data, '\n')

	if path == "" || path == "-" {
		_, err = os.Stdout.Write(data)
		return err
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

// RenderSummary prints a short human-readable digest to stdout.
func (r *Renderer) RenderSummary(report *model.Report) {
	fmt.Println("═══════════════════════════════════════════")
	if report.SourceID != "" {
		fmt.Printf("  Source:     %s\n", report.SourceID)
	}
	fmt.Printf("  Attention:  %s\n", report.Gateway.Overview.AttentionLevel)
	if report.Gateway.Overview.Summary != "" {
		fmt.Printf("  Summary:    %s\n", report.Gateway.Overview.Summary)
	}
	fmt.Println("═══════════════════════════════════════════")

	if len(report.Gateway.KeyFindings) > 0 {
		fmt.Println("\nKey findings:")
		for _, finding := range report.Gateway.KeyFindings {
			title := finding.Title
			if title == "" {
				title = finding.Headline
			}
			fmt.Printf("  [%s] %s\n", finding.Source, title)
		}
	}

	if len(report.Gateway.NextActions) > 0 {
		fmt.Println("\nNext actions:")
		for _, action := range report.Gateway.NextActions {
			fmt.Printf("  - %s\n", action.Action)
		}
	}

	fmt.Printf("\nRisks: %d | Fields: %d | Traps: %d | Chains: %d\n",
		len(report.Analysis.RiskItems),
		len(report.Analysis.RiskFields),
		len(report.Traps),
		len(report.Chains))
}
