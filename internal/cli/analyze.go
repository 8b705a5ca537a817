package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/markforge8/ClearLease/internal/model"
	"github.com/markforge8/ClearLease/internal/pipeline"
	"github.com/spf13/cobra"
)

var (
	outJSON        string
	sourceID       string
	noCache        bool
	noPretty       bool
	tiersFlag      string
	rulesPath      string
	riskMapPath    string
	templatesV0    string
	templatesV1    string
	summaryEnabled bool
)

// analyzeCmd represents the analyze command
var analyzeCmd = &cobra.Command{
	Use:   "analyze <file>",
	Short: "Analyze a single contract document",
	Long: `Analyze runs one document through the full pipeline:
- Normalize the raw text into a clean segment
- Extract risk signals from the rule tables
- Aggregate signals into risk items and structural fields
- Detect trap patterns and expand them into causal chains
- Render the tiered explanations and the aggregated overview

Pass "-" as the file to read the document from stdin.

Example:
  clearlease analyze lease.txt
  clearlease analyze lease.txt --json report.json --tiers v0,v1
  cat terms.txt | clearlease analyze - --source terms.txt`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	// Output flags
	analyzeCmd.Flags().StringVar(&outJSON, "json", "-", "output JSON path (\"-\" for stdout)")
	analyzeCmd.Flags().BoolVar(&summaryEnabled, "summary", false, "print a human-readable summary instead of JSON")
	analyzeCmd.Flags().BoolVar(&noPretty, "compact", false, "emit compact JSON")

	// Analysis flags
	analyzeCmd.Flags().StringVar(&sourceID, "source", "", "source identifier recorded in the report (defaults to the file path)")
	analyzeCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the result cache (force recomputation)")
	analyzeCmd.Flags().StringVar(&tiersFlag, "tiers", "v0,v1,v2", "explanation tiers to render (comma-separated: v0,v1,v2)")

	// Rule table flags
	analyzeCmd.Flags().StringVar(&rulesPath, "rules", "", "extraction rule table (YAML; built-in defaults when empty)")
	analyzeCmd.Flags().StringVar(&riskMapPath, "risk-map", "", "risk mapping table (YAML; built-in defaults when empty)")
	analyzeCmd.Flags().StringVar(&templatesV0, "templates-v0", "", "tier-0 template table (YAML; built-in defaults when empty)")
	analyzeCmd.Flags().StringVar(&templatesV1, "templates-v1", "", "tier-1 template table (YAML; built-in defaults when empty)")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	file := args[0]

	text, err := readDocument(file)
	if err != nil {
		return err
	}

	source := sourceID
	if source == "" && file != "-" {
		source = file
	}

	tiers, err := parseTiers(tiersFlag)
	if err != nil {
		return err
	}

	// Build configuration from flags
	cfg := model.DefaultConfig()
	cfg.Rules.ExtractionPath = rulesPath
	cfg.Rules.RiskMappingPath = riskMapPath
	cfg.Rules.TemplatesV0Path = templatesV0
	cfg.Rules.TemplatesV1Path = templatesV1
	cfg.Cache.Enabled = !noCache
	cfg.Output.Verbose = verbose
	cfg.Output.Pretty = !noPretty

	if verbose {
		fmt.Fprintf(os.Stderr, "Analyzing: %s\n", source)
		fmt.Fprintf(os.Stderr, "Tiers: %s\n", tiersFlag)
		fmt.Fprintf(os.Stderr, "Cache: %v\n", !noCache)
		fmt.Fprintln(os.Stderr)
	}

	p, err := pipeline.NewPipeline(cfg)
	if err != nil {
		return err
	}

	var report *model.Report
	if tiers == pipeline.AllTiers() {
		report, err = p.Analyze(source, text)
	} else {
		report, err = p.AnalyzeTiers(source, text, tiers)
	}
	if err != nil {
		return fmt.Errorf("analyze failed: %w", err)
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "✓ Extracted %d signals\n", len(report.Signals))
		fmt.Fprintf(os.Stderr, "✓ Aggregated %d risk items\n", len(report.Analysis.RiskItems))
		fmt.Fprintf(os.Stderr, "✓ Detected %d traps\n", len(report.Traps))
		fmt.Fprintln(os.Stderr)
	}

	if summaryEnabled {
		p.Renderer().RenderSummary(report)
		return nil
	}

	if err := p.Renderer().RenderJSON(report, outJSON); err != nil {
		return fmt.Errorf("render failed: %w", err)
	}

	return nil
}

// readDocument reads the document from the given path, or from stdin when
// the path is "-".
func readDocument(path string) (string, error) {
	if path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read document: %w", err)
	}
	return string(data), nil
}

// parseTiers parses the --tiers flag value into a tier selection.
func parseTiers(s string) (pipeline.Tiers, error) {
	var tiers pipeline.Tiers
	for _, part := range strings.Split(s, ",") {
		switch strings.TrimSpace(strings.ToLower(part)) {
		case "":
			continue
		case "v0":
			tiers.V0 = true
		case "v1":
			tiers.V1 = true
		case "v2":
			tiers.V2 = true
		default:
			return pipeline.Tiers{}, fmt.Errorf("unknown tier %q (valid: v0, v1, v2)", part)
		}
	}
	return tiers, nil
}
