package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/markforge8/ClearLease/internal/model"
	"github.com/markforge8/ClearLease/internal/pipeline"
	"github.com/markforge8/ClearLease/internal/worker"
	"github.com/spf13/cobra"
)

var (
	concurrency   int
	outputDir     string
	batchTimeout  time.Duration
	docsPerSecond float64
	// noCache and the rule table flags are defined in analyze.go and shared here
)

// batchCmd represents the batch command
var batchCmd = &cobra.Command{
	Use:   "batch <list-file>",
	Short: "Analyze multiple contract documents in parallel",
	Long: `Batch analyzes multiple documents concurrently:
- Read document paths from the list file (one per line, # for comments)
- Analyze documents in parallel with a configurable worker count
- Throttle per source directory so one large drop cannot starve the rest
- Write one JSON report per document into the output directory

Example:
  clearlease batch contracts.txt
  clearlease batch contracts.txt --concurrency 8 --output-dir ./reports
  clearlease batch contracts.txt --docs-per-second 5 --timeout 5m`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	// Concurrency flags
	batchCmd.Flags().IntVar(&concurrency, "concurrency", runtime.NumCPU(), "number of concurrent workers")
	batchCmd.Flags().StringVar(&outputDir, "output-dir", "./clearlease-reports", "output directory for reports")
	batchCmd.Flags().DurationVar(&batchTimeout, "timeout", 10*time.Minute, "total timeout for batch processing")
	batchCmd.Flags().Float64Var(&docsPerSecond, "docs-per-second", 20, "per-source admission rate")

	// Shared analysis flags
	batchCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the result cache (force recomputation)")
	batchCmd.Flags().StringVar(&rulesPath, "rules", "", "extraction rule table (YAML; built-in defaults when empty)")
	batchCmd.Flags().StringVar(&riskMapPath, "risk-map", "", "risk mapping table (YAML; built-in defaults when empty)")
	batchCmd.Flags().StringVar(&templatesV0, "templates-v0", "", "tier-0 template table (YAML; built-in defaults when empty)")
	batchCmd.Flags().StringVar(&templatesV1, "templates-v1", "", "tier-1 template table (YAML; built-in defaults when empty)")
}

func runBatch(cmd *cobra.Command, args []string) error {
	file := args[0]
	ctx, cancel := context.WithTimeout(context.Background(), batchTimeout)
	defer cancel()

	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "═══════════════════════════════════════════════════════════\n")
	fmt.Fprintf(os.Stderr, "  ClearLease Batch Processing\n")
	fmt.Fprintf(os.Stderr, "═══════════════════════════════════════════════════════════\n")
	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "  Input file:   %s\n", file)
	fmt.Fprintf(os.Stderr, "  Workers:      %d\n", concurrency)
	fmt.Fprintf(os.Stderr, "  Output dir:   %s\n", outputDir)
	fmt.Fprintf(os.Stderr, "  Timeout:      %v\n", batchTimeout)
	fmt.Fprintf(os.Stderr, "\n")

	// Build configuration
	cfg := model.DefaultConfig()
	cfg.Rules.ExtractionPath = rulesPath
	cfg.Rules.RiskMappingPath = riskMapPath
	cfg.Rules.TemplatesV0Path = templatesV0
	cfg.Rules.TemplatesV1Path = templatesV1
	cfg.Cache.Enabled = !noCache
	cfg.Concurrency.BatchWorkers = concurrency
	cfg.Concurrency.DocsPerSecond = docsPerSecond
	cfg.Output.Verbose = verbose

	// Create output directory
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	// Create pipeline
	p, err := pipeline.NewPipeline(cfg)
	if err != nil {
		return err
	}

	// Create batch processor
	limiter := worker.NewLimiter(cfg.Concurrency.DocsPerSecond, cfg.Concurrency.RateLimiterBurst)
	processor := worker.NewBatchProcessor(p, cfg.Concurrency.BatchWorkers, limiter)

	// Process documents
	fmt.Fprintf(os.Stderr, "⚙️  Reading document paths from file...\n")
	results, err := processor.ProcessList(ctx, file)
	if err != nil {
		return fmt.Errorf("process list: %w", err)
	}

	fmt.Fprintf(os.Stderr, "✓ Loaded %d documents\n", len(results))
	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "⚙️  Processing documents with %d workers...\n", concurrency)
	fmt.Fprintf(os.Stderr, "\n")

	// Process results
	successCount := 0
	failureCount := 0

	for _, result := range results {
		if result.Error != nil {
			failureCount++
			fmt.Fprintf(os.Stderr, "✗ %s: %v\n", result.Path, result.Error)
			continue
		}

		successCount++

		jsonPath := filepath.Join(outputDir, reportFilename(result.Path))
		if err := p.Renderer().RenderJSON(result.Report, jsonPath); err != nil {
			fmt.Fprintf(os.Stderr, "✗ %s: failed to write JSON: %v\n", result.Path, err)
			continue
		}

		fmt.Fprintf(os.Stderr, "✓ %s (attention: %s)\n", result.Path, result.Report.Gateway.Overview.AttentionLevel)
	}

	// Summary
	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "═══════════════════════════════════════════════════════════\n")
	fmt.Fprintf(os.Stderr, "  Batch Complete\n")
	fmt.Fprintf(os.Stderr, "═══════════════════════════════════════════════════════════\n")
	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "  Total:     %d documents\n", len(results))
	fmt.Fprintf(os.Stderr, "  Success:   %d\n", successCount)
	fmt.Fprintf(os.Stderr, "  Failures:  %d\n", failureCount)
	fmt.Fprintf(os.Stderr, "  Output:    %s\n", outputDir)
	fmt.Fprintf(os.Stderr, "\n")

	return nil
}

// reportFilename derives a report name from a document path
func reportFilename(path string) string {
	base := filepath.Base(path)
	if ext := filepath.Ext(base); ext != "" {
		base = strings.TrimSuffix(base, ext)
	}
	if base == "" || base == "." {
		base = "report"
	}
	if len(base) > 100 {
		base = base[:100]
	}
	return base + ".json"
}
