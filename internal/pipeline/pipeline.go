package pipeline

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/markforge8/ClearLease/internal/analysis"
	"github.com/markforge8/ClearLease/internal/cache"
	"github.com/markforge8/ClearLease/internal/explain"
	"github.com/markforge8/ClearLease/internal/extract"
	"github.com/markforge8/ClearLease/internal/model"
	"github.com/markforge8/ClearLease/internal/normalize"
	"github.com/markforge8/ClearLease/internal/rules"
	"github.com/markforge8/ClearLease/internal/trap"
)

// Tiers selects which explanation tiers an invocation renders. Each tier is
// independently gated; the gateway handles any combination, including none.
type Tiers struct {
	V0 bool
	V1 bool
	V2 bool
}

// AllTiers enables every explanation tier
func AllTiers() Tiers {
	return Tiers{V0: true, V1: true, V2: true}
}

// Pipeline orchestrates the complete analysis of one document. All stages
// are pure functions over the loaded tables, so one pipeline is safe for
// unbounded concurrent use.
type Pipeline struct {
	tables       *rules.Tables
	normalizer   *normalize.Normalizer
	extractor    *extract.Extractor
	aggregator   *analysis.Aggregator
	trapEngine   *trap.Engine
	chainBuilder *trap.ChainBuilder
	explainV0    *explain.V0Service
	explainV1    *explain.V1Service
	explainV2    *explain.V2Service
	gateway      *explain.Gateway
	resultCache  cache.Cache // nil when caching is disabled
	renderer     *Renderer
	config       *model.Config
}

// NewPipeline loads the rule/template tables and wires all stages. A missing
// or malformed table aborts construction; there is no degraded mode.
func NewPipeline(cfg *model.Config) (*Pipeline, error) {
	tables, err := rules.Load(cfg.Rules)
	if err != nil {
		return nil, fmt.Errorf("load rule tables: %w", err)
	}

	var resultCache cache.Cache
	if cfg.Cache.Enabled {
		resultCache = cache.NewMemoryCache(cfg.Cache.TTL, cfg.Cache.CleanupInterval)
	}

	return &Pipeline{
		tables:       tables,
		normalizer:   normalize.NewNormalizer(),
		extractor:    extract.NewExtractor(tables.Extraction),
		aggregator:   analysis.NewAggregator(tables.RiskMappings),
		trapEngine:   trap.NewEngine(),
		chainBuilder: trap.NewChainBuilder(),
		explainV0:    explain.NewV0Service(tables.TemplatesV0),
		explainV1:    explain.NewV1Service(tables.TemplatesV1),
		explainV2:    explain.NewV2Service(),
		gateway:      explain.NewGateway(),
		resultCache:  resultCache,
		renderer:     NewRenderer(cfg.Output.Pretty),
		config:       cfg,
	}, nil
}

// Analyze runs the full pipeline over one document and returns the audit
// report. The only caller-visible errors are empty input and (fatal at
// construction) table problems; everything else degrades to smaller output.
func (p *Pipeline) Analyze(sourceID, text string) (*model.Report, error) {
	if p.resultCache != nil {
		if data, ok := p.resultCache.Get(cache.Key(text)); ok {
			var cached model.Report
			if err := json.Unmarshal(data, &cached); err == nil {
				return &cached, nil
			}
			// A corrupt entry is dropped and recomputed.
			_ = p.resultCache.Delete(cache.Key(text))
		}
	}

	report, err := p.analyze(sourceID, text, AllTiers())
	if err != nil {
		return nil, err
	}

	if p.resultCache != nil {
		if data, err := json.Marshal(report); err == nil {
			_ = p.resultCache.Set(cache.Key(text), data, p.config.Cache.TTL)
		}
	}

	return report, nil
}

// AnalyzeTiers is Analyze with an explicit tier selection. Results are not
// cached: the cache key would otherwise alias across tier combinations.
func (p *Pipeline) AnalyzeTiers(sourceID, text string, tiers Tiers) (*model.Report, error) {
	return p.analyze(sourceID, text, tiers)
}

func (p *Pipeline) analyze(sourceID, text string, tiers Tiers) (*model.Report, error) {
	// 1. Normalize
	segments, err := p.normalizer.Normalize(text)
	if err != nil {
		return nil, fmt.Errorf("normalize: %w", err)
	}

	// 2. Extract signals
	signals := p.extractor.Extract(segments)

	// 3. Aggregate risks and derive structural fields
	analysisOut := p.aggregator.Analyze(signals)

	// 4. Detect traps from the categorical signal bridge
	riskSignals := deriveRiskSignals(analysisOut.RiskItems)
	traps := p.trapEngine.Detect(riskSignals)

	// 5. Expand traps into causal chains
	chains := p.chainBuilder.Build(traps)

	// 6. Render the gated explanation tiers
	var v0Out *model.ExplanationOutput
	if tiers.V0 {
		out := p.explainV0.Explain(analysisOut)
		v0Out = &out
	}

	var v1Out *model.ExplanationOutputV1
	if tiers.V1 {
		out := p.explainV1.Explain(analysisOut.RiskFields)
		v1Out = &out
	}

	var v2Out *model.MechanismOutput
	if tiers.V2 {
		if t, found := findTemporalLock(traps); found {
			out, err := p.explainV2.Explain(buildMechanismInput(t))
			if err != nil {
				return nil, fmt.Errorf("explain v2: %w", err)
			}
			v2Out = out
		}
	}

	// 7. Aggregate across tiers
	gatewayOut := p.gateway.Aggregate(v0Out, v1Out, v2Out)

	return &model.Report{
		SourceID:   sourceID,
		AnalyzedAt: time.Now().UTC(),
		Stats:      normalize.Stats(segments),
		Segments:   segments,
		Signals:    signals,
		Analysis:   analysisOut,
		Traps:      traps,
		Chains:     chains,
		Gateway:    gatewayOut,
	}, nil
}

// Renderer returns the pipeline's output renderer.
func (p *Pipeline) Renderer() *Renderer {
	return p.renderer
}

func findTemporalLock(traps []model.Trap) (model.Trap, bool) {
	for _, t := range traps {
		if t.TrapType == model.TrapTemporalLock {
			return t, true
		}
	}
	return model.Trap{}, false
}
