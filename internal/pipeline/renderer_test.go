package pipeline

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/markforge8/ClearLease/internal/model"
)

func TestRenderer_RenderJSONToFile(t *testing.T) {
	r := NewRenderer(true)

	report := &model.Report{
		SourceID: "lease.txt",
		Gateway: model.GatewayOutput{
			Overview: model.Overview{AttentionLevel: model.SeverityMedium},
		},
	}

	path := filepath.Join(t.TempDir(), "report.json")
	if err := r.RenderJSON(report, path); err != nil {
		t.Fatalf("RenderJSON failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read report failed: %v", err)
	}

	var decoded model.Report
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("decode report failed: %v", err)
	}
	if decoded.SourceID != "lease.txt" {
		t.Errorf("expected source lease.txt, got %s", decoded.SourceID)
	}
	if decoded.Gateway.Overview.AttentionLevel != model.SeverityMedium {
		t.Errorf("expected medium attention, got %s", decoded.Gateway.Overview.AttentionLevel)
	}
}

func TestRenderer_CompactAndPretty(t *testing.T) {
	report := &model.Report{SourceID: "lease.txt"}
	dir := t.TempDir()

	prettyPath := filepath.Join(dir, "pretty.json")
	if err := NewRenderer(true).RenderJSON(report, prettyPath); err != nil {
		t.Fatalf("pretty RenderJSON failed: %v", err)
	}
	compactPath := filepath.Join(dir, "compact.json")
	if err := NewRenderer(false).RenderJSON(report, compactPath); err != nil {
		t.Fatalf("compact RenderJSON failed: %v", err)
	}

	pretty, _ := os.ReadFile(prettyPath)
	compact, _ := os.ReadFile(compactPath)
	if len(pretty) <= len(compact) {
		t.Error("expected indented output to be longer than compact output")
	}
}

func TestRenderer_BadPath(t *testing.T) {
	r := NewRenderer(false)
	report := &model.Report{SourceID: "lease.txt"}

	err := r.RenderJSON(report, filepath.Join(t.TempDir(), "missing", "deep", "report.json"))
	if err == nil {
		t.Error("expected error for unwritable path, got nil")
	}
}
