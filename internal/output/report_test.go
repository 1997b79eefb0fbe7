package output_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rpgo/taxdrag/internal/config"
	"github.com/rpgo/taxdrag/internal/domain"
	"github.com/rpgo/taxdrag/internal/output"
)

func TestSaveConfiguration_RoundTrip(t *testing.T) {
	parser := config.NewInputParser()
	cfg := parser.CreateExampleConfiguration()
	path := filepath.Join(t.TempDir(), "scenario.yaml")

	if err := output.SaveConfiguration(cfg, path); err != nil {
		t.Fatalf("SaveConfiguration error: %v", err)
	}
	loaded, err := parser.LoadFromFile(path)
	if err != nil {
		t.Fatalf("LoadFromFile error: %v", err)
	}
	if loaded.Scenario != cfg.Scenario {
		t.Fatalf("scenario mismatch: got %+v want %+v", loaded.Scenario, cfg.Scenario)
	}
}

func TestGenerateReport(t *testing.T) {
	res := &domain.SimulationResult{
		Snapshots: []domain.YearlySnapshot{{Year: 1, TaxableBalance: 100, TaxAdvantagedBalance: 100}},
	}
	dir := t.TempDir()

	path, err := output.GenerateReport(res, "csv", filepath.Join(dir, "r.csv"))
	if err != nil {
		t.Fatalf("GenerateReport csv error: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	want := "Year,Taxable_Balance,Tax_Advantaged_Balance,Tax_Drag_Loss\n1,1.00,1.00,0.00\n"
	if string(data) != want {
		t.Fatalf("csv = %q, want %q", data, want)
	}

	if _, err := output.GenerateReport(res, "json", filepath.Join(dir, "r.json")); err != nil {
		t.Fatalf("GenerateReport json error: %v", err)
	}
	if _, err := output.GenerateReport(res, "xml", filepath.Join(dir, "r.xml")); err == nil {
		t.Fatalf("expected unsupported format error")
	}
}
