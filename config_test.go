package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestPreprocessPercentages(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"whole percent", "discount_rate: 4%", "discount_rate: 0.04"},
		{"fractional percent", "rate: 3.5%", "rate: 0.035"},
		{"plain decimal untouched", "discount_rate: 0.04", "discount_rate: 0.04"},
		{"multiple values", "a: 2%\nb: 10%", "a: 0.02\nb: 0.1"},
		{"percent not after colon untouched", "note: improvement of 5 %points", "note: improvement of 5 %points"},
	}
	for _, tt := range tests {
		if got := preprocessPercentages(tt.input); got != tt.want {
			t.Errorf("%s: got %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestLoadDefaultConfig(t *testing.T) {
	config, err := LoadDefaultConfig()
	if err != nil {
		t.Fatalf("embedded default config failed to parse: %v", err)
	}

	if config.GetGrantSize() != 1000000 {
		t.Errorf("grant size = %f, want 1000000", config.GetGrantSize())
	}
	if config.GetTrials() != 10000 {
		t.Errorf("trials = %d, want 10000", config.GetTrials())
	}
	if config.GetSweepPoints() != 21 {
		t.Errorf("sweep points = %d, want 21", config.GetSweepPoints())
	}

	// The shipped file writes the rate as "4%", exercising the preprocessor
	w := config.GetMoralWeights()
	if w.DiscountRate != 0.04 {
		t.Errorf("discount rate = %v, want 0.04", w.DiscountRate)
	}
	if w.Under5Malaria != 116.25262 {
		t.Errorf("under-5 malaria weight = %v, want 116.25262", w.Under5Malaria)
	}
}

func TestConfigDefaultsWhenEmpty(t *testing.T) {
	config := &Config{}

	if config.GetGrantSize() != DefaultGrantSize {
		t.Errorf("grant size = %f, want default", config.GetGrantSize())
	}
	if config.GetTrials() != 10000 {
		t.Errorf("trials = %d, want 10000", config.GetTrials())
	}
	if config.GetSweepPoints() != 21 {
		t.Errorf("sweep points = %d, want 21", config.GetSweepPoints())
	}
	if config.GetServerAddr() != ":8080" {
		t.Errorf("server addr = %q, want :8080", config.GetServerAddr())
	}
	if config.GetReportDir() != "." {
		t.Errorf("report dir = %q, want .", config.GetReportDir())
	}
	if config.GetMoralWeights() != DefaultMoralWeights() {
		t.Errorf("empty weights block should fall back to the defaults")
	}
}

func TestConfigPresetOverridesInlineWeights(t *testing.T) {
	config := &Config{
		Preset: "equal_lives",
		Weights: MoralWeights{
			Under5Malaria: 999,
		},
	}

	w := config.GetMoralWeights()
	if w.Under5Malaria != 100 {
		t.Errorf("preset should win over the inline block, got %v", w.Under5Malaria)
	}

	// An unknown preset name falls through to the inline block
	config.Preset = "no_such_preset"
	w = config.GetMoralWeights()
	if w.Under5Malaria != 999 {
		t.Errorf("unknown preset should fall back to inline weights, got %v", w.Under5Malaria)
	}
	if w.Mode != WeightModeManual || w.Multiplier != 1.0 {
		t.Errorf("inline weights should be backfilled with mode/multiplier defaults")
	}
}

func TestSaveAndLoadConfigRoundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	original := &Config{
		Grant:       GrantConfig{Size: 500000, Charity: "smc", Location: "burkina_faso"},
		MonteCarlo:  MonteCarloConfig{Trials: 2500, Seed: 7},
		Sensitivity: SweepConfig{Points: 11, Parameter: "discount_rate"},
		Weights:     DefaultMoralWeights(),
		Server:      ServerConfig{Addr: "localhost:9090"},
		Report:      ReportConfig{Dir: "reports"},
	}

	if err := SaveConfig(original, path); err != nil {
		t.Fatalf("SaveConfig: %v", err)
	}

	// The saved file carries the usage header as YAML comments
	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(raw), "# Charity Forecast Configuration") {
		t.Errorf("saved config missing its header comment")
	}

	loaded, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if loaded.Grant != original.Grant {
		t.Errorf("grant block: %+v, want %+v", loaded.Grant, original.Grant)
	}
	if loaded.MonteCarlo != original.MonteCarlo {
		t.Errorf("monte carlo block: %+v, want %+v", loaded.MonteCarlo, original.MonteCarlo)
	}
	if loaded.Sensitivity != original.Sensitivity {
		t.Errorf("sensitivity block: %+v, want %+v", loaded.Sensitivity, original.Sensitivity)
	}
	if loaded.Weights != original.Weights {
		t.Errorf("weights block: %+v, want %+v", loaded.Weights, original.Weights)
	}
	if loaded.Server.Addr != "localhost:9090" || loaded.Report.Dir != "reports" {
		t.Errorf("server/report blocks did not survive the roundtrip")
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	if !os.IsNotExist(err) {
		t.Errorf("expected a not-exist error, got %v", err)
	}
}

func TestLoadConfigWithPercentSigns(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "moral_weights:\n  under5_malaria: 116.25262\n  discount_rate: 7%\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	config, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if config.Weights.DiscountRate != 0.07 {
		t.Errorf("discount rate = %v, want 0.07", config.Weights.DiscountRate)
	}
}
