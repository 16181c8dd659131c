package app

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestLoadConfigDefaults(t *testing.T) {
	path := writeFile(t, t.TempDir(), "config.yaml", "provider:\n  api_key: test-key\n")
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.ShortWindow != 5 || cfg.LongWindow != 10 {
		t.Fatalf("windows = %d/%d, want 5/10", cfg.ShortWindow, cfg.LongWindow)
	}
	if cfg.MinTrainRows != 50 {
		t.Fatalf("MinTrainRows = %d, want 50", cfg.MinTrainRows)
	}
	if cfg.NeutralThreshold != 0.005 {
		t.Fatalf("NeutralThreshold = %v, want 0.005", cfg.NeutralThreshold)
	}
	if cfg.EpochDate != "2015-01-01" {
		t.Fatalf("EpochDate = %s", cfg.EpochDate)
	}
	if cfg.ArchiveFormat != "parquet" {
		t.Fatalf("ArchiveFormat = %s, want parquet", cfg.ArchiveFormat)
	}
	if cfg.Pacing != time.Second {
		t.Fatalf("Pacing = %v, want 1s", cfg.Pacing)
	}
	want := time.Date(2015, 1, 1, 0, 0, 0, 0, time.UTC)
	if !cfg.Epoch().Equal(want) {
		t.Fatalf("Epoch() = %v, want %v", cfg.Epoch(), want)
	}
}

func TestLoadConfigFileOverridesDefaults(t *testing.T) {
	path := writeFile(t, t.TempDir(), "config.yaml",
		"short_window: 3\nlong_window: 7\nmin_train_rows: 30\narchive_format: json\n")
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.ShortWindow != 3 || cfg.LongWindow != 7 || cfg.MinTrainRows != 30 {
		t.Fatalf("overrides not applied: %+v", cfg)
	}
	if cfg.ArchiveFormat != "json" {
		t.Fatalf("ArchiveFormat = %s, want json", cfg.ArchiveFormat)
	}
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	t.Setenv("POLYGON_API_KEY", "env-key")
	t.Setenv("DATA_DIR", "/tmp/bars")
	t.Setenv("SAVE_FORMAT", "csv")
	path := writeFile(t, t.TempDir(), "config.yaml", "provider:\n  api_key: file-key\n")

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Provider.APIKey != "env-key" {
		t.Fatalf("APIKey = %s, want env-key", cfg.Provider.APIKey)
	}
	if cfg.DataDir != "/tmp/bars" {
		t.Fatalf("DataDir = %s", cfg.DataDir)
	}
	if cfg.ArchiveFormat != "csv" {
		t.Fatalf("ArchiveFormat = %s, want csv", cfg.ArchiveFormat)
	}
}

func TestLoadConfigRejectsBadValues(t *testing.T) {
	cases := []string{
		"archive_format: xml\n",
		"epoch_date: 01/01/2015\n",
		"short_window: 8\nlong_window: 6\n",
		"log_level: loud\n",
	}
	for _, content := range cases {
		path := writeFile(t, t.TempDir(), "config.yaml", content)
		if _, err := LoadConfig(path); err == nil {
			t.Fatalf("expected validation error for %q", content)
		}
	}
}

func TestLoadInstruments(t *testing.T) {
	path := writeFile(t, t.TempDir(), "tickers.txt",
		"# portfolio\naapl\nMSFT\n\nAAPL\n")
	got, err := LoadInstruments(path)
	if err != nil {
		t.Fatalf("LoadInstruments: %v", err)
	}
	if len(got) != 2 || got[0] != "AAPL" || got[1] != "MSFT" {
		t.Fatalf("instruments = %v", got)
	}
}

func TestLoadInstrumentsJSON(t *testing.T) {
	path := writeFile(t, t.TempDir(), "tickers.json", `["aapl", "msft"]`)
	got, err := LoadInstruments(path)
	if err != nil {
		t.Fatalf("LoadInstruments: %v", err)
	}
	if len(got) != 2 || got[0] != "AAPL" {
		t.Fatalf("instruments = %v", got)
	}
}

func TestLoadInstrumentsEmptyIsError(t *testing.T) {
	path := writeFile(t, t.TempDir(), "tickers.txt", "# nothing here\n")
	if _, err := LoadInstruments(path); err == nil {
		t.Fatalf("expected error for empty list")
	}
	if _, err := LoadInstruments(filepath.Join(t.TempDir(), "missing.txt")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}
