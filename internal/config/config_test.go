package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/kailas-cloud/cardex/internal/domain"
)

func validConfig() Config {
	cfg := Config{
		HTTP: HTTPConfig{Port: 8080},
		Datasets: []DatasetConfig{
			{Company: "롯데카드", Path: "data/lotte.csv", FeeFormat: "plain"},
			{Company: "신한카드", Path: "data/shinhan.parquet", FeeFormat: "korean"},
		},
	}
	cfg.ApplyDefaults()
	return cfg
}

func TestValidate_OK(t *testing.T) {
	cfg := validConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestApplyDefaults_CorpusCompanyIsFirstDataset(t *testing.T) {
	cfg := validConfig()
	if cfg.Search.CorpusCompany != "롯데카드" {
		t.Errorf("expected CorpusCompany=롯데카드, got %q", cfg.Search.CorpusCompany)
	}

	cfg = Config{
		Datasets: []DatasetConfig{{Company: "롯데카드"}, {Company: "신한카드"}},
		Search:   SearchConfig{CorpusCompany: "신한카드"},
	}
	cfg.ApplyDefaults()
	if cfg.Search.CorpusCompany != "신한카드" {
		t.Errorf("configured CorpusCompany overridden: %q", cfg.Search.CorpusCompany)
	}
}

func TestValidate_UnknownCorpusCompany(t *testing.T) {
	cfg := validConfig()
	cfg.Search.CorpusCompany = "현대카드"

	err := cfg.Validate()
	if err == nil || !strings.Contains(err.Error(), "corpus_company") {
		t.Fatalf("expected corpus_company error, got %v", err)
	}
}

func TestValidate_InvalidPort(t *testing.T) {
	cfg := validConfig()
	cfg.HTTP.Port = 0

	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for invalid port")
	}
}

func TestValidate_NoDatasets(t *testing.T) {
	cfg := validConfig()
	cfg.Datasets = nil

	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for missing datasets")
	}
}

func TestValidate_UnknownFeeFormat(t *testing.T) {
	cfg := validConfig()
	cfg.Datasets[1].FeeFormat = "roman"

	err := cfg.Validate()
	if !errors.Is(err, domain.ErrUnknownFeeFormat) {
		t.Fatalf("expected ErrUnknownFeeFormat, got %v", err)
	}
	if !strings.HasPrefix(err.Error(), "datasets[1].fee_format") {
		t.Errorf("unexpected error message: %q", err.Error())
	}
}

func TestValidate_DatasetFields(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*DatasetConfig)
	}{
		{"missing company", func(d *DatasetConfig) { d.Company = "" }},
		{"missing path", func(d *DatasetConfig) { d.Path = "" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg.Datasets[0])
			if err := cfg.Validate(); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestValidate_SearchDefaults(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*SearchConfig)
	}{
		{"unknown mode", func(s *SearchConfig) { s.DefaultMode = "semantic" }},
		{"page size over max", func(s *SearchConfig) { s.DefaultPageSize = 80 }},
		{"negative min fee", func(s *SearchConfig) { s.DefaultMinFee = -1 }},
		{"inverted fee range", func(s *SearchConfig) { s.DefaultMinFee = 50000; s.DefaultMaxFee = 10000 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg.Search)
			if err := cfg.Validate(); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := Config{}
	cfg.ApplyDefaults()

	if cfg.HTTP.ReadTimeoutSec != 10 {
		t.Errorf("expected ReadTimeoutSec=10, got %d", cfg.HTTP.ReadTimeoutSec)
	}
	if cfg.HTTP.ShutdownSec != 10 {
		t.Errorf("expected ShutdownSec=10, got %d", cfg.HTTP.ShutdownSec)
	}
	if cfg.Search.DefaultPageSize != 5 {
		t.Errorf("expected DefaultPageSize=5, got %d", cfg.Search.DefaultPageSize)
	}
	if cfg.Search.MaxPageSize != 50 {
		t.Errorf("expected MaxPageSize=50, got %d", cfg.Search.MaxPageSize)
	}
	if cfg.Search.DefaultMode != "expand" {
		t.Errorf("expected DefaultMode=expand, got %q", cfg.Search.DefaultMode)
	}
	if cfg.Search.DefaultMaxFee != 100000 {
		t.Errorf("expected DefaultMaxFee=100000, got %d", cfg.Search.DefaultMaxFee)
	}
	if cfg.Cache.Prefix != "cardex:" {
		t.Errorf("expected Prefix='cardex:', got %q", cfg.Cache.Prefix)
	}
	if cfg.Image.TimeoutSec != 5 {
		t.Errorf("expected TimeoutSec=5, got %d", cfg.Image.TimeoutSec)
	}
}

func TestApplyDefaults_NoOverride(t *testing.T) {
	cfg := Config{
		HTTP:   HTTPConfig{ReadTimeoutSec: 30, WriteTimeoutSec: 60, ShutdownSec: 5},
		Search: SearchConfig{DefaultPageSize: 10, MaxPageSize: 20, DefaultMode: "tfidf"},
		Cache:  CacheConfig{TTLSec: 60, Prefix: "custom:"},
	}
	cfg.ApplyDefaults()

	if cfg.HTTP.WriteTimeoutSec != 60 {
		t.Errorf("expected WriteTimeoutSec=60, got %d", cfg.HTTP.WriteTimeoutSec)
	}
	if cfg.Search.DefaultPageSize != 10 || cfg.Search.DefaultMode != "tfidf" {
		t.Errorf("search defaults overridden: %+v", cfg.Search)
	}
	if cfg.Cache.TTLSec != 60 || cfg.Cache.Prefix != "custom:" {
		t.Errorf("cache defaults overridden: %+v", cfg.Cache)
	}
}

func TestLoadFile_ExpandsEnv(t *testing.T) {
	t.Setenv("CARDEX_PORT", "9090")
	path := filepath.Join(t.TempDir(), "test.yaml")
	yml := `
http:
  port: ${CARDEX_PORT}
datasets:
  - company: 롯데카드
    path: ${LOTTE_PATH:-data/lotte.csv}
    fee_format: plain
`
	if err := os.WriteFile(path, []byte(yml), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.HTTP.Port != 9090 {
		t.Errorf("expected port 9090, got %d", cfg.HTTP.Port)
	}
	if cfg.Datasets[0].Path != "data/lotte.csv" {
		t.Errorf("expected default path, got %q", cfg.Datasets[0].Path)
	}
	if cfg.Search.DefaultPageSize != 5 {
		t.Error("defaults not applied")
	}
}
