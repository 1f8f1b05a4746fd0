package schema

import (
	"os"
	"path/filepath"
	"testing"

	"simpro-import-service/pkg/errors"
)

func writeSchemaFile(t *testing.T, content string) string {
	t.Helper()

	dir := t.TempDir()
	path := filepath.Join(dir, "schema.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write schema file: %v", err)
	}
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if len(cfg.TemplateColumns) == 0 {
		t.Fatal("default template columns are empty")
	}
	if cfg.TemplateColumns[0] != "Part Number" {
		t.Errorf("first template column = %q, want Part Number", cfg.TemplateColumns[0])
	}
	if cfg.Defaults["Tax Code"] != "G" {
		t.Errorf("Tax Code default = %q, want G", cfg.Defaults["Tax Code"])
	}
	if cfg.TaxCodeColumn != "Tax Code" {
		t.Errorf("TaxCodeColumn = %q, want Tax Code", cfg.TaxCodeColumn)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config failed validation: %v", err)
	}
}

func TestLoadOverridesAndMerges(t *testing.T) {
	path := writeSchemaFile(t, `{
		"template_columns": ["Code", "Name", "Price"],
		"aliases": {"Item-Code": "Code"},
		"defaults": {"Price": "0"},
		"allowed_tax_codes": ["S"],
		"required_nonempty": ["Code"],
		"required_numeric": ["Price"],
		"tax_code_column": "Price"
	}`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if len(cfg.TemplateColumns) != 3 || cfg.TemplateColumns[0] != "Code" {
		t.Errorf("TemplateColumns = %v, want document values", cfg.TemplateColumns)
	}
	// Alias keys are re-normalized at load.
	if got := cfg.Aliases["item code"]; got != "Code" {
		t.Errorf("Aliases[item code] = %q, want Code", got)
	}
	if _, ok := cfg.Aliases["Item-Code"]; ok {
		t.Error("raw alias key survived normalization")
	}
}

func TestLoadPartialDocumentKeepsDefaults(t *testing.T) {
	path := writeSchemaFile(t, `{"allowed_tax_codes": ["G", "X"]}`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if len(cfg.AllowedTaxCodes) != 2 || cfg.AllowedTaxCodes[1] != "X" {
		t.Errorf("AllowedTaxCodes = %v, want document values", cfg.AllowedTaxCodes)
	}
	if len(cfg.TemplateColumns) != len(DefaultConfig().TemplateColumns) {
		t.Errorf("TemplateColumns = %v, want built-in defaults", cfg.TemplateColumns)
	}
	if cfg.Defaults["UOM"] != "ea" {
		t.Errorf("Defaults[UOM] = %q, want built-in ea", cfg.Defaults["UOM"])
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}

	importErr, ok := errors.AsImportError(err)
	if !ok {
		t.Fatalf("error is not an ImportError: %v", err)
	}
	if importErr.Code != errors.CodeFileNotFound {
		t.Errorf("code = %q, want %q", importErr.Code, errors.CodeFileNotFound)
	}
}

func TestLoadInvalidJSON(t *testing.T) {
	path := writeSchemaFile(t, `{not json`)

	_, err := Load(path)
	if err == nil {
		t.Fatal("expected error for invalid JSON")
	}

	importErr, ok := errors.AsImportError(err)
	if !ok {
		t.Fatalf("error is not an ImportError: %v", err)
	}
	if importErr.Code != errors.CodeInvalidConfig {
		t.Errorf("code = %q, want %q", importErr.Code, errors.CodeInvalidConfig)
	}
}

func TestValidateRejectsBadConfigs(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{
			name:   "empty template",
			mutate: func(c *Config) { c.TemplateColumns = nil },
		},
		{
			name:   "blank column name",
			mutate: func(c *Config) { c.TemplateColumns = append(c.TemplateColumns, "  ") },
		},
		{
			name:   "duplicate normalized columns",
			mutate: func(c *Config) { c.TemplateColumns = append(c.TemplateColumns, "part_number") },
		},
		{
			name:   "alias to unknown column",
			mutate: func(c *Config) { c.Aliases["mystery"] = "No Such Column" },
		},
		{
			name:   "blank tax code column",
			mutate: func(c *Config) { c.TaxCodeColumn = "" },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)

			if err := cfg.Validate(); err == nil {
				t.Error("Validate() = nil, want error")
			}
		})
	}
}

func TestIsAllowedTaxCode(t *testing.T) {
	cfg := DefaultConfig()

	tests := []struct {
		code     string
		expected bool
	}{
		{"G", true},
		{"g", true},
		{"F", true},
		{"E", true},
		{"X", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := cfg.IsAllowedTaxCode(tt.code); got != tt.expected {
			t.Errorf("IsAllowedTaxCode(%q) = %v, want %v", tt.code, got, tt.expected)
		}
	}
}

func TestDefaultTaxCode(t *testing.T) {
	cfg := DefaultConfig()
	if got := cfg.DefaultTaxCode(); got != "G" {
		t.Errorf("DefaultTaxCode() = %q, want G", got)
	}

	cfg.Defaults = map[string]string{}
	if got := cfg.DefaultTaxCode(); got != "" {
		t.Errorf("DefaultTaxCode() with no default = %q, want empty", got)
	}
}
