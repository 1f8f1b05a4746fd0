// Package schema defines the import template configuration: the fixed output
// column set, header aliases, default cell values, and the row-level rule
// sets the validator enforces.
//
// A Config is loaded once at startup, either from a JSON document or from
// the built-in simPRO catalogue defaults, validated, and treated as
// immutable afterwards. Pipeline invocations share it read-only, so
// concurrent runs need no locking.
package schema

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"simpro-import-service/internal/header"
	"simpro-import-service/pkg/errors"
)

// Config holds the template schema an uploaded file is cleaned against.
type Config struct {
	// TemplateColumns defines the output column set and order. Every output
	// row has exactly these columns, no more, no less.
	TemplateColumns []string `json:"template_columns"`

	// Aliases maps a normalized source header to a template column. Keys are
	// re-normalized at load time so hand-written documents do not have to
	// match the normalizer's output exactly.
	Aliases map[string]string `json:"aliases"`

	// Defaults supplies fallback values for cells that are still empty after
	// mapping. Keys that name no template column are ignored.
	Defaults map[string]string `json:"defaults"`

	// AllowedTaxCodes is the permitted value set for the tax code column.
	AllowedTaxCodes []string `json:"allowed_tax_codes"`

	// RequiredNonEmpty lists columns that must not be blank in any row.
	RequiredNonEmpty []string `json:"required_nonempty"`

	// RequiredNumeric lists columns whose non-blank values must coerce to a
	// number. These are the currency-like columns, so the frame builder also
	// scrubs thousands separators and dollar signs from them.
	RequiredNumeric []string `json:"required_numeric"`

	// TaxCodeColumn names the column checked against AllowedTaxCodes.
	TaxCodeColumn string `json:"tax_code_column"`
}

// DefaultConfig returns the built-in simPRO catalogue import template.
func DefaultConfig() *Config {
	return &Config{
		TemplateColumns: []string{
			"Part Number", "Description", "Supplier", "Supplier Part Number",
			"Cost ex Tax", "Sell ex Tax", "Tax Code", "UOM",
			"Barcode", "Manufacturer", "Brand", "Location",
			"Minimum Stock", "Maximum Stock", "Notes",
		},
		Aliases: map[string]string{
			// Common aliases seen in supplier price files
			"part no":              "Part Number",
			"part":                 "Part Number",
			"item number":          "Part Number",
			"item no":              "Part Number",
			"sku":                  "Part Number",
			"product code":         "Part Number",
			"stock code":           "Part Number",
			"desc":                 "Description",
			"item description":     "Description",
			"product name":         "Description",
			"item name":            "Description",
			"supplier name":        "Supplier",
			"vendor":               "Supplier",
			"vendor name":          "Supplier",
			"supplier part":        "Supplier Part Number",
			"supplier code":        "Supplier Part Number",
			"vendor part number":   "Supplier Part Number",
			"cost":                 "Cost ex Tax",
			"cost price":           "Cost ex Tax",
			"buy price":            "Cost ex Tax",
			"unit cost":            "Cost ex Tax",
			"trade price":          "Cost ex Tax",
			"sell":                 "Sell ex Tax",
			"sell price":           "Sell ex Tax",
			"price":                "Sell ex Tax",
			"unit price":           "Sell ex Tax",
			"retail price":         "Sell ex Tax",
			"rrp":                  "Sell ex Tax",
			"tax":                  "Tax Code",
			"gst":                  "Tax Code",
			"tax rate":             "Tax Code",
			"unit":                 "UOM",
			"unit of measure":      "UOM",
			"uom each":             "UOM",
			"ean":                  "Barcode",
			"upc":                  "Barcode",
			"gtin":                 "Barcode",
			"mfr":                  "Manufacturer",
			"maker":                "Manufacturer",
			"make":                 "Manufacturer",
			"bin":                  "Location",
			"bin location":         "Location",
			"warehouse location":   "Location",
			"min stock":            "Minimum Stock",
			"reorder level":        "Minimum Stock",
			"max stock":            "Maximum Stock",
			"comments":             "Notes",
			"remarks":              "Notes",
			"additional information": "Notes",
		},
		Defaults: map[string]string{
			"Tax Code": "G",
			"UOM":      "ea",
		},
		AllowedTaxCodes:  []string{"G", "F", "E"},
		RequiredNonEmpty: []string{"Part Number"},
		RequiredNumeric:  []string{"Cost ex Tax", "Sell ex Tax"},
		TaxCodeColumn:    "Tax Code",
	}
}

// Load reads a schema document from a JSON file. Settings absent from the
// document fall back to the built-in defaults, matching the behavior of the
// original config loader. The result is validated before being returned.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.FileError(errors.CodeFileNotFound, path, err)
		}
		if os.IsPermission(err) {
			return nil, errors.FileError(errors.CodeFilePermission, path, err)
		}
		return nil, errors.FileError(errors.CodeDirectoryError, path, err)
	}

	var loaded Config
	if err := json.Unmarshal(data, &loaded); err != nil {
		return nil, errors.ConfigError(errors.CodeInvalidConfig, path, err).
			WithSuggestion("check the schema document for valid JSON")
	}

	cfg := mergeWithDefaults(&loaded)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// mergeWithDefaults fills settings the document omitted from DefaultConfig.
func mergeWithDefaults(loaded *Config) *Config {
	cfg := DefaultConfig()

	if loaded.TemplateColumns != nil {
		cfg.TemplateColumns = loaded.TemplateColumns
	}
	if loaded.Aliases != nil {
		cfg.Aliases = loaded.Aliases
	}
	if loaded.Defaults != nil {
		cfg.Defaults = loaded.Defaults
	}
	if loaded.AllowedTaxCodes != nil {
		cfg.AllowedTaxCodes = loaded.AllowedTaxCodes
	}
	if loaded.RequiredNonEmpty != nil {
		cfg.RequiredNonEmpty = loaded.RequiredNonEmpty
	}
	if loaded.RequiredNumeric != nil {
		cfg.RequiredNumeric = loaded.RequiredNumeric
	}
	if loaded.TaxCodeColumn != "" {
		cfg.TaxCodeColumn = loaded.TaxCodeColumn
	}

	// Re-key aliases by their normalized form so lookups during mapping are
	// exact map hits.
	normalized := make(map[string]string, len(cfg.Aliases))
	for key, target := range cfg.Aliases {
		normalized[header.Normalize(key)] = target
	}
	cfg.Aliases = normalized

	return cfg
}

// Validate checks the configuration for problems that would make mapping
// ambiguous or the output malformed.
func (c *Config) Validate() error {
	if len(c.TemplateColumns) == 0 {
		return errors.ConfigError(errors.CodeInvalidConfig, "template_columns",
			fmt.Errorf("template column list is empty"))
	}

	seen := make(map[string]string, len(c.TemplateColumns))
	for _, col := range c.TemplateColumns {
		if strings.TrimSpace(col) == "" {
			return errors.ConfigError(errors.CodeInvalidConfig, "template_columns",
				fmt.Errorf("template column name is blank"))
		}
		key := header.Normalize(col)
		if prev, ok := seen[key]; ok {
			return errors.ConfigError(errors.CodeInvalidConfig, "template_columns",
				fmt.Errorf("columns %q and %q normalize to the same key %q", prev, col, key))
		}
		seen[key] = col
	}

	templateSet := make(map[string]bool, len(c.TemplateColumns))
	for _, col := range c.TemplateColumns {
		templateSet[col] = true
	}
	for key, target := range c.Aliases {
		if !templateSet[target] {
			return errors.ConfigError(errors.CodeInvalidConfig, "aliases",
				fmt.Errorf("alias %q points at unknown template column %q", key, target))
		}
	}

	if strings.TrimSpace(c.TaxCodeColumn) == "" {
		return errors.ConfigError(errors.CodeInvalidConfig, "tax_code_column",
			fmt.Errorf("tax code column name is blank"))
	}

	return nil
}

// IsAllowedTaxCode reports whether code is a member of the allowed set.
// Comparison ignores case; the validator uppercases values before checking.
func (c *Config) IsAllowedTaxCode(code string) bool {
	for _, allowed := range c.AllowedTaxCodes {
		if strings.EqualFold(code, allowed) {
			return true
		}
	}
	return false
}

// DefaultTaxCode returns the configured fallback for a blank tax code cell,
// or the empty string when none is configured.
func (c *Config) DefaultTaxCode() string {
	return c.Defaults[c.TaxCodeColumn]
}
