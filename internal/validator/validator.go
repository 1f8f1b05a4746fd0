// Package validator checks every row of a built frame against the schema's
// row-level rules and reports findings for an error report.
//
// Findings never abort processing: the pipeline always finishes building the
// full frame and then validates it, so a report covers every problem row.
package validator

import (
	"fmt"
	"strings"

	"simpro-import-service/internal/frame"
	"simpro-import-service/internal/schema"
)

// Finding is a single validation failure tied to an output row and field.
// Row is 1-based and counts the implicit header row, so the first data row
// reports as 2, matching spreadsheet row numbering.
type Finding struct {
	Row   int    `csv:"row" json:"row"`
	Field string `csv:"field" json:"field"`
	Error string `csv:"error" json:"error"`
}

const (
	msgRequired = "Required"
	msgNumeric  = "Must be numeric ex tax"
)

// Validate checks the frame and returns findings in a stable order: row
// order, and within a row required-nonempty checks, then required-numeric
// checks, then the tax code check.
//
// A blank required-numeric cell does not produce a numeric finding; blank
// and malformed are distinct failure reasons, and blanks are only reported
// for columns also listed as required-nonempty. A blank tax code falls back
// to the configured default before being checked against the allowed set.
func Validate(f *frame.Frame, cfg *schema.Config) []Finding {
	findings := make([]Finding, 0)
	taxMessage := fmt.Sprintf("Must be one of %v", cfg.AllowedTaxCodes)

	for i := 0; i < f.NumRows(); i++ {
		rowNum := i + 2

		for _, column := range cfg.RequiredNonEmpty {
			if !f.HasColumn(column) {
				continue
			}
			if strings.TrimSpace(f.Get(i, column)) == "" {
				findings = append(findings, Finding{Row: rowNum, Field: column, Error: msgRequired})
			}
		}

		for _, column := range cfg.RequiredNumeric {
			if !f.HasColumn(column) {
				continue
			}
			value := f.Get(i, column)
			if _, ok := frame.ToNumeric(value); !ok && strings.TrimSpace(value) != "" {
				findings = append(findings, Finding{Row: rowNum, Field: column, Error: msgNumeric})
			}
		}

		if f.HasColumn(cfg.TaxCodeColumn) {
			code := strings.ToUpper(strings.TrimSpace(f.Get(i, cfg.TaxCodeColumn)))
			if code == "" {
				code = strings.ToUpper(strings.TrimSpace(cfg.DefaultTaxCode()))
			}
			if code != "" && !cfg.IsAllowedTaxCode(code) {
				findings = append(findings, Finding{Row: rowNum, Field: cfg.TaxCodeColumn, Error: taxMessage})
			}
		}
	}

	return findings
}
