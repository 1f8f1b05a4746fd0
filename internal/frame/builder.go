package frame

import (
	"strings"

	"simpro-import-service/internal/schema"
)

// Build constructs the output frame from the ingested header row and data
// rows, using the resolved column mapping.
//
// Mapped source columns are copied verbatim (cells were trimmed at
// ingestion). Cells that are empty after trimming receive the configured
// default for their column; defaults never overwrite a present value. The
// currency-like columns are then scrubbed of thousands-separator commas and
// dollar signs. Row count and row order always match the input, and the
// column set is exactly the template, regardless of mapping outcome.
func Build(headers []string, rows [][]string, mapping map[string]string, cfg *schema.Config) *Frame {
	f := New(cfg.TemplateColumns, len(rows))

	for hi, src := range headers {
		target, ok := mapping[src]
		if !ok {
			continue
		}
		for ri, row := range rows {
			// Short rows are padded by the zero-value cells New allocated.
			if hi < len(row) {
				f.Set(ri, target, row[hi])
			}
		}
	}

	for column, fallback := range cfg.Defaults {
		if !f.HasColumn(column) {
			continue
		}
		for ri := range f.Rows {
			if strings.TrimSpace(f.Get(ri, column)) == "" {
				f.Set(ri, column, fallback)
			}
		}
	}

	for _, column := range cfg.RequiredNumeric {
		if !f.HasColumn(column) {
			continue
		}
		for ri := range f.Rows {
			f.Set(ri, column, CleanCurrency(f.Get(ri, column)))
		}
	}

	return f
}
