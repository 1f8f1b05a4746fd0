// Package pipeline wires the import cleaning stages together: header
// mapping, frame building, and row validation over an ingested table.
//
// A Service is constructed once around an immutable schema configuration and
// is safe for concurrent use; every Run owns its table, frame and findings
// exclusively and performs no I/O.
package pipeline

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"simpro-import-service/internal/frame"
	"simpro-import-service/internal/header"
	"simpro-import-service/internal/ingest"
	"simpro-import-service/internal/schema"
	"simpro-import-service/internal/validator"
	"simpro-import-service/pkg/errors"
	"simpro-import-service/pkg/logger"
)

// Service runs the cleaning pipeline against one schema configuration.
type Service struct {
	cfg    *schema.Config
	logger logger.Logger
}

// NewService validates the schema configuration and returns a Service.
func NewService(cfg *schema.Config) (*Service, error) {
	if cfg == nil {
		return nil, errors.ConfigError(errors.CodeMissingConfig, "schema", nil)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Service{
		cfg:    cfg,
		logger: logger.GetGlobalLogger().WithComponent("pipeline"),
	}, nil
}

// Result is the outcome of one cleaning run. Frame is always fully built,
// even when findings exist; the caller decides which artifact to emit.
type Result struct {
	RunID           string
	Mapping         map[string]string
	UnfilledColumns []string
	Frame           *frame.Frame
	Findings        []validator.Finding
}

// HasFindings reports whether validation flagged any rows. When true the
// cleaned template must be withheld and only the error report returned;
// partial success is not part of the output contract.
func (r *Result) HasFindings() bool {
	return len(r.Findings) > 0
}

// Run maps the table's columns onto the template, builds the output frame,
// and validates every row.
func (s *Service) Run(ctx context.Context, table *ingest.Table) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.PipelineError(errors.CodeProcessingError, "import cleaning", err)
	}
	if table == nil {
		return nil, errors.InternalError(errors.CodeUnexpectedError, "import cleaning",
			fmt.Errorf("nil input table"))
	}

	runID := uuid.NewString()
	log := s.logger.WithField("run_id", runID)
	log.WithFields(logger.Fields{
		"input_columns": len(table.Headers),
		"input_rows":    len(table.Rows),
	}).Debug("Starting import cleaning run")

	mapping, unfilled := header.MapColumns(table.Headers, s.cfg.TemplateColumns, s.cfg.Aliases)
	if len(unfilled) > 0 {
		// Not an error: unfilled template columns are defaulted downstream.
		log.WithField("unfilled_columns", unfilled).Debug("Template columns left unmapped")
	}

	f := frame.Build(table.Headers, table.Rows, mapping, s.cfg)
	findings := validator.Validate(f, s.cfg)

	log.WithFields(logger.Fields{
		"mapped_columns": len(mapping),
		"output_rows":    f.NumRows(),
		"findings":       len(findings),
	}).Info("Import cleaning run complete")

	return &Result{
		RunID:           runID,
		Mapping:         mapping,
		UnfilledColumns: unfilled,
		Frame:           f,
		Findings:        findings,
	}, nil
}
