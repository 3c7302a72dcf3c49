package validation

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"targetcheck/internal/common"
	"targetcheck/internal/detect"
	"targetcheck/internal/entity"
	"targetcheck/internal/extract"
	"targetcheck/internal/reconcile"
	"targetcheck/internal/textnorm"
	"targetcheck/internal/verifier"
)

// Request is one validation call: raw per-page text plus the expected record.
// SignaturePresent carries the vision collaborator's answer when one ran;
// when nil the text fallback in detect decides.
type Request struct {
	Pages            []string
	Expected         entity.ExpectedRecord
	SignaturePresent *bool
}

// Service runs the full pipeline: normalize, extract diagnostics, ask the
// verifier, sanitize and reconcile its answer. Stateless; safe for concurrent
// requests.
type Service struct {
	logger   *slog.Logger
	verifier verifier.Verifier
	engine   *reconcile.Engine
}

func NewService(logger *slog.Logger, v verifier.Verifier, engine *reconcile.Engine) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	if engine == nil {
		engine = reconcile.NewEngine(logger, reconcile.DefaultNumericTolerance)
	}
	return &Service{logger: logger, verifier: v, engine: engine}
}

// ValidateDocument returns a terminal ValidationResult. Recoverable conditions
// (empty input, a verdict we could not read) become an invalid result with an
// empty mismatch list; only transport failures surface as errors.
func (s *Service) ValidateDocument(ctx context.Context, req Request) (entity.ValidationResult, error) {
	reqID := common.RequestIDFromContext(ctx)
	docName := common.DocumentFromContext(ctx)

	doc := textnorm.Normalize(strings.Join(req.Pages, "\n"))
	if doc == "" {
		s.logger.Warn("validate.empty_input", "req_id", reqID, "document", docName, "error", common.ErrEmptyInput)
		return entity.ValidationResult{
			Valid:      false,
			Message:    "no text could be extracted from the document",
			Mismatches: []entity.FieldMismatch{},
		}, nil
	}

	fields := extract.Fields(doc, s.logger)
	s.logPlausibility(reqID, req.Expected, fields)

	verdict, _, err := s.verifier.Verify(ctx, verifier.VerifyRequest{
		Document: doc,
		Expected: req.Expected,
		Fields:   fields,
	})
	if err != nil {
		if errors.Is(err, common.ErrTransport) {
			return entity.ValidationResult{}, err
		}
		// a verdict we could not obtain is not a field mismatch
		s.logger.Error("validate.verdict_unusable", "req_id", reqID, "error", err)
		return entity.ValidationResult{
			Valid:      false,
			Message:    "verifier response could not be interpreted",
			Mismatches: []entity.FieldMismatch{},
		}, nil
	}

	signaturePresent := detect.TextPresent(doc)
	if req.SignaturePresent != nil {
		signaturePresent = *req.SignaturePresent
	}

	result := s.engine.Reconcile(req.Expected, verdict.Mismatches, verdict.Message, signaturePresent)
	s.logger.Info("validate.done",
		"req_id", reqID,
		"document", docName,
		"is_valid", result.Valid,
		"claimed_mismatches", len(verdict.Mismatches),
		"true_mismatches", len(result.Mismatches),
		"signature_present", signaturePresent,
	)
	return result, nil
}

// logPlausibility compares the diagnostic extraction against the expected
// record. Warnings only; the verdict never depends on this.
func (s *Service) logPlausibility(reqID string, expected entity.ExpectedRecord, fields entity.ExtractedFieldSet) {
	if fields.AgentName == "" && fields.CustomerName == "" && len(fields.PerProductTarget) == 0 {
		s.logger.Warn("validate.extraction_empty", "req_id", reqID)
		return
	}
	for product, got := range fields.PerProductTarget {
		want, ok := expected.TargetFor(product)
		if !ok {
			s.logger.Debug("validate.target_row_unexpected", "req_id", reqID, "product", product)
			continue
		}
		if n, err := extract.ParseGroupedInt(got); err == nil && n != want {
			s.logger.Debug("validate.target_row_differs",
				"req_id", reqID,
				"product", product,
				"expected", want,
				"extracted", n,
			)
		}
	}
	for _, t := range expected.Targets {
		if _, ok := fields.PerProductTarget[t.ProductLabel]; !ok {
			s.logger.Debug("validate.target_row_missing", "req_id", reqID, "product", t.ProductLabel)
		}
	}
}
