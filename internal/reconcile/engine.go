package reconcile

import (
	"log/slog"

	"targetcheck/internal/entity"
)

// Edit-distance tolerances per name field. The customer tolerance is wider
// because spacing and code-prefix variants hit customer names harder.
const (
	agentNameMaxDistance    = 1
	customerNameMaxDistance = 2
)

// DefaultNumericTolerance is the relative difference under which two integer
// targets still reconcile.
const DefaultNumericTolerance = 0.10

// Engine decides, per claimed mismatch, whether the verifier found a true
// discrepancy or an extraction artifact.
type Engine struct {
	logger        *slog.Logger
	agentRules    []Rule
	customerRules []Rule
	numericRules  []Rule
}

// NewEngine builds the rule chains. A negative numericTolerance means unset
// and falls back to DefaultNumericTolerance; an explicit zero disables the
// relative-tolerance rule entirely, leaving only the exact numeric repairs.
func NewEngine(logger *slog.Logger, numericTolerance float64) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	if numericTolerance < 0 {
		numericTolerance = DefaultNumericTolerance
	}
	numericRules := []Rule{
		exactRule,
		numericEqualRule,
		tenfoldOverreadRule,
		leadingDigitOverreadRule,
	}
	if numericTolerance > 0 {
		numericRules = append(numericRules, relativeToleranceRule(numericTolerance))
	}
	return &Engine{
		logger: logger,
		agentRules: []Rule{
			exactRule,
			suffixStripRule,
			offByOneRule,
			editDistanceRule(agentNameMaxDistance),
		},
		customerRules: []Rule{
			exactRule,
			suffixStripRule,
			offByOneRule,
			leadingRepairRule,
			editDistanceRule(customerNameMaxDistance),
		},
		numericRules: numericRules,
	}
}

// Reconcile runs every claimed mismatch through the rule chain for its field
// kind and assembles the final result. Candidates a rule accepts are resolved
// as artifacts and leave the mismatch list; candidates no rule accepts remain
// unchanged. The signature requirement is a hard override on top.
func (e *Engine) Reconcile(expected entity.ExpectedRecord, candidates []entity.FieldMismatch, verifierMessage string, signaturePresent bool) entity.ValidationResult {
	remaining := make([]entity.FieldMismatch, 0, len(candidates))
	for _, c := range candidates {
		if rule, ok := e.resolve(c); ok {
			e.logger.Debug("reconcile.rule_hit",
				"field", c.Field,
				"rule", rule,
				"expected", c.ExpectedValue,
				"observed", c.PdfValue,
			)
			continue
		}
		remaining = append(remaining, c)
	}

	// signature requirement overrides whatever the rules concluded
	if expected.SignatureRequired && !signaturePresent {
		if !hasField(remaining, entity.FieldSignature) {
			remaining = append(remaining, entity.FieldMismatch{
				Field:         entity.FieldSignature,
				ExpectedValue: "Present",
				PdfValue:      "Not Present",
				Reason:        "signature is mandatory for this record",
			})
		}
	}

	valid := len(remaining) == 0
	message := entity.MessageValid
	if !valid {
		message = verifierMessage
		if message == "" {
			message = entity.MessageInvalid
		}
	}
	return entity.ValidationResult{
		Valid:      valid,
		Message:    message,
		Mismatches: remaining,
	}
}

// resolve returns the name of the first rule that accepts the candidate.
func (e *Engine) resolve(c entity.FieldMismatch) (string, bool) {
	for _, r := range e.rulesFor(c.Field) {
		if _, ok := r.Apply(c.ExpectedValue, c.PdfValue); ok {
			return r.Name, true
		}
	}
	return "", false
}

func (e *Engine) rulesFor(field string) []Rule {
	switch field {
	case entity.FieldAgentName:
		return e.agentRules
	case entity.FieldCustomerName:
		return e.customerRules
	case entity.FieldSignature:
		return []Rule{exactRule}
	default:
		// product target rows
		return e.numericRules
	}
}

func hasField(ms []entity.FieldMismatch, field string) bool {
	for _, m := range ms {
		if m.Field == field {
			return true
		}
	}
	return false
}
