package reconcile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"targetcheck/internal/entity"
)

func expectedRecord(signature bool) entity.ExpectedRecord {
	return entity.ExpectedRecord{
		AgentName:    "ASHISH BHATT",
		CustomerName: "A M AUTO SALES",
		Targets: []entity.TargetLine{
			{ProductLabel: "BRAKE PARTS", TargetAmount: 7000000},
			{ProductLabel: "OTHERS", TargetAmount: 500000},
		},
		SignatureRequired: signature,
	}
}

func candidate(field, expected, observed string) entity.FieldMismatch {
	return entity.FieldMismatch{Field: field, ExpectedValue: expected, PdfValue: observed, Reason: "verifier claims mismatch"}
}

func TestReconcileExactFold(t *testing.T) {
	e := NewEngine(nil, DefaultNumericTolerance)
	res := e.Reconcile(expectedRecord(false), []entity.FieldMismatch{
		candidate(entity.FieldAgentName, "ASHISH BHATT", "ashish bhatt"),
	}, "", true)
	assert.True(t, res.Valid)
	assert.Empty(t, res.Mismatches)
	assert.Equal(t, entity.MessageValid, res.Message)
}

func TestReconcileNameRules(t *testing.T) {
	tests := []struct {
		name     string
		field    string
		expected string
		observed string
		resolved bool
	}{
		{"suffix noise", entity.FieldAgentName, "ASHISH BHATT", "ASHISH BHATT Sales", true},
		{"single letter suffix", entity.FieldAgentName, "ASHISH BHATT", "ASHISH BHATTS", true},
		{"off by one prefix", entity.FieldAgentName, "ASHISH BHATT", "ASHISH BHATTT", true},
		{"one edit", entity.FieldAgentName, "ASHISH BHATT", "ASHISH BHATR", true},
		{"two edits too many for agent", entity.FieldAgentName, "ASHISH BHATT", "ASHU BHATT", false},
		{"customer leading space", entity.FieldCustomerName, "A M AUTO SALES", "AM AUTO SALES", true},
		{"customer dropped initial", entity.FieldCustomerName, "A M AUTO SALES", "M AUTO SALES", true},
		{"customer two edits", entity.FieldCustomerName, "A M AUTO SALES", "AM AUTO SALE", true},
		{"customer truly different", entity.FieldCustomerName, "A M AUTO SALES", "BHATT MOTORS", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := NewEngine(nil, DefaultNumericTolerance)
			res := e.Reconcile(expectedRecord(false), []entity.FieldMismatch{
				candidate(tt.field, tt.expected, tt.observed),
			}, "", true)
			if tt.resolved {
				assert.True(t, res.Valid)
				assert.Empty(t, res.Mismatches)
			} else {
				assert.False(t, res.Valid)
				require.Len(t, res.Mismatches, 1)
				// a true mismatch passes through unchanged
				assert.Equal(t, tt.observed, res.Mismatches[0].PdfValue)
			}
		})
	}
}

func TestReconcileNumericRules(t *testing.T) {
	tests := []struct {
		name     string
		expected string
		observed string
		resolved bool
	}{
		{"indian grouping", "7000000", "70,00,000", true},
		{"standard grouping", "7000000", "7,000,000", true},
		{"tenfold overread", "500000", "5000000", true},
		{"leading digit overread", "500000", "1500000", true},
		{"two leading digits overread", "500000", "20500000", true},
		// deliberately loose boundary: anything within 10% reconciles
		{"within relative tolerance", "1000000", "1050000", true},
		{"beyond relative tolerance", "1000000", "9999999", false},
		{"not a number", "500000", "half a million", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := NewEngine(nil, DefaultNumericTolerance)
			res := e.Reconcile(expectedRecord(false), []entity.FieldMismatch{
				candidate("BRAKE PARTS", tt.expected, tt.observed),
			}, "", true)
			assert.Equal(t, tt.resolved, res.Valid)
		})
	}
}

func TestReconcileToleranceKnob(t *testing.T) {
	mismatch := []entity.FieldMismatch{
		candidate("BRAKE PARTS", "1000000", "1050000"), // 5% off
	}

	// zero disables the relative-tolerance rule; the exact repairs remain
	e := NewEngine(nil, 0)
	res := e.Reconcile(expectedRecord(false), mismatch, "", true)
	assert.False(t, res.Valid)
	require.Len(t, res.Mismatches, 1)
	res = e.Reconcile(expectedRecord(false), []entity.FieldMismatch{
		candidate("BRAKE PARTS", "7000000", "70,00,000"),
	}, "", true)
	assert.True(t, res.Valid)

	// a tighter knob rejects what the default would accept
	e = NewEngine(nil, 0.02)
	res = e.Reconcile(expectedRecord(false), mismatch, "", true)
	assert.False(t, res.Valid)
	res = e.Reconcile(expectedRecord(false), []entity.FieldMismatch{
		candidate("BRAKE PARTS", "1000000", "1010000"), // 1% off
	}, "", true)
	assert.True(t, res.Valid)

	// negative means unset and falls back to the default
	e = NewEngine(nil, -1)
	res = e.Reconcile(expectedRecord(false), mismatch, "", true)
	assert.True(t, res.Valid)
}

func TestReconcileSignatureOverride(t *testing.T) {
	e := NewEngine(nil, DefaultNumericTolerance)

	// all fields fine, signature missing
	res := e.Reconcile(expectedRecord(true), nil, "", false)
	assert.False(t, res.Valid)
	require.Len(t, res.Mismatches, 1)
	assert.Equal(t, entity.FieldSignature, res.Mismatches[0].Field)
	assert.Equal(t, "Present", res.Mismatches[0].ExpectedValue)
	assert.Equal(t, "Not Present", res.Mismatches[0].PdfValue)

	// signature present satisfies the requirement
	res = e.Reconcile(expectedRecord(true), nil, "", true)
	assert.True(t, res.Valid)

	// no duplicate synthetic mismatch when the verifier already flagged it
	res = e.Reconcile(expectedRecord(true), []entity.FieldMismatch{
		candidate(entity.FieldSignature, "Present", "Not Present"),
	}, "", false)
	require.Len(t, res.Mismatches, 1)
}

func TestReconcileMessage(t *testing.T) {
	e := NewEngine(nil, DefaultNumericTolerance)

	res := e.Reconcile(expectedRecord(false), []entity.FieldMismatch{
		candidate("BRAKE PARTS", "1000000", "9999999"),
	}, "brake parts target differs", true)
	assert.False(t, res.Valid)
	assert.Equal(t, "brake parts target differs", res.Message)

	res = e.Reconcile(expectedRecord(false), []entity.FieldMismatch{
		candidate("BRAKE PARTS", "1000000", "9999999"),
	}, "", true)
	assert.Equal(t, entity.MessageInvalid, res.Message)
}

func TestReconcileTrueMismatchKeptOrdered(t *testing.T) {
	e := NewEngine(nil, DefaultNumericTolerance)
	res := e.Reconcile(expectedRecord(false), []entity.FieldMismatch{
		candidate(entity.FieldAgentName, "ASHISH BHATT", "ashish bhatt"), // resolves
		candidate("BRAKE PARTS", "1000000", "9999999"),                  // stays
		candidate(entity.FieldCustomerName, "A M AUTO SALES", "BHATT MOTORS"), // stays
	}, "", true)
	assert.False(t, res.Valid)
	require.Len(t, res.Mismatches, 2)
	assert.Equal(t, "BRAKE PARTS", res.Mismatches[0].Field)
	assert.Equal(t, entity.FieldCustomerName, res.Mismatches[1].Field)
}
