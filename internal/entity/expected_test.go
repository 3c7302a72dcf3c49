package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTargetFor(t *testing.T) {
	r := ExpectedRecord{
		Targets: []TargetLine{
			{ProductLabel: "BRAKE PARTS", TargetAmount: 7000000},
			{ProductLabel: "OTHERS", TargetAmount: 500000},
		},
	}

	amount, ok := r.TargetFor("OTHERS")
	assert.True(t, ok)
	assert.Equal(t, int64(500000), amount)

	_, ok = r.TargetFor("FILTERS")
	assert.False(t, ok)
}
