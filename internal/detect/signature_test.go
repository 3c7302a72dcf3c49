package detect

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTextPresent(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want bool
	}{
		{"signed marker line", "BRAKE PARTS 12,50,000\nCustomer Signature: [signed]", true},
		{"name after marker", "Customer Signature ASHISH", true},
		{"bare marker", "Customer Signature", false},
		{"marker with only punctuation", "Customer Signature: -", false},
		{"no marker at all", "BRAKE PARTS 12,50,000", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TextPresent(tt.doc))
		})
	}
}
