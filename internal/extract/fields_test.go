package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFieldsAgentName(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want string
	}{
		{"plain", "AM: ASHISH BHATT\nRegion: NORTH", "ASHISH BHATT"},
		{"stop keyword on same line", "AM: ASHISH BHATT Sales Office: JAIPUR", "ASHISH BHATT"},
		{"trailing punctuation", "AM: ASHISH BHATT -\n", "ASHISH BHATT"},
		{"missing label", "Region: NORTH", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := Fields(tt.doc, nil)
			assert.Equal(t, tt.want, fs.AgentName)
		})
	}
}

func TestFieldsCustomerName(t *testing.T) {
	fs := Fields("Customer: [S] - 104522 - A M AUTO SALES\n", nil)
	assert.Equal(t, "A M AUTO SALES", fs.CustomerName)

	// no bracketed prefix
	fs = Fields("Customer: BHATT MOTORS\n", nil)
	assert.Equal(t, "BHATT MOTORS", fs.CustomerName)
}

func TestFieldsProductTargets(t *testing.T) {
	doc := "BRAKE PARTS 2025: 10,00,000 Target 2026 12,50,000\n" +
		"FILTERS 3,00,000\n" +
		"OTHERS 1,00,000\n" +
		"Over All 70,00,000\n"
	fs := Fields(doc, nil)
	require.NotNil(t, fs.PerProductTarget)

	// last numeric token on the row, grouping stripped
	assert.Equal(t, "1250000", fs.PerProductTarget["BRAKE PARTS"])
	assert.Equal(t, "300000", fs.PerProductTarget["FILTERS"])
	assert.Equal(t, "100000", fs.PerProductTarget["OTHERS"])

	// summary row is not a product
	assert.Len(t, fs.PerProductTarget, 3)
}

func TestFieldsRejectsOverAllEvenWithOthersSubstring(t *testing.T) {
	fs := Fields("Over All OTHERS 70,00,000\n", nil)
	assert.Empty(t, fs.PerProductTarget)
}

func TestStripGrouping(t *testing.T) {
	assert.Equal(t, "7000000", StripGrouping("70,00,000"))
	assert.Equal(t, "7000000", StripGrouping("7,000,000"))
	assert.Equal(t, "12345", StripGrouping(" 12,345 "))
}

func TestParseGroupedInt(t *testing.T) {
	n, err := ParseGroupedInt("70,00,000")
	require.NoError(t, err)
	assert.Equal(t, int64(7000000), n)

	_, err = ParseGroupedInt("not a number")
	assert.Error(t, err)
}
