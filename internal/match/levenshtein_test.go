package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistance(t *testing.T) {
	tests := []struct {
		name string
		a    string
		b    string
		want int
	}{
		{"classic kitten sitting", "KITTEN", "SITTING", 3},
		{"identical", "A", "A", 0},
		{"empty left", "", "ABC", 3},
		{"empty right", "ABC", "", 3},
		{"both empty", "", "", 0},
		{"case insensitive", "bhatt", "BHATT", 0},
		{"single substitution", "BHATT", "BHATR", 1},
		{"single insertion", "AM AUTO", "A M AUTO", 1},
		{"unicode runes", "naïve", "naive", 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Distance(tt.a, tt.b))
		})
	}
}

func TestDistanceSymmetric(t *testing.T) {
	pairs := [][2]string{
		{"KITTEN", "SITTING"},
		{"", "ABC"},
		{"ASHISH", "ASHIS"},
		{"A M AUTO SALES", "AM AUTO SALES"},
	}
	for _, p := range pairs {
		assert.Equal(t, Distance(p[0], p[1]), Distance(p[1], p[0]), "distance(%q,%q)", p[0], p[1])
	}
}
