package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Justin Jefferson", "justin jefferson"},
		{"Odell Beckham Jr.", "odell beckham"},
		{"Odell Beckham Jr", "odell beckham"},
		{"Patrick Mahomes II", "patrick mahomes"},
		{"Will Fuller V", "will fuller"},
		{"D'Andre Swift", "dandre swift"},
		{"A.J. Brown", "aj brown"},
		{"José Ramírez", "jose ramirez"},
		{"Ja'Marr  Chase ", "jamarr chase"},
		{"Amon-Ra St. Brown", "amon-ra st brown"},
		{"", ""},
		{"  ", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, SanitizeName(tt.in), "input %q", tt.in)
	}
}

func TestSanitizeNameIdempotent(t *testing.T) {
	inputs := []string{
		"Odell Beckham Jr.", "José Ramírez", "A.J. Brown", "Will Fuller V",
		"Amon-Ra St. Brown", "plain name", "Ken Griffey Sr.",
	}
	for _, in := range inputs {
		once := SanitizeName(in)
		assert.Equal(t, once, SanitizeName(once), "input %q", in)
	}
}
