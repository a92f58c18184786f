package proc

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
)

func TestIsNumeric(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"1", true},
		{"42", true},
		{"007", true},
		{"", false},
		{"self", false},
		{"thread-self", false},
		{"12a", false},
		{"a12", false},
		{"-1", false},
		{" 1", false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, IsNumeric(tt.in))
		})
	}
}

func TestIsNumeric_Property(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)

	properties.Property("true iff every byte is a decimal digit", prop.ForAll(
		func(s string) bool {
			if s == "" {
				return !IsNumeric(s)
			}
			allDigits := true
			for i := 0; i < len(s); i++ {
				if s[i] < '0' || s[i] > '9' {
					allDigits = false
				}
			}
			return IsNumeric(s) == allDigits
		},
		gen.OneGenOf(gen.NumString(), gen.AlphaString(), gen.Identifier()),
	))

	properties.TestingRun(t)
}
