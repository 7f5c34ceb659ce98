package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEstimateYearsExperience(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		nowYear  int
		expected float64
	}{
		{"Bare years fallback", "joined in 2015, promoted 2020", 2024, 5.0},
		{"Present resolves to now", "Jan 2018 - present", 2024, 6.0},
		{"Explicit range", "Jan 2019 - Mar 2021", 2024, 2.0},
		{"Multiple ranges span", "2010 - 2012\n2015 to 2020", 2024, 10.0},
		{"Current keyword", "2019 - current", 2023, 4.0},
		{"Future year clamped", "2015 and 2099", 2024, 9.0},
		{"Single year only", "class of 2020", 2024, 0.0},
		{"No years at all", "seasoned professional", 2024, 0.0},
		{"Empty text", "", 2024, 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, EstimateYearsExperience(tt.text, tt.nowYear), 1e-9)
		})
	}
}

func TestParseYearToken(t *testing.T) {
	tests := []struct {
		name     string
		token    string
		expected int
	}{
		{"Bare year", "2018", 2018},
		{"Month year", "Jan 2018", 2018},
		{"Full month with comma", "March, 2020", 2020},
		{"No year", "present", 0},
		{"Empty", "", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, parseYearToken(tt.token))
		})
	}
}
