package engineversion

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		version  string
		expected []int
	}{
		{
			name:     "plain postgres version",
			version:  "14.7",
			expected: []int{14, 7},
		},
		{
			name:     "single segment",
			version:  "16",
			expected: []int{16},
		},
		{
			name:     "aurora mysql drops text segments",
			version:  "5.7.mysql_aurora.2.11.2",
			expected: []int{5, 7, 2, 11, 2},
		},
		{
			name:     "empty string",
			version:  "",
			expected: nil,
		},
		{
			name:     "no numeric segments",
			version:  "latest",
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Parse(tt.version))
		})
	}
}

func TestCompare(t *testing.T) {
	tests := []struct {
		name     string
		a, b     string
		expected int
	}{
		{name: "equal", a: "14.7", b: "14.7", expected: 0},
		{name: "older minor", a: "14.7", b: "14.9", expected: -1},
		{name: "newer minor", a: "14.9", b: "14.7", expected: 1},
		{name: "older major", a: "13.11", b: "14.2", expected: -1},
		{name: "newer major", a: "15.2", b: "14.12", expected: 1},
		{name: "zero padded equal", a: "14", b: "14.0", expected: 0},
		{name: "shorter but newer", a: "15", b: "14.7", expected: 1},
		{
			name:     "aurora mysql patch difference",
			a:        "5.7.mysql_aurora.2.11.2",
			b:        "5.7.mysql_aurora.2.12.0",
			expected: -1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Compare(tt.a, tt.b))
		})
	}
}

func TestMajor(t *testing.T) {
	major, err := Major("14.7")
	assert.NoError(t, err)
	assert.Equal(t, 14, major)

	major, err = Major("5.7.mysql_aurora.2.11.2")
	assert.NoError(t, err)
	assert.Equal(t, 5, major)

	_, err = Major("latest")
	assert.Error(t, err)
}

func TestIsMajorUpgrade(t *testing.T) {
	tests := []struct {
		name      string
		current   string
		target    string
		expected  bool
		expectErr bool
	}{
		{name: "minor upgrade", current: "14.7", target: "14.9", expected: false},
		{name: "major upgrade", current: "14.7", target: "15.2", expected: true},
		{name: "same version", current: "14.7", target: "14.7", expected: false},
		{name: "downgrade across majors", current: "15.2", target: "14.7", expected: false},
		{name: "garbage current", current: "latest", target: "15.2", expectErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := IsMajorUpgrade(tt.current, tt.target)
			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}
