package engine

import (
	"math/rand"
	"testing"
)

func TestSlideLineNumbers(t *testing.T) {
	tests := []struct {
		name     string
		input    [4]int
		expected [4]int
		delta    int
	}{
		{
			name:     "simple merge",
			input:    [4]int{2, 2, 0, 0},
			expected: [4]int{4, 0, 0, 0},
			delta:    4,
		},
		{
			name:     "merge with trailing tile",
			input:    [4]int{2, 2, 4, 0},
			expected: [4]int{4, 4, 0, 0},
			delta:    4,
		},
		{
			name:     "double merge",
			input:    [4]int{2, 2, 2, 2},
			expected: [4]int{4, 4, 0, 0},
			delta:    8,
		},
		{
			name:     "merged tile does not merge again",
			input:    [4]int{4, 4, 8, 0},
			expected: [4]int{8, 8, 0, 0},
			delta:    8,
		},
		{
			name:     "triple picks the leading pair",
			input:    [4]int{2, 2, 2, 0},
			expected: [4]int{4, 2, 0, 0},
			delta:    4,
		},
		{
			name:     "no merge possible",
			input:    [4]int{2, 4, 8, 16},
			expected: [4]int{2, 4, 8, 16},
			delta:    0,
		},
		{
			name:     "slide with gap",
			input:    [4]int{0, 0, 2, 2},
			expected: [4]int{4, 0, 0, 0},
			delta:    4,
		},
		{
			name:     "merge across gap",
			input:    [4]int{2, 0, 0, 2},
			expected: [4]int{4, 0, 0, 0},
			delta:    4,
		},
		{
			name:     "empty line",
			input:    [4]int{0, 0, 0, 0},
			expected: [4]int{0, 0, 0, 0},
			delta:    0,
		},
		{
			name:     "single tile",
			input:    [4]int{0, 4, 0, 0},
			expected: [4]int{4, 0, 0, 0},
			delta:    0,
		},
		{
			name:     "max tile never merges",
			input:    [4]int{65536, 65536, 0, 0},
			expected: [4]int{65536, 65536, 0, 0},
			delta:    0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, delta := slideLine(tt.input)
			if result != tt.expected {
				t.Errorf("slideLine(%v) = %v, want %v", tt.input, result, tt.expected)
			}
			if delta != tt.delta {
				t.Errorf("slideLine(%v) delta = %d, want %d", tt.input, delta, tt.delta)
			}
		})
	}
}

func TestSlideLineMultipliers(t *testing.T) {
	tests := []struct {
		name     string
		input    [4]int
		expected [4]int
		delta    int
	}{
		{
			name:     "x1 pair merges to x2",
			input:    [4]int{-1, -1, 0, 0},
			expected: [4]int{-2, 0, 0, 0},
			delta:    -2,
		},
		{
			name:     "x2 pair merges to x4",
			input:    [4]int{-2, -2, 0, 0},
			expected: [4]int{-4, 0, 0, 0},
			delta:    -4,
		},
		{
			name:     "x4 pair never merges",
			input:    [4]int{-4, -4, 0, 0},
			expected: [4]int{-4, -4, 0, 0},
			delta:    0,
		},
		{
			name:     "cascade of both pairs",
			input:    [4]int{-1, -1, -2, -2},
			expected: [4]int{-2, -4, 0, 0},
			delta:    -6,
		},
		{
			name:     "merged x2 does not merge into existing x2",
			input:    [4]int{-1, -1, -2, 0},
			expected: [4]int{-2, -2, 0, 0},
			delta:    -2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, delta := slideLine(tt.input)
			if result != tt.expected {
				t.Errorf("slideLine(%v) = %v, want %v", tt.input, result, tt.expected)
			}
			if delta != tt.delta {
				t.Errorf("slideLine(%v) delta = %d, want %d", tt.input, delta, tt.delta)
			}
		})
	}
}

func TestSlideLineNoCrossClassMerge(t *testing.T) {
	tests := []struct {
		name     string
		input    [4]int
		expected [4]int
	}{
		{
			name:     "number beside multiplier",
			input:    [4]int{2, -2, 0, 0},
			expected: [4]int{2, -2, 0, 0},
		},
		{
			name:     "multiplier beside number slides only",
			input:    [4]int{0, -1, 2, 0},
			expected: [4]int{-1, 2, 0, 0},
		},
		{
			name:     "alternating classes",
			input:    [4]int{4, -4, 4, -4},
			expected: [4]int{4, -4, 4, -4},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, delta := slideLine(tt.input)
			if result != tt.expected {
				t.Errorf("slideLine(%v) = %v, want %v", tt.input, result, tt.expected)
			}
			if delta != 0 {
				t.Errorf("slideLine(%v) delta = %d, want 0", tt.input, delta)
			}
		})
	}
}

// Compaction keeps the relative order of tiles. Lines of distinct values
// cannot merge, so the non-empty subsequence must survive unchanged.
func TestSlideLineOrderPreserved(t *testing.T) {
	distinct := []int{2, 4, 8, 16, 32, -1, -2, -4}
	rng := rand.New(rand.NewSource(7))

	for trial := 0; trial < 1000; trial++ {
		var line [4]int
		perm := rng.Perm(len(distinct))
		for i := 0; i < Size; i++ {
			if rng.Intn(2) == 0 {
				line[i] = distinct[perm[i]]
			}
		}

		result, delta := slideLine(line)

		var before, after []int
		for _, v := range line {
			if v != 0 {
				before = append(before, v)
			}
		}
		for _, v := range result {
			if v != 0 {
				after = append(after, v)
			}
		}

		if len(before) != len(after) {
			t.Fatalf("slideLine(%v) lost tiles: %v", line, result)
		}
		for i := range before {
			if before[i] != after[i] {
				t.Fatalf("slideLine(%v) reordered tiles: %v", line, result)
			}
		}
		if delta != 0 {
			t.Fatalf("slideLine(%v) merged distinct values, delta = %d", line, delta)
		}
	}
}

func TestMergeable(t *testing.T) {
	tests := []struct {
		a, b int
		want bool
	}{
		{2, 2, true},
		{4, 4, true},
		{32768, 32768, true},
		{65536, 65536, false},
		{2, 4, false},
		{0, 0, false},
		{-1, -1, true},
		{-2, -2, true},
		{-4, -4, false},
		{-1, -2, false},
		{2, -2, false},
		{-4, 4, false},
	}

	for _, tt := range tests {
		if got := mergeable(tt.a, tt.b); got != tt.want {
			t.Errorf("mergeable(%d, %d) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}
