package domain

import "testing"

func TestNewInsightSet(t *testing.T) {
	tests := []struct {
		name       string
		items      []string
		want       InsightSet
		wantPadded int
	}{
		{
			name:       "exactly three",
			items:      []string{"a", "b", "c"},
			want:       InsightSet{"a", "b", "c"},
			wantPadded: 0,
		},
		{
			name:       "one item padded",
			items:      []string{"a"},
			want:       InsightSet{"a", InsightSentinel, InsightSentinel},
			wantPadded: 2,
		},
		{
			name:       "empty fully padded",
			items:      nil,
			want:       InsightSet{InsightSentinel, InsightSentinel, InsightSentinel},
			wantPadded: 3,
		},
		{
			name:       "extras truncated",
			items:      []string{"a", "b", "c", "d"},
			want:       InsightSet{"a", "b", "c"},
			wantPadded: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewInsightSet(tt.items)
			if got != tt.want {
				t.Errorf("NewInsightSet(%v) = %v, want %v", tt.items, got, tt.want)
			}
			if got.Padded() != tt.wantPadded {
				t.Errorf("Padded() = %d, want %d", got.Padded(), tt.wantPadded)
			}
		})
	}
}
