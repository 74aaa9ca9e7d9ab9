package database

import "testing"

func TestPlaceholder(t *testing.T) {
	tests := []struct {
		driver string
		n      int
		want   string
	}{
		{"postgres", 1, "$1"},
		{"postgres", 7, "$7"},
		{"mysql", 1, "?"},
		{"mysql", 7, "?"},
	}

	for _, tt := range tests {
		db := &OriginDB{Driver: tt.driver}
		if got := db.Placeholder(tt.n); got != tt.want {
			t.Errorf("Placeholder(%d) for %s = %q, want %q", tt.n, tt.driver, got, tt.want)
		}
	}
}
