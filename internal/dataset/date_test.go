package dataset

import "testing"

func TestNormalizeDate(t *testing.T) {
	tests := []struct {
		raw    string
		want   string
		wantOK bool
	}{
		{"2023년 5월 1일", "2023.05.01", true},
		{"2023년 12월 25일", "2023.12.25", true},
		{"2023년5월1일", "2023.05.01", true},
		{"2023.05.01", "2023.05.01", true},
		{"2023.5.1", "2023.05.01", true},
		{"2023-05-01", "2023.05.01", true},
		{"", "", true},
		{" 출시예정 ", "출시예정", false},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, ok := NormalizeDate(tt.raw)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("NormalizeDate(%q) = %q, %v; want %q, %v", tt.raw, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}
