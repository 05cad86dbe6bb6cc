package layout

import "testing"

func TestCalculateModalWidth(t *testing.T) {
	cfg := DefaultConfig().Modal

	tests := []struct {
		name          string
		terminalWidth int
		want          int
	}{
		{"standard terminal clamps to min", 80, 44}, // 40 < 44
		{"wide terminal uses percent", 120, 60},
		{"very wide terminal clamps to max", 200, 72},
		{"narrow terminal stays inside", 30, 26}, // 30 - 4
		{"tiny terminal clamps to 1", 5, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculateModalWidth(tt.terminalWidth, cfg)
			if got != tt.want {
				t.Errorf("CalculateModalWidth(%d) = %d, want %d", tt.terminalWidth, got, tt.want)
			}
		})
	}
}

func TestCalculateModalWidth_CustomPercent(t *testing.T) {
	cfg := ModalConfig{DefaultWidthPercent: 80, MinWidth: 10, MaxWidth: 200}

	if got := CalculateModalWidth(100, cfg); got != 80 {
		t.Errorf("CalculateModalWidth(100) = %d, want 80", got)
	}
}
