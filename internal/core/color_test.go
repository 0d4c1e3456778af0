package core

import "testing"

func TestColorANSI(t *testing.T) {
	tests := []struct {
		color Color
		want  string
	}{
		{ColorDefault, ""},
		{ColorRed, "1"},
		{ColorBrightWhite, "15"},
		{ColorOrange, "208"},
		{ColorGray, "245"},
	}
	for _, tt := range tests {
		if got := tt.color.ANSI(); got != tt.want {
			t.Errorf("Color(%d).ANSI() = %q, want %q", tt.color, got, tt.want)
		}
	}
}
