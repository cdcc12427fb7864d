package layout

import (
	"strings"
	"testing"

	"charm.land/lipgloss/v2"
)

func TestCompactThresholds(t *testing.T) {
	tests := []struct {
		width, height             int
		compactWidth, compactTall bool
	}{
		{80, 24, true, true},
		{99, 29, true, true},
		{100, 30, false, false},
		{160, 50, false, false},
	}
	for _, tt := range tests {
		if got := IsCompactWidth(tt.width); got != tt.compactWidth {
			t.Errorf("IsCompactWidth(%d) = %v, want %v", tt.width, got, tt.compactWidth)
		}
		if got := IsCompactHeight(tt.height); got != tt.compactTall {
			t.Errorf("IsCompactHeight(%d) = %v, want %v", tt.height, got, tt.compactTall)
		}
	}
}

func TestContentHeight(t *testing.T) {
	header := "h\nh\nh"
	footer := "f\nf\nf"

	tests := []struct {
		total int
		want  int
	}{
		{40, 33}, // snowfall row takes one line
		{26, 20}, // compact, no snowfall
		{5, 0},
	}
	for _, tt := range tests {
		if got := ContentHeight(header, footer, tt.total); got != tt.want {
			t.Errorf("ContentHeight(%d) = %d, want %d", tt.total, got, tt.want)
		}
	}
}

func TestSnowfall(t *testing.T) {
	if got := Snowfall(0); got != "" {
		t.Errorf("Snowfall(0) = %q, want empty", got)
	}
	for _, w := range []int{1, 25, 37, 120} {
		if got := lipgloss.Width(Snowfall(w)); got != w {
			t.Errorf("Snowfall(%d) width = %d", w, got)
		}
	}
}

func TestRenderFrame_FillsHeight(t *testing.T) {
	header := "h\nh\nh"
	footer := "f\nf\nf"

	tall := RenderFrame(header, "body", footer, 80, 40)
	if got := lipgloss.Height(tall); got != 40 {
		t.Errorf("tall frame height = %d, want 40", got)
	}
	if lines := strings.Split(tall, "\n"); !strings.Contains(lines[3], "*") {
		t.Errorf("expected snowfall under the header, got %q", lines[3])
	}

	compact := RenderFrame(header, "body", footer, 80, 26)
	if got := lipgloss.Height(compact); got != 26 {
		t.Errorf("compact frame height = %d, want 26", got)
	}
	if lines := strings.Split(compact, "\n"); strings.Contains(lines[3], "*") {
		t.Errorf("compact frame should not show snowfall, got %q", lines[3])
	}
}

func TestRenderHeader_CompactDropsRoundCount(t *testing.T) {
	wide := RenderHeader("Home", 240, 3, 120)
	if !strings.Contains(wide, "240 best") || !strings.Contains(wide, "3 rounds") {
		t.Errorf("wide header missing stats:\n%s", wide)
	}

	narrow := RenderHeader("Home", 240, 1, 90)
	if !strings.Contains(narrow, "240 best") {
		t.Errorf("narrow header missing best score:\n%s", narrow)
	}
	if strings.Contains(narrow, "round") {
		t.Errorf("narrow header should drop the round count:\n%s", narrow)
	}
}

func TestRenderFooter(t *testing.T) {
	out := RenderFooter([]KeyHint{{Key: "enter", Description: "Select"}, {Key: "esc", Description: "Back"}}, 80)
	for _, want := range []string{"enter", "Select", "esc", "Back"} {
		if !strings.Contains(out, want) {
			t.Errorf("footer missing %q:\n%s", want, out)
		}
	}
}
