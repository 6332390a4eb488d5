package layout

import (
	"strings"
	"testing"

	"charm.land/lipgloss/v2"
)

func TestStepLabel(t *testing.T) {
	if got := StepLabel(4, 6); got != "Step 4 of 6" {
		t.Errorf("expected 'Step 4 of 6', got %q", got)
	}
	if got := StepLabel(0, 6); got != "" {
		t.Errorf("expected empty label for non-step, got %q", got)
	}
}

func TestRenderHeaderShowsStep(t *testing.T) {
	h := RenderHeader("Technical Assessment", 3, 6, 100)
	if !strings.Contains(h, "Step 3 of 6") {
		t.Error("expected step label in header")
	}
	if !strings.Contains(h, "Technical Assessment") {
		t.Error("expected title in header")
	}
	if lipgloss.Height(h) != HeaderHeight {
		t.Errorf("expected header height %d, got %d", HeaderHeight, lipgloss.Height(h))
	}

	home := RenderHeader("DevOps Navigator", 0, 6, 100)
	if strings.Contains(home, "Step") {
		t.Error("expected no step label outside the assessment")
	}
}

func TestRenderFrameHeight(t *testing.T) {
	header := RenderHeader("x", 1, 6, 80)
	footer := RenderFooter([]KeyHint{{Key: "Enter", Description: "Select"}}, 80)
	content := strings.Repeat("line\n", 100)

	frame := RenderFrame(header, content, footer, 80, 30)
	if got := lipgloss.Height(frame); got != 30 {
		t.Errorf("expected frame height 30, got %d", got)
	}
}

func TestIsTooSmall(t *testing.T) {
	if !IsTooSmall(79, 30) || !IsTooSmall(100, 23) {
		t.Error("expected small terminals to be too small")
	}
	if IsTooSmall(MinWidth, MinHeight) {
		t.Error("expected minimum size to fit")
	}
}
