package recommendations

import (
	"image/color"

	"github.com/abhisek/navigator/internal/results"
	"github.com/abhisek/navigator/internal/ui/theme"
)

func levelColor(level string) color.Color {
	switch level {
	case "Beginner":
		return theme.Accent
	case "Intermediate":
		return theme.Warning
	case "Advanced":
		return theme.Error
	}
	return theme.TextDim
}

func overlapColor(o results.Overlap) color.Color {
	switch o {
	case results.OverlapHigh:
		return theme.Accent
	case results.OverlapMedium:
		return theme.Warning
	}
	return theme.TextDim
}
