package mapping

import (
	"errors"
	"math"
	"testing"

	"wacomsync/internal/domain"
)

func TestFitArea_WideMonitor(t *testing.T) {
	// 1920x1080 (1.778) is wider than a 15200x9500 (1.6) tablet: trim height.
	area, err := FitArea(15200, 9500, 1920, 1080)
	if err != nil {
		t.Fatalf("FitArea() unexpected error: %v", err)
	}

	if area.X1 != 0 || area.Y1 != 0 {
		t.Errorf("origin = (%d, %d), want (0, 0)", area.X1, area.Y1)
	}
	if area.X2 != 15200 {
		t.Errorf("X2 = %d, want 15200", area.X2)
	}
	// Exact float division gives 8550; rounding the ratio to 1.778 first gives 8549.
	if area.Y2 != 8550 {
		t.Errorf("Y2 = %d, want 8550", area.Y2)
	}
	if d := area.Y2 - 8549; d < 0 || d > 1 {
		t.Errorf("Y2 = %d, not within 1 of 8549", area.Y2)
	}
}

func TestFitArea_NarrowMonitor(t *testing.T) {
	// 1024x768 (1.333) is narrower than the tablet: trim width.
	area, err := FitArea(15200, 9500, 1024, 768)
	if err != nil {
		t.Fatalf("FitArea() unexpected error: %v", err)
	}
	want := domain.Area{X2: 12666, Y2: 9500}
	if area != want {
		t.Errorf("FitArea() = %+v, want %+v", area, want)
	}
}

func TestFitArea_SameRatio(t *testing.T) {
	area, err := FitArea(16000, 9000, 1920, 1080)
	if err != nil {
		t.Fatalf("FitArea() unexpected error: %v", err)
	}
	if area.X2 != 16000 || area.Y2 != 9000 {
		t.Errorf("FitArea() = %+v, want unchanged 16000x9000", area)
	}
}

func TestFitArea_DegenerateInputs(t *testing.T) {
	tests := []struct {
		name                   string
		maxX, maxY, monW, monH int
	}{
		{"zero monitor height", 15200, 9500, 1920, 0},
		{"zero tablet height", 15200, 0, 1920, 1080},
		{"zero tablet width", 0, 9500, 1920, 1080},
		{"zero monitor width", 15200, 9500, 0, 1080},
		{"negative extent", -1, 9500, 1920, 1080},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FitArea(tt.maxX, tt.maxY, tt.monW, tt.monH)
			if !errors.Is(err, ErrDegenerateRatio) {
				t.Errorf("FitArea() error = %v, want ErrDegenerateRatio", err)
			}
		})
	}
}

func TestFitArea_Properties(t *testing.T) {
	tablets := [][2]int{{15200, 9500}, {21600, 13500}, {31496, 19685}, {4096, 4096}, {44704, 27940}, {10, 7}}
	monitors := [][2]int{{1920, 1080}, {2560, 1440}, {1280, 1024}, {1366, 768}, {3440, 1440}, {1080, 1920}, {1, 1}}

	for _, tab := range tablets {
		for _, mon := range monitors {
			maxX, maxY := tab[0], tab[1]
			monW, monH := mon[0], mon[1]

			area, err := FitArea(maxX, maxY, monW, monH)
			if err != nil {
				t.Fatalf("FitArea(%d, %d, %d, %d) error: %v", maxX, maxY, monW, monH, err)
			}

			if area.X2 > maxX || area.Y2 > maxY {
				t.Errorf("FitArea(%d, %d, %d, %d) = %dx%d exceeds tablet", maxX, maxY, monW, monH, area.X2, area.Y2)
			}

			ratio := float64(monW) / float64(monH)
			dy := math.Abs(float64(area.Y2) - float64(area.X2)/ratio)
			dx := math.Abs(float64(area.X2) - float64(area.Y2)*ratio)
			if dy > 1 && dx > 1 {
				t.Errorf("FitArea(%d, %d, %d, %d) = %dx%d does not match ratio %.4f", maxX, maxY, monW, monH, area.X2, area.Y2, ratio)
			}

			again, err := FitArea(maxX, maxY, monW, monH)
			if err != nil || again != area {
				t.Errorf("FitArea(%d, %d, %d, %d) not repeatable: %+v then %+v", maxX, maxY, monW, monH, area, again)
			}
		}
	}
}
