package mapping

import (
	"errors"
	"fmt"

	"wacomsync/internal/domain"
)

// ErrDegenerateRatio is returned when a tablet or monitor extent is not
// positive, so no aspect ratio exists
var ErrDegenerateRatio = errors.New("degenerate aspect ratio")

// FitArea trims a tablet area with extents maxX x maxY, anchored at the
// origin, to the aspect ratio of a monW x monH monitor. The longer side
// relative to the monitor is shortened; fractional units are truncated.
func FitArea(maxX, maxY, monW, monH int) (domain.Area, error) {
	if maxX <= 0 || maxY <= 0 {
		return domain.Area{}, fmt.Errorf("%w: tablet area %dx%d", ErrDegenerateRatio, maxX, maxY)
	}
	if monW <= 0 || monH <= 0 {
		return domain.Area{}, fmt.Errorf("%w: monitor %dx%d", ErrDegenerateRatio, monW, monH)
	}

	monRatio := float64(monW) / float64(monH)
	tabRatio := float64(maxX) / float64(maxY)

	newX, newY := maxX, maxY
	if monRatio > tabRatio {
		newY = int(float64(maxX) / monRatio)
	} else {
		newX = int(float64(maxY) * monRatio)
	}

	return domain.Area{X1: 0, Y1: 0, X2: newX, Y2: newY}, nil
}
