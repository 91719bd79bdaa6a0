package console

import "github.com/footprint-tools/brig/internal/ui/style"

// Scrollbar characters
const (
	scrollThumbChar = "█" // Full block for thumb (solid)
	scrollTrackChar = "│" // Box drawing vertical for track
)

// scrollbar renders one cell per row of a track height rows tall for a
// transcript of total lines scrolled down by offset. When everything fits
// the column is blank.
func scrollbar(height, total, offset int) []string {
	bar := make([]string, height)

	if total <= height {
		for i := range bar {
			bar[i] = " "
		}
		return bar
	}

	// Thumb size is proportional to the visible share, leaving at least
	// one row of track on a tall enough bar.
	thumbSize := max((height*height)/total, 1)
	thumbSize = min(thumbSize, max(height-2, 1))

	maxScroll := max(total-height, 1)
	trackSpace := max(height-thumbSize, 0)

	thumbPos := 0
	if trackSpace > 0 {
		thumbPos = (offset * trackSpace) / maxScroll
	}
	thumbPos = max(0, min(thumbPos, trackSpace))

	for i := range height {
		if i >= thumbPos && i < thumbPos+thumbSize {
			bar[i] = style.Active(scrollThumbChar)
		} else {
			bar[i] = style.Dim(scrollTrackChar)
		}
	}
	return bar
}
