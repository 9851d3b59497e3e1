package console

// bottomPosition is the lowest legal scroll offset: zero when the buffer fits
// in maxLines, otherwise minus the number of lines hidden past the window.
func bottomPosition(length, maxLines int) int {
	return -(max(length, maxLines) - maxLines)
}

// clampOffset keeps offset within [bottomPosition, 0].
func clampOffset(offset, length, maxLines int) int {
	return min(0, max(offset, bottomPosition(length, maxLines)))
}

// window returns the buffer indices to render, in render order. The first
// index is the newest visible entry.
func window(length, maxLines, offset int) []int {
	size := min(length, maxLines)
	if size <= 0 {
		return nil
	}
	startAt := 0
	if length > maxLines {
		startAt = length - maxLines
	}
	offset = clampOffset(offset, length, maxLines)

	indices := make([]int, 0, size)
	for i := size - 1; i >= 0; i-- {
		indices = append(indices, i+startAt+offset)
	}
	return indices
}

// scrollProgress is offset divided by the bottom position; zero when there is
// nothing to scroll.
func scrollProgress(offset, bottom int) float64 {
	if bottom == 0 {
		return 0
	}
	return float64(offset) / float64(bottom)
}
