package catalog

// PageCursor addresses one fixed-size page of the catalog.
// Page is 1-based; page 0 means nothing has been loaded yet.
type PageCursor struct {
	Page int
	Size int
}

// Bounds returns the [start, end) range of the page within total items.
// Pages past the end yield an empty range.
func (c PageCursor) Bounds(total int) (start, end int) {
	if c.Page < 1 || c.Size < 1 || total <= 0 {
		return 0, 0
	}
	start = (c.Page - 1) * c.Size
	if start > total {
		start = total
	}
	end = start + c.Size
	if end > total {
		end = total
	}
	return start, end
}

// Next returns the cursor for the following page
func (c PageCursor) Next() PageCursor {
	return PageCursor{Page: c.Page + 1, Size: c.Size}
}

// Loaded is how many items pages 1..Page cover out of total
func (c PageCursor) Loaded(total int) int {
	_, end := c.Bounds(total)
	return end
}

// Slice returns the page's items. The result shares storage with items.
func Slice[T any](items []T, c PageCursor) []T {
	start, end := c.Bounds(len(items))
	return items[start:end]
}

// NearEnd reports whether the list has scrolled close enough to its end to
// ask for more. lastVisible is the index of the last row on screen; the
// trigger fires once the rows left below it are within threshold*visible.
func NearEnd(lastVisible, visible, total int, threshold float64) bool {
	if total == 0 {
		return true
	}
	if visible < 1 {
		visible = 1
	}
	remaining := total - 1 - lastVisible
	return float64(remaining) <= threshold*float64(visible)
}
