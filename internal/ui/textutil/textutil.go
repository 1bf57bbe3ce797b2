// Package textutil provides unicode-aware text utilities for table cells.
package textutil

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// TruncateEllipsis is the unicode ellipsis character used for truncation.
const TruncateEllipsis = "…"

// VisualWidth returns the number of terminal columns s occupies.
func VisualWidth(s string) int {
	return runewidth.StringWidth(s)
}

// Truncate shortens s to at most maxWidth columns, ending in an ellipsis
// when anything was cut.
func Truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if VisualWidth(s) <= maxWidth {
		return s
	}

	available := maxWidth - VisualWidth(TruncateEllipsis)
	if available < 0 {
		return TruncateEllipsis
	}

	var b strings.Builder
	used := 0
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if used+w > available {
			break
		}
		b.WriteRune(r)
		used += w
	}
	return b.String() + TruncateEllipsis
}

// PadRightVisual pads s with spaces to targetWidth columns, truncating when
// it is already wider.
func PadRightVisual(s string, targetWidth int) string {
	w := VisualWidth(s)
	if w >= targetWidth {
		return Truncate(s, targetWidth)
	}
	return s + strings.Repeat(" ", targetWidth-w)
}

// PadLeftVisual right-aligns s in targetWidth columns, truncating when it is
// already wider.
func PadLeftVisual(s string, targetWidth int) string {
	w := VisualWidth(s)
	if w >= targetWidth {
		return Truncate(s, targetWidth)
	}
	return strings.Repeat(" ", targetWidth-w) + s
}

// Columns lays cells out left-aligned in fixed widths separated by gap
// spaces. Missing widths leave the cell as is.
func Columns(cells []string, widths []int, gap int) string {
	out := make([]string, len(cells))
	for i, c := range cells {
		if i < len(widths) {
			c = PadRightVisual(c, widths[i])
		}
		out[i] = c
	}
	return strings.Join(out, strings.Repeat(" ", gap))
}
