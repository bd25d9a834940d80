package tui

// verticalPadding splits the rows left around content into flexible top and
// bottom space. inset rows at the bottom are reserved for the footer and are
// never given to padding.
func verticalPadding(height, inset, content int) (top, bottom int) {
	free := height - inset - content
	if free <= 0 {
		return 0, 0
	}
	top = free / 2
	return top, free - top
}
