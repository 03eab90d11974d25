package antipasto

import "github.com/charmbracelet/x/ansi"

// optionsPerPage returns how many options fit on one page given the
// terminal height. reserved rows are held back for box chrome; the result
// is clamped to [1, count] so at least one option is always shown and the
// list never paginates below necessity.
func optionsPerPage(rows, reserved, count int) int {
	perPage := rows - reserved
	if perPage < 1 {
		perPage = 1
	}
	if perPage > count {
		perPage = count
	}
	return perPage
}

// pageCount is ceil(count / perPage). count must be >= 1.
func pageCount(count, perPage int) int {
	return ((count - 1) / perPage) + 1
}

// maxContentWidth returns the widest visible line the box has to contain:
// the longest option label, the title, or the message. Widths are
// measured with control sequences excluded so a pre-colored label cannot
// skew the box, and wide runes count as two columns. Empty title and
// message are absent, not zero-width.
func maxContentWidth(options []MenuOption, title, message string) int {
	max := 0
	for _, option := range options {
		if w := ansi.StringWidth(option.Label); w > max {
			max = w
		}
	}
	if w := ansi.StringWidth(title); w > max {
		max = w
	}
	if w := ansi.StringWidth(message); w > max {
		max = w
	}
	return max
}
