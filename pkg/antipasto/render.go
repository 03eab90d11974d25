package antipasto

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/BrandonKowalski/antipasto/pkg/antipasto/i18n"
	"github.com/BrandonKowalski/antipasto/pkg/antipasto/internal/term"
)

// clearScreen clears the console and homes the cursor.
const clearScreen = "\x1b[H\x1b[J\x1b[H"

// boxPadding is the decoration width added around the widest content
// line: a two-space margin on each side of the box.
const boxPadding = 4

func bold(s string) string {
	return "\x1b[1m" + s + "\x1b[22m"
}

func underline(s string) string {
	return "\x1b[4m" + s + "\x1b[24m"
}

// switchFg colors s and switches back to the menu foreground afterwards,
// so the decoration never bleeds into the rest of the line.
func (m *Menu) switchFg(s string, color uint8) string {
	return fmt.Sprintf("\x1b[38;5;%dm%s\x1b[38;5;%dm", color, s, m.fgColor)
}

func (m *Menu) titleStyle(s string) string {
	return m.switchFg(underline(bold(s)), m.titleColor)
}

func (m *Menu) selectedStyle(s string) string {
	return m.switchFg(bold(s), m.selectedColor)
}

func (m *Menu) messageStyle(s string) string {
	return m.switchFg(s, m.msgColor)
}

// boxLine renders one row of the menu box: indent, then a
// background-filled field of maxWidth+boxPadding visible columns holding
// text behind a two-space margin. The field width is computed from the
// visible text alone; style is applied afterwards and must not change
// visible width. Every escape sequence opened on the line is closed on
// the same line.
func (m *Menu) boxLine(indent int, text string, style func(string) string) string {
	pad := m.maxWidth + boxPadding - 2 - ansi.StringWidth(text)
	if pad < 0 {
		pad = 0
	}

	styled := text
	if style != nil {
		styled = style(text)
	}

	var b strings.Builder
	b.WriteString(strings.Repeat(" ", indent))
	fmt.Fprintf(&b, "\x1b[38;5;%dm\x1b[48;5;%dm", m.fgColor, m.bgColor)
	b.WriteString("  ")
	b.WriteString(styled)
	b.WriteString(strings.Repeat(" ", pad))
	b.WriteString("\x1b[49m\x1b[39m")
	return b.String()
}

// renderFrame produces the full frame for the current navigation state as
// an ordered slice of lines. It is a pure function of menu state and the
// given console size: redrawing with unchanged state yields byte-identical
// output.
func (m *Menu) renderFrame(rows, cols int) []string {
	extraLines := 2
	if m.title != "" {
		extraLines += 2
	}
	if m.message != "" {
		extraLines++
	}

	boxWidth := m.maxWidth + boxPadding
	indent := cols/2 - boxWidth/2
	if indent < 0 {
		indent = 0
	}
	verticalPad := rows/2 - (m.optionsPerPage+extraLines)/2
	if verticalPad < 0 {
		verticalPad = 0
	}

	lines := make([]string, 0, verticalPad+m.optionsPerPage+extraLines+1)
	for i := 0; i < verticalPad; i++ {
		lines = append(lines, "")
	}

	lines = append(lines, m.boxLine(indent, "", nil))
	if m.title != "" {
		lines = append(lines, m.boxLine(indent, m.title, m.titleStyle))
		lines = append(lines, m.boxLine(indent, "", nil))
	}

	for i := m.pageStart; i <= m.pageEnd; i++ {
		if i == m.selectedOption {
			lines = append(lines, m.boxLine(indent, m.options[i].Label, m.selectedStyle))
		} else {
			lines = append(lines, m.boxLine(indent, m.options[i].Label, nil))
		}
	}

	if m.numPages > 1 {
		lines = append(lines, m.boxLine(indent, m.pageIndicator(), nil))
	}
	if m.message != "" {
		lines = append(lines, m.boxLine(indent, "", nil))
		lines = append(lines, m.boxLine(indent, m.message, m.messageStyle))
	}
	lines = append(lines, m.boxLine(indent, "", nil))

	return lines
}

func (m *Menu) pageIndicator() string {
	return i18n.Localize(&i18n.Message{
		ID:    "page_indicator",
		Other: "Page {{.Page}} of {{.Pages}}",
	}, map[string]interface{}{
		"Page":  m.selectedPage + 1,
		"Pages": m.numPages,
	})
}

// draw clears the screen and writes the current frame, flushing once so
// the frame lands without tearing.
func (m *Menu) draw(t term.Terminal) error {
	if err := t.WriteString(clearScreen); err != nil {
		return err
	}
	for _, line := range m.renderFrame(m.rows, m.cols) {
		if err := t.WriteLine(line); err != nil {
			return err
		}
	}
	return t.Flush()
}
