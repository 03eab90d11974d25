package antipasto

import (
	"fmt"
	"strings"

	"go.uber.org/atomic"

	"github.com/BrandonKowalski/antipasto/pkg/antipasto/internal"
	"github.com/BrandonKowalski/antipasto/pkg/antipasto/internal/term"
)

// Menu is an interactive console menu. Create one with New and display it
// with Show. A Menu owns its option list and navigation state exclusively;
// nothing is shared between instances, so an option's action may open a
// different Menu while this one is suspended.
type Menu struct {
	options      []MenuOption
	title        string
	message      string
	exitOnAction bool

	bgColor       uint8
	fgColor       uint8
	titleColor    uint8
	selectedColor uint8
	msgColor      uint8
	reservedRows  int

	selectedOption int
	selectedPage   int
	optionsPerPage int
	numPages       int
	pageStart      int
	pageEnd        int
	maxWidth       int
	rows, cols     int

	active       atomic.Bool
	openTerminal func() (term.Terminal, error)
}

// New builds a Menu from a non-empty option list and props. Optional
// override colors resolve to the foreground color where unset. The option
// slice is copied; the caller keeps no handle into the menu's state.
func New(options []MenuOption, props MenuProps) (*Menu, error) {
	if len(options) == 0 {
		return nil, ErrNoOptions
	}

	owned := make([]MenuOption, len(options))
	copy(owned, options)
	for i := range owned {
		if owned[i].Action == nil {
			owned[i].Action = func() {}
		}
	}

	reserved := props.ReservedRows
	if reserved <= 0 {
		reserved = DefaultReservedRows
	}

	m := &Menu{
		options:       owned,
		title:         props.Title,
		message:       props.Message,
		exitOnAction:  props.ExitOnAction,
		bgColor:       props.BgColor,
		fgColor:       props.FgColor,
		titleColor:    resolveColor(props.TitleColor, props.FgColor),
		selectedColor: resolveColor(props.SelectedColor, props.FgColor),
		msgColor:      resolveColor(props.MsgColor, props.FgColor),
		reservedRows:  reserved,
		openTerminal:  func() (term.Terminal, error) { return term.Open() },
	}

	// Initial layout against the current console; Show refreshes it per
	// session. Off-terminal (tests, pipes) falls back to a conventional
	// 24x80 console.
	rows, cols, err := term.WindowSize()
	if err != nil {
		rows, cols = 24, 80
	}
	m.refreshLayout(rows, cols)
	m.maxWidth = maxContentWidth(m.options, m.title, m.message)
	m.setPage(0)

	return m, nil
}

func resolveColor(override *uint8, fallback uint8) uint8 {
	if override != nil {
		return *override
	}
	return fallback
}

// Show runs the interactive session to completion: it takes over the
// terminal, draws the menu, and processes keys until an exit key or — if
// ExitOnAction is set — a confirmed option ends the session. The cursor
// and terminal mode are restored before Show returns. Calling Show again
// afterwards starts a fresh session against the current terminal size.
func (m *Menu) Show() error {
	if !m.active.CompareAndSwap(false, true) {
		return ErrSessionActive
	}
	defer m.active.Store(false)

	t, err := m.openTerminal()
	if err != nil {
		return err
	}
	defer t.Close()

	rows, cols, err := t.Size()
	if err != nil {
		return fmt.Errorf("query terminal size: %w", err)
	}
	m.refreshLayout(rows, cols)
	m.setPage(0)

	log := internal.GetLogger()
	log.Debug("menu session start",
		"options", len(m.options), "pages", m.numPages, "rows", rows, "cols", cols)

	if err := t.HideCursor(); err != nil {
		return err
	}
	// Scroll prior terminal content out of the way so the box does not
	// draw over it.
	if rows > 1 {
		if err := t.WriteString(strings.Repeat("\n", rows-1)); err != nil {
			return err
		}
	}
	if err := m.draw(t); err != nil {
		return err
	}

	err = m.runNavigation(t)
	log.Debug("menu session end", "err", err)
	return err
}

// refreshLayout recomputes pagination against a console size. The layout
// then stays fixed for the session; only pagination state changes.
func (m *Menu) refreshLayout(rows, cols int) {
	m.rows, m.cols = rows, cols
	m.optionsPerPage = optionsPerPage(rows, m.reservedRows, len(m.options))
	m.numPages = pageCount(len(m.options), m.optionsPerPage)
}

// navEvent is the state machine's input alphabet: each key decodes to one
// of these categories.
type navEvent int

const (
	navNone navEvent = iota
	navUp
	navDown
	navLeft
	navRight
	navConfirm
	navExit
)

func classifyKey(ev term.KeyEvent) navEvent {
	switch ev.Key {
	case term.KeyUp:
		return navUp
	case term.KeyDown:
		return navDown
	case term.KeyLeft:
		return navLeft
	case term.KeyRight:
		return navRight
	case term.KeyEnter:
		return navConfirm
	case term.KeyEscape, term.KeyBackspace:
		return navExit
	case term.KeyChar:
		switch ev.Ch {
		case 'k':
			return navUp
		case 'j':
			return navDown
		case 'h', 'b':
			return navLeft
		case 'l', 'w':
			return navRight
		case 'q':
			return navExit
		}
	}
	return navNone
}

// runNavigation is the interactive loop: read a key, transition or act,
// redraw. The redraw is unconditional — after an action returns with
// ExitOnAction off, the next frame overwrites whatever the action (a
// nested menu, a shelled-out command) left on screen.
func (m *Menu) runNavigation(t term.Terminal) error {
	for {
		ev, err := t.ReadKey()
		if err != nil {
			return fmt.Errorf("read key: %w", err)
		}

		switch classifyKey(ev) {
		case navUp:
			if m.selectedOption > m.pageStart {
				m.selectedOption--
			} else if m.selectedPage > 0 {
				m.setPage(m.selectedPage - 1)
				m.selectedOption = m.pageEnd
			}
		case navDown:
			if m.selectedOption < m.pageEnd {
				m.selectedOption++
			} else if m.selectedPage < m.numPages-1 {
				m.setPage(m.selectedPage + 1)
			}
		case navLeft:
			if m.selectedPage > 0 {
				m.setPage(m.selectedPage - 1)
			}
		case navRight:
			if m.selectedPage < m.numPages-1 {
				m.setPage(m.selectedPage + 1)
			}
		case navExit:
			return m.exitScreen(t)
		case navConfirm:
			internal.GetLogger().Debug("option confirmed",
				"index", m.selectedOption, "label", m.options[m.selectedOption].Label)
			action := m.options[m.selectedOption].Action
			if m.exitOnAction {
				if err := m.exitScreen(t); err != nil {
					return err
				}
				action()
				return nil
			}
			action()
		}

		if err := m.draw(t); err != nil {
			return err
		}
	}
}

// setPage moves to the given page and selects its first option. The last
// page may hold fewer options than optionsPerPage.
func (m *Menu) setPage(page int) {
	m.selectedPage = page
	m.pageStart = page * m.optionsPerPage
	m.selectedOption = m.pageStart
	if len(m.options) > m.pageStart+m.optionsPerPage {
		m.pageEnd = m.pageStart + m.optionsPerPage - 1
	} else {
		m.pageEnd = len(m.options) - 1
	}
}

// exitScreen clears the menu and hands the terminal back.
func (m *Menu) exitScreen(t term.Terminal) error {
	if err := t.WriteString(clearScreen); err != nil {
		return err
	}
	if err := t.ShowCursor(); err != nil {
		return err
	}
	return t.Flush()
}
