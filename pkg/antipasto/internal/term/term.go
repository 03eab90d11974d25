// Package term is the terminal driver behind the menu widget: raw-mode
// console size, key input, and buffered escape-sequence output.
package term

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"runtime"

	"golang.org/x/term"
)

// InputDeviceEnv names an optional raw input event device (for targets
// whose buttons are not wired through the tty line discipline). When set,
// key events are read from the device instead of the terminal.
const InputDeviceEnv = "ANTIPASTO_INPUT_DEVICE"

// Terminal is the console contract the menu runs against. Writes are
// buffered until Flush so a whole frame lands in one write.
type Terminal interface {
	// Size reports the console dimensions as (rows, cols).
	Size() (rows, cols int, err error)
	// ReadKey blocks until one logical key event is available.
	ReadKey() (KeyEvent, error)
	// WriteString writes raw text, control sequences included, without
	// interpretation.
	WriteString(s string) error
	// WriteLine writes text followed by a line break.
	WriteLine(s string) error
	HideCursor() error
	ShowCursor() error
	Flush() error
	// Close restores the terminal to its pre-session state.
	Close() error
}

// KeySource supplies key events from somewhere other than the tty.
type KeySource interface {
	ReadKey() (KeyEvent, error)
	Close() error
}

// TTY drives the controlling terminal. The terminal stays in raw mode
// with line wrap disabled for the lifetime of the session, so lines are
// broken with explicit CR LF.
type TTY struct {
	input   *os.File
	output  *os.File
	reader  *bufio.Reader
	writer  *bufio.Writer
	restore *term.State
	keys    KeySource
}

// Open attaches to the controlling terminal and switches it to raw mode.
// Callers must Close the returned TTY to restore the terminal state. If
// InputDeviceEnv is set, keys come from that event device instead of the
// tty.
func Open() (*TTY, error) {
	t := &TTY{}

	tty, err := os.OpenFile("/dev/tty", os.O_RDWR, 0)
	if err != nil {
		if runtime.GOOS != "windows" {
			return nil, fmt.Errorf("open terminal: %w", err)
		}
		t.input = os.Stdin
		t.output = os.Stdout
	} else {
		t.input = tty
		t.output = tty
	}

	t.reader = bufio.NewReader(t.input)
	t.writer = bufio.NewWriter(t.output)

	state, err := term.MakeRaw(int(t.input.Fd()))
	if err != nil {
		if t.input.Name() == "/dev/tty" {
			t.input.Close()
		}
		return nil, fmt.Errorf("enter raw mode: %w", err)
	}
	t.restore = state

	if device := os.Getenv(InputDeviceEnv); device != "" {
		keys, err := openKeyDevice(device)
		if err != nil {
			t.Close()
			return nil, fmt.Errorf("open input device %s: %w", device, err)
		}
		t.keys = keys
	}

	return t, nil
}

// WindowSize reports the console dimensions without opening a session.
func WindowSize() (rows, cols int, err error) {
	for _, f := range []*os.File{os.Stdout, os.Stdin} {
		cols, rows, err = term.GetSize(int(f.Fd()))
		if err == nil && rows > 0 && cols > 0 {
			return rows, cols, nil
		}
	}
	if err == nil {
		err = errors.New("terminal reported zero size")
	}
	return 0, 0, err
}

func (t *TTY) Size() (rows, cols int, err error) {
	cols, rows, err = term.GetSize(int(t.input.Fd()))
	if err != nil {
		return 0, 0, err
	}
	if rows <= 0 || cols <= 0 {
		return 0, 0, errors.New("terminal reported zero size")
	}
	return rows, cols, nil
}

func (t *TTY) ReadKey() (KeyEvent, error) {
	if t.keys != nil {
		return t.keys.ReadKey()
	}
	return decodeKey(t.reader)
}

func (t *TTY) WriteString(s string) error {
	_, err := t.writer.WriteString(s)
	return err
}

func (t *TTY) WriteLine(s string) error {
	if _, err := t.writer.WriteString(s); err != nil {
		return err
	}
	_, err := t.writer.WriteString("\r\n")
	return err
}

func (t *TTY) HideCursor() error {
	return t.WriteString("\x1b[?25l")
}

func (t *TTY) ShowCursor() error {
	return t.WriteString("\x1b[?25h")
}

func (t *TTY) Flush() error {
	return t.writer.Flush()
}

// Close leaves raw mode, re-shows the cursor, and releases the tty. Safe
// to call after a partial failure.
func (t *TTY) Close() error {
	var errs []error
	if t.keys != nil {
		errs = append(errs, t.keys.Close())
		t.keys = nil
	}
	if t.restore != nil {
		errs = append(errs, term.Restore(int(t.input.Fd()), t.restore))
		t.restore = nil
	}
	if t.writer != nil {
		t.writer.WriteString("\x1b[?25h")
		errs = append(errs, t.writer.Flush())
	}
	if t.input != nil && t.input.Name() == "/dev/tty" {
		errs = append(errs, t.input.Close())
		t.input = nil
	}
	return errors.Join(errs...)
}
