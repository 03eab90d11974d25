//go:build linux

package term

import (
	"github.com/holoplot/go-evdev"
)

// evdevSource reads key events straight from a Linux input event device.
// Handheld targets route their buttons through /dev/input rather than the
// tty, so the menu still needs arrow/confirm/exit events when stdin has
// no line discipline at all.
type evdevSource struct {
	dev *evdev.InputDevice
}

func openKeyDevice(path string) (KeySource, error) {
	dev, err := evdev.Open(path)
	if err != nil {
		return nil, err
	}
	return &evdevSource{dev: dev}, nil
}

// ReadKey blocks until a key-down event arrives, skipping releases,
// repeats, and non-key events.
func (s *evdevSource) ReadKey() (KeyEvent, error) {
	for {
		ev, err := s.dev.ReadOne()
		if err != nil {
			return KeyEvent{}, err
		}
		if ev.Type != evdev.EV_KEY || ev.Value != 1 {
			continue
		}
		if key, ok := mapEvdevCode(ev.Code); ok {
			return key, nil
		}
		return KeyEvent{Key: KeyOther}, nil
	}
}

func (s *evdevSource) Close() error {
	return s.dev.Close()
}

func mapEvdevCode(code evdev.EvCode) (KeyEvent, bool) {
	switch code {
	case evdev.KEY_UP:
		return KeyEvent{Key: KeyUp}, true
	case evdev.KEY_DOWN:
		return KeyEvent{Key: KeyDown}, true
	case evdev.KEY_LEFT:
		return KeyEvent{Key: KeyLeft}, true
	case evdev.KEY_RIGHT:
		return KeyEvent{Key: KeyRight}, true
	case evdev.KEY_ENTER, evdev.KEY_KPENTER:
		return KeyEvent{Key: KeyEnter}, true
	case evdev.KEY_ESC:
		return KeyEvent{Key: KeyEscape}, true
	case evdev.KEY_BACKSPACE:
		return KeyEvent{Key: KeyBackspace}, true
	case evdev.KEY_H:
		return KeyEvent{Key: KeyChar, Ch: 'h'}, true
	case evdev.KEY_J:
		return KeyEvent{Key: KeyChar, Ch: 'j'}, true
	case evdev.KEY_K:
		return KeyEvent{Key: KeyChar, Ch: 'k'}, true
	case evdev.KEY_L:
		return KeyEvent{Key: KeyChar, Ch: 'l'}, true
	case evdev.KEY_B:
		return KeyEvent{Key: KeyChar, Ch: 'b'}, true
	case evdev.KEY_W:
		return KeyEvent{Key: KeyChar, Ch: 'w'}, true
	case evdev.KEY_Q:
		return KeyEvent{Key: KeyChar, Ch: 'q'}, true
	}
	return KeyEvent{}, false
}
