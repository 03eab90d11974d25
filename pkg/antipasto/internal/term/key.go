package term

import (
	"bufio"
	"unicode/utf8"
)

// Key is the category of a logical key event.
type Key int

const (
	KeyOther Key = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyEnter
	KeyEscape
	KeyBackspace
	KeyChar
)

// KeyEvent is one decoded keypress. Ch is set only for KeyChar.
type KeyEvent struct {
	Key Key
	Ch  rune
}

// decodeKey reads one keypress from a raw-mode terminal and classifies
// it. Unrecognized input decodes to KeyOther rather than erroring.
func decodeKey(r *bufio.Reader) (KeyEvent, error) {
	b, err := r.ReadByte()
	if err != nil {
		return KeyEvent{}, err
	}

	switch b {
	case 0x1b:
		return decodeEscape(r), nil
	case '\r', '\n':
		return KeyEvent{Key: KeyEnter}, nil
	case 0x08, 0x7f:
		return KeyEvent{Key: KeyBackspace}, nil
	case 0x03: // ctrl-c
		return KeyEvent{Key: KeyEscape}, nil
	}

	if b >= 0x20 && b < utf8.RuneSelf {
		return KeyEvent{Key: KeyChar, Ch: rune(b)}, nil
	}
	if b < utf8.RuneSelf {
		return KeyEvent{Key: KeyOther}, nil
	}

	// Multi-byte rune: collect the remaining bytes so they are not
	// misread as separate keypresses.
	buf := []byte{b}
	for !utf8.FullRune(buf) && len(buf) < utf8.UTFMax {
		next, err := r.ReadByte()
		if err != nil {
			break
		}
		buf = append(buf, next)
	}
	ru, _ := utf8.DecodeRune(buf)
	if ru == utf8.RuneError {
		return KeyEvent{Key: KeyOther}, nil
	}
	return KeyEvent{Key: KeyChar, Ch: ru}, nil
}

// decodeEscape handles input after a 0x1b byte. A bare escape (nothing
// buffered behind it) is the escape key; otherwise the sequence is CSI or
// SS3 and resolves to an arrow key or KeyOther.
func decodeEscape(r *bufio.Reader) KeyEvent {
	if r.Buffered() == 0 {
		return KeyEvent{Key: KeyEscape}
	}
	next, err := r.ReadByte()
	if err != nil {
		return KeyEvent{Key: KeyEscape}
	}

	switch next {
	case '[':
		return decodeCSI(r)
	case 'O':
		final, err := r.ReadByte()
		if err != nil {
			return KeyEvent{Key: KeyEscape}
		}
		return arrowKey(final)
	default:
		return KeyEvent{Key: KeyEscape}
	}
}

func decodeCSI(r *bufio.Reader) KeyEvent {
	var final byte
	for i := 0; i < 6; i++ {
		b, err := r.ReadByte()
		if err != nil {
			return KeyEvent{Key: KeyEscape}
		}
		if (b >= 'A' && b <= 'Z') || b == '~' {
			final = b
			break
		}
	}
	return arrowKey(final)
}

func arrowKey(final byte) KeyEvent {
	switch final {
	case 'A':
		return KeyEvent{Key: KeyUp}
	case 'B':
		return KeyEvent{Key: KeyDown}
	case 'C':
		return KeyEvent{Key: KeyRight}
	case 'D':
		return KeyEvent{Key: KeyLeft}
	}
	return KeyEvent{Key: KeyOther}
}
