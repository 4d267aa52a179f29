package loop

import (
	"fmt"

	"snake/internal/snake"
)

// KeyCode is a host-neutral key identifier. Hosts translate their native
// key events into KeyCodes before calling OnKeyEvent.
type KeyCode uint16

const (
	KeyUnknown KeyCode = iota
	KeyEscape
	KeyQ
	KeyUp
	KeyRight
	KeyDown
	KeyLeft
	KeyW
	KeyA
	KeyS
	KeyD
)

// ControlSignal is the logical meaning of a key press.
type ControlSignal uint8

const (
	SignalNone ControlSignal = iota
	SignalQuit
	SignalUp
	SignalRight
	SignalDown
	SignalLeft
)

func (s ControlSignal) String() string {
	switch s {
	case SignalNone:
		return "none"
	case SignalQuit:
		return "quit"
	case SignalUp:
		return "up"
	case SignalRight:
		return "right"
	case SignalDown:
		return "down"
	case SignalLeft:
		return "left"
	default:
		return fmt.Sprintf("signal(%d)", uint8(s))
	}
}

// direction maps a steering signal to a heading. Callers filter out
// SignalNone and SignalQuit first; anything else reaching here is a bug.
func (s ControlSignal) direction() snake.Direction {
	switch s {
	case SignalUp:
		return snake.Up
	case SignalRight:
		return snake.Right
	case SignalDown:
		return snake.Down
	case SignalLeft:
		return snake.Left
	default:
		panic(fmt.Sprintf("loop: don't know how to steer with %v", s))
	}
}

// Keymap binds key codes to signals. Unbound keys are ignored.
type Keymap map[KeyCode]ControlSignal

// DefaultKeymap binds Escape/Q to quit and both the arrow keys and WASD to
// steering.
func DefaultKeymap() Keymap {
	return Keymap{
		KeyEscape: SignalQuit,
		KeyQ:      SignalQuit,
		KeyUp:     SignalUp,
		KeyRight:  SignalRight,
		KeyDown:   SignalDown,
		KeyLeft:   SignalLeft,
		KeyW:      SignalUp,
		KeyD:      SignalRight,
		KeyS:      SignalDown,
		KeyA:      SignalLeft,
	}
}
