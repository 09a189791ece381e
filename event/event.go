// Package event defines the discriminated input events the application
// consumes, and the decoder contract satisfied by input collaborators.
// The rendering core itself never reads input; its only coupling is that
// a resize event must drive Terminal.Resize, which forces a full repaint.
package event

// Type distinguishes event categories
type Type uint8

const (
	TypeKey Type = iota
	TypeMouse
	TypeResize
	TypeError
	TypeClosed
)

// Key represents a parsed input key
type Key uint16

const (
	KeyNone Key = iota
	KeyRune     // printable character, check Event.Rune

	KeyEscape
	KeyEnter
	KeyTab
	KeyBacktab
	KeyBackspace
	KeyDelete

	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
)

// Modifier is a bitmask of held modifier keys
type Modifier uint8

const (
	ModNone  Modifier = 0
	ModShift Modifier = 1 << 0
	ModAlt   Modifier = 1 << 1
	ModCtrl  Modifier = 1 << 2
)

// MouseButton identifies which button an event reports
type MouseButton uint8

const (
	MouseNone MouseButton = iota
	MouseLeft
	MouseMiddle
	MouseRight
	MouseWheelUp
	MouseWheelDown
)

// MouseAction distinguishes press, release, and motion
type MouseAction uint8

const (
	MousePress MouseAction = iota
	MouseRelease
	MouseMotion
)

// Event is one discriminated input event
type Event struct {
	Type Type

	// Key event fields
	Key       Key
	Rune      rune
	Modifiers Modifier

	// Mouse event fields
	MouseX, MouseY int
	Button         MouseButton
	Action         MouseAction

	// Resize event fields
	Width, Height int

	// Error event field
	Err error
}

// Decoder turns raw terminal input bytes into events. Implementations
// are collaborators outside the rendering core (escape-sequence parsing
// is dialect-specific); they return the decoded events and the number of
// bytes consumed, leaving incomplete sequences in the stream.
type Decoder interface {
	Decode(p []byte) (events []Event, consumed int)
}
