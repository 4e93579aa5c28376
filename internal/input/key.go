package input

import xinput "github.com/charmbracelet/x/input"

// Key is a decoded key press. Its String form ("w", "up", "ctrl+c") is what
// the bindings match against.
type Key = xinput.Key

// Special key codes.
const (
	KeyUp     = xinput.KeyUp
	KeyDown   = xinput.KeyDown
	KeyLeft   = xinput.KeyLeft
	KeyRight  = xinput.KeyRight
	KeyEnter  = xinput.KeyEnter
	KeyEscape = xinput.KeyEscape
)

// RuneKey returns the key for a printable rune.
func RuneKey(r rune) Key {
	return Key{Code: r, Text: string(r)}
}

// CodeKey returns the key for a special key code such as KeyUp.
func CodeKey(code rune) Key {
	return Key{Code: code}
}

// CtrlKey returns r pressed with control held.
func CtrlKey(r rune) Key {
	return Key{Code: r, Mod: xinput.ModCtrl}
}
