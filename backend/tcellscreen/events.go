package tcellscreen

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/gridterm/event"
)

// translate converts one tcell event. Returns ok=false for event kinds
// the application does not consume (paste, focus, interrupt).
func translate(ev tcell.Event) (event.Event, bool) {
	switch tev := ev.(type) {
	case *tcell.EventKey:
		return translateKey(tev), true
	case *tcell.EventMouse:
		return translateMouse(tev), true
	case *tcell.EventResize:
		w, h := tev.Size()
		return event.Event{Type: event.TypeResize, Width: w, Height: h}, true
	case *tcell.EventError:
		return event.Event{Type: event.TypeError, Err: tev}, true
	}
	return event.Event{}, false
}

func translateKey(ev *tcell.EventKey) event.Event {
	out := event.Event{Type: event.TypeKey, Modifiers: translateMods(ev.Modifiers())}

	switch ev.Key() {
	case tcell.KeyRune:
		out.Key = event.KeyRune
		out.Rune = ev.Rune()
	case tcell.KeyEscape:
		out.Key = event.KeyEscape
	case tcell.KeyEnter:
		out.Key = event.KeyEnter
	case tcell.KeyTab:
		out.Key = event.KeyTab
	case tcell.KeyBacktab:
		out.Key = event.KeyBacktab
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		out.Key = event.KeyBackspace
	case tcell.KeyDelete:
		out.Key = event.KeyDelete
	case tcell.KeyUp:
		out.Key = event.KeyUp
	case tcell.KeyDown:
		out.Key = event.KeyDown
	case tcell.KeyLeft:
		out.Key = event.KeyLeft
	case tcell.KeyRight:
		out.Key = event.KeyRight
	case tcell.KeyHome:
		out.Key = event.KeyHome
	case tcell.KeyEnd:
		out.Key = event.KeyEnd
	case tcell.KeyPgUp:
		out.Key = event.KeyPageUp
	case tcell.KeyPgDn:
		out.Key = event.KeyPageDown
	default:
		out.Key = event.KeyNone
	}
	return out
}

func translateMouse(ev *tcell.EventMouse) event.Event {
	x, y := ev.Position()
	out := event.Event{
		Type:      event.TypeMouse,
		MouseX:    x,
		MouseY:    y,
		Modifiers: translateMods(ev.Modifiers()),
		Action:    event.MousePress,
	}
	switch {
	case ev.Buttons()&tcell.Button1 != 0:
		out.Button = event.MouseLeft
	case ev.Buttons()&tcell.Button2 != 0:
		out.Button = event.MouseMiddle
	case ev.Buttons()&tcell.Button3 != 0:
		out.Button = event.MouseRight
	case ev.Buttons()&tcell.WheelUp != 0:
		out.Button = event.MouseWheelUp
	case ev.Buttons()&tcell.WheelDown != 0:
		out.Button = event.MouseWheelDown
	default:
		out.Button = event.MouseNone
		out.Action = event.MouseMotion
	}
	return out
}

func translateMods(m tcell.ModMask) event.Modifier {
	var out event.Modifier
	if m&tcell.ModShift != 0 {
		out |= event.ModShift
	}
	if m&tcell.ModAlt != 0 {
		out |= event.ModAlt
	}
	if m&tcell.ModCtrl != 0 {
		out |= event.ModCtrl
	}
	return out
}
