package input

import (
	"context"

	"github.com/gdamore/tcell/v2"
)

var runeBindings = map[rune]Event{
	'+': BrightnessUp,
	'=': BrightnessUp,
	'-': BrightnessDown,
	'_': BrightnessDown,
	'a': ReseedRequested,
	'r': ReseedRequested,
	'b': RandomizeColor,
	'c': RandomizeColor,
	']': SpeedUp,
	'[': SpeedDown,
	'q': Quit,
}

var keyBindings = map[tcell.Key]Event{
	tcell.KeyUp:     BrightnessUp,
	tcell.KeyDown:   BrightnessDown,
	tcell.KeyRight:  SpeedUp,
	tcell.KeyLeft:   SpeedDown,
	tcell.KeyEnter:  ReseedRequested,
	tcell.KeyEscape: Quit,
	tcell.KeyCtrlC:  Quit,
}

// FromKey maps a terminal key press to an event; None if the key is unbound
func FromKey(ev *tcell.EventKey) Event {
	if ev.Key() == tcell.KeyRune {
		return runeBindings[ev.Rune()]
	}
	return keyBindings[ev.Key()]
}

// TerminalSource turns tcell screen events into simulation events
type TerminalSource struct {
	screen tcell.Screen
	events chan Event
}

func NewTerminalSource(screen tcell.Screen) *TerminalSource {
	return &TerminalSource{
		screen: screen,
		events: make(chan Event, 16),
	}
}

func (s *TerminalSource) Events() <-chan Event {
	return s.events
}

// Run polls the screen until it is finalized or ctx is done, then closes the channel
func (s *TerminalSource) Run(ctx context.Context) error {
	defer close(s.events)
	for {
		ev := s.screen.PollEvent()
		if ev == nil {
			return nil
		}

		var mapped Event
		switch ev := ev.(type) {
		case *tcell.EventKey:
			mapped = FromKey(ev)
		case *tcell.EventResize:
			s.screen.Sync()
		}
		if mapped == None {
			continue
		}

		select {
		case s.events <- mapped:
		case <-ctx.Done():
			return nil
		}
	}
}
