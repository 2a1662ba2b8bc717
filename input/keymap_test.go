package input

import (
	"context"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
)

func TestFromKey(t *testing.T) {
	tests := []struct {
		ev   *tcell.EventKey
		want Event
	}{
		{tcell.NewEventKey(tcell.KeyRune, '+', tcell.ModNone), BrightnessUp},
		{tcell.NewEventKey(tcell.KeyRune, '-', tcell.ModNone), BrightnessDown},
		{tcell.NewEventKey(tcell.KeyRune, 'a', tcell.ModNone), ReseedRequested},
		{tcell.NewEventKey(tcell.KeyRune, 'b', tcell.ModNone), RandomizeColor},
		{tcell.NewEventKey(tcell.KeyRune, ']', tcell.ModNone), SpeedUp},
		{tcell.NewEventKey(tcell.KeyRune, '[', tcell.ModNone), SpeedDown},
		{tcell.NewEventKey(tcell.KeyRune, 'z', tcell.ModNone), None},
		{tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), BrightnessUp},
		{tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), SpeedDown},
		{tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), Quit},
	}

	for _, tt := range tests {
		if got := FromKey(tt.ev); got != tt.want {
			t.Errorf("FromKey(%v) = %v, want %v", tt.ev.Name(), got, tt.want)
		}
	}
}

func TestTerminalSource(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("screen init: %v", err)
	}
	screen.SetSize(80, 24)

	src := NewTerminalSource(screen)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- src.Run(ctx) }()

	screen.InjectKey(tcell.KeyRune, 'z', tcell.ModNone)
	screen.InjectKey(tcell.KeyRune, 'r', tcell.ModNone)
	screen.InjectKey(tcell.KeyRight, 0, tcell.ModNone)

	for _, want := range []Event{ReseedRequested, SpeedUp} {
		select {
		case got := <-src.Events():
			if got != want {
				t.Fatalf("got %v, want %v", got, want)
			}
		case <-time.After(2 * time.Second):
			t.Fatalf("timed out waiting for %v", want)
		}
	}

	screen.Fini()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not stop after Fini")
	}
}

func TestEventString(t *testing.T) {
	if RandomizeColor.String() != "randomize-color" || Event(200).String() != "unknown" {
		t.Fatal("unexpected event names")
	}
}
