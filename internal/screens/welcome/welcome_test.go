package welcome

import (
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/lexiz/internal/router"
	"github.com/abhisek/lexiz/internal/screen"
)

func sendTicks(w *WelcomeScreen, n int) (screen.Screen, tea.Cmd) {
	var s screen.Screen = w
	var cmd tea.Cmd
	for i := 0; i < n; i++ {
		s, cmd = s.Update(tickMsg(time.Now()))
	}
	return s, cmd
}

func TestPhaseTransitions(t *testing.T) {
	w := New()

	if strings.Contains(w.View(80, 24), "One word at a time") {
		t.Error("tagline should not be visible at start")
	}

	sendTicks(w, 4)
	if w.elapsed != phase1End {
		t.Errorf("expected elapsed %v, got %v", phase1End, w.elapsed)
	}

	sendTicks(w, 8)
	if !strings.Contains(w.View(80, 24), "One word at a time") {
		t.Error("tagline should be visible after phase 2")
	}
}

func TestFirstKeySkipsIntro(t *testing.T) {
	w := New()
	sendTicks(w, 2)

	_, cmd := w.Update(tea.KeyPressMsg{Code: ' '})
	if cmd != nil {
		t.Error("first key during the intro should only skip ahead")
	}
	if w.elapsed != totalDur {
		t.Errorf("expected elapsed %v, got %v", totalDur, w.elapsed)
	}

	_, cmd = w.Update(tea.KeyPressMsg{Code: ' '})
	if cmd == nil {
		t.Fatal("second key should dismiss")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Fatalf("expected PopScreenMsg, got %T", cmd())
	}
}

func TestDismissOnce(t *testing.T) {
	w := New()
	sendTicks(w, 30)
	if w.elapsed != totalDur {
		t.Errorf("expected elapsed capped at %v, got %v", totalDur, w.elapsed)
	}

	_, cmd := w.Update(tea.KeyPressMsg{Code: 'a'})
	if cmd == nil {
		t.Fatal("expected dismiss command")
	}
	_, cmd = w.Update(tea.KeyPressMsg{Code: 'b'})
	if cmd != nil {
		t.Error("second keypress should not produce a command")
	}

	_, cmd = w.Update(tickMsg(time.Now()))
	if cmd != nil {
		t.Error("ticks stop after dismissal")
	}
}

func TestCompactBanner(t *testing.T) {
	if !strings.Contains(RenderBanner(30), "L E X I Z") {
		t.Error("narrow terminals get the compact banner")
	}
}
