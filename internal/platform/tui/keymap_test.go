package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/dkoval/gridsnake/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKeyDirections(t *testing.T) {
	km := NewKeyMapper()

	cases := []struct {
		msg    tea.KeyMsg
		action core.Action
	}{
		{runeKey('w'), core.ActionUp},
		{runeKey('k'), core.ActionUp},
		{tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp},
		{runeKey('s'), core.ActionDown},
		{runeKey('j'), core.ActionDown},
		{tea.KeyMsg{Type: tea.KeyDown}, core.ActionDown},
		{runeKey('a'), core.ActionLeft},
		{runeKey('h'), core.ActionLeft},
		{tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft},
		{runeKey('d'), core.ActionRight},
		{runeKey('l'), core.ActionRight},
		{tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight},
		{runeKey('p'), core.ActionPause},
		{runeKey('r'), core.ActionRestart},
	}

	for _, tc := range cases {
		action, isQuit := km.MapKey(tc.msg)
		if isQuit {
			t.Errorf("Key %q should not be a quit request", tc.msg.String())
		}
		if action != tc.action {
			t.Errorf("Key %q mapped to %v, want %v", tc.msg.String(), action, tc.action)
		}
	}
}

func TestMapKeyQuit(t *testing.T) {
	km := NewKeyMapper()

	for _, msg := range []tea.KeyMsg{runeKey('q'), {Type: tea.KeyCtrlC}} {
		action, isQuit := km.MapKey(msg)
		if !isQuit {
			t.Errorf("Key %q should be a quit request", msg.String())
		}
		if action != core.ActionQuit {
			t.Errorf("Key %q mapped to %v, want ActionQuit", msg.String(), action)
		}
	}
}

func TestMapKeyToFrame(t *testing.T) {
	km := NewKeyMapper()
	frame := core.NewInputFrame()

	km.MapKeyToFrame(runeKey('w'), &frame)
	km.MapKeyToFrame(runeKey('p'), &frame)

	if !frame.Has(core.ActionUp) {
		t.Error("Frame should contain ActionUp")
	}
	if !frame.Has(core.ActionPause) {
		t.Error("Frame should contain ActionPause")
	}
	if frame.Has(core.ActionDown) {
		t.Error("Frame should not contain ActionDown")
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()

	cases := []struct {
		msg    tea.KeyMsg
		action MenuAction
	}{
		{tea.KeyMsg{Type: tea.KeyUp}, MenuActionUp},
		{tea.KeyMsg{Type: tea.KeyDown}, MenuActionDown},
		{tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		{tea.KeyMsg{Type: tea.KeyEsc}, MenuActionBack},
		{tea.KeyMsg{Type: tea.KeyTab}, MenuActionScoreboard},
		{runeKey('q'), MenuActionQuit},
	}

	for _, tc := range cases {
		if got := km.MapKeyToMenuAction(tc.msg); got != tc.action {
			t.Errorf("Key %q mapped to %v, want %v", tc.msg.String(), got, tc.action)
		}
	}
}
