package main

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestUpdateQuitCommandReturnsQuit(t *testing.T) {
	m := newREPLModel()
	m.textInput.SetValue(":quit")

	model, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	rm, ok := model.(replModel)
	if !ok {
		t.Fatalf("unexpected model type %T", model)
	}

	if !rm.quitting {
		t.Fatalf("quitting flag not set")
	}
	if rm.textInput.Value() != "" {
		t.Fatalf("input not cleared after quit command")
	}
	if cmd == nil {
		t.Fatalf("expected tea.Quit command")
	}
	if msg := cmd(); msg != nil {
		if _, ok := msg.(tea.QuitMsg); !ok {
			t.Fatalf("expected QuitMsg, got %T", msg)
		}
	}
}

func TestUpdateHelpCommandTogglesPanel(t *testing.T) {
	m := newREPLModel()
	m.textInput.SetValue(":help")

	model, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	rm, ok := model.(replModel)
	if !ok {
		t.Fatalf("unexpected model type %T", model)
	}

	if cmd != nil {
		t.Fatalf("expected no command for non-quit input")
	}
	if rm.quitting {
		t.Fatalf("quitting should remain false")
	}
	if !rm.showHelp {
		t.Fatalf("help toggle should be enabled")
	}
}

func TestEvaluateAssignmentStoresVariable(t *testing.T) {
	m := newREPLModel()

	output, isErr := m.evaluate("x = 5")
	if isErr {
		t.Fatalf("unexpected error: %s", output)
	}
	if output != "5" {
		t.Fatalf("got %q, want %q", output, "5")
	}

	globals := m.session.Globals()
	if v, ok := globals["x"]; !ok || v.Number() != 5 {
		t.Fatalf("variable not stored: %v", globals)
	}
}

func TestEvaluatePrintShowsGuestOutput(t *testing.T) {
	m := newREPLModel()

	output, isErr := m.evaluate("print 'hi', 2 + 2")
	if isErr {
		t.Fatalf("unexpected error: %s", output)
	}
	if output != "hi 4" {
		t.Fatalf("got %q", output)
	}
}

func TestEvaluateErrorIsFlagged(t *testing.T) {
	m := newREPLModel()

	output, isErr := m.evaluate("missing")
	if !isErr {
		t.Fatalf("expected error, got %q", output)
	}
}

func TestSessionPersistsAcrossInputs(t *testing.T) {
	m := newREPLModel()

	if out, isErr := m.evaluate("x = 2"); isErr {
		t.Fatalf("unexpected error: %s", out)
	}
	out, isErr := m.evaluate("x + 3")
	if isErr {
		t.Fatalf("unexpected error: %s", out)
	}
	if out != "5" {
		t.Fatalf("got %q, want %q", out, "5")
	}
}

func TestResetCommandDropsSessionState(t *testing.T) {
	m := newREPLModel()

	if out, isErr := m.evaluate("x = 1"); isErr {
		t.Fatalf("unexpected error: %s", out)
	}

	m, _ = m.handleCommand(":reset")
	if _, isErr := m.evaluate("x"); !isErr {
		t.Fatalf("expected name error after reset")
	}
}
