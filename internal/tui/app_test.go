package tui

import (
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/f3rmion/lipi/internal/clipboard"
	"github.com/f3rmion/lipi/internal/session"
	"github.com/f3rmion/lipi/internal/translit"
	"github.com/f3rmion/lipi/internal/tui/views"
)

func newTestApp() AppModel {
	tr := translit.Func(func(ctx context.Context, text string) (string, error) {
		return "नमस्ते", nil
	})
	return NewApp(views.ConverterOptions{
		Transliterator: tr,
		Clipboard:      &clipboard.Memory{},
		Policy:         session.ApplyInOrder,
	})
}

func update(t *testing.T, m tea.Model, msg tea.Msg) (AppModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	app, ok := next.(AppModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return app, cmd
}

func TestApp_LoadingUntilSized(t *testing.T) {
	m := newTestApp()
	if m.View() != "Loading..." {
		t.Errorf("View() before size = %q", m.View())
	}

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	v := m.View()
	for _, want := range []string{"Roman to Nepali Converter", "Roman Input", "Nepali Output", "ctrl+y"} {
		if !strings.Contains(v, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestApp_HelpOverlay(t *testing.T) {
	m, _ := update(t, newTestApp(), tea.WindowSizeMsg{Width: 120, Height: 40})

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyF1})
	if !strings.Contains(m.View(), "Press any key to close") {
		t.Fatal("help overlay not shown")
	}

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")})
	if cmd != nil {
		t.Error("closing help produced a command")
	}
	if strings.Contains(m.View(), "Press any key to close") {
		t.Error("help overlay still shown")
	}
	if m.Converter().State().RawInput != "" {
		t.Error("key closing the overlay reached the input")
	}
}

func TestApp_Quit(t *testing.T) {
	for _, k := range []tea.KeyType{tea.KeyEsc, tea.KeyCtrlC} {
		_, cmd := update(t, newTestApp(), tea.KeyMsg{Type: k})
		if cmd == nil {
			t.Fatalf("%v: no command", k)
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Errorf("%v: command is not tea.Quit", k)
		}
	}
}

func TestApp_DelegatesToConverter(t *testing.T) {
	m, _ := update(t, newTestApp(), tea.WindowSizeMsg{Width: 120, Height: 40})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("n")})

	st := m.Converter().State()
	if st.RawInput != "n" {
		t.Errorf("RawInput = %q", st.RawInput)
	}
	if !st.ConversionInFlight {
		t.Error("no conversion dispatched")
	}
}
