package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-runewidth"
)

func TestCounts(t *testing.T) {
	tests := []struct {
		in    string
		chars int
		words int
	}{
		{"", 0, 0},
		{"   ", 3, 0},
		{"namaste", 7, 1},
		{"नमस्ते", 6, 1},
		{"तपाईं  कहाँ\nबस्नुहुन्छ", 22, 3},
	}

	for _, tt := range tests {
		if got := CharCount(tt.in); got != tt.chars {
			t.Errorf("CharCount(%q) = %d, want %d", tt.in, got, tt.chars)
		}
		if got := WordCount(tt.in); got != tt.words {
			t.Errorf("WordCount(%q) = %d, want %d", tt.in, got, tt.words)
		}
	}
}

func TestWrap(t *testing.T) {
	in := "कस्तो छ तपाईंलाई आज"
	got := Wrap(in, 10)
	for _, line := range strings.Split(got, "\n") {
		if w := runewidth.StringWidth(line); w > 10 {
			t.Errorf("line %q is %d cells wide", line, w)
		}
	}
	if strings.Join(strings.Fields(got), " ") != in {
		t.Errorf("Wrap() lost words: %q", got)
	}
}

func TestWrap_KeepsLineBreaks(t *testing.T) {
	got := Wrap("एक\nदुई", 40)
	if got != "एक\nदुई" {
		t.Errorf("Wrap() = %q", got)
	}
}

func TestKeyMap(t *testing.T) {
	if len(Keys.ShortHelp()) != 5 {
		t.Errorf("ShortHelp() has %d bindings", len(Keys.ShortHelp()))
	}
	for _, b := range Keys.ShortHelp() {
		if !b.Enabled() {
			t.Errorf("binding %v disabled", b.Keys())
		}
	}
	if !key.Matches(tea.KeyMsg{Type: tea.KeyCtrlY}, Keys.Copy) {
		t.Error("ctrl+y does not match Copy")
	}
}
