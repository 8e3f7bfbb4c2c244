package clipboard

import "testing"

func TestMemory(t *testing.T) {
	m := &Memory{}
	if m.Text() != "" {
		t.Fatalf("new Memory has text %q", m.Text())
	}
	if err := m.Write("नमस्ते"); err != nil {
		t.Fatalf("Write() error: %v", err)
	}
	if m.Text() != "नमस्ते" {
		t.Errorf("Text() = %q", m.Text())
	}
}

func TestDefault(t *testing.T) {
	w := Default()
	switch w.(type) {
	case System:
		if !Available() {
			t.Error("System writer returned without a clipboard")
		}
	case *Memory:
		if Available() {
			t.Error("Memory writer returned although a clipboard is available")
		}
	default:
		t.Errorf("unexpected writer %T", w)
	}
}
