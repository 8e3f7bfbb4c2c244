package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	clog "github.com/charmbracelet/log"
)

func TestHelpers_WriteToBuffer(t *testing.T) {
	var buf bytes.Buffer
	prev := L
	L = clog.New(&buf)
	L.SetLevel(clog.DebugLevel)
	defer func() { L = prev }()

	Debugf("hello %s", "dbg")
	Infof("info %d", 1)
	Warnf("warn")
	Errorf("err %v", "E")

	out := buf.String()
	for _, want := range []string{"hello dbg", "info 1", "warn", "err E"} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q; got: %s", want, out)
		}
	}
}

func TestSetOutput_Verbose(t *testing.T) {
	prev := L
	defer func() { L = prev }()

	var buf bytes.Buffer
	SetOutput(&buf, false)
	Debugf("hidden")
	if strings.Contains(buf.String(), "hidden") {
		t.Fatalf("debug output written without verbose: %s", buf.String())
	}

	buf.Reset()
	SetOutput(&buf, true)
	Debugf("shown")
	if !strings.Contains(buf.String(), "shown") {
		t.Fatalf("debug output missing with verbose: %s", buf.String())
	}
}

func TestOpenFile(t *testing.T) {
	prev := L
	defer func() { L = prev }()

	path := filepath.Join(t.TempDir(), "nested", "lipi.log")
	f, err := OpenFile(path, false)
	if err != nil {
		t.Fatalf("OpenFile() error: %v", err)
	}
	Errorf("request failed: %s", "timeout")
	f.Close()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading log: %v", err)
	}
	if !strings.Contains(string(data), "request failed: timeout") {
		t.Errorf("log file content = %q", data)
	}
}
