package debug_test

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/segmentio/mmr3/internal/debug"
)

func TestFormat(t *testing.T) {
	buf := new(bytes.Buffer)
	debug.SetOutput(buf)
	defer debug.SetOutput(os.Stderr)
	defer debug.Toggle(false)

	debug.Toggle(false)
	debug.Format("hidden %d", 1)
	if buf.Len() != 0 {
		t.Fatalf("debug output written while disabled: %q", buf.String())
	}

	debug.Toggle(true)
	debug.Format("shown %d", 2)
	if s := buf.String(); !strings.Contains(s, "mmr3: ") || !strings.Contains(s, "shown 2") {
		t.Errorf("unexpected debug output: %q", s)
	}

	called := false
	debug.Do(func() { called = true })
	if !called {
		t.Error("function not called with debug enabled")
	}
}
