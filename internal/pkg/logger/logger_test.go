package logger

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestQuietUnlessVerbose(t *testing.T) {
	var buf bytes.Buffer
	New(&buf, false).Info("hidden", map[string]interface{}{"k": 1})
	if buf.Len() != 0 {
		t.Fatalf("quiet logger wrote %q", buf.String())
	}
}

func TestFieldsAreSorted(t *testing.T) {
	var buf bytes.Buffer
	New(&buf, true).Error("save failed", errors.New("disk full"), map[string]interface{}{"path": "m.json", "size": 3})
	line := buf.String()
	if !strings.Contains(line, `[ERROR] save failed error="disk full" path=m.json size=3`) {
		t.Fatalf("unexpected line %q", line)
	}
}
