package telemetry

import (
	"bytes"
	"encoding/json"
	"os"
	"testing"
)

func TestErrorWritesJSONLine(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	t.Cleanup(func() { SetOutput(os.Stdout) })

	Error("export.failed", map[string]any{"resume_id": "r-1"})

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("unmarshal log line %q: %v", buf.String(), err)
	}
	if entry["level"] != "error" {
		t.Fatalf("expected level error, got %v", entry["level"])
	}
	if entry["msg"] != "export.failed" {
		t.Fatalf("expected msg export.failed, got %v", entry["msg"])
	}
	if entry["resume_id"] != "r-1" {
		t.Fatalf("expected resume_id r-1, got %v", entry["resume_id"])
	}
	if _, ok := entry["ts"]; !ok {
		t.Fatalf("expected ts field in %v", entry)
	}
}

func TestInfoAcceptsNilFields(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	t.Cleanup(func() { SetOutput(os.Stdout) })

	Info("server.start", nil)

	if !bytes.Contains(buf.Bytes(), []byte(`"msg":"server.start"`)) {
		t.Fatalf("unexpected log line %q", buf.String())
	}
}
