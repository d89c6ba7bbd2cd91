package log

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func newCaptureLogger(level Level, f Formatter) (Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	l := NewLogger(
		WithLevel(level),
		WithFormatter(f),
		WithOutput(NewWriterOutput(&buf)),
	)
	return l, &buf
}

func TestLevelGating(t *testing.T) {
	l, buf := newCaptureLogger(WarnLevel, &TextFormatter{})
	l.Debug("hidden")
	l.Info("hidden")
	l.Warn("shown")
	l.Error("shown too")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("gated entry leaked: %q", out)
	}
	if !strings.Contains(out, "WARN shown") || !strings.Contains(out, "ERROR shown too") {
		t.Fatalf("expected warn and error entries: %q", out)
	}
}

func TestTextFormatterFields(t *testing.T) {
	l, buf := newCaptureLogger(InfoLevel, &TextFormatter{})
	l.Info("run complete", Str("case", "cleanup"), Int("iters", 3))
	out := buf.String()
	if !strings.Contains(out, "case=cleanup") || !strings.Contains(out, "iters=3") {
		t.Fatalf("fields missing: %q", out)
	}
}

func TestJSONFormatter(t *testing.T) {
	l, buf := newCaptureLogger(InfoLevel, &JSONFormatter{})
	l.Info("hello", Str("k", "v"))

	var obj map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &obj); err != nil {
		t.Fatalf("not json: %v (%q)", err, buf.String())
	}
	if obj["msg"] != "hello" || obj["level"] != "INFO" || obj["k"] != "v" {
		t.Fatalf("unexpected object: %v", obj)
	}
}

func TestWithAttachesFields(t *testing.T) {
	l, buf := newCaptureLogger(InfoLevel, &TextFormatter{})
	l = l.WithComponent("bench").With(Str("scenario", "default"))
	l.Info("start")
	out := buf.String()
	if !strings.Contains(out, "component=bench") || !strings.Contains(out, "scenario=default") {
		t.Fatalf("inherited fields missing: %q", out)
	}
}

func TestSetLevelAppliesToDerivedLoggers(t *testing.T) {
	l, buf := newCaptureLogger(InfoLevel, &TextFormatter{})
	derived := l.With(Str("k", "v"))
	derived.Debug("hidden")
	l.SetLevel(DebugLevel)
	derived.Debug("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("debug leaked before SetLevel: %q", out)
	}
	if !strings.Contains(out, "DEBUG shown") {
		t.Fatalf("derived logger ignored SetLevel: %q", out)
	}
}

func TestParseLevel(t *testing.T) {
	cases := map[string]Level{"debug": DebugLevel, "info": InfoLevel, "warn": WarnLevel, "error": ErrorLevel, "": InfoLevel}
	for in, want := range cases {
		got, err := ParseLevel(in)
		if err != nil || got != want {
			t.Fatalf("ParseLevel(%q) = %v, %v", in, got, err)
		}
	}
	if _, err := ParseLevel("loud"); err == nil {
		t.Fatalf("expected error for unknown level")
	}
}
