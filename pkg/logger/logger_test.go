package logger

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap/zapcore"
)

func TestLoggerInit(t *testing.T) {
	if err := Init(); err != nil {
		t.Fatalf("failed to initialize logger: %v", err)
	}
	defer func() {
		if err := Sync(); err != nil {
			t.Errorf("failed to sync logger: %v", err)
		}
	}()

	if Get() == nil {
		t.Fatal("logger is nil after initialization")
	}
	if Named("test") == nil {
		t.Fatal("named logger is nil")
	}
}

func capture(t *testing.T) (*bytes.Buffer, Logger) {
	t.Helper()
	var buf bytes.Buffer
	return &buf, &zapLogger{z: newZap(zapcore.AddSync(&buf))}
}

func TestLoggerFields(t *testing.T) {
	buf, l := capture(t)
	defer func() { _ = SetLevelString("info") }()

	ctx := WithRequestID(context.Background(), "req-1")
	l.Named("service").Info(ctx, "attendance loaded",
		String("table", "DB_Asistencia"), Int("rows", 12), Error(errors.New("boom")))

	out := buf.String()
	for _, want := range []string{`"msg":"attendance loaded"`, `"logger":"service"`, `"table":"DB_Asistencia"`, `"rows":12`, `"error":"boom"`, `"request_id":"req-1"`} {
		if !strings.Contains(out, want) {
			t.Errorf("log line %q missing %s", out, want)
		}
	}
}

func TestSetLevelString(t *testing.T) {
	buf, l := capture(t)
	defer func() { _ = SetLevelString("info") }()

	ctx := context.Background()
	l.Debug(ctx, "hidden")
	if buf.Len() != 0 {
		t.Fatalf("debug line written at info level: %s", buf.String())
	}

	if err := SetLevelString(" DEBUG "); err != nil {
		t.Fatalf("set level: %v", err)
	}
	l.Debug(ctx, "shown")
	if !strings.Contains(buf.String(), "shown") {
		t.Fatalf("debug line missing at debug level")
	}

	if err := SetLevelString("verbose"); err == nil {
		t.Fatal("expected error for unknown level")
	}
}

func TestRequestID(t *testing.T) {
	if RequestID(context.Background()) != "" {
		t.Fatal("empty context should have no request id")
	}
	if got := RequestID(WithRequestID(context.Background(), "abc")); got != "abc" {
		t.Fatalf("request id = %q", got)
	}
}

func TestNop(t *testing.T) {
	l := NewNop()
	l.Warn(context.Background(), "discarded")
	if l.Named("x") == nil {
		t.Fatal("named nop logger is nil")
	}
}
