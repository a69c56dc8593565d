package logger

import (
	"bytes"
	"context"
	"strings"
	"testing"
)

func TestContextWithFieldsMerges(t *testing.T) {
	ctx := ContextWithFields(context.Background(), map[string]interface{}{"request_id": "abc"})
	ctx = ContextWithFields(ctx, map[string]interface{}{"menu": "open"})

	entry := FromContext(ctx)
	if entry.Data["request_id"] != "abc" || entry.Data["menu"] != "open" {
		t.Fatalf("expected merged fields, got %v", entry.Data)
	}
}

func TestFromContextWithoutFields(t *testing.T) {
	entry := FromContext(context.Background())
	if len(entry.Data) != 0 {
		t.Fatalf("expected no fields, got %v", entry.Data)
	}
}

func TestConfigureJSONOutput(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	Configure("info", true)
	t.Cleanup(func() { Init() })

	Info("rendered", map[string]interface{}{"section": "hero"})

	out := buf.String()
	if !strings.Contains(out, `"section":"hero"`) || !strings.Contains(out, `"msg":"rendered"`) {
		t.Fatalf("expected JSON log line, got %q", out)
	}
}
