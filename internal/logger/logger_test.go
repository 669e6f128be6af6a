package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func TestLogger_IncludesStackAndService(t *testing.T) {
	var buf bytes.Buffer
	log := newWith(&buf, "lostfound-service", false)
	log.Error().Stack().Err(errors.New("boom")).Msg("something failed")

	line := strings.TrimSpace(buf.String())
	if line == "" {
		t.Fatal("no output captured")
	}

	var payload map[string]any
	if err := json.Unmarshal([]byte(line), &payload); err != nil {
		t.Fatalf("invalid json log: %v\n%s", err, line)
	}
	if svc, ok := payload["service"].(string); !ok || svc != "lostfound-service" {
		t.Fatalf("expected service=\"lostfound-service\", got %v", payload["service"])
	}
	if lvl, ok := payload["level"].(string); !ok || lvl != "error" {
		t.Fatalf("expected level=\"error\", got %v", payload["level"])
	}
	if _, ok := payload["stack"]; !ok {
		t.Fatalf("expected stack field in error log: %s", line)
	}
}

func TestLogger_PrettyIsNotJSON(t *testing.T) {
	var buf bytes.Buffer
	log := newWith(&buf, "lostfound-service", true)
	log.Info().Msg("hello")

	out := strings.TrimSpace(buf.String())
	if out == "" {
		t.Fatal("no output captured")
	}
	var payload map[string]any
	if err := json.Unmarshal([]byte(out), &payload); err == nil {
		t.Fatalf("console output unexpectedly valid json: %s", out)
	}
}
