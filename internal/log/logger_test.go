package log

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
)

func TestWithComponentFields(t *testing.T) {
	var buf bytes.Buffer
	Configure(Config{Level: "debug", Output: &buf, Service: "folio-test"})
	t.Cleanup(func() { Configure(Config{}) })

	l := WithComponent("registry")
	l.Info().Str("event", "registry.built").Msg("ok")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("log line is not JSON: %v (%q)", err, buf.String())
	}
	if entry["service"] != "folio-test" {
		t.Errorf("service = %v", entry["service"])
	}
	if entry["component"] != "registry" {
		t.Errorf("component = %v", entry["component"])
	}
	if entry["event"] != "registry.built" {
		t.Errorf("event = %v", entry["event"])
	}
}

func TestConfigureLevel(t *testing.T) {
	var buf bytes.Buffer
	Configure(Config{Level: "warn", Output: &buf})
	t.Cleanup(func() { Configure(Config{}) })

	if zerolog.GlobalLevel() != zerolog.WarnLevel {
		t.Fatalf("global level = %v, want warn", zerolog.GlobalLevel())
	}
	l := Base()
	l.Info().Msg("hidden")
	if buf.Len() != 0 {
		t.Errorf("info written at warn level: %q", buf.String())
	}
}

func TestConfigureBadLevelFallsBackToInfo(t *testing.T) {
	t.Setenv("LOG_LEVEL", "")
	Configure(Config{Level: "loud", Output: &bytes.Buffer{}})
	t.Cleanup(func() { Configure(Config{}) })

	if zerolog.GlobalLevel() != zerolog.InfoLevel {
		t.Fatalf("global level = %v, want info", zerolog.GlobalLevel())
	}
}
