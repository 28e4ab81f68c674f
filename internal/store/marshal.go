package store

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/roach88/wtqexec/internal/executor"
)

// timeLayout stores timestamps as sortable UTC text.
const timeLayout = time.RFC3339Nano

// marshalJSON encodes v as JSON TEXT with HTML escaping disabled, so
// forms and denotations containing < or & are stored verbatim.
func marshalJSON(v any) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return "", err
	}
	// Encoder adds a trailing newline
	return strings.TrimSpace(buf.String()), nil
}

func marshalDenotation(denotation []string) (string, error) {
	data, err := marshalJSON(denotation)
	if err != nil {
		return "", fmt.Errorf("marshal denotation: %w", err)
	}
	return data, nil
}

func marshalDiagnostics(diags []executor.Diagnostic) (string, error) {
	data, err := marshalJSON(diags)
	if err != nil {
		return "", fmt.Errorf("marshal diagnostics: %w", err)
	}
	return data, nil
}

// unmarshalDenotation parses JSON TEXT. "null" yields a nil slice, the
// denotation of a failed form.
func unmarshalDenotation(data string) ([]string, error) {
	var out []string
	if err := json.Unmarshal([]byte(data), &out); err != nil {
		return nil, fmt.Errorf("unmarshal denotation: %w", err)
	}
	return out, nil
}

func unmarshalDiagnostics(data string) ([]executor.Diagnostic, error) {
	if data == "" || data == "[]" || data == "null" {
		return nil, nil
	}
	var out []executor.Diagnostic
	if err := json.Unmarshal([]byte(data), &out); err != nil {
		return nil, fmt.Errorf("unmarshal diagnostics: %w", err)
	}
	return out, nil
}

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

func parseTime(s string) (time.Time, error) {
	t, err := time.Parse(timeLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse time %q: %w", s, err)
	}
	return t, nil
}
