package logger

import (
	"bytes"
	"errors"
	"log"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	buf := &bytes.Buffer{}
	prevFlags := log.Flags()
	log.SetOutput(buf)
	log.SetFlags(0)
	t.Cleanup(func() {
		log.SetOutput(os.Stderr)
		log.SetFlags(prevFlags)
	})
	return buf
}

func TestFormatFields(t *testing.T) {
	assert.Equal(t, "", formatFields(nil))
	assert.Equal(t, "{a=1, b=two}", formatFields(Fields{"b": "two", "a": 1}))
}

func TestLevels(t *testing.T) {
	buf := captureLog(t)

	Info("generated", Fields{"tone": "savage"})
	Warn("fell back", Fields{"kind": "format"})
	Error("request failed", errors.New("boom"), nil)

	out := buf.String()
	assert.Contains(t, out, "[INFO] generated {tone=savage}")
	assert.Contains(t, out, "[WARN] fell back {kind=format}")
	assert.Contains(t, out, "[ERROR] request failed: boom")
}
