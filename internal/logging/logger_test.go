// Copyright (c) 2026 Courier Team
// Courier - multi-provider messaging gateway
// This source code is licensed under the MIT license found in the LICENSE file.

package logging

import (
	"bytes"
	"strings"
	"testing"

	clog "github.com/charmbracelet/log"
)

func captureLogger(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := L
	L = clog.New(&buf)
	t.Cleanup(func() { L = prev })
	return &buf
}

func TestDebugGatedByLevel(t *testing.T) {
	buf := captureLogger(t)

	SetDebug(false)
	Debugf("hidden %d", 1)
	if buf.Len() != 0 {
		t.Errorf("debug output leaked at info level: %q", buf.String())
	}

	SetDebug(true)
	Debugf("shown %d", 2)
	if !strings.Contains(buf.String(), "shown 2") {
		t.Errorf("debug output missing: %q", buf.String())
	}
}

func TestFormattedHelpers(t *testing.T) {
	buf := captureLogger(t)
	SetDebug(false)

	Infof("channel %s ready", "telegram")
	Warnf("partial %s", "tokens")
	Errorf("load failed: %v", "boom")

	out := buf.String()
	for _, want := range []string{"channel telegram ready", "partial tokens", "load failed: boom"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q: %q", want, out)
		}
	}
}
